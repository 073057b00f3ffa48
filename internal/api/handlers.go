package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/service"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/httputil"
	"github.com/nkaz/questline/pkg/tree"
)

type RegisterRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

type DeleteAccountRequest struct {
	Password string `json:"password"`
}

type CreateGoalRequest struct {
	Title    string     `json:"title"`
	Type     string     `json:"type"`
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	GroupID  *uuid.UUID `json:"group_id,omitempty"`
	Deadline *time.Time `json:"deadline,omitempty"`
}

type ToggleStepRequest struct {
	Completed bool `json:"completed"`
}

type CompleteGoalRequest struct {
	Completed bool `json:"completed"`
}

type ReorderRequest struct {
	Items []entity.OrderUpdate `json:"items"`
}

type ShareGoalRequest struct {
	UserID uuid.UUID `json:"user_id"`
}

type RequestVerificationRequest struct {
	ProofURL  string `json:"proof_url,omitempty"`
	ProofText string `json:"proof_text,omitempty"`
}

type ResolveVerificationRequest struct {
	RequesterID uuid.UUID `json:"requester_id"`
}

type StartFocusRequest struct {
	GoalID uuid.UUID `json:"goal_id"`
}

type CreateGroupRequest struct {
	Name string `json:"name"`
}

type GetGoalsResponse struct {
	UserID string             `json:"uid"`
	Goals  []*entity.GoalNode `json:"goals"`
}

type GetGoalTreeResponse struct {
	UserID string       `json:"uid"`
	Roots  []*tree.Node `json:"roots"`
}

type GetActivitiesResponse struct {
	GroupID    string            `json:"group_id"`
	Page       int               `json:"page"`
	Limit      int               `json:"limit"`
	Activities []entity.Activity `json:"activities"`
}

func (s *Server) Register(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req RegisterRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("registering error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Register(ctx, &service.RegisterRequest{
		Name:      req.Name,
		Email:     req.Email,
		AvatarURL: req.AvatarURL,
		Password:  req.Password,
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			logger.Error("registering error: existed user")
			httputil.WriteErrorResponse(w, http.StatusConflict, "user with such name already exists", nil)
			return
		}
		logger.Error("registering error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during registration", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, map[string]any{
		"uid": user.ID.String(),
	})
	logger.Info("successful registration")
}

func (s *Server) Login(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	var req LoginRequest
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("login error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	user, err := s.userService.Login(ctx, req.Name, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("login error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user with such name doesn't exist", nil)
			return
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("login error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid username or password", nil)
			return
		default:
			logger.Error("login error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error during login", nil)
			return
		}
	}
	token, err := s.jwtService.GenerateToken(user)
	if err != nil {
		logger.Error("login error: generating token error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error creating token", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"uid":   user.ID.String(),
		"token": token,
	})
	logger.Info("successful login")
}

func (s *Server) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("account deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req DeleteAccountRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("account deletion error: invalid body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.userService.DeleteAccount(ctx, actor.ID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("account deletion error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongCredentials):
			logger.Error("account deletion error: wrong password")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "invalid password", nil)
		default:
			logger.Error("account deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting account", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("account deleted")
}

func (s *Server) GetGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("get goals error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	if r.URL.Query().Get("view") == "tree" {
		roots, err := s.goalsService.GoalForest(ctx, actor.ID)
		if err != nil {
			logger.Error("getting goal tree error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals", nil)
			return
		}
		httputil.WriteJSONResponse(w, http.StatusOK, GetGoalTreeResponse{
			UserID: actor.ID.String(),
			Roots:  roots,
		})
		logger.Info("goal tree provided")
		return
	}
	goals, err := s.goalsService.ListGoals(ctx, actor.ID)
	if err != nil {
		logger.Error("getting goals list error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting goals", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetGoalsResponse{
		UserID: actor.ID.String(),
		Goals:  goals,
	})
	logger.Info("goals provided")
}

func (s *Server) CreateGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("create goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	goal, err := s.goalsService.CreateGoal(ctx, actor.ID, &service.CreateGoalRequest{
		Title:    req.Title,
		Type:     entity.GoalType(req.Type),
		ParentID: req.ParentID,
		GroupID:  req.GroupID,
		Deadline: req.Deadline,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrEmptyTitle):
			logger.Error("create goal error: empty title")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "title must not be empty", nil)
		case errors.Is(err, errorvalues.ErrInvalidGoalType):
			logger.Error("create goal error: invalid type")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "type must be goal, sub-goal or step", nil)
		case errors.Is(err, errorvalues.ErrParentNotFound):
			logger.Error("create goal error: unexist parent")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "parent goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			logger.Error("create goal error: no access to parent")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "no access to parent goal", nil)
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("create goal error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("create goal error: not a group member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not a member of the group", nil)
		default:
			logger.Error("create goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, goal)
	logger.Info("goal created")
}

func (s *Server) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("goal deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("goal deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.DeleteGoal(ctx, actor.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("goal deletion error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			logger.Error("goal deletion error: no access")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("goal deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("goal deleted")
}

func (s *Server) ToggleStep(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("toggle step error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("toggle step error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid step id in path value", nil)
		return
	}
	var req ToggleStepRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("toggle step error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.ToggleStep(ctx, actor, id, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("toggle step error: unexist step")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "step doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			logger.Error("toggle step error: no access")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "step doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotAStep):
			logger.Error("toggle step error: target is not a step")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "only steps can be toggled", nil)
		case errors.Is(err, errorvalues.ErrVerificationPending):
			logger.Error("toggle step error: step awaits verification")
			httputil.WriteErrorResponse(w, http.StatusConflict, "step is awaiting verification", nil)
		default:
			logger.Error("toggle step error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling step", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"id":        id.String(),
		"completed": req.Completed,
	})
	logger.Info("step toggled")
}

func (s *Server) CompleteGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("complete goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("complete goal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req CompleteGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("complete goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.MarkGoalComplete(ctx, actor, id, req.Completed)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("complete goal error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			logger.Error("complete goal error: no access")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotAGoal):
			logger.Error("complete goal error: target is a step")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "steps are completed via toggle", nil)
		default:
			logger.Error("complete goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while completing goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"id":        id.String(),
		"completed": req.Completed,
	})
	logger.Info("goal completion updated")
}

func (s *Server) ReorderGoals(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("reorder error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReorderRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || len(req.Items) == 0 {
		logger.Error("reorder error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.ReorderGoals(ctx, actor.ID, req.Items)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("reorder error: unexist goal in batch")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			logger.Error("reorder error: no access to goal in batch")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("reorder error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while reordering", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"updated": len(req.Items),
	})
	logger.Info("goals reordered")
}

func (s *Server) ShareGoal(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("share goal error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("share goal error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req ShareGoalRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.UserID == uuid.Nil {
		logger.Error("share goal error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.goalsService.ShareGoal(ctx, actor.ID, id, req.UserID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("share goal error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("share goal error: actor is not the owner")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "only the owner can share a goal", nil)
		default:
			logger.Error("share goal error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while sharing goal", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"id":          id.String(),
		"shared_with": req.UserID.String(),
	})
	logger.Info("goal shared")
}

func (s *Server) RequestVerification(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("request verification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	goalID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("request verification error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid goal id in path value", nil)
		return
	}
	var req RequestVerificationRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("request verification error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	verification, err := s.verificationsService.RequestVerification(ctx, actor, &service.RequestVerificationInput{
		GoalID:    goalID,
		ProofURL:  req.ProofURL,
		ProofText: req.ProofText,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrProofRequired):
			logger.Error("request verification error: no proof")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "proof url or text is required", nil)
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("request verification error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrUnauthorizedAccess):
			logger.Error("request verification error: no access")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("request verification error: not a group member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not a member of the group", nil)
		default:
			logger.Error("request verification error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while requesting verification", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, verification)
	logger.Info("verification requested")
}

func (s *Server) ApproveVerification(w http.ResponseWriter, r *http.Request) {
	s.resolveVerification(w, r, true)
}

func (s *Server) RejectVerification(w http.ResponseWriter, r *http.Request) {
	s.resolveVerification(w, r, false)
}

func (s *Server) resolveVerification(w http.ResponseWriter, r *http.Request, approve bool) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("resolve verification error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	verificationID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("resolve verification error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid verification id in path value", nil)
		return
	}
	var req ResolveVerificationRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.RequesterID == uuid.Nil {
		logger.Error("resolve verification error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if approve {
		err = s.verificationsService.Approve(ctx, actor, verificationID, req.RequesterID)
	} else {
		err = s.verificationsService.Reject(ctx, actor, verificationID, req.RequesterID)
	}
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrVerificationNotFound):
			logger.Error("resolve verification error: unexist verification")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "verification doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrVerificationResolved):
			logger.Error("resolve verification error: already resolved")
			httputil.WriteErrorResponse(w, http.StatusConflict, "verification already resolved", nil)
		case errors.Is(err, errorvalues.ErrSelfVerification):
			logger.Error("resolve verification error: self approval attempt")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "own requests can't be reviewed", nil)
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("resolve verification error: not a group member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not a member of the group", nil)
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("resolve verification error: goal is gone")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		default:
			logger.Error("resolve verification error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while resolving verification", nil)
		}
		return
	}
	status := "rejected"
	if approve {
		status = "approved"
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"id":     verificationID.String(),
		"status": status,
	})
	logger.Info("verification resolved", slog.String("status", status))
}

func (s *Server) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("get stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.statsService.GetStats(ctx, actor.ID)
	if err != nil {
		logger.Error("get stats error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting stats", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("stats provided")
}

func (s *Server) StartFocus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("start focus error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StartFocusRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil || req.GoalID == uuid.Nil {
		logger.Error("start focus error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	focus, err := s.statsService.StartFocus(ctx, actor.ID, req.GoalID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound):
			logger.Error("start focus error: unexist goal")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "goal doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrStatsNotFound):
			logger.Error("start focus error: unexist stats row")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "stats don't exist", nil)
		default:
			logger.Error("start focus error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while starting focus", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, focus)
	logger.Info("focus started")
}

func (s *Server) StopFocus(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("stop focus error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.statsService.StopFocus(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, errorvalues.ErrStatsNotFound) {
			logger.Error("stop focus error: unexist stats row")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "stats don't exist", nil)
			return
		}
		logger.Error("stop focus error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while stopping focus", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("focus stopped")
}

func (s *Server) GetGroups(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("get groups error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	groups, err := s.groupsService.ListGroups(ctx, actor.ID)
	if err != nil {
		logger.Error("get groups error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting groups", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"groups": groups,
	})
	logger.Info("groups provided")
}

func (s *Server) CreateGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("create group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req CreateGroupRequest
	defer r.Body.Close()
	err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		logger.Error("create group error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	group, err := s.groupsService.CreateGroup(ctx, actor.ID, req.Name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrEmptyTitle) {
			logger.Error("create group error: empty name")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "name must not be empty", nil)
			return
		}
		logger.Error("create group error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while creating group", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, group)
	logger.Info("group created")
}

func (s *Server) JoinGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("join group error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("join group error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.groupsService.JoinGroup(ctx, actor.ID, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrGroupNotFound) {
			logger.Error("join group error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist", nil)
			return
		}
		logger.Error("join group error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while joining group", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]any{
		"group_id": id.String(),
	})
	logger.Info("group joined")
}

func (s *Server) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("group deletion error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("group deletion error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	err = s.groupsService.DeleteGroup(ctx, actor.ID, id)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("group deletion error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("group deletion error: actor is not the creator")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "only the creator can delete a group", nil)
		default:
			logger.Error("group deletion error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while deleting group", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusNoContent, nil)
	logger.Info("group deleted")
}

func (s *Server) GetGroupActivities(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	actor, err := GetActorFromContext(r)
	if err != nil {
		logger.Error("get activities error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		logger.Error("get activities error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid group id in path value", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 || limit > 100 {
		limit = 20
	}
	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	mineOnly := r.URL.Query().Get("mine") == "true"
	offset := (page - 1) * limit
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*15)
	defer cancel()
	activities, err := s.groupsService.ActivityFeed(ctx, actor.ID, id, mineOnly, service.PaginationOpts{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGroupNotFound):
			logger.Error("get activities error: unexist group")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "group doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrNotGroupMember):
			logger.Error("get activities error: not a group member")
			httputil.WriteErrorResponse(w, http.StatusForbidden, "not a member of the group", nil)
		default:
			logger.Error("get activities error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while getting activities", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, GetActivitiesResponse{
		GroupID:    id.String(),
		Page:       page,
		Limit:      limit,
		Activities: activities,
	})
	logger.Info("activities provided")
}
