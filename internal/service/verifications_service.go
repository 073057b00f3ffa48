package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/nkaz/questline/internal/cache"
	errorvalues "github.com/nkaz/questline/internal/error_values"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/pkg/entity"
	"github.com/nkaz/questline/pkg/leveling"
)

type VerificationsService struct {
	verificationsRepo repository.VerificationsRepositoryI
	mirror            cache.GoalMirrorI
}

func NewVerificationsService(verificationsRepo repository.VerificationsRepositoryI, mirror cache.GoalMirrorI) *VerificationsService {
	if verificationsRepo == nil || mirror == nil {
		log.Fatal("on verifications service provided nil dependencies")
	}
	return &VerificationsService{
		verificationsRepo: verificationsRepo,
		mirror:            mirror,
	}
}

func (vs *VerificationsService) RequestVerification(ctx context.Context, actor entity.Actor, input *RequestVerificationInput) (*entity.Verification, error) {
	proofURL := strings.TrimSpace(input.ProofURL)
	proofText := strings.TrimSpace(input.ProofText)
	// Exactly one proof form: a URL or a text note, never both, never neither.
	if (proofURL == "") == (proofText == "") {
		return nil, errorvalues.ErrProofRequired
	}
	verification := entity.Verification{
		ID:            uuid.New(),
		GoalID:        input.GoalID,
		RequesterID:   actor.ID,
		RequesterName: actor.Name,
		ProofURL:      proofURL,
		ProofText:     proofText,
		Status:        entity.VerificationPending,
		XPReward:      leveling.XPStepComplete,
	}
	err := vs.verificationsRepo.CreateRequest(ctx, actor, &verification)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrGoalNotFound),
			errors.Is(err, errorvalues.ErrUnauthorizedAccess),
			errors.Is(err, errorvalues.ErrNotGroupMember):
			return nil, err
		}
		return nil, errors.New("verifications repository error: " + err.Error())
	}
	vs.mirror.Invalidate(ctx, actor.ID)
	created, err := vs.verificationsRepo.GetByID(ctx, verification.ID)
	if err != nil {
		return nil, errors.New("verifications repository error: " + err.Error())
	}
	return created, nil
}

func (vs *VerificationsService) Approve(ctx context.Context, actor entity.Actor, verificationID, requesterID uuid.UUID) error {
	// Rejecting self-approval here spares a serializable transaction; the
	// transaction still re-checks against the stored requester.
	if actor.ID == requesterID {
		return errorvalues.ErrSelfVerification
	}
	err := vs.verificationsRepo.Approve(ctx, actor, verificationID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrVerificationNotFound),
			errors.Is(err, errorvalues.ErrVerificationResolved),
			errors.Is(err, errorvalues.ErrSelfVerification),
			errors.Is(err, errorvalues.ErrNotGroupMember),
			errors.Is(err, errorvalues.ErrGoalNotFound):
			return err
		}
		return errors.New("verifications repository error: " + err.Error())
	}
	// Both parties see the goal list change.
	vs.mirror.Invalidate(ctx, requesterID, actor.ID)
	return nil
}

func (vs *VerificationsService) Reject(ctx context.Context, actor entity.Actor, verificationID, requesterID uuid.UUID) error {
	if actor.ID == requesterID {
		return errorvalues.ErrSelfVerification
	}
	err := vs.verificationsRepo.Reject(ctx, actor, verificationID)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrVerificationNotFound),
			errors.Is(err, errorvalues.ErrVerificationResolved),
			errors.Is(err, errorvalues.ErrSelfVerification),
			errors.Is(err, errorvalues.ErrNotGroupMember),
			errors.Is(err, errorvalues.ErrGoalNotFound):
			return err
		}
		return errors.New("verifications repository error: " + err.Error())
	}
	vs.mirror.Invalidate(ctx, requesterID, actor.ID)
	return nil
}
