package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/nkaz/questline/internal/service"
)

type Server struct {
	mx                   *chi.Mux
	userService          service.UserServiceI
	goalsService         service.GoalsServiceI
	verificationsService service.VerificationsServiceI
	statsService         service.StatsServiceI
	groupsService        service.GroupsServiceI
	jwtService           JWTServiceI
}

type ServicesList struct {
	UserService          service.UserServiceI
	GoalsService         service.GoalsServiceI
	VerificationsService service.VerificationsServiceI
	StatsService         service.StatsServiceI
	GroupsService        service.GroupsServiceI
	JwtService           JWTServiceI
}

func New(servicesOptions *ServicesList) *Server {
	return &Server{
		mx:                   chi.NewMux(),
		userService:          servicesOptions.UserService,
		goalsService:         servicesOptions.GoalsService,
		verificationsService: servicesOptions.VerificationsService,
		statsService:         servicesOptions.StatsService,
		groupsService:        servicesOptions.GroupsService,
		jwtService:           servicesOptions.JwtService,
	}
}

func (s *Server) Run(address string) error {
	s.mx.Use(s.RequestIDMiddleware)
	s.mx.Use(s.SettingUpLoggerMiddleware)
	s.mx.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/register", s.Register)
		r.Post("/auth/login", s.Login)
		r.Group(func(r chi.Router) {
			r.Use(s.AuthMiddleware)
			r.Use(s.LoggerExtensionMiddleware)
			r.Delete("/auth/account", s.DeleteAccount)
			r.Get("/goals", s.GetGoals)
			r.Post("/goals", s.CreateGoal)
			r.Post("/goals/reorder", s.ReorderGoals)
			r.Delete("/goals/{id}", s.DeleteGoal)
			r.Post("/goals/{id}/toggle", s.ToggleStep)
			r.Post("/goals/{id}/complete", s.CompleteGoal)
			r.Post("/goals/{id}/share", s.ShareGoal)
			r.Post("/goals/{id}/verification", s.RequestVerification)
			r.Post("/verifications/{id}/approve", s.ApproveVerification)
			r.Post("/verifications/{id}/reject", s.RejectVerification)
			r.Get("/stats", s.GetStats)
			r.Post("/stats/focus", s.StartFocus)
			r.Delete("/stats/focus", s.StopFocus)
			r.Get("/groups", s.GetGroups)
			r.Post("/groups", s.CreateGroup)
			r.Delete("/groups/{id}", s.DeleteGroup)
			r.Post("/groups/{id}/join", s.JoinGroup)
			r.Get("/groups/{id}/activities", s.GetGroupActivities)
		})
	})
	return http.ListenAndServe(address, s.mx)
}
