// @title Questline API
// @description API for the goal tracker app "Questline"
// @BasePath /api/v1
// @schemes http
package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nkaz/questline/internal/api"
	"github.com/nkaz/questline/internal/cache"
	"github.com/nkaz/questline/internal/repository"
	"github.com/nkaz/questline/internal/service"
	"github.com/nkaz/questline/pkg/cleanup"
	"github.com/nkaz/questline/pkg/config"
	jwtservice "github.com/nkaz/questline/pkg/jwt_service"
)

func init() {
	service.InitValidator()
}

func main() {
	cfg := config.New()
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
	}
	mirror, err := cache.NewGoalMirror(cfg.GetString("REDIS_URL"))
	if err != nil {
		log.Fatal("connecting to redis error: " + err.Error())
	}

	usersRepo := repository.NewUsersRepo(&dbCfg)
	goalsRepo := repository.NewGoalsRepo(&dbCfg)
	verificationsRepo := repository.NewVerificationsRepo(&dbCfg)
	statsRepo := repository.NewStatsRepo(&dbCfg)
	groupsRepo := repository.NewGroupsRepo(&dbCfg)
	activitiesRepo := repository.NewActivitiesRepo(&dbCfg)

	userService := service.NewUserService(usersRepo)
	statsService := service.NewStatsService(statsRepo, goalsRepo)
	goalsService := service.NewGoalsService(goalsRepo, groupsRepo, activitiesRepo, statsService, mirror)
	verificationsService := service.NewVerificationsService(verificationsRepo, mirror)
	groupsService := service.NewGroupsService(groupsRepo, activitiesRepo)

	serv := api.New(&api.ServicesList{
		UserService:          userService,
		GoalsService:         goalsService,
		VerificationsService: verificationsService,
		StatsService:         statsService,
		GroupsService:        groupsService,
		JwtService:           jwtservice.New(cfg.GetString("JWT_SECRET")),
	})

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-stop
		cleanup.CleanUp()
		os.Exit(0)
	}()

	err = serv.Run(cfg.GetString("API_ADDRESS"))
	if err != nil {
		log.Println("Server error: " + err.Error())
	}
	cleanup.CleanUp()
}
