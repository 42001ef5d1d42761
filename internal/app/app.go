package app

import (
	"context"

	"musea/config"
	"musea/internal/controllers"
	"musea/internal/database"
	"musea/internal/handlers/middleware"
	"musea/internal/jobs"
	"musea/internal/repositories"
	"musea/internal/services"
	"musea/pkg/logger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Config     config.Config

	Repository  repositories.Repository
	Service     services.Service
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	repos := repositories.New(db)
	service := services.New(db, config, repos)
	middleware := middleware.New(db, config)
	controllers := controllers.New(repos, service, db, config)

	if config.SchedulerEnabled {
		digestJob := jobs.NewUpcomingMaintenanceJob(service.Maintenance, services.Daily)
		if err := service.Scheduler.AddJob(digestJob); err != nil {
			return &App{}, log.Err("failed to register upcoming maintenance job", err)
		}
		log.Info("Registered upcoming maintenance digest job with scheduler")

		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Repository:  repos,
		Service:     service,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.Service.Transaction,
		a.Service.Scheduler,
		a.Service.Maintenance,
		a.Repository.Maintenance,
		a.Repository.Artifact,
		a.Repository.Staff,
		a.Repository.Exhibition,
		a.Repository.Feedback,
		a.Controllers.Maintenance,
		a.Controllers.Artifact,
		a.Controllers.Staff,
		a.Controllers.Exhibition,
		a.Controllers.Feedback,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.Service.Scheduler != nil {
		if closeErr := a.Service.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
