package app

import (
	"context"
	"washboard/config"
	"washboard/internal/controllers"
	"washboard/internal/database"
	"washboard/internal/events"
	"washboard/internal/handlers/middleware"
	"washboard/internal/jobs"
	"washboard/internal/repositories"
	"washboard/internal/services"
	"washboard/internal/websockets"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Database   database.DB
	Middleware middleware.Middleware
	Websocket  *websockets.Manager
	EventBus   *events.EventBus
	Config     config.Config

	Repos       repositories.Repository
	Services    services.Service
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

	eventBus := events.New(db.Cache.Events, config)

	repos := repositories.New(db)
	svcs := services.New(db, config, repos)
	ctrls := controllers.New(repos, svcs, config, db, eventBus)

	websocket, err := websockets.New(db, eventBus, config)
	if err != nil {
		return &App{}, log.Err("failed to create websocket manager", err)
	}

	middleware := middleware.New(db, eventBus, config, repos)

	if config.SchedulerEnabled {
		if err := jobs.RegisterAllJobs(svcs.Scheduler, config, svcs, eventBus); err != nil {
			return &App{}, log.Err("failed to register scheduled jobs", err)
		}
		svcs.Scheduler.Start()
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		Repos:       repos,
		Services:    svcs,
		Controllers: ctrls,
		Websocket:   websocket,
		EventBus:    eventBus,
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
		a.Websocket,
		a.EventBus,
		a.Services.Transaction,
		a.Services.Salary,
		a.Services.Report,
		a.Services.Scheduler,
		a.Controllers.Reports,
		a.Controllers.Employees,
		a.Controllers.Washes,
		a.Controllers.Assignments,
		a.Repos.Employee,
		a.Repos.WashRecord,
		a.Repos.RoleAssignment,
		a.Repos.ReportOverride,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
