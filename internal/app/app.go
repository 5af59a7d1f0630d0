package app

import (
	"context"
	"time"

	"genrebox/config"
	genreController "genrebox/internal/controllers/genres"
	"genrebox/internal/handlers/middleware"
	"genrebox/internal/jobs"
	"genrebox/internal/repositories"
	"genrebox/internal/services"

	logger "github.com/Bparsons0904/goLogger"
)

type App struct {
	Config     config.Config
	Middleware middleware.Middleware
	StartedAt  time.Time

	// Services
	SchedulerService *services.SchedulerService

	// Repositories
	GenreRepo repositories.GenreRepository

	// Controllers
	GenreController genreController.GenreControllerInterface
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.New()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	startedAt := time.Now().UTC()

	// Initialize repositories
	repos := repositories.New()

	// Initialize services
	schedulerService := services.NewSchedulerService()

	// Initialize controllers
	genreController := genreController.New(repos.Genre)

	middleware := middleware.New(config)

	if config.SchedulerEnabled {
		statsJob := jobs.NewStoreStatsJob(repos.Genre, startedAt, services.Hourly)
		if err := schedulerService.AddJob(statsJob); err != nil {
			return &App{}, log.Err("failed to register store stats job", err)
		}

		if err := schedulerService.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Config:           config,
		Middleware:       middleware,
		StartedAt:        startedAt,
		SchedulerService: schedulerService,
		GenreRepo:        repos.Genre,
		GenreController:  genreController,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.SchedulerService,
		a.GenreRepo,
		a.GenreController,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.SchedulerService != nil {
		if closeErr := a.SchedulerService.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	return err
}
