package middleware

import (
	"washboard/config"
	"washboard/internal/database"
	"washboard/internal/events"
	"washboard/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
)

type Middleware struct {
	DB           database.DB
	employeeRepo repositories.EmployeeRepository
	Config       config.Config
	log          logger.Logger
	eventBus     *events.EventBus
}

func New(
	db database.DB,
	eventBus *events.EventBus,
	config config.Config,
	repos repositories.Repository,
) Middleware {
	log := logger.New("middleware")

	return Middleware{
		DB:           db,
		employeeRepo: repos.Employee,
		Config:       config,
		log:          log,
		eventBus:     eventBus,
	}
}
