package controllers

import (
	"washboard/config"
	"washboard/internal/database"
	"washboard/internal/events"
	"washboard/internal/repositories"
	"washboard/internal/services"

	assignmentsController "washboard/internal/controllers/assignments"
	employeesController "washboard/internal/controllers/employees"
	reportsController "washboard/internal/controllers/reports"
	washesController "washboard/internal/controllers/washes"
)

type Controllers struct {
	Reports     reportsController.ReportsControllerInterface
	Employees   employeesController.EmployeesControllerInterface
	Washes      washesController.WashesControllerInterface
	Assignments assignmentsController.AssignmentsControllerInterface
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
	eventBus *events.EventBus,
) Controllers {
	return Controllers{
		Reports:     reportsController.New(services.Report, eventBus, config),
		Employees:   employeesController.New(repos, config, db, eventBus),
		Washes:      washesController.New(repos, config, db, eventBus),
		Assignments: assignmentsController.New(repos, services, config, db, eventBus),
	}
}
