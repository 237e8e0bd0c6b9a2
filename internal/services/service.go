package services

import (
	"washboard/config"
	"washboard/internal/database"
	"washboard/internal/repositories"
)

type Service struct {
	Transaction *TransactionService
	Salary      *SalaryService
	Report      *ReportService
	Scheduler   *SchedulerService
}

func New(db database.DB, config config.Config, repos repositories.Repository) Service {
	transactionService := NewTransactionService(db)
	salaryService := NewSalaryService()
	reportService := NewReportService(db, repos, salaryService, config)
	schedulerService := NewSchedulerService()

	return Service{
		Transaction: transactionService,
		Salary:      salaryService,
		Report:      reportService,
		Scheduler:   schedulerService,
	}
}
