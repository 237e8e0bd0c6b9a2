package repositories

import (
	"washboard/internal/database"
)

type Repository struct {
	Employee       EmployeeRepository
	WashRecord     WashRecordRepository
	RoleAssignment RoleAssignmentRepository
	ReportOverride ReportOverrideRepository
}

func New(db database.DB) Repository {
	return Repository{
		Employee:       NewEmployeeRepository(db), // roster is cached in valkey
		WashRecord:     NewWashRecordRepository(),
		RoleAssignment: NewRoleAssignmentRepository(),
		ReportOverride: NewReportOverrideRepository(),
	}
}
