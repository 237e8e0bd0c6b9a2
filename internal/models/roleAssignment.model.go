package models

import (
	"time"

	"github.com/google/uuid"
)

// DailyRoleAssignment is one employee's sheet entry for one calendar day.
// Role and MinimumApplies are independently optional: either can be set
// without the other. A nil MinimumApplies means the minimum-wage floor
// applies, the floor is only waived when the flag is explicitly false.
type DailyRoleAssignment struct {
	BaseModel
	AssignmentDate time.Time     `gorm:"type:date;not null;uniqueIndex:idx_assignment_day_employee" json:"assignmentDate"`
	EmployeeID     uuid.UUID     `gorm:"type:uuid;not null;uniqueIndex:idx_assignment_day_employee" json:"employeeId"`
	Employee       Employee      `gorm:"foreignKey:EmployeeID"                                      json:"employee"`
	Role           *EmployeeRole `gorm:"type:varchar(16)"                                           json:"role,omitempty"`
	MinimumApplies *bool         `                                                                  json:"minimumApplies,omitempty"`
}

// DayRoleEntry is the in-memory form of an assignment used by the reporting
// pipeline, keyed per day and employee.
type DayRoleEntry struct {
	Role           *EmployeeRole
	MinimumApplies *bool
}

// MinimumOn resolves the minimum-wage flag with its absent-means-true default.
func (e DayRoleEntry) MinimumOn() bool {
	if e.MinimumApplies == nil {
		return true
	}
	return *e.MinimumApplies
}
