package models

type EmployeeRole string

const (
	RoleWasher EmployeeRole = "washer"
	RoleAdmin  EmployeeRole = "admin"
)

func (r EmployeeRole) IsValid() bool {
	return r == RoleWasher || r == RoleAdmin
}

// Employee is the roster entry. Role is the employee's current live role and is
// only consulted when resolving today's participation without an explicit daily
// assignment. Historical days never fall back to it.
type Employee struct {
	BaseUUIDModel
	Name     string       `gorm:"not null"                                 json:"name"`
	Role     EmployeeRole `gorm:"type:varchar(16);not null;default:washer" json:"role"`
	IsActive bool         `gorm:"not null;default:true"                    json:"isActive"`
}
