package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// DailyReportOverride holds human-entered salary values for one calendar day.
// ManualSalaries maps employee ID to the amount that replaces the computed
// salary for that day. A row exists only for days where an editor saved an
// override.
type DailyReportOverride struct {
	BaseModel
	ReportDate     time.Time         `gorm:"type:date;not null;uniqueIndex" json:"reportDate"`
	ManualSalaries datatypes.JSONMap `gorm:"type:jsonb"                     json:"manualSalaries"`
}

// ManualSalaryFor returns the override amount for an employee, if one was saved.
// JSONB round-trips numbers as float64 and tolerates string amounts from older
// clients.
func (o *DailyReportOverride) ManualSalaryFor(employeeID uuid.UUID) (decimal.Decimal, bool) {
	if o == nil || o.ManualSalaries == nil {
		return decimal.Zero, false
	}

	raw, ok := o.ManualSalaries[employeeID.String()]
	if !ok {
		return decimal.Zero, false
	}

	switch value := raw.(type) {
	case float64:
		return decimal.NewFromFloat(value), true
	case string:
		amount, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero, false
		}
		return amount, true
	}

	return decimal.Zero, false
}

// SetManualSalary records or removes an employee's override for the day. A nil
// amount clears the entry.
func (o *DailyReportOverride) SetManualSalary(employeeID uuid.UUID, amount *decimal.Decimal) {
	if o.ManualSalaries == nil {
		o.ManualSalaries = datatypes.JSONMap{}
	}

	if amount == nil {
		delete(o.ManualSalaries, employeeID.String())
		return
	}

	value, _ := amount.Float64()
	o.ManualSalaries[employeeID.String()] = value
}

// IsEmpty reports whether the override carries no manual salaries at all.
func (o *DailyReportOverride) IsEmpty() bool {
	return o == nil || len(o.ManualSalaries) == 0
}
