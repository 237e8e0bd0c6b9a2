package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentType string

const (
	PaymentCash         PaymentType = "cash"
	PaymentCard         PaymentType = "card"
	PaymentOrganization PaymentType = "organization"
	PaymentDebt         PaymentType = "debt"
)

func (p PaymentType) IsValid() bool {
	switch p {
	case PaymentCash, PaymentCard, PaymentOrganization, PaymentDebt:
		return true
	}
	return false
}

// WashRecord is one completed service transaction. Price is attributed evenly
// across Employees when building reports. Records are immutable inputs to the
// reporting pipeline.
type WashRecord struct {
	BaseUUIDModel
	ServiceDate      time.Time       `gorm:"type:date;not null;index"                 json:"serviceDate"`
	PerformedAt      *time.Time      `                                                json:"performedAt,omitempty"`
	Price            decimal.Decimal `gorm:"type:numeric(12,2);not null"              json:"price"`
	PaymentType      PaymentType     `gorm:"type:varchar(16);not null"                json:"paymentType"`
	OrganizationID   *uuid.UUID      `gorm:"type:uuid"                                json:"organizationId,omitempty"`
	OrganizationName *string         `                                                json:"organizationName,omitempty"`
	Employees        []Employee      `gorm:"many2many:wash_record_employees"          json:"employees"`
}

// EmployeeIDs returns the identifiers of the employees who performed the wash.
func (w *WashRecord) EmployeeIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(w.Employees))
	for _, employee := range w.Employees {
		ids = append(ids, employee.ID)
	}
	return ids
}

// Share is the even split of the record's price attributed to each employee.
func (w *WashRecord) Share() decimal.Decimal {
	if len(w.Employees) == 0 {
		return decimal.Zero
	}
	return w.Price.Div(decimal.NewFromInt(int64(len(w.Employees))))
}
