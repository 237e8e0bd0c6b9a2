package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestWashRecord_Share(t *testing.T) {
	employees := []Employee{
		{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}},
		{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}},
		{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}},
	}

	t.Run("splits price evenly", func(t *testing.T) {
		record := &WashRecord{
			Price:     decimal.NewFromInt(90),
			Employees: employees,
		}

		assert.True(t, record.Share().Equal(decimal.NewFromInt(30)))
	})

	t.Run("single employee keeps the whole price", func(t *testing.T) {
		record := &WashRecord{
			Price:     decimal.NewFromInt(90),
			Employees: employees[:1],
		}

		assert.True(t, record.Share().Equal(decimal.NewFromInt(90)))
	})

	t.Run("no employees yields zero", func(t *testing.T) {
		record := &WashRecord{Price: decimal.NewFromInt(90)}

		assert.True(t, record.Share().IsZero())
	})
}

func TestWashRecord_EmployeeIDs(t *testing.T) {
	a := Employee{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}}
	b := Employee{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}}

	record := &WashRecord{Employees: []Employee{a, b}}

	assert.Equal(t, []uuid.UUID{a.ID, b.ID}, record.EmployeeIDs())
}

func TestPaymentType_IsValid(t *testing.T) {
	assert.True(t, PaymentCash.IsValid())
	assert.True(t, PaymentCard.IsValid())
	assert.True(t, PaymentOrganization.IsValid())
	assert.True(t, PaymentDebt.IsValid())
	assert.False(t, PaymentType("crypto").IsValid())
}
