package reportsController

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestGetEarningsReport_Validation(t *testing.T) {
	controller := &ReportsController{}
	ctx := context.Background()

	t.Run("rejects unknown period", func(t *testing.T) {
		_, err := controller.GetEarningsReport(ctx, &EarningsReportRequest{Period: "year"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects malformed anchor", func(t *testing.T) {
		_, err := controller.GetEarningsReport(ctx, &EarningsReportRequest{Anchor: "03/10/2025"})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("custom period requires start and end", func(t *testing.T) {
		_, err := controller.GetEarningsReport(ctx, &EarningsReportRequest{
			Period: "custom",
			Start:  "2025-03-10",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects malformed employee id", func(t *testing.T) {
		_, err := controller.GetEarningsReport(ctx, &EarningsReportRequest{
			Period:     "day",
			Anchor:     "2025-03-10",
			EmployeeID: "not-a-uuid",
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}

func TestGetDailySnapshot_Validation(t *testing.T) {
	controller := &ReportsController{}

	_, err := controller.GetDailySnapshot(context.Background(), "yesterday")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestEditManualSalary_Validation(t *testing.T) {
	controller := &ReportsController{}
	ctx := context.Background()

	amount := func(s string) *string { return &s }

	t.Run("requires employee id", func(t *testing.T) {
		_, err := controller.EditManualSalary(ctx, &EditManualSalaryRequest{
			Date:   "2025-03-10",
			Amount: amount("100"),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects malformed date", func(t *testing.T) {
		_, err := controller.EditManualSalary(ctx, &EditManualSalaryRequest{
			EmployeeID: uuid.New(),
			Date:       "10.03.2025",
			Amount:     amount("100"),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects non numeric amount", func(t *testing.T) {
		_, err := controller.EditManualSalary(ctx, &EditManualSalaryRequest{
			EmployeeID: uuid.New(),
			Date:       "2025-03-10",
			Amount:     amount("lots"),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		_, err := controller.EditManualSalary(ctx, &EditManualSalaryRequest{
			EmployeeID: uuid.New(),
			Date:       "2025-03-10",
			Amount:     amount("-25"),
		})
		assert.ErrorIs(t, err, ErrValidation)
	})
}
