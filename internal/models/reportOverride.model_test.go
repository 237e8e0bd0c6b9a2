package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestDailyReportOverride_ManualSalaryFor(t *testing.T) {
	employeeID := uuid.New()

	t.Run("reads float amounts from jsonb", func(t *testing.T) {
		override := &DailyReportOverride{
			ManualSalaries: datatypes.JSONMap{employeeID.String(): 150.0},
		}

		amount, ok := override.ManualSalaryFor(employeeID)
		require.True(t, ok)
		assert.True(t, amount.Equal(decimal.NewFromInt(150)))
	})

	t.Run("reads string amounts from older clients", func(t *testing.T) {
		override := &DailyReportOverride{
			ManualSalaries: datatypes.JSONMap{employeeID.String(): "87.50"},
		}

		amount, ok := override.ManualSalaryFor(employeeID)
		require.True(t, ok)
		assert.True(t, amount.Equal(decimal.NewFromFloat(87.5)))
	})

	t.Run("missing employee", func(t *testing.T) {
		override := &DailyReportOverride{ManualSalaries: datatypes.JSONMap{}}

		_, ok := override.ManualSalaryFor(employeeID)
		assert.False(t, ok)
	})

	t.Run("nil override", func(t *testing.T) {
		var override *DailyReportOverride

		_, ok := override.ManualSalaryFor(employeeID)
		assert.False(t, ok)
	})

	t.Run("unparseable string is ignored", func(t *testing.T) {
		override := &DailyReportOverride{
			ManualSalaries: datatypes.JSONMap{employeeID.String(): "a lot"},
		}

		_, ok := override.ManualSalaryFor(employeeID)
		assert.False(t, ok)
	})
}

func TestDailyReportOverride_SetManualSalary(t *testing.T) {
	employeeID := uuid.New()

	t.Run("sets and replaces an amount", func(t *testing.T) {
		override := &DailyReportOverride{}
		first := decimal.NewFromInt(100)
		second := decimal.NewFromInt(125)

		override.SetManualSalary(employeeID, &first)
		amount, ok := override.ManualSalaryFor(employeeID)
		require.True(t, ok)
		assert.True(t, amount.Equal(first))

		override.SetManualSalary(employeeID, &second)
		amount, ok = override.ManualSalaryFor(employeeID)
		require.True(t, ok)
		assert.True(t, amount.Equal(second))
	})

	t.Run("nil amount clears the entry", func(t *testing.T) {
		override := &DailyReportOverride{}
		amount := decimal.NewFromInt(100)

		override.SetManualSalary(employeeID, &amount)
		override.SetManualSalary(employeeID, nil)

		_, ok := override.ManualSalaryFor(employeeID)
		assert.False(t, ok)
		assert.True(t, override.IsEmpty())
	})
}
