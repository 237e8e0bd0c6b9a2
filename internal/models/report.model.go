package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EarningsReportRow is one employee's line in the earnings report for the
// selected range. Rows are rebuilt from scratch on every computation and carry
// no identity across recomputations.
type EarningsReportRow struct {
	EmployeeID         uuid.UUID       `json:"employeeId"`
	EmployeeName       string          `json:"employeeName"`
	TotalCash          decimal.Decimal `json:"totalCash"`
	TotalNonCash       decimal.Decimal `json:"totalNonCash"`
	TotalOrganizations decimal.Decimal `json:"totalOrganizations"`
	TotalDebt          decimal.Decimal `json:"totalDebt"`
	TotalServiceValue  decimal.Decimal `json:"totalServiceValue"`
	RecordsCount       int             `json:"recordsCount"`
	CalculatedEarnings decimal.Decimal `json:"calculatedEarnings"`
	IsManual           bool            `json:"isManual"`
}

type ReportTotals struct {
	TotalRevenue  decimal.Decimal `json:"totalRevenue"`
	TotalSalaries decimal.Decimal `json:"totalSalaries"`
}

// EarningsReport is the final artifact handed to the presentation layer. The
// sequence is monotonically increasing per computation so consumers can drop
// responses superseded by a newer request.
type EarningsReport struct {
	Rows     []EarningsReportRow `json:"rows"`
	Totals   ReportTotals        `json:"totals"`
	Start    string              `json:"start"`
	End      string              `json:"end"`
	Sequence uint64              `json:"sequence"`
}
