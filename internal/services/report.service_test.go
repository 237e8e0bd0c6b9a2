package services

import (
	"testing"
	"time"
	. "washboard/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

type reportFixture struct {
	washerA *Employee
	washerB *Employee
	admin   *Employee
	roster  []*Employee
	cfg     SalaryConfig
	today   time.Time
}

func newReportFixture() reportFixture {
	washerA := &Employee{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}, Name: "Washer A", Role: RoleWasher}
	washerB := &Employee{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}, Name: "Washer B", Role: RoleWasher}
	admin := &Employee{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}, Name: "Admin", Role: RoleAdmin}

	return reportFixture{
		washerA: washerA,
		washerB: washerB,
		admin:   admin,
		roster:  []*Employee{washerA, washerB, admin},
		cfg:     testSalaryConfig(),
		today:   day("2025-03-20"),
	}
}

func record(on string, price int64, payment PaymentType, employees ...Employee) *WashRecord {
	return &WashRecord{
		BaseUUIDModel: BaseUUIDModel{ID: uuid.New()},
		ServiceDate:   day(on),
		Price:         decimal.NewFromInt(price),
		PaymentType:   payment,
		Employees:     employees,
	}
}

func assignment(on string, employeeID uuid.UUID, role *EmployeeRole, minimum *bool) *DailyRoleAssignment {
	return &DailyRoleAssignment{
		AssignmentDate: day(on),
		EmployeeID:     employeeID,
		Role:           role,
		MinimumApplies: minimum,
	}
}

func rowFor(t *testing.T, report *EarningsReport, id uuid.UUID) EarningsReportRow {
	t.Helper()
	for _, row := range report.Rows {
		if row.EmployeeID == id {
			return row
		}
	}
	t.Fatalf("no report row for employee %s", id)
	return EarningsReportRow{}
}

func TestBuildEarningsReport_SingleDay(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher
	adminRole := RoleAdmin

	records := []*WashRecord{
		record("2025-03-10", 90, PaymentCash, *f.washerA, *f.washerB),
		record("2025-03-10", 120, PaymentCard, *f.washerA),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
		assignment("2025-03-10", f.washerB.ID, &washerRole, nil),
		assignment("2025-03-10", f.admin.ID, &adminRole, nil),
	}

	data := IndexRangeData(records, assignments, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	require.Len(t, report.Rows, 3)

	rowA := rowFor(t, report, f.washerA.ID)
	// Cash share 45 from the split record plus the solo 120 card record
	assert.True(t, rowA.TotalCash.Equal(decimal.NewFromInt(45)))
	assert.True(t, rowA.TotalNonCash.Equal(decimal.NewFromInt(120)))
	assert.True(t, rowA.TotalServiceValue.Equal(decimal.NewFromInt(165)))
	assert.Equal(t, 2, rowA.RecordsCount)
	// 165 * 0.35 = 57.75, above the 50 floor
	assert.True(t, rowA.CalculatedEarnings.Equal(decimal.NewFromFloat(57.75)))
	assert.False(t, rowA.IsManual)

	rowB := rowFor(t, report, f.washerB.ID)
	assert.True(t, rowB.TotalCash.Equal(decimal.NewFromInt(45)))
	assert.True(t, rowB.TotalServiceValue.Equal(decimal.NewFromInt(45)))
	// 45 * 0.35 = 15.75, floored to the washer minimum
	assert.True(t, rowB.CalculatedEarnings.Equal(decimal.NewFromInt(50)))

	rowAdmin := rowFor(t, report, f.admin.ID)
	assert.True(t, rowAdmin.TotalServiceValue.IsZero())
	assert.Equal(t, 0, rowAdmin.RecordsCount)
	// 210 * 0.10 = 21, floored to the admin minimum 40
	assert.True(t, rowAdmin.CalculatedEarnings.Equal(decimal.NewFromInt(40)))

	assert.True(t, report.Totals.TotalRevenue.Equal(decimal.NewFromInt(210)))
	assert.True(t, report.Totals.TotalSalaries.Equal(
		rowA.CalculatedEarnings.Add(rowB.CalculatedEarnings).Add(rowAdmin.CalculatedEarnings)))
	assert.Equal(t, "2025-03-10", report.Start)
	assert.Equal(t, "2025-03-10", report.End)
}

func TestBuildEarningsReport_Idempotent(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher

	records := []*WashRecord{
		record("2025-03-10", 90, PaymentCash, *f.washerA, *f.washerB),
		record("2025-03-11", 75, PaymentDebt, *f.washerB),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
		assignment("2025-03-11", f.washerB.ID, &washerRole, nil),
	}

	data := IndexRangeData(records, assignments, nil, f.roster)
	rng := ResolveRange(PeriodCustom, time.Time{}, day("2025-03-10"), day("2025-03-11"))

	first := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)
	second := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	assert.Equal(t, first, second)
}

func TestBuildEarningsReport_HistoricalDaysIgnoreLiveRole(t *testing.T) {
	f := newReportFixture()

	// Admin's live role is admin, but the past day has no sheet entry for
	// them. They worked a record that day, so they are paid as a washer.
	records := []*WashRecord{
		record("2025-03-10", 200, PaymentCash, *f.admin),
	}

	data := IndexRangeData(records, []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, nil, nil),
	}, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	row := rowFor(t, report, f.admin.ID)
	// Washer pay: 200 * 0.35 = 70. Admin pay would have been 200 * 0.10
	// floored to 40.
	assert.True(t, row.CalculatedEarnings.Equal(decimal.NewFromInt(70)))
}

func TestBuildEarningsReport_TodayFallsBackToLiveRole(t *testing.T) {
	f := newReportFixture()
	todayKey := "2025-03-20"

	records := []*WashRecord{
		record(todayKey, 200, PaymentCash, *f.washerA),
	}
	// Admin is on today's sheet with no explicit role, so the live role wins.
	data := IndexRangeData(records, []*DailyRoleAssignment{
		assignment(todayKey, f.admin.ID, nil, nil),
	}, nil, f.roster)
	rng := ResolveRange(PeriodDay, day(todayKey), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	row := rowFor(t, report, f.admin.ID)
	// Admin pay: 200 * 0.10 = 20, floored to 40
	assert.True(t, row.CalculatedEarnings.Equal(decimal.NewFromInt(40)))
}

func TestBuildEarningsReport_RevenueSplitsEvenly(t *testing.T) {
	f := newReportFixture()
	third := Employee{BaseUUIDModel: BaseUUIDModel{ID: uuid.New()}, Name: "Washer C", Role: RoleWasher}

	records := []*WashRecord{
		record("2025-03-10", 90, PaymentCash, *f.washerA, *f.washerB, third),
	}

	data := IndexRangeData(records, nil, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	require.Len(t, report.Rows, 3)
	for _, id := range []uuid.UUID{f.washerA.ID, f.washerB.ID, third.ID} {
		row := rowFor(t, report, id)
		assert.True(t, row.TotalCash.Equal(decimal.NewFromInt(30)), "each participant gets an even 30 share")
	}
	// The third washer is absent from the roster but still gets a named row.
	assert.Equal(t, "Washer C", rowFor(t, report, third.ID).EmployeeName)
}

func TestBuildEarningsReport_ManualOverrideWins(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher

	records := []*WashRecord{
		record("2025-03-10", 400, PaymentCash, *f.washerA),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
	}
	overrides := []*DailyReportOverride{
		{
			ReportDate: day("2025-03-10"),
			ManualSalaries: datatypes.JSONMap{
				f.washerA.ID.String(): 150.0,
			},
		},
	}

	data := IndexRangeData(records, assignments, overrides, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	row := rowFor(t, report, f.washerA.ID)
	// Computed would be 400 * 0.35 = 140, the manual 150 replaces it
	assert.True(t, row.CalculatedEarnings.Equal(decimal.NewFromInt(150)))
	assert.True(t, row.IsManual)
	// Revenue buckets are untouched by the override
	assert.True(t, row.TotalCash.Equal(decimal.NewFromInt(400)))
	assert.True(t, report.Totals.TotalSalaries.Equal(decimal.NewFromInt(150)))
}

func TestBuildEarningsReport_OverrideOnlyAffectsItsDay(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher

	records := []*WashRecord{
		record("2025-03-10", 400, PaymentCash, *f.washerA),
		record("2025-03-11", 400, PaymentCash, *f.washerA),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
		assignment("2025-03-11", f.washerA.ID, &washerRole, nil),
	}
	overrides := []*DailyReportOverride{
		{
			ReportDate: day("2025-03-10"),
			ManualSalaries: datatypes.JSONMap{
				f.washerA.ID.String(): 100.0,
			},
		},
	}

	data := IndexRangeData(records, assignments, overrides, f.roster)
	rng := ResolveRange(PeriodCustom, time.Time{}, day("2025-03-10"), day("2025-03-11"))

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	row := rowFor(t, report, f.washerA.ID)
	// 100 manual for the 10th plus computed 140 for the 11th
	assert.True(t, row.CalculatedEarnings.Equal(decimal.NewFromInt(240)))
	assert.True(t, row.IsManual)
}

func TestBuildEarningsReport_ZeroParticipationExcluded(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher

	records := []*WashRecord{
		record("2025-03-10", 100, PaymentCash, *f.washerA),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
	}

	data := IndexRangeData(records, assignments, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	// Washer B and the admin are on the roster but did nothing in range.
	require.Len(t, report.Rows, 1)
	assert.Equal(t, f.washerA.ID, report.Rows[0].EmployeeID)
}

func TestBuildEarningsReport_AssignmentAloneCreatesRow(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher

	// On the sheet, no records anywhere: minimum is still owed.
	data := IndexRangeData(nil, []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerB.ID, &washerRole, nil),
	}, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, f.washerB.ID, row.EmployeeID)
	assert.True(t, row.CalculatedEarnings.Equal(decimal.NewFromInt(50)))
	assert.True(t, row.TotalServiceValue.IsZero())
	assert.Equal(t, 0, row.RecordsCount)
}

func TestBuildEarningsReport_RecordsWithoutSheetStillEarnRevenue(t *testing.T) {
	f := newReportFixture()

	// No assignments at all for the day: no salary pass runs, but the
	// revenue pass still attributes the record.
	records := []*WashRecord{
		record("2025-03-10", 80, PaymentOrganization, *f.washerA),
	}

	data := IndexRangeData(records, nil, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.True(t, row.TotalOrganizations.Equal(decimal.NewFromInt(80)))
	assert.True(t, row.CalculatedEarnings.IsZero())
}

func TestBuildEarningsReport_EmployeeFilter(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher

	records := []*WashRecord{
		record("2025-03-10", 90, PaymentCash, *f.washerA, *f.washerB),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
		assignment("2025-03-10", f.washerB.ID, &washerRole, nil),
	}

	data := IndexRangeData(records, assignments, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, &f.washerA.ID, f.cfg, NewSalaryService(), f.today)

	require.Len(t, report.Rows, 1)
	row := report.Rows[0]
	assert.Equal(t, f.washerA.ID, row.EmployeeID)
	// The filtered employee still only gets their own 45 share
	assert.True(t, row.TotalCash.Equal(decimal.NewFromInt(45)))
	assert.True(t, report.Totals.TotalRevenue.Equal(decimal.NewFromInt(45)))
}

func TestBuildEarningsReport_RowsSortedByEarningsDesc(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher
	adminRole := RoleAdmin

	records := []*WashRecord{
		record("2025-03-10", 600, PaymentCash, *f.washerA),
		record("2025-03-10", 100, PaymentCash, *f.washerB),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, nil),
		assignment("2025-03-10", f.washerB.ID, &washerRole, nil),
		assignment("2025-03-10", f.admin.ID, &adminRole, nil),
	}

	data := IndexRangeData(records, assignments, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	require.Len(t, report.Rows, 3)
	for i := 1; i < len(report.Rows); i++ {
		assert.True(t,
			report.Rows[i].CalculatedEarnings.LessThanOrEqual(report.Rows[i-1].CalculatedEarnings),
			"rows must be ordered by earnings descending")
	}
	assert.Equal(t, f.washerA.ID, report.Rows[0].EmployeeID)
}

func TestBuildEarningsReport_EmptyRange(t *testing.T) {
	f := newReportFixture()

	data := IndexRangeData(nil, nil, nil, f.roster)
	rng := ResolveRange(PeriodDay, day("2025-03-10"), time.Time{}, time.Time{})

	report := BuildEarningsReport(data, rng, nil, f.cfg, NewSalaryService(), f.today)

	assert.Empty(t, report.Rows)
	assert.True(t, report.Totals.TotalRevenue.IsZero())
	assert.True(t, report.Totals.TotalSalaries.IsZero())
}

func TestReportService_DeliverOrdering(t *testing.T) {
	service := &ReportService{}

	assert.True(t, service.deliver(1))
	assert.True(t, service.deliver(3))
	assert.False(t, service.deliver(2), "an older computation must not supersede a newer one")
	assert.Equal(t, uint64(3), service.latest.Load())
}

func TestIndexRangeData(t *testing.T) {
	f := newReportFixture()
	washerRole := RoleWasher
	waived := false

	records := []*WashRecord{
		record("2025-03-10", 100, PaymentCash, *f.washerA),
		record("2025-03-10", 50, PaymentCard, *f.washerB),
		record("2025-03-11", 75, PaymentCash, *f.washerA),
	}
	assignments := []*DailyRoleAssignment{
		assignment("2025-03-10", f.washerA.ID, &washerRole, &waived),
	}
	overrides := []*DailyReportOverride{
		{ReportDate: day("2025-03-11"), ManualSalaries: datatypes.JSONMap{}},
	}

	data := IndexRangeData(records, assignments, overrides, f.roster)

	assert.Len(t, data.RecordsByDay["2025-03-10"], 2)
	assert.Len(t, data.RecordsByDay["2025-03-11"], 1)

	entry, ok := data.RolesByDay["2025-03-10"][f.washerA.ID]
	require.True(t, ok)
	require.NotNil(t, entry.Role)
	assert.Equal(t, RoleWasher, *entry.Role)
	assert.False(t, entry.MinimumOn())

	assert.Contains(t, data.OverridesByDay, "2025-03-11")
	assert.Len(t, data.Roster, 3)
}
