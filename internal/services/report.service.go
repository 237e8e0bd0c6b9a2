package services

import (
	"context"
	"sort"
	"sync/atomic"
	"time"
	"washboard/config"
	"washboard/internal/database"
	. "washboard/internal/models"
	"washboard/internal/repositories"
	"washboard/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	SNAPSHOT_CACHE_PREFIX = "report_snapshot"
	SNAPSHOT_CACHE_EXPIRY = 48 * time.Hour
)

// ReportQuery selects the period and optional single-employee filter for one
// report computation.
type ReportQuery struct {
	Period      PeriodType
	Anchor      time.Time
	CustomStart time.Time
	CustomEnd   time.Time
	EmployeeID  *uuid.UUID
}

// RangeData is the fetched input set for one computation, keyed by ISO day.
type RangeData struct {
	Records        []*WashRecord
	RecordsByDay   map[string][]*WashRecord
	RolesByDay     map[string]map[uuid.UUID]DayRoleEntry
	OverridesByDay map[string]*DailyReportOverride
	Roster         []*Employee
}

// ReportService runs the earnings pipeline: resolve range, fetch the three
// input collections, aggregate per day, reduce across days, materialize. The
// computation itself is a pure function; the service owns only fetching,
// sequencing, and the snapshot cache.
type ReportService struct {
	db             database.DB
	employeeRepo   repositories.EmployeeRepository
	washRecordRepo repositories.WashRecordRepository
	assignmentRepo repositories.RoleAssignmentRepository
	overrideRepo   repositories.ReportOverrideRepository
	calculator     SalaryCalculator
	salaryConfig   SalaryConfig
	log            logger.Logger
	seq            atomic.Uint64
	latest         atomic.Uint64
	now            func() time.Time
}

func NewReportService(
	db database.DB,
	repos repositories.Repository,
	calculator SalaryCalculator,
	cfg config.Config,
) *ReportService {
	return &ReportService{
		db:             db,
		employeeRepo:   repos.Employee,
		washRecordRepo: repos.WashRecord,
		assignmentRepo: repos.RoleAssignment,
		overrideRepo:   repos.ReportOverride,
		calculator:     calculator,
		salaryConfig:   SalaryConfigFrom(cfg),
		log:            logger.New("reportService"),
		now:            time.Now,
	}
}

// GetEarningsReport computes the report for the queried range. Each
// computation carries a monotonically increasing sequence so a slower,
// superseded response can be recognized and dropped by the consumer.
func (s *ReportService) GetEarningsReport(
	ctx context.Context,
	query ReportQuery,
) (*EarningsReport, error) {
	log := s.log.Function("GetEarningsReport")
	seq := s.seq.Add(1)

	rng := ResolveRange(query.Period, query.Anchor, query.CustomStart, query.CustomEnd)

	data, err := s.FetchRangeData(ctx, rng)
	if err != nil {
		return nil, log.Err("failed to fetch range data", err,
			"start", rng.StartKey(), "end", rng.EndKey())
	}

	report := BuildEarningsReport(data, rng, query.EmployeeID, s.salaryConfig, s.calculator, s.now())
	report.Sequence = seq
	s.deliver(seq)

	return report, nil
}

// FetchRangeData issues the three range queries concurrently plus the roster
// read, and joins on all of them. A failure of any one aborts the whole fetch,
// nothing partial is ever consumed.
func (s *ReportService) FetchRangeData(ctx context.Context, rng DateRange) (*RangeData, error) {
	log := s.log.Function("FetchRangeData")

	var (
		records     []*WashRecord
		assignments []*DailyRoleAssignment
		overrides   []*DailyReportOverride
		roster      []*Employee
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		var err error
		records, err = s.washRecordRepo.GetByDateRange(groupCtx, s.db.SQL, rng.Start, rng.End)
		return err
	})
	group.Go(func() error {
		var err error
		assignments, err = s.assignmentRepo.GetByDateRange(groupCtx, s.db.SQL, rng.Start, rng.End)
		return err
	})
	group.Go(func() error {
		var err error
		overrides, err = s.overrideRepo.GetByDateRange(groupCtx, s.db.SQL, rng.Start, rng.End)
		return err
	})
	group.Go(func() error {
		var err error
		roster, err = s.employeeRepo.GetAll(groupCtx, s.db.SQL)
		return err
	})

	if err := group.Wait(); err != nil {
		return nil, log.Err("range query failed", err, "start", rng.StartKey(), "end", rng.EndKey())
	}

	return IndexRangeData(records, assignments, overrides, roster), nil
}

// IndexRangeData shapes the fetched rows into the per-day maps the aggregation
// works from.
func IndexRangeData(
	records []*WashRecord,
	assignments []*DailyRoleAssignment,
	overrides []*DailyReportOverride,
	roster []*Employee,
) *RangeData {
	data := &RangeData{
		Records:        records,
		RecordsByDay:   make(map[string][]*WashRecord),
		RolesByDay:     make(map[string]map[uuid.UUID]DayRoleEntry),
		OverridesByDay: make(map[string]*DailyReportOverride),
		Roster:         roster,
	}

	for _, record := range records {
		key := utils.DayKey(record.ServiceDate)
		data.RecordsByDay[key] = append(data.RecordsByDay[key], record)
	}

	for _, assignment := range assignments {
		key := utils.DayKey(assignment.AssignmentDate)
		if data.RolesByDay[key] == nil {
			data.RolesByDay[key] = make(map[uuid.UUID]DayRoleEntry)
		}
		data.RolesByDay[key][assignment.EmployeeID] = DayRoleEntry{
			Role:           assignment.Role,
			MinimumApplies: assignment.MinimumApplies,
		}
	}

	for _, override := range overrides {
		data.OverridesByDay[utils.DayKey(override.ReportDate)] = override
	}

	return data
}

// BuildEarningsReport is the whole computation as a pure function: identical
// inputs produce identical output, aside from the explicit today rule for the
// live-role default.
func BuildEarningsReport(
	data *RangeData,
	rng DateRange,
	filter *uuid.UUID,
	cfg SalaryConfig,
	calculator SalaryCalculator,
	today time.Time,
) *EarningsReport {
	todayKey := utils.DayKey(today)

	liveRoles := make(map[uuid.UUID]EmployeeRole, len(data.Roster))
	names := make(map[uuid.UUID]string, len(data.Roster))
	for _, employee := range data.Roster {
		liveRoles[employee.ID] = employee.Role
		names[employee.ID] = employee.Name
	}

	earnings := make(map[uuid.UUID]decimal.Decimal)
	manual := make(map[uuid.UUID]bool)

	// Salary pass: one calculator call per day that has any role assignment.
	// Days with records but no sheet still contribute revenue below.
	dayKeys := make([]string, 0, len(data.RolesByDay))
	for key := range data.RolesByDay {
		dayKeys = append(dayKeys, key)
	}
	sort.Strings(dayKeys)

	for _, dayKey := range dayKeys {
		entries := data.RolesByDay[dayKey]
		recordsForDay := data.RecordsByDay[dayKey]

		participants := make(map[uuid.UUID]struct{}, len(entries))
		for employeeID := range entries {
			participants[employeeID] = struct{}{}
		}
		for _, record := range recordsForDay {
			for _, employeeID := range record.EmployeeIDs() {
				participants[employeeID] = struct{}{}
			}
		}

		if filter != nil {
			if _, ok := participants[*filter]; !ok {
				continue
			}
			participants = map[uuid.UUID]struct{}{*filter: {}}
		}

		if len(participants) == 0 {
			continue
		}

		roles := make(map[uuid.UUID]EmployeeRole, len(participants))
		minimums := make(map[uuid.UUID]bool, len(participants))
		for employeeID := range participants {
			entry, hasEntry := entries[employeeID]

			switch {
			case hasEntry && entry.Role != nil:
				roles[employeeID] = *entry.Role
			case dayKey == todayKey:
				// Only today may fall back to the live role. Any other
				// day without an explicit entry is paid as a washer so a
				// later promotion cannot inflate past earnings.
				if role, ok := liveRoles[employeeID]; ok {
					roles[employeeID] = role
				} else {
					roles[employeeID] = RoleWasher
				}
			default:
				roles[employeeID] = RoleWasher
			}

			if hasEntry {
				minimums[employeeID] = entry.MinimumOn()
			} else {
				minimums[employeeID] = true
			}
		}

		daySalaries := calculator.Calculate(cfg, recordsForDay, roles, data.Roster, minimums)

		override := data.OverridesByDay[dayKey]
		for _, daySalary := range daySalaries {
			salary := daySalary.CalculatedSalary
			if amount, ok := override.ManualSalaryFor(daySalary.EmployeeID); ok {
				salary = amount
				manual[daySalary.EmployeeID] = true
			}
			earnings[daySalary.EmployeeID] = earnings[daySalary.EmployeeID].Add(salary)
		}
	}

	// Revenue pass: independent accumulation over every record in range,
	// price split evenly across the record's employees.
	type revenue struct {
		cash, card, organizations, debt decimal.Decimal
		recordsCount                    int
	}
	revenues := make(map[uuid.UUID]*revenue)

	for _, record := range data.Records {
		share := record.Share()
		for _, employee := range record.Employees {
			if filter != nil && employee.ID != *filter {
				continue
			}
			if _, ok := names[employee.ID]; !ok {
				names[employee.ID] = employee.Name
			}

			bucket := revenues[employee.ID]
			if bucket == nil {
				bucket = &revenue{}
				revenues[employee.ID] = bucket
			}

			switch record.PaymentType {
			case PaymentCash:
				bucket.cash = bucket.cash.Add(share)
			case PaymentCard:
				bucket.card = bucket.card.Add(share)
			case PaymentOrganization:
				bucket.organizations = bucket.organizations.Add(share)
			case PaymentDebt:
				bucket.debt = bucket.debt.Add(share)
			}
			bucket.recordsCount++
		}
	}

	// Materialize: one row per employee seen in either pass. Employees with
	// no records and no assignments anywhere in range never appear.
	seen := make(map[uuid.UUID]struct{}, len(earnings)+len(revenues))
	ids := make([]uuid.UUID, 0, len(earnings)+len(revenues))
	for employeeID := range earnings {
		if _, ok := seen[employeeID]; !ok {
			seen[employeeID] = struct{}{}
			ids = append(ids, employeeID)
		}
	}
	for employeeID := range revenues {
		if _, ok := seen[employeeID]; !ok {
			seen[employeeID] = struct{}{}
			ids = append(ids, employeeID)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i].String() < ids[j].String() })

	rows := make([]EarningsReportRow, 0, len(ids))
	totals := ReportTotals{TotalRevenue: decimal.Zero, TotalSalaries: decimal.Zero}

	for _, employeeID := range ids {
		row := EarningsReportRow{
			EmployeeID:         employeeID,
			EmployeeName:       names[employeeID],
			TotalCash:          decimal.Zero,
			TotalNonCash:       decimal.Zero,
			TotalOrganizations: decimal.Zero,
			TotalDebt:          decimal.Zero,
			CalculatedEarnings: earnings[employeeID],
			IsManual:           manual[employeeID],
		}

		if bucket, ok := revenues[employeeID]; ok {
			row.TotalCash = bucket.cash
			row.TotalNonCash = bucket.card
			row.TotalOrganizations = bucket.organizations
			row.TotalDebt = bucket.debt
			row.RecordsCount = bucket.recordsCount
		}
		row.TotalServiceValue = row.TotalCash.
			Add(row.TotalNonCash).
			Add(row.TotalOrganizations).
			Add(row.TotalDebt)

		totals.TotalRevenue = totals.TotalRevenue.Add(row.TotalServiceValue)
		totals.TotalSalaries = totals.TotalSalaries.Add(row.CalculatedEarnings)

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].CalculatedEarnings.GreaterThan(rows[j].CalculatedEarnings)
	})

	return &EarningsReport{
		Rows:   rows,
		Totals: totals,
		Start:  rng.StartKey(),
		End:    rng.EndKey(),
	}
}

// EditManualSalary writes through the override store and only then surfaces
// the updated day. A nil amount removes the employee's override for that day.
func (s *ReportService) EditManualSalary(
	ctx context.Context,
	employeeID uuid.UUID,
	day time.Time,
	amount *decimal.Decimal,
) (*DailyReportOverride, error) {
	log := s.log.Function("EditManualSalary")

	if _, err := s.employeeRepo.GetByID(ctx, s.db.SQL, employeeID); err != nil {
		return nil, err
	}

	day = utils.Day(day)

	override, err := s.overrideRepo.GetByDate(ctx, s.db.SQL, day)
	if err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, log.Err("failed to load override", err, "day", utils.DayKey(day))
		}
		override = &DailyReportOverride{ReportDate: day}
	}

	override.SetManualSalary(employeeID, amount)

	if err := s.overrideRepo.Save(ctx, s.db.SQL, override); err != nil {
		return nil, log.Err("failed to save override", err, "day", utils.DayKey(day))
	}

	s.clearSnapshot(ctx, day)

	return override, nil
}

// GetDailySnapshot serves a single-day report from the snapshot cache,
// computing and caching it on a miss. The nightly job warms yesterday's entry.
func (s *ReportService) GetDailySnapshot(ctx context.Context, day time.Time) (*EarningsReport, error) {
	log := s.log.Function("GetDailySnapshot")
	day = utils.Day(day)
	key := utils.DayKey(day)

	var cached EarningsReport
	found, err := database.NewCacheBuilder(s.db.Cache.Reports, key).
		WithContext(ctx).
		WithHash(SNAPSHOT_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to read snapshot cache", "day", key, "error", err)
	}
	if found {
		return &cached, nil
	}

	report, err := s.GetEarningsReport(ctx, ReportQuery{Period: PeriodDay, Anchor: day})
	if err != nil {
		return nil, err
	}

	// A computation superseded by a newer one must not overwrite the cache.
	if report.Sequence >= s.latest.Load() {
		err = database.NewCacheBuilder(s.db.Cache.Reports, key).
			WithContext(ctx).
			WithHash(SNAPSHOT_CACHE_PREFIX).
			WithStruct(report).
			WithTTL(SNAPSHOT_CACHE_EXPIRY).
			Set()
		if err != nil {
			log.Warn("failed to write snapshot cache", "day", key, "error", err)
		}
	}

	return report, nil
}

func (s *ReportService) clearSnapshot(ctx context.Context, day time.Time) {
	err := database.NewCacheBuilder(s.db.Cache.Reports, utils.DayKey(day)).
		WithContext(ctx).
		WithHash(SNAPSHOT_CACHE_PREFIX).
		Delete()
	if err != nil {
		s.log.Function("clearSnapshot").
			Warn("failed to clear snapshot cache", "day", utils.DayKey(day), "error", err)
	}
}

// deliver records seq as delivered unless a newer computation already was.
func (s *ReportService) deliver(seq uint64) bool {
	for {
		latest := s.latest.Load()
		if seq < latest {
			return false
		}
		if s.latest.CompareAndSwap(latest, seq) {
			return true
		}
	}
}
