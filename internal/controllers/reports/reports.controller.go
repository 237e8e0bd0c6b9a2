package reportsController

import (
	"context"
	"errors"
	"time"
	"washboard/config"
	"washboard/internal/events"
	. "washboard/internal/models"
	"washboard/internal/services"
	"washboard/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type ReportsController struct {
	reportService *services.ReportService
	eventBus      *events.EventBus
	Config        config.Config
}

type EarningsReportRequest struct {
	Period     string `query:"period"`
	Anchor     string `query:"anchor"`
	Start      string `query:"start"`
	End        string `query:"end"`
	EmployeeID string `query:"employeeId"`
}

type EditManualSalaryRequest struct {
	EmployeeID uuid.UUID `json:"employeeId"`
	Date       string    `json:"date"`
	// Amount replaces the computed salary for the day; null clears the
	// override. Sent as a string so a malformed number is rejected here
	// instead of silently coerced by JSON decoding.
	Amount *string `json:"amount"`
}

type ReportsControllerInterface interface {
	GetEarningsReport(ctx context.Context, request *EarningsReportRequest) (*EarningsReport, error)
	GetDailySnapshot(ctx context.Context, date string) (*EarningsReport, error)
	EditManualSalary(ctx context.Context, request *EditManualSalaryRequest) (*DailyReportOverride, error)
}

func New(
	reportService *services.ReportService,
	eventBus *events.EventBus,
	config config.Config,
) ReportsControllerInterface {
	return &ReportsController{
		reportService: reportService,
		eventBus:      eventBus,
		Config:        config,
	}
}

func (c *ReportsController) GetEarningsReport(
	ctx context.Context,
	request *EarningsReportRequest,
) (*EarningsReport, error) {
	log := logger.New("reportsController").Function("GetEarningsReport")

	period := services.PeriodType(request.Period)
	if request.Period == "" {
		period = services.PeriodDay
	}
	if !period.IsValid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid period", "period", request.Period)
	}

	anchor := time.Now().UTC()
	if request.Anchor != "" {
		parsed, err := utils.ParseDay(request.Anchor)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid anchor date", "anchor", request.Anchor)
		}
		anchor = parsed
	}

	var customStart, customEnd time.Time
	if period == services.PeriodCustom {
		var err error
		customStart, err = utils.ParseDay(request.Start)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid start date", "start", request.Start)
		}
		customEnd, err = utils.ParseDay(request.End)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid end date", "end", request.End)
		}
	}

	query := services.ReportQuery{
		Period:      period,
		Anchor:      anchor,
		CustomStart: customStart,
		CustomEnd:   customEnd,
	}

	if request.EmployeeID != "" {
		employeeID, err := uuid.Parse(request.EmployeeID)
		if err != nil {
			return nil, log.ErrorWithType(
				ErrValidation,
				"invalid employee id",
				"employeeId", request.EmployeeID,
			)
		}
		query.EmployeeID = &employeeID
	}

	report, err := c.reportService.GetEarningsReport(ctx, query)
	if err != nil {
		return nil, log.Err("failed to compute earnings report", err)
	}

	return report, nil
}

func (c *ReportsController) GetDailySnapshot(
	ctx context.Context,
	date string,
) (*EarningsReport, error) {
	log := logger.New("reportsController").Function("GetDailySnapshot")

	day := time.Now().UTC().AddDate(0, 0, -1)
	if date != "" {
		parsed, err := utils.ParseDay(date)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "invalid date", "date", date)
		}
		day = parsed
	}

	report, err := c.reportService.GetDailySnapshot(ctx, day)
	if err != nil {
		return nil, log.Err("failed to get daily snapshot", err)
	}

	return report, nil
}

func (c *ReportsController) EditManualSalary(
	ctx context.Context,
	request *EditManualSalaryRequest,
) (*DailyReportOverride, error) {
	log := logger.New("reportsController").Function("EditManualSalary")

	if request.EmployeeID == uuid.Nil {
		return nil, log.ErrorWithType(ErrValidation, "employeeId is required")
	}

	day, err := utils.ParseDay(request.Date)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date", "date", request.Date)
	}

	var amount *decimal.Decimal
	if request.Amount != nil {
		parsed, err := decimal.NewFromString(*request.Amount)
		if err != nil {
			return nil, log.ErrorWithType(
				ErrValidation,
				"amount is not a number",
				"amount", *request.Amount,
			)
		}
		if parsed.IsNegative() {
			return nil, log.ErrorWithType(
				ErrValidation,
				"amount cannot be negative",
				"amount", *request.Amount,
			)
		}
		amount = &parsed
	}

	override, err := c.reportService.EditManualSalary(ctx, request.EmployeeID, day, amount)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, log.ErrorWithType(ErrNotFound, "employee not found",
				"employeeId", request.EmployeeID)
		}
		return nil, log.Err("failed to edit manual salary", err)
	}

	if err := c.eventBus.PublishReportInputsChanged("manual_salary", utils.DayKey(day)); err != nil {
		log.Warn("failed to publish input change", "error", err)
	}

	return override, nil
}
