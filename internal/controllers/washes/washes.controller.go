package washesController

import (
	"context"
	"errors"
	"time"
	"washboard/config"
	"washboard/internal/database"
	"washboard/internal/events"
	. "washboard/internal/models"
	"washboard/internal/repositories"
	"washboard/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrValidation = errors.New("validation error")
)

type WashesController struct {
	washRecordRepo repositories.WashRecordRepository
	employeeRepo   repositories.EmployeeRepository
	db             database.DB
	eventBus       *events.EventBus
	Config         config.Config
}

type CreateWashRequest struct {
	Date             string      `json:"date"`
	PerformedAt      *string     `json:"performedAt,omitempty"`
	EmployeeIDs      []uuid.UUID `json:"employeeIds"`
	Price            string      `json:"price"`
	PaymentType      string      `json:"paymentType"`
	OrganizationID   *uuid.UUID  `json:"organizationId,omitempty"`
	OrganizationName *string     `json:"organizationName,omitempty"`
}

type ListWashesRequest struct {
	Start string `query:"start"`
	End   string `query:"end"`
}

type WashesControllerInterface interface {
	Create(ctx context.Context, request *CreateWashRequest) (*WashRecord, error)
	ListByRange(ctx context.Context, request *ListWashesRequest) ([]*WashRecord, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
	db database.DB,
	eventBus *events.EventBus,
) WashesControllerInterface {
	return &WashesController{
		washRecordRepo: repos.WashRecord,
		employeeRepo:   repos.Employee,
		db:             db,
		eventBus:       eventBus,
		Config:         config,
	}
}

func (c *WashesController) Create(
	ctx context.Context,
	request *CreateWashRequest,
) (*WashRecord, error) {
	log := logger.New("washesController").Function("Create")

	day, err := utils.ParseDay(request.Date)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date", "date", request.Date)
	}

	if len(request.EmployeeIDs) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "at least one employee is required")
	}

	seen := make(map[uuid.UUID]struct{}, len(request.EmployeeIDs))
	for _, id := range request.EmployeeIDs {
		if id == uuid.Nil {
			return nil, log.ErrorWithType(ErrValidation, "employee id cannot be empty")
		}
		if _, ok := seen[id]; ok {
			return nil, log.ErrorWithType(ErrValidation, "duplicate employee id", "id", id)
		}
		seen[id] = struct{}{}
	}

	price, err := decimal.NewFromString(request.Price)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "price is not a number", "price", request.Price)
	}
	if !price.IsPositive() {
		return nil, log.ErrorWithType(ErrValidation, "price must be positive", "price", request.Price)
	}

	paymentType := PaymentType(request.PaymentType)
	if !paymentType.IsValid() {
		return nil, log.ErrorWithType(
			ErrValidation,
			"invalid payment type",
			"paymentType", request.PaymentType,
		)
	}

	if paymentType == PaymentOrganization {
		if request.OrganizationID == nil || request.OrganizationName == nil {
			return nil, log.ErrorWithType(
				ErrValidation,
				"organization payments require organizationId and organizationName",
			)
		}
	}

	var performedAt *time.Time
	if request.PerformedAt != nil {
		parsed, err := time.Parse(time.RFC3339, *request.PerformedAt)
		if err != nil {
			return nil, log.ErrorWithType(
				ErrValidation,
				"invalid performedAt, expected RFC3339",
				"performedAt", *request.PerformedAt,
			)
		}
		performedAt = &parsed
	}

	employees := make([]Employee, 0, len(request.EmployeeIDs))
	for _, id := range request.EmployeeIDs {
		employee, err := c.employeeRepo.GetByID(ctx, c.db.SQL, id)
		if err != nil {
			return nil, log.ErrorWithType(ErrValidation, "unknown employee", "id", id)
		}
		employees = append(employees, *employee)
	}

	record := &WashRecord{
		ServiceDate:      day,
		PerformedAt:      performedAt,
		Price:            price,
		PaymentType:      paymentType,
		OrganizationID:   request.OrganizationID,
		OrganizationName: request.OrganizationName,
		Employees:        employees,
	}

	if err := c.washRecordRepo.Create(ctx, c.db.SQL, record); err != nil {
		return nil, log.Err("failed to create wash record", err)
	}

	if err := c.eventBus.PublishReportInputsChanged("records", utils.DayKey(day)); err != nil {
		log.Warn("failed to publish input change", "error", err)
	}

	return record, nil
}

func (c *WashesController) ListByRange(
	ctx context.Context,
	request *ListWashesRequest,
) ([]*WashRecord, error) {
	log := logger.New("washesController").Function("ListByRange")

	start, err := utils.ParseDay(request.Start)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid start date", "start", request.Start)
	}
	end, err := utils.ParseDay(request.End)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid end date", "end", request.End)
	}

	records, err := c.washRecordRepo.GetByDateRange(ctx, c.db.SQL, start, end)
	if err != nil {
		return nil, log.Err("failed to list wash records", err)
	}

	return records, nil
}
