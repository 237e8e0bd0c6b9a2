package assignmentsController

import (
	"context"
	"errors"
	"washboard/config"
	"washboard/internal/database"
	"washboard/internal/events"
	. "washboard/internal/models"
	"washboard/internal/repositories"
	"washboard/internal/services"
	"washboard/internal/utils"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrValidation = errors.New("validation error")
)

type AssignmentsController struct {
	assignmentRepo     repositories.RoleAssignmentRepository
	employeeRepo       repositories.EmployeeRepository
	transactionService *services.TransactionService
	db                 database.DB
	eventBus           *events.EventBus
	Config             config.Config
}

// DayAssignmentEntry mirrors one sheet line: an explicit role, an explicit
// minimum-wage flag, or both.
type DayAssignmentEntry struct {
	EmployeeID     uuid.UUID `json:"employeeId"`
	Role           *string   `json:"role,omitempty"`
	MinimumApplies *bool     `json:"minimumApplies,omitempty"`
}

type SetDaySheetRequest struct {
	Entries []DayAssignmentEntry `json:"entries"`
}

type ListAssignmentsRequest struct {
	Start string `query:"start"`
	End   string `query:"end"`
}

type AssignmentsControllerInterface interface {
	SetDaySheet(ctx context.Context, date string, request *SetDaySheetRequest) ([]*DailyRoleAssignment, error)
	ListByRange(ctx context.Context, request *ListAssignmentsRequest) ([]*DailyRoleAssignment, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	config config.Config,
	db database.DB,
	eventBus *events.EventBus,
) AssignmentsControllerInterface {
	return &AssignmentsController{
		assignmentRepo:     repos.RoleAssignment,
		employeeRepo:       repos.Employee,
		transactionService: services.Transaction,
		db:                 db,
		eventBus:           eventBus,
		Config:             config,
	}
}

// SetDaySheet replaces the whole role/minimum sheet for one day atomically.
func (c *AssignmentsController) SetDaySheet(
	ctx context.Context,
	date string,
	request *SetDaySheetRequest,
) ([]*DailyRoleAssignment, error) {
	log := logger.New("assignmentsController").Function("SetDaySheet")

	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid date", "date", date)
	}

	seen := make(map[uuid.UUID]struct{}, len(request.Entries))
	assignments := make([]*DailyRoleAssignment, 0, len(request.Entries))

	for _, entry := range request.Entries {
		if entry.EmployeeID == uuid.Nil {
			return nil, log.ErrorWithType(ErrValidation, "employeeId is required")
		}
		if _, ok := seen[entry.EmployeeID]; ok {
			return nil, log.ErrorWithType(
				ErrValidation,
				"duplicate employee in sheet",
				"employeeId", entry.EmployeeID,
			)
		}
		seen[entry.EmployeeID] = struct{}{}

		if entry.Role == nil && entry.MinimumApplies == nil {
			return nil, log.ErrorWithType(
				ErrValidation,
				"entry must set a role or a minimum flag",
				"employeeId", entry.EmployeeID,
			)
		}

		var role *EmployeeRole
		if entry.Role != nil {
			parsed := EmployeeRole(*entry.Role)
			if !parsed.IsValid() {
				return nil, log.ErrorWithType(ErrValidation, "invalid role", "role", *entry.Role)
			}
			role = &parsed
		}

		if _, err := c.employeeRepo.GetByID(ctx, c.db.SQL, entry.EmployeeID); err != nil {
			return nil, log.ErrorWithType(
				ErrValidation,
				"unknown employee",
				"employeeId", entry.EmployeeID,
			)
		}

		assignments = append(assignments, &DailyRoleAssignment{
			AssignmentDate: day,
			EmployeeID:     entry.EmployeeID,
			Role:           role,
			MinimumApplies: entry.MinimumApplies,
		})
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		return c.assignmentRepo.ReplaceDay(ctx, tx, day, assignments)
	})
	if err != nil {
		return nil, log.Err("failed to replace day sheet", err, "day", utils.DayKey(day))
	}

	if err := c.eventBus.PublishReportInputsChanged("assignments", utils.DayKey(day)); err != nil {
		log.Warn("failed to publish input change", "error", err)
	}

	return assignments, nil
}

func (c *AssignmentsController) ListByRange(
	ctx context.Context,
	request *ListAssignmentsRequest,
) ([]*DailyRoleAssignment, error) {
	log := logger.New("assignmentsController").Function("ListByRange")

	start, err := utils.ParseDay(request.Start)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid start date", "start", request.Start)
	}
	end, err := utils.ParseDay(request.End)
	if err != nil {
		return nil, log.ErrorWithType(ErrValidation, "invalid end date", "end", request.End)
	}

	assignments, err := c.assignmentRepo.GetByDateRange(ctx, c.db.SQL, start, end)
	if err != nil {
		return nil, log.Err("failed to list assignments", err)
	}

	return assignments, nil
}
