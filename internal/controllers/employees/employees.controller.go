package employeesController

import (
	"context"
	"errors"
	"washboard/config"
	"washboard/internal/database"
	"washboard/internal/events"
	. "washboard/internal/models"
	"washboard/internal/repositories"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxNameLength = 120

var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

type EmployeesController struct {
	employeeRepo repositories.EmployeeRepository
	db           database.DB
	eventBus     *events.EventBus
	Config       config.Config
}

type CreateEmployeeRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type UpdateEmployeeRequest struct {
	Name     *string `json:"name,omitempty"`
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

type EmployeesControllerInterface interface {
	List(ctx context.Context) ([]*Employee, error)
	Create(ctx context.Context, request *CreateEmployeeRequest) (*Employee, error)
	Update(ctx context.Context, id uuid.UUID, request *UpdateEmployeeRequest) (*Employee, error)
}

func New(
	repos repositories.Repository,
	config config.Config,
	db database.DB,
	eventBus *events.EventBus,
) EmployeesControllerInterface {
	return &EmployeesController{
		employeeRepo: repos.Employee,
		db:           db,
		eventBus:     eventBus,
		Config:       config,
	}
}

func (c *EmployeesController) List(ctx context.Context) ([]*Employee, error) {
	log := logger.New("employeesController").Function("List")

	employees, err := c.employeeRepo.GetAll(ctx, c.db.SQL)
	if err != nil {
		return nil, log.Err("failed to list employees", err)
	}

	return employees, nil
}

func (c *EmployeesController) Create(
	ctx context.Context,
	request *CreateEmployeeRequest,
) (*Employee, error) {
	log := logger.New("employeesController").Function("Create")

	if request.Name == "" {
		return nil, log.ErrorWithType(ErrValidation, "name is required")
	}
	if len(request.Name) > MaxNameLength {
		return nil, log.ErrorWithType(ErrValidation, "name exceeds maximum length",
			"length", len(request.Name), "max", MaxNameLength)
	}

	role := EmployeeRole(request.Role)
	if request.Role == "" {
		role = RoleWasher
	}
	if !role.IsValid() {
		return nil, log.ErrorWithType(ErrValidation, "invalid role", "role", request.Role)
	}

	employee := &Employee{
		Name:     request.Name,
		Role:     role,
		IsActive: true,
	}

	if err := c.employeeRepo.Create(ctx, c.db.SQL, employee); err != nil {
		return nil, log.Err("failed to create employee", err)
	}

	return employee, nil
}

func (c *EmployeesController) Update(
	ctx context.Context,
	id uuid.UUID,
	request *UpdateEmployeeRequest,
) (*Employee, error) {
	log := logger.New("employeesController").Function("Update")

	updates := make(map[string]any)

	if request.Name != nil {
		if *request.Name == "" || len(*request.Name) > MaxNameLength {
			return nil, log.ErrorWithType(ErrValidation, "invalid name")
		}
		updates["name"] = *request.Name
	}

	if request.Role != nil {
		role := EmployeeRole(*request.Role)
		if !role.IsValid() {
			return nil, log.ErrorWithType(ErrValidation, "invalid role", "role", *request.Role)
		}
		updates["role"] = role
	}

	if request.IsActive != nil {
		updates["is_active"] = *request.IsActive
	}

	if len(updates) == 0 {
		return nil, log.ErrorWithType(ErrValidation, "no fields to update")
	}

	if err := c.employeeRepo.Update(ctx, c.db.SQL, id, updates); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, log.ErrorWithType(ErrNotFound, "employee not found", "id", id)
		}
		return nil, log.Err("failed to update employee", err, "id", id)
	}

	// A live-role change feeds today's report through the today-only
	// fallback rule.
	if request.Role != nil {
		if err := c.eventBus.PublishReportInputsChanged("roster", ""); err != nil {
			log.Warn("failed to publish input change", "error", err)
		}
	}

	return c.employeeRepo.GetByID(ctx, c.db.SQL, id)
}
