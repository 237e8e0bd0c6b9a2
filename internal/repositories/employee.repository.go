package repositories

import (
	"context"
	"time"
	"washboard/internal/database"
	. "washboard/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ROSTER_CACHE_KEY    = "roster"
	ROSTER_CACHE_PREFIX = "employees"
	ROSTER_CACHE_EXPIRY = 24 * time.Hour
)

type EmployeeRepository interface {
	GetAll(ctx context.Context, tx *gorm.DB) ([]*Employee, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*Employee, error)
	Create(ctx context.Context, tx *gorm.DB, employee *Employee) error
	Update(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]any) error
}

type employeeRepository struct {
	cache database.CacheClient
	log   logger.Logger
}

func NewEmployeeRepository(db database.DB) EmployeeRepository {
	return &employeeRepository{
		cache: db.Cache.General,
		log:   logger.New("employeeRepository"),
	}
}

func (r *employeeRepository) GetAll(ctx context.Context, tx *gorm.DB) ([]*Employee, error) {
	log := r.log.Function("GetAll")

	var cached []*Employee
	found, err := database.NewCacheBuilder(r.cache, ROSTER_CACHE_KEY).
		WithContext(ctx).
		WithHash(ROSTER_CACHE_PREFIX).
		Get(&cached)
	if err != nil {
		log.Warn("failed to get roster from cache", "error", err)
	}

	if found {
		return cached, nil
	}

	var employees []*Employee
	if err = tx.WithContext(ctx).
		Order("name ASC").
		Find(&employees).Error; err != nil {
		return nil, log.Err("failed to get employees", err)
	}

	err = database.NewCacheBuilder(r.cache, ROSTER_CACHE_KEY).
		WithContext(ctx).
		WithHash(ROSTER_CACHE_PREFIX).
		WithStruct(employees).
		WithTTL(ROSTER_CACHE_EXPIRY).
		Set()
	if err != nil {
		log.Warn("failed to set roster in cache", "error", err)
	}

	return employees, nil
}

func (r *employeeRepository) GetByID(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
) (*Employee, error) {
	log := r.log.Function("GetByID")

	var employee Employee
	if err := tx.WithContext(ctx).First(&employee, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get employee", err, "id", id)
	}

	return &employee, nil
}

func (r *employeeRepository) Create(ctx context.Context, tx *gorm.DB, employee *Employee) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(employee).Error; err != nil {
		return log.Err("failed to create employee", err, "name", employee.Name)
	}

	r.clearRosterCache(ctx)

	return nil
}

func (r *employeeRepository) Update(
	ctx context.Context,
	tx *gorm.DB,
	id uuid.UUID,
	updates map[string]any,
) error {
	log := r.log.Function("Update")

	result := tx.WithContext(ctx).
		Model(&Employee{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return log.Err("failed to update employee", result.Error, "id", id)
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.clearRosterCache(ctx)

	return nil
}

func (r *employeeRepository) clearRosterCache(ctx context.Context) {
	err := database.NewCacheBuilder(r.cache, ROSTER_CACHE_KEY).
		WithContext(ctx).
		WithHash(ROSTER_CACHE_PREFIX).
		Delete()
	if err != nil {
		r.log.Function("clearRosterCache").Warn("failed to clear roster cache", "error", err)
	}
}
