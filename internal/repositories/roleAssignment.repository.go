package repositories

import (
	"context"
	"time"
	. "washboard/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type RoleAssignmentRepository interface {
	GetByDateRange(
		ctx context.Context,
		tx *gorm.DB,
		start, end time.Time,
	) ([]*DailyRoleAssignment, error)
	ReplaceDay(
		ctx context.Context,
		tx *gorm.DB,
		day time.Time,
		assignments []*DailyRoleAssignment,
	) error
}

type roleAssignmentRepository struct {
	log logger.Logger
}

func NewRoleAssignmentRepository() RoleAssignmentRepository {
	return &roleAssignmentRepository{
		log: logger.New("roleAssignmentRepository"),
	}
}

func (r *roleAssignmentRepository) GetByDateRange(
	ctx context.Context,
	tx *gorm.DB,
	start, end time.Time,
) ([]*DailyRoleAssignment, error) {
	log := r.log.Function("GetByDateRange")

	var assignments []*DailyRoleAssignment
	if err := tx.WithContext(ctx).
		Where("assignment_date BETWEEN ? AND ?", start, end).
		Order("assignment_date ASC").
		Find(&assignments).Error; err != nil {
		return nil, log.Err("failed to get role assignments", err, "start", start, "end", end)
	}

	return assignments, nil
}

// ReplaceDay swaps out the whole sheet for one day. Callers run it inside a
// transaction so a failed insert never leaves the day half-written.
func (r *roleAssignmentRepository) ReplaceDay(
	ctx context.Context,
	tx *gorm.DB,
	day time.Time,
	assignments []*DailyRoleAssignment,
) error {
	log := r.log.Function("ReplaceDay")

	if err := tx.WithContext(ctx).
		Unscoped().
		Where("assignment_date = ?", day).
		Delete(&DailyRoleAssignment{}).Error; err != nil {
		return log.Err("failed to clear day assignments", err, "day", day)
	}

	if len(assignments) == 0 {
		return nil
	}

	if err := tx.WithContext(ctx).Create(assignments).Error; err != nil {
		return log.Err("failed to insert day assignments", err, "day", day, "count", len(assignments))
	}

	return nil
}
