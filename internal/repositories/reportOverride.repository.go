package repositories

import (
	"context"
	"time"
	. "washboard/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReportOverrideRepository interface {
	GetByDateRange(
		ctx context.Context,
		tx *gorm.DB,
		start, end time.Time,
	) ([]*DailyReportOverride, error)
	GetByDate(ctx context.Context, tx *gorm.DB, day time.Time) (*DailyReportOverride, error)
	Save(ctx context.Context, tx *gorm.DB, override *DailyReportOverride) error
}

type reportOverrideRepository struct {
	log logger.Logger
}

func NewReportOverrideRepository() ReportOverrideRepository {
	return &reportOverrideRepository{
		log: logger.New("reportOverrideRepository"),
	}
}

func (r *reportOverrideRepository) GetByDateRange(
	ctx context.Context,
	tx *gorm.DB,
	start, end time.Time,
) ([]*DailyReportOverride, error) {
	log := r.log.Function("GetByDateRange")

	var overrides []*DailyReportOverride
	if err := tx.WithContext(ctx).
		Where("report_date BETWEEN ? AND ?", start, end).
		Order("report_date ASC").
		Find(&overrides).Error; err != nil {
		return nil, log.Err("failed to get report overrides", err, "start", start, "end", end)
	}

	return overrides, nil
}

func (r *reportOverrideRepository) GetByDate(
	ctx context.Context,
	tx *gorm.DB,
	day time.Time,
) (*DailyReportOverride, error) {
	log := r.log.Function("GetByDate")

	var override DailyReportOverride
	if err := tx.WithContext(ctx).
		Where("report_date = ?", day).
		First(&override).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, err
		}
		return nil, log.Err("failed to get report override", err, "day", day)
	}

	return &override, nil
}

// Save upserts the day's override row, keyed by report date.
func (r *reportOverrideRepository) Save(
	ctx context.Context,
	tx *gorm.DB,
	override *DailyReportOverride,
) error {
	log := r.log.Function("Save")

	if err := tx.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "report_date"}},
			DoUpdates: clause.AssignmentColumns([]string{"manual_salaries", "updated_at"}),
		}).
		Create(override).Error; err != nil {
		return log.Err("failed to save report override", err, "day", override.ReportDate)
	}

	return nil
}
