package repositories

import (
	"context"
	"time"
	. "washboard/internal/models"

	logger "github.com/Bparsons0904/goLogger"
	"gorm.io/gorm"
)

type WashRecordRepository interface {
	GetByDateRange(ctx context.Context, tx *gorm.DB, start, end time.Time) ([]*WashRecord, error)
	Create(ctx context.Context, tx *gorm.DB, record *WashRecord) error
}

type washRecordRepository struct {
	log logger.Logger
}

func NewWashRecordRepository() WashRecordRepository {
	return &washRecordRepository{
		log: logger.New("washRecordRepository"),
	}
}

func (r *washRecordRepository) GetByDateRange(
	ctx context.Context,
	tx *gorm.DB,
	start, end time.Time,
) ([]*WashRecord, error) {
	log := r.log.Function("GetByDateRange")

	var records []*WashRecord
	if err := tx.WithContext(ctx).
		Preload("Employees").
		Where("service_date BETWEEN ? AND ?", start, end).
		Order("service_date ASC, performed_at ASC NULLS LAST").
		Find(&records).Error; err != nil {
		return nil, log.Err("failed to get wash records", err, "start", start, "end", end)
	}

	return records, nil
}

func (r *washRecordRepository) Create(ctx context.Context, tx *gorm.DB, record *WashRecord) error {
	log := r.log.Function("Create")

	if err := tx.WithContext(ctx).Create(record).Error; err != nil {
		return log.Err("failed to create wash record", err, "serviceDate", record.ServiceDate)
	}

	return nil
}
