package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gabojago/internal/models/db_models"
)

type ScheduleLocationRepository interface {
	Create(ctx context.Context, entry *db_models.ScheduleLocation) error
	Update(ctx context.Context, entry *db_models.ScheduleLocation) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id string) (*db_models.ScheduleLocation, error)
	ListByScheduleID(ctx context.Context, scheduleID string) ([]db_models.ScheduleLocation, error)
}

type scheduleLocationRepository struct {
	db *gorm.DB
}

func NewScheduleLocationRepository(db *gorm.DB) ScheduleLocationRepository {
	return &scheduleLocationRepository{db: db}
}

func (r *scheduleLocationRepository) Create(ctx context.Context, entry *db_models.ScheduleLocation) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *scheduleLocationRepository) Update(ctx context.Context, entry *db_models.ScheduleLocation) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *scheduleLocationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.ScheduleLocation{}, "id = ?", id).Error
}

func (r *scheduleLocationRepository) GetByID(ctx context.Context, id string) (*db_models.ScheduleLocation, error) {
	var entry db_models.ScheduleLocation
	err := r.db.WithContext(ctx).Preload("Location").Where("id = ?", id).First(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *scheduleLocationRepository) ListByScheduleID(ctx context.Context, scheduleID string) ([]db_models.ScheduleLocation, error) {
	var entries []db_models.ScheduleLocation
	err := r.db.WithContext(ctx).
		Preload("Location").
		Where("schedule_id = ?", scheduleID).
		Order("schedule_time").
		Find(&entries).Error
	return entries, err
}
