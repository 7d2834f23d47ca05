package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gabojago/internal/models/db_models"
)

type ScheduleRepository interface {
	Create(ctx context.Context, schedule *db_models.Schedule) error
	Update(ctx context.Context, schedule *db_models.Schedule) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id string) (*db_models.Schedule, error)
	ListByUserAndStatus(ctx context.Context, userID string, status string) ([]db_models.Schedule, error)
	ListMembers(ctx context.Context, scheduleID string) ([]db_models.ScheduleMember, error)
}

type scheduleRepository struct {
	db *gorm.DB
}

func NewScheduleRepository(db *gorm.DB) ScheduleRepository {
	return &scheduleRepository{db: db}
}

func (r *scheduleRepository) Create(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Create(schedule).Error
}

func (r *scheduleRepository) Update(ctx context.Context, schedule *db_models.Schedule) error {
	return r.db.WithContext(ctx).Save(schedule).Error
}

func (r *scheduleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.Schedule{}, "id = ?", id).Error
}

func (r *scheduleRepository) GetByID(ctx context.Context, id string) (*db_models.Schedule, error) {
	var schedule db_models.Schedule
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&schedule).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) ListByUserAndStatus(ctx context.Context, userID string, status string) ([]db_models.Schedule, error) {
	var schedules []db_models.Schedule
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if status != "" {
		q = q.Where("status = ?", status)
	}
	err := q.Order("start_date").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) ListMembers(ctx context.Context, scheduleID string) ([]db_models.ScheduleMember, error) {
	var members []db_models.ScheduleMember
	err := r.db.WithContext(ctx).
		Preload("Account").
		Where("schedule_id = ?", scheduleID).
		Find(&members).Error
	return members, err
}
