package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"gabojago/internal/models/db_models"
)

type ExpenseRepository interface {
	Create(ctx context.Context, expense *db_models.ScheduleExpense) error
	Update(ctx context.Context, expense *db_models.ScheduleExpense) error
	Delete(ctx context.Context, id uuid.UUID) error
	GetByID(ctx context.Context, id string) (*db_models.ScheduleExpense, error)
	ListByScheduleID(ctx context.Context, scheduleID string) ([]db_models.ScheduleExpense, error)
}

type expenseRepository struct {
	db *gorm.DB
}

func NewExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *db_models.ScheduleExpense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *expenseRepository) Update(ctx context.Context, expense *db_models.ScheduleExpense) error {
	return r.db.WithContext(ctx).Save(expense).Error
}

func (r *expenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&db_models.ScheduleExpense{}, "id = ?", id).Error
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*db_models.ScheduleExpense, error) {
	var expense db_models.ScheduleExpense
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&expense).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &expense, nil
}

func (r *expenseRepository) ListByScheduleID(ctx context.Context, scheduleID string) ([]db_models.ScheduleExpense, error) {
	var expenses []db_models.ScheduleExpense
	err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("expense_time").
		Find(&expenses).Error
	return expenses, err
}
