package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"gabojago/internal/models/db_models"
	"gabojago/internal/models/request_models"
	"gabojago/internal/models/response_models"
	"gabojago/internal/repositories"
	"gabojago/pkg/utils"
)

type ExpenseServiceInterface interface {
	AppendExpense(ctx context.Context, req request_models.AppendExpenseRequest) error
	ModifyExpense(ctx context.Context, req request_models.ModifyExpenseRequest) error
	RemoveExpense(ctx context.Context, expenseID string) error
	ListExpenses(ctx context.Context, scheduleID string) ([]response_models.ExpenseResponse, error)
}

type ExpenseService struct {
	expenseRepo  repositories.ExpenseRepository
	scheduleRepo repositories.ScheduleRepository
}

func NewExpenseService(
	expenseRepo repositories.ExpenseRepository,
	scheduleRepo repositories.ScheduleRepository,
) ExpenseServiceInterface {
	return &ExpenseService{
		expenseRepo:  expenseRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (s *ExpenseService) AppendExpense(ctx context.Context, req request_models.AppendExpenseRequest) error {
	scheduleID, err := uuid.Parse(req.ScheduleID)
	if err != nil {
		return utils.ErrInvalidInput
	}
	if req.Amount <= 0 {
		return utils.ErrInvalidInput
	}

	schedule, err := s.scheduleRepo.GetByID(ctx, req.ScheduleID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if schedule == nil {
		return utils.ErrScheduleNotFound
	}

	expenseTime := req.ExpenseTime
	if expenseTime == "" {
		expenseTime = time.Now().UTC().Format(utils.ScheduleTimeLayout)
	}

	expense := &db_models.ScheduleExpense{
		ScheduleID:  scheduleID,
		Amount:      req.Amount,
		Category:    req.Category,
		ExpenseTime: expenseTime,
		Memo:        req.Memo,
	}
	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		log.Printf("Error appending expense: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ExpenseService) ModifyExpense(ctx context.Context, req request_models.ModifyExpenseRequest) error {
	expense, err := s.expenseRepo.GetByID(ctx, req.ID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil {
		return utils.ErrExpenseNotFound
	}

	if req.Amount > 0 {
		expense.Amount = req.Amount
	}
	if req.Category != "" {
		expense.Category = req.Category
	}
	if req.ExpenseTime != "" {
		expense.ExpenseTime = req.ExpenseTime
	}
	expense.Memo = req.Memo

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		log.Printf("Error modifying expense: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ExpenseService) RemoveExpense(ctx context.Context, expenseID string) error {
	id, err := uuid.Parse(expenseID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if expense == nil {
		return utils.ErrExpenseNotFound
	}

	if err := s.expenseRepo.Delete(ctx, id); err != nil {
		log.Printf("Error removing expense: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *ExpenseService) ListExpenses(ctx context.Context, scheduleID string) ([]response_models.ExpenseResponse, error) {
	expenses, err := s.expenseRepo.ListByScheduleID(ctx, scheduleID)
	if err != nil {
		log.Printf("Error listing expenses: %v", err)
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ExpenseResponse, 0, len(expenses))
	for _, expense := range expenses {
		out = append(out, response_models.ExpenseResponse{
			ID:          expense.ID.String(),
			Amount:      expense.Amount,
			Category:    expense.Category,
			ExpenseTime: expense.ExpenseTime,
			Memo:        expense.Memo,
		})
	}
	return out, nil
}
