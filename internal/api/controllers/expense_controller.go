package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gabojago/internal/models/request_models"
	"gabojago/internal/services"
	"gabojago/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

// AppendExpense godoc
// @Summary Record an expense on a trip
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.AppendExpenseRequest true "Expense payload"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/expense/append [post]
func (e *ExpenseController) AppendExpense(c *gin.Context) {
	var req request_models.AppendExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.expenseService.AppendExpense(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense recorded successfully")
}

// ModifyExpense godoc
// @Summary Update an expense
// @Tags Expenses
// @Accept json
// @Produce json
// @Param request body request_models.ModifyExpenseRequest true "Expense update payload"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/expense/modify [post]
func (e *ExpenseController) ModifyExpense(c *gin.Context) {
	var req request_models.ModifyExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := e.expenseService.ModifyExpense(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense updated successfully")
}

// RemoveExpense godoc
// @Summary Delete an expense
// @Tags Expenses
// @Produce json
// @Param id path string true "Expense ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/expense/remove/{id} [delete]
func (e *ExpenseController) RemoveExpense(c *gin.Context) {
	expenseID := c.Param("id")
	if expenseID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Expense id is required")
		return
	}

	if err := e.expenseService.RemoveExpense(c.Request.Context(), expenseID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Expense removed successfully")
}

// ListExpenses godoc
// @Summary List the expenses of a trip
// @Tags Expenses
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/expense/list/{scheduleId} [get]
func (e *ExpenseController) ListExpenses(c *gin.Context) {
	scheduleID := c.Param("scheduleId")
	if scheduleID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Schedule id is required")
		return
	}

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), scheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses retrieved successfully")
}
