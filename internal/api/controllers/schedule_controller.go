package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gabojago/internal/models/request_models"
	"gabojago/internal/services"
	"gabojago/pkg/utils"
)

type ScheduleController struct {
	scheduleService services.ScheduleServiceInterface
}

func NewScheduleController(scheduleService services.ScheduleServiceInterface) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
	}
}

// AppendSchedule godoc
// @Summary Create a trip
// @Description Create a new trip with its travel window and planning options
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.AppendScheduleRequest true "Trip payload"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /schedule/append [post]
func (s *ScheduleController) AppendSchedule(c *gin.Context) {
	var req request_models.AppendScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}
	if req.UserID == "" {
		req.UserID = c.GetString("user_id")
	}

	schedule, err := s.scheduleService.AppendSchedule(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedule, "Schedule created successfully")
}

// ModifySchedule godoc
// @Summary Update a trip
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.ModifyScheduleRequest true "Trip update payload"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/modify [post]
func (s *ScheduleController) ModifySchedule(c *gin.Context) {
	var req request_models.ModifyScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.scheduleService.ModifySchedule(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule updated successfully")
}

// RemoveSchedule godoc
// @Summary Delete a trip
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/remove/{id} [delete]
func (s *ScheduleController) RemoveSchedule(c *gin.Context) {
	scheduleID := c.Param("id")
	if scheduleID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Schedule id is required")
		return
	}

	if err := s.scheduleService.RemoveSchedule(c.Request.Context(), scheduleID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule removed successfully")
}

// ListSchedules godoc
// @Summary List trips of a user
// @Tags Schedules
// @Produce json
// @Param userId query string false "User ID (defaults to the authenticated user)"
// @Param status query string false "Status filter"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/list [get]
func (s *ScheduleController) ListSchedules(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.GetString("user_id")
	}
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User id is required")
		return
	}

	schedules, err := s.scheduleService.ListSchedules(c.Request.Context(), userID, c.Query("status"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, schedules, "Schedules retrieved successfully")
}

// ListScheduleLocations godoc
// @Summary List the pinned places of a trip grouped by day
// @Tags Schedules
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/location/list/{scheduleId} [get]
func (s *ScheduleController) ListScheduleLocations(c *gin.Context) {
	scheduleID := c.Param("scheduleId")
	if scheduleID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Schedule id is required")
		return
	}

	days, err := s.scheduleService.ListScheduleLocations(c.Request.Context(), scheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, days, "Schedule locations retrieved successfully")
}

// AppendScheduleLocation godoc
// @Summary Pin a place to a trip
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.AppendScheduleLocationRequest true "Pin payload"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/location/append [post]
func (s *ScheduleController) AppendScheduleLocation(c *gin.Context) {
	var req request_models.AppendScheduleLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.scheduleService.AppendScheduleLocation(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule location appended successfully")
}

// ModifyScheduleLocation godoc
// @Summary Update a pinned place
// @Tags Schedules
// @Accept json
// @Produce json
// @Param request body request_models.ModifyScheduleLocationRequest true "Pin update payload"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/location/modify [post]
func (s *ScheduleController) ModifyScheduleLocation(c *gin.Context) {
	var req request_models.ModifyScheduleLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := s.scheduleService.ModifyScheduleLocation(c.Request.Context(), req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule location updated successfully")
}

// RemoveScheduleLocation godoc
// @Summary Remove a pinned place
// @Tags Schedules
// @Produce json
// @Param id path string true "Schedule location ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/location/remove/{id} [delete]
func (s *ScheduleController) RemoveScheduleLocation(c *gin.Context) {
	entryID := c.Param("id")
	if entryID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Schedule location id is required")
		return
	}

	if err := s.scheduleService.RemoveScheduleLocation(c.Request.Context(), entryID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Schedule location removed successfully")
}

// ListScheduleUsers godoc
// @Summary List the members of a trip
// @Tags Schedules
// @Produce json
// @Param scheduleId path string true "Schedule ID"
// @Success 200 {object} utils.APIResponse
// @Router /schedule/user/list/{scheduleId} [get]
func (s *ScheduleController) ListScheduleUsers(c *gin.Context) {
	scheduleID := c.Param("scheduleId")
	if scheduleID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Schedule id is required")
		return
	}

	users, err := s.scheduleService.ListScheduleUsers(c.Request.Context(), scheduleID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, users, "Schedule members retrieved successfully")
}
