package controllers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"gabojago/internal/models/request_models"
	"gabojago/internal/services"
	"gabojago/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

// GenerateSchedule godoc
// @Summary Generate a day-by-day itinerary
// @Description Draft an itinerary with the AI generator, resolve every place against Kakao Local and return the reconciled days. Pass iSchedulePK to also save the resolved entries to that trip.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.GenerateScheduleRequest true "Trip parameters"
// @Param iSchedulePK query string false "Trip to save the resolved entries into"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /schedule/generate [post]
func (i *ItineraryController) GenerateSchedule(c *gin.Context) {
	var req request_models.GenerateScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	itinerary, err := i.itineraryService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		var stageErr *services.StageError
		if errors.As(err, &stageErr) {
			utils.RespondError(c, http.StatusBadGateway,
				fmt.Sprintf("Itinerary generation failed during the %s stage", stageErr.Stage))
			return
		}
		utils.HandleServiceError(c, err)
		return
	}

	scheduleID := c.Query("iSchedulePK")
	if scheduleID == "" {
		utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
		return
	}

	saved, err := i.itineraryService.PersistItinerary(c.Request.Context(), scheduleID, itinerary)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c,
		gin.H{"itinerary": itinerary, "saved_count": saved},
		"Itinerary generated and saved successfully")
}
