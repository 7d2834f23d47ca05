package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gabojago/internal/models/request_models"
	"gabojago/internal/services"
	"gabojago/pkg/utils"
)

type LocationController struct {
	locationService services.LocationServiceInterface
}

func NewLocationController(locationService services.LocationServiceInterface) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// RequestLocations godoc
// @Summary Resolve place names to real places
// @Description Search each name/category pair against Kakao Local and return the stored candidates
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body request_models.LocationRequest true "Place query batch"
// @Success 200 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /location/request [post]
func (l *LocationController) RequestLocations(c *gin.Context) {
	var req request_models.LocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	candidates, err := l.locationService.RequestLocations(c.Request.Context(), req.RequestList)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"location_list": candidates}, "Locations resolved successfully")
}
