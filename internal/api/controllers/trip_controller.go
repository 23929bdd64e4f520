package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"smarttravel/internal/models/request_models"
	"smarttravel/internal/models/response_models"
	"smarttravel/internal/services"
	"smarttravel/pkg/utils"
)

type TripController struct {
	concierge services.ConciergeServiceInterface
}

func NewTripController(concierge services.ConciergeServiceInterface) *TripController {
	return &TripController{
		concierge: concierge,
	}
}

// PlanTrip godoc
// @Summary Plan a trip
// @Description Generate a complete travel itinerary for a destination and date range
// @Tags Trips
// @Accept json
// @Produce json
// @Param request body request_models.PlanTripRequest true "Trip parameters"
// @Success 200 {object} response_models.TripResponse
// @Failure 400 {object} utils.APIResponse
// @Router /trips/plan [post]
func (t *TripController) PlanTrip(c *gin.Context) {
	var req request_models.PlanTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	itinerary, err := t.concierge.ProcessRequest(c.Request.Context(), req.ToTravelRequest())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.BuildTripResponse(itinerary), "Trip plan generated successfully")
}

// GetStatus godoc
// @Summary Concierge status
// @Description Aggregated readiness of the concierge and all provider agents
// @Tags Trips
// @Produce json
// @Success 200 {object} domain_models.ConciergeStatus
// @Router /status [get]
func (t *TripController) GetStatus(c *gin.Context) {
	utils.RespondSuccess(c, t.concierge.Status(), "Status fetched successfully")
}

func (t *TripController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response_models.HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Version:   "1.0.0",
	})
}
