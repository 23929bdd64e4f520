package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"smarttravel/internal/models/request_models"
	"smarttravel/internal/services"
	"smarttravel/pkg/utils"
)

type DisruptionController struct {
	disruptionAgent services.DisruptionAgentInterface
}

func NewDisruptionController(disruptionAgent services.DisruptionAgentInterface) *DisruptionController {
	return &DisruptionController{
		disruptionAgent: disruptionAgent,
	}
}

// DetectDisruptions godoc
// @Summary Detect disruptions
// @Description Evaluate an itinerary against live signal flags and report disruptions
// @Tags Disruptions
// @Accept json
// @Produce json
// @Param request body request_models.DetectDisruptionsRequest true "Itinerary and live signals"
// @Success 200 {object} domain_models.DisruptionReport
// @Failure 400 {object} utils.APIResponse
// @Router /disruptions/detect [post]
func (d *DisruptionController) DetectDisruptions(c *gin.Context) {
	var req request_models.DetectDisruptionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	report := d.disruptionAgent.DetectDisruptions(c.Request.Context(), req.Itinerary, req.LiveSignals)
	utils.RespondSuccess(c, report, "Disruption check completed")
}

// ReviseItinerary godoc
// @Summary Revise an itinerary
// @Description Produce a revised itinerary addressing a disruption report
// @Tags Disruptions
// @Accept json
// @Produce json
// @Param request body request_models.ReviseItineraryRequest true "Itinerary and disruption report"
// @Success 200 {object} domain_models.RevisedItinerary
// @Failure 400 {object} utils.APIResponse
// @Router /disruptions/revise [post]
func (d *DisruptionController) ReviseItinerary(c *gin.Context) {
	var req request_models.ReviseItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	revised := d.disruptionAgent.GenerateRevisedItinerary(c.Request.Context(), req.Itinerary, req.Report)
	utils.RespondSuccess(c, revised, "Revised itinerary generated")
}
