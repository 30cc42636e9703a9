package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

type MarkerController struct {
	markerService services.MarkerServiceInterface
}

func NewMarkerController(markerService services.MarkerServiceInterface) *MarkerController {
	return &MarkerController{
		markerService: markerService,
	}
}

func (m *MarkerController) CreateMarker(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	var req request_models.CreateMarkerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	marker, err := m.markerService.CreateMarker(c.Request.Context(), c.GetString("user_id"), tripID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, marker, "Marker created successfully")
}

func (m *MarkerController) ListMarkers(c *gin.Context) {
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	markers, err := m.markerService.ListMarkers(c.Request.Context(), c.GetString("user_id"), tripID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, markers, "Markers fetched successfully")
}

func (m *MarkerController) DeleteMarker(c *gin.Context) {
	markerID := c.Param("markerId")
	if markerID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Marker ID is required")
		return
	}

	if err := m.markerService.DeleteMarker(c.Request.Context(), c.GetString("user_id"), markerID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Marker deleted successfully")
}
