package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

type TripController struct {
	tripService services.TripServiceInterface
}

func NewTripController(tripService services.TripServiceInterface) *TripController {
	return &TripController{
		tripService: tripService,
	}
}

// pathUserID checks the :id path segment against the token identity; trips
// can only be managed by their owner.
func pathUserID(c *gin.Context) (string, bool) {
	userID := c.Param("id")
	if userID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return "", false
	}
	if userID != c.GetString("user_id") {
		utils.RespondError(c, http.StatusForbidden, "Cannot manage another user's trips")
		return "", false
	}
	return userID, true
}

// CreateTrip godoc
// @Summary Create a trip
// @Description Create a trip for the given user
// @Tags Trip
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param request body request_models.CreateTripRequest true "Trip fields"
// @Success 201 {object} response_models.TripResponse
// @Security BearerAuth
// @Router /users/{id}/trips [post]
func (t *TripController) CreateTrip(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	var req request_models.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	trip, err := t.tripService.CreateTrip(c.Request.Context(), userID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, trip, "Trip created successfully")
}

func (t *TripController) ListTrips(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}

	trips, err := t.tripService.ListTripsByUser(c.Request.Context(), userID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, trips, "Trips fetched successfully")
}

func (t *TripController) DeleteTrip(c *gin.Context) {
	userID, ok := pathUserID(c)
	if !ok {
		return
	}
	tripID := c.Param("tripId")
	if tripID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Trip ID is required")
		return
	}

	if err := t.tripService.DeleteTrip(c.Request.Context(), userID, tripID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Trip deleted successfully")
}
