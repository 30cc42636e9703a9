package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

type FriendController struct {
	friendService services.FriendServiceInterface
}

func NewFriendController(friendService services.FriendServiceInterface) *FriendController {
	return &FriendController{
		friendService: friendService,
	}
}

func (f *FriendController) SendRequest(c *gin.Context) {
	var req request_models.SendFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "addressee_id is required")
		return
	}

	if err := f.friendService.SendRequest(c.Request.Context(), c.GetString("user_id"), req.AddresseeID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondCreated(c, nil, "Friend request sent")
}

func (f *FriendController) AcceptRequest(c *gin.Context) {
	requestID := c.Param("requestId")
	if requestID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	if err := f.friendService.AcceptRequest(c.Request.Context(), c.GetString("user_id"), requestID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Friend request accepted")
}

func (f *FriendController) DeclineRequest(c *gin.Context) {
	requestID := c.Param("requestId")
	if requestID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Request ID is required")
		return
	}

	if err := f.friendService.DeclineRequest(c.Request.Context(), c.GetString("user_id"), requestID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Friend request declined")
}

func (f *FriendController) ListFriends(c *gin.Context) {
	friends, err := f.friendService.ListFriends(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, friends, "Friends fetched successfully")
}
