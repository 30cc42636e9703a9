package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"tripjournal/internal/models/request_models"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

type AssistantController struct {
	assistantService services.AssistantServiceInterface
}

func NewAssistantController(assistantService services.AssistantServiceInterface) *AssistantController {
	return &AssistantController{
		assistantService: assistantService,
	}
}

// Ask godoc
// @Summary Ask the travel assistant
// @Description Send the conversation to the assistant; itinerary requests come back as a day-by-day list of places
// @Tags Assistant
// @Accept json
// @Produce json
// @Param request body request_models.AssistantAskRequest true "Conversation messages"
// @Success 200 {object} response_models.AssistantReply
// @Security BearerAuth
// @Router /assistant/ask [post]
func (a *AssistantController) Ask(c *gin.Context) {
	var req request_models.AssistantAskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	messages := make([]utils.ChatMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, utils.ChatMessage{Role: m.Role, Content: m.Content})
	}

	reply, err := a.assistantService.Ask(c.Request.Context(), messages)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, reply, "Assistant replied successfully")
}
