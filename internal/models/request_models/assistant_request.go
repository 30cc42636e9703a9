package request_models

type AssistantMessage struct {
	Role    string `json:"role" binding:"required,oneof=user assistant model"`
	Content string `json:"content" binding:"required"`
}

type AssistantAskRequest struct {
	Messages []AssistantMessage `json:"messages" binding:"required,min=1,dive"`
}
