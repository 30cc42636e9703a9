package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
	"tripjournal/pkg/ws"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The browser client runs on a different origin than the API.
	CheckOrigin: func(r *http.Request) bool { return true },
}

type NotificationController struct {
	notificationService services.NotificationServiceInterface
	hub                 *ws.Hub
}

func NewNotificationController(notificationService services.NotificationServiceInterface, hub *ws.Hub) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
		hub:                 hub,
	}
}

func (n *NotificationController) ListNotifications(c *gin.Context) {
	notifications, err := n.notificationService.ListNotifications(c.Request.Context(), c.GetString("user_id"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications, "Notifications fetched successfully")
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	notificationID := c.Param("notificationId")
	if notificationID == "" {
		utils.RespondError(c, http.StatusBadRequest, "Notification ID is required")
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), c.GetString("user_id"), notificationID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, nil, "Notification marked as read")
}

// Stream upgrades the connection and forwards the user's notification events
// until the client goes away.
func (n *NotificationController) Stream(c *gin.Context) {
	userID, err := uuid.Parse(c.GetString("user_id"))
	if err != nil {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid user")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	events, unsubscribe := n.hub.Subscribe(userID)
	defer unsubscribe()

	// Reader goroutine only detects the close; clients never send data.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case event, ok := <-events:
			if !ok {
				return
			}
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}
