package services

import (
	"context"

	"github.com/google/uuid"
	"tripjournal/internal/models/db_models"
	"tripjournal/internal/repositories"
	"tripjournal/pkg/utils"
	"tripjournal/pkg/ws"
)

type NotificationServiceInterface interface {
	Notify(ctx context.Context, userID uuid.UUID, notifType, message string) error
	ListNotifications(ctx context.Context, userID string) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID string) error
}

type NotificationService struct {
	notificationRepo repositories.NotificationRepository
	hub              *ws.Hub
}

func NewNotificationService(notificationRepo repositories.NotificationRepository, hub *ws.Hub) NotificationServiceInterface {
	return &NotificationService{
		notificationRepo: notificationRepo,
		hub:              hub,
	}
}

// Notify persists the notification and pushes it to the user's live sessions.
func (n *NotificationService) Notify(ctx context.Context, userID uuid.UUID, notifType, message string) error {
	notification := &db_models.Notification{
		UserID:  userID,
		Type:    notifType,
		Message: message,
	}
	if err := n.notificationRepo.Insert(ctx, notification); err != nil {
		return utils.ErrDatabaseError
	}

	n.hub.Publish(userID, ws.Event{
		Type: notifType,
		Data: map[string]string{
			"id":      notification.ID.String(),
			"message": message,
		},
	})
	return nil
}

func (n *NotificationService) ListNotifications(ctx context.Context, userID string) ([]db_models.Notification, error) {
	notifications, err := n.notificationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	return notifications, nil
}

func (n *NotificationService) MarkRead(ctx context.Context, userID, notificationID string) error {
	affected, err := n.notificationRepo.MarkRead(ctx, notificationID, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if affected == 0 {
		return utils.ErrNotificationNotFound
	}
	return nil
}
