package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"tripjournal/internal/models/db_models"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification *db_models.Notification) error
	FindByID(ctx context.Context, id string) (*db_models.Notification, error)
	ListByUserID(ctx context.Context, userID string) ([]db_models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{
		db: db,
	}
}

func (n *notificationRepository) Insert(ctx context.Context, notification *db_models.Notification) error {
	return n.db.WithContext(ctx).Create(notification).Error
}

func (n *notificationRepository) FindByID(ctx context.Context, id string) (*db_models.Notification, error) {
	var notification db_models.Notification
	err := n.db.WithContext(ctx).First(&notification, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &notification, nil
}

func (n *notificationRepository) ListByUserID(ctx context.Context, userID string) ([]db_models.Notification, error) {
	var notifications []db_models.Notification
	err := n.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error
	return notifications, err
}

func (n *notificationRepository) MarkRead(ctx context.Context, id, userID string) (int64, error) {
	res := n.db.WithContext(ctx).
		Model(&db_models.Notification{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("is_read", true)
	return res.RowsAffected, res.Error
}
