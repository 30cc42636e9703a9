package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"tripjournal/internal/models/db_models"
)

type FriendRepository interface {
	Insert(ctx context.Context, friendship *db_models.Friendship) error
	FindByID(ctx context.Context, id string) (*db_models.Friendship, error)
	FindBetween(ctx context.Context, userA, userB string) (*db_models.Friendship, error)
	UpdateStatus(ctx context.Context, id, status string) error
	ResetToPending(ctx context.Context, id string, requesterID, addresseeID uuid.UUID) error
	ListAcceptedByUserID(ctx context.Context, userID string) ([]db_models.Friendship, error)
}

type friendRepository struct {
	db *gorm.DB
}

func NewFriendRepository(db *gorm.DB) FriendRepository {
	return &friendRepository{
		db: db,
	}
}

func (f *friendRepository) Insert(ctx context.Context, friendship *db_models.Friendship) error {
	return f.db.WithContext(ctx).Create(friendship).Error
}

func (f *friendRepository) FindByID(ctx context.Context, id string) (*db_models.Friendship, error) {
	var friendship db_models.Friendship
	err := f.db.WithContext(ctx).First(&friendship, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &friendship, nil
}

func (f *friendRepository) FindBetween(ctx context.Context, userA, userB string) (*db_models.Friendship, error) {
	var friendship db_models.Friendship
	err := f.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&friendship).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &friendship, nil
}

func (f *friendRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return f.db.WithContext(ctx).
		Model(&db_models.Friendship{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// ResetToPending revives a declined friendship row for a fresh request,
// rewriting the direction; the (requester, addressee) pair carries a unique
// index so a second row for the same pair is never inserted.
func (f *friendRepository) ResetToPending(ctx context.Context, id string, requesterID, addresseeID uuid.UUID) error {
	return f.db.WithContext(ctx).
		Model(&db_models.Friendship{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"requester_id": requesterID,
			"addressee_id": addresseeID,
			"status":       db_models.FriendshipPending,
		}).Error
}

func (f *friendRepository) ListAcceptedByUserID(ctx context.Context, userID string) ([]db_models.Friendship, error) {
	var friendships []db_models.Friendship
	err := f.db.WithContext(ctx).
		Preload("Requester").
		Preload("Addressee").
		Where("status = ? AND (requester_id = ? OR addressee_id = ?)",
			db_models.FriendshipAccepted, userID, userID).
		Find(&friendships).Error
	return friendships, err
}
