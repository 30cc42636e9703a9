package services

import (
	"context"

	"github.com/google/uuid"
	"tripjournal/internal/models/db_models"
	"tripjournal/internal/models/response_models"
	"tripjournal/internal/repositories"
	"tripjournal/pkg/utils"
)

type FriendServiceInterface interface {
	SendRequest(ctx context.Context, requesterID, addresseeID string) error
	AcceptRequest(ctx context.Context, userID, requestID string) error
	DeclineRequest(ctx context.Context, userID, requestID string) error
	ListFriends(ctx context.Context, userID string) ([]response_models.AccountResponse, error)
}

type FriendService struct {
	friendRepo          repositories.FriendRepository
	accountRepo         repositories.AccountRepository
	notificationService NotificationServiceInterface
}

func NewFriendService(
	friendRepo repositories.FriendRepository,
	accountRepo repositories.AccountRepository,
	notificationService NotificationServiceInterface,
) FriendServiceInterface {
	return &FriendService{
		friendRepo:          friendRepo,
		accountRepo:         accountRepo,
		notificationService: notificationService,
	}
}

func (f *FriendService) SendRequest(ctx context.Context, requesterID, addresseeID string) error {
	if requesterID == addresseeID {
		return utils.ErrSelfFriendRequest
	}

	addressee, err := f.accountRepo.FindByID(ctx, addresseeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if addressee == nil {
		return utils.ErrAccountNotFound
	}

	existing, err := f.friendRepo.FindBetween(ctx, requesterID, addresseeID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing != nil && existing.Status != db_models.FriendshipDeclined {
		return utils.ErrFriendRequestExists
	}

	requesterUUID, err := uuid.Parse(requesterID)
	if err != nil {
		return utils.ErrInvalidInput
	}

	if existing != nil {
		// Declined pair: revive the existing row instead of inserting a
		// second one, which the pair's unique index would reject.
		if err := f.friendRepo.ResetToPending(ctx, existing.ID.String(), requesterUUID, addressee.ID); err != nil {
			return utils.ErrDatabaseError
		}
	} else {
		friendship := &db_models.Friendship{
			RequesterID: requesterUUID,
			AddresseeID: addressee.ID,
			Status:      db_models.FriendshipPending,
		}
		if err := f.friendRepo.Insert(ctx, friendship); err != nil {
			return utils.ErrDatabaseError
		}
	}

	requester, err := f.accountRepo.FindByID(ctx, requesterID)
	if err != nil || requester == nil {
		return nil // request stored, notification is best effort
	}
	_ = f.notificationService.Notify(ctx, addressee.ID, "friend_request",
		requester.Username+" sent you a friend request")
	return nil
}

func (f *FriendService) AcceptRequest(ctx context.Context, userID, requestID string) error {
	friendship, err := f.resolvePendingRequest(ctx, userID, requestID)
	if err != nil {
		return err
	}

	if err := f.friendRepo.UpdateStatus(ctx, requestID, db_models.FriendshipAccepted); err != nil {
		return utils.ErrDatabaseError
	}

	addressee, err := f.accountRepo.FindByID(ctx, userID)
	if err != nil || addressee == nil {
		return nil
	}
	_ = f.notificationService.Notify(ctx, friendship.RequesterID, "friend_accepted",
		addressee.Username+" accepted your friend request")
	return nil
}

func (f *FriendService) DeclineRequest(ctx context.Context, userID, requestID string) error {
	if _, err := f.resolvePendingRequest(ctx, userID, requestID); err != nil {
		return err
	}
	if err := f.friendRepo.UpdateStatus(ctx, requestID, db_models.FriendshipDeclined); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// resolvePendingRequest loads a pending request addressed to userID.
func (f *FriendService) resolvePendingRequest(ctx context.Context, userID, requestID string) (*db_models.Friendship, error) {
	friendship, err := f.friendRepo.FindByID(ctx, requestID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if friendship == nil ||
		friendship.AddresseeID.String() != userID ||
		friendship.Status != db_models.FriendshipPending {
		return nil, utils.ErrFriendRequestNotFound
	}
	return friendship, nil
}

func (f *FriendService) ListFriends(ctx context.Context, userID string) ([]response_models.AccountResponse, error) {
	friendships, err := f.friendRepo.ListAcceptedByUserID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.AccountResponse, 0, len(friendships))
	for _, friendship := range friendships {
		friend := friendship.Requester
		if friendship.RequesterID.String() == userID {
			friend = friendship.Addressee
		}
		out = append(out, response_models.AccountResponse{
			ID:       friend.ID.String(),
			Username: friend.Username,
			Email:    friend.Email,
		})
	}
	return out, nil
}
