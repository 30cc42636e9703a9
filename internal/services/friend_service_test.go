package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"tripjournal/internal/models/db_models"
	"tripjournal/pkg/utils"
)

type fakeFriendRepo struct {
	friendships map[string]*db_models.Friendship
}

func newFakeFriendRepo() *fakeFriendRepo {
	return &fakeFriendRepo{friendships: make(map[string]*db_models.Friendship)}
}

func (f *fakeFriendRepo) Insert(ctx context.Context, friendship *db_models.Friendship) error {
	// Mirrors the unique (requester, addressee) pair index on the table.
	for _, fr := range f.friendships {
		r, a := fr.RequesterID, fr.AddresseeID
		if (r == friendship.RequesterID && a == friendship.AddresseeID) ||
			(r == friendship.AddresseeID && a == friendship.RequesterID) {
			return errors.New("duplicate friendship pair")
		}
	}
	if friendship.ID == uuid.Nil {
		friendship.ID = uuid.New()
	}
	f.friendships[friendship.ID.String()] = friendship
	return nil
}

func (f *fakeFriendRepo) FindByID(ctx context.Context, id string) (*db_models.Friendship, error) {
	return f.friendships[id], nil
}

func (f *fakeFriendRepo) FindBetween(ctx context.Context, userA, userB string) (*db_models.Friendship, error) {
	for _, fr := range f.friendships {
		r, a := fr.RequesterID.String(), fr.AddresseeID.String()
		if (r == userA && a == userB) || (r == userB && a == userA) {
			return fr, nil
		}
	}
	return nil, nil
}

func (f *fakeFriendRepo) UpdateStatus(ctx context.Context, id, status string) error {
	if fr, ok := f.friendships[id]; ok {
		fr.Status = status
	}
	return nil
}

func (f *fakeFriendRepo) ResetToPending(ctx context.Context, id string, requesterID, addresseeID uuid.UUID) error {
	if fr, ok := f.friendships[id]; ok {
		fr.RequesterID = requesterID
		fr.AddresseeID = addresseeID
		fr.Status = db_models.FriendshipPending
	}
	return nil
}

func (f *fakeFriendRepo) ListAcceptedByUserID(ctx context.Context, userID string) ([]db_models.Friendship, error) {
	var out []db_models.Friendship
	for _, fr := range f.friendships {
		if fr.Status != db_models.FriendshipAccepted {
			continue
		}
		if fr.RequesterID.String() == userID || fr.AddresseeID.String() == userID {
			out = append(out, *fr)
		}
	}
	return out, nil
}

type recordingNotifier struct {
	notified []string
}

func (r *recordingNotifier) Notify(ctx context.Context, userID uuid.UUID, notifType, message string) error {
	r.notified = append(r.notified, notifType)
	return nil
}

func (r *recordingNotifier) ListNotifications(ctx context.Context, userID string) ([]db_models.Notification, error) {
	return nil, nil
}

func (r *recordingNotifier) MarkRead(ctx context.Context, userID, notificationID string) error {
	return nil
}

type friendFixture struct {
	service   FriendServiceInterface
	friends   *fakeFriendRepo
	notifier  *recordingNotifier
	requester *db_models.Account
	addressee *db_models.Account
}

func newFriendFixture(t *testing.T) *friendFixture {
	t.Helper()
	accountRepo := newFakeAccountRepo()
	requester := &db_models.Account{Username: "jozef", Email: "jozef@example.com"}
	addressee := &db_models.Account{Username: "anna", Email: "anna@example.com"}
	require.NoError(t, accountRepo.Insert(context.Background(), requester))
	require.NoError(t, accountRepo.Insert(context.Background(), addressee))

	friends := newFakeFriendRepo()
	notifier := &recordingNotifier{}
	return &friendFixture{
		service:   NewFriendService(friends, accountRepo, notifier),
		friends:   friends,
		notifier:  notifier,
		requester: requester,
		addressee: addressee,
	}
}

func (fx *friendFixture) friendships() []*db_models.Friendship {
	out := make([]*db_models.Friendship, 0, len(fx.friends.friendships))
	for _, fr := range fx.friends.friendships {
		out = append(out, fr)
	}
	return out
}

func (fx *friendFixture) pendingRequestID(t *testing.T) string {
	t.Helper()
	fr, err := fx.friends.FindBetween(context.Background(),
		fx.requester.ID.String(), fx.addressee.ID.String())
	require.NoError(t, err)
	require.NotNil(t, fr)
	return fr.ID.String()
}

func TestSendRequest_CreatesPendingAndNotifies(t *testing.T) {
	fx := newFriendFixture(t)

	err := fx.service.SendRequest(context.Background(),
		fx.requester.ID.String(), fx.addressee.ID.String())

	require.NoError(t, err)
	fr, _ := fx.friends.FindBetween(context.Background(),
		fx.requester.ID.String(), fx.addressee.ID.String())
	require.NotNil(t, fr)
	assert.Equal(t, db_models.FriendshipPending, fr.Status)
	assert.Equal(t, []string{"friend_request"}, fx.notifier.notified)
}

func TestSendRequest_ToSelf(t *testing.T) {
	fx := newFriendFixture(t)
	id := fx.requester.ID.String()

	assert.ErrorIs(t, fx.service.SendRequest(context.Background(), id, id), utils.ErrSelfFriendRequest)
}

func TestSendRequest_UnknownAddressee(t *testing.T) {
	fx := newFriendFixture(t)

	err := fx.service.SendRequest(context.Background(),
		fx.requester.ID.String(), uuid.NewString())
	assert.ErrorIs(t, err, utils.ErrAccountNotFound)
}

func TestSendRequest_DuplicateEitherDirection(t *testing.T) {
	fx := newFriendFixture(t)
	requester := fx.requester.ID.String()
	addressee := fx.addressee.ID.String()

	require.NoError(t, fx.service.SendRequest(context.Background(), requester, addressee))

	assert.ErrorIs(t, fx.service.SendRequest(context.Background(), requester, addressee), utils.ErrFriendRequestExists)
	assert.ErrorIs(t, fx.service.SendRequest(context.Background(), addressee, requester), utils.ErrFriendRequestExists)
}

func TestAcceptRequest_MakesFriends(t *testing.T) {
	fx := newFriendFixture(t)
	require.NoError(t, fx.service.SendRequest(context.Background(),
		fx.requester.ID.String(), fx.addressee.ID.String()))
	requestID := fx.pendingRequestID(t)

	err := fx.service.AcceptRequest(context.Background(), fx.addressee.ID.String(), requestID)

	require.NoError(t, err)
	assert.Contains(t, fx.notifier.notified, "friend_accepted")

	// Both sides now see each other.
	for _, userID := range []string{fx.requester.ID.String(), fx.addressee.ID.String()} {
		friends, err := fx.service.ListFriends(context.Background(), userID)
		require.NoError(t, err)
		assert.Len(t, friends, 1)
	}
}

func TestAcceptRequest_OnlyAddresseeCanAccept(t *testing.T) {
	fx := newFriendFixture(t)
	require.NoError(t, fx.service.SendRequest(context.Background(),
		fx.requester.ID.String(), fx.addressee.ID.String()))
	requestID := fx.pendingRequestID(t)

	err := fx.service.AcceptRequest(context.Background(), fx.requester.ID.String(), requestID)
	assert.ErrorIs(t, err, utils.ErrFriendRequestNotFound)
}

func TestDeclineRequest_SameDirectionResendReusesTheRow(t *testing.T) {
	fx := newFriendFixture(t)
	requester := fx.requester.ID.String()
	addressee := fx.addressee.ID.String()
	require.NoError(t, fx.service.SendRequest(context.Background(), requester, addressee))
	requestID := fx.pendingRequestID(t)
	require.NoError(t, fx.service.DeclineRequest(context.Background(), addressee, requestID))

	require.NoError(t, fx.service.SendRequest(context.Background(), requester, addressee))

	// One row per pair: the declined row is revived, never duplicated.
	require.Len(t, fx.friendships(), 1)
	fr := fx.friendships()[0]
	assert.Equal(t, db_models.FriendshipPending, fr.Status)
	assert.Equal(t, fx.requester.ID, fr.RequesterID)
	assert.Equal(t, fx.addressee.ID, fr.AddresseeID)

	// The revived request goes through the normal accept flow.
	require.NoError(t, fx.service.AcceptRequest(context.Background(), addressee, fr.ID.String()))
	friends, err := fx.service.ListFriends(context.Background(), requester)
	require.NoError(t, err)
	assert.Len(t, friends, 1)
}

func TestDeclineRequest_ReversedResendSwapsDirection(t *testing.T) {
	fx := newFriendFixture(t)
	requester := fx.requester.ID.String()
	addressee := fx.addressee.ID.String()
	require.NoError(t, fx.service.SendRequest(context.Background(), requester, addressee))
	requestID := fx.pendingRequestID(t)
	require.NoError(t, fx.service.DeclineRequest(context.Background(), addressee, requestID))

	friends, err := fx.service.ListFriends(context.Background(), requester)
	require.NoError(t, err)
	assert.Empty(t, friends)

	// The declined side asks back: same row, direction flipped.
	require.NoError(t, fx.service.SendRequest(context.Background(), addressee, requester))

	require.Len(t, fx.friendships(), 1)
	fr := fx.friendships()[0]
	assert.Equal(t, db_models.FriendshipPending, fr.Status)
	assert.Equal(t, fx.addressee.ID, fr.RequesterID)
	assert.Equal(t, fx.requester.ID, fr.AddresseeID)
}
