package utils

import "errors"

var (
	ErrAccountNotFound       = errors.New("account not found")
	ErrEmailAlreadyExists    = errors.New("email already exists")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrTripNotFound          = errors.New("trip not found")
	ErrMarkerNotFound        = errors.New("marker not found")
	ErrNotTripOwner          = errors.New("trip does not belong to this user")
	ErrFriendRequestExists   = errors.New("friend request already exists")
	ErrSelfFriendRequest     = errors.New("cannot send a friend request to yourself")
	ErrFriendRequestNotFound = errors.New("friend request not found")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidPage           = errors.New("invalid page parameter")
	ErrInvalidPageSize       = errors.New("invalid page size parameter")
	ErrDatabaseError         = errors.New("database error")

	// Enrichment failures. A geocode or place-search failure aborts the whole
	// itinerary build; a partial itinerary is never returned.
	ErrGeocodeFailed        = errors.New("geocoding failed")
	ErrPlaceSearchFailed    = errors.New("place search failed")
	ErrAssistantUnavailable = errors.New("assistant produced no usable reply")
)
