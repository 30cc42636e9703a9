package db_models

import "github.com/google/uuid"

const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
	FriendshipDeclined = "declined"
)

type Friendship struct {
	BaseModel
	RequesterID uuid.UUID `gorm:"index:idx_friend_pair,unique"`
	AddresseeID uuid.UUID `gorm:"index:idx_friend_pair,unique"`
	Status      string

	Requester Account `gorm:"foreignKey:RequesterID"`
	Addressee Account `gorm:"foreignKey:AddresseeID"`
}
