package request_models

type SendFriendRequest struct {
	AddresseeID string `json:"addressee_id" binding:"required,uuid4"`
}
