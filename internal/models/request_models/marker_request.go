package request_models

type CreateMarkerRequest struct {
	Label     string   `json:"label" binding:"required,min=1,max=200"`
	Latitude  float64  `json:"latitude" binding:"required,min=-90,max=90"`
	Longitude float64  `json:"longitude" binding:"required,min=-180,max=180"`
	Tags      []string `json:"tags"`
}
