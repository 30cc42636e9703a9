package response_models

type TripResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"trip_title"`
	Description string   `json:"trip_description,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	Visibility  string   `json:"visibility"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
}

type MarkerResponse struct {
	ID        string   `json:"id"`
	Label     string   `json:"label"`
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Tags      []string `json:"tags,omitempty"`
}

type PhotoResponse struct {
	ID       string `json:"id"`
	FileName string `json:"file_name"`
	URL      string `json:"url"`
}
