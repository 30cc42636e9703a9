package response_models

// PlacePoint is the only POI shape exposed to callers: ids, categories and
// ratings are stripped before the itinerary leaves the builder.
type PlacePoint struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lng  float64 `json:"lng"`
}

// AssistantReply is either the assistant's text returned verbatim or a
// simplified day-by-day itinerary, never both.
type AssistantReply struct {
	Kind      string                  `json:"kind"` // "message" | "itinerary"
	Message   string                  `json:"message,omitempty"`
	Itinerary map[string][]PlacePoint `json:"itinerary,omitempty"`
}
