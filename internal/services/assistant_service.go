package services

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
	"tripjournal/internal/models/response_models"
	"tripjournal/pkg/utils"
)

// System instruction sent with every conversation. It pins the reply contract
// the classifier depends on: structured JSON for place requests, sentinel
// characters for everything else.
const assistantSystemInstruction = `You are a travel assistant for a travel journal application.

When the user asks for places to visit or a trip itinerary, reply with JSON only (no prose, no markdown fences):
{"type":"typ_1","location":"<place>","days":1,"itinerary":{"day1":{"<poi_category>":<count>}}} for a single-day place request, or
{"type":"typ_2","location":"<place>","days":<n>,"itinerary":{"day1":{...},"day2":{...}}} for a multi-day itinerary.
Use Google Places categories such as tourist_attraction, museum, restaurant, park, cafe.

For factual travel questions, answer briefly and end the reply with the character #.
For greetings and courtesy replies, end the reply with the character &.
If the request has nothing to do with travel, reply exactly: ` + offTopicRefusal + `&`

type AssistantServiceInterface interface {
	Ask(ctx context.Context, messages []utils.ChatMessage) (*response_models.AssistantReply, error)
}

type AssistantService struct {
	chatClient  utils.ChatClientInterface
	geocoder    GeocodingProvider
	placeSearch PlaceSearchProvider
}

func NewAssistantService(
	chatClient utils.ChatClientInterface,
	geocoder GeocodingProvider,
	placeSearch PlaceSearchProvider,
) AssistantServiceInterface {
	return &AssistantService{
		chatClient:  chatClient,
		geocoder:    geocoder,
		placeSearch: placeSearch,
	}
}

// Ask runs one pass of the pipeline: model call, classification, and for
// itinerary-shaped replies the enrichment build. Replies that are not
// itinerary-shaped are returned to the caller unchanged.
func (a *AssistantService) Ask(ctx context.Context, messages []utils.ChatMessage) (*response_models.AssistantReply, error) {
	content, err := a.chatClient.Chat(ctx, assistantSystemInstruction, messages)
	if err != nil {
		log.Printf("assistant chat failed: %v", err)
		return nil, utils.ErrAssistantUnavailable
	}

	intent := ClassifyAssistantReply(content)
	switch intent.Kind {
	case IntentPlaceList, IntentMultiDayItinerary:
		itinerary, err := a.buildItinerary(ctx, intent)
		if err != nil {
			return nil, err
		}
		return &response_models.AssistantReply{Kind: "itinerary", Itinerary: itinerary}, nil
	default:
		return &response_models.AssistantReply{Kind: "message", Message: intent.Content}, nil
	}
}

// buildItinerary: aggregate demand, geocode once, fetch one pool per category
// (concurrently, sized to that category's total demand), allocate, simplify.
// Any geocode or search failure aborts the build; no partial itinerary is
// ever returned.
func (a *AssistantService) buildItinerary(ctx context.Context, intent Intent) (map[string][]response_models.PlacePoint, error) {
	totals := AggregateDemand(intent.Demand)
	if len(totals) == 0 {
		// Zero demand: an empty itinerary, not an error, and no provider calls.
		return simplifyAllocation(intent.Demand, nil), nil
	}

	coord, err := a.geocoder.Geocode(ctx, intent.Location)
	if err != nil {
		return nil, err
	}

	// The per-category searches are independent; fetch them concurrently but
	// do not start allocating until every pool has resolved.
	pools := make([][]POICandidate, len(totals))
	g, gctx := errgroup.WithContext(ctx)
	for i, ct := range totals {
		i, ct := i, ct
		g.Go(func() error {
			candidates, err := a.placeSearch.SearchNearby(gctx, coord, ct.Category, ct.Total)
			if err != nil {
				return fmt.Errorf("category %s: %w", ct.Category, err)
			}
			pools[i] = BuildPool(candidates, ct.Total)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	poolsByCategory := make(map[string][]POICandidate, len(totals))
	for i, ct := range totals {
		poolsByCategory[ct.Category] = pools[i]
	}

	allocation := AllocateItinerary(intent.Demand, poolsByCategory)
	return simplifyAllocation(intent.Demand, allocation), nil
}

// simplifyAllocation strips candidates down to the only shape exposed to
// callers: name and coordinates, day by day.
func simplifyAllocation(plan []DayDemand, allocation map[string][]POICandidate) map[string][]response_models.PlacePoint {
	out := make(map[string][]response_models.PlacePoint, len(plan))
	for _, day := range plan {
		points := make([]response_models.PlacePoint, 0, len(allocation[day.Day]))
		for _, candidate := range allocation[day.Day] {
			points = append(points, response_models.PlacePoint{
				Name: candidate.Name,
				Lat:  candidate.Lat,
				Lng:  candidate.Lng,
			})
		}
		out[day.Day] = points
	}
	return out
}
