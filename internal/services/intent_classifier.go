package services

import (
	"bytes"
	"encoding/json"
	"strings"
)

// IntentKind tags what the assistant's reply actually is. Only place-list and
// multi-day replies continue into enrichment; everything else goes back to the
// caller verbatim.
type IntentKind string

const (
	IntentPlaceList         IntentKind = "place_list"
	IntentMultiDayItinerary IntentKind = "multi_day_itinerary"
	IntentFactualAnswer     IntentKind = "factual_answer"
	IntentGreeting          IntentKind = "greeting"
	IntentOffTopic          IntentKind = "off_topic"
	IntentUnknown           IntentKind = "unknown"
)

// Reply markers the system instruction pins for the model: factual answers end
// with '#', greetings and courtesy replies with '&', off-topic requests get the
// exact refusal phrase.
const (
	factualSentinel  = "#"
	greetingSentinel = "&"
	offTopicRefusal  = "Môžem odpovedať len na otázky o cestovaní."

	intentTypePlaceList = "typ_1"
	intentTypeMultiDay  = "typ_2"
)

type CategoryCount struct {
	Category string
	Count    int
}

// DayDemand keeps the day's categories in the order the model listed them;
// allocation depends on that order being stable.
type DayDemand struct {
	Day        string
	Categories []CategoryCount
}

// Intent is the classified assistant reply. Demand is populated only for the
// two itinerary kinds; Content always carries the original text.
type Intent struct {
	Kind     IntentKind
	Location string
	Days     int
	Demand   []DayDemand
	Content  string
}

type itineraryRequestJSON struct {
	Type      string          `json:"type"`
	Location  string          `json:"location"`
	Days      int             `json:"days"`
	Itinerary json.RawMessage `json:"itinerary"`
}

// ClassifyAssistantReply turns raw assistant output into a typed intent.
// Parse-then-fallback: try the structured itinerary-request shape first (after
// stripping code fences); when that fails, classify by the trailing sentinel.
// Malformed JSON never escapes this function.
func ClassifyAssistantReply(content string) Intent {
	var req itineraryRequestJSON
	if err := json.Unmarshal([]byte(stripCodeFences(content)), &req); err == nil {
		switch req.Type {
		case intentTypePlaceList:
			return Intent{
				Kind:     IntentPlaceList,
				Location: req.Location,
				Days:     req.Days,
				Demand:   decodeDemand(req.Itinerary),
				Content:  content,
			}
		case intentTypeMultiDay:
			return Intent{
				Kind:     IntentMultiDayItinerary,
				Location: req.Location,
				Days:     req.Days,
				Demand:   decodeDemand(req.Itinerary),
				Content:  content,
			}
		}
	}

	trimmed := strings.TrimSpace(content)
	switch {
	case strings.HasSuffix(trimmed, factualSentinel):
		return Intent{Kind: IntentFactualAnswer, Content: content}
	case strings.HasSuffix(trimmed, greetingSentinel):
		if strings.Contains(trimmed, offTopicRefusal) {
			return Intent{Kind: IntentOffTopic, Content: content}
		}
		return Intent{Kind: IntentGreeting, Content: content}
	default:
		return Intent{Kind: IntentUnknown, Content: content}
	}
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// decodeDemand walks the itinerary object with a token decoder so day and
// category order survive; encoding/json maps would randomize both. Missing,
// malformed or non-numeric pieces are skipped, never an error: an empty or
// broken itinerary means zero demand.
func decodeDemand(raw json.RawMessage) []DayDemand {
	var days []DayDemand
	if len(raw) == 0 {
		return days
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return days
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return days
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return days
		}
		day, _ := keyTok.(string)

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return days
		}
		days = append(days, DayDemand{Day: day, Categories: decodeCategoryCounts(val)})
	}
	return days
}

func decodeCategoryCounts(raw json.RawMessage) []CategoryCount {
	var out []CategoryCount

	dec := json.NewDecoder(bytes.NewReader(raw))
	tok, err := dec.Token()
	if err != nil {
		return out
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return out
	}

	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return out
		}
		category, _ := keyTok.(string)

		var val json.RawMessage
		if err := dec.Decode(&val); err != nil {
			return out
		}

		var count float64
		if err := json.Unmarshal(val, &count); err != nil || count <= 0 {
			continue
		}
		out = append(out, CategoryCount{Category: category, Count: int(count)})
	}
	return out
}
