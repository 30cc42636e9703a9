package utils

import "time"

// Central European time, where the journal's users live (CET/CEST).
var cetLoc = func() *time.Location {
	if loc, err := time.LoadLocation("Europe/Bratislava"); err == nil {
		return loc
	}
	return time.FixedZone("CET", 1*3600)
}()

// NowUnixSeconds is the canonical epoch value stored in the database.
func NowUnixSeconds() int64 { return time.Now().Unix() }

// FromUnixSeconds converts a stored epoch value to local time.
// Returns the zero time for t<=0 so callers decide how to render it.
func FromUnixSeconds(t int64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	return time.Unix(t, 0).In(cetLoc)
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.In(cetLoc).Format(time.RFC3339)
}
