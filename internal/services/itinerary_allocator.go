package services

// POICandidate is one ranked place sourced for a category pool. Candidates
// live only for the duration of a single itinerary build.
type POICandidate struct {
	ID         string
	Name       string
	Lat        float64
	Lng        float64
	Categories []string
	Rating     float64
}

// CategoryTotal is one category's demand summed across the whole itinerary,
// in first-appearance order.
type CategoryTotal struct {
	Category string
	Total    int
}

// AggregateDemand flattens day→category→count into per-category totals so
// each category is fetched from the search provider exactly once per build,
// not once per day. Non-positive counts were already dropped by the decoder.
func AggregateDemand(plan []DayDemand) []CategoryTotal {
	totals := make(map[string]int)
	var order []string

	for _, day := range plan {
		for _, cc := range day.Categories {
			if cc.Count <= 0 {
				continue
			}
			if _, seen := totals[cc.Category]; !seen {
				order = append(order, cc.Category)
			}
			totals[cc.Category] += cc.Count
		}
	}

	out := make([]CategoryTotal, 0, len(order))
	for _, category := range order {
		out = append(out, CategoryTotal{Category: category, Total: totals[category]})
	}
	return out
}

// BuildPool deduplicates ranked candidates by id and caps the pool at the
// category's aggregated demand.
func BuildPool(candidates []POICandidate, capacity int) []POICandidate {
	seen := make(map[string]struct{}, len(candidates))
	out := make([]POICandidate, 0, capacity)
	for _, c := range candidates {
		if _, dup := seen[c.ID]; dup {
			continue
		}
		seen[c.ID] = struct{}{}
		out = append(out, c)
		if len(out) == capacity {
			break
		}
	}
	return out
}

// AllocateItinerary distributes the category pools across the days that
// requested them. Greedy and deterministic: days in request order, each day's
// categories in request order. Pool cursors persist across days — a pool is a
// shared, progressively consumed resource, so no place is handed out twice and
// each pool is scanned left to right exactly once. The used set is local to
// this call; concurrent builds never share state.
//
// A pool running dry before a day's count is satisfied is not an error; that
// day simply gets fewer places.
func AllocateItinerary(plan []DayDemand, pools map[string][]POICandidate) map[string][]POICandidate {
	cursors := make(map[string]int, len(pools))
	used := make(map[string]struct{})
	result := make(map[string][]POICandidate, len(plan))

	for _, day := range plan {
		assigned := make([]POICandidate, 0)
		for _, cc := range day.Categories {
			pool := pools[cc.Category]
			taken := 0
			i := cursors[cc.Category]
			for ; i < len(pool) && taken < cc.Count; i++ {
				candidate := pool[i]
				if _, dup := used[candidate.ID]; dup {
					continue
				}
				used[candidate.ID] = struct{}{}
				assigned = append(assigned, candidate)
				taken++
			}
			cursors[cc.Category] = i
		}
		result[day.Day] = assigned
	}
	return result
}
