package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateDemand_FirstAppearanceOrder(t *testing.T) {
	plan := []DayDemand{
		{Day: "day1", Categories: []CategoryCount{
			{Category: "museum", Count: 2},
			{Category: "restaurant", Count: 1},
		}},
		{Day: "day2", Categories: []CategoryCount{
			{Category: "park", Count: 1},
			{Category: "museum", Count: 1},
		}},
	}

	totals := AggregateDemand(plan)

	assert.Equal(t, []CategoryTotal{
		{Category: "museum", Total: 3},
		{Category: "restaurant", Total: 1},
		{Category: "park", Total: 1},
	}, totals)
}

func TestAggregateDemand_Empty(t *testing.T) {
	assert.Empty(t, AggregateDemand(nil))
	assert.Empty(t, AggregateDemand([]DayDemand{{Day: "day1"}}))
}

func TestBuildPool_DedupAndCap(t *testing.T) {
	candidates := []POICandidate{
		{ID: "a", Name: "A"},
		{ID: "b", Name: "B"},
		{ID: "a", Name: "A again"},
		{ID: "c", Name: "C"},
		{ID: "d", Name: "D"},
	}

	pool := BuildPool(candidates, 3)

	require.Len(t, pool, 3)
	assert.Equal(t, "a", pool[0].ID)
	assert.Equal(t, "b", pool[1].ID)
	assert.Equal(t, "c", pool[2].ID)
}

func TestAllocateItinerary_SharedPoolAcrossDays(t *testing.T) {
	plan := []DayDemand{
		{Day: "day1", Categories: []CategoryCount{{Category: "tourist_attraction", Count: 2}}},
		{Day: "day2", Categories: []CategoryCount{{Category: "tourist_attraction", Count: 2}}},
	}
	pools := map[string][]POICandidate{
		"tourist_attraction": {
			{ID: "a", Name: "A", Rating: 0.9},
			{ID: "b", Name: "B", Rating: 0.8},
			{ID: "c", Name: "C", Rating: 0.7},
		},
	}

	result := AllocateItinerary(plan, pools)

	require.Len(t, result["day1"], 2)
	assert.Equal(t, "A", result["day1"][0].Name)
	assert.Equal(t, "B", result["day1"][1].Name)

	// Pool exhausted after day1 took the top two; day2 gets only C.
	require.Len(t, result["day2"], 1)
	assert.Equal(t, "C", result["day2"][0].Name)
}

func TestAllocateItinerary_NoCandidateAppearsTwice(t *testing.T) {
	plan := []DayDemand{
		{Day: "day1", Categories: []CategoryCount{
			{Category: "museum", Count: 2},
			{Category: "tourist_attraction", Count: 1},
		}},
		{Day: "day2", Categories: []CategoryCount{
			{Category: "tourist_attraction", Count: 2},
			{Category: "museum", Count: 1},
		}},
	}
	// "x" sits in both pools; it must be handed out once across the whole build.
	pools := map[string][]POICandidate{
		"museum": {
			{ID: "x", Name: "X"},
			{ID: "m1", Name: "M1"},
			{ID: "m2", Name: "M2"},
		},
		"tourist_attraction": {
			{ID: "x", Name: "X"},
			{ID: "t1", Name: "T1"},
			{ID: "t2", Name: "T2"},
		},
	}

	result := AllocateItinerary(plan, pools)

	seen := make(map[string]int)
	for _, day := range result {
		for _, c := range day {
			seen[c.ID]++
		}
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "candidate %s assigned %d times", id, n)
	}
	assert.Equal(t, 1, seen["x"])
}

func TestAllocateItinerary_SumMatchesDemandWhenPoolsSuffice(t *testing.T) {
	plan := []DayDemand{
		{Day: "day1", Categories: []CategoryCount{{Category: "park", Count: 2}}},
		{Day: "day2", Categories: []CategoryCount{{Category: "park", Count: 1}}},
	}
	pools := map[string][]POICandidate{
		"park": {
			{ID: "p1"}, {ID: "p2"}, {ID: "p3"},
		},
	}

	result := AllocateItinerary(plan, pools)

	assert.Len(t, result["day1"], 2)
	assert.Len(t, result["day2"], 1)
}

func TestAllocateItinerary_Deterministic(t *testing.T) {
	plan := []DayDemand{
		{Day: "day1", Categories: []CategoryCount{{Category: "cafe", Count: 1}, {Category: "museum", Count: 1}}},
		{Day: "day2", Categories: []CategoryCount{{Category: "museum", Count: 1}}},
	}
	pools := map[string][]POICandidate{
		"cafe":   {{ID: "c1"}, {ID: "c2"}},
		"museum": {{ID: "m1"}, {ID: "m2"}},
	}

	first := AllocateItinerary(plan, pools)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, AllocateItinerary(plan, pools))
	}
}

func TestAllocateItinerary_UnderfilledDayIsNotAnError(t *testing.T) {
	plan := []DayDemand{
		{Day: "day1", Categories: []CategoryCount{{Category: "museum", Count: 5}}},
	}
	pools := map[string][]POICandidate{
		"museum": {{ID: "m1"}, {ID: "m2"}},
	}

	result := AllocateItinerary(plan, pools)

	require.Len(t, result["day1"], 2)
	assert.Equal(t, "m1", result["day1"][0].ID)
	assert.Equal(t, "m2", result["day1"][1].ID)
}

func TestAllocateItinerary_EmptyPlanGivesEmptyResult(t *testing.T) {
	result := AllocateItinerary(nil, map[string][]POICandidate{"museum": {{ID: "m1"}}})
	assert.Empty(t, result)
}
