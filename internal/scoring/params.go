// Package scoring turns a team's recent check-in history into a daily
// risk classification. Everything here is a pure function of the inputs:
// no storage, no clocks, no globals, so the arithmetic can be pinned down
// in tests independent of the database.
package scoring

// Params holds every tunable of the engine. The classifier thresholds are
// empirical product constants, not validated clinical ones; they live here
// rather than as package constants so callers and tests can vary them.
type Params struct {
	WindowDays     int     // lookback window for a scoring run
	EWMASpan       int     // span for the stress EWMA, alpha = 2/(span+1)
	RecentDays     int     // length of the "recent" trend window
	MinRespondents int     // anonymity floor for exposing aggregates
	ElevatedMargin float64 // smoothed stress above mean by this much => elevated
	RisingDelta    float64 // recent-vs-prior stress delta above this => rising
	SpikeZ         float64 // z-score above this alone classifies high
	FloorCount     int     // recent check-ins below this => participation drop
	DropRatio      float64 // recent below this fraction of prior => drop
	ModerateAt     int     // signal count for moderate
	HighAt         int     // signal count for high
}

func DefaultParams() Params {
	return Params{
		WindowDays:     30,
		EWMASpan:       30,
		RecentDays:     7,
		MinRespondents: 5,
		ElevatedMargin: 0.5,
		RisingDelta:    0.3,
		SpikeZ:         1.7,
		FloorCount:     5,
		DropRatio:      0.6,
		ModerateAt:     2,
		HighAt:         3,
	}
}
