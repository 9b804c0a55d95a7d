package scoring

type RiskLevel string

const (
	RiskLow      RiskLevel = "low"
	RiskModerate RiskLevel = "moderate"
	RiskHigh     RiskLevel = "high"
)

// Signals are the three independent boolean indicators the classifier
// combines. The z-spike check sits outside: it can force a high result on
// its own regardless of how many signals fire.
type Signals struct {
	Elevated          bool // smoothed stress well above the window mean
	Rising            bool // short-term stress trend pointing up
	ParticipationDrop bool // people stopped checking in
}

func (s Signals) Count() int {
	n := 0
	if s.Elevated {
		n++
	}
	if s.Rising {
		n++
	}
	if s.ParticipationDrop {
		n++
	}
	return n
}

// Classify maps window statistics to a risk level. Priority order: the
// z-spike or a full house of signals means high, two signals moderate,
// anything else low.
func Classify(st WindowStats, p Params) (RiskLevel, Signals) {
	sig := Signals{
		Elevated: st.EWMA > st.Mean+p.ElevatedMargin,
		Rising:   st.TrendDelta > p.RisingDelta,
		ParticipationDrop: st.RecentCount < p.FloorCount ||
			(st.PriorCount > 0 && float64(st.RecentCount) < p.DropRatio*float64(st.PriorCount)),
	}

	switch {
	case st.ZScore > p.SpikeZ || sig.Count() >= p.HighAt:
		return RiskHigh, sig
	case sig.Count() >= p.ModerateAt:
		return RiskModerate, sig
	default:
		return RiskLow, sig
	}
}

// Result is one scoring run's outcome. AvgMood/AvgStress are the trailing
// recent-window averages of the daily averages, and CheckinCount the
// recent-window sum, matching what the snapshot row stores.
type Result struct {
	Level        RiskLevel
	AvgMood      float64
	AvgStress    float64
	CheckinCount int
	Stats        WindowStats
	Signals      Signals
}

// Score runs the whole pipeline over raw check-ins. With no check-ins in
// the window it returns the zero-valued low result without evaluating any
// signal: that is a data-absence default, not a computed verdict, and
// consumers can tell the two apart by CheckinCount == 0.
func Score(points []CheckinPoint, p Params) Result {
	days := AggregateDaily(points)
	if len(days) == 0 {
		return Result{Level: RiskLow}
	}

	st := Analyze(days, p)
	level, sig := Classify(st, p)
	return Result{
		Level:        level,
		AvgMood:      st.RecentMoodAvg,
		AvgStress:    st.RecentStressAvg,
		CheckinCount: st.RecentCount,
		Stats:        st,
		Signals:      sig,
	}
}
