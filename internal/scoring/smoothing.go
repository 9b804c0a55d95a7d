package scoring

import "math"

// EWMA returns the exponentially weighted moving average of values,
// seeded at the first value with alpha = 2/(span+1). For a single value
// the result is that value exactly.
func EWMA(values []float64, span int) float64 {
	if len(values) == 0 {
		return 0
	}
	alpha := 2.0 / float64(span+1)
	result := values[0]
	for _, v := range values[1:] {
		result = alpha*v + (1-alpha)*result
	}
	return result
}

// WindowStats carries everything the classifier needs about one window of
// daily aggregates.
type WindowStats struct {
	EWMA   float64 // current smoothed stress
	Mean   float64 // population mean of daily stress
	StdDev float64 // population standard deviation (divisor n)
	ZScore float64 // (EWMA - Mean) / StdDev, 0 when StdDev is 0

	RecentStressAvg float64
	PriorStressAvg  float64
	TrendDelta      float64 // RecentStressAvg - PriorStressAvg
	RecentMoodAvg   float64

	RecentCount int // check-ins in the recent window
	PriorCount  int // check-ins in the prior window
}

// Analyze computes smoothing, dispersion and trend statistics over the
// ordered daily aggregates. The prior window is the RecentDays-long slice
// immediately before the recent one when the history is long enough;
// otherwise whatever older points remain; and when nothing precedes the
// recent window at all, the recent window itself, so the trend delta
// degenerates to zero instead of inventing a trend.
func Analyze(days []DailyAggregate, p Params) WindowStats {
	n := len(days)
	if n == 0 {
		return WindowStats{}
	}

	stress := make([]float64, n)
	for i, d := range days {
		stress[i] = d.StressAvg
	}

	var st WindowStats
	st.EWMA = EWMA(stress, p.EWMASpan)

	var sum float64
	for _, s := range stress {
		sum += s
	}
	st.Mean = sum / float64(n)
	var varSum float64
	for _, s := range stress {
		d := s - st.Mean
		varSum += d * d
	}
	st.StdDev = math.Sqrt(varSum / float64(n))
	if st.StdDev > 0 {
		st.ZScore = (st.EWMA - st.Mean) / st.StdDev
	}

	recentFrom := n - p.RecentDays
	if recentFrom < 0 {
		recentFrom = 0
	}
	recent := days[recentFrom:]
	var prior []DailyAggregate
	switch {
	case n >= 2*p.RecentDays:
		prior = days[n-2*p.RecentDays : recentFrom]
	case recentFrom > 0:
		prior = days[:recentFrom]
	default:
		prior = recent
	}

	var recStress, recMood float64
	for _, d := range recent {
		recStress += d.StressAvg
		recMood += d.MoodAvg
		st.RecentCount += d.Count
	}
	st.RecentStressAvg = recStress / float64(len(recent))
	st.RecentMoodAvg = recMood / float64(len(recent))

	var priStress float64
	for _, d := range prior {
		priStress += d.StressAvg
	}
	st.PriorStressAvg = priStress / float64(len(prior))
	if recentFrom > 0 {
		for _, d := range prior {
			st.PriorCount += d.Count
		}
	}
	st.TrendDelta = st.RecentStressAvg - st.PriorStressAvg

	return st
}
