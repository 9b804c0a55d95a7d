package scoring

import "sort"

// CheckinPoint is one check-in as the engine sees it: the calendar day it
// was filed for (a `2006-01-02` string, which sorts chronologically) and
// the two scores. Comments and identities never reach this package.
type CheckinPoint struct {
	Day    string
	Mood   int
	Stress int
}

// DailyAggregate is the per-day reduction of a team's check-ins.
type DailyAggregate struct {
	Day       string
	MoodAvg   float64
	StressAvg float64
	Count     int
}

// AggregateDaily buckets check-ins by day and averages each bucket,
// returning the buckets oldest first. Days with no check-ins are simply
// absent; callers must not assume a contiguous range.
func AggregateDaily(points []CheckinPoint) []DailyAggregate {
	if len(points) == 0 {
		return nil
	}

	type bucket struct {
		mood, stress, count int
	}
	byDay := make(map[string]*bucket)
	for _, p := range points {
		b := byDay[p.Day]
		if b == nil {
			b = &bucket{}
			byDay[p.Day] = b
		}
		b.mood += p.Mood
		b.stress += p.Stress
		b.count++
	}

	days := make([]string, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Strings(days)

	out := make([]DailyAggregate, 0, len(days))
	for _, day := range days {
		b := byDay[day]
		out = append(out, DailyAggregate{
			Day:       day,
			MoodAvg:   float64(b.mood) / float64(b.count),
			StressAvg: float64(b.stress) / float64(b.count),
			Count:     b.count,
		})
	}
	return out
}
