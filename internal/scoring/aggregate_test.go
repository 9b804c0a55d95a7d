package scoring

import "testing"

func TestAggregateDaily_GroupsAndOrders(t *testing.T) {
	points := []CheckinPoint{
		{Day: "2026-08-12", Mood: 4, Stress: 2},
		{Day: "2026-08-10", Mood: 3, Stress: 3},
		{Day: "2026-08-12", Mood: 2, Stress: 5},
		{Day: "2026-08-10", Mood: 5, Stress: 1},
		{Day: "2026-08-10", Mood: 4, Stress: 2},
	}

	days := AggregateDaily(points)
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Day != "2026-08-10" || days[1].Day != "2026-08-12" {
		t.Fatalf("days out of order: %s, %s", days[0].Day, days[1].Day)
	}
	if days[0].Count != 3 || days[1].Count != 2 {
		t.Fatalf("counts wrong: %d, %d", days[0].Count, days[1].Count)
	}
	if days[0].MoodAvg != 4.0 || days[0].StressAvg != 2.0 {
		t.Fatalf("day 1 averages wrong: %v / %v", days[0].MoodAvg, days[0].StressAvg)
	}
	if days[1].MoodAvg != 3.0 || days[1].StressAvg != 3.5 {
		t.Fatalf("day 2 averages wrong: %v / %v", days[1].MoodAvg, days[1].StressAvg)
	}
}

func TestAggregateDaily_AbsentDaysStayAbsent(t *testing.T) {
	points := []CheckinPoint{
		{Day: "2026-08-01", Mood: 3, Stress: 3},
		{Day: "2026-08-05", Mood: 3, Stress: 3},
	}
	days := AggregateDaily(points)
	if len(days) != 2 {
		t.Fatalf("expected no zero-filling, got %d days", len(days))
	}
}

func TestAggregateDaily_Empty(t *testing.T) {
	if got := AggregateDaily(nil); got != nil {
		t.Fatalf("expected nil for empty input, got %v", got)
	}
}
