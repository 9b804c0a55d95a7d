package service

import (
	"context"
	"math"
	"testing"

	"team-pulse/internal/scoring"
)

func TestTeamMetrics_AnonymityGate(t *testing.T) {
	db := openTestDB(t)
	_, team, member := seedTeam(t, db, 180)
	params := scoring.DefaultParams()
	risk := NewRiskService(db, params)
	svc := NewAnalyticsService(db, risk, params)
	ctx := context.Background()

	// Four respondents: one short of the floor. Nothing but the count
	// may come back, however the data looks.
	addCheckins(t, db, member.ID, team.ID, 1, 4, 2, 5)

	view, err := svc.TeamMetrics(ctx, team.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if view.Available {
		t.Fatalf("4 respondents must not be available")
	}
	if view.RespondentCount != 4 {
		t.Fatalf("respondent count: got %d, want 4", view.RespondentCount)
	}
	if view.AvgMood != nil || view.AvgStress != nil || view.RiskLevel != nil {
		t.Fatalf("gate leaked aggregates: %+v", view)
	}

	// The fifth check-in crosses the threshold.
	addCheckins(t, db, member.ID, team.ID, 0, 1, 2, 5)
	view, err = svc.TeamMetrics(ctx, team.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if !view.Available || view.RespondentCount != 5 {
		t.Fatalf("5 respondents must be available: %+v", view)
	}
	if view.AvgMood == nil || math.Abs(*view.AvgMood-2) > 1e-9 {
		t.Fatalf("avg mood: got %v, want 2", view.AvgMood)
	}
	if view.AvgStress == nil || math.Abs(*view.AvgStress-5) > 1e-9 {
		t.Fatalf("avg stress: got %v, want 5", view.AvgStress)
	}
}

func TestTeamMetrics_RiskLevelDistinguishesUnscored(t *testing.T) {
	db := openTestDB(t)
	_, team, member := seedTeam(t, db, 180)
	params := scoring.DefaultParams()
	risk := NewRiskService(db, params)
	svc := NewAnalyticsService(db, risk, params)
	ctx := context.Background()

	addCheckins(t, db, member.ID, team.ID, 0, 6, 3, 3)

	view, err := svc.TeamMetrics(ctx, team.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if view.RiskLevel != nil {
		t.Fatalf("never-scored team must report no risk level, got %q", *view.RiskLevel)
	}

	if _, err := risk.ComputeAndStoreSnapshot(ctx, team.ID); err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	view, err = svc.TeamMetrics(ctx, team.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if view.RiskLevel == nil || *view.RiskLevel != "low" {
		t.Fatalf("expected low after scoring, got %v", view.RiskLevel)
	}
}

func TestTeamMetrics_ThresholdIsTunable(t *testing.T) {
	db := openTestDB(t)
	_, team, member := seedTeam(t, db, 180)
	params := scoring.DefaultParams()
	params.MinRespondents = 2
	risk := NewRiskService(db, params)
	svc := NewAnalyticsService(db, risk, params)

	addCheckins(t, db, member.ID, team.ID, 0, 2, 4, 2)

	view, err := svc.TeamMetrics(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("metrics: %v", err)
	}
	if !view.Available {
		t.Fatalf("lowered floor should make 2 respondents available")
	}
}

func TestDashboardSeries_GapsAreNull(t *testing.T) {
	db := openTestDB(t)
	_, team, member := seedTeam(t, db, 180)
	params := scoring.DefaultParams()
	svc := NewAnalyticsService(db, NewRiskService(db, params), params)

	addCheckins(t, db, member.ID, team.ID, 0, 2, 3, 4) // today
	addCheckins(t, db, member.ID, team.ID, 2, 1, 5, 1) // two days back

	series, err := svc.DashboardSeries(context.Background(), team.ID)
	if err != nil {
		t.Fatalf("series: %v", err)
	}
	if len(series.Days) != 7 || len(series.Mood) != 7 || len(series.Stress) != 7 {
		t.Fatalf("expected 7 slots, got %d/%d/%d", len(series.Days), len(series.Mood), len(series.Stress))
	}

	last := len(series.Days) - 1
	if series.Mood[last] == nil || *series.Mood[last] != 60 {
		t.Fatalf("today's mood percent: got %v, want 60", series.Mood[last])
	}
	if series.Stress[last] == nil || *series.Stress[last] != 80 {
		t.Fatalf("today's stress percent: got %v, want 80", series.Stress[last])
	}
	if series.Mood[last-2] == nil || *series.Mood[last-2] != 100 {
		t.Fatalf("mood percent two days back: got %v, want 100", series.Mood[last-2])
	}
	if series.Mood[last-1] != nil {
		t.Fatalf("day without checkins must be null, got %v", *series.Mood[last-1])
	}
	if series.Mood[0] != nil {
		t.Fatalf("empty leading day must be null")
	}
}
