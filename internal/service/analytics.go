package service

import (
	"context"
	"database/sql"
	"fmt"
	"math"
	"time"

	"team-pulse/internal/model"
	"team-pulse/internal/scoring"

	"gorm.io/gorm"
)

// AnalyticsService owns the read path: anonymity-gated team aggregates
// and the dashboard chart series. It never writes anything.
type AnalyticsService struct {
	db     *gorm.DB
	risk   *RiskService
	params scoring.Params
}

func NewAnalyticsService(db *gorm.DB, risk *RiskService, params scoring.Params) *AnalyticsService {
	return &AnalyticsService{db: db, risk: risk, params: params}
}

// TeamMetrics computes the trailing-window respondent count and, only
// above the anonymity floor, the mood/stress averages plus the latest
// snapshot's risk level. Below the floor nothing but the count leaves
// this function: with too few respondents an aggregate can deanonymize
// individuals, so withholding it is a privacy guarantee, not a UX choice.
func (s *AnalyticsService) TeamMetrics(ctx context.Context, teamID int) (model.TeamMetricsView, error) {
	cutoff := time.Now().AddDate(0, 0, -s.params.WindowDays).Format(dateLayout)

	var row struct {
		Total     int
		AvgMood   sql.NullFloat64
		AvgStress sql.NullFloat64
	}
	err := s.db.WithContext(ctx).Model(&model.CheckIn{}).
		Select("COUNT(id) AS total, AVG(mood) AS avg_mood, AVG(stress) AS avg_stress").
		Where("team_id = ? AND checkin_date >= ?", teamID, cutoff).
		Scan(&row).Error
	if err != nil {
		return model.TeamMetricsView{}, fmt.Errorf("aggregate checkins: %w", err)
	}

	if row.Total < s.params.MinRespondents {
		return model.TeamMetricsView{Available: false, RespondentCount: row.Total}, nil
	}

	view := model.TeamMetricsView{Available: true, RespondentCount: row.Total}
	if row.AvgMood.Valid {
		view.AvgMood = &row.AvgMood.Float64
	}
	if row.AvgStress.Valid {
		view.AvgStress = &row.AvgStress.Float64
	}

	snap, err := s.risk.LatestSnapshot(ctx, teamID)
	if err != nil {
		return model.TeamMetricsView{}, err
	}
	if snap != nil {
		view.RiskLevel = &snap.RiskLevel
	}
	return view, nil
}

// DashboardSeries returns per-day mood/stress percentages for the last
// week of calendar days, with nulls where nobody checked in.
func (s *AnalyticsService) DashboardSeries(ctx context.Context, teamID int) (model.DashboardSeries, error) {
	now := time.Now()
	start := now.AddDate(0, 0, -(s.params.RecentDays - 1))
	startDay := start.Format(dateLayout)

	var rows []struct {
		CheckinDate string
		AvgMood     float64
		AvgStress   float64
	}
	err := s.db.WithContext(ctx).Model(&model.CheckIn{}).
		Select("checkin_date, AVG(mood) AS avg_mood, AVG(stress) AS avg_stress").
		Where("team_id = ? AND checkin_date >= ?", teamID, startDay).
		Group("checkin_date").
		Scan(&rows).Error
	if err != nil {
		return model.DashboardSeries{}, fmt.Errorf("aggregate series: %w", err)
	}

	type pair struct{ mood, stress float64 }
	daily := make(map[string]pair, len(rows))
	for _, r := range rows {
		daily[r.CheckinDate] = pair{r.AvgMood, r.AvgStress}
	}

	var series model.DashboardSeries
	for i := 0; i < s.params.RecentDays; i++ {
		day := start.AddDate(0, 0, i).Format(dateLayout)
		series.Days = append(series.Days, day)
		if p, ok := daily[day]; ok {
			series.Mood = append(series.Mood, percent(p.mood))
			series.Stress = append(series.Stress, percent(p.stress))
		} else {
			series.Mood = append(series.Mood, nil)
			series.Stress = append(series.Stress, nil)
		}
	}
	return series, nil
}

// percent maps a 1-5 score average onto a 0-100 scale for the chart.
func percent(v float64) *int {
	n := int(math.Round(v / 5 * 100))
	return &n
}
