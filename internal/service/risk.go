package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"team-pulse/internal/logger"
	"team-pulse/internal/model"
	"team-pulse/internal/scoring"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const dateLayout = "2006-01-02"

// RiskService owns the write path of the risk engine: read one team's
// check-in window, score it, persist exactly one snapshot for today.
type RiskService struct {
	db     *gorm.DB
	params scoring.Params
}

func NewRiskService(db *gorm.DB, params scoring.Params) *RiskService {
	return &RiskService{db: db, params: params}
}

func (s *RiskService) fetchWindow(ctx context.Context, teamID int, since string) ([]scoring.CheckinPoint, error) {
	var rows []model.CheckIn
	err := s.db.WithContext(ctx).
		Where("team_id = ? AND checkin_date >= ?", teamID, since).
		Order("checkin_date").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query checkins: %w", err)
	}
	points := make([]scoring.CheckinPoint, len(rows))
	for i, r := range rows {
		points[i] = scoring.CheckinPoint{Day: r.CheckinDate, Mood: r.Mood, Stress: r.Stress}
	}
	return points, nil
}

// ComputeAndStoreSnapshot scores the trailing window ending today and
// upserts the (team, today) snapshot in a single conditional statement,
// so two near-simultaneous submissions cannot duplicate the row and the
// later writer simply wins. A team with no check-ins in the window still
// gets its zero-valued low snapshot written.
func (s *RiskService) ComputeAndStoreSnapshot(ctx context.Context, teamID int) (*model.RiskSnapshot, error) {
	now := time.Now()
	today := now.Format(dateLayout)
	since := now.AddDate(0, 0, -s.params.WindowDays).Format(dateLayout)

	points, err := s.fetchWindow(ctx, teamID, since)
	if err != nil {
		return nil, err
	}

	res := scoring.Score(points, s.params)
	snap := model.RiskSnapshot{
		TeamID:       teamID,
		Day:          today,
		RiskLevel:    string(res.Level),
		AvgMood:      res.AvgMood,
		AvgStress:    res.AvgStress,
		CheckinCount: res.CheckinCount,
	}
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}, {Name: "day"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"risk_level", "avg_mood", "avg_stress", "checkin_count",
		}),
	}).Create(&snap).Error
	if err != nil {
		return nil, fmt.Errorf("upsert snapshot: %w", err)
	}

	logger.Debug("snapshot stored",
		"team_id", teamID, "day", today, "level", snap.RiskLevel, "count", snap.CheckinCount)
	return &snap, nil
}

// LatestSnapshot returns the team's most recent snapshot, or nil when the
// team has never been scored.
func (s *RiskService) LatestSnapshot(ctx context.Context, teamID int) (*model.RiskSnapshot, error) {
	var snap model.RiskSnapshot
	err := s.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("day DESC").
		First(&snap).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}
	return &snap, nil
}

// RescoreAll runs the daily batch over every team. Per-team failures are
// logged and counted, not fatal: one broken team must not starve the rest.
func (s *RiskService) RescoreAll(ctx context.Context) (scored, failed int, err error) {
	var teamIDs []int
	if err := s.db.WithContext(ctx).Model(&model.Team{}).Pluck("id", &teamIDs).Error; err != nil {
		return 0, 0, fmt.Errorf("list teams: %w", err)
	}
	for _, id := range teamIDs {
		if _, err := s.ComputeAndStoreSnapshot(ctx, id); err != nil {
			logger.Error("rescore failed", "team_id", id, "err", err)
			failed++
			continue
		}
		scored++
	}
	return scored, failed, nil
}
