package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"team-pulse/internal/logger"
	"team-pulse/internal/model"

	"gorm.io/gorm"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrScoreOutOfRange = errors.New("scores must be between 1 and 5")
)

// CheckinService handles anonymous submissions. A participant is only
// ever identified by the sha256 of their personal token; the plaintext
// token is never stored.
type CheckinService struct {
	db   *gorm.DB
	risk *RiskService
}

func NewCheckinService(db *gorm.DB, risk *RiskService) *CheckinService {
	return &CheckinService{db: db, risk: risk}
}

func HashToken(token string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(token)))
	return hex.EncodeToString(sum[:])
}

// ResolveToken returns the active member behind a personal token.
func (s *CheckinService) ResolveToken(ctx context.Context, token string) (*model.Member, *model.Team, error) {
	var m model.Member
	err := s.db.WithContext(ctx).
		Where("anon_token_hash = ? AND active = ?", HashToken(token), true).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrInvalidToken
	}
	if err != nil {
		return nil, nil, fmt.Errorf("query member: %w", err)
	}

	var t model.Team
	if err := s.db.WithContext(ctx).First(&t, m.TeamID).Error; err != nil {
		return nil, nil, fmt.Errorf("query team: %w", err)
	}
	return &m, &t, nil
}

// Submit records one check-in for today and synchronously rescores the
// member's team, so the snapshot is current the moment the write returns.
func (s *CheckinService) Submit(ctx context.Context, token string, req model.CheckinRequest) (*model.Team, error) {
	if req.Mood < 1 || req.Mood > 5 || req.Stress < 1 || req.Stress > 5 {
		return nil, ErrScoreOutOfRange
	}

	m, t, err := s.ResolveToken(ctx, token)
	if err != nil {
		return nil, err
	}

	checkin := model.CheckIn{
		MemberID:    m.ID,
		TeamID:      m.TeamID,
		CheckinDate: time.Now().Format(dateLayout),
		Mood:        req.Mood,
		Stress:      req.Stress,
		Comment:     req.Comment,
	}
	if err := s.db.WithContext(ctx).Create(&checkin).Error; err != nil {
		return nil, fmt.Errorf("insert checkin: %w", err)
	}

	if _, err := s.risk.ComputeAndStoreSnapshot(ctx, m.TeamID); err != nil {
		return nil, err
	}

	logger.Info("checkin.submitted", "team_id", m.TeamID, "day", checkin.CheckinDate)
	return t, nil
}
