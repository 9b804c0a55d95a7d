package service

import (
	"context"
	"fmt"
	"time"

	"team-pulse/internal/logger"
	"team-pulse/internal/model"

	"gorm.io/gorm"
)

// RetentionService purges check-ins past each org's retention horizon.
// Deletion is the only mutation check-ins ever see after insert.
type RetentionService struct{ db *gorm.DB }

func NewRetentionService(db *gorm.DB) *RetentionService { return &RetentionService{db: db} }

// PurgeExpired deletes check-ins older than each org's retention_days and
// returns the total rows removed.
func (s *RetentionService) PurgeExpired(ctx context.Context) (int64, error) {
	var orgs []model.Org
	if err := s.db.WithContext(ctx).Find(&orgs).Error; err != nil {
		return 0, fmt.Errorf("list orgs: %w", err)
	}

	var removed int64
	today := time.Now()
	for _, org := range orgs {
		days := org.RetentionDays
		if days <= 0 {
			days = 180
		}
		cutoff := today.AddDate(0, 0, -days).Format(dateLayout)

		teams := s.db.WithContext(ctx).Model(&model.Team{}).
			Select("id").Where("org_id = ?", org.ID)
		res := s.db.WithContext(ctx).
			Where("team_id IN (?) AND checkin_date < ?", teams, cutoff).
			Delete(&model.CheckIn{})
		if res.Error != nil {
			return removed, fmt.Errorf("purge org %d: %w", org.ID, res.Error)
		}
		removed += res.RowsAffected
	}

	logger.Info("retention.purged", "checkins_removed", removed)
	return removed, nil
}
