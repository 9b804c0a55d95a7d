package service

import (
	"path/filepath"
	"testing"
	"time"

	"team-pulse/internal/model"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&model.Org{}, &model.Team{}, &model.Member{},
		&model.CheckIn{}, &model.RiskSnapshot{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedTeam(t *testing.T, db *gorm.DB, retentionDays int) (*model.Org, *model.Team, *model.Member) {
	t.Helper()
	org := &model.Org{Name: "org-" + t.Name(), RetentionDays: retentionDays}
	if err := db.Create(org).Error; err != nil {
		t.Fatalf("create org: %v", err)
	}
	team := &model.Team{OrgID: org.ID, Name: "team"}
	if err := db.Create(team).Error; err != nil {
		t.Fatalf("create team: %v", err)
	}
	member := &model.Member{
		TeamID:        team.ID,
		AnonTokenHash: HashToken("token-" + t.Name()),
		Active:        true,
		Role:          "employee",
	}
	if err := db.Create(member).Error; err != nil {
		t.Fatalf("create member: %v", err)
	}
	return org, team, member
}

// addCheckins inserts count check-ins dated daysAgo calendar days back.
func addCheckins(t *testing.T, db *gorm.DB, memberID, teamID, daysAgo, count, mood, stress int) {
	t.Helper()
	day := time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02")
	for i := 0; i < count; i++ {
		c := model.CheckIn{
			MemberID:    memberID,
			TeamID:      teamID,
			CheckinDate: day,
			Mood:        mood,
			Stress:      stress,
		}
		if err := db.Create(&c).Error; err != nil {
			t.Fatalf("create checkin: %v", err)
		}
	}
}
