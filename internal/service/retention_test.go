package service

import (
	"context"
	"testing"

	"team-pulse/internal/model"
)

func TestPurgeExpired(t *testing.T) {
	db := openTestDB(t)
	_, team, member := seedTeam(t, db, 30)
	svc := NewRetentionService(db)

	addCheckins(t, db, member.ID, team.ID, 40, 3, 3, 3) // past the horizon
	addCheckins(t, db, member.ID, team.ID, 5, 2, 3, 3)  // recent

	removed, err := svc.PurgeExpired(context.Background())
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 3 {
		t.Fatalf("removed: got %d, want 3", removed)
	}

	var remaining int64
	if err := db.Model(&model.CheckIn{}).Where("team_id = ?", team.ID).Count(&remaining).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if remaining != 2 {
		t.Fatalf("remaining: got %d, want 2", remaining)
	}
}

func TestPurgeExpired_PerOrgHorizon(t *testing.T) {
	db := openTestDB(t)
	_, shortTeam, shortMember := seedTeam(t, db, 30)

	longOrg := &model.Org{Name: "long-retention", RetentionDays: 180}
	if err := db.Create(longOrg).Error; err != nil {
		t.Fatalf("create org: %v", err)
	}
	longTeam := &model.Team{OrgID: longOrg.ID, Name: "long"}
	if err := db.Create(longTeam).Error; err != nil {
		t.Fatalf("create team: %v", err)
	}

	// Same age, different orgs: only the short-retention org purges.
	addCheckins(t, db, shortMember.ID, shortTeam.ID, 60, 1, 3, 3)
	addCheckins(t, db, shortMember.ID, longTeam.ID, 60, 1, 3, 3)

	removed, err := NewRetentionService(db).PurgeExpired(context.Background())
	if err != nil {
		t.Fatalf("purge: %v", err)
	}
	if removed != 1 {
		t.Fatalf("removed: got %d, want 1", removed)
	}

	var kept int64
	if err := db.Model(&model.CheckIn{}).Where("team_id = ?", longTeam.ID).Count(&kept).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if kept != 1 {
		t.Fatalf("long-retention org lost its checkin")
	}
}
