package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"team-pulse/internal/config"
	"team-pulse/internal/logger"
	"team-pulse/internal/model"
	"team-pulse/internal/scoring"
	"team-pulse/internal/service"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Seeds an org with one team and a batch of members. Each member gets a
// fresh personal token, printed exactly once here; only its hash is
// stored. With -demo it also backfills a month of check-ins and computes
// today's snapshot so a dashboard has something to show.
func main() {
	configFile := flag.String("config", "", "config file path")
	orgName := flag.String("org", "Acme Inc", "organization name")
	teamName := flag.String("team", "Platform", "team name")
	memberCount := flag.Int("members", 8, "members to create")
	adminEmail := flag.String("admin", "admin@example.com", "org admin email")
	adminPass := flag.String("password", "changeme", "org admin password")
	demo := flag.Bool("demo", false, "backfill 30 days of demo check-ins")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)

	db, err := cfg.OpenGormDB()
	if err != nil {
		slog.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	if err := db.AutoMigrate(
		&model.Org{}, &model.Team{}, &model.Member{},
		&model.CheckIn{}, &model.RiskSnapshot{},
	); err != nil {
		slog.Error("migrate failed", "err", err)
		os.Exit(1)
	}

	org := model.Org{Name: *orgName, RetentionDays: 180}
	if err := db.Create(&org).Error; err != nil {
		slog.Error("create org failed", "err", err)
		os.Exit(1)
	}
	team := model.Team{OrgID: org.ID, Name: *teamName}
	if err := db.Create(&team).Error; err != nil {
		slog.Error("create team failed", "err", err)
		os.Exit(1)
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(*adminPass), bcrypt.DefaultCost)
	admin := model.Member{
		TeamID:        team.ID,
		AnonTokenHash: service.HashToken(uuid.NewString()),
		Active:        true,
		Email:         *adminEmail,
		Role:          "org_admin",
		Password:      string(hash),
		Name:          "Admin",
	}
	if err := db.Create(&admin).Error; err != nil {
		slog.Error("create admin failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("org=%d team=%d admin=%s\n", org.ID, team.ID, *adminEmail)

	var members []model.Member
	for i := 0; i < *memberCount; i++ {
		token := uuid.NewString()
		m := model.Member{
			TeamID:        team.ID,
			AnonTokenHash: service.HashToken(token),
			Active:        true,
			Role:          "employee",
			Name:          fmt.Sprintf("Member %d", i+1),
		}
		if err := db.Create(&m).Error; err != nil {
			slog.Error("create member failed", "err", err)
			os.Exit(1)
		}
		members = append(members, m)
		fmt.Printf("member %d token: %s\n", m.ID, token)
	}

	if !*demo {
		return
	}

	now := time.Now()
	for back := 29; back >= 0; back-- {
		day := now.AddDate(0, 0, -back).Format("2006-01-02")
		for _, m := range members {
			if rand.Intn(10) < 3 { // not everyone checks in every day
				continue
			}
			c := model.CheckIn{
				MemberID:    m.ID,
				TeamID:      team.ID,
				CheckinDate: day,
				Mood:        2 + rand.Intn(4),
				Stress:      1 + rand.Intn(4),
			}
			if err := db.Create(&c).Error; err != nil {
				slog.Error("create checkin failed", "err", err)
				os.Exit(1)
			}
		}
	}

	riskSvc := service.NewRiskService(db, scoring.DefaultParams())
	snap, err := riskSvc.ComputeAndStoreSnapshot(context.Background(), team.ID)
	if err != nil {
		slog.Error("snapshot failed", "err", err)
		os.Exit(1)
	}
	fmt.Printf("demo snapshot: level=%s count=%d\n", snap.RiskLevel, snap.CheckinCount)
}
