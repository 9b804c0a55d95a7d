package main

import (
	"flag"
	"log/slog"
	"os"

	"team-pulse/internal/config"
	"team-pulse/internal/handler"
	"team-pulse/internal/logger"
	"team-pulse/internal/middleware"
	"team-pulse/internal/model"
	"team-pulse/internal/scoring"
	"team-pulse/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	configFile := flag.String("config", "", "config file path (e.g. etc/config-dev.yaml)")
	flag.Parse()

	cfg := config.Load(*configFile)
	logger.Init(cfg.Log)
	middleware.SetSecret(cfg.Auth.JWTSecret)

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

	params := scoringParams(cfg.Scoring)

	riskSvc := service.NewRiskService(db, params)
	analyticsSvc := service.NewAnalyticsService(db, riskSvc, params)
	checkinSvc := service.NewCheckinService(db, riskSvc)
	authSvc := service.NewAuthService(db)
	retentionSvc := service.NewRetentionService(db)

	authH := handler.NewAuthHandler(authSvc)
	checkinH := handler.NewCheckinHandler(checkinSvc)
	dashH := handler.NewDashboardHandler(db, analyticsSvc)
	jobsH := handler.NewJobsHandler(riskSvc, retentionSvc, cfg.Jobs.CronSecret)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })
	r.POST("/api/login", authH.Login)
	r.GET("/checkin/:token", checkinH.Validate)
	r.POST("/checkin/:token", checkinH.Submit)

	api := r.Group("/api", middleware.JWTAuth())
	api.GET("/teams/:id/metrics", dashH.Metrics)
	api.GET("/teams/:id/dashboard", dashH.Dashboard)

	r.POST("/jobs/daily-risk", jobsH.DailyRisk)
	r.POST("/jobs/retention", jobsH.Retention)

	slog.Info("server starting", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		slog.Error("server failed", "err", err)
	}
}

func scoringParams(sc config.ScoringConfig) scoring.Params {
	p := scoring.DefaultParams()
	if sc.WindowDays > 0 {
		p.WindowDays = sc.WindowDays
	}
	if sc.EWMASpan > 0 {
		p.EWMASpan = sc.EWMASpan
	}
	if sc.RecentDays > 0 {
		p.RecentDays = sc.RecentDays
	}
	if sc.MinRespondents > 0 {
		p.MinRespondents = sc.MinRespondents
	}
	return p
}
