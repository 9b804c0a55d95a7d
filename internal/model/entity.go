package model

import "time"

// Dates are stored as plain `2006-01-02` strings in DATE columns so that
// lexicographic order equals chronological order and no timezone math
// leaks into day bucketing.

type Org struct {
	ID             int       `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"uniqueIndex" json:"name"`
	AllowedDomains string    `json:"allowed_domains"` // comma separated
	RetentionDays  int       `gorm:"default:180" json:"retention_days"`
	CreatedAt      time.Time `json:"created_at"`
}

type Team struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	OrgID     int       `gorm:"index" json:"org_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type Member struct {
	ID            int       `gorm:"primaryKey" json:"id"`
	TeamID        int       `gorm:"index" json:"team_id"`
	AnonTokenHash string    `gorm:"uniqueIndex;size:64" json:"-"`
	Active        bool      `gorm:"default:true" json:"active"`
	Email         string    `json:"email"`
	Role          string    `gorm:"default:employee" json:"role"` // employee | team_lead | org_admin
	Password      string    `json:"-"`                            // bcrypt hash, empty for pure participants
	Name          string    `json:"name"`
	CreatedAt     time.Time `json:"created_at"`
}

// CheckIn is immutable once written; the scoring side only ever reads it.
type CheckIn struct {
	ID          int       `gorm:"primaryKey" json:"id"`
	MemberID    int       `gorm:"index" json:"member_id"`
	TeamID      int       `gorm:"index" json:"team_id"`
	CheckinDate string    `gorm:"type:date;index" json:"checkin_date"`
	Mood        int       `json:"mood"`
	Stress      int       `json:"stress"`
	Comment     string    `json:"comment"`
	CreatedAt   time.Time `json:"created_at"`
}

// RiskSnapshot holds one risk classification per team per day. The unique
// index makes the per-day recompute an overwrite rather than a duplicate.
type RiskSnapshot struct {
	ID           int     `gorm:"primaryKey" json:"id"`
	TeamID       int     `gorm:"uniqueIndex:uk_team_day" json:"team_id"`
	Day          string  `gorm:"type:date;uniqueIndex:uk_team_day" json:"day"`
	RiskLevel    string  `json:"risk_level"`
	AvgMood      float64 `json:"avg_mood"`
	AvgStress    float64 `json:"avg_stress"`
	CheckinCount int     `json:"checkin_count"`
}

func (Org) TableName() string          { return "orgs" }
func (Team) TableName() string         { return "teams" }
func (Member) TableName() string       { return "members" }
func (CheckIn) TableName() string      { return "checkins" }
func (RiskSnapshot) TableName() string { return "risk_snapshots" }
