package model

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type User struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	TeamID int    `json:"team_id"`
}

type CheckinRequest struct {
	Mood    int    `json:"mood" binding:"required"`
	Stress  int    `json:"stress" binding:"required"`
	Comment string `json:"comment"`
}

// TeamMetricsView is the anonymity-gated aggregate a dashboard may see.
// When Available is false only RespondentCount is populated; the averages
// must stay nil so nothing can be inferred about a small group. RiskLevel
// is nil until a snapshot has been computed, which is not the same thing
// as "low".
type TeamMetricsView struct {
	Available       bool     `json:"available"`
	RespondentCount int      `json:"respondent_count"`
	AvgMood         *float64 `json:"avg_mood,omitempty"`
	AvgStress       *float64 `json:"avg_stress,omitempty"`
	RiskLevel       *string  `json:"risk_level,omitempty"`
}

// DashboardSeries carries one week of per-day mood/stress percentages for
// the dashboard chart. Days without check-ins are null, not zero.
type DashboardSeries struct {
	Days   []string `json:"days"`
	Mood   []*int   `json:"mood"`
	Stress []*int   `json:"stress"`
}
