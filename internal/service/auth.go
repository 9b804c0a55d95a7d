package service

import (
	"context"
	"fmt"

	"team-pulse/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct{ db *gorm.DB }

func NewAuthService(db *gorm.DB) *AuthService { return &AuthService{db: db} }

// Login authenticates a dashboard-capable member. Plain participants have
// no password and can never log in; they only ever hold an anon token.
// The member's team is returned alongside so callers can pin org and team
// into the session claims.
func (s *AuthService) Login(ctx context.Context, email, password string) (*model.Member, *model.Team, error) {
	var m model.Member
	err := s.db.WithContext(ctx).
		Where("email = ? AND active = ? AND role IN ?", email, true, []string{"team_lead", "org_admin"}).
		First(&m).Error
	if err != nil {
		return nil, nil, fmt.Errorf("user not found: %w", err)
	}
	if m.Password == "" || bcrypt.CompareHashAndPassword([]byte(m.Password), []byte(password)) != nil {
		return nil, nil, fmt.Errorf("wrong password")
	}

	var t model.Team
	if err := s.db.WithContext(ctx).First(&t, m.TeamID).Error; err != nil {
		return nil, nil, fmt.Errorf("query team: %w", err)
	}
	return &m, &t, nil
}
