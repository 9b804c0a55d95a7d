package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var JWTSecret = []byte("team-pulse-secret-2026")

// SetSecret replaces the signing key, typically from config at startup.
func SetSecret(s string) {
	if s != "" {
		JWTSecret = []byte(s)
	}
}

func IssueToken(uid int, name, role string, teamID, orgID int) (string, error) {
	return jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid":  uid,
		"name": name,
		"role": role,
		"team": teamID,
		"org":  orgID,
		"exp":  time.Now().Add(7 * 24 * time.Hour).Unix(),
	}).SignedString(JWTSecret)
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		token, err := jwt.Parse(auth[7:], func(t *jwt.Token) (interface{}, error) {
			return JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}
		claims := token.Claims.(jwt.MapClaims)
		c.Set("user_id", int(claims["uid"].(float64)))
		c.Set("user_name", claims["name"].(string))
		c.Set("user_role", claims["role"].(string))
		c.Set("team_id", int(claims["team"].(float64)))
		c.Set("org_id", int(claims["org"].(float64)))

		// renew when less than a day remains
		if exp, ok := claims["exp"].(float64); ok {
			if time.Until(time.Unix(int64(exp), 0)) < 24*time.Hour {
				newToken, _ := IssueToken(
					int(claims["uid"].(float64)),
					claims["name"].(string),
					claims["role"].(string),
					int(claims["team"].(float64)),
					int(claims["org"].(float64)),
				)
				c.Header("X-New-Token", newToken)
			}
		}

		c.Next()
	}
}
