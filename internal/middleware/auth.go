package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID       = "userID"
	ContextBarbershopID = "barbershopID"
	ContextUserRole     = "userRole"
)

const tokenTTL = 24 * time.Hour

// IssueToken signs the claims the auth middleware reads back. Customers
// carry no barbershop.
func IssueToken(secret string, userID uint, barbershopID *uint, role string, now time.Time) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  now.Add(tokenTTL).Unix(),
		"iat":  now.Unix(),
	}
	if barbershopID != nil {
		claims["barbershopId"] = *barbershopID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if code := authenticate(c, secret); code != "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
			return
		}
		c.Next()
	}
}

// OptionalAuth identifies the caller when a valid token is present and
// lets anonymous requests through otherwise.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			if code := authenticate(c, secret); code != "" {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": code})
				return
			}
		}
		c.Next()
	}
}

func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextUserRole) != role {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "forbidden"})
			return
		}
		c.Next()
	}
}

// authenticate returns an error code, or "" once the caller is in context.
func authenticate(c *gin.Context, secret string) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "missing_authorization_header"
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "invalid_authorization_header"
	}

	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return "invalid_token"
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "invalid_token_claims"
	}

	userID, ok := claims["sub"].(float64)
	role, _ := claims["role"].(string)
	if !ok || userID <= 0 || role == "" {
		return "invalid_token_payload"
	}

	c.Set(ContextUserID, uint(userID))
	c.Set(ContextUserRole, role)
	if shopID, ok := claims["barbershopId"].(float64); ok {
		c.Set(ContextBarbershopID, uint(shopID))
	}
	return ""
}

// UserID is zero for anonymous callers.
func UserID(c *gin.Context) uint {
	v, _ := c.Get(ContextUserID)
	id, _ := v.(uint)
	return id
}

func BarbershopID(c *gin.Context) uint {
	v, _ := c.Get(ContextBarbershopID)
	id, _ := v.(uint)
	return id
}
