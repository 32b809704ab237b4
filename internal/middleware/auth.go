package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/poofware/tenancy-service/internal/utils"
)

type contextKey string

const (
	ContextKeyUserID      contextKey = "userID"
	ContextKeyEmail       contextKey = "email"
	ContextKeyDisplayName contextKey = "displayName"
	ContextKeyRole        contextKey = "role"
	ContextKeyPhotoURL    contextKey = "photoURL"
)

// Identity is the caller as asserted by the session collaborator. The
// service trusts it and performs no authentication of its own beyond
// verifying the token signature.
type Identity struct {
	UserID      string
	Email       string
	DisplayName string
	Role        string
	PhotoURL    string
}

// Auth verifies the bearer token and stashes the caller identity in the
// request context.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing bearer token", nil)
				return
			}
			raw := strings.TrimPrefix(header, "Bearer ")

			claims := jwt.MapClaims{}
			token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Invalid or expired token", nil, err)
				return
			}

			sub, _ := claims["sub"].(string)
			if sub == "" {
				utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Token missing subject", nil)
				return
			}
			email, _ := claims["email"].(string)
			name, _ := claims["name"].(string)
			role, _ := claims["role"].(string)
			photoURL, _ := claims["photo_url"].(string)

			ctx := r.Context()
			ctx = context.WithValue(ctx, ContextKeyUserID, sub)
			ctx = context.WithValue(ctx, ContextKeyEmail, email)
			ctx = context.WithValue(ctx, ContextKeyDisplayName, name)
			ctx = context.WithValue(ctx, ContextKeyRole, role)
			ctx = context.WithValue(ctx, ContextKeyPhotoURL, photoURL)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// IdentityFromContext recovers the caller identity placed by Auth.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	userID, _ := ctx.Value(ContextKeyUserID).(string)
	if userID == "" {
		return Identity{}, false
	}
	email, _ := ctx.Value(ContextKeyEmail).(string)
	name, _ := ctx.Value(ContextKeyDisplayName).(string)
	role, _ := ctx.Value(ContextKeyRole).(string)
	photoURL, _ := ctx.Value(ContextKeyPhotoURL).(string)
	return Identity{
		UserID:      userID,
		Email:       email,
		DisplayName: name,
		Role:        role,
		PhotoURL:    photoURL,
	}, true
}

// GenerateToken mints a signed token for the identity. Used by tests and
// internal tooling; production tokens come from the auth collaborator.
func GenerateToken(secret string, id Identity, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":       id.UserID,
		"email":     id.Email,
		"name":      id.DisplayName,
		"role":      id.Role,
		"photo_url": id.PhotoURL,
		"iat":       now.Unix(),
		"exp":       now.Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
