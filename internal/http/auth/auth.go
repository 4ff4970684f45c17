// Package auth decodes the caller's identity from a JWT bearer token.
// Authorization decisions stay in the services; handlers only need to know
// who is calling and whether they hold the admin role.
package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey int

const (
	userIDKey ctxKey = iota
	adminKey
)

// Claims is the token payload Torget issues and accepts.
type Claims struct {
	Admin bool `json:"admin,omitempty"`
	jwt.RegisteredClaims
}

type Middleware struct {
	secret []byte
}

func NewMiddleware(secret string) *Middleware {
	return &Middleware{secret: []byte(secret)}
}

// Require rejects requests without a valid bearer token.
func (m *Middleware) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, ok := m.authenticate(r)
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// Optional decodes the identity when a token is present and lets anonymous
// requests through, for public browse endpoints that personalize if they can.
func (m *Middleware) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if ctx, ok := m.authenticate(r); ok {
			r = r.WithContext(ctx)
		}

		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) authenticate(r *http.Request) (context.Context, bool) {
	header := r.Header.Get("Authorization")

	raw, found := strings.CutPrefix(header, "Bearer ")
	if !found {
		return nil, false
	}

	claims := &Claims{}

	token, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil || !token.Valid {
		return nil, false
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, false
	}

	ctx := context.WithValue(r.Context(), userIDKey, userID)
	ctx = context.WithValue(ctx, adminKey, claims.Admin)

	return ctx, true
}

// UserID returns the authenticated caller, if any.
func UserID(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// IsAdmin reports whether the authenticated caller holds the admin role.
func IsAdmin(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}
