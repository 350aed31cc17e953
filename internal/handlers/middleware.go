package handlers

import (
	"context"
	"log"
	"net"
	"net/http"
	"time"

	"familyhub/internal/models"
	"familyhub/internal/security"
	"familyhub/internal/service"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

const (
	UserContextKey   ContextKey = "user"
	MemberContextKey ContextKey = "member"
)

// CSRFHeaderName carries the token on state-changing requests
const CSRFHeaderName = "X-CSRF-Token"

// Middleware holds dependencies for middleware functions
type Middleware struct {
	authService   *service.AuthService
	familyService *service.FamilyService
	csrf          *security.CSRFGenerator
	rateLimiter   *security.RateLimiter
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(authService *service.AuthService, familyService *service.FamilyService, csrf *security.CSRFGenerator, rateLimiter *security.RateLimiter) *Middleware {
	return &Middleware{
		authService:   authService,
		familyService: familyService,
		csrf:          csrf,
		rateLimiter:   rateLimiter,
	}
}

// RequireAuth requires a valid session and puts the user on the
// request context
func (m *Middleware) RequireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		user, err := m.authService.ValidateSession(cookie.Value)
		if err != nil {
			http.SetCookie(w, security.CreateDeleteCookie(r, security.SessionCookieName))
			respondError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user)
		next(w, r.WithContext(ctx))
	}
}

// RequireMember builds on RequireAuth: the user must also be linked to
// a family member, which rides along on the context
func (m *Middleware) RequireMember(next http.HandlerFunc) http.HandlerFunc {
	return m.RequireAuth(func(w http.ResponseWriter, r *http.Request) {
		user := GetUserFromContext(r.Context())
		member, err := m.familyService.GetMemberForUser(user.ID)
		if err != nil {
			respondError(w, http.StatusForbidden, "no family membership", nil)
			return
		}

		ctx := context.WithValue(r.Context(), MemberContextKey, member)
		next(w, r.WithContext(ctx))
	})
}

// VerifyCSRF checks the token header on state-changing methods
func (m *Middleware) VerifyCSRF(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next(w, r)
			return
		}

		cookie, err := r.Cookie(security.SessionCookieName)
		if err != nil {
			respondError(w, http.StatusForbidden, "missing session", nil)
			return
		}
		if !m.csrf.ValidateToken(cookie.Value, r.Header.Get(CSRFHeaderName)) {
			respondError(w, http.StatusForbidden, "invalid CSRF token", nil)
			return
		}
		next(w, r)
	}
}

// RateLimit throttles by client IP, for the auth endpoints
func (m *Middleware) RateLimit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !m.rateLimiter.Allow(ip) {
			respondError(w, http.StatusTooManyRequests, "too many requests", nil)
			return
		}
		next(w, r)
	}
}

// Logging middleware logs HTTP requests
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// GetUserFromContext retrieves the user from the request context
func GetUserFromContext(ctx context.Context) *models.User {
	user, ok := ctx.Value(UserContextKey).(*models.User)
	if !ok {
		return nil
	}
	return user
}

// GetMemberFromContext retrieves the acting member from the request
// context
func GetMemberFromContext(ctx context.Context) *models.FamilyMember {
	member, ok := ctx.Value(MemberContextKey).(*models.FamilyMember)
	if !ok {
		return nil
	}
	return member
}
