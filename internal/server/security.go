package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/metrics"
)

// GuardLimits are the per-client budgets of one window
type GuardLimits struct {
	Window time.Duration
	// Requests is the budget across every route
	Requests int
	// Attempts is the separate budget for reforge attempts
	Attempts int
	// AuthAlert logs a security alert once a client reaches it
	AuthAlert int
	// AuthLockout refuses admin calls from a client that reached it
	AuthLockout int
	// MaxClients bounds how many clients are tracked at once
	MaxClients int
}

// DefaultGuardLimits returns the production budgets
func DefaultGuardLimits() GuardLimits {
	return GuardLimits{
		Window:      GuardWindow,
		Requests:    MaxRequestsPerWindow,
		Attempts:    MaxAttemptsPerWindow,
		AuthAlert:   FailedAuthAlertThreshold,
		AuthLockout: FailedAuthLockoutThreshold,
		MaxClients:  GuardMaxClients,
	}
}

// clientWindow counts one client's activity since its window opened
type clientWindow struct {
	requests     int
	attempts     int
	authFailures int
}

// ClientGuard tracks request, attempt and auth-failure counts per client
// IP. A window opens on a client's first request and expires with its
// cache entry; the least recently seen clients are evicted past MaxClients.
type ClientGuard struct {
	limits GuardLimits

	mu      sync.Mutex
	clients *expirable.LRU[string, *clientWindow]
}

func NewClientGuard(limits GuardLimits) *ClientGuard {
	return &ClientGuard{
		limits:  limits,
		clients: expirable.NewLRU[string, *clientWindow](limits.MaxClients, nil, limits.Window),
	}
}

// window returns the open window for ip. Caller must hold the mutex.
func (g *ClientGuard) window(ip string) *clientWindow {
	if w, ok := g.clients.Get(ip); ok {
		return w
	}
	w := &clientWindow{}
	g.clients.Add(ip, w)
	return w
}

// AllowRequest counts one request and reports whether ip is within budget
func (g *ClientGuard) AllowRequest(ip string) bool {
	g.mu.Lock()
	w := g.window(ip)
	w.requests++
	count := w.requests
	g.mu.Unlock()

	if count <= g.limits.Requests {
		return true
	}
	metrics.RecordSecurityEvent(metrics.SecurityEventRateLimited)
	if count%HighRateLogEvery == 0 {
		slog.Default().Warn(SecurityAlertHighRate, "ip", ip, "count", count, "window", g.limits.Window)
	}
	return false
}

// AllowAttempt counts one reforge attempt and reports whether ip is within
// its attempt budget
func (g *ClientGuard) AllowAttempt(ip string) bool {
	g.mu.Lock()
	w := g.window(ip)
	w.attempts++
	count := w.attempts
	g.mu.Unlock()

	if count <= g.limits.Attempts {
		return true
	}
	metrics.RecordSecurityEvent(metrics.SecurityEventAttemptLimited)
	return false
}

// RecordFailedAuth counts a rejected API key
func (g *ClientGuard) RecordFailedAuth(ip string) {
	g.mu.Lock()
	w := g.window(ip)
	w.authFailures++
	count := w.authFailures
	g.mu.Unlock()

	metrics.RecordSecurityEvent(metrics.SecurityEventAuthFailure)
	if count == g.limits.AuthAlert {
		slog.Default().Warn(SecurityAlertFailedAuth, "ip", ip, "count", count)
	}
}

// AuthLocked reports whether ip has used up its auth failures this window
func (g *ClientGuard) AuthLocked(ip string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	w, ok := g.clients.Get(ip)
	return ok && w.authFailures >= g.limits.AuthLockout
}

// AuthMiddleware requires the X-API-Key header on every request it wraps.
// Clients locked out by too many failures are refused before the key is
// compared.
func AuthMiddleware(apiKey string, trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			log := logger.FromContext(r.Context())

			if guard.AuthLocked(ip) {
				log.Warn(LogMsgAuthLocked, "ip", ip, "path", r.URL.Path)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				guard.RecordFailedAuth(ip)
				log.Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)
				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RateLimitMiddleware enforces the per-client request budget
func RateLimitMiddleware(trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !guard.AllowRequest(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AttemptLimitMiddleware enforces the per-client reforge attempt budget
func AttemptLimitMiddleware(trustedProxies []string, guard *ClientGuard) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := extractIP(r, trustedProxies)
			if !guard.AllowAttempt(ip) {
				logger.FromContext(r.Context()).Info(LogMsgAttemptLimited, "ip", ip)
				http.Error(w, ErrMsgTooManyAttempts, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequestSizeLimitMiddleware caps request bodies at maxBytes
func RequestSizeLimitMiddleware(maxBytes int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honored
// when the direct peer is a trusted proxy, and then its rightmost entry is
// the hop that proxy saw.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if !slices.Contains(trustedProxies, remoteIP) {
		return remoteIP
	}
	forwarded := r.Header.Get(HeaderForwardedFor)
	if forwarded == "" {
		return remoteIP
	}
	hops := strings.Split(forwarded, ",")
	return strings.TrimSpace(hops[len(hops)-1])
}

// SecurityHeadersMiddleware sets the response hardening headers. API
// responses are marked no-store.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentTypeOptions, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueDeny)
			h.Set(HeaderReferrerPolicy, HeaderValueNoReferrer)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
