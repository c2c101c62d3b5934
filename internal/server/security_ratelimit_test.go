package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/metrics"
)

func serve(h http.Handler, remote string) int {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimitMiddleware(t *testing.T) {
	// ARRANGE
	limits := testLimits()
	handler := RateLimitMiddleware(nil, NewClientGuard(limits))(okHandler())
	limited := testutil.ToFloat64(metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventRateLimited))

	// ACT
	for i := 0; i < limits.Requests; i++ {
		require.Equal(t, http.StatusOK, serve(handler, "192.168.1.100:1234"), "request %d", i)
	}
	code := serve(handler, "192.168.1.100:1234")

	// ASSERT
	assert.Equal(t, http.StatusTooManyRequests, code)
	assert.Equal(t, limited+1, testutil.ToFloat64(metrics.SecurityEvents.WithLabelValues(metrics.SecurityEventRateLimited)))
}

func TestRateLimitMiddleware_PerIP(t *testing.T) {
	limits := testLimits()
	handler := RateLimitMiddleware(nil, NewClientGuard(limits))(okHandler())
	for range limits.Requests {
		serve(handler, "10.0.0.1:1")
	}

	assert.Equal(t, http.StatusTooManyRequests, serve(handler, "10.0.0.1:1"))
	assert.Equal(t, http.StatusOK, serve(handler, "10.0.0.2:1"))
}

func TestClientGuard_WindowExpires(t *testing.T) {
	// ARRANGE
	limits := testLimits()
	limits.Window = 50 * time.Millisecond
	guard := NewClientGuard(limits)
	for range limits.Requests {
		require.True(t, guard.AllowRequest("10.0.0.3"))
	}
	require.False(t, guard.AllowRequest("10.0.0.3"))

	// ACT / ASSERT
	assert.Eventually(t, func() bool {
		return guard.AllowRequest("10.0.0.3")
	}, time.Second, 20*time.Millisecond)
}

func TestAttemptLimitMiddleware(t *testing.T) {
	// ARRANGE
	limits := testLimits()
	guard := NewClientGuard(limits)
	handler := AttemptLimitMiddleware(nil, guard)(okHandler())

	// ACT
	for range limits.Attempts {
		require.Equal(t, http.StatusOK, serve(handler, "10.0.0.4:1"))
	}
	code := serve(handler, "10.0.0.4:1")

	// ASSERT
	assert.Equal(t, http.StatusTooManyRequests, code)
	// the attempt budget does not spend the general request budget
	assert.True(t, guard.AllowRequest("10.0.0.4"))
}
