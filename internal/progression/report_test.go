package progression

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/Reforge_Go/internal/metrics"
	"github.com/osse101/Reforge_Go/internal/testing/leaktest"
)

func TestReportSnapshots(t *testing.T) {
	// ARRANGE
	checker := leaktest.NewGoroutineChecker(t)
	ctx, cancel := context.WithCancel(context.Background())
	m := NewManager(filepath.Join(t.TempDir(), "reforging.json"))
	require.NoError(t, m.Load(ctx))

	done := make(chan error, 1)
	go func() { done <- ReportSnapshots(ctx, m) }()

	// ACT
	_, err := m.Update(ctx, SetMaxLevel(4), RemoveLevel(10))
	require.NoError(t, err)

	// ASSERT
	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(metrics.ConfigMaxLevel) == 4 &&
			testutil.ToFloat64(metrics.ConfiguredLevels) == float64(DefaultMaxLevel-1) &&
			testutil.ToFloat64(metrics.AllowedPatterns.WithLabelValues(string(PatternListExclusions))) == 0
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.AllowedPatterns.WithLabelValues(string(PatternListWeapons))))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("reporter did not stop")
	}
	checker.Check(0)
}
