package progression

import (
	"context"

	"github.com/osse101/Reforge_Go/internal/logger"
	"github.com/osse101/Reforge_Go/internal/metrics"
)

// ReportSnapshots exports the shape of every published snapshot as gauges
// until ctx is cancelled.
func ReportSnapshots(ctx context.Context, m *Manager) error {
	updates, cancel := m.Subscribe()
	defer cancel()

	observe(ctx, m.Current())
	for {
		select {
		case <-ctx.Done():
			return nil
		case t, ok := <-updates:
			if !ok {
				return nil
			}
			observe(ctx, t)
		}
	}
}

func observe(ctx context.Context, t *Table) {
	metrics.ConfigMaxLevel.Set(float64(t.General.MaxLevel))
	metrics.ConfiguredLevels.Set(float64(len(t.Levels)))
	metrics.AllowedPatterns.WithLabelValues(string(PatternListWeapons)).Set(float64(len(t.AllowedItems.Weapons)))
	metrics.AllowedPatterns.WithLabelValues(string(PatternListArmor)).Set(float64(len(t.AllowedItems.Armor)))
	metrics.AllowedPatterns.WithLabelValues(string(PatternListExclusions)).Set(float64(len(t.AllowedItems.Exclusions)))

	logger.FromContext(ctx).Debug(LogMsgSnapshotObserved,
		"max_level", t.General.MaxLevel,
		"levels", len(t.Levels))
}
