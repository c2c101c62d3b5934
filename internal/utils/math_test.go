package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestRandomFloat tests the random float generator
func TestRandomFloat(t *testing.T) {
	t.Run("returns value in the unit interval", func(t *testing.T) {
		for i := 0; i < 100; i++ {
			result := RandomFloat()
			assert.GreaterOrEqual(t, result, 0.0)
			assert.Less(t, result, 1.0)
		}
	})

	t.Run("produces varied results", func(t *testing.T) {
		first := RandomFloat()
		allSame := true
		for i := 0; i < 100; i++ {
			if RandomFloat() != first {
				allSame = false
				break
			}
		}

		assert.False(t, allSame, "Should produce different values, not all identical")
	})
}
