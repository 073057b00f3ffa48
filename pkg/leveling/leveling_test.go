package leveling_test

import (
	"testing"

	"github.com/nkaz/questline/pkg/leveling"
	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	testCases := []struct {
		XP    int
		Level int
	}{
		{XP: 0, Level: 1},
		{XP: 50, Level: 1},
		{XP: 99, Level: 1},
		{XP: 100, Level: 2},
		{XP: 399, Level: 2},
		{XP: 400, Level: 3},
		{XP: 899, Level: 3},
		{XP: 900, Level: 4},
		{XP: 10000, Level: 11},
		{XP: -5, Level: 1},
	}
	for _, tc := range testCases {
		assert.Equal(t, tc.Level, leveling.LevelForXP(tc.XP), "xp=%d", tc.XP)
	}
}

func TestThresholdRoundTrip(t *testing.T) {
	for level := 1; level <= 100; level++ {
		threshold := leveling.XPThresholdForLevel(level)
		assert.Equal(t, level, leveling.LevelForXP(threshold), "level=%d threshold=%d", level, threshold)
		// Stays on the same level right up to the next threshold.
		next := leveling.XPThresholdForLevel(level + 1)
		assert.Equal(t, level, leveling.LevelForXP(next-1), "level=%d next=%d", level, next)
	}
}

func TestLevelMonotonic(t *testing.T) {
	prev := 0
	for xp := 0; xp <= 5000; xp += 7 {
		level := leveling.LevelForXP(xp)
		assert.GreaterOrEqual(t, level, prev)
		prev = level
	}
}
