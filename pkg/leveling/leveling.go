// Package leveling holds the XP economy: reward amounts and the XP to level
// mapping. Everything here is pure math over non-negative integers.
package leveling

import "math"

const (
	XPStepComplete = 10
	XPSubGoalBonus = 25
	XPGoalBonus    = 50
	// Awarded to a peer for approving someone else's verification.
	XPHelperBonus = 5
)

// LevelForXP maps a total XP amount to a level: floor(sqrt(xp/100)) + 1.
// Negative input is treated as zero.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return int(math.Sqrt(float64(xp)/100.0)) + 1
}

// XPThresholdForLevel is the inverse bound: the minimum total XP at which a
// user is at the given level. LevelForXP(XPThresholdForLevel(l)) == l.
func XPThresholdForLevel(level int) int {
	if level < 1 {
		return 0
	}
	return (level - 1) * (level - 1) * 100
}
