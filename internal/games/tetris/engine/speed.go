package engine

import (
	"math"
	"time"
)

// SpeedCurve maps a level to the interval between automatic falls:
// (Base - level*Decay)^level seconds. Level 0 is one second.
type SpeedCurve struct {
	Base  float64
	Decay float64

	// MinInterval floors the result. Zero keeps the raw curve, except that a
	// non-positive base collapses to MinInterval.
	MinInterval time.Duration
}

// DefaultSpeedCurve is the reference curve.
var DefaultSpeedCurve = SpeedCurve{Base: 0.8, Decay: 0.007}

// Interval returns the fall interval for level.
func (c SpeedCurve) Interval(level int) time.Duration {
	if level < 0 {
		level = 0
	}
	base := c.Base - float64(level)*c.Decay
	if level > 0 && base <= 0 {
		return c.MinInterval
	}
	d := time.Duration(math.Pow(base, float64(level)) * float64(time.Second))
	if d < c.MinInterval {
		return c.MinInterval
	}
	return d
}

// LevelForLines returns floor(lines / LinesToLevel).
func LevelForLines(lines int) int {
	if lines <= 0 {
		return 0
	}
	return lines / LinesToLevel
}
