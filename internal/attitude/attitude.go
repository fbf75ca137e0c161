// Package attitude supplies device orientation (yaw, pitch, roll) to the
// frame loop.
package attitude

import (
	"fmt"
	"math"
	"time"
)

// Attitude is a device orientation in degrees.
type Attitude struct {
	Yaw   float64 `json:"yaw"`
	Pitch float64 `json:"pitch"`
	Roll  float64 `json:"roll"`
}

func (a Attitude) String() string {
	return fmt.Sprintf("yaw %.1f° pitch %.1f° roll %.1f°", a.Yaw, a.Pitch, a.Roll)
}

// Source supplies the attitude for a frame. It is sampled once per frame.
type Source interface {
	Attitude(now time.Time) Attitude
}

// Fixed is a constant attitude.
type Fixed Attitude

// Attitude implements Source.
func (f Fixed) Attitude(time.Time) Attitude { return Attitude(f) }

// SimConfig describes synthetic device motion.
type SimConfig struct {
	Start          Attitude      // attitude at the start instant
	YawRateDPS     float64       // constant yaw sweep, degrees per second
	PitchAmplitude float64       // pitch swing around Start.Pitch, degrees
	PitchPeriod    time.Duration // full pitch cycle
	RollAmplitude  float64       // roll swing around Start.Roll, degrees
	RollPeriod     time.Duration // full roll cycle
}

// DefaultSimConfig returns a slow sweep around the sky 20° above the horizon.
func DefaultSimConfig() SimConfig {
	return SimConfig{
		Start:          Attitude{Pitch: 20},
		YawRateDPS:     6,
		PitchAmplitude: 25,
		PitchPeriod:    20 * time.Second,
		RollAmplitude:  5,
		RollPeriod:     13 * time.Second,
	}
}

// Simulator generates deterministic attitude as a function of the time
// elapsed since its start instant.
type Simulator struct {
	cfg   SimConfig
	start time.Time
}

// NewSimulator creates a simulator whose motion begins at start.
func NewSimulator(cfg SimConfig, start time.Time) *Simulator {
	return &Simulator{cfg: cfg, start: start}
}

// Attitude implements Source.
func (s *Simulator) Attitude(now time.Time) Attitude {
	t := now.Sub(s.start).Seconds()

	a := s.cfg.Start
	a.Yaw = wrapDegrees(a.Yaw + s.cfg.YawRateDPS*t)
	a.Pitch += oscillate(s.cfg.PitchAmplitude, s.cfg.PitchPeriod, t)
	a.Roll += oscillate(s.cfg.RollAmplitude, s.cfg.RollPeriod, t)
	a.Pitch = clampPitch(a.Pitch)
	return a
}

func oscillate(amplitude float64, period time.Duration, t float64) float64 {
	if period <= 0 || amplitude == 0 {
		return 0
	}
	return amplitude * math.Sin(2*math.Pi*t/period.Seconds())
}

// Manual is an attitude steered by discrete nudges, e.g. arrow keys.
type Manual struct {
	initial Attitude
	current Attitude
}

// NewManual creates a manual source starting at a.
func NewManual(a Attitude) *Manual {
	a.Yaw = wrapDegrees(a.Yaw)
	a.Pitch = clampPitch(a.Pitch)
	return &Manual{initial: a, current: a}
}

// Attitude implements Source.
func (m *Manual) Attitude(time.Time) Attitude { return m.current }

// Nudge adds the deltas to the current attitude. Yaw wraps to [0, 360),
// pitch is limited to [-90, 90].
func (m *Manual) Nudge(dYaw, dPitch, dRoll float64) {
	m.current.Yaw = wrapDegrees(m.current.Yaw + dYaw)
	m.current.Pitch = clampPitch(m.current.Pitch + dPitch)
	m.current.Roll += dRoll
}

// Reset returns to the starting attitude.
func (m *Manual) Reset() {
	m.current = m.initial
}

func wrapDegrees(d float64) float64 {
	d = math.Mod(d, 360)
	if d < 0 {
		d += 360
	}
	if d >= 360 {
		d = 0
	}
	return d
}

func clampPitch(p float64) float64 {
	return math.Max(-90, math.Min(90, p))
}
