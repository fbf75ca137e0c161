package attitude

import (
	"math"
	"testing"
	"time"
)

func TestFixed(t *testing.T) {
	src := Fixed{Yaw: 10, Pitch: 20, Roll: 30}
	got := src.Attitude(time.Now())
	if got != (Attitude{Yaw: 10, Pitch: 20, Roll: 30}) {
		t.Errorf("Fixed.Attitude() = %+v", got)
	}
}

func TestSimulator_StartsAtConfiguredAttitude(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	sim := NewSimulator(DefaultSimConfig(), start)

	got := sim.Attitude(start)
	if got.Yaw != 0 || got.Pitch != 20 || got.Roll != 0 {
		t.Errorf("Attitude(start) = %+v, want yaw 0 pitch 20 roll 0", got)
	}
}

func TestSimulator_Motion(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cfg := SimConfig{
		Start:          Attitude{Yaw: 350, Pitch: 10},
		YawRateDPS:     5,
		PitchAmplitude: 30,
		PitchPeriod:    8 * time.Second,
	}
	sim := NewSimulator(cfg, start)

	// Two seconds in: yaw wrapped past 360, pitch at the crest of its cycle
	got := sim.Attitude(start.Add(2 * time.Second))
	if math.Abs(got.Yaw-0) > 1e-9 {
		t.Errorf("Yaw = %v, want 0", got.Yaw)
	}
	if math.Abs(got.Pitch-40) > 1e-9 {
		t.Errorf("Pitch = %v, want 40", got.Pitch)
	}
	if got.Roll != 0 {
		t.Errorf("Roll = %v, want 0 with no roll period", got.Roll)
	}

	// Same instant gives the same attitude
	if again := sim.Attitude(start.Add(2 * time.Second)); again != got {
		t.Errorf("simulator not deterministic: %+v vs %+v", again, got)
	}
}

func TestSimulator_PitchClamped(t *testing.T) {
	start := time.Now()
	sim := NewSimulator(SimConfig{
		Start:          Attitude{Pitch: 80},
		PitchAmplitude: 40,
		PitchPeriod:    4 * time.Second,
	}, start)

	for ms := 0; ms < 4000; ms += 100 {
		a := sim.Attitude(start.Add(time.Duration(ms) * time.Millisecond))
		if a.Pitch > 90 || a.Pitch < -90 {
			t.Fatalf("pitch %v out of range at %dms", a.Pitch, ms)
		}
	}
}

func TestManual(t *testing.T) {
	m := NewManual(Attitude{Yaw: 5, Pitch: 80})

	m.Nudge(-10, 20, 3)
	got := m.Attitude(time.Time{})
	if got.Yaw != 355 {
		t.Errorf("Yaw = %v, want 355", got.Yaw)
	}
	if got.Pitch != 90 {
		t.Errorf("Pitch = %v, want clamped to 90", got.Pitch)
	}
	if got.Roll != 3 {
		t.Errorf("Roll = %v, want 3", got.Roll)
	}

	m.Reset()
	if got := m.Attitude(time.Time{}); got != (Attitude{Yaw: 5, Pitch: 80}) {
		t.Errorf("after Reset = %+v", got)
	}
}

func TestWrapDegrees(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{0, 0}, {359, 359}, {360, 0}, {725, 5}, {-1, 359}, {-720, 0},
	}
	for _, tt := range tests {
		if got := wrapDegrees(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("wrapDegrees(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAttitudeString(t *testing.T) {
	a := Attitude{Yaw: 12.34, Pitch: -5, Roll: 0.06}
	if got := a.String(); got != "yaw 12.3° pitch -5.0° roll 0.1°" {
		t.Errorf("String() = %q", got)
	}
}
