package config

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

func invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Validate checks that the config describes a usable planetarium.
func (c *Config) Validate() error {
	// Range checks are written as in-range tests so NaN fails them
	if lat := c.Observer.LatDeg; !(lat >= -90 && lat <= 90) {
		return invalid("observer.latitude %v outside [-90, 90]", lat)
	}
	if lon := c.Observer.LonDeg; !(lon >= -180 && lon <= 180) {
		return invalid("observer.longitude %v outside [-180, 180]", lon)
	}

	if c.View.Width <= 0 || c.View.Height <= 0 {
		return invalid("view size %dx%d must be positive", c.View.Width, c.View.Height)
	}
	if fov := c.View.FOVDeg; !(fov > 0 && fov < 180) {
		return invalid("view.fov_deg %v outside (0, 180)", fov)
	}
	if math.IsNaN(c.View.MagCutoff) {
		return invalid("view.mag_cutoff must be a number")
	}

	if c.Cache.RefreshInterval <= 0 {
		return invalid("cache.refresh_interval must be positive, got %v", c.Cache.RefreshInterval)
	}
	if !(c.Picker.RadiusPx >= 0) {
		return invalid("picker.radius_px must not be negative, got %v", c.Picker.RadiusPx)
	}

	switch c.Attitude.Source {
	case SourceSim, SourceManual, SourceFixed:
	case SourceReplay:
		if c.Attitude.ReplayPath == "" {
			return invalid("attitude.replay_path is required for the replay source")
		}
		if c.Attitude.ReplayPeriod <= 0 {
			return invalid("attitude.replay_period must be positive, got %v", c.Attitude.ReplayPeriod)
		}
	default:
		return invalid("unknown attitude.source %q", c.Attitude.Source)
	}
	if !(c.Attitude.StepDeg >= 0) {
		return invalid("attitude.step_deg must not be negative, got %v", c.Attitude.StepDeg)
	}
	if c.Attitude.PitchPeriod < 0 || c.Attitude.RollPeriod < 0 {
		return invalid("attitude periods must not be negative")
	}

	if c.UI.FrameInterval <= 0 {
		return invalid("ui.frame_interval must be positive, got %v", c.UI.FrameInterval)
	}
	switch c.UI.Labels {
	case LabelsNone, LabelsFocused, LabelsBright, LabelsAll:
	default:
		return invalid("unknown ui.labels %q", c.UI.Labels)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		return invalid("unknown logging.level %q", c.Logging.Level)
	}

	return nil
}
