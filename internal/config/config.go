// Package config handles planetarium configuration loading and management.
package config

import (
	"time"

	"github.com/litescript/pocket-planetarium/internal/astro"
)

// Attitude source names.
const (
	SourceSim    = "sim"
	SourceManual = "manual"
	SourceFixed  = "fixed"
	SourceReplay = "replay"
)

// Label modes for star names on screen.
const (
	LabelsNone    = "none"
	LabelsFocused = "focused"
	LabelsBright  = "bright"
	LabelsAll     = "all"
)

// Config holds all planetarium settings.
type Config struct {
	Observer astro.Observer `yaml:"observer"`
	View     ViewConfig     `yaml:"view"`
	Cache    CacheConfig    `yaml:"cache"`
	Picker   PickerConfig   `yaml:"picker"`
	Attitude AttitudeConfig `yaml:"attitude"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	UI       UIConfig       `yaml:"ui"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// ViewConfig holds the virtual screen and camera settings.
type ViewConfig struct {
	Width     int     `yaml:"width"`
	Height    int     `yaml:"height"`
	FOVDeg    float64 `yaml:"fov_deg"`
	MagCutoff float64 `yaml:"mag_cutoff"`
}

// CacheConfig holds visibility cache settings.
type CacheConfig struct {
	RefreshInterval time.Duration `yaml:"refresh_interval"`
}

// PickerConfig holds target picking settings.
type PickerConfig struct {
	RadiusPx float64 `yaml:"radius_px"`
}

// AttitudeConfig selects and tunes the attitude source.
type AttitudeConfig struct {
	Source string  `yaml:"source"` // sim, manual, fixed or replay
	Yaw    float64 `yaml:"yaw"`
	Pitch  float64 `yaml:"pitch"`
	Roll   float64 `yaml:"roll"`

	YawRateDPS        float64       `yaml:"yaw_rate_dps"`
	PitchAmplitudeDeg float64       `yaml:"pitch_amplitude_deg"`
	PitchPeriod       time.Duration `yaml:"pitch_period"`
	RollAmplitudeDeg  float64       `yaml:"roll_amplitude_deg"`
	RollPeriod        time.Duration `yaml:"roll_period"`

	StepDeg float64 `yaml:"step_deg"` // manual nudge per key press

	ReplayPath   string        `yaml:"replay_path"`   // raw MPU-6050 bursts
	ReplayPeriod time.Duration `yaml:"replay_period"` // time between bursts
}

// CatalogConfig holds the star catalog location.
type CatalogConfig struct {
	Path string `yaml:"path"` // empty selects the built-in table
}

// UIConfig holds terminal renderer settings.
type UIConfig struct {
	FrameInterval time.Duration `yaml:"frame_interval"`
	Labels        string        `yaml:"labels"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Observer: astro.Observer{
			Name:   "Fort Worth",
			LatDeg: 32.7357,
			LonDeg: -97.1081,
		},
		View: ViewConfig{
			Width:     800,
			Height:    480,
			FOVDeg:    60,
			MagCutoff: 5.5,
		},
		Cache: CacheConfig{
			RefreshInterval: time.Second,
		},
		Picker: PickerConfig{
			RadiusPx: 35,
		},
		Attitude: AttitudeConfig{
			Source:            SourceSim,
			Pitch:             20,
			YawRateDPS:        6,
			PitchAmplitudeDeg: 25,
			PitchPeriod:       20 * time.Second,
			RollAmplitudeDeg:  5,
			RollPeriod:        13 * time.Second,
			StepDeg:           2,
			ReplayPeriod:      10 * time.Millisecond,
		},
		UI: UIConfig{
			FrameInterval: 33 * time.Millisecond,
			Labels:        LabelsFocused,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
