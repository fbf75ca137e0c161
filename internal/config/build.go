package config

import (
	"fmt"
	"os"
	"time"

	"github.com/litescript/pocket-planetarium/internal/attitude"
	"github.com/litescript/pocket-planetarium/internal/camera"
	"github.com/litescript/pocket-planetarium/internal/logging"
	"github.com/litescript/pocket-planetarium/internal/sky"
)

// Viewport returns the camera viewport.
func (c *Config) Viewport() camera.Viewport {
	return camera.Viewport{
		Width:  c.View.Width,
		Height: c.View.Height,
		FOVDeg: c.View.FOVDeg,
	}
}

// SkyCache returns the visibility cache settings.
func (c *Config) SkyCache(logger *logging.Logger) sky.CacheConfig {
	return sky.CacheConfig{
		Observer:  c.Observer,
		MagCutoff: c.View.MagCutoff,
		Interval:  c.Cache.RefreshInterval,
		Logger:    logger,
	}
}

// InitialAttitude returns the configured starting attitude.
func (c *Config) InitialAttitude() attitude.Attitude {
	return attitude.Attitude{
		Yaw:   c.Attitude.Yaw,
		Pitch: c.Attitude.Pitch,
		Roll:  c.Attitude.Roll,
	}
}

// SimConfig returns the simulator motion settings.
func (c *Config) SimConfig() attitude.SimConfig {
	return attitude.SimConfig{
		Start:          c.InitialAttitude(),
		YawRateDPS:     c.Attitude.YawRateDPS,
		PitchAmplitude: c.Attitude.PitchAmplitudeDeg,
		PitchPeriod:    c.Attitude.PitchPeriod,
		RollAmplitude:  c.Attitude.RollAmplitudeDeg,
		RollPeriod:     c.Attitude.RollPeriod,
	}
}

// AttitudeSource builds the configured attitude source. Time-driven sources
// start their motion at start.
func (c *Config) AttitudeSource(start time.Time) (attitude.Source, error) {
	switch c.Attitude.Source {
	case SourceSim:
		return attitude.NewSimulator(c.SimConfig(), start), nil
	case SourceManual:
		return attitude.NewManual(c.InitialAttitude()), nil
	case SourceFixed:
		return attitude.Fixed(c.InitialAttitude()), nil
	case SourceReplay:
		f, err := os.Open(c.Attitude.ReplayPath)
		if err != nil {
			return nil, fmt.Errorf("opening replay: %w", err)
		}
		defer f.Close()
		return attitude.NewReplay(f, c.Attitude.ReplayPeriod, start)
	default:
		return nil, invalid("unknown attitude.source %q", c.Attitude.Source)
	}
}

// LoggingConfig returns logger settings. console selects the stderr sink.
func (c *Config) LoggingConfig(console bool) logging.Config {
	cfg := logging.Config{
		Level:   logging.ParseLevel(c.Logging.Level),
		Console: console,
	}
	if c.Logging.LogFile != "" {
		cfg.File = logging.DefaultFileConfig(c.Logging.LogFile)
	}
	return cfg
}
