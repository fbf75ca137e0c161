package config

import "flag"

// Flags holds command-line overrides. Only flags given explicitly on the
// command line override file values.
type Flags struct {
	fs *flag.FlagSet

	ConfigPath string
	Debug      bool

	Lat, Lon  float64
	FOV       float64
	MagCutoff float64
	Width     int
	Height    int

	Catalog string

	Attitude         string
	Yaw, Pitch, Roll float64
	Replay           string

	LogLevel string
	LogFile  string
}

// BindFlags registers the configuration flags on fs.
func BindFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs}

	fs.StringVar(&f.ConfigPath, "config", "", "Path to config file")
	fs.BoolVar(&f.Debug, "debug", false, "Enable debug logging")

	fs.Float64Var(&f.Lat, "lat", 0, "Observer latitude in degrees (north positive)")
	fs.Float64Var(&f.Lon, "lon", 0, "Observer longitude in degrees (east positive)")
	fs.Float64Var(&f.FOV, "fov", 0, "Horizontal field of view in degrees")
	fs.Float64Var(&f.MagCutoff, "mag-cutoff", 0, "Faintest magnitude drawn")
	fs.IntVar(&f.Width, "width", 0, "Virtual screen width in pixels")
	fs.IntVar(&f.Height, "height", 0, "Virtual screen height in pixels")

	fs.StringVar(&f.Catalog, "catalog", "", "Star catalog CSV (default: built-in)")

	fs.StringVar(&f.Attitude, "attitude", "", "Attitude source: sim, manual, fixed, replay")
	fs.Float64Var(&f.Yaw, "yaw", 0, "Initial yaw in degrees")
	fs.Float64Var(&f.Pitch, "pitch", 0, "Initial pitch in degrees")
	fs.Float64Var(&f.Roll, "roll", 0, "Initial roll in degrees")
	fs.StringVar(&f.Replay, "replay", "", "Raw MPU-6050 recording for the replay source")

	fs.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.LogFile, "log-file", "", "Write logs to this file")

	return f
}

// set reports the names of flags given on the command line.
func (f *Flags) set() map[string]bool {
	seen := make(map[string]bool)
	if f == nil || f.fs == nil {
		return seen
	}
	f.fs.Visit(func(fl *flag.Flag) { seen[fl.Name] = true })
	return seen
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config, f *Flags) {
	if f == nil {
		return
	}
	set := f.set()

	if f.Debug {
		cfg.Logging.Level = "debug"
	}
	if set["lat"] {
		cfg.Observer.LatDeg = f.Lat
	}
	if set["lon"] {
		cfg.Observer.LonDeg = f.Lon
	}
	if set["lat"] || set["lon"] {
		// A bare coordinate no longer matches the configured place name
		cfg.Observer.Name = ""
	}
	if set["fov"] {
		cfg.View.FOVDeg = f.FOV
	}
	if set["mag-cutoff"] {
		cfg.View.MagCutoff = f.MagCutoff
	}
	if f.Width > 0 {
		cfg.View.Width = f.Width
	}
	if f.Height > 0 {
		cfg.View.Height = f.Height
	}
	if f.Catalog != "" {
		cfg.Catalog.Path = f.Catalog
	}
	if f.Attitude != "" {
		cfg.Attitude.Source = f.Attitude
	}
	if set["yaw"] {
		cfg.Attitude.Yaw = f.Yaw
	}
	if set["pitch"] {
		cfg.Attitude.Pitch = f.Pitch
	}
	if set["roll"] {
		cfg.Attitude.Roll = f.Roll
	}
	if f.Replay != "" {
		cfg.Attitude.ReplayPath = f.Replay
		if !set["attitude"] {
			cfg.Attitude.Source = SourceReplay
		}
	}
	if f.LogLevel != "" {
		cfg.Logging.Level = f.LogLevel
	}
	if f.LogFile != "" {
		cfg.Logging.LogFile = f.LogFile
	}
}
