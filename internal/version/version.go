// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - MPU-6050 replay source, YAML config, rotating log files
// 0.2.0 - Terminal star field, manual steering, label modes, headless snapshots
// 0.1.0 - Initial release: sidereal time, horizon projection, visibility cache, target picker
