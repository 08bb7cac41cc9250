//go:build !windows && !linux && !darwin

package sysinfo

import "log/slog"

// NewPlatform returns the Platform for the running operating system.
func NewPlatform(*slog.Logger) Platform {
	return Unsupported{}
}
