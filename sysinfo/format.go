// Package sysinfo - Formatting utilities
package sysinfo

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const mebibyte = 1024 * 1024

// FormatUptime converts an elapsed duration into the uptime text shown for
// the Uptime spec.
//
// Parameters:
//   - uptime: Time since boot
//
// Returns:
//   - The non-zero components among days, hours, minutes and seconds, in that
//     order, joined by ", "; an empty string for durations under one second
//
// Example: FormatUptime(90061 * time.Second) returns "1 days, 1 hours, 1 mins, 1 secs"
func FormatUptime(uptime time.Duration) string {
	total := int64(uptime / time.Second)
	days := total / 86400
	hours := total / 3600 % 24
	mins := total / 60 % 60
	secs := total % 60

	var parts []string
	if days != 0 {
		parts = append(parts, fmt.Sprintf("%d days", days))
	}
	if hours != 0 {
		parts = append(parts, fmt.Sprintf("%d hours", hours))
	}
	if mins != 0 {
		parts = append(parts, fmt.Sprintf("%d mins", mins))
	}
	if secs != 0 {
		parts = append(parts, fmt.Sprintf("%d secs", secs))
	}

	return strings.Join(parts, ", ")
}

// FormatMemory renders used and total physical memory in binary megabytes.
//
// Parameters:
//   - total: Installed physical memory in bytes
//   - available: Memory currently available in bytes
//
// Returns:
//   - "<used>MiB / <total>MiB", each value rounded to one decimal place
//
// Example: FormatMemory(16 GiB, 8 GiB) returns "8192MiB / 16384MiB"
func FormatMemory(total, available uint64) string {
	totalMiB := round1(float64(total) / mebibyte)
	availableMiB := round1(float64(available) / mebibyte)
	usedMiB := round1(totalMiB - availableMiB)

	return fmt.Sprintf("%sMiB / %sMiB", formatDecimal(usedMiB), formatDecimal(totalMiB))
}

// FormatResolution renders a display size as "<width>x<height>".
func FormatResolution(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// formatDecimal prints the shortest representation, so whole numbers carry
// no trailing ".0".
func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// RuntimeIdentifier returns the "<os>-<arch>" identifier appended to the
// kernel description, e.g. "win-x64" or "linux-arm64".
func RuntimeIdentifier(goos, goarch string) string {
	osPart := goos
	switch goos {
	case "windows":
		osPart = "win"
	case "darwin":
		osPart = "osx"
	}

	archPart := goarch
	switch goarch {
	case "amd64":
		archPart = "x64"
	case "386":
		archPart = "x86"
	case "arm64":
		archPart = "arm64"
	case "arm":
		archPart = "arm"
	}

	return osPart + "-" + archPart
}

// WindowsVersionName maps an NT major/minor version to its marketing name.
//
// Parameters:
//   - major, minor: Version numbers as reported by RtlGetVersion
//   - servicePack: The CSD version text, empty when none is installed
//
// Returns:
//   - "Windows <name>" followed by the service pack when one is present
//   - An empty string for versions missing from the table
//
// Windows 11 still reports major version 10 and is named "Windows 10".
func WindowsVersionName(major, minor uint32, servicePack string) string {
	var name string
	switch major {
	case 3:
		name = "NT 3.51"
	case 4:
		name = "NT 4.0"
	case 5:
		if minor == 0 {
			name = "2000"
		} else {
			name = "XP"
		}
	case 6:
		switch minor {
		case 0:
			name = "Vista"
		case 1:
			name = "7"
		case 2:
			name = "8"
		default:
			name = "8.1"
		}
	case 10:
		name = "10"
	}

	// A service pack alone says nothing without the version it belongs to.
	if name == "" {
		return ""
	}

	name = "Windows " + name
	if sp := strings.TrimSpace(servicePack); sp != "" {
		name += " " + sp
	}
	return name
}
