// Package config holds the options parsed from the command line and the
// named accent colors they may select.
package config

import (
	"log/slog"
	"os"
	"strings"
	"time"

	lev "github.com/agnivade/levenshtein"
	"github.com/pterm/pterm"
)

const (
	// DefaultColor is used when no color is requested or the requested one
	// is not in the table.
	DefaultColor = "Red"

	// DefaultCacheFile is created in the working directory.
	DefaultCacheFile = "saved-specs.json"

	// EnvColor and EnvCacheFile override the flag defaults.
	EnvColor     = "NEOFETCH_COLOR"
	EnvCacheFile = "NEOFETCH_CACHE_FILE"

	// maxSuggestDistance is the largest edit distance still offered as a
	// "did you mean" hint.
	maxSuggestDistance = 3
)

// App is built once from flags and passed to every component that reads it.
type App struct {
	Verbose   bool
	Color     string
	Accent    pterm.RGB
	Reset     bool
	Pause     bool
	Live      bool
	Time      bool
	Specific  []string
	CacheFile string
	Interval  time.Duration
}

type namedColor struct {
	name string
	rgb  pterm.RGB
}

// colors is ordered as it is listed in diagnostics.
var colors = []namedColor{
	{"Blue", pterm.NewRGB(0, 0, 255)},
	{"Green", pterm.NewRGB(0, 128, 0)},
	{"Red", pterm.NewRGB(255, 0, 0)},
	{"Yellow", pterm.NewRGB(255, 255, 0)},
	{"Pink", pterm.NewRGB(255, 192, 203)},
	{"SkyBlue", pterm.NewRGB(135, 206, 235)},
	{"SeaGreen", pterm.NewRGB(46, 139, 87)},
	{"SlateBlue", pterm.NewRGB(106, 90, 205)},
	{"Gray", pterm.NewRGB(211, 211, 211)},
}

// ColorNames lists every accepted color name.
func ColorNames() []string {
	names := make([]string, len(colors))
	for i, c := range colors {
		names[i] = c.name
	}
	return names
}

// LookupColor returns the RGB value of name. Matching is case-sensitive.
func LookupColor(name string) (pterm.RGB, bool) {
	for _, c := range colors {
		if c.name == name {
			return c.rgb, true
		}
	}
	return pterm.RGB{}, false
}

// ResolveColor returns the accent color for name, falling back to
// DefaultColor when the name is unknown.
func ResolveColor(name string, log *slog.Logger) pterm.RGB {
	if rgb, ok := LookupColor(name); ok {
		return rgb
	}

	log.Debug("color '"+name+"' is not recognized",
		"choose", strings.Join(ColorNames(), ", "),
		"fallback", DefaultColor)
	if s, ok := Suggest(name, ColorNames()); ok {
		log.Debug("did you mean '" + s + "'?")
	}

	rgb, _ := LookupColor(DefaultColor)
	return rgb
}

// Suggest returns the candidate closest to name by edit distance, if it is
// close enough to be a likely typo.
func Suggest(name string, candidates []string) (string, bool) {
	best := ""
	bestDist := maxSuggestDistance + 1
	for _, c := range candidates {
		if d := lev.ComputeDistance(name, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, best != ""
}

// EnvDefault returns the trimmed value of the environment variable key, or
// fallback when it is unset or blank.
func EnvDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
