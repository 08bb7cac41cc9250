// Package ascii provides the block-letter banner drawn above the spec list.
// Lines alternate between red and white.
package ascii

import (
	"strings"
	"time"

	"github.com/mattn/go-runewidth"
	"github.com/pterm/pterm"
)

// TimeLayout is the long time format shown above the banner.
const TimeLayout = "3:04:05 PM"

const (
	// artIndent is the left margin of every art line.
	artIndent = "  "

	// editionLine is the art line the edition tag is printed beside.
	editionLine = 2
)

var (
	red   = pterm.NewRGB(255, 0, 0)
	white = pterm.NewRGB(255, 255, 255)
)

var art = []string{
	"███╗   ██╗███████╗ ██████╗ ███████╗███████╗████████╗ ██████╗██╗  ██╗",
	"████╗  ██║██╔════╝██╔═══██╗██╔════╝██╔════╝╚══██╔══╝██╔════╝██║  ██║",
	"██╔██╗ ██║█████╗  ██║   ██║█████╗  █████╗     ██║   ██║     ███████║",
	"██║╚██╗██║██╔══╝  ██║   ██║██╔══╝  ██╔══╝     ██║   ██║     ██╔══██║",
	"██║ ╚████║███████╗╚██████╔╝██║     ███████╗   ██║   ╚██████╗██║  ██║",
	"╚═╝  ╚═══╝╚══════╝ ╚═════╝ ╚═╝     ╚══════╝   ╚═╝    ╚═════╝╚═╝  ╚═╝",
}

// clockIndent centers a TimeLayout-wide clock over the art. Longer times
// keep the same start column. The block characters are measured as narrow,
// whatever the locale.
var clockIndent = len(artIndent) + ((&runewidth.Condition{}).StringWidth(art[0])-len(TimeLayout))/2

// Banner returns the banner lines for the given moment.
//
// Parameters:
//   - now: The time printed on the first line, formatted with TimeLayout
//   - edition: Short tag printed to the right of the art, e.g. "windows edition"
//
// Returns:
//   - One string per line: the clock line followed by the six art lines
func Banner(now time.Time, edition string) []string {
	lines := make([]string, 0, len(art)+1)
	lines = append(lines, strings.Repeat(" ", clockIndent)+white.Sprint(now.Format(TimeLayout)))

	for i, row := range art {
		color := red
		if i%2 == 1 {
			color = white
		}

		line := artIndent + color.Sprint(row)
		if i == editionLine && edition != "" {
			line += " " + edition
		}
		lines = append(lines, line)
	}
	return lines
}
