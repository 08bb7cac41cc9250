// Package render draws the banner, the user@host header, the spec lines and
// the color palette to a terminal.
package render

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/pterm/pterm"

	"neofetch/ascii"
	"neofetch/config"
	"neofetch/logging"
	"neofetch/sysinfo"
)

const (
	// LiveTitle is the terminal title set while the live loop runs.
	LiveTitle = "neofetch: Live"

	// swatch is one palette entry.
	swatch = "███"
)

var white = pterm.NewRGB(255, 255, 255)

// palette is drawn left to right on each palette row.
var palette = []pterm.RGB{
	pterm.NewRGB(0, 0, 0),       // Black
	pterm.NewRGB(255, 0, 0),     // Red
	pterm.NewRGB(0, 255, 0),     // Lime
	pterm.NewRGB(255, 255, 0),   // Yellow
	pterm.NewRGB(135, 206, 250), // LightSkyBlue
	pterm.NewRGB(128, 0, 128),   // Purple
	pterm.NewRGB(255, 165, 0),   // Orange
	pterm.NewRGB(255, 255, 255), // White
}

// paletteRows is the number of identical palette lines.
const paletteRows = 2

// Lookuper answers a single spec query by kind.
type Lookuper interface {
	Lookup(ctx context.Context, k sysinfo.Kind) ([]string, error)
}

// FetchFunc returns a freshly collected record.
type FetchFunc func(ctx context.Context) (*sysinfo.SpecRecord, error)

// Renderer writes every piece of output. It never mutates the records it is
// given.
type Renderer struct {
	out     io.Writer
	accent  pterm.RGB
	id      sysinfo.Identity
	edition string
	log     *slog.Logger

	// Clock supplies the time shown in the banner.
	Clock func() time.Time
}

// New returns a Renderer writing to out with spec names in accent.
func New(out io.Writer, accent pterm.RGB, id sysinfo.Identity, log *slog.Logger) *Renderer {
	if log == nil {
		log = logging.Discard()
	}
	return &Renderer{
		out:     out,
		accent:  accent,
		id:      id,
		edition: runtime.GOOS + " edition",
		log:     log,
		Clock:   time.Now,
	}
}

// Banner writes the block-letter banner with t on its first line.
func (r *Renderer) Banner(t time.Time) {
	fmt.Fprintln(r.out)
	for _, line := range ascii.Banner(t, r.edition) {
		fmt.Fprintln(r.out, line)
	}
}

// Header writes user@host followed by a dash rule with one dash per
// character of that line.
func (r *Renderer) Header() {
	user := r.accent.Sprint(r.id.User)
	host := r.accent.Sprint(r.id.Host)
	sepLen := utf8.RuneCountInString(r.id.User) + utf8.RuneCountInString(r.id.Host) + 1

	fmt.Fprintln(r.out)
	fmt.Fprintf(r.out, "%s%s%s\n", user, white.Sprint("@"), host)
	fmt.Fprintln(r.out, strings.Repeat("-", sepLen))
}

// SpecLine writes one "name: value" line.
func (r *Renderer) SpecLine(name, value string) {
	fmt.Fprintf(r.out, "%s: %s\n", r.accent.Sprint(name), white.Sprint(value))
}

// Palette writes the color swatch rows.
func (r *Renderer) Palette() {
	for row := 0; row < paletteRows; row++ {
		var b strings.Builder
		for _, c := range palette {
			b.WriteString(c.Sprint(swatch))
		}
		fmt.Fprintln(r.out, b.String())
	}
}

// Full writes the header, every spec of rec and the palette.
func (r *Renderer) Full(rec *sysinfo.SpecRecord, shell string) {
	r.Header()
	r.SpecLine("OS", rec.OSDescription)
	r.SpecLine("Host", rec.HostDescription)
	r.SpecLine("Kernel", rec.Kernel)
	r.SpecLine("Uptime", rec.Uptime)
	r.SpecLine("Shell", shell)
	r.SpecLine("Packages", rec.PackageCount)
	r.SpecLine("Resolution", rec.ScreenResolution)
	for _, cpu := range rec.CPUDescriptions {
		r.SpecLine("CPU", cpu)
	}
	for _, gpu := range rec.GPUDescriptions {
		r.SpecLine("GPU", gpu)
	}
	r.SpecLine("Memory", rec.MemoryCapacity)

	fmt.Fprintln(r.out)
	r.Palette()
	fmt.Fprintln(r.out)
}

// Subset writes the header and then the named specs in order, each queried
// live through src. Processing stops at the first name that is not a known
// spec; the specs before it are still shown.
func (r *Renderer) Subset(ctx context.Context, src Lookuper, names []string) error {
	r.Header()

	for _, name := range names {
		kind, ok := sysinfo.ParseKind(name)
		if !ok {
			r.log.Debug("cannot get spec '"+name+"'",
				"available", strings.Join(sysinfo.KindNames(), ", "))
			if s, ok := config.Suggest(name, sysinfo.KindNames()); ok {
				r.log.Debug("did you mean '" + s + "'?")
			}
			break
		}

		values, err := src.Lookup(ctx, kind)
		if err != nil {
			return err
		}
		for _, v := range values {
			r.SpecLine(kind.Label(), v)
		}
	}

	fmt.Fprintln(r.out)
	r.Palette()
	fmt.Fprintln(r.out)
	return nil
}

// Clear erases the screen and homes the cursor.
func (r *Renderer) Clear() {
	fmt.Fprint(r.out, "\x1b[2J\x1b[H")
}

// Title sets the terminal window title.
func (r *Renderer) Title(title string) {
	fmt.Fprintf(r.out, "\x1b]0;%s\x07", title)
}

// Live redraws rec, then replaces it with a fresh record from fetch, until
// ctx is cancelled. interval is waited between frames; zero redraws as soon
// as the fetch returns. Cancellation is not an error.
func (r *Renderer) Live(ctx context.Context, rec *sysinfo.SpecRecord, fetch FetchFunc, shell string, interval time.Duration) error {
	for ctx.Err() == nil {
		r.Clear()
		r.Title(LiveTitle)
		r.Banner(r.Clock())
		r.Full(rec, shell)

		next, err := fetch(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		rec = next

		if interval > 0 {
			timer := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil
			case <-timer.C:
			}
		}
	}
	return nil
}
