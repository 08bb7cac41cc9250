package sysinfo

import (
	"bytes"
	"context"
	"log/slog"
	"os/exec"
)

// packageManager lists installed packages one per line.
type packageManager struct {
	name string
	args []string
	// header is the number of leading lines that are not packages.
	header int
}

// packageManagers are queried in order; the counts of every manager found
// on PATH are added together.
var packageManagers = []packageManager{
	{name: "dpkg-query", args: []string{"-f", "${binary:Package}\n", "-W"}},
	{name: "rpm", args: []string{"-qa"}},
	{name: "pacman", args: []string{"-Qq"}},
	{name: "apk", args: []string{"info"}},
	{name: "xbps-query", args: []string{"-l"}},
	{name: "brew", args: []string{"list", "-1"}},
	{name: "flatpak", args: []string{"list", "--columns=application"}},
	{name: "snap", args: []string{"list"}, header: 1},
}

// countPackages adds up the packages reported by every available manager.
// lookPath reports whether a manager is installed. A manager whose command
// fails is skipped; ErrUnsupported is returned when no manager produced a
// count.
func countPackages(ctx context.Context, log *slog.Logger, lookPath func(string) bool, run commandRunner) (int, error) {
	total, counted := 0, false
	for _, pm := range packageManagers {
		if !lookPath(pm.name) {
			continue
		}

		out, err := run(ctx, pm.name, pm.args...)
		if err != nil {
			log.Debug("skipping package manager", "manager", pm.name, "err", err)
			continue
		}
		counted = true
		if n := countLines(out) - pm.header; n > 0 {
			total += n
		}
	}

	if !counted {
		return 0, ErrUnsupported
	}
	return total, nil
}

// countLines counts non-blank lines.
func countLines(out []byte) int {
	n := 0
	for _, line := range bytes.Split(out, []byte("\n")) {
		if len(bytes.TrimSpace(line)) > 0 {
			n++
		}
	}
	return n
}

func onPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
