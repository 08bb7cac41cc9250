//go:build linux || darwin

package sysinfo

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"neofetch/logging"
)

// portablePlatform answers queries through gopsutil on Unix-like systems.
// GPU and display queries live in the per-OS files.
type portablePlatform struct {
	run commandRunner
	log *slog.Logger
}

// NewPlatform returns the Platform for the running operating system. log
// receives diagnostics about sources that were skipped; nil discards them.
func NewPlatform(log *slog.Logger) Platform {
	if log == nil {
		log = logging.Discard()
	}
	return portablePlatform{run: runCommand, log: log}
}

// OS returns the distribution name and version, e.g. "Ubuntu 22.04".
func (portablePlatform) OS(ctx context.Context) (string, error) {
	platform, _, version, err := host.PlatformInformationWithContext(ctx)
	if err != nil {
		return "", err
	}
	if platform == "" {
		platform = runtime.GOOS
	}
	name := cases.Title(language.English).String(platform)
	return strings.TrimSpace(name + " " + version), nil
}

func (portablePlatform) Host(ctx context.Context) (string, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", err
	}
	return info.Hostname, nil
}

// Kernel returns e.g. "Linux 6.1.0-13-amd64 (linux-x64)".
func (portablePlatform) Kernel(ctx context.Context) (string, error) {
	version, err := host.KernelVersionWithContext(ctx)
	if err != nil {
		return "", err
	}
	name := cases.Title(language.English).String(runtime.GOOS)
	return fmt.Sprintf("%s %s (%s)", name, version, RuntimeIdentifier(runtime.GOOS, runtime.GOARCH)), nil
}

func (portablePlatform) Uptime(ctx context.Context) (time.Duration, error) {
	secs, err := host.UptimeWithContext(ctx)
	if err != nil {
		return 0, err
	}
	return time.Duration(secs) * time.Second, nil
}

func (portablePlatform) CPUs(ctx context.Context) ([]string, error) {
	infos, err := cpu.InfoWithContext(ctx)
	if err != nil {
		return nil, err
	}
	return describeCPUs(infos), nil
}

func (portablePlatform) GPUs(ctx context.Context) ([]string, error) {
	return gpus(ctx)
}

func (portablePlatform) Memory(ctx context.Context) (MemoryStat, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryStat{}, err
	}
	return MemoryStat{Total: vm.Total, Available: vm.Available}, nil
}

func (p portablePlatform) Packages(ctx context.Context) (int, error) {
	return countPackages(ctx, p.log, onPath, p.run)
}

func (portablePlatform) Resolution(ctx context.Context) (int, int, error) {
	return resolution(ctx)
}

// Shell returns the base name of the login shell.
func (portablePlatform) Shell(context.Context) (string, error) {
	shell := os.Getenv("SHELL")
	if shell == "" {
		return "", ErrUnsupported
	}
	return filepath.Base(shell), nil
}
