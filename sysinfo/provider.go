package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"neofetch/logging"
)

// Provider queries a Platform and formats every answer as the string shown
// for its spec. ErrUnsupported answers become NotSupported; any other error
// is returned wrapped with the spec name.
type Provider struct {
	platform Platform
	log      *slog.Logger
}

// NewProvider wraps platform. A nil logger discards diagnostics.
func NewProvider(platform Platform, log *slog.Logger) *Provider {
	if log == nil {
		log = logging.Discard()
	}
	return &Provider{platform: platform, log: log}
}

// queryError wraps err for spec name, or reports whether it should be
// replaced by the NotSupported sentinel.
func queryError(name string, err error) (unsupported bool, wrapped error) {
	if errors.Is(err, ErrUnsupported) {
		return true, nil
	}
	return false, fmt.Errorf("sysinfo: query %s: %w", name, err)
}

func (p *Provider) text(name string, v string, err error) (string, error) {
	if err != nil {
		if unsupported, werr := queryError(name, err); !unsupported {
			return "", werr
		}
		return NotSupported, nil
	}
	return v, nil
}

func (p *Provider) list(name string, v []string, err error) ([]string, error) {
	if err != nil {
		if unsupported, werr := queryError(name, err); !unsupported {
			return nil, werr
		}
		return []string{NotSupported}, nil
	}
	if v == nil {
		v = []string{}
	}
	return v, nil
}

// OS returns the operating system description.
func (p *Provider) OS(ctx context.Context) (string, error) {
	v, err := p.platform.OS(ctx)
	return p.text("OS", v, err)
}

// Host returns the domain, workgroup or host grouping name.
func (p *Provider) Host(ctx context.Context) (string, error) {
	v, err := p.platform.Host(ctx)
	return p.text("Host", v, err)
}

// Kernel returns the OS version name and runtime identifier.
func (p *Provider) Kernel(ctx context.Context) (string, error) {
	v, err := p.platform.Kernel(ctx)
	return p.text("Kernel", v, err)
}

// Uptime returns the time since boot formatted with FormatUptime.
func (p *Provider) Uptime(ctx context.Context) (string, error) {
	d, err := p.platform.Uptime(ctx)
	if err != nil {
		return p.text("Uptime", "", err)
	}
	return FormatUptime(d), nil
}

// CPUs returns one description per processor.
func (p *Provider) CPUs(ctx context.Context) ([]string, error) {
	v, err := p.platform.CPUs(ctx)
	return p.list("CPU", v, err)
}

// GPUs returns one description per video controller.
func (p *Provider) GPUs(ctx context.Context) ([]string, error) {
	v, err := p.platform.GPUs(ctx)
	return p.list("GPU", v, err)
}

// Memory returns used and total memory formatted with FormatMemory.
func (p *Provider) Memory(ctx context.Context) (string, error) {
	m, err := p.platform.Memory(ctx)
	if err != nil {
		return p.text("Memory", "", err)
	}
	p.log.Debug("memory stat",
		"total", humanize.IBytes(m.Total),
		"available", humanize.IBytes(m.Available))
	return FormatMemory(m.Total, m.Available), nil
}

// PackageCount returns the number of installed packages.
func (p *Provider) PackageCount(ctx context.Context) (string, error) {
	n, err := p.platform.Packages(ctx)
	if err != nil {
		return p.text("Packages", "", err)
	}
	return strconv.Itoa(n), nil
}

// Resolution returns the primary display size.
func (p *Provider) Resolution(ctx context.Context) (string, error) {
	w, h, err := p.platform.Resolution(ctx)
	if err != nil {
		return p.text("Resolution", "", err)
	}
	return FormatResolution(w, h), nil
}

// Shell returns the command shell the program was started from.
func (p *Provider) Shell(ctx context.Context) (string, error) {
	v, err := p.platform.Shell(ctx)
	return p.text("Shell", v, err)
}

// Collect queries every spec and returns a fully populated record. No record
// is returned when any query fails.
func (p *Provider) Collect(ctx context.Context) (*SpecRecord, error) {
	rec := NewSpecRecord()

	var err error
	if rec.OSDescription, err = p.OS(ctx); err != nil {
		return nil, err
	}
	p.found("OsDescription", rec.OSDescription)

	if rec.HostDescription, err = p.Host(ctx); err != nil {
		return nil, err
	}
	p.found("HostDescription", rec.HostDescription)

	if rec.Kernel, err = p.Kernel(ctx); err != nil {
		return nil, err
	}
	p.found("Kernel", rec.Kernel)

	if rec.Uptime, err = p.Uptime(ctx); err != nil {
		return nil, err
	}
	p.found("Uptime", rec.Uptime)

	if rec.CPUDescriptions, err = p.CPUs(ctx); err != nil {
		return nil, err
	}
	p.found("Processors", rec.CPUDescriptions...)

	if rec.GPUDescriptions, err = p.GPUs(ctx); err != nil {
		return nil, err
	}
	p.found("GraphicCards", rec.GPUDescriptions...)

	if rec.MemoryCapacity, err = p.Memory(ctx); err != nil {
		return nil, err
	}
	p.found("MemoryUsage", rec.MemoryCapacity)

	if rec.PackageCount, err = p.PackageCount(ctx); err != nil {
		return nil, err
	}
	p.found("Packages", rec.PackageCount)

	if rec.ScreenResolution, err = p.Resolution(ctx); err != nil {
		return nil, err
	}
	p.found("Resolution", rec.ScreenResolution)

	return rec, nil
}

// Refresh recomputes the volatile specs of rec in place: uptime and memory
// usage. Both are queried before rec is touched.
func (p *Provider) Refresh(ctx context.Context, rec *SpecRecord) error {
	uptime, err := p.Uptime(ctx)
	if err != nil {
		return err
	}
	memory, err := p.Memory(ctx)
	if err != nil {
		return err
	}

	rec.Uptime = uptime
	p.found("Uptime", uptime)
	rec.MemoryCapacity = memory
	p.found("MemoryUsage", memory)
	return nil
}

func (p *Provider) found(name string, values ...string) {
	p.log.Debug("found spec", "name", name, "value", strings.Join(values, ", "))
}
