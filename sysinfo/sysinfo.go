// Package sysinfo provides cross-platform host information retrieval.
// It defines the spec record that is cached and rendered, the Platform
// interface implemented once per supported operating system, and the
// Provider that turns raw platform values into display strings.
package sysinfo

import (
	"context"
	"errors"
	"time"
)

const (
	// Unknown is the value of every spec that has not been populated yet.
	Unknown = "<unknown>"

	// NotSupported replaces a spec the current platform cannot report.
	NotSupported = "<Platform-Not-Supported>"
)

// ErrUnsupported is returned by a Platform for a query it has no
// implementation for. Provider substitutes NotSupported for it.
var ErrUnsupported = errors.New("not supported on this platform")

// SpecRecord is the aggregate of every cached spec.
//
// The serialized keys match the cache files written by earlier releases.
type SpecRecord struct {
	// OSDescription is the platform-reported operating system description
	OSDescription string `json:"OsDescription" yaml:"OsDescription"`

	// HostDescription is the domain, workgroup or host grouping name
	HostDescription string `json:"HostDescription" yaml:"HostDescription"`

	// Kernel is the OS version name combined with the runtime identifier
	Kernel string `json:"Kernel" yaml:"Kernel"`

	// Uptime is the formatted time since boot. Never trusted from cache.
	Uptime string `json:"Uptime" yaml:"Uptime"`

	// CPUDescriptions holds one entry per processor
	CPUDescriptions []string `json:"CpuDescriptions" yaml:"CpuDescriptions"`

	// GPUDescriptions holds one entry per video controller
	GPUDescriptions []string `json:"GpuDescriptions" yaml:"GpuDescriptions"`

	// MemoryCapacity shows used/total RAM. Never trusted from cache.
	MemoryCapacity string `json:"MemoryCapacity" yaml:"MemoryCapacity"`

	// PackageCount is the number of installed packages as decimal text
	PackageCount string `json:"PackageCount" yaml:"PackageCount"`

	// ScreenResolution is the primary display size, "<width>x<height>"
	ScreenResolution string `json:"ScreenResolution" yaml:"ScreenResolution"`
}

// NewSpecRecord returns a record with every field set to Unknown.
func NewSpecRecord() *SpecRecord {
	return &SpecRecord{
		OSDescription:    Unknown,
		HostDescription:  Unknown,
		Kernel:           Unknown,
		Uptime:           Unknown,
		CPUDescriptions:  []string{},
		GPUDescriptions:  []string{},
		MemoryCapacity:   Unknown,
		PackageCount:     Unknown,
		ScreenResolution: Unknown,
	}
}

// MemoryStat is the physical memory reported by a platform, in bytes.
type MemoryStat struct {
	Total     uint64
	Available uint64
}

// Platform is implemented once per supported operating system. Every method
// either returns a complete value or an error; ErrUnsupported marks a query
// the platform cannot answer.
type Platform interface {
	OS(ctx context.Context) (string, error)
	Host(ctx context.Context) (string, error)
	Kernel(ctx context.Context) (string, error)
	Uptime(ctx context.Context) (time.Duration, error)
	CPUs(ctx context.Context) ([]string, error)
	GPUs(ctx context.Context) ([]string, error)
	Memory(ctx context.Context) (MemoryStat, error)
	Packages(ctx context.Context) (int, error)
	Resolution(ctx context.Context) (width, height int, err error)
	Shell(ctx context.Context) (string, error)
}

// Unsupported is the Platform used on operating systems without a native
// implementation. Every query reports ErrUnsupported.
type Unsupported struct{}

var _ Platform = Unsupported{}

func (Unsupported) OS(context.Context) (string, error)     { return "", ErrUnsupported }
func (Unsupported) Host(context.Context) (string, error)   { return "", ErrUnsupported }
func (Unsupported) Kernel(context.Context) (string, error) { return "", ErrUnsupported }
func (Unsupported) Uptime(context.Context) (time.Duration, error) {
	return 0, ErrUnsupported
}
func (Unsupported) CPUs(context.Context) ([]string, error) { return nil, ErrUnsupported }
func (Unsupported) GPUs(context.Context) ([]string, error) { return nil, ErrUnsupported }
func (Unsupported) Memory(context.Context) (MemoryStat, error) {
	return MemoryStat{}, ErrUnsupported
}
func (Unsupported) Packages(context.Context) (int, error) { return 0, ErrUnsupported }
func (Unsupported) Resolution(context.Context) (int, int, error) {
	return 0, 0, ErrUnsupported
}
func (Unsupported) Shell(context.Context) (string, error) { return "", ErrUnsupported }
