// Package sysinfotest provides a scriptable sysinfo.Platform for tests.
package sysinfotest

import (
	"context"
	"time"

	"neofetch/sysinfo"
)

// Fake is a sysinfo.Platform answering from its fields. A non-nil entry in
// Errors is returned instead of the value for the query of that name
// ("OS", "Host", "Kernel", "Uptime", "CPU", "GPU", "Memory", "Packages",
// "Resolution", "Shell").
type Fake struct {
	OSName     string
	HostName   string
	KernelName string
	Boot       time.Duration
	CPUList    []string
	GPUList    []string
	Mem        sysinfo.MemoryStat
	PkgCount   int
	Width      int
	Height     int
	ShellName  string
	Errors     map[string]error

	// Calls counts queries by name.
	Calls map[string]int
}

var _ sysinfo.Platform = (*Fake)(nil)

// New returns a Fake describing a small Windows workstation.
func New() *Fake {
	return &Fake{
		OSName:     "Microsoft Windows 10.0.19045",
		HostName:   "WORKGROUP",
		KernelName: "Windows 10 (win-x64)",
		Boot:       90061 * time.Second,
		CPUList:    []string{"Intel(R) Core(TM) i7-8700 CPU @ 3.20GHz Intel64 Family 6 Model 158 Stepping 10"},
		GPUList:    []string{"NVIDIA GeForce GTX 1070"},
		Mem:        sysinfo.MemoryStat{Total: 16 << 30, Available: 8 << 30},
		PkgCount:   142,
		Width:      1920,
		Height:     1080,
		ShellName:  "PowerShell",
	}
}

func (f *Fake) call(name string) error {
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[name]++
	return f.Errors[name]
}

func (f *Fake) OS(context.Context) (string, error) {
	return f.OSName, f.call("OS")
}

func (f *Fake) Host(context.Context) (string, error) {
	return f.HostName, f.call("Host")
}

func (f *Fake) Kernel(context.Context) (string, error) {
	return f.KernelName, f.call("Kernel")
}

func (f *Fake) Uptime(context.Context) (time.Duration, error) {
	return f.Boot, f.call("Uptime")
}

func (f *Fake) CPUs(context.Context) ([]string, error) {
	return f.CPUList, f.call("CPU")
}

func (f *Fake) GPUs(context.Context) ([]string, error) {
	return f.GPUList, f.call("GPU")
}

func (f *Fake) Memory(context.Context) (sysinfo.MemoryStat, error) {
	return f.Mem, f.call("Memory")
}

func (f *Fake) Packages(context.Context) (int, error) {
	return f.PkgCount, f.call("Packages")
}

func (f *Fake) Resolution(context.Context) (int, int, error) {
	return f.Width, f.Height, f.call("Resolution")
}

func (f *Fake) Shell(context.Context) (string, error) {
	return f.ShellName, f.call("Shell")
}
