package sysinfo

import "context"

// Kind identifies a spec that can be requested by name.
type Kind int

const (
	KindHost Kind = iota
	KindOS
	KindUptime
	KindMemory
	KindKernel
	KindCPU
	KindGPU
	KindPackages
	KindResolution
)

type kindInfo struct {
	name  string
	label string
}

// kinds is ordered by Kind value.
var kinds = []kindInfo{
	KindHost:       {name: "Host", label: "HostDescription"},
	KindOS:         {name: "Os", label: "OsDescription"},
	KindUptime:     {name: "Uptime", label: "Uptime"},
	KindMemory:     {name: "MemoryStats", label: "MemoryStats"},
	KindKernel:     {name: "Kernel", label: "Kernel"},
	KindCPU:        {name: "CPU", label: "CPU"},
	KindGPU:        {name: "GPU", label: "GPU"},
	KindPackages:   {name: "Packages", label: "Packages"},
	KindResolution: {name: "Resolution", label: "Resolution"},
}

// String returns the name a Kind is requested by.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kinds) {
		return "Kind(?)"
	}
	return kinds[k].name
}

// Label returns the key a Kind is displayed with.
func (k Kind) Label() string {
	if k < 0 || int(k) >= len(kinds) {
		return k.String()
	}
	return kinds[k].label
}

// ParseKind resolves a requested spec name. Matching is case-sensitive.
func ParseKind(name string) (Kind, bool) {
	for i, info := range kinds {
		if info.name == name {
			return Kind(i), true
		}
	}
	return 0, false
}

// KindNames lists every requestable spec name.
func KindNames() []string {
	names := make([]string, len(kinds))
	for i, info := range kinds {
		names[i] = info.name
	}
	return names
}

// Lookup queries the live value of a single spec. CPU and GPU may yield
// several values; every other kind yields exactly one.
func (p *Provider) Lookup(ctx context.Context, k Kind) ([]string, error) {
	var (
		v   string
		err error
	)
	switch k {
	case KindCPU:
		return p.CPUs(ctx)
	case KindGPU:
		return p.GPUs(ctx)
	case KindHost:
		v, err = p.Host(ctx)
	case KindOS:
		v, err = p.OS(ctx)
	case KindUptime:
		v, err = p.Uptime(ctx)
	case KindMemory:
		v, err = p.Memory(ctx)
	case KindKernel:
		v, err = p.Kernel(ctx)
	case KindPackages:
		v, err = p.PackageCount(ctx)
	case KindResolution:
		v, err = p.Resolution(ctx)
	default:
		return nil, ErrUnsupported
	}
	if err != nil {
		return nil, err
	}
	return []string{v}, nil
}
