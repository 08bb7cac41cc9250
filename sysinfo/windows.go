//go:build windows
// +build windows

// Package sysinfo - Windows-specific implementation
package sysinfo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"neofetch/logging"
)

var (
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")
	moduser32   = windows.NewLazySystemDLL("user32.dll")

	procGetTickCount64       = modkernel32.NewProc("GetTickCount64")
	procGlobalMemoryStatusEx = modkernel32.NewProc("GlobalMemoryStatusEx")
	procGetSystemMetrics     = moduser32.NewProc("GetSystemMetrics")
	procRtlGetVersion        = windows.NewLazySystemDLL("ntdll.dll").NewProc("RtlGetVersion")

	procCreateToolhelp32Snapshot = modkernel32.NewProc("CreateToolhelp32Snapshot")
	procProcess32FirstW          = modkernel32.NewProc("Process32FirstW")
	procProcess32NextW           = modkernel32.NewProc("Process32NextW")
)

// uninstallKey lists one subkey per installed program.
const uninstallKey = `SOFTWARE\Microsoft\Windows\CurrentVersion\Uninstall`

// memoryStatusEx represents the Windows MEMORYSTATUSEX structure.
// It provides information about physical and virtual memory.
type memoryStatusEx struct {
	dwLength                uint32
	dwMemoryLoad            uint32
	ullTotalPhys            uint64
	ullAvailPhys            uint64
	ullTotalPageFile        uint64
	ullAvailPageFile        uint64
	ullTotalVirtual         uint64
	ullAvailVirtual         uint64
	ullAvailExtendedVirtual uint64
}

// windowsPlatform answers every query natively: registry, kernel32,
// user32 and ntdll calls, plus CIM queries through PowerShell for the
// processor, video controller and memory module inventories.
type windowsPlatform struct {
	log *slog.Logger
}

// NewPlatform returns the Platform for the running operating system. nil
// discards diagnostics.
func NewPlatform(log *slog.Logger) Platform {
	if log == nil {
		log = logging.Discard()
	}
	return windowsPlatform{log: log}
}

// OS mirrors the platform description format "Microsoft Windows 10.0.19045".
func (windowsPlatform) OS(context.Context) (string, error) {
	v, err := rtlGetVersion()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Microsoft Windows %d.%d.%d", v.major, v.minor, v.build), nil
}

// Host returns the logon domain or workgroup of the current user.
func (windowsPlatform) Host(context.Context) (string, error) {
	if domain := os.Getenv("USERDOMAIN"); domain != "" {
		return domain, nil
	}
	return os.Hostname()
}

func (windowsPlatform) Kernel(context.Context) (string, error) {
	v, err := rtlGetVersion()
	if err != nil {
		return "", err
	}
	name := WindowsVersionName(v.major, v.minor, v.servicePack)
	return fmt.Sprintf("%s (%s)", name, RuntimeIdentifier(runtime.GOOS, runtime.GOARCH)), nil
}

// Uptime uses GetTickCount64, the milliseconds elapsed since boot.
func (windowsPlatform) Uptime(context.Context) (time.Duration, error) {
	if err := procGetTickCount64.Find(); err != nil {
		return 0, ErrUnsupported
	}
	ret, _, _ := procGetTickCount64.Call()
	return time.Duration(ret) * time.Millisecond, nil
}

// CPUs returns "<Name> <Version>" for every Win32_Processor instance.
func (windowsPlatform) CPUs(ctx context.Context) ([]string, error) {
	var procs []struct {
		Name    string
		Version string
	}
	if err := runPowerShellJSON(ctx, cimQuery("Win32_Processor", "Name,Version"), cimTimeout, &procs); err != nil {
		return nil, err
	}

	descriptions := make([]string, 0, len(procs))
	for _, p := range procs {
		descriptions = append(descriptions, strings.TrimSpace(strings.TrimSpace(p.Name)+" "+strings.TrimSpace(p.Version)))
	}
	return descriptions, nil
}

// GPUs returns the name of every Win32_VideoController instance.
func (windowsPlatform) GPUs(ctx context.Context) ([]string, error) {
	var controllers []struct {
		Name string
	}
	if err := runPowerShellJSON(ctx, cimQuery("Win32_VideoController", "Name"), cimTimeout, &controllers); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(controllers))
	for _, c := range controllers {
		names = append(names, strings.TrimSpace(c.Name))
	}
	return names, nil
}

// Memory sums the capacity of the installed memory modules and takes the
// available figure from GlobalMemoryStatusEx.
func (p windowsPlatform) Memory(ctx context.Context) (MemoryStat, error) {
	var modules []struct {
		Capacity uint64
	}
	if err := runPowerShellJSON(ctx, cimQuery("Win32_PhysicalMemory", "Capacity"), cimTimeout, &modules); err != nil {
		return MemoryStat{}, err
	}

	var memInfo memoryStatusEx
	memInfo.dwLength = uint32(unsafe.Sizeof(memInfo))
	ret, _, callErr := procGlobalMemoryStatusEx.Call(uintptr(unsafe.Pointer(&memInfo)))
	if ret == 0 {
		return MemoryStat{}, fmt.Errorf("GlobalMemoryStatusEx: %w", callErr)
	}

	stat := MemoryStat{Available: memInfo.ullAvailPhys}
	for _, m := range modules {
		stat.Total += m.Capacity
	}
	// Virtual machines often expose no memory modules.
	if stat.Total == 0 {
		p.log.Debug("no memory modules reported, using total physical memory")
		stat.Total = memInfo.ullTotalPhys
	}
	return stat, nil
}

// Packages counts the programs registered for uninstall.
func (windowsPlatform) Packages(context.Context) (int, error) {
	k, err := registry.OpenKey(registry.LOCAL_MACHINE, uninstallKey, registry.ENUMERATE_SUB_KEYS)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", uninstallKey, err)
	}
	defer func() { _ = k.Close() }()

	subkeys, err := k.ReadSubKeyNames(-1)
	if err != nil {
		return 0, fmt.Errorf("enumerate %s: %w", uninstallKey, err)
	}
	return len(subkeys), nil
}

// Resolution retrieves the primary monitor's resolution with
// GetSystemMetrics(SM_CXSCREEN/SM_CYSCREEN).
func (windowsPlatform) Resolution(context.Context) (int, int, error) {
	const (
		SM_CXSCREEN = 0
		SM_CYSCREEN = 1
	)

	width, _, _ := procGetSystemMetrics.Call(uintptr(SM_CXSCREEN))
	height, _, _ := procGetSystemMetrics.Call(uintptr(SM_CYSCREEN))

	// Services and SSH sessions have no interactive desktop.
	if width == 0 || height == 0 {
		return 0, 0, ErrUnsupported
	}
	return int(width), int(height), nil
}

// Shell names the shell that started this process. The parent process is
// looked up natively so no PowerShell is spawned.
func (windowsPlatform) Shell(context.Context) (string, error) {
	if parent := getParentProcessName(); parent != "" {
		lower := strings.ToLower(parent)
		switch {
		case strings.Contains(lower, "pwsh"):
			return "PowerShell Core", nil
		case strings.Contains(lower, "powershell"):
			return "PowerShell", nil
		case strings.Contains(lower, "cmd"):
			return "cmd.exe", nil
		case !strings.Contains(lower, "windowsterminal") && !strings.Contains(lower, "explorer"):
			return parent, nil
		}
	}

	if os.Getenv("PSModulePath") != "" {
		return "PowerShell", nil
	}
	if shell := os.Getenv("SHELL"); shell != "" {
		return shell, nil
	}
	if comspec := os.Getenv("COMSPEC"); comspec != "" {
		return comspec, nil
	}
	return "cmd.exe", nil
}

// getParentProcessName retrieves the name of the parent process using the
// Toolhelp snapshot APIs. Returns the executable name (e.g., "pwsh.exe") or
// empty string on failure.
func getParentProcessName() string {
	pid := uint32(os.Getpid())

	const TH32CS_SNAPPROCESS = 0x00000002

	type processEntry32 struct {
		dwSize              uint32
		cntUsage            uint32
		th32ProcessID       uint32
		th32DefaultHeapID   uintptr
		th32ModuleID        uint32
		cntThreads          uint32
		th32ParentProcessID uint32
		pcPriClassBase      int32
		dwFlags             uint32
		szExeFile           [260]uint16
	}

	snapshot, _, _ := procCreateToolhelp32Snapshot.Call(uintptr(TH32CS_SNAPPROCESS), uintptr(0))
	if snapshot == 0 || snapshot == uintptr(syscall.InvalidHandle) {
		return ""
	}
	defer func() { _ = windows.CloseHandle(windows.Handle(snapshot)) }()

	var pe processEntry32
	pe.dwSize = uint32(unsafe.Sizeof(pe))

	// find returns the entry matching pid, walking the snapshot from the start.
	find := func(pid uint32) bool {
		pe.dwSize = uint32(unsafe.Sizeof(pe))
		ret, _, _ := procProcess32FirstW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		for ret != 0 {
			if pe.th32ProcessID == pid {
				return true
			}
			ret, _, _ = procProcess32NextW.Call(snapshot, uintptr(unsafe.Pointer(&pe)))
		}
		return false
	}

	if !find(pid) || pe.th32ParentProcessID == 0 {
		return ""
	}
	if !find(pe.th32ParentProcessID) {
		return ""
	}
	return strings.TrimSpace(syscall.UTF16ToString(pe.szExeFile[:]))
}

type osVersion struct {
	major, minor, build uint32
	servicePack         string
}

// rtlGetVersion calls ntdll.RtlGetVersion, which unlike GetVersionEx is not
// subject to manifest-based version lies.
func rtlGetVersion() (osVersion, error) {
	// OSVERSIONINFOEXW
	type osver struct {
		dwOSVersionInfoSize uint32
		dwMajorVersion      uint32
		dwMinorVersion      uint32
		dwBuildNumber       uint32
		dwPlatformID        uint32
		szCSDVersion        [128]uint16
		wServicePackMajor   uint16
		wServicePackMinor   uint16
		wSuiteMask          uint16
		wProductType        byte
		wReserved           byte
	}

	var v osver
	v.dwOSVersionInfoSize = uint32(unsafe.Sizeof(v))

	ret, _, callErr := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&v)))
	if ret != 0 {
		// non-zero NTSTATUS indicates failure
		var errno syscall.Errno
		if errors.As(callErr, &errno) && errno != 0 {
			return osVersion{}, fmt.Errorf("RtlGetVersion: %w", callErr)
		}
		return osVersion{}, fmt.Errorf("RtlGetVersion failed: status=%#x", ret)
	}

	return osVersion{
		major:       v.dwMajorVersion,
		minor:       v.dwMinorVersion,
		build:       v.dwBuildNumber,
		servicePack: syscall.UTF16ToString(v.szCSDVersion[:]),
	}, nil
}
