package render

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neofetch/sysinfo"
	"neofetch/sysinfo/sysinfotest"
)

var accent = pterm.NewRGB(255, 0, 0)

func newRenderer(buf *bytes.Buffer, id sysinfo.Identity) *Renderer {
	r := New(buf, accent, id, nil)
	r.Clock = func() time.Time { return time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC) }
	return r
}

func plainLines(buf *bytes.Buffer) []string {
	return strings.Split(pterm.RemoveColorFromString(buf.String()), "\n")
}

func sampleRecord() *sysinfo.SpecRecord {
	return &sysinfo.SpecRecord{
		OSDescription:    "Microsoft Windows 10.0.19045",
		HostDescription:  "WORKGROUP",
		Kernel:           "Windows 10 (win-x64)",
		Uptime:           "2 hours, 5 mins",
		CPUDescriptions:  []string{"cpu0", "cpu1"},
		GPUDescriptions:  []string{"gpu0"},
		MemoryCapacity:   "8192MiB / 16384MiB",
		PackageCount:     "142",
		ScreenResolution: "1920x1080",
	}
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(&buf, sysinfo.Identity{User: "alice", Host: "desk"}).Header()

	lines := plainLines(&buf)
	require.Len(t, lines, 4)
	assert.Equal(t, "", lines[0])
	assert.Equal(t, "alice@desk", lines[1])
	assert.Equal(t, strings.Repeat("-", 10), lines[2])
}

func TestHeaderWideRunes(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(&buf, sysinfo.Identity{User: "用户", Host: "pc"}).Header()

	assert.Equal(t, "用户@pc", plainLines(&buf)[1])
	assert.Equal(t, strings.Repeat("-", 5), plainLines(&buf)[2])
}

func TestSpecLine(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(&buf, sysinfo.Identity{}).SpecLine("Kernel", "Windows 10 (win-x64)")

	assert.Equal(t, "Kernel: Windows 10 (win-x64)\n", pterm.RemoveColorFromString(buf.String()))
}

func TestPalette(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(&buf, sysinfo.Identity{}).Palette()

	lines := plainLines(&buf)
	require.Len(t, lines, 3)
	for _, line := range lines[:2] {
		assert.Equal(t, strings.Repeat("█", 8*3), line)
	}
	assert.Equal(t, "", lines[2])
	assert.Len(t, palette, 8)
}

func TestFull(t *testing.T) {
	var buf bytes.Buffer
	newRenderer(&buf, sysinfo.Identity{User: "alice", Host: "desk"}).Full(sampleRecord(), "PowerShell")

	lines := plainLines(&buf)
	assert.Equal(t, []string{
		"OS: Microsoft Windows 10.0.19045",
		"Host: WORKGROUP",
		"Kernel: Windows 10 (win-x64)",
		"Uptime: 2 hours, 5 mins",
		"Shell: PowerShell",
		"Packages: 142",
		"Resolution: 1920x1080",
		"CPU: cpu0",
		"CPU: cpu1",
		"GPU: gpu0",
		"Memory: 8192MiB / 16384MiB",
		"",
	}, lines[3:15])
	assert.Equal(t, strings.Repeat("█", 24), lines[15])
	assert.Equal(t, strings.Repeat("█", 24), lines[16])
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, sysinfo.Identity{})
	r.Banner(r.Clock())

	out := pterm.RemoveColorFromString(buf.String())
	assert.Contains(t, out, "9:30:00 AM")
	assert.Contains(t, out, " edition")
}

func TestSubsetStopsAtUnknownName(t *testing.T) {
	var buf, logs bytes.Buffer
	r := New(&buf, accent, sysinfo.Identity{User: "a", Host: "b"},
		slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug})))
	provider := sysinfo.NewProvider(sysinfotest.New(), nil)

	err := r.Subset(context.Background(), provider, []string{"Uptime", "NotARealSpec", "CPU"})
	require.NoError(t, err)

	out := pterm.RemoveColorFromString(buf.String())
	assert.Contains(t, out, "Uptime: 1 days, 1 hours, 1 mins, 1 secs")
	assert.NotContains(t, out, "CPU:")
	assert.Equal(t, 2, strings.Count(out, strings.Repeat("█", 24)))
	assert.Contains(t, logs.String(), "cannot get spec 'NotARealSpec'")
}

func TestSubsetLabels(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, sysinfo.Identity{User: "a", Host: "b"})
	provider := sysinfo.NewProvider(sysinfotest.New(), nil)

	err := r.Subset(context.Background(), provider, []string{"Host", "Os", "MemoryStats", "GPU"})
	require.NoError(t, err)

	lines := plainLines(&buf)
	assert.Equal(t, []string{
		"HostDescription: WORKGROUP",
		"OsDescription: Microsoft Windows 10.0.19045",
		"MemoryStats: 8192MiB / 16384MiB",
		"GPU: NVIDIA GeForce GTX 1070",
	}, lines[3:7])
}

func TestSubsetQueriesLiveValues(t *testing.T) {
	var buf bytes.Buffer
	fake := sysinfotest.New()
	r := newRenderer(&buf, sysinfo.Identity{})

	require.NoError(t, r.Subset(context.Background(), sysinfo.NewProvider(fake, nil), []string{"Kernel"}))
	assert.Equal(t, 1, fake.Calls["Kernel"])
}

func TestSubsetQueryError(t *testing.T) {
	var buf bytes.Buffer
	fake := sysinfotest.New()
	fake.Errors = map[string]error{"CPU": errors.New("wmi unavailable")}
	r := newRenderer(&buf, sysinfo.Identity{})

	err := r.Subset(context.Background(), sysinfo.NewProvider(fake, nil), []string{"CPU"})
	assert.ErrorContains(t, err, "wmi unavailable")
}

func TestClearAndTitle(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, sysinfo.Identity{})
	r.Clear()
	r.Title(LiveTitle)

	assert.Equal(t, "\x1b[2J\x1b[H\x1b]0;neofetch: Live\x07", buf.String())
}

func TestLive(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, sysinfo.Identity{User: "a", Host: "b"})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fetches := 0
	fetch := func(context.Context) (*sysinfo.SpecRecord, error) {
		fetches++
		rec := sampleRecord()
		rec.Uptime = "fetch " + string(rune('0'+fetches))
		if fetches == 2 {
			cancel()
		}
		return rec, nil
	}

	err := r.Live(ctx, sampleRecord(), fetch, "bash", 0)
	require.NoError(t, err)

	out := buf.String()
	assert.Equal(t, 2, fetches)
	assert.Equal(t, 2, strings.Count(out, LiveTitle))
	assert.Contains(t, pterm.RemoveColorFromString(out), "Uptime: 2 hours, 5 mins")
	assert.Contains(t, pterm.RemoveColorFromString(out), "Uptime: fetch 1")
	assert.NotContains(t, pterm.RemoveColorFromString(out), "Uptime: fetch 2")
}

func TestLiveFetchError(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, sysinfo.Identity{})
	boom := errors.New("boom")

	err := r.Live(context.Background(), sampleRecord(), func(context.Context) (*sysinfo.SpecRecord, error) {
		return nil, boom
	}, "bash", 0)
	assert.ErrorIs(t, err, boom)
}

func TestLiveIntervalCancelled(t *testing.T) {
	var buf bytes.Buffer
	r := newRenderer(&buf, sysinfo.Identity{})
	ctx, cancel := context.WithCancel(context.Background())

	fetch := func(context.Context) (*sysinfo.SpecRecord, error) {
		cancel()
		return sampleRecord(), nil
	}

	done := make(chan error, 1)
	go func() { done <- r.Live(ctx, sampleRecord(), fetch, "bash", time.Hour) }()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("live loop did not stop on cancellation")
	}
}
