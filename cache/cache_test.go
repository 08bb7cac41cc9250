package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"neofetch/sysinfo"
	"neofetch/sysinfo/sysinfotest"
)

func newStore(t *testing.T, name string, fake *sysinfotest.Fake) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), name), sysinfo.NewProvider(fake, nil), nil)
}

func sampleRecord() *sysinfo.SpecRecord {
	return &sysinfo.SpecRecord{
		OSDescription:    "Microsoft Windows 10.0.22631",
		HostDescription:  "CONTOSO",
		Kernel:           "Windows 10 (win-x64)",
		Uptime:           "3 hours, 2 mins",
		CPUDescriptions:  []string{"AMD Ryzen 7 5800X 8-Core Processor", "second socket"},
		GPUDescriptions:  []string{"AMD Radeon RX 6800"},
		MemoryCapacity:   "12000.5MiB / 32768MiB",
		PackageCount:     "311",
		ScreenResolution: "2560x1440",
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"saved-specs.json", "specs.yaml", "specs.yml", "specs.cache"} {
		t.Run(name, func(t *testing.T) {
			store := newStore(t, name, sysinfotest.New())
			want := sampleRecord()

			require.NoError(t, store.Save(want))
			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestRoundTripEmptyLists(t *testing.T) {
	for _, name := range []string{"saved-specs.json", "specs.yaml"} {
		t.Run(name, func(t *testing.T) {
			store := newStore(t, name, sysinfotest.New())
			want := sysinfo.NewSpecRecord()

			require.NoError(t, store.Save(want))
			got, err := store.Load()
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestSaveWritesIndentedJSON(t *testing.T) {
	store := newStore(t, "saved-specs.json", sysinfotest.New())
	require.NoError(t, store.Save(sampleRecord()))

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"OsDescription\": \"Microsoft Windows 10.0.22631\"")
	assert.Contains(t, string(data), "\"CpuDescriptions\": [")
}

func TestLoadLegacyFile(t *testing.T) {
	store := newStore(t, "saved-specs.json", sysinfotest.New())
	legacy := `{
  "OsDescription": "Microsoft Windows 10.0.19044",
  "HostDescription": "WORKGROUP",
  "Kernel": "Windows 10 (win-x64)",
  "Uptime": "5 mins",
  "CpuDescriptions": null,
  "GpuDescriptions": [ "Intel(R) UHD Graphics 620" ],
  "MemoryCapacity": "4000MiB / 8192MiB",
  "PackageCount": "97"
}`
	require.NoError(t, os.WriteFile(store.Path, []byte(legacy), 0o644))

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "Microsoft Windows 10.0.19044", rec.OSDescription)
	assert.Equal(t, []string{}, rec.CPUDescriptions)
	assert.Equal(t, []string{"Intel(R) UHD Graphics 620"}, rec.GPUDescriptions)
	assert.Equal(t, sysinfo.Unknown, rec.ScreenResolution, "missing keys keep the default")
}

func TestLoadMissing(t *testing.T) {
	store := newStore(t, "saved-specs.json", sysinfotest.New())

	rec, err := store.Load()
	assert.NoError(t, err)
	assert.Nil(t, rec)
}

func TestFetchCachedRefreshesVolatileSpecs(t *testing.T) {
	fake := sysinfotest.New()
	store := newStore(t, "saved-specs.json", fake)
	cached := sampleRecord()
	require.NoError(t, store.Save(cached))
	before, err := os.ReadFile(store.Path)
	require.NoError(t, err)

	fake.Boot = 59 * time.Second
	rec, err := store.Fetch(context.Background(), true)
	require.NoError(t, err)

	assert.Equal(t, "59 secs", rec.Uptime)
	assert.Equal(t, "8192MiB / 16384MiB", rec.MemoryCapacity)
	assert.Equal(t, cached.OSDescription, rec.OSDescription)
	assert.Equal(t, cached.CPUDescriptions, rec.CPUDescriptions)
	assert.Equal(t, cached.ScreenResolution, rec.ScreenResolution)
	assert.Zero(t, fake.Calls["CPU"], "cached specs are not queried")

	after, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Equal(t, before, after, "refresh is not persisted")
}

func TestFetchWithoutCacheFileCollects(t *testing.T) {
	fake := sysinfotest.New()
	store := newStore(t, "saved-specs.json", fake)

	rec, err := store.Fetch(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "Microsoft Windows 10.0.19045", rec.OSDescription)
	assert.FileExists(t, store.Path)
}

func TestFetchResetOverwrites(t *testing.T) {
	fake := sysinfotest.New()
	store := newStore(t, "saved-specs.json", fake)
	require.NoError(t, store.Save(sampleRecord()))

	rec, err := store.Fetch(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, "WORKGROUP", rec.HostDescription)
	assert.Equal(t, 1, fake.Calls["CPU"])

	saved, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, rec, saved)
}

func TestFetchMalformedCache(t *testing.T) {
	store := newStore(t, "saved-specs.json", sysinfotest.New())
	require.NoError(t, os.WriteFile(store.Path, []byte("{not json"), 0o644))

	rec, err := store.Fetch(context.Background(), true)
	require.Error(t, err)
	assert.Nil(t, rec)
	assert.Contains(t, err.Error(), "cache: decode")

	data, err := os.ReadFile(store.Path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "malformed cache is left untouched")
}

func TestFetchQueryFailureSkipsSave(t *testing.T) {
	fake := sysinfotest.New()
	fake.Errors = map[string]error{"GPU": errors.New("access denied")}
	store := newStore(t, "saved-specs.json", fake)

	_, err := store.Fetch(context.Background(), false)
	require.Error(t, err)
	assert.NoFileExists(t, store.Path)
}

func TestSaveCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "specs.json")
	store := New(path, sysinfo.NewProvider(sysinfotest.New(), nil), nil)

	require.NoError(t, store.Save(sampleRecord()))
	assert.FileExists(t, path)
}
