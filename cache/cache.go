// Package cache persists the collected spec record between runs so the
// expensive queries only run on the first start or on request.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"neofetch/logging"
	"neofetch/sysinfo"
)

// Store reads and writes one cache file.
type Store struct {
	// Path selects the codec: .yaml and .yml files hold YAML, anything else
	// holds indented JSON.
	Path     string
	Provider *sysinfo.Provider
	Log      *slog.Logger
}

// New returns a Store for path.
func New(path string, provider *sysinfo.Provider, log *slog.Logger) *Store {
	if log == nil {
		log = logging.Discard()
	}
	return &Store{Path: path, Provider: provider, Log: log}
}

func (s *Store) isYAML() bool {
	switch strings.ToLower(filepath.Ext(s.Path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// Load reads the cache file. A missing file yields a nil record and no
// error; a file that cannot be decoded is an error.
func (s *Store) Load() (*sysinfo.SpecRecord, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cache: read %s: %w", s.Path, err)
	}

	rec := sysinfo.NewSpecRecord()
	if s.isYAML() {
		err = yaml.Unmarshal(data, rec)
	} else {
		err = json.Unmarshal(data, rec)
	}
	if err != nil {
		return nil, fmt.Errorf("cache: decode %s: %w", s.Path, err)
	}

	// An explicit null in the file clears the default slices.
	if rec.CPUDescriptions == nil {
		rec.CPUDescriptions = []string{}
	}
	if rec.GPUDescriptions == nil {
		rec.GPUDescriptions = []string{}
	}
	return rec, nil
}

// Save creates or overwrites the cache file with rec.
func (s *Store) Save(rec *sysinfo.SpecRecord) error {
	var (
		data []byte
		err  error
	)
	if s.isYAML() {
		data, err = yaml.Marshal(rec)
	} else {
		data, err = json.MarshalIndent(rec, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("cache: encode: %w", err)
	}

	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("cache: %w", err)
		}
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return fmt.Errorf("cache: write %s: %w", s.Path, err)
	}
	return nil
}

// Fetch returns the record to render. With useCache set and a cache file
// present, the cached record is returned with uptime and memory queried
// again; the refresh is not written back. Otherwise every spec is queried
// and the result replaces the cache file.
func (s *Store) Fetch(ctx context.Context, useCache bool) (*sysinfo.SpecRecord, error) {
	if useCache {
		rec, err := s.Load()
		if err != nil {
			return nil, err
		}
		if rec != nil {
			s.Log.Debug("loaded cached specs", "path", s.Path)
			if err := s.Provider.Refresh(ctx, rec); err != nil {
				return nil, err
			}
			return rec, nil
		}
		s.Log.Debug("no cached specs", "path", s.Path)
	}

	rec, err := s.Provider.Collect(ctx)
	if err != nil {
		return nil, err
	}
	if err := s.Save(rec); err != nil {
		return nil, err
	}
	s.Log.Debug("saved specs", "path", s.Path)
	return rec, nil
}
