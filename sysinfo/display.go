package sysinfo

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"howett.net/plist"
)

// displayProfile is the subset of `system_profiler -xml SPDisplaysDataType`
// output used for the GPU and Resolution specs.
type displayProfile []struct {
	Items []struct {
		Model    string `plist:"sppci_model"`
		Displays []struct {
			Pixels     string `plist:"_spdisplays_pixels"`
			Resolution string `plist:"_spdisplays_resolution"`
			Main       string `plist:"spdisplays_main"`
		} `plist:"spdisplays_ndrvs"`
	} `plist:"_items"`
}

func decodeDisplayProfile(data []byte) (displayProfile, error) {
	var profile displayProfile
	if err := plist.NewDecoder(bytes.NewReader(data)).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decode display profile: %w", err)
	}
	return profile, nil
}

// GPUs lists the model of every graphics adapter in the profile.
func (p displayProfile) GPUs() []string {
	gpus := []string{}
	for _, section := range p {
		for _, item := range section.Items {
			if m := strings.TrimSpace(item.Model); m != "" {
				gpus = append(gpus, m)
			}
		}
	}
	return gpus
}

// Resolution returns the main display's size, or the first display's when
// none is flagged as main.
func (p displayProfile) Resolution() (width, height int, ok bool) {
	first := true
	for _, section := range p {
		for _, item := range section.Items {
			for _, d := range item.Displays {
				size := d.Pixels
				if size == "" {
					size = d.Resolution
				}
				w, h, parsed := parseDimensions(size)
				if !parsed {
					continue
				}
				if d.Main == "spdisplays_yes" {
					return w, h, true
				}
				if first {
					width, height, ok, first = w, h, true, false
				}
			}
		}
	}
	return width, height, ok
}

// parseDimensions reads "2560 x 1600", "2560 x 1600 Retina" or "1920x1080".
func parseDimensions(s string) (width, height int, ok bool) {
	s = strings.ReplaceAll(s, " ", "")
	if _, err := fmt.Sscanf(s, "%dx%d", &width, &height); err != nil {
		return 0, 0, false
	}
	return width, height, width > 0 && height > 0
}

// drmResolution returns the preferred mode of the first connected connector
// under root (normally /sys/class/drm), in connector name order.
func drmResolution(root string) (width, height int, err error) {
	statuses, err := filepath.Glob(filepath.Join(root, "card*-*", "status"))
	if err != nil {
		return 0, 0, err
	}
	sort.Strings(statuses)

	for _, status := range statuses {
		state, err := os.ReadFile(status)
		if err != nil || strings.TrimSpace(string(state)) != "connected" {
			continue
		}
		modes, err := os.Open(filepath.Join(filepath.Dir(status), "modes"))
		if err != nil {
			continue
		}
		scanner := bufio.NewScanner(modes)
		// The first listed mode is the preferred one.
		if scanner.Scan() {
			if w, h, ok := parseDimensions(scanner.Text()); ok {
				_ = modes.Close()
				return w, h, nil
			}
		}
		_ = modes.Close()
	}
	return 0, 0, ErrUnsupported
}
