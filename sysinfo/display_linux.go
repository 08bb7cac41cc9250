//go:build linux

package sysinfo

import (
	"context"
	"strings"

	"github.com/jaypipes/ghw"
)

const drmRoot = "/sys/class/drm"

// gpus returns "<vendor> <product>" for every graphics card found on the
// PCI bus.
func gpus(context.Context) ([]string, error) {
	info, err := ghw.GPU(ghw.WithDisableWarnings())
	if err != nil {
		return nil, err
	}

	cards := []string{}
	for _, card := range info.GraphicsCards {
		vendor := "Unknown"
		product := "Invalid"
		if card.DeviceInfo != nil {
			if card.DeviceInfo.Vendor != nil {
				vendor = card.DeviceInfo.Vendor.Name
			}
			if card.DeviceInfo.Product != nil {
				product = card.DeviceInfo.Product.Name
			}
		}
		cards = append(cards, strings.TrimSpace(vendor+" "+product))
	}
	return cards, nil
}

func resolution(context.Context) (int, int, error) {
	return drmResolution(drmRoot)
}
