package sysinfo

import (
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
)

// describeCPUs collapses per-logical-CPU entries into one description per
// physical package, in the order packages first appear. Each description is
// the model name followed by version text in the style of the Windows
// processor Version property ("GenuineIntel Family 6 Model 158 Stepping 10").
func describeCPUs(infos []cpu.InfoStat) []string {
	seen := make(map[string]bool)
	descriptions := []string{}

	for _, info := range infos {
		if seen[info.PhysicalID] {
			continue
		}
		seen[info.PhysicalID] = true

		parts := []string{strings.TrimSpace(info.ModelName), strings.TrimSpace(info.VendorID)}
		if info.Family != "" {
			parts = append(parts, "Family "+info.Family)
		}
		if info.Model != "" {
			parts = append(parts, "Model "+info.Model)
		}
		if info.Family != "" || info.Model != "" {
			parts = append(parts, fmt.Sprintf("Stepping %d", info.Stepping))
		}

		descriptions = append(descriptions, joinNonEmpty(parts, " "))
	}
	return descriptions
}

func joinNonEmpty(parts []string, sep string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
