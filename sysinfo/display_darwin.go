//go:build darwin

package sysinfo

import "context"

func displays(ctx context.Context) (displayProfile, error) {
	out, err := runCommand(ctx, "system_profiler", "-xml", "SPDisplaysDataType")
	if err != nil {
		return nil, err
	}
	return decodeDisplayProfile(out)
}

// gpus returns the chipset model of every graphics adapter.
func gpus(ctx context.Context) ([]string, error) {
	profile, err := displays(ctx)
	if err != nil {
		return nil, err
	}
	return profile.GPUs(), nil
}

func resolution(ctx context.Context) (int, int, error) {
	profile, err := displays(ctx)
	if err != nil {
		return 0, 0, err
	}
	w, h, ok := profile.Resolution()
	if !ok {
		return 0, 0, ErrUnsupported
	}
	return w, h, nil
}
