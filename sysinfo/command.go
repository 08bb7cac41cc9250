package sysinfo

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// commandTimeout bounds every external command run by the portable platform.
const commandTimeout = 5 * time.Second

// commandRunner runs an external program and returns its stdout.
type commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

// runCommand runs name with a timeout and returns raw stdout bytes.
func runCommand(ctx context.Context, name string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, name, args...).Output()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return out, nil
}
