//go:build windows
// +build windows

package sysinfo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"syscall"
	"time"
)

// cimTimeout bounds every PowerShell/CIM query.
const cimTimeout = 5 * time.Second

// runPowerShell runs a PowerShell command with a timeout and returns raw
// stdout bytes. The command is executed with -NoProfile and the window hidden.
func runPowerShell(ctx context.Context, cmd string, timeout time.Duration) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	c := exec.CommandContext(ctx, "powershell", "-NoProfile", "-NonInteractive", "-Command", cmd)
	c.SysProcAttr = &syscall.SysProcAttr{HideWindow: true}
	out, err := c.Output()
	if err != nil {
		return nil, fmt.Errorf("powershell: %w", err)
	}
	return out, nil
}

// runPowerShellJSON runs a PowerShell command expected to emit JSON and
// unmarshals it into v.
func runPowerShellJSON(ctx context.Context, cmd string, timeout time.Duration, v interface{}) error {
	out, err := runPowerShell(ctx, cmd, timeout)
	if err != nil {
		return err
	}
	out = bytes.TrimSpace(out)
	if len(out) == 0 {
		// ConvertTo-Json prints nothing for an empty collection.
		out = []byte("[]")
	}
	if err := json.Unmarshal(out, v); err != nil {
		return fmt.Errorf("powershell: decode output: %w", err)
	}
	return nil
}

// cimQuery builds a command that selects properties of every instance of a
// CIM class and always emits a JSON array, even for a single instance.
func cimQuery(class string, properties string) string {
	return fmt.Sprintf("ConvertTo-Json -Compress -InputObject @(Get-CimInstance %s | Select-Object -Property %s)", class, properties)
}
