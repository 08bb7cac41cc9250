// Package main provides the neofetch command-line tool for displaying host
// information below an ASCII art banner.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"neofetch/cmd"
)

// main runs the command until it completes or the process is interrupted.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := cmd.Execute(ctx, os.Args[1:], cmd.DefaultOptions())
	cancel()
	os.Exit(code)
}
