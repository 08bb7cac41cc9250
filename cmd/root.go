// Package cmd implements the neofetch command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"neofetch/config"
	"neofetch/sysinfo"
)

// Options carries the process resources a run uses. Tests replace them.
type Options struct {
	Out    io.Writer
	ErrOut io.Writer
	In     io.Reader

	// Platform answers the spec queries. nil selects the platform of the
	// running operating system.
	Platform sysinfo.Platform
	Identity sysinfo.Identity
	Now      func() time.Time
}

// DefaultOptions wires the real terminal. The platform is chosen when the
// command runs.
func DefaultOptions() Options {
	return Options{
		Out:      os.Stdout,
		ErrOut:   os.Stderr,
		In:       os.Stdin,
		Identity: sysinfo.CurrentIdentity(),
		Now:      time.Now,
	}
}

// UsageError reports command-line arguments that could not be parsed.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string { return e.Err.Error() }
func (e *UsageError) Unwrap() error { return e.Err }

// NewRootCommand returns the neofetch command. ran is set once the command
// body starts, which tells a plain run apart from --help.
func NewRootCommand(opts Options, ran *bool) *cobra.Command {
	app := config.App{}

	root := &cobra.Command{
		Use:   "neofetch [flags]",
		Short: "Show information about this machine",
		Long: `neofetch prints the operating system, kernel, uptime, shell, packages,
resolution, processors, graphics cards and memory usage of this machine
below a banner. Results are cached; only uptime and memory are queried
again on later runs unless --reset is given.`,
		Example: `  neofetch
  neofetch -c SkyBlue -t
  neofetch -s Uptime,MemoryStats
  neofetch -s Uptime NotARealSpec CPU`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 && len(app.Specific) == 0 {
				return &UsageError{Err: fmt.Errorf("unexpected arguments %q (did you mean --specific?)", args)}
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			*ran = true
			app.Specific = append(app.Specific, args...)
			return run(cmd.Context(), app, opts)
		},
	}

	flags := root.Flags()
	flags.SortFlags = false
	flags.BoolVarP(&app.Verbose, "verbose", "v", false, "print diagnostics to stderr")
	flags.StringVarP(&app.Color, "color", "c", config.EnvDefault(config.EnvColor, config.DefaultColor),
		"accent color for spec names")
	flags.BoolVarP(&app.Reset, "reset", "r", false, "query every spec again instead of using the cache")
	flags.BoolVarP(&app.Pause, "let-me-read", "L", false, "with --verbose, wait for a key before drawing")
	flags.BoolVarP(&app.Live, "live", "l", false, "redraw continuously until interrupted")
	flags.BoolVarP(&app.Time, "time", "t", false, "print the elapsed time after the output")
	flags.StringSliceVarP(&app.Specific, "specific", "s", nil,
		"only show the named specs, in order (Host, Os, Uptime, MemoryStats, Kernel, CPU, GPU, Packages, Resolution)")
	flags.StringVar(&app.CacheFile, "cache-file", config.EnvDefault(config.EnvCacheFile, config.DefaultCacheFile),
		"spec cache location (.json, .yaml or .yml)")
	flags.DurationVar(&app.Interval, "interval", 0, "delay between live frames")

	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &UsageError{Err: err}
	})
	root.SetIn(opts.In)
	root.SetOut(opts.Out)
	root.SetErr(opts.ErrOut)
	return root
}

// Execute runs the command with args and returns the process exit code.
func Execute(ctx context.Context, args []string, opts Options) int {
	ran := false
	root := NewRootCommand(opts, &ran)
	root.SetArgs(args)

	err := root.ExecuteContext(ctx)

	var usageErr *UsageError
	switch {
	case errors.As(err, &usageErr):
		fmt.Fprintf(opts.ErrOut, "%v\n\n", usageErr)
		fmt.Fprint(opts.ErrOut, root.UsageString())
		helpExit(opts.Out)
		return 0
	case err != nil:
		fmt.Fprintf(opts.ErrOut, "Error: %v\n", err)
		return 1
	case !ran:
		helpExit(opts.Out)
	}
	return 0
}

func helpExit(out io.Writer) {
	fmt.Fprintf(out, "[%s] parser displayed help message, exiting.\n", pterm.NewRGB(0, 0, 255).Sprint("neofetch"))
}
