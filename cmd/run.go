package cmd

import (
	"context"
	"fmt"

	"neofetch/cache"
	"neofetch/config"
	"neofetch/logging"
	"neofetch/render"
	"neofetch/sysinfo"
)

// run executes one invocation: fetch the specs, then draw them once, as a
// subset, or continuously.
func run(ctx context.Context, app config.App, opts Options) error {
	log := logging.New(opts.ErrOut, app.Verbose)
	app.Accent = config.ResolveColor(app.Color, log)

	var sw *Stopwatch
	if app.Time && !app.Live {
		sw = StartStopwatch(opts.Now)
	}

	platform := opts.Platform
	if platform == nil {
		platform = sysinfo.NewPlatform(log)
	}
	provider := sysinfo.NewProvider(platform, log)
	store := cache.New(app.CacheFile, provider, log)

	log.Debug("fetching specs...")
	rec, err := store.Fetch(ctx, !app.Reset)
	if err != nil {
		return err
	}

	if app.Pause && app.Verbose {
		log.Debug("[-L] press any key to continue...")
		sw.Stop()
		if err := waitForKey(opts.In); err != nil {
			return err
		}
		sw.Start()
	}

	shell, err := provider.Shell(ctx)
	if err != nil {
		return err
	}

	r := render.New(opts.Out, app.Accent, opts.Identity, log)
	r.Clock = opts.Now
	if app.Verbose {
		r.Clear()
	}

	if app.Live {
		fetch := func(ctx context.Context) (*sysinfo.SpecRecord, error) {
			return store.Fetch(ctx, false)
		}
		return r.Live(ctx, rec, fetch, shell, app.Interval)
	}

	r.Banner(opts.Now())
	if len(app.Specific) > 0 {
		err = r.Subset(ctx, provider, app.Specific)
	} else {
		r.Full(rec, shell)
	}
	if err != nil {
		return err
	}

	if sw != nil {
		elapsed := sw.Elapsed()
		fmt.Fprintln(opts.Out)
		r.SpecLine("real", fmt.Sprintf("%s (%dms)", elapsed, elapsed.Milliseconds()))
	}
	return nil
}
