package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"github.com/five82/pomodoro/internal/config"
	"github.com/five82/pomodoro/internal/notify"
	"github.com/five82/pomodoro/internal/prefs"
	"github.com/five82/pomodoro/internal/state"
	"github.com/five82/pomodoro/internal/ui"
)

// Options configure the Pomodoro application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/pomodoro/prefs.toml
	EnvFile    string // optional dotenv file with POMODORO_* overrides

	// Per-run overrides; zero leaves the configured value.
	Work      time.Duration
	ShortRest time.Duration
	LongRest  time.Duration
	Cycles    int

	Headless  bool
	Debug     bool
	TickEvery time.Duration // zero uses one second

	Stdout io.Writer // terminal bell; defaults to os.Stdout
	Stderr io.Writer // headless logs; defaults to os.Stderr
}

// Run boots the timer and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	if opts.EnvFile != "" {
		// a missing dotenv file is normal; real environment variables win
		_ = godotenv.Load(opts.EnvFile)
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	applyOverrides(&cfg, opts)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	stdout := opts.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	logOut := stderr
	if !opts.Headless {
		f, err := openLogFile(cfg.LogFile)
		if err != nil {
			return err
		}
		defer f.Close()
		logOut = f
	}
	logger := newLogger(logOut, opts.Debug)

	userPrefs := prefs.Load(opts.PrefsPath)

	bell := notify.NewBell(stdout, userPrefs.BellEnabled())
	sounds := &notify.Command{
		WorkStarted: cfg.Sounds.WorkStarted,
		WorkEnded:   cfg.Sounds.WorkEnded,
		Logger:      logger,
	}
	store := state.NewStore(cfg.Timer(), notify.Multi{
		notify.Log{Logger: logger},
		bell,
		sounds,
	})

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	interval := defaultTickInterval
	if opts.TickEvery > 0 {
		interval = opts.TickEvery
	}
	ticker := StartTicker(ctx, store, interval, logger)

	logger.Info("session started",
		"work", cfg.Work,
		"short_rest", cfg.ShortRest,
		"long_rest", cfg.LongRest,
		"cycles", cfg.Cycles,
		"headless", opts.Headless,
	)

	if opts.Headless {
		store.StartWork()
		<-ctx.Done()
	} else {
		err = ui.Run(ui.Options{
			Context:   ctx,
			Store:     store,
			ThemeName: userPrefs.Theme,
			PrefsPath: opts.PrefsPath,
			Prefs:     userPrefs,
			Bell:      bell,
			Logger:    logger,
		})
	}

	cancel()
	<-ticker
	if !waitFor(sounds.Wait, commandGrace) {
		logger.Warn("sound commands still running at exit", "waited", commandGrace)
	}
	logSummary(logger, store.Snapshot())
	return err
}

// commandGrace bounds how long Run waits for sound commands on exit.
var commandGrace = 2 * time.Second

// waitFor runs wait and reports whether it returned within d.
func waitFor(wait func(), d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		wait()
		close(done)
	}()
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-done:
		return true
	case <-timer.C:
		return false
	}
}

func applyOverrides(cfg *config.Config, opts Options) {
	if opts.Work > 0 {
		cfg.Work = opts.Work
	}
	if opts.ShortRest > 0 {
		cfg.ShortRest = opts.ShortRest
	}
	if opts.LongRest > 0 {
		cfg.LongRest = opts.LongRest
	}
	if opts.Cycles > 0 {
		cfg.Cycles = opts.Cycles
	}
}

func logSummary(logger *log.Logger, snap state.Snapshot) {
	logger.Info("session finished",
		"phase", snap.Phase,
		"pomodoros", snap.CompletedWorkSessions,
		"cycles", snap.CompletedLongCycles,
		"worked", time.Duration(snap.TotalWorkedSeconds)*time.Second,
	)
}
