package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/five82/pomodoro/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "override config path (optional)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	envFile := flag.String("env", ".env", "dotenv file with POMODORO_* overrides (optional)")
	work := flag.Duration("work", 0, "work session length, e.g. 25m (optional)")
	short := flag.Duration("short", 0, "short rest length (optional)")
	long := flag.Duration("long", 0, "long rest length (optional)")
	cycles := flag.Int("cycles", 0, "work sessions per long rest (optional)")
	headless := flag.Bool("headless", false, "run without the TUI and log transitions to stderr")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath: *configPath,
		PrefsPath:  *prefsPath,
		EnvFile:    *envFile,
		Work:       *work,
		ShortRest:  *short,
		LongRest:   *long,
		Cycles:     *cycles,
		Headless:   *headless,
		Debug:      *debug,
	}

	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "pomodoro: %v\n", err)
		return 1
	}
	return 0
}
