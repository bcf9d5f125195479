package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/pomodoro/internal/pomodoro"
)

// Config captures the timer settings and the ambient paths the app needs.
type Config struct {
	Work      time.Duration
	ShortRest time.Duration
	LongRest  time.Duration
	Cycles    int
	LogFile   string
	Sounds    Sounds
}

// Sounds holds the shell commands run on each notification event.
type Sounds struct {
	WorkStarted string
	WorkEnded   string
}

const (
	defaultConfigPath = "~/.config/pomodoro/config.toml"
	defaultLogFile    = "~/.local/state/pomodoro/pomodoro.log"
	defaultWork       = 25 * time.Minute
	defaultShortRest  = 5 * time.Minute
	defaultLongRest   = 15 * time.Minute
	defaultCycles     = 4
)

// Environment variables that override the config file.
const (
	EnvWork      = "POMODORO_WORK"
	EnvShortRest = "POMODORO_SHORT_REST"
	EnvLongRest  = "POMODORO_LONG_REST"
	EnvCycles    = "POMODORO_CYCLES"
)

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Work:      defaultWork,
		ShortRest: defaultShortRest,
		LongRest:  defaultLongRest,
		Cycles:    defaultCycles,
		LogFile:   mustExpand(defaultLogFile),
	}
}

// Load locates and parses the config, falling back to defaults when missing,
// then applies POMODORO_* environment overrides. The result is not validated;
// callers layer their own overrides on top and call Validate last.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := cfg.readTOML(file); err != nil {
			return Config{}, err
		}
	}

	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) readTOML(r io.Reader) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Work      string `toml:"work"`
		ShortRest string `toml:"short_rest"`
		LongRest  string `toml:"long_rest"`
		Cycles    *int   `toml:"cycles"`
		LogFile   string `toml:"log_file"`
		Sounds    struct {
			WorkStarted string `toml:"work_started"`
			WorkEnded   string `toml:"work_ended"`
		} `toml:"sounds"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if err := setDuration(&c.Work, "work", raw.Work); err != nil {
		return err
	}
	if err := setDuration(&c.ShortRest, "short_rest", raw.ShortRest); err != nil {
		return err
	}
	if err := setDuration(&c.LongRest, "long_rest", raw.LongRest); err != nil {
		return err
	}
	if raw.Cycles != nil {
		c.Cycles = *raw.Cycles
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		c.LogFile = mustExpand(logFile)
	}
	c.Sounds.WorkStarted = strings.TrimSpace(raw.Sounds.WorkStarted)
	c.Sounds.WorkEnded = strings.TrimSpace(raw.Sounds.WorkEnded)
	return nil
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if err := setDuration(&c.Work, EnvWork, getenv(EnvWork)); err != nil {
		return err
	}
	if err := setDuration(&c.ShortRest, EnvShortRest, getenv(EnvShortRest)); err != nil {
		return err
	}
	if err := setDuration(&c.LongRest, EnvLongRest, getenv(EnvLongRest)); err != nil {
		return err
	}
	if v := strings.TrimSpace(getenv(EnvCycles)); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parse %s: %w", EnvCycles, err)
		}
		c.Cycles = n
	}
	return nil
}

// Validate rejects durations below one second and cycle counts below one.
func (c Config) Validate() error {
	return c.Timer().Validate()
}

// Timer converts the config into the state machine's whole-second form.
func (c Config) Timer() pomodoro.Config {
	return pomodoro.Config{
		WorkSeconds:       int(c.Work / time.Second),
		ShortRestSeconds:  int(c.ShortRest / time.Second),
		LongRestSeconds:   int(c.LongRest / time.Second),
		CyclesPerLongRest: c.Cycles,
	}
}

func setDuration(dst *time.Duration, name, value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	*dst = d
	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
