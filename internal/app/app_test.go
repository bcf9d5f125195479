package app

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/pomodoro/internal/config"
)

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func clearTimerEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{config.EnvWork, config.EnvShortRest, config.EnvLongRest, config.EnvCycles} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := config.Default()
	applyOverrides(&cfg, Options{Work: 50 * time.Minute, Cycles: 2})

	assert.Equal(t, 50*time.Minute, cfg.Work)
	assert.Equal(t, 2, cfg.Cycles)
	assert.Equal(t, config.Default().ShortRest, cfg.ShortRest, "zero override must keep the configured value")
	assert.Equal(t, config.Default().LongRest, cfg.LongRest)
}

func TestRun_HeadlessCyclesAndLogs(t *testing.T) {
	clearTimerEnv(t)
	dir := t.TempDir()

	var stdout, stderr syncBuffer
	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		EnvFile:    filepath.Join(dir, "missing.env"),
		Work:       time.Second,
		ShortRest:  time.Second,
		LongRest:   time.Second,
		Cycles:     2,
		Headless:   true,
		TickEvery:  5 * time.Millisecond,
		Stdout:     &stdout,
		Stderr:     &stderr,
	})
	require.NoError(t, err)

	logs := stderr.String()
	assert.Contains(t, logs, "session started")
	assert.Contains(t, logs, "work started")
	assert.Contains(t, logs, "work ended")
	assert.Contains(t, logs, "session finished")
	assert.Contains(t, logs, "session=")
	assert.Contains(t, stdout.String(), "\a", "bell is enabled by default")
}

func TestRun_EnvFileOverridesConfig(t *testing.T) {
	clearTimerEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(config.EnvCycles+"=0\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv(config.EnvCycles) })

	err := Run(context.Background(), Options{
		ConfigPath: filepath.Join(dir, "missing.toml"),
		EnvFile:    envFile,
		Headless:   true,
		Stderr:     &syncBuffer{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycles per long rest must be at least 1")
}

func TestRun_BadConfigFails(t *testing.T) {
	clearTimerEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("work = \"soon\"\n"), 0o644))

	err := Run(context.Background(), Options{ConfigPath: path, Headless: true, Stderr: &syncBuffer{}})
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load config:"), "err = %v", err)
}

func TestRun_FlagOverridesReplaceBadFileValue(t *testing.T) {
	clearTimerEnv(t)
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("cycles = 0\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	var stderr syncBuffer
	err := Run(ctx, Options{
		ConfigPath: path,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Cycles:     2,
		Headless:   true,
		Stdout:     &syncBuffer{},
		Stderr:     &stderr,
	})
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "cycles=2")
}

func TestRun_WaitsForSoundCommands(t *testing.T) {
	clearTimerEnv(t)
	dir := t.TempDir()
	marker := filepath.Join(dir, "played")
	path := filepath.Join(dir, "config.toml")
	body := "[sounds]\nwork_started = \"sleep 0.2; touch '" + marker + "'\"\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := Run(ctx, Options{
		ConfigPath: path,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Headless:   true,
		Stdout:     &syncBuffer{},
		Stderr:     &syncBuffer{},
	})
	require.NoError(t, err)

	_, statErr := os.Stat(marker)
	assert.NoError(t, statErr, "Run returned before the work_started command finished")
}

func TestRun_SoundCommandWaitIsBounded(t *testing.T) {
	clearTimerEnv(t)
	saved := commandGrace
	commandGrace = 20 * time.Millisecond
	t.Cleanup(func() { commandGrace = saved })

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[sounds]\nwork_started = \"sleep 1\"\n"), 0o644))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	var stderr syncBuffer
	start := time.Now()
	err := Run(ctx, Options{
		ConfigPath: path,
		PrefsPath:  filepath.Join(dir, "prefs.toml"),
		Headless:   true,
		Stdout:     &syncBuffer{},
		Stderr:     &stderr,
	})
	require.NoError(t, err)
	assert.Less(t, time.Since(start), 900*time.Millisecond)
	assert.Contains(t, stderr.String(), "sound commands still running at exit")
}

func TestWaitFor(t *testing.T) {
	assert.True(t, waitFor(func() {}, time.Second))

	block := make(chan struct{})
	defer close(block)
	assert.False(t, waitFor(func() { <-block }, 10*time.Millisecond))
}

func TestNewLogger_DebugAndSession(t *testing.T) {
	var buf bytes.Buffer

	newLogger(&buf, false).Debug("hidden")
	assert.Empty(t, buf.String())

	newLogger(&buf, true).Debug("shown", "remaining", "00:01")
	out := buf.String()
	assert.Contains(t, out, "shown")
	assert.Contains(t, out, "session=")
	assert.Contains(t, out, "remaining=00:01")
}

func TestOpenLogFile_CreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "pomodoro.log")
	f, err := openLogFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.WriteString("line\n")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "line\n", string(data))
}
