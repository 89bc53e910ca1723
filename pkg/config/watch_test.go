package config

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatchReloadsOnWrite(t *testing.T) {
	path := writeConfig(t, "major_prompt: before\n")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, logger, func(cfg *Config) {
			reloaded <- cfg
		})
	}()

	// Give the watcher a moment to register before the write.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("major_prompt: after\n"), 0o644))

	select {
	case cfg := <-reloaded:
		assert.Equal(t, "after", cfg.MajorPrompt)
	case <-time.After(5 * time.Second):
		t.Fatal("no reload observed")
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(5 * time.Second):
		t.Fatal("watcher did not stop")
	}
}

func TestWatchKeepsLastGoodConfigOnBadWrite(t *testing.T) {
	path := writeConfig(t, "major_prompt: good\n")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reloaded := make(chan *Config, 4)
	go func() {
		_ = Watch(ctx, path, logger, func(cfg *Config) {
			reloaded <- cfg
		})
	}()

	time.Sleep(100 * time.Millisecond)

	// A broken write is skipped; the following good write lands.
	require.NoError(t, os.WriteFile(path, []byte("major_prompt: [broken\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("major_prompt: fixed\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case cfg := <-reloaded:
			if cfg.MajorPrompt == "fixed" {
				return
			}
			t.Fatalf("unexpected reload %q", cfg.MajorPrompt)
		case <-deadline:
			t.Fatal("good config never applied")
		}
	}
}
