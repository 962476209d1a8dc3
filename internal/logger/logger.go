// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package logger holds the process-wide structured logger.
// Records go to stderr so they never mix with the report on stdout.
package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	Debug  bool
	Output io.Writer // defaults to os.Stderr
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs a text logger built from cfg and returns a function
// restoring the discard logger.
func Setup(cfg Config) func() {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}

	level := slog.LevelWarn
	if cfg.Debug {
		level = slog.LevelDebug
	}

	h := slog.NewTextHandler(out, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	L().Debug("logger.initialized", "debug", cfg.Debug)

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = discard()
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
