package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	"bookmenu/internal/config"
	"bookmenu/internal/console"
	"bookmenu/internal/library"
	"bookmenu/internal/store"
)

func main() {
	cfg := config.Load()
	logger := newLogger(os.Stderr, cfg)

	if err := run(context.Background(), os.Stdin, os.Stdout, cfg, logger, store.Seed); err != nil {
		if errors.Is(err, errSeed) {
			log.Fatalf("cannot start: %v", err)
		}
		logger.Error("session ended with error", "error", err)
	}
}

var errSeed = errors.New("seed sample data")

// seedFunc fills an empty store before the session starts.
type seedFunc func(*store.Memory) error

func run(ctx context.Context, stdin io.Reader, stdout io.Writer, cfg config.Config, logger *slog.Logger, seed seedFunc) error {
	mem := store.NewMemory()
	if err := seed(mem); err != nil {
		return fmt.Errorf("%w: %w", errSeed, err)
	}
	books, copies, customers := mem.Counts()
	logger.Debug("sample data loaded", "books", books, "copies", copies, "customers", customers)

	svc := library.NewService(mem, mem, mem, logger)
	menu := console.NewMenu(svc, console.NewInput(stdin, stdout), stdout, console.NewRenderer(cfg.Output), logger)
	return menu.Run(ctx)
}

func newLogger(w io.Writer, cfg config.Config) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: cfg.LogLevel}))
	for key, value := range cfg.Rejected {
		logger.Error("ignoring unrecognised setting", "key", key, "value", value)
	}
	return logger
}
