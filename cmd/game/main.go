package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/tomz197/spaceship/internal/config"
	"github.com/tomz197/spaceship/internal/draw"
	"github.com/tomz197/spaceship/internal/loop/client"
	"github.com/tomz197/spaceship/internal/session"
)

func main() {
	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to enable raw mode: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	presenter := draw.NewTerminal(os.Stdout, draw.TerminalOptions{
		Mute: config.GetEnvBool("SPACESHIP_MUTE", false),
	})
	presenter.Start()
	defer presenter.Stop()

	c := client.NewClient(bufio.NewReader(os.Stdin), presenter, client.Options{
		Session: session.OptionsFromEnv(logger),
		Logger:  logger,
	})
	if err := c.Run(ctx); err != nil {
		logger.Error("game error", "err", err)
		presenter.Stop()
		_ = term.Restore(fd, oldState)
		fmt.Fprintf(os.Stderr, "game error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger logs to SPACESHIP_LOG_FILE when set. The terminal belongs to
// the game, so without a file nothing is logged.
func newLogger() (*log.Logger, func(), error) {
	path := config.GetEnv("SPACESHIP_LOG_FILE", "")
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	logger := log.NewWithOptions(f, log.Options{ReportTimestamp: true})
	if config.GetEnvBool("SPACESHIP_DEBUG", false) {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}
