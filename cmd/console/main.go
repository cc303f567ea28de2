package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-minimax/internal/console"
	"github.com/rocketscienceinc/tictactoe-minimax/internal/service"
)

// main - plays a single game against the bot on the terminal.
func main() {
	level := slog.LevelWarn
	if os.Getenv("LOG_LEVEL") == "debug" {
		level = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	session := console.NewSession(logger, service.NewBotService(logger), os.Stdin, os.Stdout)
	if _, err := session.Play(); err != nil {
		if errors.Is(err, console.ErrInputClosed) {
			fmt.Fprintln(os.Stdout)
			os.Exit(0)
		}

		fmt.Fprintf(os.Stderr, "game failed: %v\n", err)
		os.Exit(1)
	}
}
