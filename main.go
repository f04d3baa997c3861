package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/view"
)

func main() {
	config, err := parseConfig(os.Args[1:])
	if err != nil {
		fatal(err)
	}

	board, err := initializeBoard(config, nil)
	if err != nil {
		fatal(err)
	}

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if config.Interactive {
		var ui *view.ConsoleUI
		if ui, err = view.NewConsoleUI(board, config); err != nil {
			fatal(err)
		}
		err = ui.Run(ctx)
	} else {
		err = runTerminal(ctx, board, config, &model.TerminalRenderer{}, os.Stdout)
	}
	if err != nil {
		stop()
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, view.Errorf("error: %v", err))
	os.Exit(1)
}
