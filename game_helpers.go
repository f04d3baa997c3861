package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/integrii/flaggy"
	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
	"github.com/sheikhrachel/go-life/view"
)

const defaultConfigFile = "config.json"

// display is what the terminal loop draws to each tick
type display interface {
	Clear()
	Display(b *model.Board) error
}

// parseConfig builds the config from an optional JSON file overridden by flags
func parseConfig(args []string) (utils.Config, error) {
	path, explicit := configPath(args)
	config, err := utils.LoadConfig(path)
	if err != nil {
		if explicit || !os.IsNotExist(errors.Cause(err)) {
			return config, err
		}
		config = utils.DefaultConfig()
	}

	p := flaggy.NewParser("go-life")
	p.Description = "Conway's Game of Life in the terminal"
	p.ShowHelpOnUnexpected = true
	p.String(&path, "c", "config", "JSON config file; flags override its values")
	p.Int(&config.Width, "", "width", "Board width when not loading a snapshot")
	p.Int(&config.Height, "", "height", "Board height when not loading a snapshot")
	p.Float64(&config.Probability, "p", "probability", "Chance that a cell starts alive (0.0-1.0)")
	p.UInt64(&config.Seed, "s", "seed", "Random seed, 0 for a different board every run")
	p.Int(&config.TickRate, "t", "tickrate", "Generations per second")
	p.String(&config.Load, "", "load", "Load the board from a snapshot file")
	p.String(&config.Save, "", "save", "Save the initial board to a snapshot file")
	p.Int(&config.Repopulation, "r", "repopulation", "Exact neighbor count for a dead cell to be born")
	p.Int(&config.Overpopulation, "o", "overpopulation", "Most neighbors a live cell survives with")
	p.Int(&config.Underpopulation, "u", "underpopulation", "Fewest neighbors a live cell survives with")
	p.Bool(&config.Interactive, "n", "interactive", "Start the interactive display")
	p.Bool(&config.ShowStats, "", "stats", "Print a status line every generation")
	p.Int(&config.MaxGenerations, "", "max-generations", "Stop after this many generations, 0 runs forever")

	if err = p.ParseArgs(args); err != nil {
		return config, errors.Wrap(err, "[parseConfig] failed to parse flags")
	}

	return config, errors.Wrap(config.Validate(), "[parseConfig] invalid configuration")
}

// configPath finds the config file flag ahead of flag parsing so the file can supply defaults
func configPath(args []string) (string, bool) {
	for i, arg := range args {
		switch {
		case arg == "-c" || arg == "--config":
			if i+1 < len(args) {
				return args[i+1], true
			}
		case strings.HasPrefix(arg, "--config="):
			return strings.TrimPrefix(arg, "--config="), true
		case strings.HasPrefix(arg, "-c="):
			return strings.TrimPrefix(arg, "-c="), true
		}
	}
	return defaultConfigFile, false
}

// initializeBoard loads or seeds the board and saves it when asked
func initializeBoard(config utils.Config, entropy model.Entropy) (*model.Board, error) {
	var (
		board *model.Board
		err   error
	)
	if config.Load != "" {
		if board, err = model.Load(config.Load); err != nil {
			return nil, err
		}
	} else {
		board = model.NewRandomBoard(config.Width, config.Height, config.Probability, config.Seed, entropy)
	}

	if config.Save != "" {
		if err = board.Save(config.Save); err != nil {
			return nil, err
		}
	}

	return board, nil
}

// runTerminal renders, sleeps and advances until ctx is done or the generation limit is hit
func runTerminal(ctx context.Context, board *model.Board, config utils.Config, d display, out io.Writer) error {
	var (
		stats     = utils.NewStats()
		interval  = config.TickInterval()
		lastFrame = time.Now()
	)

	for generation := 0; ; generation++ {
		frameStart := time.Now()
		stats.Update(generation, board.LiveCells(), board.Hash(), frameStart.Sub(lastFrame))
		lastFrame = frameStart

		d.Clear()
		if config.ShowStats {
			fmt.Fprintln(out, view.StatusLine(stats))
		}
		if err := d.Display(board); err != nil {
			return errors.Wrap(err, "[runTerminal] failed to render")
		}

		if config.MaxGenerations > 0 && generation >= config.MaxGenerations {
			fmt.Fprintf(out, "Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		select {
		case <-ctx.Done():
			fmt.Fprintf(out, "\nShutting down after %d generations in %.1f seconds\n",
				generation, time.Since(stats.StartTime).Seconds())
			return nil
		case <-time.After(interval):
		}

		board.Advance(config.Thresholds)
	}
}
