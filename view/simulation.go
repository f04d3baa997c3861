package view

import (
	"time"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/rules"
	"github.com/sheikhrachel/go-life/utils"
)

// simulation holds the stepping state of the interactive display, apart from gocui
type simulation struct {
	board    *model.Board
	rules    rules.Thresholds
	maxGen   int // 0 runs forever
	stats    *utils.Stats
	lastTick time.Time

	generation int
	paused     bool
}

func newSimulation(board *model.Board, config utils.Config, now time.Time) *simulation {
	s := &simulation{
		board:    board,
		rules:    config.Thresholds,
		maxGen:   config.MaxGenerations,
		stats:    utils.NewStats(),
		lastTick: now,
	}
	s.stats.Update(0, board.LiveCells(), board.Hash(), 0)
	return s
}

// tick is the timer-driven step; a paused simulation does not move
func (s *simulation) tick(now time.Time) (stepped, done bool) {
	if s.paused {
		return false, false
	}
	done = s.step(now)
	return !done, done
}

// step advances one generation; done reports the generation limit was already reached
func (s *simulation) step(now time.Time) (done bool) {
	if s.maxGen > 0 && s.generation >= s.maxGen {
		return true
	}
	s.board.Advance(s.rules)
	s.generation++

	s.stats.Update(s.generation, s.board.LiveCells(), s.board.Hash(), now.Sub(s.lastTick))
	s.lastTick = now
	return false
}

// togglePause flips between running and paused and returns the new paused state
func (s *simulation) togglePause() bool {
	s.paused = !s.paused
	return s.paused
}
