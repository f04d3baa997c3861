package utils

import "time"

const historySize = 5

// Stats tracks the running simulation
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	Generation           int
	Population           int
	StartTime            time.Time
	history              []string // recent board hashes for cycle detection
	stagnant             bool
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

// Update records one rendered generation
func (s *Stats) Update(generation, population int, hash string, duration time.Duration) {
	s.Generation = generation
	s.Population = population
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}

	s.stagnant = s.seen(hash)
	s.history = append(s.history, hash)
	if len(s.history) > historySize {
		s.history = s.history[1:]
	}
}

// seen reports whether hash matches one of the last three states (period 1-3 cycles)
func (s *Stats) seen(hash string) bool {
	for i := len(s.history) - 1; i >= 0 && i >= len(s.history)-3; i-- {
		if s.history[i] == hash {
			return true
		}
	}
	return false
}

// Status describes the board as Active, Stagnant or Extinct
func (s *Stats) Status() string {
	switch {
	case s.Population == 0:
		return "Extinct"
	case s.stagnant:
		return "Stagnant"
	default:
		return "Active"
	}
}
