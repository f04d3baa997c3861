package view

import (
	"fmt"

	"github.com/logrusorgru/aurora"

	"github.com/sheikhrachel/go-life/utils"
)

var statusColors = map[string]aurora.Color{
	"Active":   aurora.GreenFg,
	"Stagnant": aurora.BrownFg,
	"Extinct":  aurora.RedFg,
}

// StatusLine formats the running stats for a single terminal line
func StatusLine(s *utils.Stats) string {
	status := s.Status()
	return fmt.Sprintf("Gen: %d | Living: %d | Avg Pop: %.1f | %.1f gen/sec | Status: %s",
		s.Generation, s.Population, s.AveragePopulation, s.GenerationsPerSecond,
		aurora.Colorize(status, statusColors[status]))
}

// Errorf formats a diagnostic for stderr
func Errorf(format string, args ...interface{}) string {
	return aurora.Sprintf(aurora.Red(format), args...)
}
