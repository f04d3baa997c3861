package utils

import (
	"testing"
	"time"
)

func TestStatsStatus(t *testing.T) {
	tests := []struct {
		name   string
		hashes []string
		pop    int
		want   string
	}{
		{"fresh", []string{"a"}, 5, "Active"},
		{"changing", []string{"a", "b", "c", "d"}, 5, "Active"},
		{"still life", []string{"a", "b", "b"}, 4, "Stagnant"},
		{"period two", []string{"a", "b", "a"}, 3, "Stagnant"},
		{"period three", []string{"a", "b", "c", "a"}, 3, "Stagnant"},
		{"period four is active", []string{"a", "b", "c", "d", "a"}, 3, "Active"},
		{"extinct", []string{"a", "b"}, 0, "Extinct"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStats()
			for i, h := range tt.hashes {
				s.Update(i, tt.pop, h, time.Millisecond)
			}
			if got := s.Status(); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(0, 100, "a", 0)
	if s.AveragePopulation != 100 {
		t.Errorf("AveragePopulation = %v, want 100", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 0 {
		t.Errorf("GenerationsPerSecond = %v with zero duration, want 0", s.GenerationsPerSecond)
	}

	s.Update(1, 200, "b", 100*time.Millisecond)
	if s.AveragePopulation != 110 {
		t.Errorf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Errorf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.Generation != 1 || s.Population != 200 {
		t.Errorf("Generation, Population = %d, %d", s.Generation, s.Population)
	}

	for i := 0; i < 10; i++ {
		s.Update(2+i, 1, string(rune('c'+i)), time.Millisecond)
	}
	if len(s.history) != historySize {
		t.Errorf("history length = %d, want %d", len(s.history), historySize)
	}
}
