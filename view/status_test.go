package view

import (
	"strings"
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func TestStatusLine(t *testing.T) {
	s := utils.NewStats()
	s.Update(4, 12, "a", 50*time.Millisecond)

	line := StatusLine(s)
	for _, want := range []string{"Gen: 4", "Living: 12", "Avg Pop: 12.0", "20.0 gen/sec", "Active"} {
		if !strings.Contains(line, want) {
			t.Errorf("StatusLine = %q, missing %q", line, want)
		}
	}
}

func TestStatusLineExtinct(t *testing.T) {
	s := utils.NewStats()
	s.Update(9, 0, "a", 0)
	if line := StatusLine(s); !strings.Contains(line, "Extinct") {
		t.Errorf("StatusLine = %q, want Extinct", line)
	}
}

func TestErrorf(t *testing.T) {
	if got := Errorf("load %s: %d", "board.txt", 3); !strings.Contains(got, "load board.txt: 3") {
		t.Errorf("Errorf = %q", got)
	}
}
