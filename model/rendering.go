package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// Render writes the display projection of the board: two block characters
// per live cell, two spaces per dead cell, one line per row
func (b *Board) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range b.cells {
		for _, c := range row {
			if c == Alive {
				bw.WriteString(gridPosBlock)
			} else {
				bw.WriteString(gridPosEmpty)
			}
		}
		bw.WriteByte('\n')
	}
	return errors.Wrap(bw.Flush(), "[Render] flush")
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer // defaults to os.Stdout
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the board to the terminal
func (r *TerminalRenderer) Display(b *Board) error {
	return b.Render(r.out())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
