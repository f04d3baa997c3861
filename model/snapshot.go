package model

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"
)

const maxSnapshotLine = 1 << 20

// FormatError reports a malformed snapshot
type FormatError struct {
	Line   int // 1-based
	Column int // 1-based, 0 when the whole line is at fault
	Char   rune
	Reason string
}

func (e *FormatError) Error() string {
	if e.Char != 0 {
		return fmt.Sprintf("snapshot line %d column %d: %s %q", e.Line, e.Column, e.Reason, e.Char)
	}
	if e.Line == 0 {
		return fmt.Sprintf("snapshot: %s", e.Reason)
	}
	return fmt.Sprintf("snapshot line %d: %s", e.Line, e.Reason)
}

// Load reads a board from the snapshot file at path
func Load(path string) (*Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to open snapshot: %+v", path)
	}
	defer f.Close()

	b, err := Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "[Load] failed to decode snapshot: %+v", path)
	}
	return b, nil
}

// Decode parses a snapshot: one line per row, 'X' alive, ' ' dead.
// The first line fixes the width; shorter rows are padded with dead cells.
func Decode(r io.Reader) (*Board, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxSnapshotLine)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "[Decode] failed to read snapshot")
	}
	if len(lines) == 0 {
		return nil, &FormatError{Reason: "empty snapshot"}
	}

	width, height := len(lines[0]), len(lines)
	b := NewBoard(width, height)
	for i, line := range lines {
		for j, ch := range line {
			var c Cell
			switch ch {
			case glyphAlive:
				c = Alive
			case glyphDead:
				c = Dead
			default:
				return nil, &FormatError{Line: i + 1, Column: j + 1, Char: ch, Reason: "unexpected character"}
			}
			if j >= width {
				return nil, &FormatError{Line: i + 1, Reason: fmt.Sprintf("row exceeds width %d", width)}
			}
			b.cells[i][j] = c
		}
	}

	return b, nil
}

// Save writes the board to path in snapshot format
func (b *Board) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "[Save] failed to create snapshot: %+v", path)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "[Save] failed to close snapshot: %+v", path)
		}
	}()

	if err = b.Encode(f); err != nil {
		return errors.Wrapf(err, "[Save] failed to write snapshot: %+v", path)
	}
	return nil
}

// Encode writes one line per row, each terminated by a newline
func (b *Board) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, row := range b.cells {
		for _, c := range row {
			if err := bw.WriteByte(c.glyph()); err != nil {
				return errors.Wrap(err, "[Encode] write cell")
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return errors.Wrap(err, "[Encode] write row")
		}
	}
	return errors.Wrap(bw.Flush(), "[Encode] flush")
}
