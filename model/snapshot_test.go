package model

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		width, height int
		alive         [][2]int
	}{
		{"trailing newline", "X \n X\n", 2, 2, [][2]int{{0, 0}, {1, 1}}},
		{"no trailing newline", "X \n X", 2, 2, [][2]int{{0, 0}, {1, 1}}},
		{"crlf", "XX\r\n  \r\n", 2, 2, [][2]int{{0, 0}, {0, 1}}},
		{"short row padded", "XXX\nX\n", 3, 2, [][2]int{{0, 0}, {0, 1}, {0, 2}, {1, 0}}},
		{"empty row", "X\n\nX\n", 1, 3, [][2]int{{0, 0}, {2, 0}}},
		{"single cell", "X", 1, 1, [][2]int{{0, 0}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tt.input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			if b.Width() != tt.width || b.Height() != tt.height {
				t.Fatalf("dimensions = %dx%d, want %dx%d", b.Width(), b.Height(), tt.width, tt.height)
			}
			if got := b.LiveCells(); got != len(tt.alive) {
				t.Errorf("LiveCells = %d, want %d", got, len(tt.alive))
			}
			for _, rc := range tt.alive {
				if b.Get(rc[0], rc[1]) != Alive {
					t.Errorf("cell (%d, %d) should be alive", rc[0], rc[1])
				}
			}
		})
	}
}

func TestDecodeRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
		char  rune
	}{
		{"unknown character", "X \nXO\n", 2, 'O'},
		{"dot for dead", ".X\n", 1, '.'},
		{"tab", "X\t\n", 1, '\t'},
		{"non-ascii", "Xé\n", 1, 'é'},
		{"row exceeds width", "XX\nXXX\n", 2, 0},
		{"empty", "", 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := Decode(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected an error")
			}
			if b != nil {
				t.Error("a failed decode must not return a board")
			}
			var fe *FormatError
			if !errors.As(err, &fe) {
				t.Fatalf("error %v is not a *FormatError", err)
			}
			if fe.Line != tt.line || fe.Char != tt.char {
				t.Errorf("FormatError{Line: %d, Char: %q}, want {Line: %d, Char: %q}", fe.Line, fe.Char, tt.line, tt.char)
			}
		})
	}
}

func TestEncode(t *testing.T) {
	b := NewBoard(3, 2)
	b.Set(0, 0, Alive)
	b.Set(1, 2, Alive)

	var buf bytes.Buffer
	if err := b.Encode(&buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if want := "X  \n  X\n"; buf.String() != want {
		t.Errorf("Encode = %q, want %q", buf.String(), want)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(src, []byte("X  X\n XX \nX\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	orig, err := Load(src)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	out := filepath.Join(dir, "out.txt")
	if err := orig.Save(out); err != nil {
		t.Fatalf("Save: %v", err)
	}
	again, err := Load(out)
	if err != nil {
		t.Fatalf("Load saved snapshot: %v", err)
	}
	if !sameCells(orig, again) {
		t.Error("round trip changed the board")
	}
}

func TestSaveLoadRandomBoard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "random.txt")
	orig := NewRandomBoard(17, 11, 0.4, 99, nil)
	if err := orig.Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !sameCells(orig, loaded) {
		t.Error("random board did not survive a round trip")
	}
}

func TestLoadMissingFile(t *testing.T) {
	b, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	if err == nil || b != nil {
		t.Fatalf("Load missing file = (%v, %v), want (nil, error)", b, err)
	}
	var fe *FormatError
	if errors.As(err, &fe) {
		t.Error("I/O failure should not be reported as a format error")
	}
	if !os.IsNotExist(errors.Cause(err)) {
		t.Errorf("error %v should wrap a not-exist error", err)
	}
}

func TestLoadFormatErrorIsWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.txt")
	if err := os.WriteFile(path, []byte("X#\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := Load(path)
	var fe *FormatError
	if !errors.As(err, &fe) || fe.Char != '#' {
		t.Fatalf("Load = %v, want *FormatError for '#'", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the file", err)
	}
}

func TestSaveFailure(t *testing.T) {
	dir := t.TempDir()
	if err := NewBoard(2, 2).Save(dir); err == nil {
		t.Fatal("saving over a directory should fail")
	}
	if err := NewBoard(2, 2).Save(filepath.Join(dir, "missing", "out.txt")); err == nil {
		t.Fatal("saving into a missing directory should fail")
	}
}
