package model

import (
	"crypto/md5"
	"fmt"

	"github.com/sheikhrachel/go-life/rules"
)

// Board represents the game board
type Board struct {
	width  int
	height int
	cells  [][]Cell
	next   [][]Cell // back buffer written by Advance, swapped with cells
}

// NewBoard creates an all-dead board with the specified dimensions
func NewBoard(width, height int) *Board {
	return &Board{
		width:  width,
		height: height,
		cells:  newCells(width, height),
		next:   newCells(width, height),
	}
}

// newCells allocates a height x width grid on a single backing slice
func newCells(width, height int) [][]Cell {
	cells := make([][]Cell, height)
	b := make([]Cell, width*height)
	for i := range cells {
		start := width * i
		cells[i] = b[start : start+width : start+width]
	}
	return cells
}

// Width returns the number of columns
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows
func (b *Board) Height() int {
	return b.height
}

// Set sets the cell at row, col; positions outside the board are ignored
func (b *Board) Set(row, col int, c Cell) {
	if row >= 0 && row < b.height && col >= 0 && col < b.width {
		b.cells[row][col] = c
	}
}

// Get returns the cell at row, col; positions outside the board are Dead
func (b *Board) Get(row, col int) Cell {
	if row < 0 || row >= b.height || col < 0 || col >= b.width {
		return Dead
	}
	return b.cells[row][col]
}

// CountAliveNeighbors counts the live cells in the 3x3 window around (i, j),
// excluding the center. Offsets outside the grid are skipped, never wrapped.
func CountAliveNeighbors(grid [][]Cell, i, j int) int {
	count := 0

	rows := len(grid)
	if i < 0 || i >= rows {
		return 0
	}
	cols := len(grid[i])

	minRow := max(0, i-1)
	maxRow := min(rows-1, i+1)
	minCol := max(0, j-1)
	maxCol := min(cols-1, j+1)

	for r := minRow; r <= maxRow; r++ {
		for c := minCol; c <= maxCol; c++ {
			if r == i && c == j {
				continue
			}
			if grid[r][c] == Alive {
				count++
			}
		}
	}

	return count
}

// Advance computes the next generation from the current grid and swaps it in.
// Every cell reads the same pre-transition snapshot.
func (b *Board) Advance(t rules.Thresholds) {
	for i := 0; i < b.height; i++ {
		for j := 0; j < b.width; j++ {
			n := CountAliveNeighbors(b.cells, i, j)
			b.next[i][j] = cellOf(t.Next(b.cells[i][j].IsAlive(), n))
		}
	}
	b.cells, b.next = b.next, b.cells
}

// LiveCells returns the total number of living cells
func (b *Board) LiveCells() (count int) {
	for i := 0; i < b.height; i++ {
		for j := 0; j < b.width; j++ {
			if b.cells[i][j] == Alive {
				count++
			}
		}
	}
	return
}

// Hash returns an MD5 fingerprint of the current grid state
func (b *Board) Hash() string {
	h := md5.New()
	for _, row := range b.cells {
		for _, c := range row {
			h.Write([]byte{byte(c)})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
