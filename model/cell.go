package model

// Cell is the state of a single board position
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

const (
	glyphAlive = 'X'
	glyphDead  = ' '
)

// IsAlive reports whether the cell is Alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

// String returns the snapshot glyph for the cell
func (c Cell) String() string {
	return string(c.glyph())
}

func (c Cell) glyph() byte {
	if c == Alive {
		return glyphAlive
	}
	return glyphDead
}

func cellOf(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
