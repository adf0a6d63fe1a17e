package game

// Starting layout: four tiles per role, interleaved so that no side begins
// with a completed line or an immediate swap.
var (
	hostStart = []Cell{{0, 0}, {2, 1}, {1, 2}, {3, 3}}
	oppStart  = []Cell{{3, 0}, {1, 1}, {2, 2}, {0, 3}}
)

func NewBoard() Board {
	var b Board
	for _, c := range hostStart {
		b[c.Row][c.Col] = &Tile{Role: RoleHost}
	}
	for _, c := range oppStart {
		b[c.Row][c.Col] = &Tile{Role: RoleOpp}
	}
	return b
}

// InBounds reports whether c indexes the board directly. Wire coordinates
// are not trusted: everything client-supplied passes here before any board
// access.
func InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < BoardSize && c.Col >= 0 && c.Col < BoardSize
}

// Wrap maps arbitrary coordinates onto the torus.
func Wrap(row, col int) Cell {
	return Cell{
		Row: ((row % BoardSize) + BoardSize) % BoardSize,
		Col: ((col % BoardSize) + BoardSize) % BoardSize,
	}
}

func (b *Board) TileAt(c Cell) *Tile {
	return b[c.Row][c.Col]
}

func (b *Board) IsEmpty(c Cell) bool {
	return b[c.Row][c.Col] == nil
}

// AdjacentCells returns the 8 toroidal neighbors of c, orthogonals first.
func (b *Board) AdjacentCells(c Cell) []Cell {
	out := make([]Cell, 0, len(allDirs))
	for _, d := range allDirs {
		out = append(out, Wrap(c.Row+d[0], c.Col+d[1]))
	}
	return out
}

// ApplySlide moves the tile at from into the empty cell to. Legality is the
// caller's responsibility; preconditions are just from occupied, to empty.
func (b *Board) ApplySlide(from, to Cell) {
	b[to.Row][to.Col] = b[from.Row][from.Col]
	b[from.Row][from.Col] = nil
}

// ApplySwap exchanges the two tiles in place.
func (b *Board) ApplySwap(a, c Cell) {
	b[a.Row][a.Col], b[c.Row][c.Col] = b[c.Row][c.Col], b[a.Row][a.Col]
}

// CountTiles reports how many tiles of the given role are on the board.
func (b *Board) CountTiles(role Role) int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if t := b[row][col]; t != nil && t.Role == role {
				n++
			}
		}
	}
	return n
}
