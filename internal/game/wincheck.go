package game

// winLines are the 10 fixed absolute lines: 4 rows, 4 columns and the two
// main diagonals. Unlike movement, win detection does not wrap.
var winLines = buildWinLines()

func buildWinLines() [][BoardSize]Cell {
	lines := make([][BoardSize]Cell, 0, 10)
	for i := 0; i < BoardSize; i++ {
		var row, col [BoardSize]Cell
		for j := 0; j < BoardSize; j++ {
			row[j] = Cell{Row: i, Col: j}
			col[j] = Cell{Row: j, Col: i}
		}
		lines = append(lines, row, col)
	}
	var diag, anti [BoardSize]Cell
	for j := 0; j < BoardSize; j++ {
		diag[j] = Cell{Row: j, Col: j}
		anti[j] = Cell{Row: j, Col: BoardSize - 1 - j}
	}
	return append(lines, diag, anti)
}

func (b *Board) lineOwned(line [BoardSize]Cell, role Role) bool {
	for _, c := range line {
		t := b.TileAt(c)
		if t == nil || t.Role != role {
			return false
		}
	}
	return true
}

func (b *Board) hasLine(role Role) bool {
	for _, line := range winLines {
		if b.lineOwned(line, role) {
			return true
		}
	}
	return false
}

// WinnerAfterMove scans for completed lines after mover's move. When the move
// completes lines for both sides at once (possible through a swap), the mover
// wins: they finished their line on their own turn.
func (s *State) WinnerAfterMove(mover Role) (Role, bool) {
	if s.Board.hasLine(mover) {
		return mover, true
	}
	if other := mover.Other(); s.Board.hasLine(other) {
		return other, true
	}
	return RoleNone, false
}
