package game

// CanSwapFrom reports whether the tile at c is swap-eligible: it has at least
// two orthogonally-adjacent opposing tiles (wrap-around adjacency).
func (s *State) CanSwapFrom(c Cell) bool {
	tile := s.Board.TileAt(c)
	if tile == nil {
		return false
	}
	enemies := 0
	for _, d := range orthoDirs {
		n := Wrap(c.Row+d[0], c.Col+d[1])
		if t := s.Board.TileAt(n); t != nil && t.Role != tile.Role {
			enemies++
		}
	}
	return enemies >= 2
}

// LegalMoves derives every destination reachable from src under the current
// state: slides into empty neighbors (8 directions, side to move only) and
// swaps with opposing orthogonal neighbors when either endpoint is
// swap-eligible and the swap would not undo the opponent's last one.
func (s *State) LegalMoves(src Cell) []Move {
	if !InBounds(src) {
		return nil
	}
	tile := s.Board.TileAt(src)
	if tile == nil {
		return nil
	}
	srcEligible := s.CanSwapFrom(src)

	var moves []Move
	for _, d := range allDirs {
		n := Wrap(src.Row+d[0], src.Col+d[1])
		target := s.Board.TileAt(n)
		switch {
		case target != nil && target.Role != tile.Role:
			ortho := d[0] == 0 || d[1] == 0
			if ortho && (srcEligible || s.CanSwapFrom(n)) && !s.isRepeatSwap(src, n) {
				moves = append(moves, Move{Cell: n, IsSwap: true})
			}
		case target == nil && tile.Role == s.Current:
			moves = append(moves, Move{Cell: n, IsSwap: false})
		}
	}
	return moves
}

// isRepeatSwap blocks re-swapping the cell pair the other side swapped on its
// previous turn, in either orientation. Once an intervening slide clears
// LastSwap, or once the same side moves again, the pair is free again.
func (s *State) isRepeatSwap(src, tgt Cell) bool {
	last := s.LastSwap
	if last == nil || last.Role == s.Current {
		return false
	}
	return (last.Source == src && last.Target == tgt) ||
		(last.Source == tgt && last.Target == src)
}

// ValidMove re-derives legality server-side, independent of anything the
// client claimed about the move. Out-of-range coordinates are just another
// illegal move.
func (s *State) ValidMove(src, tgt Cell, isSwap bool) bool {
	if !InBounds(src) || !InBounds(tgt) {
		return false
	}
	tile := s.Board.TileAt(src)
	if tile == nil {
		return false
	}

	rowDiff := ((tgt.Row - src.Row) % BoardSize + BoardSize) % BoardSize
	colDiff := ((tgt.Col - src.Col) % BoardSize + BoardSize) % BoardSize
	adjacent := (rowDiff <= 1 || rowDiff == 3) && (colDiff <= 1 || colDiff == 3) &&
		!(rowDiff == 0 && colDiff == 0)
	if !adjacent {
		return false
	}

	target := s.Board.TileAt(tgt)
	if isSwap {
		if target == nil || target.Role == tile.Role {
			return false
		}
		if rowDiff != 0 && colDiff != 0 {
			return false
		}
		if !s.CanSwapFrom(src) && !s.CanSwapFrom(tgt) {
			return false
		}
		if s.isRepeatSwap(src, tgt) {
			return false
		}
		return true
	}
	return tile.Role == s.Current && target == nil
}

// ApplyMove commits a validated move: mutates the board, records or clears
// LastSwap, clears the selection and refreshes swap eligibility for every
// cell.
func (s *State) ApplyMove(src, tgt Cell, isSwap bool) {
	if isSwap {
		s.Board.ApplySwap(src, tgt)
		s.LastSwap = &Swap{Source: src, Target: tgt, Role: s.Current}
	} else {
		s.Board.ApplySlide(src, tgt)
		s.LastSwap = nil
	}
	s.Deselect()
	s.refreshSwapEligibility()
}
