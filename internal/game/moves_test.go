package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(current Role, tiles map[Cell]Role) *State {
	s := &State{
		Current:      current,
		Phase:        PhaseIdle,
		Scores:       map[Role]int{RoleHost: 0, RoleOpp: 0},
		RematchVotes: map[Role]bool{RoleHost: false, RoleOpp: false},
	}
	for c, r := range tiles {
		s.Board[c.Row][c.Col] = &Tile{Role: r}
	}
	s.refreshSwapEligibility()
	return s
}

func TestCanSwapFrom(t *testing.T) {
	tests := []struct {
		name  string
		tiles map[Cell]Role
		cell  Cell
		want  bool
	}{
		{
			name:  "empty cell",
			tiles: map[Cell]Role{{0, 1}: RoleOpp},
			cell:  Cell{0, 0},
			want:  false,
		},
		{
			name:  "one orthogonal enemy",
			tiles: map[Cell]Role{{1, 1}: RoleHost, {1, 2}: RoleOpp},
			cell:  Cell{1, 1},
			want:  false,
		},
		{
			name: "two orthogonal enemies",
			tiles: map[Cell]Role{
				{1, 1}: RoleHost, {1, 2}: RoleOpp, {1, 0}: RoleOpp,
			},
			cell: Cell{1, 1},
			want: true,
		},
		{
			name: "diagonal enemies do not count",
			tiles: map[Cell]Role{
				{1, 1}: RoleHost, {0, 0}: RoleOpp, {2, 2}: RoleOpp,
			},
			cell: Cell{1, 1},
			want: false,
		},
		{
			name: "adjacency wraps at the edges",
			tiles: map[Cell]Role{
				{0, 0}: RoleHost, {3, 0}: RoleOpp, {0, 3}: RoleOpp,
			},
			cell: Cell{0, 0},
			want: true,
		},
		{
			name: "friendly neighbors do not count",
			tiles: map[Cell]Role{
				{1, 1}: RoleHost, {1, 0}: RoleHost, {1, 2}: RoleHost,
			},
			cell: Cell{1, 1},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateWith(RoleHost, tt.tiles)
			assert.Equal(t, tt.want, s.CanSwapFrom(tt.cell))
		})
	}
}

// ValidMove must accept exactly the moves LegalMoves derives: completeness and
// soundness of the legality predicate over every source/target/kind triple.
func TestValidMoveMatchesLegalMoves(t *testing.T) {
	states := map[string]*State{
		"initial": NewState(RoleHost),
		"mid game": stateWith(RoleOpp, map[Cell]Role{
			{0, 0}: RoleHost, {0, 1}: RoleOpp, {1, 1}: RoleOpp,
			{0, 2}: RoleHost, {2, 2}: RoleHost, {3, 3}: RoleOpp,
		}),
	}

	for name, s := range states {
		t.Run(name, func(t *testing.T) {
			for srcRow := 0; srcRow < BoardSize; srcRow++ {
				for srcCol := 0; srcCol < BoardSize; srcCol++ {
					src := Cell{srcRow, srcCol}
					legal := map[Move]bool{}
					for _, m := range s.LegalMoves(src) {
						legal[m] = true
					}
					for tgtRow := 0; tgtRow < BoardSize; tgtRow++ {
						for tgtCol := 0; tgtCol < BoardSize; tgtCol++ {
							tgt := Cell{tgtRow, tgtCol}
							for _, isSwap := range []bool{false, true} {
								want := legal[Move{Cell: tgt, IsSwap: isSwap}]
								got := s.ValidMove(src, tgt, isSwap)
								assert.Equal(t, want, got,
									"src=%+v tgt=%+v swap=%v", src, tgt, isSwap)
							}
						}
					}
				}
			}
		})
	}
}

// Coordinates straight off the wire may index nothing on the board. They must
// read as illegal moves, never reach the arrays.
func TestOutOfRangeCoordinates(t *testing.T) {
	s := NewState(RoleHost)
	cells := []Cell{{7, 0}, {0, 7}, {-1, 2}, {2, -1}, {BoardSize, BoardSize}}

	for _, c := range cells {
		assert.False(t, InBounds(c), "cell %+v", c)
		assert.False(t, s.ValidMove(c, Cell{0, 1}, false), "src %+v", c)
		assert.False(t, s.ValidMove(Cell{0, 0}, c, false), "tgt %+v", c)
		assert.False(t, s.ValidMove(c, c, true), "swap %+v", c)
		assert.Nil(t, s.LegalMoves(c), "moves from %+v", c)
	}
	assert.True(t, InBounds(Cell{0, 0}))
	assert.True(t, InBounds(Cell{3, 3}))
}

func TestValidMoveRejectsNonAdjacent(t *testing.T) {
	s := NewState(RoleHost)
	assert.False(t, s.ValidMove(Cell{0, 0}, Cell{0, 2}, false))
	assert.False(t, s.ValidMove(Cell{0, 0}, Cell{2, 2}, true))
	assert.False(t, s.ValidMove(Cell{0, 0}, Cell{0, 0}, false))
}

func TestSwapRequiresOrthogonalAxis(t *testing.T) {
	s := stateWith(RoleHost, map[Cell]Role{
		{1, 1}: RoleHost, {2, 2}: RoleOpp,
		{1, 0}: RoleOpp, {1, 2}: RoleOpp, // make (1,1) swap-eligible
	})
	assert.True(t, s.CanSwapFrom(Cell{1, 1}))
	assert.False(t, s.ValidMove(Cell{1, 1}, Cell{2, 2}, true), "diagonal swap")
	assert.True(t, s.ValidMove(Cell{1, 1}, Cell{1, 2}, true), "orthogonal swap")
}

func TestAntiOscillation(t *testing.T) {
	tiles := map[Cell]Role{
		{0, 0}: RoleHost, {0, 2}: RoleHost,
		{0, 1}: RoleOpp, {1, 1}: RoleOpp, {3, 1}: RoleOpp,
	}

	s := stateWith(RoleHost, tiles)
	require.True(t, s.ValidMove(Cell{0, 0}, Cell{0, 1}, true))
	s.ApplyMove(Cell{0, 0}, Cell{0, 1}, true)
	s.SwitchTurn()

	require.NotNil(t, s.LastSwap)
	assert.Equal(t, RoleHost, s.LastSwap.Role)

	// The opponent may not undo the swap on the very next turn, in either
	// orientation of the same cell pair.
	assert.False(t, s.ValidMove(Cell{0, 1}, Cell{0, 0}, true))
	assert.False(t, s.ValidMove(Cell{0, 0}, Cell{0, 1}, true))

	// An intervening slide clears the restriction.
	require.True(t, s.ValidMove(Cell{1, 1}, Cell{1, 0}, false))
	s.ApplyMove(Cell{1, 1}, Cell{1, 0}, false)
	s.SwitchTurn()
	require.Nil(t, s.LastSwap)
	s.SwitchTurn() // back to opp

	assert.True(t, s.ValidMove(Cell{0, 1}, Cell{0, 0}, true))
}

func TestApplyMoveBookkeeping(t *testing.T) {
	s := stateWith(RoleHost, map[Cell]Role{
		{0, 0}: RoleHost, {0, 2}: RoleHost,
		{0, 1}: RoleOpp, {1, 1}: RoleOpp,
	})
	s.Select(Cell{0, 0})
	require.Equal(t, PhaseSelecting, s.Phase)
	require.NotEmpty(t, s.PotentialMoves)

	s.ApplyMove(Cell{0, 0}, Cell{0, 1}, true)

	assert.Nil(t, s.Selected)
	assert.Nil(t, s.PotentialMoves)
	assert.Equal(t, PhaseIdle, s.Phase)
	require.NotNil(t, s.LastSwap)
	assert.Equal(t, Swap{Source: Cell{0, 0}, Target: Cell{0, 1}, Role: RoleHost}, *s.LastSwap)

	// Eligibility is recomputed from the new layout, not carried over.
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			c := Cell{row, col}
			assert.Equal(t, s.CanSwapFrom(c), s.SwapEligible[row][col], "cell %+v", c)
		}
	}

	s.ApplyMove(Cell{0, 1}, Cell{3, 1}, false)
	assert.Nil(t, s.LastSwap, "slide clears the swap record")
}

func TestTileConservationAcrossGame(t *testing.T) {
	s := NewState(RoleHost)
	moves := []struct {
		src, tgt Cell
		isSwap   bool
	}{
		{Cell{0, 0}, Cell{0, 1}, false},
		{Cell{1, 1}, Cell{1, 0}, false},
		{Cell{0, 1}, Cell{1, 1}, false},
	}
	for _, mv := range moves {
		require.True(t, s.ValidMove(mv.src, mv.tgt, mv.isSwap),
			"%+v should be legal", mv)
		s.ApplyMove(mv.src, mv.tgt, mv.isSwap)
		assert.Equal(t, 4, s.Board.CountTiles(RoleHost))
		assert.Equal(t, 4, s.Board.CountTiles(RoleOpp))
		s.SwitchTurn()
	}
}
