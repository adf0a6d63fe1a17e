package game

// Phase tracks what the room is waiting for. Fields not owned by the current
// phase are kept cleared so a state can never carry, say, a winner and a live
// selection at the same time.
type Phase string

const (
	PhaseIdle      Phase = "idle"
	PhaseSelecting Phase = "selecting"
	PhaseWon       Phase = "won"
)

type State struct {
	Board          Board                      `json:"board"`
	Current        Role                       `json:"currentRole"`
	Phase          Phase                      `json:"phase"`
	Selected       *Cell                      `json:"selected,omitempty"`
	PotentialMoves []Move                     `json:"potentialMoves,omitempty"`
	LastSwap       *Swap                      `json:"lastSwap,omitempty"`
	Winner         Role                       `json:"winner,omitempty"`
	SwapEligible   [BoardSize][BoardSize]bool `json:"swapEligible"`
	Scores         map[Role]int               `json:"scores"`
	RematchVotes   map[Role]bool              `json:"rematchVotes"`
}

func NewState(starting Role) *State {
	if starting == RoleNone {
		starting = RoleHost
	}
	s := &State{
		Board:        NewBoard(),
		Current:      starting,
		Phase:        PhaseIdle,
		Scores:       map[Role]int{RoleHost: 0, RoleOpp: 0},
		RematchVotes: map[Role]bool{RoleHost: false, RoleOpp: false},
	}
	s.refreshSwapEligibility()
	return s
}

// Select marks the cell and derives its legal destinations.
func (s *State) Select(c Cell) {
	cell := c
	s.Selected = &cell
	s.PotentialMoves = s.LegalMoves(c)
	s.Phase = PhaseSelecting
}

func (s *State) Deselect() {
	s.Selected = nil
	s.PotentialMoves = nil
	if s.Phase == PhaseSelecting {
		s.Phase = PhaseIdle
	}
}

// SwitchTurn passes the move to the other side and drops any selection.
func (s *State) SwitchTurn() {
	s.Current = s.Current.Other()
	s.Deselect()
}

// SetWinner stamps the result and bumps the winner's score.
func (s *State) SetWinner(role Role) {
	s.Deselect()
	s.Winner = role
	s.Phase = PhaseWon
	s.Scores[role]++
}

// refreshSwapEligibility recomputes the per-cell swap predicate from scratch.
// A full rescan of 16 cells is cheaper than keeping an incremental cache
// honest.
func (s *State) refreshSwapEligibility() {
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			s.SwapEligible[row][col] = s.CanSwapFrom(Cell{Row: row, Col: col})
		}
	}
}
