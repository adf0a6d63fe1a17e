package game

// BoardSize is fixed: the game is defined on a 4x4 toroidal grid.
const BoardSize = 4

type Role string

const (
	RoleHost Role = "host"
	RoleOpp  Role = "opp"
	RoleNone Role = ""
)

func (r Role) Other() Role {
	if r == RoleHost {
		return RoleOpp
	}
	return RoleHost
}

type Tile struct {
	Role Role `json:"role"`
}

type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Board holds an optional tile per cell. Movement wraps modulo BoardSize in
// both axes; win lines do not.
type Board [BoardSize][BoardSize]*Tile

// Move is a legal destination for the currently selected tile.
type Move struct {
	Cell   Cell `json:"cell"`
	IsSwap bool `json:"isSwap"`
}

// Swap records the most recent swap so the opponent cannot undo it on the
// very next turn.
type Swap struct {
	Source Cell `json:"source"`
	Target Cell `json:"target"`
	Role   Role `json:"role"`
}

var (
	allDirs = [8][2]int{
		{-1, 0}, {1, 0}, {0, -1}, {0, 1},
		{-1, -1}, {-1, 1}, {1, -1}, {1, 1},
	}
	orthoDirs = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)
