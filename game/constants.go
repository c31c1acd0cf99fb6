package game

type CellState int
type BoardState int

const (
	Unrevealed CellState = iota - 1
	Empty
	Number1
	Number2
	Number3
	Number4
	Number5
	Number6
	Number7
	Number8
	Flag
	FlagWrong
	Mine
	MineUnrevealed
	MineLosing
)

var CellStates = []CellState{
	Unrevealed,
	Empty,
	Number1,
	Number2,
	Number3,
	Number4,
	Number5,
	Number6,
	Number7,
	Number8,
	Flag,
	FlagWrong,
	Mine,
	MineUnrevealed,
	MineLosing,
}

const (
	Lost BoardState = iota
	Won
	Ongoing
)

func (state BoardState) String() string {
	switch state {
	case Lost:
		return "lost"
	case Won:
		return "won"
	case Ongoing:
		return "ongoing"
	default:
		return "unknown"
	}
}

const (
	// Side length of an infinite board chunk, in cells
	ChunkSize = 16
	// Chebyshev radius kept free of mines around a reveal into fresh territory
	SafeRadius = 1
	// Chebyshev radius kept free of mines around the origin of a new infinite board
	InitialSafeRadius = 2

	// Default reach of a single flood fill on an infinite board
	DefaultFloodDistance = 4 * ChunkSize

	// Radius of the mine-free zone around the first click on a finite board
	firstClickSafeRadius = 1
	// Mines beyond this fraction of a finite board tend to force guessing
	RecommendedMaxDensity = 0.3
)
