package game

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
)

type FiniteConfig struct {
	Width, Height int
	NumMines      int

	// Seed of the generator used to place mines
	Seed uint64
}

// FiniteBoard is a fixed-size board. Mines are placed on the first reveal,
// never within one cell of it.
type FiniteBoard struct {
	play

	width, height int // in number of cells
	numMines      int
	cells         [][]Cell

	totalSafeCells int
	isGenerated    bool

	rand *rand.Rand
}

func NewFiniteBoard(config FiniteConfig) (*FiniteBoard, error) {
	if err := validateFinite(config.Width, config.Height, config.NumMines); err != nil {
		return nil, err
	}

	if density := float64(config.NumMines) / float64(config.Width*config.Height); density > RecommendedMaxDensity {
		Log.WithFields(logrus.Fields{
			"mines":   config.NumMines,
			"density": density,
		}).Warn("mine density is high; the board will likely require guessing")
	}

	board := &FiniteBoard{
		play:           newPlay(),
		width:          config.Width,
		height:         config.Height,
		numMines:       config.NumMines,
		cells:          make([][]Cell, config.Height),
		totalSafeCells: config.Width*config.Height - config.NumMines,
		rand:           rand.New(rand.NewPCG(config.Seed, config.Seed^0x9e3779b97f4a7c15)),
	}

	for y := 0; y < board.height; y++ {
		row := make([]Cell, board.width)
		for x := range row {
			row[x] = Cell{x: x, y: y}
		}
		board.cells[y] = row
	}

	return board, nil
}

func (board *FiniteBoard) Width() int {
	return board.width
}

func (board *FiniteBoard) Height() int {
	return board.height
}

func (board *FiniteBoard) NumMines() int {
	return board.numMines
}

func (board *FiniteBoard) TotalSafeCells() int {
	return board.totalSafeCells
}

func (board *FiniteBoard) IsGenerated() bool {
	return board.isGenerated
}

func (board *FiniteBoard) CellAt(x, y int) *Cell {
	if x >= 0 && y >= 0 && x < board.width && y < board.height {
		return &board.cells[y][x]
	}
	return nil
}

func (board *FiniteBoard) Neighbors(x, y int) []*Cell {
	return collectNeighbors(x, y, board.CellAt)
}

func (board *FiniteBoard) Cells() []*Cell {
	cells := make([]*Cell, 0, board.width*board.height)
	for y := range board.cells {
		for x := range board.cells[y] {
			cells = append(cells, &board.cells[y][x])
		}
	}
	return cells
}

func (board *FiniteBoard) cellNeighbors(cell *Cell) []*Cell {
	return board.Neighbors(cell.x, cell.y)
}

// Generate places the mines, keeping the 3x3 block around (fx, fy) clear, and
// computes adjacency counts. Only the first call has any effect.
func (board *FiniteBoard) Generate(fx, fy int) {
	if board.isGenerated {
		return
	}

	safe := Point{fx, fy}
	candidates := make([]*Cell, 0, board.width*board.height)
	for _, cell := range board.Cells() {
		if chebyshev(Point{cell.x, cell.y}, safe) > firstClickSafeRadius {
			candidates = append(candidates, cell)
		}
	}

	// Pick numMines off the candidates with a partial Fisher-Yates shuffle
	k := len(candidates)
	for i := 0; i < board.numMines; i++ {
		j := board.rand.IntN(k)
		candidates[j].isMine = true
		k--
		candidates[j], candidates[k] = candidates[k], candidates[j]
	}

	for _, cell := range board.Cells() {
		if !cell.isMine {
			cell.adjacentMines = countMines(board.cellNeighbors(cell))
		}
	}

	board.isGenerated = true

	Log.WithFields(logrus.Fields{
		"width":  board.width,
		"height": board.height,
		"mines":  board.numMines,
		"x":      fx,
		"y":      fy,
	}).Debug("generated board")
}

func (board *FiniteBoard) Reveal(x, y int) {
	if !board.canPlay() {
		return
	}

	cell := board.CellAt(x, y)
	if cell == nil {
		return
	}
	if !board.isGenerated {
		board.Generate(x, y)
	}

	board.revealFrom(cell, nil, board.cellNeighbors)

	if board.canPlay() {
		board.checkWinCondition()
	}
}

func (board *FiniteBoard) ToggleFlag(x, y int) bool {
	return board.toggleFlag(board.CellAt(x, y))
}

func (board *FiniteBoard) Chord(x, y int) {
	if !board.canPlay() {
		return
	}

	for _, neighbor := range chordable(board.CellAt(x, y), board.Neighbors(x, y)) {
		board.Reveal(neighbor.x, neighbor.y)
		if board.GameOver() {
			break
		}
	}
}

func (board *FiniteBoard) checkWinCondition() {
	if board.revealedCount == board.totalSafeCells {
		board.win()
	}
}
