package game

import (
	"github.com/pkg/errors"
)

var ErrInvalidLayout = errors.New("invalid board layout")

// NewFiniteBoardFromLayout creates an already-generated board from rows of
// '*' (mine) and '.' (safe) characters. Layouts are not subject to the
// first-click safe zone.
func NewFiniteBoardFromLayout(rows []string) (*FiniteBoard, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidLayout, "empty layout")
	}

	height, width := len(rows), len(rows[0])
	numMines := 0
	for y, row := range rows {
		if len(row) != width {
			return nil, errors.Wrapf(ErrInvalidLayout, "row %d has %d cells, expected %d", y, len(row), width)
		}
		for x, c := range row {
			switch c {
			case '*':
				numMines++
			case '.':
			default:
				return nil, errors.Wrapf(ErrInvalidLayout, "unexpected %q at (%d, %d)", c, x, y)
			}
		}
	}

	// Bypass the mine limit, which only guards random generation
	board, err := NewFiniteBoard(FiniteConfig{Width: width, Height: height})
	if err != nil {
		return nil, err
	}
	board.numMines = numMines
	board.totalSafeCells = width*height - numMines

	for y, row := range rows {
		for x, c := range row {
			board.cells[y][x].isMine = c == '*'
		}
	}
	for _, cell := range board.Cells() {
		if !cell.isMine {
			cell.adjacentMines = countMines(board.cellNeighbors(cell))
		}
	}
	board.isGenerated = true

	return board, nil
}
