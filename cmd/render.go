package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/they4kman/gosweep/game"
)

var cellGlyphs = map[game.CellState]byte{
	game.Unrevealed:     '#',
	game.Empty:          '.',
	game.Number1:        '1',
	game.Number2:        '2',
	game.Number3:        '3',
	game.Number4:        '4',
	game.Number5:        '5',
	game.Number6:        '6',
	game.Number7:        '7',
	game.Number8:        '8',
	game.Flag:           'f',
	game.FlagWrong:      'x',
	game.Mine:           'O',
	game.MineUnrevealed: 'O',
	game.MineLosing:     '*',
}

// viewport returns the corners of the area worth printing: the whole of a
// finite board, or the played area of an infinite one plus a 1-cell margin
func viewport(board game.Board) (topLeft, bottomRight game.Point) {
	if finite, ok := board.(*game.FiniteBoard); ok {
		return game.Point{}, game.Point{X: finite.Width() - 1, Y: finite.Height() - 1}
	}

	found := false
	for _, cell := range board.Cells() {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			continue
		}
		if !found {
			topLeft = game.Point{X: cell.X(), Y: cell.Y()}
			bottomRight = topLeft
			found = true
			continue
		}
		topLeft.X = min(topLeft.X, cell.X())
		topLeft.Y = min(topLeft.Y, cell.Y())
		bottomRight.X = max(bottomRight.X, cell.X())
		bottomRight.Y = max(bottomRight.Y, cell.Y())
	}

	topLeft.X--
	topLeft.Y--
	bottomRight.X++
	bottomRight.Y++
	return topLeft, bottomRight
}

// renderBoard prints a status line, then one glyph per cell of the viewport.
// Cells not generated yet print as spaces.
func renderBoard(out io.Writer, board game.Board) error {
	topLeft, bottomRight := viewport(board)

	var builder strings.Builder
	fmt.Fprintf(&builder, "%s: %d revealed, %d flagged, (%d, %d) to (%d, %d)\n",
		board.State(), board.RevealedCount(), board.FlagCount(),
		topLeft.X, topLeft.Y, bottomRight.X, bottomRight.Y)

	for y := topLeft.Y; y <= bottomRight.Y; y++ {
		for x := topLeft.X; x <= bottomRight.X; x++ {
			cell := board.CellAt(x, y)
			if cell == nil {
				builder.WriteByte(' ')
			} else {
				builder.WriteByte(cellGlyphs[cell.State(board.State())])
			}
		}
		builder.WriteByte('\n')
	}

	_, err := io.WriteString(out, builder.String())
	return err
}
