package game

import (
	"fmt"
)

type Cell struct {
	x, y          int
	adjacentMines int

	isMine, isRevealed, isFlagged bool
}

func newCell(x, y int) *Cell {
	return &Cell{x: x, y: y}
}

func (cell *Cell) String() string {
	return fmt.Sprintf("Cell(%v, %v)", cell.x, cell.y)
}

func (cell *Cell) X() int {
	return cell.x
}

func (cell *Cell) Y() int {
	return cell.y
}

func (cell *Cell) IsMine() bool {
	return cell.isMine
}

func (cell *Cell) IsRevealed() bool {
	return cell.isRevealed
}

func (cell *Cell) IsFlagged() bool {
	return cell.isFlagged
}

// AdjacentMines is only meaningful for cells which are not mines
func (cell *Cell) AdjacentMines() int {
	return cell.adjacentMines
}

// ToggleFlag flips the flag on an unrevealed cell, reporting whether anything
// changed. Revealed cells cannot be flagged.
func (cell *Cell) ToggleFlag() bool {
	if cell.isRevealed {
		return false
	}
	cell.isFlagged = !cell.isFlagged
	return true
}

// State returns how the cell should be displayed while the board is in the
// given state. A lost board exposes its remaining mines and wrong flags.
func (cell *Cell) State(boardState BoardState) CellState {
	switch {
	case cell.isRevealed && cell.isMine:
		return MineLosing
	case cell.isRevealed:
		return CellState(cell.adjacentMines)
	case boardState == Lost && cell.isFlagged && !cell.isMine:
		return FlagWrong
	case cell.isFlagged:
		return Flag
	case boardState == Lost && cell.isMine:
		return MineUnrevealed
	default:
		return Unrevealed
	}
}

// reveal marks the cell revealed, reporting whether it was newly revealed.
// Flagged cells are never revealed.
func (cell *Cell) reveal() bool {
	if cell.isRevealed || cell.isFlagged {
		return false
	}
	cell.isRevealed = true
	return true
}

func countMines(cells []*Cell) int {
	count := 0
	for _, cell := range cells {
		if cell.isMine {
			count++
		}
	}
	return count
}

func countFlags(cells []*Cell) int {
	count := 0
	for _, cell := range cells {
		if cell.isFlagged {
			count++
		}
	}
	return count
}
