package game

import (
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Board is the contract shared by the finite and infinite boards. Coordinates
// are world coordinates; cells outside the board (or not yet generated) are
// absent, and every action on an absent cell is a no-op.
type Board interface {
	// CellAt returns the cell at the coordinates, or nil if absent
	CellAt(x, y int) *Cell
	// Neighbors returns the existing cells of the Moore neighborhood, in
	// row-major order
	Neighbors(x, y int) []*Cell
	// Cells returns every existing cell, in row-major order
	Cells() []*Cell

	Reveal(x, y int)
	ToggleFlag(x, y int) bool
	Chord(x, y int)

	State() BoardState
	GameOver() bool
	Win() bool
	RevealedCount() int
	FlagCount() int
}

// play holds the state both boards track while a game is running
type play struct {
	state         BoardState
	revealedCount int
	flagCount     int
}

func newPlay() play {
	return play{state: Ongoing}
}

func (p *play) State() BoardState {
	return p.state
}

func (p *play) GameOver() bool {
	return p.state != Ongoing
}

func (p *play) Win() bool {
	return p.state == Won
}

func (p *play) RevealedCount() int {
	return p.revealedCount
}

func (p *play) FlagCount() int {
	return p.flagCount
}

func (p *play) canPlay() bool {
	return p.state == Ongoing
}

func (p *play) lose(cell *Cell) {
	p.state = Lost
	Log.WithFields(logrus.Fields{
		"x": cell.x,
		"y": cell.y,
	}).Debug("mine revealed, game lost")
}

func (p *play) win() {
	p.state = Won
	Log.WithField("revealed", p.revealedCount).Debug("all safe cells revealed, game won")
}

// toggleFlag flips the cell's flag and keeps the flag count in step
func (p *play) toggleFlag(cell *Cell) bool {
	if cell == nil || !p.canPlay() {
		return false
	}
	if !cell.ToggleFlag() {
		return false
	}
	if cell.isFlagged {
		p.flagCount++
	} else {
		p.flagCount--
	}
	return true
}

// revealFrom reveals the cell, flooding outwards through cells with no
// adjacent mines. prepare is called on every cell right before it is revealed.
func (p *play) revealFrom(cell *Cell, prepare func(*Cell), getNeighbors NeighborGetter) {
	if cell == nil || cell.isRevealed || cell.isFlagged {
		return
	}

	if cell.isMine {
		cell.isRevealed = true
		p.lose(cell)
		return
	}

	flood(
		cell,
		func(cell *Cell) bool {
			if prepare != nil && !cell.isRevealed {
				prepare(cell)
			}
			if !cell.reveal() {
				return false
			}
			p.revealedCount++
			return true
		},
		getNeighbors,
	)
}

// chordable returns the neighbors a chord on the cell should reveal, or nil
// if the cell is not satisfied by its flags
func chordable(cell *Cell, neighbors []*Cell) []*Cell {
	if cell == nil || !cell.isRevealed || cell.isMine || cell.adjacentMines == 0 {
		return nil
	}
	if countFlags(neighbors) != cell.adjacentMines {
		return nil
	}

	var targets []*Cell
	for _, neighbor := range neighbors {
		if !neighbor.isFlagged && !neighbor.isRevealed {
			targets = append(targets, neighbor)
		}
	}
	return targets
}
