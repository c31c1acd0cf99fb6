package random

import (
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/game"
)

// Director reveals a random unrevealed, unflagged cell each step
type Director struct {
	rand *rand.Rand
	log  logrus.FieldLogger
}

func New(seed uint64) *Director {
	return &Director{
		rand: rand.New(rand.NewPCG(seed, seed)),
		log:  game.Log,
	}
}

func (director *Director) Act(board game.Board) bool {
	cell := director.Pick(board)
	if cell == nil {
		return false
	}

	director.log.WithField("cell", cell.String()).Debug("random reveal")
	board.Reveal(cell.X(), cell.Y())
	return true
}

// Pick chooses the cell Act would reveal, or nil if there is none
func (director *Director) Pick(board game.Board) *game.Cell {
	var candidates []*game.Cell
	for _, cell := range board.Cells() {
		if !cell.IsRevealed() && !cell.IsFlagged() {
			candidates = append(candidates, cell)
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	return candidates[director.rand.IntN(len(candidates))]
}
