package constraint

import (
	"fmt"
	"math"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
	"github.com/they4kman/gosweep/util/collections"
)

// Director plays by deduction where it can: it flags cells which must be
// mines and reveals cells which must be safe. Otherwise it reveals the cell
// least likely to be a mine, and as a last resort a random one.
type Director struct {
	random *random.Director
	log    logrus.FieldLogger
}

func New(seed uint64) *Director {
	return &Director{
		random: random.New(seed),
		log:    game.Log,
	}
}

// Observation states that exactly numMines of cells are mines
type Observation struct {
	origin   *game.Cell
	numMines int
	cells    collections.Set[*game.Cell]
	order    []*game.Cell
}

func newObservation(origin *game.Cell, numMines int, cells []*game.Cell) *Observation {
	return &Observation{
		origin:   origin,
		numMines: numMines,
		cells:    collections.NewSet(cells...),
		order:    cells,
	}
}

func (observation Observation) String() string {
	var cellsRepr strings.Builder
	for i, cell := range observation.order {
		if i > 0 {
			cellsRepr.WriteString(", ")
		}
		cellsRepr.WriteString(fmt.Sprintf("(%d, %d)", cell.X(), cell.Y()))
	}

	var originRepr string
	if observation.origin == nil {
		originRepr = "?"
	} else {
		originRepr = fmt.Sprintf("(%d, %d)", observation.origin.X(), observation.origin.Y())
	}

	return fmt.Sprintf("Obs[%8s, %d ε %s]", originRepr, observation.numMines, cellsRepr.String())
}

func (observation Observation) MineProbability() float32 {
	return float32(observation.numMines) / float32(len(observation.order))
}

// isSubsetOf reports whether every cell of the observation is also in other
func (observation Observation) isSubsetOf(other *Observation) bool {
	if len(observation.order) >= len(other.order) {
		return false
	}
	for _, cell := range observation.order {
		if !other.cells.Contains(cell) {
			return false
		}
	}
	return true
}

func (director *Director) Act(board game.Board) bool {
	observations := director.observe(board)

	if director.actDeliberate(board, observations) {
		return true
	}
	if director.actLowestProbability(board, observations) {
		return true
	}
	return director.random.Act(board)
}

// observe collects one observation per revealed number bordering unknown
// cells, plus those derived from observations contained in one another
func (director *Director) observe(board game.Board) []*Observation {
	var observations []*Observation
	byCell := make(map[*game.Cell][]*Observation)

	for _, cell := range board.Cells() {
		if !cell.IsRevealed() || cell.IsMine() || cell.AdjacentMines() == 0 {
			continue
		}

		numMines := cell.AdjacentMines()
		var unknown []*game.Cell
		for _, neighbor := range board.Neighbors(cell.X(), cell.Y()) {
			switch {
			case neighbor.IsFlagged():
				numMines--
			case !neighbor.IsRevealed():
				unknown = append(unknown, neighbor)
			}
		}
		if len(unknown) == 0 {
			continue
		}

		observation := newObservation(cell, numMines, unknown)
		observations = append(observations, observation)
		for _, neighbor := range unknown {
			byCell[neighbor] = append(byCell[neighbor], observation)
		}
	}

	// If A's cells lie within B's, B's other cells hold B-A of the mines
	var derived []*Observation
	for _, observation := range observations {
		visited := collections.NewSet(observation)
		for _, cell := range observation.order {
			for _, other := range byCell[cell] {
				if visited.Contains(other) {
					continue
				}
				visited.Add(other)

				if !observation.isSubsetOf(other) {
					continue
				}

				var rest []*game.Cell
				for _, otherCell := range other.order {
					if !observation.cells.Contains(otherCell) {
						rest = append(rest, otherCell)
					}
				}
				derived = append(derived, newObservation(nil, other.numMines-observation.numMines, rest))
			}
		}
	}

	return append(observations, derived...)
}

func (director *Director) actDeliberate(board game.Board, observations []*Observation) bool {
	for _, observation := range observations {
		switch {
		case observation.numMines == len(observation.order):
			director.log.WithField("observation", observation.String()).Debug("flagging mines")
			for _, cell := range observation.order {
				if !cell.IsFlagged() {
					board.ToggleFlag(cell.X(), cell.Y())
				}
			}
			return true

		case observation.numMines == 0:
			director.log.WithField("observation", observation.String()).Debug("revealing safe cells")
			if origin := observation.origin; origin != nil {
				board.Chord(origin.X(), origin.Y())
			} else {
				for _, cell := range observation.order {
					board.Reveal(cell.X(), cell.Y())
					if board.GameOver() {
						break
					}
				}
			}
			return true
		}
	}
	return false
}

func (director *Director) actLowestProbability(board game.Board, observations []*Observation) bool {
	lowestProbability := float32(math.Inf(1))
	var lowest *game.Cell

	for _, observation := range observations {
		probability := observation.MineProbability()
		if probability < lowestProbability {
			lowestProbability = probability
			lowest = observation.order[0]
		}
	}

	if lowest == nil {
		return false
	}

	director.log.WithFields(logrus.Fields{
		"cell":        lowest.String(),
		"probability": lowestProbability,
	}).Debug("guessing")
	board.Reveal(lowest.X(), lowest.Y())
	return true
}
