package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/game"
)

var errUnknownAction = errors.New("unknown action")

type actionKind int

const (
	revealAction actionKind = iota
	flagAction
	chordAction
	printAction
)

var actionKinds = map[string]actionKind{
	"reveal": revealAction,
	"flag":   flagAction,
	"chord":  chordAction,
	"print":  printAction,
}

type action struct {
	kind actionKind
	x, y int
}

// parseAction parses a line such as "reveal 3 -4"
func parseAction(line string) (action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return action{}, errors.Wrap(errUnknownAction, "empty line")
	}

	kind, ok := actionKinds[strings.ToLower(fields[0])]
	if !ok {
		return action{}, errors.Wrapf(errUnknownAction, "%q", fields[0])
	}
	if kind == printAction {
		if len(fields) != 1 {
			return action{}, errors.Errorf("print takes no arguments, got %d", len(fields)-1)
		}
		return action{kind: kind}, nil
	}

	if len(fields) != 3 {
		return action{}, errors.Errorf("%s takes X and Y, got %d arguments", fields[0], len(fields)-1)
	}
	x, err := strconv.Atoi(fields[1])
	if err != nil {
		return action{}, errors.Wrap(err, "parsing X")
	}
	y, err := strconv.Atoi(fields[2])
	if err != nil {
		return action{}, errors.Wrap(err, "parsing Y")
	}
	return action{kind: kind, x: x, y: y}, nil
}

func (a action) apply(board game.Board, out io.Writer) error {
	switch a.kind {
	case revealAction:
		board.Reveal(a.x, a.y)
	case flagAction:
		board.ToggleFlag(a.x, a.y)
	case chordAction:
		board.Chord(a.x, a.y)
	case printAction:
		return renderBoard(out, board)
	}
	return nil
}

// runActions applies actions read from in, one per line, until the input
// runs out or the game ends. Blank lines and lines starting with # are
// skipped, and unparseable lines are reported to out.
func runActions(in io.Reader, out io.Writer, board game.Board) error {
	scanner := bufio.NewScanner(in)
	for !board.GameOver() && scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		a, err := parseAction(line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)
			continue
		}

		game.Log.WithFields(logrus.Fields{
			"action": line,
			"state":  board.State().String(),
		}).Debug("applying action")
		if err := a.apply(board, out); err != nil {
			return err
		}
	}
	return scanner.Err()
}
