package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/director/constraint"
	"github.com/they4kman/gosweep/director/random"
	"github.com/they4kman/gosweep/game"
)

type directorKind int

const (
	noDirector directorKind = iota
	randomDirector
	constraintDirector
)

var directorKinds = map[string]directorKind{
	"none":       noDirector,
	"random":     randomDirector,
	"constraint": constraintDirector,
}

// newDirector returns the director of this kind, or nil to play from stdin
func (kind directorKind) newDirector(seed uint64) game.Director {
	switch kind {
	case randomDirector:
		return random.New(seed)
	case constraintDirector:
		return constraint.New(seed)
	default:
		return nil
	}
}

type directorValue directorKind

func newDirectorValue(val directorKind, p *directorKind) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (kindVal *directorValue) String() string {
	for name, kind := range directorKinds {
		if kind == directorKind(*kindVal) {
			return name
		}
	}
	return fmt.Sprint(int(*kindVal))
}

func (kindVal *directorValue) Set(value string) error {
	if kind, isValid := directorKinds[value]; isValid {
		*kindVal = directorValue(kind)
		return nil
	} else {
		return errors.Errorf("invalid director %q", value)
	}
}

func (kindVal *directorValue) Type() string {
	return "director"
}

var playFlags struct {
	director directorKind
	steps    int
}

func addPlayFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(newDirectorValue(noDirector, &playFlags.director), "director", "d", `Make the computer play.
none: read actions from stdin, one per line (reveal X Y, flag X Y, chord X Y, print)
random: reveal random cells
constraint: flag and reveal cells by deduction, guessing only when stuck`)
	cmd.Flags().IntVar(&playFlags.steps, "steps", 10000, "Most steps the director may take (0 for no limit)")
}

func runGame(cmd *cobra.Command, config game.GameConfig) error {
	board, err := config.NewBoard()
	if err != nil {
		return err
	}
	game.Log.WithFields(config.Fields()).Info("starting game")

	out := cmd.OutOrStdout()

	if director := playFlags.director.newDirector(config.Seed); director != nil {
		steps := game.Play(board, director, playFlags.steps)
		game.Log.WithFields(logrus.Fields{
			"steps": steps,
			"state": board.State().String(),
		}).Info("director finished")
	} else if err := runActions(cmd.InOrStdin(), out, board); err != nil {
		return err
	}

	return renderBoard(out, board)
}
