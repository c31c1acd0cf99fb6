package game

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

type GameMode int

const (
	Finite GameMode = iota
	Infinite
)

var gameModeNames = map[GameMode]string{
	Finite:   "finite",
	Infinite: "infinite",
}

func (mode GameMode) String() string {
	if name, ok := gameModeNames[mode]; ok {
		return name
	}
	return fmt.Sprint(int(mode))
}

// ParseGameMode returns the mode with the given name
func ParseGameMode(name string) (GameMode, error) {
	for mode, modeName := range gameModeNames {
		if modeName == name {
			return mode, nil
		}
	}
	return 0, errors.Wrapf(ErrUnknownMode, "%q", name)
}

func (mode GameMode) MarshalYAML() (interface{}, error) {
	return mode.String(), nil
}

func (mode *GameMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var name string
	if err := unmarshal(&name); err != nil {
		return err
	}
	parsed, err := ParseGameMode(name)
	if err != nil {
		return err
	}
	*mode = parsed
	return nil
}

type GameConfig struct {
	Mode GameMode `yaml:"mode"`

	// Finite board dimensions, in cells
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Number of mines on a finite board
	NumMines int `yaml:"mines"`

	// Probability of a mine in each cell of an infinite board
	MineDensity float64 `yaml:"density"`

	// Seed for finite mine placement
	Seed uint64 `yaml:"seed"`
	// Seed mixed into every infinite chunk
	WorldSeed uint64 `yaml:"world_seed"`
	// Reach of a single flood fill on an infinite board
	FloodDistance int `yaml:"flood_distance"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Mode:          Finite,
		Width:         30,
		Height:        16,
		NumMines:      99,
		MineDensity:   0.15,
		FloodDistance: DefaultFloodDistance,
	}
}

func (config GameConfig) Fields() logrus.Fields {
	fields := logrus.Fields{"mode": config.Mode.String()}
	switch config.Mode {
	case Finite:
		fields["width"] = config.Width
		fields["height"] = config.Height
		fields["mines"] = config.NumMines
		fields["seed"] = config.Seed
	case Infinite:
		fields["density"] = config.MineDensity
		fields["world_seed"] = config.WorldSeed
		fields["flood_distance"] = config.FloodDistance
	}
	return fields
}

// NewBoard creates a board of the configured mode
func (config GameConfig) NewBoard() (Board, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	switch config.Mode {
	case Infinite:
		return NewInfiniteBoard(InfiniteConfig{
			MineDensity:   config.MineDensity,
			WorldSeed:     config.WorldSeed,
			FloodDistance: config.FloodDistance,
		})
	default:
		return NewFiniteBoard(FiniteConfig{
			Width:    config.Width,
			Height:   config.Height,
			NumMines: config.NumMines,
			Seed:     config.Seed,
		})
	}
}
