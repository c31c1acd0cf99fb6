package game

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidDimensions = errors.New("board dimensions must be positive")
	ErrTooManyMines      = errors.New("too many mines to keep the first click safe")
	ErrInvalidDensity    = errors.New("mine density must be within [0, 1)")
	ErrUnknownMode       = errors.New("unknown game mode")
)

// MaxMines returns the most mines a width x height board can hold while
// keeping a 3x3 block around the first click clear
func MaxMines(width, height int) int {
	return max(width*height-9, 0)
}

func validateFinite(width, height, numMines int) error {
	if width < 1 || height < 1 {
		return errors.Wrapf(ErrInvalidDimensions, "%dx%d", width, height)
	}
	if numMines < 0 || numMines > MaxMines(width, height) {
		return errors.Wrapf(ErrTooManyMines,
			"%d mines on %dx%d (max %d)", numMines, width, height, MaxMines(width, height))
	}
	return nil
}

func validateDensity(density float64) error {
	if !(density >= 0 && density < 1) {
		return errors.Wrapf(ErrInvalidDensity, "density %v", density)
	}
	return nil
}

func (config GameConfig) Validate() error {
	switch config.Mode {
	case Finite:
		return validateFinite(config.Width, config.Height, config.NumMines)
	case Infinite:
		return validateDensity(config.MineDensity)
	default:
		return errors.Wrapf(ErrUnknownMode, "mode %d", int(config.Mode))
	}
}

// ParseConfig reads a YAML config over the defaults from NewGameConfig
func ParseConfig(in []byte) (GameConfig, error) {
	config := NewGameConfig()
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrap(err, "parsing config")
	}
	return config, nil
}

func LoadConfig(path string) (GameConfig, error) {
	in, err := os.ReadFile(path)
	if err != nil {
		return NewGameConfig(), errors.Wrapf(err, "reading config %s", path)
	}
	return ParseConfig(in)
}

func (config GameConfig) Serialize() string {
	out, err := yaml.Marshal(config)
	if err != nil {
		panic(err)
	}
	return string(out)
}
