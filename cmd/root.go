package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/game"
)

var (
	configPath string
	logLevel   string
	seed       uint64
)

var rootCmd = &cobra.Command{
	Use:   "gosweep",
	Short: "Play manual or computer-driven Minesweeper",
	Long: `gosweep is a Minesweeper engine which supports human- or
computer-driven playing, on fixed-size or endless boards.

Play a fixed-size board, one action per line on stdin
	gosweep finite
	reveal 4 4
	flag 3 2
	chord 4 4
	print

Make the computer play an endless board for you
	gosweep infinite --director constraint --steps 500
`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		game.Log.SetLevel(level)
		game.Log.SetOutput(cmd.ErrOrStderr())
		game.Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadGameConfig reads the config file, if one was given, and applies the
// root flags over it
func loadGameConfig(cmd *cobra.Command, mode game.GameMode) (game.GameConfig, error) {
	config := game.NewGameConfig()
	if configPath != "" {
		var err error
		if config, err = game.LoadConfig(configPath); err != nil {
			return config, err
		}
	}
	config.Mode = mode

	if cmd.Flags().Changed("seed") {
		config.Seed = seed
		config.WorldSeed = seed
	} else if config.Seed == 0 {
		config.Seed = uint64(time.Now().UnixNano())
	}

	return config, nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file to read the game config from")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warning", "Minimum level of log messages (debug, info, warning, error)")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, `Seed for mine placement and the director.
Defaults to the current time on finite boards, and 0 (the canonical world) on infinite boards`)

	rootCmd.AddCommand(finiteCmd, infiniteCmd)
}
