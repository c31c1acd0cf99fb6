package cmd

import (
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/game"
)

var infiniteFlags struct {
	density       float64
	floodDistance int
}

var infiniteCmd = &cobra.Command{
	Use:   "infinite",
	Short: "Play an endless board, generated in chunks as play reaches them",
	Long: `Play an endless board, generated in 16x16 chunks as play reaches them.

The board opens at (0, 0), which is always clear of mines. Any coordinates,
negative included, may be revealed. An endless board is never won.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadGameConfig(cmd, game.Infinite)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("density") {
			config.MineDensity = infiniteFlags.density
		}
		if flags.Changed("flood-distance") {
			config.FloodDistance = infiniteFlags.floodDistance
		}

		return runGame(cmd, config)
	},
}

func init() {
	infiniteCmd.Flags().Float64Var(&infiniteFlags.density, "density", 0.15, "Probability of each cell holding a mine, within [0, 1)")
	infiniteCmd.Flags().IntVar(&infiniteFlags.floodDistance, "flood-distance", game.DefaultFloodDistance, "Furthest distance a single reveal may flood")
	addPlayFlags(infiniteCmd)
}
