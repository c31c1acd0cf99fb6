package cmd

import (
	"github.com/spf13/cobra"
	"github.com/they4kman/gosweep/game"
)

var finiteFlags struct {
	width, height, mines int
}

var finiteCmd = &cobra.Command{
	Use:   "finite",
	Short: "Play a fixed-size board, whose first reveal never hits a mine",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadGameConfig(cmd, game.Finite)
		if err != nil {
			return err
		}

		flags := cmd.Flags()
		if flags.Changed("width") {
			config.Width = finiteFlags.width
		}
		if flags.Changed("height") {
			config.Height = finiteFlags.height
		}
		if flags.Changed("mines") {
			config.NumMines = finiteFlags.mines
		}

		return runGame(cmd, config)
	},
}

func init() {
	// Define our -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	finiteCmd.Flags().Bool("help", false, "Help for this command")

	finiteCmd.Flags().IntVarP(&finiteFlags.width, "width", "w", 30, "Width of game board, in cells")
	finiteCmd.Flags().IntVarP(&finiteFlags.height, "height", "h", 16, "Height of game board, in cells")
	finiteCmd.Flags().IntVarP(&finiteFlags.mines, "mines", "m", 99, "Number of mines to place in the game board")
	addPlayFlags(finiteCmd)
}
