package constraint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/gosweep/game"
)

func TestDirectorDeducesMine(t *testing.T) {
	board, err := game.NewFiniteBoardFromLayout([]string{
		"*.*",
		"...",
		"...",
	})
	require.NoError(t, err)

	board.Reveal(1, 2)
	require.Equal(t, 6, board.RevealedCount())
	require.Equal(t, game.Ongoing, board.State())

	director := New(1)

	// (0, 1) sees one mine in {(0, 0), (1, 0)}, and (1, 1) two in those plus
	// (2, 0), so (2, 0) must be a mine
	require.True(t, director.Act(board))
	assert.True(t, board.CellAt(2, 0).IsFlagged())
	assert.False(t, board.CellAt(0, 0).IsFlagged())
	assert.Equal(t, 1, board.FlagCount())

	// (2, 1) is now satisfied, so chording it clears (1, 0)
	require.True(t, director.Act(board))
	assert.True(t, board.CellAt(1, 0).IsRevealed())
	assert.True(t, board.Win())
}

func TestObservations(t *testing.T) {
	board, err := game.NewFiniteBoardFromLayout([]string{
		"*.*",
		"...",
		"...",
	})
	require.NoError(t, err)
	board.Reveal(1, 2)

	observations := New(1).observe(board)
	require.Len(t, observations, 5)

	assert.Equal(t, "Obs[  (0, 1), 1 ε (0, 0), (1, 0)]", observations[0].String())
	assert.Equal(t, float32(2)/3, observations[1].MineProbability())
	assert.Equal(t, "Obs[       ?, 1 ε (2, 0)]", observations[3].String())
	assert.Equal(t, "Obs[       ?, 1 ε (0, 0)]", observations[4].String())
}

func TestDirectorPlaysToTheEnd(t *testing.T) {
	for seed := uint64(0); seed < 10; seed++ {
		board, err := game.NewFiniteBoard(game.FiniteConfig{Width: 9, Height: 9, NumMines: 10, Seed: seed})
		require.NoError(t, err)

		steps := game.Play(board, New(seed), 10000)

		assert.True(t, board.GameOver(), "seed %d", seed)
		assert.Less(t, steps, 10000)
		for _, cell := range board.Cells() {
			if cell.IsFlagged() {
				assert.True(t, cell.IsMine(), "wrong flag on %v", cell)
			}
		}
	}
}

func TestDirectorOnInfiniteBoard(t *testing.T) {
	board, err := game.NewInfiniteBoard(game.InfiniteConfig{MineDensity: 0.1, WorldSeed: 2, FloodDistance: 8})
	require.NoError(t, err)

	revealed := board.RevealedCount()
	steps := game.Play(board, New(2), 20)

	assert.Greater(t, steps, 0)
	if !board.GameOver() {
		assert.Greater(t, board.RevealedCount()+board.FlagCount(), revealed)
	}
}
