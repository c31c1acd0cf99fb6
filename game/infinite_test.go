package game

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestInfinite(t *testing.T, config InfiniteConfig) *InfiniteBoard {
	t.Helper()
	board, err := NewInfiniteBoard(config)
	require.NoError(t, err)
	return board
}

// chunkMines returns the mine layout of a generated chunk, row-major
func chunkMines(board *InfiniteBoard, chunk ChunkCoord) []bool {
	origin := chunk.Origin()
	var mines []bool
	for y := origin.Y; y < origin.Y+ChunkSize; y++ {
		for x := origin.X; x < origin.X+ChunkSize; x++ {
			mines = append(mines, board.CellAt(x, y).IsMine())
		}
	}
	return mines
}

func TestChunkCoordOf(t *testing.T) {
	tests := []struct {
		x, y     int
		expected ChunkCoord
	}{
		{0, 0, ChunkCoord{0, 0}},
		{15, 15, ChunkCoord{0, 0}},
		{16, 0, ChunkCoord{1, 0}},
		{-1, -1, ChunkCoord{-1, -1}},
		{-16, -17, ChunkCoord{-1, -2}},
		{-17, 5, ChunkCoord{-2, 0}},
		{33, -32, ChunkCoord{2, -2}},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ChunkCoordOf(test.x, test.y), "chunk of (%d, %d)", test.x, test.y)
	}

	assert.Equal(t, Point{-32, 16}, ChunkCoord{-2, 1}.Origin())
}

func TestNewInfiniteBoardValidation(t *testing.T) {
	for _, density := range []float64{-0.1, 1, 1.5} {
		board, err := NewInfiniteBoard(InfiniteConfig{MineDensity: density})
		assert.True(t, errors.Is(err, ErrInvalidDensity), "density %v", density)
		assert.Nil(t, board)
	}
}

func TestInfiniteOpensAtOrigin(t *testing.T) {
	for _, density := range []float64{0.05, 0.15, 0.3, 0.6, 0.95} {
		for _, worldSeed := range []uint64{0, 1, 1234} {
			board := newTestInfinite(t, InfiniteConfig{MineDensity: density, WorldSeed: worldSeed})

			assert.False(t, board.GameOver(), "density %v seed %d", density, worldSeed)
			assert.False(t, board.Win())
			assert.True(t, board.CellAt(0, 0).IsRevealed())
			assert.Equal(t, 0, board.CellAt(0, 0).AdjacentMines())
			assert.GreaterOrEqual(t, board.RevealedCount(), 9)

			for y := -InitialSafeRadius; y <= InitialSafeRadius; y++ {
				for x := -InitialSafeRadius; x <= InitialSafeRadius; x++ {
					assert.False(t, board.CellAt(x, y).IsMine(), "mine at (%d, %d)", x, y)
				}
			}

			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					assert.True(t, board.IsChunkGenerated(ChunkCoord{dx, dy}))
				}
			}
		}
	}
}

func TestInfiniteEnsureChunkIdempotent(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.2})
	chunk := ChunkCoord{100, -100}
	require.False(t, board.IsChunkGenerated(chunk))

	board.ensureChunkGenerated(1600, -1600)
	require.True(t, board.IsChunkGenerated(chunk))
	before := chunkMines(board, chunk)
	generated := board.GeneratedChunks()

	board.ensureChunkGenerated(1615, -1585)
	board.ensureChunkGenerated(1600, -1600, safeZone{center: Point{1605, -1595}, radius: 3})

	assert.Equal(t, before, chunkMines(board, chunk))
	assert.Equal(t, generated, board.GeneratedChunks())
}

func TestInfiniteChunkDeterministic(t *testing.T) {
	chunk := ChunkCoord{7, -3}
	layout := func(worldSeed uint64) []bool {
		board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.3, WorldSeed: worldSeed})
		board.ensureChunk(chunk)
		return chunkMines(board, chunk)
	}

	assert.Equal(t, layout(5), layout(5))
	assert.NotEqual(t, layout(5), layout(6))
	assert.Contains(t, layout(5), true)
}

func TestInfiniteSafeZoneOnlyRemovesMines(t *testing.T) {
	chunk := ChunkCoord{-4, 9}
	zone := safeZone{center: chunk.Origin(), radius: 4}

	plain := newTestInfinite(t, InfiniteConfig{MineDensity: 0.4})
	plain.ensureChunk(chunk)

	safe := newTestInfinite(t, InfiniteConfig{MineDensity: 0.4})
	safe.ensureChunk(chunk, zone)

	for _, cell := range safe.Cells() {
		if ChunkCoordOf(cell.X(), cell.Y()) != chunk {
			continue
		}
		pos := Point{cell.X(), cell.Y()}
		if zone.contains(pos) {
			assert.False(t, cell.IsMine(), "mine in safe zone at %v", pos)
		} else {
			assert.Equal(t, plain.CellAt(pos.X, pos.Y).IsMine(), cell.IsMine(), "layout shifted at %v", pos)
		}
	}
}

func TestInfiniteZeroDensity(t *testing.T) {
	const distance = 10
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0, FloodDistance: distance})

	// Every cell is empty, so the first flood covers its full reach
	side := 2*distance + 1
	assert.Equal(t, side*side, board.RevealedCount())
	assert.True(t, board.CellAt(distance, -distance).IsRevealed())
	assert.False(t, board.CellAt(distance+1, 0).IsRevealed())

	for _, pos := range []Point{{1000, 1000}, {-500, 7}, {distance + 1, 0}, {-3000, -3000}} {
		board.Reveal(pos.X, pos.Y)
		assert.True(t, board.CellAt(pos.X, pos.Y).IsRevealed())
		assert.False(t, board.GameOver())
	}
}

func TestInfiniteRevealFreshTerritory(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.25, WorldSeed: 77})

	for _, pos := range []Point{{-1000, -1000}, {2048, -4095}, {-37, 5000}} {
		require.Nil(t, board.CellAt(pos.X, pos.Y))

		board.Reveal(pos.X, pos.Y)

		require.False(t, board.GameOver(), "lost revealing %v", pos)
		cell := board.CellAt(pos.X, pos.Y)
		assert.True(t, cell.IsRevealed())
		assert.Equal(t, 0, cell.AdjacentMines())
		for _, neighbor := range board.Neighbors(pos.X, pos.Y) {
			assert.False(t, neighbor.IsMine())
		}
	}
}

func TestInfiniteRevealedCountsAreFinal(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.2, WorldSeed: 3})
	board.Reveal(40, 40)
	board.Reveal(-200, 31)
	board.Reveal(15, -16)

	checked := 0
	for _, cell := range board.Cells() {
		if !cell.IsRevealed() || cell.IsMine() {
			continue
		}
		require.Len(t, board.Neighbors(cell.X(), cell.Y()), 8, "neighbors of %v", cell)
		assert.Equal(t, mineNeighbors(board, cell.X(), cell.Y()), cell.AdjacentMines(), "count of %v", cell)
		checked++
	}
	assert.Equal(t, board.RevealedCount(), checked)
}

func TestInfiniteRevealMine(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.3})

	var mine *Cell
	for _, cell := range board.Cells() {
		if cell.IsMine() {
			mine = cell
			break
		}
	}
	require.NotNil(t, mine)
	revealed := board.RevealedCount()

	board.Reveal(mine.X(), mine.Y())

	assert.True(t, mine.IsRevealed())
	assert.True(t, board.GameOver())
	assert.False(t, board.Win())
	assert.Equal(t, Lost, board.State())
	assert.Equal(t, revealed, board.RevealedCount())

	// Terminal: nothing else happens
	chunks := board.GeneratedChunks()
	board.Reveal(5000, 5000)
	assert.False(t, board.ToggleFlag(0, 0))
	assert.Equal(t, chunks, board.GeneratedChunks())
}

func TestInfiniteToggleFlag(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.15})
	require.Nil(t, board.CellAt(200, 200))

	assert.True(t, board.ToggleFlag(200, 200))
	assert.True(t, board.IsChunkGenerated(ChunkCoordOf(200, 200)))
	assert.True(t, board.CellAt(200, 200).IsFlagged())
	assert.Equal(t, 1, board.FlagCount())

	assert.True(t, board.ToggleFlag(200, 200))
	assert.Equal(t, 0, board.FlagCount())

	assert.False(t, board.ToggleFlag(0, 0))
	assert.Equal(t, 0, board.FlagCount())
}

func TestInfiniteChord(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.2, WorldSeed: 11})

	// Find a revealed number bordering an unrevealed safe cell
	var target *Cell
	for _, cell := range board.Cells() {
		if !cell.IsRevealed() || cell.AdjacentMines() == 0 {
			continue
		}
		for _, neighbor := range board.Neighbors(cell.X(), cell.Y()) {
			if !neighbor.IsRevealed() && !neighbor.IsMine() {
				target = cell
			}
		}
		if target != nil {
			break
		}
	}
	require.NotNil(t, target)
	neighbors := board.Neighbors(target.X(), target.Y())

	// No flags yet, so nothing happens
	revealed := board.RevealedCount()
	board.Chord(target.X(), target.Y())
	assert.Equal(t, revealed, board.RevealedCount())

	for _, neighbor := range neighbors {
		if neighbor.IsMine() {
			board.ToggleFlag(neighbor.X(), neighbor.Y())
		}
	}
	board.Chord(target.X(), target.Y())

	assert.False(t, board.GameOver())
	assert.Greater(t, board.RevealedCount(), revealed)
	for _, neighbor := range neighbors {
		assert.NotEqual(t, neighbor.IsMine(), neighbor.IsRevealed(), "neighbor %v", neighbor)
	}
}

func TestInfiniteBounds(t *testing.T) {
	board := newTestInfinite(t, InfiniteConfig{MineDensity: 0.5})
	topLeft, bottomRight := board.Bounds()
	assert.LessOrEqual(t, topLeft.X, -ChunkSize)
	assert.LessOrEqual(t, topLeft.Y, -ChunkSize)
	assert.GreaterOrEqual(t, bottomRight.X, 2*ChunkSize-1)
	assert.GreaterOrEqual(t, bottomRight.Y, 2*ChunkSize-1)

	board.ToggleFlag(-100, 300)
	topLeft, bottomRight = board.Bounds()
	assert.LessOrEqual(t, topLeft.X, -112)
	assert.GreaterOrEqual(t, bottomRight.Y, 303)

	assert.Len(t, board.Cells(), board.GeneratedChunks()*ChunkSize*ChunkSize)
}
