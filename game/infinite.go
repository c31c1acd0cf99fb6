package game

import (
	"cmp"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/gosweep/util/collections"
)

type InfiniteConfig struct {
	// Probability of each cell outside a safe zone holding a mine
	MineDensity float64

	// Mixed into every chunk's seed. Boards sharing a world seed lay out
	// identically.
	WorldSeed uint64

	// Furthest (Chebyshev) distance from the revealed cell a single flood
	// fill may reach. Defaults to DefaultFloodDistance.
	FloodDistance int
}

// InfiniteBoard is an unbounded board, generated in ChunkSize x ChunkSize
// chunks as play reaches them. Cells are never discarded once generated. An
// infinite board cannot be won.
type InfiniteBoard struct {
	play

	mineDensity   float64
	worldSeed     uint64
	floodDistance int

	cells           map[Point]*Cell
	generatedChunks collections.Set[ChunkCoord]

	// Extent of the generated chunks, inclusive
	minChunk, maxChunk ChunkCoord
}

// NewInfiniteBoard creates a board and opens it at the origin, which is
// always clear of mines
func NewInfiniteBoard(config InfiniteConfig) (*InfiniteBoard, error) {
	if err := validateDensity(config.MineDensity); err != nil {
		return nil, err
	}
	if config.FloodDistance <= 0 {
		config.FloodDistance = DefaultFloodDistance
	}

	board := &InfiniteBoard{
		play:            newPlay(),
		mineDensity:     config.MineDensity,
		worldSeed:       config.WorldSeed,
		floodDistance:   config.FloodDistance,
		cells:           make(map[Point]*Cell),
		generatedChunks: make(collections.Set[ChunkCoord]),
	}

	origin := ChunkCoordOf(0, 0)
	board.minChunk, board.maxChunk = origin, origin

	board.ensureChunkNeighborhood(origin, safeZone{center: Point{0, 0}, radius: InitialSafeRadius})
	board.Reveal(0, 0)

	return board, nil
}

func (board *InfiniteBoard) MineDensity() float64 {
	return board.mineDensity
}

func (board *InfiniteBoard) WorldSeed() uint64 {
	return board.worldSeed
}

func (board *InfiniteBoard) IsChunkGenerated(chunk ChunkCoord) bool {
	return board.generatedChunks.Contains(chunk)
}

func (board *InfiniteBoard) GeneratedChunks() int {
	return board.generatedChunks.Len()
}

// Bounds returns the top-left and bottom-right cells of the generated area
func (board *InfiniteBoard) Bounds() (topLeft, bottomRight Point) {
	topLeft = board.minChunk.Origin()
	bottomRight = board.maxChunk.Origin()
	bottomRight.X += ChunkSize - 1
	bottomRight.Y += ChunkSize - 1
	return topLeft, bottomRight
}

func (board *InfiniteBoard) CellAt(x, y int) *Cell {
	return board.cells[Point{x, y}]
}

func (board *InfiniteBoard) Neighbors(x, y int) []*Cell {
	return collectNeighbors(x, y, board.CellAt)
}

func (board *InfiniteBoard) Cells() []*Cell {
	cells := make([]*Cell, 0, len(board.cells))
	for _, cell := range board.cells {
		cells = append(cells, cell)
	}
	slices.SortFunc(cells, func(a, b *Cell) int {
		if c := cmp.Compare(a.y, b.y); c != 0 {
			return c
		}
		return cmp.Compare(a.x, b.x)
	})
	return cells
}

func (board *InfiniteBoard) FloodDistance() int {
	return board.floodDistance
}

// floodNeighbors returns a NeighborGetter which keeps a flood started at
// start within the flood distance
func (board *InfiniteBoard) floodNeighbors(start Point) NeighborGetter {
	return func(cell *Cell) []*Cell {
		neighbors := board.Neighbors(cell.x, cell.y)
		inRange := neighbors[:0]
		for _, neighbor := range neighbors {
			if chebyshev(start, Point{neighbor.x, neighbor.y}) <= board.floodDistance {
				inRange = append(inRange, neighbor)
			}
		}
		return inRange
	}
}

// ensureChunkGenerated generates the chunk containing (x, y), unless it
// already exists. Cells within any of the safe zones never become mines.
func (board *InfiniteBoard) ensureChunkGenerated(x, y int, safe ...safeZone) {
	board.ensureChunk(ChunkCoordOf(x, y), safe...)
}

func (board *InfiniteBoard) ensureChunk(chunk ChunkCoord, safe ...safeZone) {
	if board.generatedChunks.Contains(chunk) {
		return
	}
	board.generateChunk(chunk, safe)
}

// ensureChunkNeighborhood generates the chunk and its 8 neighboring chunks
func (board *InfiniteBoard) ensureChunkNeighborhood(chunk ChunkCoord, safe ...safeZone) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			board.ensureChunk(ChunkCoord{chunk.X + dx, chunk.Y + dy}, safe...)
		}
	}
}

// ensureNeighborChunks generates every chunk holding a neighbor of the cell,
// so the cell's adjacency count is final
func (board *InfiniteBoard) ensureNeighborChunks(cell *Cell) {
	for _, offset := range neighborOffsets {
		board.ensureChunkGenerated(cell.x+offset.X, cell.y+offset.Y)
	}
}

func (board *InfiniteBoard) generateChunk(chunk ChunkCoord, safe []safeZone) {
	board.generatedChunks.Add(chunk)

	board.minChunk.X = min(board.minChunk.X, chunk.X)
	board.minChunk.Y = min(board.minChunk.Y, chunk.Y)
	board.maxChunk.X = max(board.maxChunk.X, chunk.X)
	board.maxChunk.Y = max(board.maxChunk.Y, chunk.Y)

	rng := chunkRand(chunk, board.worldSeed)
	origin := chunk.Origin()
	numMines := 0

	for y := origin.Y; y < origin.Y+ChunkSize; y++ {
		for x := origin.X; x < origin.X+ChunkSize; x++ {
			pos := Point{x, y}
			cell, exists := board.cells[pos]
			if !exists {
				cell = newCell(x, y)
				board.cells[pos] = cell
			}

			// Draw for every cell, so safe zones never shift the rest of the layout
			roll := rng.Float64()
			if roll < board.mineDensity && !inSafeZone(pos, safe) {
				cell.isMine = true
				numMines++
			}
		}
	}

	// Recount the chunk and its 1-cell border; absent cells are not mines
	for y := origin.Y - 1; y <= origin.Y+ChunkSize; y++ {
		for x := origin.X - 1; x <= origin.X+ChunkSize; x++ {
			if cell := board.CellAt(x, y); cell != nil && !cell.isMine {
				cell.adjacentMines = countMines(board.Neighbors(x, y))
			}
		}
	}

	Log.WithFields(logrus.Fields{
		"chunk": chunk.String(),
		"mines": numMines,
		"safe":  len(safe),
	}).Debug("generated chunk")
}

func (board *InfiniteBoard) Reveal(x, y int) {
	if !board.canPlay() {
		return
	}

	chunk := ChunkCoordOf(x, y)
	if board.CellAt(x, y) == nil {
		board.ensureChunkNeighborhood(chunk, safeZone{center: Point{x, y}, radius: SafeRadius})
	} else {
		board.ensureChunkNeighborhood(chunk)
	}

	board.revealFrom(board.CellAt(x, y), board.ensureNeighborChunks, board.floodNeighbors(Point{x, y}))
}

func (board *InfiniteBoard) ToggleFlag(x, y int) bool {
	if !board.canPlay() {
		return false
	}
	board.ensureChunkGenerated(x, y)
	return board.toggleFlag(board.CellAt(x, y))
}

func (board *InfiniteBoard) Chord(x, y int) {
	if !board.canPlay() {
		return
	}

	cell := board.CellAt(x, y)
	if cell == nil || !cell.isRevealed {
		return
	}
	board.ensureChunkNeighborhood(ChunkCoordOf(x, y))

	for _, neighbor := range chordable(cell, board.Neighbors(x, y)) {
		board.Reveal(neighbor.x, neighbor.y)
		if board.GameOver() {
			break
		}
	}
}
