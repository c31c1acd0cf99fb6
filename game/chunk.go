package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
)

type ChunkCoord struct {
	X, Y int
}

// ChunkCoordOf returns the chunk containing (x, y). Division floors towards
// negative infinity, so (-1, -1) lies in chunk (-1, -1).
func ChunkCoordOf(x, y int) ChunkCoord {
	return ChunkCoord{floorDiv(x, ChunkSize), floorDiv(y, ChunkSize)}
}

// Origin returns the top-left cell of the chunk
func (chunk ChunkCoord) Origin() Point {
	return Point{chunk.X * ChunkSize, chunk.Y * ChunkSize}
}

func (chunk ChunkCoord) String() string {
	return fmt.Sprintf("%d,%d", chunk.X, chunk.Y)
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// chunkRand returns the generator for a chunk. The seed is derived from the
// chunk's "cx,cy" string alone (plus the world seed), and PCG output is
// identical on every platform, so a chunk always lays out the same way.
func chunkRand(chunk ChunkCoord, worldSeed uint64) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(chunk.String()))
	return rand.New(rand.NewPCG(h.Sum64(), worldSeed))
}

// safeZone is a square of cells around center where no mines are placed
type safeZone struct {
	center Point
	radius int
}

func (zone safeZone) contains(p Point) bool {
	return chebyshev(zone.center, p) <= zone.radius
}

func inSafeZone(p Point, zones []safeZone) bool {
	for _, zone := range zones {
		if zone.contains(p) {
			return true
		}
	}
	return false
}
