package game

// Point is a world coordinate
type Point struct {
	X, Y int
}

// neighborOffsets lists the Moore neighborhood in row-major order
var neighborOffsets = [8]Point{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// collectNeighbors gathers the cells returned by cellAt for each neighbor of
// (x, y), skipping absent ones
func collectNeighbors(x, y int, cellAt func(x, y int) *Cell) []*Cell {
	neighbors := make([]*Cell, 0, len(neighborOffsets))
	for _, offset := range neighborOffsets {
		if neighbor := cellAt(x+offset.X, y+offset.Y); neighbor != nil {
			neighbors = append(neighbors, neighbor)
		}
	}
	return neighbors
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// chebyshev returns the chessboard distance between two points
func chebyshev(a, b Point) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}
