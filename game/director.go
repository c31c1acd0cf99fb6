package game

// Director plays a board on its own
type Director interface {
	/**
	 * Perform a single step of actions, returning false if no action was
	 * possible
	 */
	Act(Board) bool
}

// Play lets the director act until the game ends, it gives up, or maxSteps
// steps have been taken (0 for no limit). It returns the number of steps taken.
func Play(board Board, director Director, maxSteps int) int {
	steps := 0
	for !board.GameOver() && (maxSteps <= 0 || steps < maxSteps) {
		if !director.Act(board) {
			break
		}
		steps++
	}
	return steps
}
