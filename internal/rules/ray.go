package rules

import (
	"chessmoves/internal/board"
)

// Direction is a unit step on the board, each component in {-1, 0, 1}.
type Direction struct {
	File int
	Rank int
}

// The eight unit directions: orthogonals first, then diagonals. The
// order is fixed so raw rule output is reproducible before sorting.
var allDirections = [8]Direction{
	{1, 0}, {-1, 0}, {0, 1}, {0, -1},
	{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
}

// unlimitedSteps makes castRay walk until the board edge.
const unlimitedSteps = -1

// castRay walks from origin in a single direction, nearest square
// first, stopping at the board edge or after maxSteps squares.
// A maxSteps of 0 yields nothing; a negative maxSteps means no limit.
func castRay(origin board.Square, dir Direction, maxSteps int) []board.Square {
	var squares []board.Square
	current := origin
	for steps := 0; maxSteps < 0 || steps < maxSteps; steps++ {
		next, ok := current.Offset(dir.File, dir.Rank)
		if !ok {
			break
		}
		squares = append(squares, next)
		current = next
	}
	return squares
}

// castAllDirections concatenates castRay over all eight directions.
func castAllDirections(origin board.Square, maxSteps int) []board.Square {
	var squares []board.Square
	for _, dir := range allDirections {
		squares = append(squares, castRay(origin, dir, maxSteps)...)
	}
	return squares
}
