// Package rules implements per-piece movement on an otherwise empty
// board. Each rule is a pure function of the origin square; rules
// never fail, never return the origin, and never leave the board.
package rules

import (
	"chessmoves/internal/board"
)

// MovementRule computes the legal destination squares for one piece
// kind from a given origin.
type MovementRule interface {
	ValidMoves(origin board.Square) []board.Square
}

// pawnRule moves a single step up the board. No captures, no double
// step, no promotion; a pawn on the last rank has no moves.
type pawnRule struct{}

func (pawnRule) ValidMoves(origin board.Square) []board.Square {
	forward, ok := origin.Offset(0, 1)
	if !ok {
		return nil
	}
	return []board.Square{forward}
}

// kingRule moves one step in any of the eight directions.
type kingRule struct{}

func (kingRule) ValidMoves(origin board.Square) []board.Square {
	return castAllDirections(origin, 1)
}

// queenRule slides to the board edge in all eight directions.
type queenRule struct{}

func (queenRule) ValidMoves(origin board.Square) []board.Square {
	return castAllDirections(origin, unlimitedSteps)
}
