package core

import (
	"fmt"
	"strings"
)

// Reasons for InvalidCoordinateError
const (
	ReasonFile = "file"
	ReasonRank = "rank"
)

// InvalidCoordinateError reports a square outside the 8x8 board.
// Reason is "file" or "rank" depending on which component failed.
type InvalidCoordinateError struct {
	File   string
	Rank   string
	Reason string
}

func (e *InvalidCoordinateError) Error() string {
	if e.Reason == ReasonFile {
		return fmt.Sprintf("invalid file %q: must be A-H", e.File)
	}
	return fmt.Sprintf("invalid rank %q: must be 1-8", e.Rank)
}

// InvalidNotationError reports malformed square text, before any
// bounds checking happens.
type InvalidNotationError struct {
	Text string
}

func (e *InvalidNotationError) Error() string {
	return fmt.Sprintf("invalid square notation %q: expected a letter followed by a digit, e.g. D5", e.Text)
}

// UnsupportedPieceKindError reports a piece name outside the closed set.
type UnsupportedPieceKindError struct {
	Name string
}

func (e *UnsupportedPieceKindError) Error() string {
	return fmt.Sprintf("unsupported piece %q: supported pieces are %s", e.Name, strings.Join(PieceNames(), ", "))
}
