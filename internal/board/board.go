package board

import (
	"strconv"

	"chessmoves/internal/core"
)

const (
	Files = 8
	Ranks = 8
)

// Square is an immutable board cell. The zero value is not a valid
// square; construct through New, FromNotation or FromCoordinates so
// every Square in circulation is on the board.
type Square struct {
	file byte // 'A'..'H', normalized uppercase
	rank int  // 1..8
}

// New validates file and rank and builds a Square. Lowercase file
// letters are accepted and stored uppercase.
func New(file byte, rank int) (Square, error) {
	if file >= 'a' && file <= 'z' {
		file -= 'a' - 'A'
	}
	if file < 'A' || file > 'A'+Files-1 {
		return Square{}, &core.InvalidCoordinateError{File: string(file), Reason: core.ReasonFile}
	}
	if rank < 1 || rank > Ranks {
		return Square{}, &core.InvalidCoordinateError{File: string(file), Rank: strconv.Itoa(rank), Reason: core.ReasonRank}
	}
	return Square{file: file, rank: rank}, nil
}

// FromNotation parses two-character algebraic notation like "D5".
// Shape errors (wrong length, non-letter, non-digit) report
// InvalidNotationError; bounds checking is delegated to New.
func FromNotation(text string) (Square, error) {
	if len(text) != 2 {
		return Square{}, &core.InvalidNotationError{Text: text}
	}
	f, r := text[0], text[1]
	if !isLetter(f) || r < '0' || r > '9' {
		return Square{}, &core.InvalidNotationError{Text: text}
	}
	return New(f, int(r-'0'))
}

// FromCoordinates builds a Square from a zero-based file index
// (0=A .. 7=H) and a one-based rank.
func FromCoordinates(fileIndex, rank int) (Square, error) {
	if fileIndex < 0 || fileIndex > Files-1 {
		return Square{}, &core.InvalidCoordinateError{File: strconv.Itoa(fileIndex), Reason: core.ReasonFile}
	}
	return New(byte('A'+fileIndex), rank)
}

// File returns the uppercase file letter.
func (s Square) File() byte {
	return s.file
}

// FileIndex returns the zero-based column, 0=A .. 7=H.
func (s Square) FileIndex() int {
	return int(s.file - 'A')
}

// Rank returns the one-based rank.
func (s Square) Rank() int {
	return s.rank
}

// Notation renders the square as two characters, e.g. "D5". The exact
// inverse of FromNotation for every valid square.
func (s Square) Notation() string {
	return string([]byte{s.file, byte('0' + s.rank)})
}

func (s Square) String() string {
	return s.Notation()
}

// IsValid reports whether the square is on the board. Construction is
// the only validation gate, so this only fails for zero values that
// bypassed the constructors.
func (s Square) IsValid() bool {
	return s.file >= 'A' && s.file <= 'A'+Files-1 && s.rank >= 1 && s.rank <= Ranks
}

// Offset returns the square displaced by fileDelta columns and
// rankDelta rows. The second return is false when the result leaves
// the board; directional walks terminate on it instead of erroring.
func (s Square) Offset(fileDelta, rankDelta int) (Square, bool) {
	fi := s.FileIndex() + fileDelta
	r := s.rank + rankDelta
	if fi < 0 || fi > Files-1 || r < 1 || r > Ranks {
		return Square{}, false
	}
	return Square{file: byte('A' + fi), rank: r}, true
}

func isLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}
