package core

import "strings"

type PieceKind int

const (
	PiecePawn PieceKind = iota
	PieceKing
	PieceQueen
)

func (k PieceKind) String() string {
	switch k {
	case PiecePawn:
		return "Pawn"
	case PieceKing:
		return "King"
	case PieceQueen:
		return "Queen"
	default:
		return "Unknown"
	}
}

// Letter returns the single-character board symbol for the piece
func (k PieceKind) Letter() byte {
	switch k {
	case PiecePawn:
		return 'P'
	case PieceKing:
		return 'K'
	case PieceQueen:
		return 'Q'
	default:
		return '?'
	}
}

// PieceNames lists the supported piece names in canonical form
func PieceNames() []string {
	return []string{"Pawn", "King", "Queen"}
}

// ParsePieceKind matches free-form text against the supported set,
// case-insensitively
func ParsePieceKind(text string) (PieceKind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "pawn":
		return PiecePawn, nil
	case "king":
		return PieceKing, nil
	case "queen":
		return PieceQueen, nil
	default:
		return 0, &UnsupportedPieceKindError{Name: text}
	}
}
