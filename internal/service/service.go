// Package service orchestrates move queries: rule resolution,
// de-duplication and canonical ordering of results.
package service

import (
	"sort"

	"chessmoves/internal/board"
	"chessmoves/internal/core"
	"chessmoves/internal/rules"
)

// Service answers single-piece move queries. It holds only the
// immutable rule registry, so concurrent callers need no coordination.
type Service struct {
	registry *rules.Registry
}

func New() *Service {
	return &Service{
		registry: rules.NewRegistry(),
	}
}

// QueryMoves computes the legal destinations for a piece kind from an
// origin square, de-duplicated and sorted ascending by file then rank.
func (s *Service) QueryMoves(kind core.PieceKind, origin board.Square) ([]board.Square, error) {
	rule, err := s.registry.Resolve(kind)
	if err != nil {
		return nil, err
	}

	raw := rule.ValidMoves(origin)

	// Rules produce no duplicates today, but the contract tolerates
	// them: keep the first occurrence of each square.
	seen := make(map[board.Square]struct{}, len(raw))
	moves := make([]board.Square, 0, len(raw))
	for _, sq := range raw {
		if _, dup := seen[sq]; dup {
			continue
		}
		seen[sq] = struct{}{}
		moves = append(moves, sq)
	}

	sort.Slice(moves, func(i, j int) bool {
		if moves[i].File() != moves[j].File() {
			return moves[i].File() < moves[j].File()
		}
		return moves[i].Rank() < moves[j].Rank()
	})

	return moves, nil
}

// Query is the text-level entry point used by the CLI: it parses the
// piece name and square notation, then delegates to QueryMoves and
// renders the result as notation strings. Parse and rule errors
// propagate unwrapped.
func (s *Service) Query(pieceText, squareText string) ([]string, error) {
	kind, err := core.ParsePieceKind(pieceText)
	if err != nil {
		return nil, err
	}

	origin, err := board.FromNotation(squareText)
	if err != nil {
		return nil, err
	}

	moves, err := s.QueryMoves(kind, origin)
	if err != nil {
		return nil, err
	}

	notations := make([]string, len(moves))
	for i, sq := range moves {
		notations[i] = sq.Notation()
	}
	return notations, nil
}

// SupportedPieces returns the piece names the service can answer for,
// in registration order.
func (s *Service) SupportedPieces() []string {
	kinds := s.registry.SupportedKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = k.String()
	}
	return names
}
