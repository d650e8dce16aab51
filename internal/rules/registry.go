package rules

import (
	"chessmoves/internal/core"
)

// Registry maps piece kinds to their movement rules. Dispatch is
// data-driven: adding a piece kind means one Register call, call
// sites stay untouched.
type Registry struct {
	rules map[core.PieceKind]MovementRule
	order []core.PieceKind
}

// NewRegistry builds a registry with all supported piece kinds.
func NewRegistry() *Registry {
	r := &Registry{
		rules: make(map[core.PieceKind]MovementRule),
	}
	r.Register(core.PiecePawn, pawnRule{})
	r.Register(core.PieceKing, kingRule{})
	r.Register(core.PieceQueen, queenRule{})
	return r
}

// Register associates a rule with a piece kind. Re-registering a kind
// replaces its rule without changing its position in SupportedKinds.
func (r *Registry) Register(kind core.PieceKind, rule MovementRule) {
	if _, exists := r.rules[kind]; !exists {
		r.order = append(r.order, kind)
	}
	r.rules[kind] = rule
}

// Resolve returns the movement rule for a piece kind.
func (r *Registry) Resolve(kind core.PieceKind) (MovementRule, error) {
	rule, ok := r.rules[kind]
	if !ok {
		return nil, &core.UnsupportedPieceKindError{Name: kind.String()}
	}
	return rule, nil
}

// Supports reports whether a rule is registered for the piece kind.
func (r *Registry) Supports(kind core.PieceKind) bool {
	_, ok := r.rules[kind]
	return ok
}

// SupportedKinds returns the registered kinds in registration order.
func (r *Registry) SupportedKinds() []core.PieceKind {
	kinds := make([]core.PieceKind, len(r.order))
	copy(kinds, r.order)
	return kinds
}
