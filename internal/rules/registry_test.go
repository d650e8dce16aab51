package rules

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"chessmoves/internal/board"
	"chessmoves/internal/core"
)

func TestRegistryResolve(t *testing.T) {
	r := NewRegistry()

	for _, kind := range []core.PieceKind{core.PiecePawn, core.PieceKing, core.PieceQueen} {
		rule, err := r.Resolve(kind)
		if err != nil {
			t.Errorf("Resolve(%v) failed: %v", kind, err)
		}
		if rule == nil {
			t.Errorf("Resolve(%v) returned nil rule", kind)
		}
	}
}

func TestRegistryResolveUnknown(t *testing.T) {
	r := NewRegistry()

	_, err := r.Resolve(core.PieceKind(99))
	var kindErr *core.UnsupportedPieceKindError
	if !errors.As(err, &kindErr) {
		t.Fatalf("Resolve(99) error = %v, want UnsupportedPieceKindError", err)
	}
}

func TestRegistrySupports(t *testing.T) {
	r := NewRegistry()

	if !r.Supports(core.PieceQueen) {
		t.Error("Supports(Queen) = false")
	}
	if r.Supports(core.PieceKind(99)) {
		t.Error("Supports(99) = true")
	}
}

func TestRegistrySupportedKindsOrder(t *testing.T) {
	r := NewRegistry()

	want := []core.PieceKind{core.PiecePawn, core.PieceKing, core.PieceQueen}
	if diff := cmp.Diff(want, r.SupportedKinds()); diff != "" {
		t.Errorf("SupportedKinds mismatch (-want +got):\n%s", diff)
	}
}

// stationaryRule stands in for a future piece kind.
type stationaryRule struct{}

func (stationaryRule) ValidMoves(origin board.Square) []board.Square {
	return nil
}

// New kinds plug in through Register alone; no dispatch code changes.
func TestRegistryExtension(t *testing.T) {
	r := NewRegistry()
	extra := core.PieceKind(42)

	r.Register(extra, stationaryRule{})

	if !r.Supports(extra) {
		t.Fatal("registered kind not supported")
	}
	rule, err := r.Resolve(extra)
	if err != nil {
		t.Fatalf("Resolve failed after Register: %v", err)
	}
	if moves := rule.ValidMoves(board.Square{}); moves != nil {
		t.Errorf("stationary rule moved: %v", moves)
	}

	kinds := r.SupportedKinds()
	if kinds[len(kinds)-1] != extra {
		t.Errorf("new kind not appended in registration order: %v", kinds)
	}
}

func TestRegistryReRegisterKeepsOrder(t *testing.T) {
	r := NewRegistry()
	r.Register(core.PiecePawn, stationaryRule{})

	want := []core.PieceKind{core.PiecePawn, core.PieceKing, core.PieceQueen}
	if diff := cmp.Diff(want, r.SupportedKinds()); diff != "" {
		t.Errorf("SupportedKinds after re-register (-want +got):\n%s", diff)
	}

	rule, err := r.Resolve(core.PiecePawn)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := rule.(stationaryRule); !ok {
		t.Errorf("re-register did not replace the rule: %T", rule)
	}
}
