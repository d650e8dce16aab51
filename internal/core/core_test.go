package core

import (
	"errors"
	"strings"
	"testing"
)

func TestParsePieceKind(t *testing.T) {
	tests := []struct {
		input   string
		want    PieceKind
		wantErr bool
	}{
		{"Pawn", PiecePawn, false},
		{"pawn", PiecePawn, false},
		{"PAWN", PiecePawn, false},
		{"pAWN", PiecePawn, false},
		{"King", PieceKing, false},
		{"queen", PieceQueen, false},
		{" queen ", PieceQueen, false},
		{"Rook", 0, true},
		{"Knight", 0, true},
		{"", 0, true},
		{"pawnn", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParsePieceKind(tt.input)
			if tt.wantErr {
				var kindErr *UnsupportedPieceKindError
				if !errors.As(err, &kindErr) {
					t.Fatalf("ParsePieceKind(%q) error = %v, want UnsupportedPieceKindError", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParsePieceKind(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParsePieceKind(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestUnsupportedPieceKindErrorNamesSupportedSet(t *testing.T) {
	_, err := ParsePieceKind("Rook")
	msg := err.Error()
	for _, name := range PieceNames() {
		if !strings.Contains(msg, name) {
			t.Errorf("error %q does not name supported piece %s", msg, name)
		}
	}
}

func TestPieceKindString(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want string
	}{
		{PiecePawn, "Pawn"},
		{PieceKing, "King"},
		{PieceQueen, "Queen"},
		{PieceKind(99), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("String(%d) = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestPieceKindLetter(t *testing.T) {
	tests := []struct {
		kind PieceKind
		want byte
	}{
		{PiecePawn, 'P'},
		{PieceKing, 'K'},
		{PieceQueen, 'Q'},
	}
	for _, tt := range tests {
		if got := tt.kind.Letter(); got != tt.want {
			t.Errorf("Letter(%v) = %c, want %c", tt.kind, got, tt.want)
		}
	}
}
