package cli

import (
	"strings"

	"chessmoves/internal/board"
	"chessmoves/internal/cli"
	"chessmoves/internal/core"
	"chessmoves/internal/service"
)

// Handler processes one line of shell input at a time. The readline
// loop lives in cmd/chessmoves; the handler only dispatches.
type Handler struct {
	svc  *service.Service
	view *cli.CLI
}

func New(svc *service.Service, view *cli.CLI) *Handler {
	return &Handler{
		svc:  svc,
		view: view,
	}
}

// Execute dispatches a single command line. Returns false to exit.
func (h *Handler) Execute(line string) bool {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return true
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "quit", "exit":
		return false

	case "help", "?":
		h.view.ShowHelp()

	case "pieces":
		h.view.ShowMessage(strings.Join(h.svc.SupportedPieces(), ", "))

	case "board":
		if h.view.ToggleBoard() {
			h.view.ShowMessage("Board display: on")
		} else {
			h.view.ShowMessage("Board display: off")
		}

	case "color":
		if len(args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		theme := cli.ColorTheme(args[0])
		if err := h.view.SetTheme(theme); err != nil {
			h.view.ShowError(err)
		} else {
			h.view.ShowMessage("Color theme set to: " + args[0])
		}

	default:
		// Anything else is a move query
		if err := h.Query(parts); err != nil {
			h.view.ShowError(err)
		}
	}

	return true
}

// Query parses and runs a move query, rendering the result on
// success. The caller decides how to report the error; in the shell
// it never terminates the loop.
func (h *Handler) Query(args []string) error {
	req, err := cli.ParseRequest(args)
	if err != nil {
		return err
	}

	kind, err := core.ParsePieceKind(req.Piece)
	if err != nil {
		return err
	}

	origin, err := board.FromNotation(req.Square)
	if err != nil {
		return err
	}

	moves, err := h.svc.QueryMoves(kind, origin)
	if err != nil {
		return err
	}

	h.view.ShowMoves(kind, origin, moves)
	return nil
}
