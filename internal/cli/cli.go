package cli

import (
	"fmt"
	"io"
	"strings"

	"chessmoves/internal/board"
	"chessmoves/internal/core"
)

type ColorTheme string

const (
	ThemeOff   ColorTheme = "off"
	ThemeBrown ColorTheme = "brown"
	ThemeGreen ColorTheme = "green"
	ThemeGray  ColorTheme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	piece   string
	mark    string
	reset   string
}

var themes = map[ColorTheme]themeColors{
	ThemeOff: {
		lightBg: "",
		darkBg:  "",
		piece:   "",
		mark:    "",
		reset:   "",
	},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		piece:   "\033[97m",
		mark:    "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		piece:   "\033[97m",
		mark:    "\033[30m",
		reset:   "\033[0m",
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		piece:   "\033[97m",
		mark:    "\033[30m",
		reset:   "\033[0m",
	},
}

// CLI renders query results and messages. It never reads input; the
// transport layer owns the command loop.
type CLI struct {
	output    io.Writer
	theme     ColorTheme
	showBoard bool
}

func New(output io.Writer) *CLI {
	return &CLI{
		output:    output,
		theme:     ThemeOff,
		showBoard: false,
	}
}

func (c *CLI) SetTheme(theme ColorTheme) error {
	if _, ok := themes[theme]; !ok {
		return fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", theme)
	}
	c.theme = theme
	return nil
}

func (c *CLI) ToggleBoard() bool {
	c.showBoard = !c.showBoard
	return c.showBoard
}

func (c *CLI) SetShowBoard(show bool) {
	c.showBoard = show
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(fmt.Sprintf("Invalid input: %v", err))
}

// FormatMoves renders the sorted move list as comma-joined notation,
// e.g. "A4, B4, C4".
func FormatMoves(moves []string) string {
	if len(moves) == 0 {
		return "(no moves)"
	}
	return strings.Join(moves, ", ")
}

// ShowMoves prints the move list, plus the highlighted board when
// board display is enabled.
func (c *CLI) ShowMoves(kind core.PieceKind, origin board.Square, moves []board.Square) {
	notations := make([]string, len(moves))
	for i, sq := range moves {
		notations[i] = sq.Notation()
	}
	c.ShowMessage(FormatMoves(notations))

	if c.showBoard {
		c.DisplayBoard(kind, origin, moves)
	}
}

// DisplayBoard renders the 8x8 grid with the queried piece at its
// origin and an x on each destination square.
func (c *CLI) DisplayBoard(kind core.PieceKind, origin board.Square, moves []board.Square) {
	marked := make(map[board.Square]bool, len(moves))
	for _, sq := range moves {
		marked[sq] = true
	}

	theme := themes[c.theme]
	var sb strings.Builder

	sb.WriteString("\n  A B C D E F G H\n")

	for r := board.Ranks; r >= 1; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r))
		for f := 0; f < board.Files; f++ {
			sq, _ := board.FromCoordinates(f, r)

			cell := byte(' ')
			switch {
			case sq == origin:
				cell = kind.Letter()
			case marked[sq]:
				cell = 'x'
			}

			if c.theme == ThemeOff {
				if cell == ' ' {
					cell = '.'
				}
				sb.WriteString(fmt.Sprintf("%c ", cell))
			} else {
				// Light squares are those with even file+rank parity
				bg := theme.darkBg
				if (r+f)%2 == 0 {
					bg = theme.lightBg
				}

				if cell == ' ' {
					sb.WriteString(fmt.Sprintf("%s  %s", bg, theme.reset))
				} else {
					color := theme.mark
					if cell != 'x' {
						color = theme.piece
					}
					sb.WriteString(fmt.Sprintf("%s%s%c %s", bg, color, cell, theme.reset))
				}
			}
		}
		sb.WriteString(fmt.Sprintf(" %d\n", r))
	}
	sb.WriteString("  A B C D E F G H\n")

	c.ShowMessage(sb.String())
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <piece> <square>   - Query legal moves (e.g. 'queen E4', 'Pawn, A5')
  pieces             - List supported piece kinds
  board              - Toggle board display for query results
  color <theme>      - Set board color theme (off|brown|green|gray)
  quit/exit          - Exit the program
  help/?             - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage("Chess move query shell")
	c.ShowMessage("Enter a piece and a square, e.g. 'queen E4' or 'Pawn, A5'.")
	c.ShowMessage("Commands: pieces, board, color <theme>, help/?, quit/exit")
	c.ShowMessage("")
}
