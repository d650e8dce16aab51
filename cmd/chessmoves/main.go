// Package main implements the chessmoves command: a one-shot query
// for a piece's legal moves, or an interactive query shell when run
// without arguments.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"chessmoves/internal/cli"
	"chessmoves/internal/service"
	clitransport "chessmoves/internal/transport/cli"

	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	var (
		showBoard  = flag.Bool("board", false, "Render the board with destination squares highlighted")
		colorTheme = flag.String("color", "", "Board color theme: off, brown, green, gray (default: brown on a terminal, off when piped)")
	)
	flag.Usage = usage
	flag.Parse()

	svc := service.New()
	view := cli.New(os.Stdout)
	view.SetShowBoard(*showBoard)

	theme := cli.ColorTheme(*colorTheme)
	if *colorTheme == "" {
		// Colors only when stdout is a terminal
		theme = cli.ThemeOff
		if term.IsTerminal(int(os.Stdout.Fd())) {
			theme = cli.ThemeBrown
		}
	}
	if err := view.SetTheme(theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	handler := clitransport.New(svc, view)

	// One-shot mode: query from the command line, exit non-zero on
	// bad input
	if args := flag.Args(); len(args) > 0 {
		if err := handler.Query(args); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid input: %v\n", err)
			os.Exit(1)
		}
		return
	}

	runShell(view, handler)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  chessmoves [flags] <piece> <square>
  chessmoves [flags] "<piece>, <square>"
  chessmoves [flags]                      (interactive shell)

Examples:
  chessmoves queen E4
  chessmoves "Pawn, A5"
  chessmoves -board king D5

Flags:
`)
	flag.PrintDefaults()
}

func runShell(view *cli.CLI, handler *clitransport.Handler) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "moves> ",
		HistoryFile:     ".chessmoves_history",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start shell: %v\n", err)
		os.Exit(1)
	}
	defer rl.Close()

	view.ShowWelcome()

	for {
		line, err := rl.Readline()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !handler.Execute(line) {
			break
		}
	}
}
