package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of tetris.

Controls:
  Up/W       - Rotate
  Left/A     - Move left
  Right/D    - Move right
  Down/S     - Soft drop
  Space      - Hard drop
  E          - Toggle easy mode (longer lock delay, landing preview)
  R          - Restart
  Q/Ctrl+C   - Quit
  Y/N        - Answer the game-over prompt

Difficulty options:
  easy   - Start at level 1 in easy mode
  normal - Start at level 8
  hard   - Start at level 15
  fixed  - Keep the config's start level and mode

Examples:
  tetris play
  tetris play --start-level 3
  tetris play --difficulty hard
  tetris play --seed 42 --config ./my-tetris.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, _, err := effectiveConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Get terminal size; fall back to the minimum when stdout is not a terminal
	width, height := tui.MinScreenW, tui.MinScreenH
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	if width < tui.MinScreenW || height < tui.MinScreenH {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n",
			width, height, tui.MinScreenW, tui.MinScreenH)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(cfg.ToSession(), cfg.ToRuntime(width, height), logger)

	// Close log before potential exit
	//nolint:errcheck // Best-effort close, nothing left to report to
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
