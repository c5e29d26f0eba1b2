// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris                   - Play (same as tetris play)
//	tetris play              - Play a game
//	tetris keys              - Show key bindings
//	tetris config            - Print the effective configuration
//
// Global flags:
//
//	--start-level <n>   - Level to start at, 1-25 (default: 8)
//	--easy              - Start in easy mode
//	--difficulty <name> - Preset: easy, normal, hard, fixed
//	--fps <rate>        - Set tick rate (default: 100)
//	--seed <value>      - Set RNG seed for a reproducible piece sequence
//	--config <path>     - Path to a config YAML
//	--log-file <path>   - Write logs to this file
//	--log-level <name>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagStartLevel int
	flagEasy       bool
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - stack falling blocks in your terminal",
	Long: `Tetris drops tetrominoes onto a 10x18 board. Complete rows to clear
them and score; the game ends when a new piece cannot enter the board.

Available commands:
  play     - Play a game (default)
  keys     - Show key bindings
  config   - Print the effective configuration

Examples:
  tetris
  tetris play --start-level 1 --easy
  tetris play --difficulty hard
  tetris config --difficulty easy
  tetris play --log-file tetris.log --log-level debug`,
	Run: runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagStartLevel, "start-level", 8, "Level to start at (1-25)")
	pf.BoolVar(&flagEasy, "easy", false, "Start in easy mode")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.IntVar(&flagFPS, "fps", 100, "Tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logging)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(keysCmd)
	rootCmd.AddCommand(configCmd)
}
