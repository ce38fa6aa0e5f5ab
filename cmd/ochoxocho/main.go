// ochoxocho is an 8x8 block-placement puzzle for the terminal.
//
// Usage:
//
//	ochoxocho list              - List game variants
//	ochoxocho play [variant]    - Play a variant
//	ochoxocho menu              - Pick variants interactively
//	ochoxocho scores [variant]  - Show high scores
//	ochoxocho sim               - Run headless solver games
//	ochoxocho serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>     - Set tick rate (default: 30)
//	--seed <value>   - Set RNG seed for reproducible games
//	--db <path>      - Set database path (default: ~/.ochoxocho/scores.db)
//	--config <path>  - Use a custom config YAML
//	--debug          - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/draney98/ochoXocho/internal/games/ochoxocho"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagConfig string
	flagDebug  bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ochoxocho",
	Short: "ochoXocho - an 8x8 block puzzle in your terminal",
	Long: `ochoXocho is a block-placement puzzle on an 8x8 board. Place the three
shapes in your hand, fill whole rows or columns to clear them, and keep
going until nothing fits.

Available commands:
  list     - Show game variants
  play     - Play a variant directly
  menu     - Interactive variant picker
  scores   - View high scores
  sim      - Run headless games with the built-in solver
  serve    - Start SSH server for remote play

Examples:
  ochoxocho play
  ochoxocho play ochoxocho_classic
  ochoxocho play --difficulty hard
  ochoxocho sim --games 500 --workers 8
  ochoxocho serve --ssh :2222`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ochoxocho/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(serveCmd)
}
