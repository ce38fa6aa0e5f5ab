package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/draney98/ochoXocho/internal/games/ochoxocho"
	"github.com/draney98/ochoXocho/internal/games/ochoxocho/core"
	"github.com/draney98/ochoXocho/internal/platform/tui"
	"github.com/draney98/ochoXocho/internal/registry"
	"github.com/draney98/ochoXocho/internal/storage"
)

var (
	flagMode       string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing ochoXocho. The variant defaults to "ochoxocho".

Variants:
  ochoxocho          - Hands are generated to fit the current board
  ochoxocho_classic  - Hands are drawn at random

Controls:
  Arrows/WASD    - Move cursor
  1-3/Tab        - Select hand slot
  Enter/Space    - Place the selected shape
  X              - Let the solver place the hand
  M              - Toggle generation mode for the next hand
  P/Esc          - Pause
  R              - Restart
  Ctrl+S         - Save a screenshot
  Q/Ctrl+C       - Quit

Mode options (remembered per variant):
  guaranteed-fit - Every hand can be placed on the board it was dealt for
  unconstrained  - Every hand is random

Difficulty options:
  easy   - Guaranteed-fit hands with a deeper fit search
  normal - Config values as loaded
  hard   - Random hands, block values grow half as fast

Examples:
  ochoxocho play
  ochoxocho play ochoxocho_classic
  ochoxocho play --mode unconstrained
  ochoxocho play --difficulty hard --config ./my-ochoxocho.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Generation mode: guaranteed-fit, unconstrained")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := ochoxocho.IDGuaranteed
	if len(args) > 0 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'ochoxocho list' to see available variants.")
		os.Exit(1)
	}
	if flagMode != "" {
		if _, ok := core.ParseMode(flagMode); !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagMode)
			os.Exit(1)
		}
	}

	if err := play(gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(gameID string) error {
	if _, err := loadConfig(flagDifficulty); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closer := gameLogger()
	defer closer.Close()
	ochoxocho.SetLogger(logger)

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	if err := rememberMode(store, gameID); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not save mode: %v\n", err)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// rememberMode stores --mode as the variant's saved mode so the game model
// picks it up.
func rememberMode(store *storage.Store, gameID string) error {
	if flagMode == "" || store == nil {
		return nil
	}
	return store.SaveSetting(tui.ModeSettingKey(gameID), flagMode)
}
