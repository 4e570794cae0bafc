package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-slider/internal/config"
	"github.com/vovakirdan/tui-slider/internal/core"
	"github.com/vovakirdan/tui-slider/internal/platform/tui"
)

var (
	flagPreset string
	flagCols   int
	flagRows   int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the puzzle",
	Long: `Start the puzzle on a solved board.

Controls:
  Mouse drag      - Slide a tile, or a whole row/column run, into the gap
  Arrows/WASD     - Slide the tile next to the gap
  Space           - Shuffle
  R               - Restore (replay history backwards)
  C               - Stop a running restore
  Y               - Copy move history to the clipboard
  Ctrl+S          - Save a screenshot (text and PNG)
  P               - Choose a board size
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Examples:
  slider play
  slider play --preset expert
  slider play --cols 3 --rows 5
  slider play --config ./my-slider.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset name (see 'slider presets')")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides preset)")
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides preset)")
}

// loadConfig reads the configuration and applies --preset, --cols and --rows.
func loadConfig() (config.SliderConfig, error) {
	cfg, err := config.LoadSlider(flagConfig)
	if err != nil {
		return cfg, err
	}

	if flagPreset != "" {
		if err := config.ApplyPreset(&cfg, flagPreset); err != nil {
			return cfg, err
		}
	}
	if flagCols > 0 {
		cfg.Board.Cols = flagCols
	}
	if flagRows > 0 {
		cfg.Board.Rows = flagRows
	}

	return cfg, cfg.Validate()
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	shotDir := ""
	if dir := config.UserDir(); dir != "" {
		shotDir = filepath.Join(dir, "screenshots")
	}

	logger.Info("starting", "cols", cfg.Board.Cols, "rows", cfg.Board.Rows, "fps", flagFPS)
	return tui.Run(tui.Options{
		Config:        cfg,
		Runtime:       runtime,
		Logger:        logger,
		ScreenshotDir: shotDir,
	})
}
