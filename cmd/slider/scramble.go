package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-slider/internal/platform/export"
	"github.com/vovakirdan/tui-slider/internal/puzzle"
)

var (
	flagMoves   string
	flagRestore bool
	flagDelay   time.Duration
	flagPNG     string
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Shuffle a board without the UI",
	Long: `Shuffles a board and prints it with its move history. With --moves the
board is scrambled by the given empty-cell steps instead (U, D, L, R).

With --restore the history is then replayed backwards in real time, one
step per --delay, printing the board after every step.

Examples:
  slider scramble --seed 7
  slider scramble --preset hard --png board.png
  slider scramble --moves ULLDR --restore --delay 100ms`,
	Args: cobra.NoArgs,
	RunE: runScramble,
}

func init() {
	scrambleCmd.Flags().StringVar(&flagPreset, "preset", "", "Board preset name")
	scrambleCmd.Flags().IntVar(&flagCols, "cols", 0, "Board columns (overrides preset)")
	scrambleCmd.Flags().IntVar(&flagRows, "rows", 0, "Board rows (overrides preset)")
	scrambleCmd.Flags().StringVar(&flagMoves, "moves", "", "Apply these empty-cell steps instead of a random shuffle")
	scrambleCmd.Flags().BoolVar(&flagRestore, "restore", false, "Replay the history backwards after scrambling")
	scrambleCmd.Flags().DurationVar(&flagDelay, "delay", 0, "Delay between restore steps (default from config)")
	scrambleCmd.Flags().StringVar(&flagPNG, "png", "", "Also save the scrambled board as PNG")
}

func runScramble(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	settings := cfg.PuzzleSettings()
	if flagDelay > 0 {
		settings.RestoreDelay = flagDelay
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	loop := puzzle.NewLoop(0)
	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()
	go loop.Run(loopCtx)

	p := puzzle.New(
		puzzle.WithScheduler(loop),
		puzzle.WithSeed(seed),
		puzzle.WithSettings(settings),
		puzzle.WithLogger(logger),
	)

	var scrambleErr error
	err = loop.Do(ctx, func() {
		if scrambleErr = p.Configure(cfg.Board.Cols, cfg.Board.Rows); scrambleErr != nil {
			return
		}
		scrambleErr = scramble(p)
	})
	if err == nil {
		err = scrambleErr
	}
	if err != nil {
		return err
	}

	var board string
	var history puzzle.History
	if err := loop.Do(ctx, func() {
		board = p.Board().String()
		history = p.History()
	}); err != nil {
		return err
	}

	fmt.Println(board)
	fmt.Println()
	fmt.Printf("seed:    %d\n", seed)
	fmt.Printf("history: %s (%d steps)\n", history, len(history))
	fmt.Printf("solve:   %s\n", history.Inverse())

	if flagPNG != "" {
		var saveErr error
		if err := loop.Do(ctx, func() {
			saveErr = export.SavePNG(flagPNG, p.Board(), export.DefaultOptions())
		}); err != nil {
			return err
		}
		if saveErr != nil {
			return saveErr
		}
		logger.Info("board saved", "path", flagPNG)
	}

	if !flagRestore || len(history) == 0 {
		return nil
	}
	return replay(ctx, loop, p)
}

// scramble applies --moves, or a random shuffle when none are given.
func scramble(p *puzzle.Puzzle) error {
	if flagMoves == "" {
		p.Shuffle()
		return nil
	}

	moves, err := puzzle.ParseHistory(flagMoves)
	if err != nil {
		return err
	}
	for i, d := range moves {
		if !p.Move(d) {
			return fmt.Errorf("move %d (%s) leaves the board", i+1, d)
		}
	}
	return nil
}

// replay runs the restore on the loop and prints the board after each step.
func replay(ctx context.Context, loop *puzzle.Loop, p *puzzle.Puzzle) error {
	finished := make(chan struct{})

	if err := loop.Do(ctx, func() {
		p.Subscribe(func(e puzzle.Event) {
			switch e.Kind {
			case puzzle.EventMoved:
				fmt.Printf("\n%03d left\n%s\n", p.Steps(), p.Board())
			case puzzle.EventRestoreFinished, puzzle.EventRestoreCancelled:
				close(finished)
			}
		})
		p.Restore()
	}); err != nil {
		return err
	}

	select {
	case <-finished:
	case <-ctx.Done():
		return ctx.Err()
	}

	var solved bool
	if err := loop.Do(ctx, func() { solved = p.IsSolved() }); err != nil {
		return err
	}
	if solved {
		fmt.Println("\nsolved")
	}
	return nil
}
