package puzzle

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultRestoreDelay is the pause between restore steps.
const DefaultRestoreDelay = 300 * time.Millisecond

// DefaultSettleDuration is the length of snap and settle animations.
const DefaultSettleDuration = 100 * time.Millisecond

// Settings holds the tunable parameters of a puzzle.
type Settings struct {
	MinShuffleSteps int           // Shuffle makes at least this many moves
	MaxShuffleSteps int           // Random extra moves drawn from [0, MaxShuffleSteps)
	RestoreDelay    time.Duration // Delay between restore steps
	TapThreshold    float64       // Drags shorter than this commit as taps
	SettleDuration  time.Duration // Duration of snap and settle animations
}

// DefaultSettings returns the standard puzzle parameters.
func DefaultSettings() Settings {
	return Settings{
		MinShuffleSteps: DefaultMinShuffleSteps,
		MaxShuffleSteps: DefaultMaxShuffleSteps,
		RestoreDelay:    DefaultRestoreDelay,
		TapThreshold:    DefaultTapThreshold,
		SettleDuration:  DefaultSettleDuration,
	}
}

// Option configures a Puzzle.
type Option func(*Puzzle)

// WithSettings replaces the default settings.
func WithSettings(s Settings) Option {
	return func(p *Puzzle) { p.settings = s }
}

// WithRand sets the random source used by Shuffle.
func WithRand(rng *rand.Rand) Option {
	return func(p *Puzzle) { p.rng = rng }
}

// WithSeed seeds the random source used by Shuffle.
func WithSeed(seed int64) Option {
	return func(p *Puzzle) { p.rng = rand.New(rand.NewSource(seed)) }
}

// WithView attaches the rendering collaborator.
func WithView(v View) Option {
	return func(p *Puzzle) { p.view = v }
}

// WithScheduler sets the scheduler that paces Restore. It is required for
// Restore to run.
func WithScheduler(s Scheduler) Option {
	return func(p *Puzzle) { p.sched = s }
}

// WithLogger sets the logger for debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(p *Puzzle) { p.log = l }
}
