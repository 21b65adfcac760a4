package truncate

import (
	"log/slog"

	"github.com/randalmurphal/smskit/segments"
)

// Strategy defines where the cut lands.
type Strategy int

const (
	// Hard cuts at the longest prefix the convergence search finds (default).
	Hard Strategy = iota

	// AtWord backs the hard cut off to the last whitespace in its second half.
	AtWord
)

// String returns the strategy name.
func (s Strategy) String() string {
	switch s {
	case Hard:
		return "hard"
	case AtWord:
		return "word"
	default:
		return "unknown"
	}
}

// Truncator shortens text to fit a segment budget.
type Truncator struct {
	counter  segments.Counter
	strategy Strategy
	suffix   string
	logger   *slog.Logger
}

// New creates a truncator with the given strategy.
func New(strategy Strategy) *Truncator {
	return &Truncator{
		counter:  segments.NewCounter(),
		strategy: strategy,
		logger:   slog.Default(),
	}
}

// NewHard creates a truncator that cuts at the search result.
func NewHard() *Truncator {
	return New(Hard)
}

// NewAtWord creates a truncator that prefers word boundaries.
func NewAtWord() *Truncator {
	return New(AtWord)
}

// WithCounter sets a custom segment counter.
func (t *Truncator) WithCounter(counter segments.Counter) *Truncator {
	t.counter = counter
	return t
}

// WithSuffix sets a marker appended to truncated text. The suffix is counted
// inside the budget.
func (t *Truncator) WithSuffix(suffix string) *Truncator {
	t.suffix = suffix
	return t
}

// WithLogger sets the logger used for debug output.
func (t *Truncator) WithLogger(logger *slog.Logger) *Truncator {
	if logger == nil {
		logger = slog.Default()
	}
	t.logger = logger
	return t
}

// Truncate reduces text to at most budget segments.
// Returns the result and whether truncation occurred. Text that already fits
// is returned unchanged.
func (t *Truncator) Truncate(text string, budget int) (string, bool, error) {
	if budget <= 0 {
		return "", false, ErrInvalidBudget
	}

	original := t.counter.Count(text)
	if original.Messages <= budget {
		return text, false, nil
	}

	if t.suffix != "" && !t.counter.FitsInLimit(t.suffix, budget) {
		return "", false, ErrSuffixTooLong
	}

	runes := []rune(text)
	cut, iterations := t.search(runes, original, budget)

	if t.strategy == AtWord {
		cut = wordBoundary(runes, cut)
	}

	t.logger.Debug("truncated message to segment budget",
		slog.Int("budget", budget),
		slog.Int("original_segments", original.Messages),
		slog.Int("original_length", len(runes)),
		slog.Int("kept", cut),
		slog.Int("iterations", iterations),
		slog.String("strategy", t.strategy.String()))

	return string(runes[:cut]) + t.suffix, true, nil
}

// Strategy returns the truncator's strategy.
func (t *Truncator) Strategy() Strategy {
	return t.strategy
}

// Suffix returns the truncator's suffix.
func (t *Truncator) Suffix() string {
	return t.suffix
}
