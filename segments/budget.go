package segments

import "github.com/randalmurphal/smskit/gsm"

// Budget caps the number of segments a message may use.
type Budget struct {
	// MaxSegments is the largest segment count allowed.
	MaxSegments int

	counter Counter
}

// NewBudget creates a budget of maxSegments using the default counter.
func NewBudget(maxSegments int) *Budget {
	return &Budget{
		MaxSegments: maxSegments,
		counter:     NewCounter(),
	}
}

// WithCounter sets a custom counter.
func (b *Budget) WithCounter(counter Counter) *Budget {
	b.counter = counter
	return b
}

// Fits returns true if text needs no more than MaxSegments segments.
func (b *Budget) Fits(text string) bool {
	return b.counter.FitsInLimit(text, b.MaxSegments)
}

// Capacity returns the accounting units available within the budget for
// text in alphabet a. One segment has the single-part room; more segments
// each lose the concatenation header.
func (b *Budget) Capacity(a gsm.Alphabet) int {
	if b.MaxSegments <= 0 {
		return 0
	}
	c := CapacityFor(a)
	if b.MaxSegments == 1 {
		return c.Single
	}
	return c.Multipart * b.MaxSegments
}

// Remaining returns how many more accounting units text could grow by, in
// its current alphabet, before exceeding the budget.
func (b *Budget) Remaining(text string) int {
	res := b.counter.Count(text)
	remaining := b.Capacity(res.Encoding) - res.Length
	if remaining < 0 {
		return 0
	}
	return remaining
}
