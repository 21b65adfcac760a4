package truncate

import (
	"unicode"

	"github.com/randalmurphal/smskit/segments"
)

// initialLimit picks the per-segment character count the search starts from.
// It is keyed off the alphabet of the untruncated text and the requested
// budget, not off the length of any candidate.
func initialLimit(original segments.Result, budget int) int {
	c := segments.CapacityFor(original.Encoding)
	if budget > 2 {
		return c.Multipart
	}
	return c.Single
}

// search cuts runes to limit*budget code points, recounts, and lowers limit
// by one until the candidate fits. Removing characters can change the
// alphabet, so every candidate is reclassified. Returns the number of runes
// kept and the iterations taken.
func (t *Truncator) search(runes []rune, original segments.Result, budget int) (int, int) {
	limit := initialLimit(original, budget)

	iterations := 0
	for {
		iterations++

		n := min(max(limit*budget, 0), len(runes))
		candidate := string(runes[:n]) + t.suffix
		limit--

		if n == 0 || t.counter.FitsInLimit(candidate, budget) {
			return n, iterations
		}
	}
}

// wordBoundary moves a cut of n runes back to the last whitespace, provided
// it lies in the second half of the kept text. A cut that already ends a
// word is kept.
func wordBoundary(runes []rune, n int) int {
	if n == 0 || n >= len(runes) {
		return n
	}
	if unicode.IsSpace(runes[n-1]) || unicode.IsSpace(runes[n]) {
		return n
	}

	for i := n - 1; i > n/2; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return n
}
