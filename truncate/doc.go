// Package truncate shortens SMS text so it fits a segment budget.
//
// Cutting characters can change the alphabet a message needs: dropping the
// only non-GSM character turns a 70-character UCS-2 segment back into a
// 160-character GSM one. Truncation therefore recounts every candidate rather
// than computing a cut point directly.
//
// # Algorithm
//
// The search starts from the per-segment capacity of the untruncated text's
// alphabet (the multipart capacity when the budget exceeds two segments),
// keeps capacity×budget code points, recounts, and lowers the capacity by one
// until the candidate fits. The loop is bounded by the starting capacity.
//
// The result is not guaranteed to be the longest prefix that fits. Text whose
// only UCS-2 character sits past the cut is still searched from the UCS-2
// capacity.
//
// # Basic Usage
//
//	result, err := truncate.ToSegments(text, 2)
//
// Or with a truncator:
//
//	tr := truncate.NewAtWord().WithSuffix("...")
//	result, truncated, err := tr.Truncate(text, 1)
//
// # Strategies
//
//   - Hard: keep the prefix the search found (default)
//   - AtWord: back off to the last whitespace in the second half of that prefix
//
// # Errors
//
// A budget of zero or less returns ErrInvalidBudget. A suffix that does not
// fit the budget by itself returns ErrSuffixTooLong.
//
// Cuts are always on code point boundaries.
package truncate
