// Package segments computes how many SMS segments a text needs.
//
// A text is first classified with package gsm. Its length is then measured in
// accounting units for that alphabet:
//
//   - GSM_7BIT: one unit per character
//   - GSM_7BIT_EX: one unit per character plus one per extension character
//   - UTF16: one unit per UTF-16 code unit, so characters above U+FFFF count twice
//
// # Capacities
//
//	Alphabet     Single  Multipart
//	GSM_7BIT     160     153
//	GSM_7BIT_EX  160     153
//	UTF16        70      67
//
// The multipart capacity applies to every part once the text no longer fits in
// a single segment.
//
// # Counter
//
//	counter := segments.NewCounter()
//	res := counter.Count("a GSM Text")
//	// res.Encoding == gsm.Base7Bit, res.Length == 10, res.PerMessage == 160,
//	// res.Remaining == 150, res.Messages == 1
//	fits := counter.FitsInLimit(text, 2)
//
// For one-off counting:
//
//	res := segments.Count(text)
//
// An empty text is zero segments.
//
// # Budget
//
// Budget caps a message at a number of segments:
//
//	budget := segments.NewBudget(3)
//	budget.Fits(text)        // true if text needs <= 3 segments
//	budget.Remaining(text)   // units left before a 4th segment is needed
package segments
