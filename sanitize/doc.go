// Package sanitize rewrites text into the GSM 7-bit repertoire.
//
// Sanitizing runs in two steps. Accented and related characters are first
// folded through a static table (á to a, Þ to TH, non-breaking space to
// space). Whatever is still outside the repertoire is then removed or
// replaced. Letters already in the default table, such as é, ñ or Ø, are left
// alone.
//
//	sanitize.ToGSM("dadáó")                    // "dadao"
//	sanitize.RemoveNonGSM("ok` ñ")             // "ok ñ"
//	out, err := sanitize.ReplaceNonGSM(s, "?") // err is ErrInvalidReplacement
//	                                           // for replacements over one character
//
// # Sanitizer
//
// Sanitizer adds optional folds before stripping:
//
//	s := &sanitize.Sanitizer{Replacement: "?", Typographic: true, Decompose: true}
//	out, err := s.Sanitize("“Ǻngström”") // "\"Angström\""
package sanitize
