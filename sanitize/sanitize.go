package sanitize

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/randalmurphal/smskit/gsm"
)

// ErrInvalidReplacement is returned when a replacement is longer than one
// character.
var ErrInvalidReplacement = errors.New("replacement must be a single character")

// typographicFolds covers punctuation that word processors substitute for
// the plain ASCII forms.
var typographicFolds = map[rune]string{
	'‘': "'",
	'’': "'",
	'‚': ",",
	'′': "'",
	'“': "\"",
	'”': "\"",
	'„': "\"",
	'″': "\"",
	'‐': "-",
	'‑': "-",
	'–': "-",
	'—': "-",
	'−': "-",
	'…': "...",
}

// Sanitizer rewrites text so it can be sent with a 7-bit alphabet.
type Sanitizer struct {
	// Replacement is written in place of each character that cannot be
	// folded. Empty deletes such characters. At most one character.
	Replacement string

	// Typographic folds curly quotes, dashes and ellipses to ASCII.
	Typographic bool

	// Decompose folds remaining accented letters by dropping their
	// combining marks, when what is left is in the repertoire.
	Decompose bool
}

// Sanitize applies the accent table, the optional folds, and finally
// replaces whatever is still outside the repertoire.
func (s *Sanitizer) Sanitize(text string) (string, error) {
	if utf8.RuneCountInString(s.Replacement) > 1 {
		return "", ErrInvalidReplacement
	}

	text = FoldAccents(text)
	if s.Typographic {
		text = foldWith(text, typographicFolds)
	}
	if s.Decompose {
		text = decompose(text)
	}
	return ReplaceNonGSM(text, s.Replacement)
}

// FoldAccents maps accented and related characters to their closest
// plain-alphabet spelling. Expansions such as Þ to TH are applied as-is.
func FoldAccents(text string) string {
	return foldWith(text, accentFolds)
}

// RemoveNonGSM deletes every character outside the 7-bit repertoire.
func RemoveNonGSM(text string) string {
	out, _ := ReplaceNonGSM(text, "")
	return out
}

// ReplaceNonGSM replaces every character outside the 7-bit repertoire with
// replacement, keeping all other characters in place. An empty replacement
// deletes them.
func ReplaceNonGSM(text, replacement string) (string, error) {
	if utf8.RuneCountInString(replacement) > 1 {
		return "", ErrInvalidReplacement
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if gsm.InRepertoire(r) {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(replacement)
	}
	return sb.String(), nil
}

// ToGSM folds accents and removes what is left outside the repertoire.
func ToGSM(text string) string {
	return RemoveNonGSM(FoldAccents(text))
}

func foldWith(text string, folds map[rune]string) string {
	if isASCII(text) {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if folded, ok := folds[r]; ok {
			sb.WriteString(folded)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// decompose rewrites each out-of-repertoire rune whose NFD form, minus
// nonspacing marks, lands in the repertoire.
func decompose(text string) string {
	t := newMarkStripper()

	var sb strings.Builder
	sb.Grow(len(text))
	for _, r := range text {
		if gsm.InRepertoire(r) {
			sb.WriteRune(r)
			continue
		}
		t.Reset()
		if folded, ok := stripMarks(t, r); ok {
			sb.WriteString(folded)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// newMarkStripper returns a transformer that drops nonspacing marks. It
// holds state and must not be shared between goroutines.
func newMarkStripper() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

func stripMarks(t transform.Transformer, r rune) (string, bool) {
	out, _, err := transform.String(t, string(r))
	if err != nil || out == "" || out == string(r) {
		return "", false
	}
	for _, c := range out {
		if !gsm.InRepertoire(c) {
			return "", false
		}
	}
	return out, true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
