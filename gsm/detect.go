package gsm

import "github.com/randalmurphal/smskit/codepoint"

// DetectEncoding decides which alphabet a sequence of code points needs.
//
// A single code point outside the 7-bit repertoire selects Unicode16 and the
// returned extension slice is nil. Otherwise every extension-table occurrence
// is returned, in input order and with duplicates, and the alphabet is
// Extended7Bit when there is at least one. An empty sequence is Base7Bit.
func DetectEncoding(cps []rune) (Alphabet, []rune) {
	for _, r := range cps {
		if !InRepertoire(r) {
			return Unicode16, nil
		}
	}

	var ext []rune
	for _, r := range cps {
		if IsExtension(r) {
			ext = append(ext, r)
		}
	}
	if len(ext) > 0 {
		return Extended7Bit, ext
	}
	return Base7Bit, nil
}

// Classify decodes text and runs DetectEncoding on it.
func Classify(text string) (Alphabet, []rune) {
	return DetectEncoding(codepoint.DecodeString(text))
}
