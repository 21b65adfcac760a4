package codepoint

import (
	"unicode/utf16"
	"unicode/utf8"

	xunicode "golang.org/x/text/encoding/unicode"
)

// Decode converts UTF-8 bytes to code points. Malformed sequences decode to
// U+FFFD, one per invalid byte. Empty input yields nil.
func Decode(b []byte) []rune {
	if len(b) == 0 {
		return nil
	}
	out, err := xunicode.UTF8.NewDecoder().Bytes(b)
	if err != nil {
		return []rune(string(b))
	}
	return []rune(string(out))
}

// DecodeString is Decode for strings.
func DecodeString(s string) []rune {
	if s == "" {
		return nil
	}
	if utf8.ValidString(s) {
		return []rune(s)
	}
	return Decode([]byte(s))
}

// Encode converts code points to UTF-8. Surrogate halves and values above
// U+10FFFF are written as U+FFFD.
func Encode(cps []rune) []byte {
	return []byte(string(cps))
}

// EncodeString is Encode returning a string.
func EncodeString(cps []rune) string {
	return string(cps)
}

// UTF16Len returns the number of UTF-16 code units needed for cps.
// Code points at or above U+10000 take a surrogate pair.
func UTF16Len(cps []rune) int {
	n := 0
	for _, r := range cps {
		size := utf16.RuneLen(r)
		if size < 0 {
			size = 1
		}
		n += size
	}
	return n
}

// EncodeUTF16BE encodes cps as big-endian UTF-16 without a byte order mark,
// the octet layout of a UCS-2 short message.
func EncodeUTF16BE(cps []rune) ([]byte, error) {
	enc := xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM).NewEncoder()
	return enc.Bytes(Encode(cps))
}
