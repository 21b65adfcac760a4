// Package codepoint converts between UTF-8 text and Unicode code point
// sequences, and measures text in UTF-16 code units.
//
//	cps := codepoint.DecodeString("héllo")   // []rune{'h', 'é', 'l', 'l', 'o'}
//	s := codepoint.EncodeString(cps)          // "héllo"
//	n := codepoint.UTF16Len([]rune("😎"))     // 2
//
// Decoding is lenient: invalid UTF-8 becomes U+FFFD rather than an error.
package codepoint
