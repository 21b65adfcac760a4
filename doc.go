// Package smskit counts, sanitizes and truncates SMS message text.
//
// SMS text travels in one of three GSM 03.38 alphabets. The alphabet decides
// how many characters fit in a segment, and so how many segments a message
// is billed as. Each subpackage can be used independently:
//
//   - gsm: the 7-bit repertoire and alphabet detection
//   - codepoint: UTF-8 and UTF-16 code point helpers
//   - segments: segment counting and budgets
//   - truncate: cut text to a segment budget
//   - sanitize: fold text into the 7-bit repertoire
//   - policy: sanitizing and truncation settings from env or file
//   - template: render message templates and count the result
//
// # Quick Start
//
// Counting:
//
//	import "github.com/randalmurphal/smskit/segments"
//	res := segments.Count("Hello ☃")
//	// res.Encoding: UTF16, res.Messages: 1, res.Remaining: 63
//
// Truncating:
//
//	import "github.com/randalmurphal/smskit/truncate"
//	text, err := truncate.ToSegments(long, 2)
//
// Sanitizing:
//
//	import "github.com/randalmurphal/smskit/sanitize"
//	text := sanitize.ToGSM("Crème brûlée") // "Crème brulée"
//
// All of it together:
//
//	import "github.com/randalmurphal/smskit/policy"
//	p := policy.Policy{MaxSegments: 1, Sanitize: true, WordBoundary: true}
//	out, err := p.Apply(text)
package smskit
