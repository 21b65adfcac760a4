// Package gsm holds the GSM 03.38 character repertoire and classifies text
// against it.
//
// Three alphabets are distinguished:
//
//   - Base7Bit: every character is in the default 7-bit table
//   - Extended7Bit: some characters come from the extension table ({, }, [, ],
//     ~, |, ^, \, €, form feed) and cost an extra escape septet each
//   - Unicode16: at least one character is outside both tables
//
// # Classification
//
//	alphabet, ext := gsm.DetectEncoding([]rune("price: 5€"))
//	// alphabet == gsm.Extended7Bit, ext == []rune{'€'}
//
// The priority is fixed: a single out-of-repertoire character anywhere forces
// Unicode16, regardless of what else the text contains.
//
// # Lookups
//
//	gsm.IsBase('é')        // true
//	gsm.IsExtension('€')   // true
//	gsm.InRepertoire('`')  // false
//
// The tables are package-level and read-only; all functions are safe for
// concurrent use.
package gsm
