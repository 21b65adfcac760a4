package gsm

import (
	"fmt"

	"github.com/M2MGateway/go-smpp/coding"
)

// Alphabet identifies the SMS character set a message is sent with.
type Alphabet int

const (
	// Base7Bit is the GSM 03.38 default alphabet.
	Base7Bit Alphabet = iota

	// Extended7Bit is the default alphabet plus extension-table characters,
	// each of which occupies two septets.
	Extended7Bit

	// Unicode16 is UCS-2/UTF-16, used when any character falls outside the
	// 7-bit repertoire.
	Unicode16
)

// String returns the alphabet's wire name.
func (a Alphabet) String() string {
	switch a {
	case Base7Bit:
		return "GSM_7BIT"
	case Extended7Bit:
		return "GSM_7BIT_EX"
	case Unicode16:
		return "UTF16"
	default:
		return fmt.Sprintf("Alphabet(%d)", int(a))
	}
}

// Is7Bit reports whether the alphabet packs characters into septets.
func (a Alphabet) Is7Bit() bool {
	return a == Base7Bit || a == Extended7Bit
}

// DataCoding returns the SMPP data_coding value used to submit a message
// written in this alphabet.
func (a Alphabet) DataCoding() coding.DataCoding {
	if a == Unicode16 {
		return coding.UCS2Coding
	}
	return coding.GSM7BitCoding
}

// MarshalText implements encoding.TextMarshaler.
func (a Alphabet) MarshalText() ([]byte, error) {
	switch a {
	case Base7Bit, Extended7Bit, Unicode16:
		return []byte(a.String()), nil
	default:
		return nil, fmt.Errorf("unknown alphabet %d", int(a))
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Alphabet) UnmarshalText(text []byte) error {
	parsed, err := ParseAlphabet(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// ParseAlphabet parses a wire name produced by Alphabet.String.
func ParseAlphabet(name string) (Alphabet, error) {
	switch name {
	case "GSM_7BIT":
		return Base7Bit, nil
	case "GSM_7BIT_EX":
		return Extended7Bit, nil
	case "UTF16":
		return Unicode16, nil
	default:
		return 0, fmt.Errorf("unknown alphabet %q", name)
	}
}
