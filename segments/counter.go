package segments

import (
	"github.com/randalmurphal/smskit/codepoint"
	"github.com/randalmurphal/smskit/gsm"
)

// Single-part and per-part capacities, in characters, for each alphabet.
// A concatenated message loses room to its User Data Header in every part.
const (
	GSM7BitLen            = 160
	GSM7BitLenMultipart   = 153
	GSM7BitExLen          = 160
	GSM7BitExLenMultipart = 153
	UTF16Len              = 70
	UTF16LenMultipart     = 67
)

// Capacity is the number of accounting units a segment holds.
type Capacity struct {
	// Single is the room in a message that fits in one segment.
	Single int

	// Multipart is the room in each part of a concatenated message.
	Multipart int
}

// CapacityFor returns the capacity table entry for an alphabet.
func CapacityFor(a gsm.Alphabet) Capacity {
	switch a {
	case gsm.Base7Bit:
		return Capacity{Single: GSM7BitLen, Multipart: GSM7BitLenMultipart}
	case gsm.Extended7Bit:
		return Capacity{Single: GSM7BitExLen, Multipart: GSM7BitExLenMultipart}
	default:
		return Capacity{Single: UTF16Len, Multipart: UTF16LenMultipart}
	}
}

// PerMessage picks the per-segment capacity for a message of length units.
func (c Capacity) PerMessage(length int) int {
	if length > c.Single {
		return c.Multipart
	}
	return c.Single
}

// Result describes how a text is carried over SMS.
type Result struct {
	// Encoding is the alphabet the text needs.
	Encoding gsm.Alphabet `json:"encoding" yaml:"encoding"`

	// Length is the number of accounting units the text occupies.
	Length int `json:"length" yaml:"length"`

	// PerMessage is the capacity of each segment.
	PerMessage int `json:"per_message" yaml:"per_message"`

	// Remaining is the unused room in the last segment.
	Remaining int `json:"remaining" yaml:"remaining"`

	// Messages is the number of segments.
	Messages int `json:"messages" yaml:"messages"`
}

// Counter computes segmentation for text.
type Counter interface {
	// Count classifies text and computes its segmentation.
	Count(text string) Result

	// FitsInLimit returns true if text needs at most limit segments.
	FitsInLimit(text string, limit int) bool
}

// GSMCounter counts against the GSM 03.38 alphabets and UCS-2.
type GSMCounter struct{}

// NewCounter creates the default counter.
func NewCounter() *GSMCounter {
	return &GSMCounter{}
}

// Count classifies text and computes its segmentation.
func (c *GSMCounter) Count(text string) Result {
	cps := codepoint.DecodeString(text)
	encoding, ext := gsm.DetectEncoding(cps)

	var length int
	switch encoding {
	case gsm.Extended7Bit:
		// Each extension character is preceded by an escape septet.
		length = len(cps) + len(ext)
	case gsm.Unicode16:
		length = codepoint.UTF16Len(cps)
	default:
		length = len(cps)
	}

	perMessage := CapacityFor(encoding).PerMessage(length)
	messages := ceilDiv(length, perMessage)

	return Result{
		Encoding:   encoding,
		Length:     length,
		PerMessage: perMessage,
		Remaining:  perMessage*messages - length,
		Messages:   messages,
	}
}

// FitsInLimit returns true if text needs at most limit segments.
func (c *GSMCounter) FitsInLimit(text string, limit int) bool {
	return c.Count(text).Messages <= limit
}

// ceilDiv rounds up; zero length is zero segments.
func ceilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	return (n + d - 1) / d
}

// Count is a convenience function using the default counter.
func Count(text string) Result {
	return NewCounter().Count(text)
}
