package segments

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/randalmurphal/smskit/gsm"
)

func TestCapacityFor(t *testing.T) {
	tests := []struct {
		alphabet gsm.Alphabet
		expected Capacity
	}{
		{gsm.Base7Bit, Capacity{Single: 160, Multipart: 153}},
		{gsm.Extended7Bit, Capacity{Single: 160, Multipart: 153}},
		{gsm.Unicode16, Capacity{Single: 70, Multipart: 67}},
	}

	for _, tt := range tests {
		t.Run(tt.alphabet.String(), func(t *testing.T) {
			assert.Equal(t, tt.expected, CapacityFor(tt.alphabet))
		})
	}
}

func TestCapacity_PerMessage(t *testing.T) {
	c := CapacityFor(gsm.Base7Bit)
	assert.Equal(t, 160, c.PerMessage(0))
	assert.Equal(t, 160, c.PerMessage(160))
	assert.Equal(t, 153, c.PerMessage(161))
}

func TestGSMCounter_Count(t *testing.T) {
	digits := strings.Repeat("1234567890", 17)
	unicodeMultipage := "`" + strings.Repeat("1234567890", 7)

	tests := []struct {
		name     string
		text     string
		expected Result
	}{
		{
			name:     "empty",
			text:     "",
			expected: Result{Encoding: gsm.Base7Bit, Length: 0, PerMessage: 160, Remaining: 0, Messages: 0},
		},
		{
			name:     "gsm",
			text:     "a GSM Text",
			expected: Result{Encoding: gsm.Base7Bit, Length: 10, PerMessage: 160, Remaining: 150, Messages: 1},
		},
		{
			name:     "gsm symbols",
			text:     "a GSM +Text",
			expected: Result{Encoding: gsm.Base7Bit, Length: 11, PerMessage: 160, Remaining: 149, Messages: 1},
		},
		{
			name:     "gsm multipage",
			text:     digits,
			expected: Result{Encoding: gsm.Base7Bit, Length: 170, PerMessage: 153, Remaining: 136, Messages: 2},
		},
		{
			name:     "carriage return",
			text:     "\n\r",
			expected: Result{Encoding: gsm.Base7Bit, Length: 2, PerMessage: 160, Remaining: 158, Messages: 1},
		},
		{
			name:     "unicode",
			text:     "`",
			expected: Result{Encoding: gsm.Unicode16, Length: 1, PerMessage: 70, Remaining: 69, Messages: 1},
		},
		{
			name:     "unicode multipage",
			text:     unicodeMultipage,
			expected: Result{Encoding: gsm.Unicode16, Length: 71, PerMessage: 67, Remaining: 63, Messages: 2},
		},
		{
			name:     "extension counts twice",
			text:     "[x]",
			expected: Result{Encoding: gsm.Extended7Bit, Length: 5, PerMessage: 160, Remaining: 155, Messages: 1},
		},
		{
			name:     "extension fills one segment exactly",
			text:     strings.Repeat("€", 80),
			expected: Result{Encoding: gsm.Extended7Bit, Length: 160, PerMessage: 160, Remaining: 0, Messages: 1},
		},
		{
			name:     "extension spills into a second segment",
			text:     strings.Repeat("€", 80) + "a",
			expected: Result{Encoding: gsm.Extended7Bit, Length: 161, PerMessage: 153, Remaining: 145, Messages: 2},
		},
		{
			name:     "extension in unicode text counts once",
			text:     "€☃",
			expected: Result{Encoding: gsm.Unicode16, Length: 2, PerMessage: 70, Remaining: 68, Messages: 1},
		},
		{
			name:     "astral character is a surrogate pair",
			text:     "😎",
			expected: Result{Encoding: gsm.Unicode16, Length: 2, PerMessage: 70, Remaining: 68, Messages: 1},
		},
		{
			name:     "single segment boundary",
			text:     strings.Repeat("a", 160),
			expected: Result{Encoding: gsm.Base7Bit, Length: 160, PerMessage: 160, Remaining: 0, Messages: 1},
		},
		{
			name:     "first multipart length",
			text:     strings.Repeat("a", 161),
			expected: Result{Encoding: gsm.Base7Bit, Length: 161, PerMessage: 153, Remaining: 145, Messages: 2},
		},
		{
			name:     "two full parts",
			text:     strings.Repeat("a", 306),
			expected: Result{Encoding: gsm.Base7Bit, Length: 306, PerMessage: 153, Remaining: 0, Messages: 2},
		},
		{
			name:     "third part",
			text:     strings.Repeat("a", 307),
			expected: Result{Encoding: gsm.Base7Bit, Length: 307, PerMessage: 153, Remaining: 152, Messages: 3},
		},
		{
			name:     "unicode single boundary",
			text:     strings.Repeat("☃", 70),
			expected: Result{Encoding: gsm.Unicode16, Length: 70, PerMessage: 70, Remaining: 0, Messages: 1},
		},
	}

	c := NewCounter()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Count(tt.text))
		})
	}
}

func TestGSMCounter_Invariants(t *testing.T) {
	pieces := []string{"a", "1", " ", "é", "€", "{", "`", "☃", "😎", "\n", "Ω"}

	c := NewCounter()
	for _, piece := range pieces {
		for _, other := range pieces {
			for n := 0; n <= 400; n += 7 {
				text := strings.Repeat(piece, n) + other
				res := c.Count(text)

				assert.GreaterOrEqual(t, res.Remaining, 0, "text %q", text)
				assert.Equal(t, res.Length, res.PerMessage*res.Messages-res.Remaining, "text %q", text)
				assert.Equal(t, (res.Length+res.PerMessage-1)/res.PerMessage, res.Messages, "text %q", text)
			}
		}
	}
}

func TestGSMCounter_AlphabetProperties(t *testing.T) {
	c := NewCounter()

	base := string(gsm.BaseRunes())
	res := c.Count(base)
	assert.Equal(t, gsm.Base7Bit, res.Encoding)
	assert.Equal(t, len(gsm.BaseRunes()), res.Length)

	ext := string(gsm.ExtensionRunes())
	res = c.Count(base + ext)
	assert.Equal(t, gsm.Extended7Bit, res.Encoding)
	assert.Equal(t, len(gsm.BaseRunes())+2*len(gsm.ExtensionRunes()), res.Length)

	res = c.Count(base + ext + "`")
	assert.Equal(t, gsm.Unicode16, res.Encoding)
	assert.Equal(t, len(gsm.BaseRunes())+len(gsm.ExtensionRunes())+1, res.Length)
}

func TestGSMCounter_FitsInLimit(t *testing.T) {
	c := NewCounter()

	assert.True(t, c.FitsInLimit("", 0))
	assert.True(t, c.FitsInLimit(strings.Repeat("a", 160), 1))
	assert.False(t, c.FitsInLimit(strings.Repeat("a", 161), 1))
	assert.True(t, c.FitsInLimit(strings.Repeat("a", 161), 2))
}

func TestCount(t *testing.T) {
	assert.Equal(t, NewCounter().Count("hello"), Count("hello"))
}

func BenchmarkCount(b *testing.B) {
	text := strings.Repeat("Hello World {} ", 100)
	c := NewCounter()
	b.ResetTimer()
	for range b.N {
		c.Count(text)
	}
}
