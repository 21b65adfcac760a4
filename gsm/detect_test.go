package gsm

import (
	"encoding/json"
	"testing"

	"github.com/M2MGateway/go-smpp/coding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectEncoding(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected Alphabet
		ext      []rune
	}{
		{
			name:     "empty",
			text:     "",
			expected: Base7Bit,
		},
		{
			name:     "plain text",
			text:     "a GSM Text",
			expected: Base7Bit,
		},
		{
			name:     "carriage return and line feed",
			text:     "\n\r",
			expected: Base7Bit,
		},
		{
			name:     "one accent outside the table",
			text:     "café à Ñandú",
			expected: Unicode16,
		},
		{
			name:     "greek capitals",
			text:     "ΔΦΓΛΩΠΨΣΘΞ",
			expected: Base7Bit,
		},
		{
			name:     "single extension character",
			text:     "5€",
			expected: Extended7Bit,
			ext:      []rune{'€'},
		},
		{
			name:     "extension duplicates kept in order",
			text:     "{a}[b]{",
			expected: Extended7Bit,
			ext:      []rune{'{', '}', '[', ']', '{'},
		},
		{
			name:     "form feed is an extension",
			text:     "page\fbreak",
			expected: Extended7Bit,
			ext:      []rune{'\f'},
		},
		{
			name:     "backtick forces unicode",
			text:     "`",
			expected: Unicode16,
		},
		{
			name:     "unicode wins over extension",
			text:     "{[~]} ☃",
			expected: Unicode16,
		},
		{
			name:     "emoji",
			text:     "hi 😎",
			expected: Unicode16,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ext := DetectEncoding([]rune(tt.text))
			assert.Equal(t, tt.expected, got)
			assert.Equal(t, tt.ext, ext)
		})
	}
}

func TestDetectEncoding_OrderInsensitive(t *testing.T) {
	a, _ := DetectEncoding([]rune("`abc{"))
	b, _ := DetectEncoding([]rune("{abc`"))
	assert.Equal(t, Unicode16, a)
	assert.Equal(t, a, b)
}

func TestClassify(t *testing.T) {
	got, ext := Classify("a|b")
	assert.Equal(t, Extended7Bit, got)
	assert.Equal(t, []rune{'|'}, ext)
}

func TestRepertoire(t *testing.T) {
	for _, r := range BaseRunes() {
		assert.True(t, IsBase(r), "%q should be base", r)
		assert.False(t, IsExtension(r), "%q should not be extension", r)
	}
	for _, r := range ExtensionRunes() {
		assert.True(t, IsExtension(r), "%q should be extension", r)
		assert.False(t, IsBase(r), "%q should not be base", r)
		assert.True(t, InRepertoire(r))
	}

	assert.Len(t, BaseRunes(), 127)
	assert.Len(t, ExtensionRunes(), 10)

	for _, r := range []rune{'`', 'á', 'ç', '☃', 0x1F60E, 0xFEFF, 0xA0} {
		assert.False(t, InRepertoire(r), "%q should be outside the repertoire", r)
	}
}

func TestBaseRunes_ReturnsCopy(t *testing.T) {
	rs := BaseRunes()
	rs[0] = '`'
	assert.True(t, IsBase('\n'))
	assert.Equal(t, '\n', BaseRunes()[0])
}

func TestAlphabet_String(t *testing.T) {
	assert.Equal(t, "GSM_7BIT", Base7Bit.String())
	assert.Equal(t, "GSM_7BIT_EX", Extended7Bit.String())
	assert.Equal(t, "UTF16", Unicode16.String())
	assert.Equal(t, "Alphabet(9)", Alphabet(9).String())
}

func TestAlphabet_Is7Bit(t *testing.T) {
	assert.True(t, Base7Bit.Is7Bit())
	assert.True(t, Extended7Bit.Is7Bit())
	assert.False(t, Unicode16.Is7Bit())
}

func TestAlphabet_DataCoding(t *testing.T) {
	assert.Equal(t, coding.GSM7BitCoding, Base7Bit.DataCoding())
	assert.Equal(t, coding.GSM7BitCoding, Extended7Bit.DataCoding())
	assert.Equal(t, coding.UCS2Coding, Unicode16.DataCoding())
}

func TestAlphabet_JSON(t *testing.T) {
	type wrapper struct {
		Encoding Alphabet `json:"encoding"`
	}

	data, err := json.Marshal(wrapper{Encoding: Extended7Bit})
	require.NoError(t, err)
	assert.JSONEq(t, `{"encoding":"GSM_7BIT_EX"}`, string(data))

	var back wrapper
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, Extended7Bit, back.Encoding)

	_, err = json.Marshal(wrapper{Encoding: Alphabet(7)})
	assert.Error(t, err)

	err = json.Unmarshal([]byte(`{"encoding":"LATIN1"}`), &back)
	assert.Error(t, err)
}

func BenchmarkDetectEncoding(b *testing.B) {
	cps := []rune("Lorem ipsum dolor sit amet, consectetuer adipiscing elit. Aenean commodo ligula eget dolor {}")
	b.ResetTimer()
	for range b.N {
		DetectEncoding(cps)
	}
}
