package policy

import (
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/randalmurphal/smskit/gsm"
	"github.com/randalmurphal/smskit/sanitize"
	"github.com/randalmurphal/smskit/segments"
	"github.com/randalmurphal/smskit/truncate"
)

// Policy describes how outgoing message text is prepared.
type Policy struct {
	// --- Budget ---

	// MaxSegments caps the segments a message may use.
	// 0 means no limit and no truncation.
	MaxSegments int `json:"max_segments" yaml:"max_segments" toml:"max_segments" mapstructure:"max_segments" jsonschema:"minimum=0,description=Largest segment count a message may use. 0 disables truncation."`

	// WordBoundary backs truncation off to the last whitespace.
	WordBoundary bool `json:"word_boundary" yaml:"word_boundary" toml:"word_boundary" mapstructure:"word_boundary"`

	// Suffix is appended to truncated text, e.g. "...".
	// It must fit within MaxSegments on its own.
	Suffix string `json:"suffix" yaml:"suffix" toml:"suffix" mapstructure:"suffix"`

	// --- Sanitizing ---

	// Sanitize rewrites text into the GSM 7-bit repertoire before counting.
	Sanitize bool `json:"sanitize" yaml:"sanitize" toml:"sanitize" mapstructure:"sanitize"`

	// Replacement stands in for characters that cannot be folded.
	// Empty removes them. At most one character from the repertoire.
	Replacement string `json:"replacement" yaml:"replacement" toml:"replacement" mapstructure:"replacement" jsonschema:"maxLength=1"`

	// Typographic folds smart quotes, dashes and ellipses when sanitizing.
	Typographic bool `json:"typographic" yaml:"typographic" toml:"typographic" mapstructure:"typographic"`

	// Decompose folds accented letters missing from the accent table by
	// dropping their combining marks when sanitizing.
	Decompose bool `json:"decompose" yaml:"decompose" toml:"decompose" mapstructure:"decompose"`
}

// DefaultPolicy returns a Policy that counts text as-is.
// Typographic and Decompose take effect once Sanitize is enabled.
func DefaultPolicy() Policy {
	return Policy{
		Typographic: true,
		Decompose:   true,
	}
}

// LoadFromEnv populates policy fields from environment variables.
// Environment variables use the SMSKIT_ prefix and take precedence over
// existing values. Unparseable values are ignored.
//
// Supported variables:
//   - SMSKIT_MAX_SEGMENTS: segment budget
//   - SMSKIT_WORD_BOUNDARY: truncate at word boundaries (bool)
//   - SMSKIT_SUFFIX: suffix for truncated text
//   - SMSKIT_SANITIZE: sanitize to GSM 7-bit (bool)
//   - SMSKIT_REPLACEMENT: replacement character
//   - SMSKIT_TYPOGRAPHIC: fold typographic punctuation (bool)
//   - SMSKIT_DECOMPOSE: fold by dropping combining marks (bool)
func (p *Policy) LoadFromEnv() {
	if v := os.Getenv("SMSKIT_MAX_SEGMENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			p.MaxSegments = n
		}
	}
	loadBool("SMSKIT_WORD_BOUNDARY", &p.WordBoundary)
	if v, ok := os.LookupEnv("SMSKIT_SUFFIX"); ok {
		p.Suffix = v
	}
	loadBool("SMSKIT_SANITIZE", &p.Sanitize)
	if v, ok := os.LookupEnv("SMSKIT_REPLACEMENT"); ok {
		p.Replacement = v
	}
	loadBool("SMSKIT_TYPOGRAPHIC", &p.Typographic)
	loadBool("SMSKIT_DECOMPOSE", &p.Decompose)
}

func loadBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			*dst = b
		}
	}
}

// FromEnv creates a Policy from environment variables with defaults.
func FromEnv() Policy {
	p := DefaultPolicy()
	p.LoadFromEnv()
	return p
}

// Validate checks if the policy is usable.
func (p *Policy) Validate() error {
	if p.MaxSegments < 0 {
		return fmt.Errorf("max_segments must be >= 0, got %d", p.MaxSegments)
	}
	if utf8.RuneCountInString(p.Replacement) > 1 {
		return fmt.Errorf("replacement %q: %w", p.Replacement, sanitize.ErrInvalidReplacement)
	}
	for _, r := range p.Replacement {
		if !gsm.InRepertoire(r) {
			return fmt.Errorf("replacement %q is outside the GSM 7-bit repertoire", p.Replacement)
		}
	}
	if p.MaxSegments > 0 && p.Suffix != "" && !segments.NewBudget(p.MaxSegments).Fits(p.Suffix) {
		return fmt.Errorf("suffix %q: %w", p.Suffix, truncate.ErrSuffixTooLong)
	}
	return nil
}
