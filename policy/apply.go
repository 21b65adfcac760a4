package policy

import (
	"github.com/randalmurphal/smskit/sanitize"
	"github.com/randalmurphal/smskit/segments"
	"github.com/randalmurphal/smskit/template"
	"github.com/randalmurphal/smskit/truncate"
)

// Outcome is the result of applying a policy to a message.
type Outcome struct {
	// Text is the message as it should be sent.
	Text string `json:"text" yaml:"text"`

	// Original is the input text, or the rendered template.
	Original string `json:"original" yaml:"original"`

	// OriginalResult is the segmentation of Original.
	OriginalResult segments.Result `json:"original_result" yaml:"original_result"`

	// Result is the segmentation of Text.
	Result segments.Result `json:"result" yaml:"result"`

	// DataCoding is the SMPP data_coding value to submit Text with.
	DataCoding uint8 `json:"data_coding" yaml:"data_coding"`

	// Sanitized is true if sanitizing changed the text.
	Sanitized bool `json:"sanitized" yaml:"sanitized"`

	// Truncated is true if the text was cut to fit MaxSegments.
	Truncated bool `json:"truncated" yaml:"truncated"`
}

// Apply sanitizes text if enabled, truncates it to MaxSegments if set, and
// counts the result.
func (p *Policy) Apply(text string) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}
	return p.apply(text, segments.Count(text))
}

// ApplyTemplate renders tmpl with vars and applies the policy to the
// rendered text.
func (p *Policy) ApplyTemplate(tmpl string, vars map[string]any) (Outcome, error) {
	if err := p.Validate(); err != nil {
		return Outcome{}, err
	}
	text, rendered, err := template.NewEngine().RenderCounted(tmpl, vars)
	if err != nil {
		return Outcome{}, err
	}
	return p.apply(text, rendered)
}

func (p *Policy) apply(text string, original segments.Result) (Outcome, error) {
	out := Outcome{Text: text, Original: text, OriginalResult: original}

	if p.Sanitize {
		s := &sanitize.Sanitizer{
			Replacement: p.Replacement,
			Typographic: p.Typographic,
			Decompose:   p.Decompose,
		}
		sanitized, err := s.Sanitize(out.Text)
		if err != nil {
			return Outcome{}, err
		}
		out.Sanitized = sanitized != out.Text
		out.Text = sanitized
	}

	if p.MaxSegments > 0 {
		tr := truncate.NewHard()
		if p.WordBoundary {
			tr = truncate.NewAtWord()
		}
		truncated, changed, err := tr.WithSuffix(p.Suffix).Truncate(out.Text, p.MaxSegments)
		if err != nil {
			return Outcome{}, err
		}
		out.Text = truncated
		out.Truncated = changed
	}

	out.Result = segments.Count(out.Text)
	out.DataCoding = uint8(out.Result.Encoding.DataCoding())
	return out, nil
}
