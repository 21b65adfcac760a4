package template

import (
	"errors"
	"fmt"
	"strings"
	"text/template"

	"github.com/randalmurphal/smskit/segments"
)

var (
	// ErrEmpty is returned for an empty template.
	ErrEmpty = errors.New("empty message template")

	// ErrParse wraps shorthand conversion and text/template parse failures.
	ErrParse = errors.New("parse message template")

	// ErrExecute wraps failures while rendering.
	ErrExecute = errors.New("render message template")

	// ErrVariable is returned by ValidateVariables for a missing variable.
	ErrVariable = errors.New("missing template variable")
)

// Engine renders SMS message templates with variable substitution.
// It supports both Go template syntax and Handlebars-like syntax.
type Engine struct {
	funcs   template.FuncMap
	counter segments.Counter
}

// NewEngine creates a new template engine with the default SMS helpers.
func NewEngine() *Engine {
	return &Engine{
		funcs:   defaultFuncs(),
		counter: segments.NewCounter(),
	}
}

// WithCounter sets the counter used by RenderCounted.
func (e *Engine) WithCounter(c segments.Counter) *Engine {
	e.counter = c
	return e
}

// Render executes the template with the given variables.
// Handlebars-like syntax is converted to Go template syntax before execution.
func (e *Engine) Render(templateStr string, variables map[string]any) (string, error) {
	tmpl, err := e.compile(templateStr)
	if err != nil {
		return "", err
	}

	var buf strings.Builder
	if execErr := tmpl.Execute(&buf, variables); execErr != nil {
		return "", fmt.Errorf("%w: %w", ErrExecute, execErr)
	}

	return buf.String(), nil
}

// RenderCounted renders the template and counts the segments the result
// needs.
func (e *Engine) RenderCounted(templateStr string, variables map[string]any) (string, segments.Result, error) {
	text, err := e.Render(templateStr, variables)
	if err != nil {
		return "", segments.Result{}, err
	}
	return text, e.counter.Count(text), nil
}

// Parse validates the template and returns the variables it references in
// order of first use.
func (e *Engine) Parse(templateStr string) ([]string, error) {
	if _, err := e.compile(templateStr); err != nil {
		return nil, err
	}
	return extractVariables(templateStr, e.funcs), nil
}

// AddFunc adds a custom template function.
// The function will be available in templates using the given name.
func (e *Engine) AddFunc(name string, fn any) {
	e.funcs[name] = fn
}

func (e *Engine) compile(templateStr string) (*template.Template, error) {
	if templateStr == "" {
		return nil, ErrEmpty
	}

	converted, err := convertSyntax(templateStr, e.funcs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	tmpl, err := template.New("message").Funcs(e.funcs).Parse(converted)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	return tmpl, nil
}

// ValidateVariables checks that all required variables are provided.
// Returns an error wrapping ErrVariable if any required variable is missing.
func ValidateVariables(required []string, provided map[string]any) error {
	for _, name := range required {
		if _, ok := provided[name]; !ok {
			return fmt.Errorf("%w: %s", ErrVariable, name)
		}
	}
	return nil
}
