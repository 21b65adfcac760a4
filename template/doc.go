// Package template renders SMS message templates and counts the result.
//
// Templates use Go template syntax or a Handlebars-like shorthand that is
// converted before execution.
//
// # Syntax
//
//	Hi {{name}}, your code is {{code}}.
//	{{#if urgent}}URGENT: {{else}}Reminder: {{/if}}{{body}}
//	{{truncate store 20}}
//	{{gsm name | upper}}
//
// #if is the only block; other block helpers such as #each are rejected with
// ErrParse. Go template actions ({{.name}}, {{range .items}}) pass through.
//
// # Helpers
//
//   - gsm(s string) string - fold accents and drop characters outside the GSM 7-bit repertoire
//   - truncate(s string, maxLen int) string - cut to maxLen code points, ending in "..."
//   - upper, lower, trim - case and whitespace
//   - replace(s, old, new string) string - replace all occurrences
//   - default(val, defaultVal any) any - defaultVal when val is nil or ""
//
// Variables substituted into a message can change its alphabet. A single
// "ë" in a customer name moves the whole message to UCS-2 and cuts the
// segment capacity from 160 to 70; {{gsm name}} keeps it 7-bit.
//
// # Counting
//
//	engine := template.NewEngine()
//	text, result, err := engine.RenderCounted("Hi {{gsm name}}", map[string]any{"name": "Zoë"})
//	// text: "Hi Zoe", result.Messages: 1
//
// Functions added with AddFunc accept shorthand arguments like the
// built-in helpers.
//
// policy.Policy.ApplyTemplate renders a template and then sanitizes and
// truncates the result.
package template
