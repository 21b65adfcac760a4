package template

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"
)

// action matches one {{...}} tag of the shorthand: an optional block sigil,
// a leading word, and whatever arguments follow it.
var action = regexp.MustCompile(`\{\{\s*([#/]?)([a-zA-Z_]\w*)((?:\s+[^{}]*?)?)\s*\}\}`)

// argument splits helper arguments, keeping quoted strings whole.
var argument = regexp.MustCompile("\"(?:[^\"\\\\]|\\\\.)*\"|`[^`]*`|\\S+")

var identifier = regexp.MustCompile(`^[a-zA-Z_]\w*$`)

// goKeywords pass through untouched.
var goKeywords = map[string]bool{
	"if": true, "else": true, "end": true, "range": true, "with": true,
	"define": true, "template": true, "block": true, "break": true, "continue": true,
}

// convertSyntax rewrites the shorthand into Go template syntax:
//
//	{{name}}                 -> {{.name}}
//	{{#if vip}}..{{/if}}     -> {{if .vip}}..{{end}}
//	{{truncate store 20}}    -> {{truncate .store 20}}
//
// Tags already in Go syntax ({{.name}}, {{if .x}}) are left alone. Any other
// block helper is an error.
func convertSyntax(input string, funcs template.FuncMap) (string, error) {
	var err error
	out := action.ReplaceAllStringFunc(input, func(tag string) string {
		m := action.FindStringSubmatch(tag)
		sigil, word, args := m[1], m[2], strings.TrimSpace(m[3])

		switch {
		case sigil == "#" && word == "if" && args != "":
			return "{{if " + convertArguments(args, funcs) + "}}"
		case sigil == "/" && word == "if" && args == "":
			return "{{end}}"
		case sigil != "":
			if err == nil {
				err = fmt.Errorf("unsupported block {{%s%s}}", sigil, word)
			}
			return tag
		case goKeywords[word]:
			return tag
		case funcs[word] != nil:
			if args == "" {
				return tag
			}
			return "{{" + word + " " + convertArguments(args, funcs) + "}}"
		case args == "":
			return "{{." + word + "}}"
		default:
			return tag
		}
	})
	return out, err
}

// convertArguments prefixes bare identifiers with a dot. Literals, fields,
// pipes and function names are kept.
func convertArguments(args string, funcs template.FuncMap) string {
	parts := argument.FindAllString(args, -1)
	for i, part := range parts {
		if isVariable(part, funcs) {
			parts[i] = "." + part
		}
	}
	return strings.Join(parts, " ")
}

func isVariable(s string, funcs template.FuncMap) bool {
	switch s {
	case "true", "false", "nil":
		return false
	}
	return identifier.MatchString(s) && funcs[s] == nil && !goKeywords[s]
}

// extractVariables lists the variables a shorthand template references, in
// order of first use.
func extractVariables(templateStr string, funcs template.FuncMap) []string {
	seen := make(map[string]bool)
	var result []string
	add := func(name string) {
		if !seen[name] {
			seen[name] = true
			result = append(result, name)
		}
	}

	for _, m := range action.FindAllStringSubmatch(templateStr, -1) {
		sigil, word, args := m[1], m[2], strings.TrimSpace(m[3])
		switch {
		case sigil == "#" && word == "if", funcs[word] != nil:
			for _, part := range argument.FindAllString(args, -1) {
				if isVariable(part, funcs) {
					add(part)
				}
			}
		case sigil == "" && args == "" && !goKeywords[word]:
			add(word)
		}
	}
	return result
}
