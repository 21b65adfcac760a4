package template

import (
	"strings"
	"text/template"

	"github.com/randalmurphal/smskit/sanitize"
)

// defaultFuncs are the SMS helpers. Helpers added with AddFunc take
// shorthand arguments the same way.
func defaultFuncs() template.FuncMap {
	return template.FuncMap{
		"gsm":      sanitize.ToGSM,
		"truncate": truncate,
		"upper":    strings.ToUpper,
		"lower":    strings.ToLower,
		"trim":     strings.TrimSpace,
		"replace":  strings.ReplaceAll,
		"default":  defaultValue,
	}
}

// truncate keeps at most maxLen code points. Longer values end in "..."
// within that length; for maxLen <= 3 the value is simply cut.
func truncate(s string, maxLen int) string {
	if maxLen < 0 {
		maxLen = 0
	}
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// defaultValue returns the default if the value is nil or an empty string.
// For other types (including zero values like 0), the original value is returned.
func defaultValue(val, defaultVal any) any {
	if val == nil {
		return defaultVal
	}
	if s, ok := val.(string); ok && s == "" {
		return defaultVal
	}
	return val
}
