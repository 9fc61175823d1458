package theme

import (
	"encoding/json"
	"log"
	"regexp"
	"strconv"
	"strings"

	"theme_ai_server/internal/types"
)

const (
	defaultLayoutNumber = 1
	maxLayoutNumber     = 5

	defaultStyle       = "modern"
	defaultColorScheme = "default"
	defaultIntent      = "Custom theme"
)

// defaultPageComponents is the fallback table used when the model reply
// contains no usable JSON. Every page requests at least one free component.
var defaultPageComponents = map[string][]string{
	"home":    {"heroimageslider", "promobanner", "newsletter"},
	"about":   {"imagetextcolumn", "team"},
	"contact": {"contactform", "contactinfo"},
	"signup":  {"newsletter"},
	"login":   {"imagetextcolumn"},
	"privacy": {"imagetextcolumn"},
	"terms":   {"imagetextcolumn"},
}

// trailingCommaPattern matches trailing commas before ] or }, an artifact
// models commonly leave in otherwise valid JSON.
var trailingCommaPattern = regexp.MustCompile(`,\s*([}\]])`)

// DefaultAnalysis returns the hard-coded fallback analysis. The maps are
// fresh on every call so callers may mutate the result.
func DefaultAnalysis() types.ThemeAnalysis {
	components := make(map[string][]string, len(types.ComponentPages))
	for _, page := range types.ComponentPages {
		components[page] = append([]string(nil), defaultPageComponents[page]...)
	}
	layouts := make(map[string]int, len(types.LayoutPages))
	for _, page := range types.LayoutPages {
		layouts[page] = defaultLayoutNumber
	}
	return types.ThemeAnalysis{
		PageComponents: components,
		PageLayouts:    layouts,
		Style:          defaultStyle,
		ColorScheme:    defaultColorScheme,
		Intent:         defaultIntent,
	}
}

// ParseAnalysis interprets raw model text as a ThemeAnalysis. It never fails:
// missing keys are defaulted, malformed values dropped, and text without a
// usable JSON object falls back to DefaultAnalysis. The same input always
// yields an identical result.
func ParseAnalysis(raw string) types.ThemeAnalysis {
	obj := ExtractJSONObject(raw)
	if obj == "" {
		log.Printf("WARN: No JSON object found in model reply, using default analysis")
		return DefaultAnalysis()
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(obj), &decoded); err != nil {
		log.Printf("WARN: Model JSON did not decode (%v), using default analysis", err)
		return DefaultAnalysis()
	}

	analysis := types.ThemeAnalysis{
		PageComponents: make(map[string][]string, len(types.ComponentPages)),
		PageLayouts:    make(map[string]int, len(types.LayoutPages)),
		Style:          stringField(decoded, "theme_style", defaultStyle),
		ColorScheme:    stringField(decoded, "color_scheme", defaultColorScheme),
		Intent:         stringField(decoded, "user_intent", defaultIntent),
	}
	for _, page := range types.ComponentPages {
		analysis.PageComponents[page] = componentTypes(decoded[page])
	}
	for _, page := range types.LayoutPages {
		analysis.PageLayouts[page] = layoutNumber(decoded[page+"_layout"])
	}
	return analysis
}

// ExtractJSONObject pulls the first balanced {...} substring out of free-form
// model text. Models wrap JSON in prose or code fences often enough that
// unmarshalling the whole reply directly is not viable. Returns "" when no
// balanced object exists.
func ExtractJSONObject(text string) string {
	for from := 0; from < len(text); {
		idx := strings.IndexByte(text[from:], '{')
		if idx < 0 {
			return ""
		}
		start := from + idx
		if obj := scanBalancedObject(text, start); obj != "" {
			return trailingCommaPattern.ReplaceAllString(obj, "$1")
		}
		from = start + 1
	}
	return ""
}

// scanBalancedObject returns text[start:end] for the object opening at start,
// or "" if the braces never balance. String literals and escapes are honored
// so braces inside values do not confuse the count.
func scanBalancedObject(text string, start int) string {
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(text); i++ {
		ch := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch ch {
		case '\\':
			if inString {
				escaped = true
			}
		case '"':
			inString = !inString
		case '{':
			if !inString {
				depth++
			}
		case '}':
			if !inString {
				depth--
				if depth == 0 {
					return text[start : i+1]
				}
			}
		}
	}
	return ""
}

func stringField(decoded map[string]any, key, fallback string) string {
	if s, ok := decoded[key].(string); ok && strings.TrimSpace(s) != "" {
		return strings.TrimSpace(s)
	}
	return fallback
}

// componentTypes normalizes a page's requested component list. Non-string
// entries are dropped; a bare string is accepted as a single-element request.
func componentTypes(v any) []string {
	items, ok := v.([]any)
	if !ok {
		if s, isStr := v.(string); isStr && strings.TrimSpace(s) != "" {
			return []string{strings.TrimSpace(s)}
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, isStr := item.(string); isStr && strings.TrimSpace(s) != "" {
			out = append(out, strings.TrimSpace(s))
		}
	}
	return out
}

// layoutNumber normalizes a requested layout to the closed range [1,5].
// Anything absent, non-numeric or out of range becomes the default layout.
func layoutNumber(v any) int {
	var n int
	switch val := v.(type) {
	case float64:
		n = int(val)
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(val))
		if err != nil {
			return defaultLayoutNumber
		}
		n = parsed
	default:
		return defaultLayoutNumber
	}
	if n < 1 || n > maxLayoutNumber {
		return defaultLayoutNumber
	}
	return n
}
