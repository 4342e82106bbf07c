// Package textformat renders templates with {name} placeholders.
//
// The syntax matches the lexicon's template files: {name} substitutes a
// value, while {{ and }} escape to literal braces so PowerShell script
// blocks survive formatting.
package textformat

import (
	"fmt"
	"strings"
)

// Format renders template, substituting each {name} with values[name].
// An unknown placeholder or an unbalanced brace is a configuration fault
// and returns an error.
func Format(template string, values map[string]string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				b.WriteByte('{')
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return "", fmt.Errorf("unbalanced '{' at offset %d in %q", i, template)
			}
			name := template[i+1 : i+1+end]
			value, ok := values[name]
			if !ok {
				return "", fmt.Errorf("unknown placeholder {%s} in %q", name, template)
			}
			b.WriteString(value)
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				b.WriteByte('}')
				i += 2
				continue
			}
			return "", fmt.Errorf("unbalanced '}' at offset %d in %q", i, template)
		default:
			b.WriteByte(template[i])
			i++
		}
	}
	return b.String(), nil
}

// Placeholders lists the placeholder names referenced by template, in order
// of first appearance.
func Placeholders(template string) ([]string, error) {
	var names []string
	seen := map[string]bool{}
	for i := 0; i < len(template); {
		switch template[i] {
		case '{':
			if i+1 < len(template) && template[i+1] == '{' {
				i += 2
				continue
			}
			end := strings.IndexByte(template[i+1:], '}')
			if end < 0 {
				return nil, fmt.Errorf("unbalanced '{' at offset %d in %q", i, template)
			}
			name := template[i+1 : i+1+end]
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
			i += end + 2
		case '}':
			if i+1 < len(template) && template[i+1] == '}' {
				i += 2
				continue
			}
			return nil, fmt.Errorf("unbalanced '}' at offset %d in %q", i, template)
		default:
			i++
		}
	}
	return names, nil
}

// CollapseWhitespace squeezes runs of whitespace into single spaces and trims
// the ends. Applied to simple-template commands after flag substitution so
// empty flags do not leave double spaces.
func CollapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
