// Package htmlattr assembles HTML class lists, inline style strings and
// attribute strings for use inside block render templates. All output is
// deterministic (map keys are emitted sorted) and escaped for attribute
// context.
package htmlattr

import (
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// ClassNames builds a space-separated class list from a mix of argument
// kinds: plain strings are included as-is, string slices are flattened, and
// map[string]bool includes each key whose value is true (in sorted order).
// Empty strings are dropped. Unsupported argument types are ignored.
func ClassNames(args ...any) string {
	var classes []string
	for _, arg := range args {
		switch v := arg.(type) {
		case string:
			if v != "" {
				classes = append(classes, v)
			}
		case []string:
			for _, c := range v {
				if c != "" {
					classes = append(classes, c)
				}
			}
		case map[string]bool:
			keys := make([]string, 0, len(v))
			for k, on := range v {
				if on && k != "" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			classes = append(classes, keys...)
		}
	}
	return strings.Join(classes, " ")
}

// Styles renders a property map as an inline style string, properties sorted
// by name. Properties with empty values are dropped.
func Styles(props map[string]string) string {
	names := make([]string, 0, len(props))
	for name, value := range props {
		if name != "" && value != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(props[name])
		b.WriteByte(';')
	}
	return b.String()
}

// Attrs renders an attribute map as a `key="value"` string, keys sorted.
// Boolean true renders the bare attribute, boolean false and nil drop it,
// and every other value is formatted and attribute-escaped. The result is
// marked safe for html/template attribute context.
func Attrs(attrs map[string]any) template.HTMLAttr {
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		if k != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	var parts []string
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case nil:
		case bool:
			if v {
				parts = append(parts, k)
			}
		default:
			parts = append(parts, fmt.Sprintf(`%s="%s"`, k, template.HTMLEscapeString(fmt.Sprint(v))))
		}
	}
	return template.HTMLAttr(strings.Join(parts, " "))
}
