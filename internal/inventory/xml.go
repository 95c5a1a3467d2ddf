package inventory

import (
	"fmt"
	"strconv"
	"strings"
)

// Helpers for walking XML documents decoded into map trees. Two ambiguities
// are pervasive in vendor SOAP responses and both are handled here once:
// a field may arrive bare ("productId") or namespace-prefixed
// ("shar:productId") depending on whether the decoder stripped prefixes, and
// a repeatable element arrives as a single object when it occurred once but
// as a slice when it occurred several times.

// xmlField returns the value for name, probing the bare key first and then
// any key whose local part (after the namespace prefix) matches.
func xmlField(node map[string]any, name string) (any, bool) {
	if v, ok := node[name]; ok {
		return v, true
	}
	suffix := ":" + name
	for k, v := range node {
		if strings.HasSuffix(k, suffix) {
			return v, true
		}
	}
	return nil, false
}

// xmlString resolves name to its trimmed text content. Element nodes that
// carry attributes decode as maps with a "#text" entry; scalars decode as
// strings or numbers.
func xmlString(node map[string]any, name string) string {
	v, ok := xmlField(node, name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(xmlText(v))
}

func xmlText(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case map[string]any:
		if inner, ok := t["#text"]; ok {
			return xmlText(inner)
		}
		return ""
	default:
		return fmt.Sprintf("%v", t)
	}
}

// xmlChild resolves name to a child element map, or nil when the field is
// absent or scalar.
func xmlChild(node map[string]any, name string) map[string]any {
	v, ok := xmlField(node, name)
	if !ok {
		return nil
	}
	m, _ := v.(map[string]any)
	return m
}

// xmlList resolves a repeatable element to a slice of child maps, whether
// the source held zero, one, or many occurrences.
func xmlList(node map[string]any, name string) []map[string]any {
	v, ok := xmlField(node, name)
	if !ok {
		return nil
	}
	return toMapSlice(v)
}

func toMapSlice(v any) []map[string]any {
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		out := make([]map[string]any, 0, len(t))
		for _, item := range t {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case []map[string]any:
		return t
	case map[string]any:
		return []map[string]any{t}
	default:
		return nil
	}
}

// xmlInt parses name's text as an integer, zero when absent or unparseable.
func xmlInt(node map[string]any, name string) int {
	n, err := strconv.Atoi(xmlString(node, name))
	if err != nil {
		return 0
	}
	return n
}

// xmlIntPtr is the null-preserving variant: nil when the text is absent or
// not an integer.
func xmlIntPtr(node map[string]any, name string) *int {
	s := xmlString(node, name)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

// xmlFindFirst searches the tree at any depth for the first element whose
// local name matches, in the manner of a lenient document query. Used for
// the legacy SOAP responses whose envelope nesting varies by service
// version.
func xmlFindFirst(node map[string]any, name string) (any, bool) {
	if v, ok := xmlField(node, name); ok {
		return v, true
	}
	for _, v := range node {
		for _, child := range toMapSlice(v) {
			if found, ok := xmlFindFirst(child, name); ok {
				return found, true
			}
		}
	}
	return nil, false
}

// xmlFindAll collects every element at any depth whose local name matches,
// in document traversal order as far as the map representation allows.
func xmlFindAll(node map[string]any, name string) []map[string]any {
	var out []map[string]any
	if v, ok := xmlField(node, name); ok {
		out = append(out, toMapSlice(v)...)
	}
	for k, v := range node {
		if k == name || strings.HasSuffix(k, ":"+name) {
			continue
		}
		for _, child := range toMapSlice(v) {
			out = append(out, xmlFindAll(child, name)...)
		}
	}
	return out
}

// xmlFindString is xmlFindFirst flattened to trimmed text.
func xmlFindString(node map[string]any, name string) string {
	v, ok := xmlFindFirst(node, name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(xmlText(v))
}
