package report

import (
	"fmt"
	"strings"
)

// Type selects one of the two report encodings.
type Type string

const (
	// TypeObject keys nested reports by field name.
	TypeObject Type = "object"
	// TypeArray lists nested reports as field/result pairs.
	TypeArray Type = "array"
)

// ParseType accepts "object" and "array", case-insensitively.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case TypeObject:
		return TypeObject, nil
	case TypeArray:
		return TypeArray, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownType, s)
	}
}

// Item is one failing field.
type Item struct {
	Field             string         `json:"field"`
	Message           string         `json:"message"`
	Valid             bool           `json:"valid"`
	Value             any            `json:"value"`
	TranslationKey    string         `json:"translation_key,omitempty"`
	TranslationValues map[string]any `json:"translation_values,omitempty"`
}

// Child is the report of a nested object, in declaration order.
type Child struct {
	Field  string `json:"field"`
	Report Report `json:"result"`
}

// Report is the canonical error report: failing items of one object plus the
// non-empty reports of its nested objects. Both encodings derive from it.
type Report struct {
	Items  []Item
	Nested []Child
}

// IsEmpty reports whether nothing failed at this level or below.
// An empty report is equivalent to a successful validation.
func (r Report) IsEmpty() bool {
	if len(r.Items) > 0 {
		return false
	}
	for _, c := range r.Nested {
		if !c.Report.IsEmpty() {
			return false
		}
	}
	return true
}

// Fields lists the dotted paths of every failing field, depth first.
func (r Report) Fields() []string {
	var out []string
	r.walk("", func(path string, _ Item) {
		out = append(out, path)
	})
	return out
}

// Find returns the item at a dotted path such as "profile.age".
func (r Report) Find(path string) (Item, bool) {
	var (
		found Item
		ok    bool
	)
	r.walk("", func(p string, it Item) {
		if !ok && p == path {
			found, ok = it, true
		}
	})
	return found, ok
}

// Messages maps dotted field paths to their messages.
func (r Report) Messages() map[string]string {
	out := make(map[string]string)
	r.walk("", func(path string, it Item) {
		out[path] = it.Message
	})
	return out
}

// Child returns the nested report for field.
func (r Report) Child(field string) (Report, bool) {
	for _, c := range r.Nested {
		if c.Field == field {
			return c.Report, true
		}
	}
	return Report{}, false
}

func (r Report) walk(prefix string, fn func(path string, it Item)) {
	for _, it := range r.Items {
		fn(join(prefix, it.Field), it)
	}
	for _, c := range r.Nested {
		c.Report.walk(join(prefix, c.Field), fn)
	}
}

func join(prefix, field string) string {
	if prefix == "" {
		return field
	}
	return prefix + "." + field
}
