package rule

import (
	"fmt"
	"slices"
)

// Required fails on the zero value of V.
func Required[V comparable]() Rule[V] {
	return Rule[V]{
		Name: "required",
		Check: func(value V, _ Env) bool {
			var zero V
			return value != zero
		},
		Message:        "field is required",
		TranslationKey: "validation.required",
	}
}

// OneOf fails when value is not among allowed.
func OneOf[V comparable](allowed ...V) Rule[V] {
	return Rule[V]{
		Name:              "in_list",
		Check:             func(value V, _ Env) bool { return slices.Contains(allowed, value) },
		Message:           fmt.Sprintf("must be one of: %v", allowed),
		TranslationKey:    "validation.in_list",
		TranslationValues: map[string]any{"allowed_values": allowed},
	}
}

// NotOneOf fails when value is among forbidden.
func NotOneOf[V comparable](forbidden ...V) Rule[V] {
	return Rule[V]{
		Name:              "not_in_list",
		Check:             func(value V, _ Env) bool { return !slices.Contains(forbidden, value) },
		Message:           fmt.Sprintf("must not be one of: %v", forbidden),
		TranslationKey:    "validation.not_in_list",
		TranslationValues: map[string]any{"forbidden_values": forbidden},
	}
}
