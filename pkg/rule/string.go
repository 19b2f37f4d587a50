package rule

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"
)

// RequiredString fails on strings that are empty after trimming whitespace.
func RequiredString() Rule[string] {
	return Rule[string]{
		Name: "required",
		Check: func(value string, _ Env) bool {
			return strings.TrimSpace(value) != ""
		},
		Message:        "field is required",
		TranslationKey: "validation.required",
	}
}

// NotEmpty fails on the empty string only; whitespace passes.
func NotEmpty() Rule[string] {
	return Rule[string]{
		Name: "not_empty",
		Check: func(value string, _ Env) bool {
			return value != ""
		},
		Message:        "must not be empty",
		TranslationKey: "validation.not_empty",
	}
}

// MinLen counts runes, not bytes.
func MinLen(min int) Rule[string] {
	return Rule[string]{
		Name: "min_length",
		Check: func(value string, _ Env) bool {
			return utf8.RuneCountInString(value) >= min
		},
		Message:           fmt.Sprintf("must be at least %d characters long", min),
		TranslationKey:    "validation.min_length",
		TranslationValues: map[string]any{"min": min},
	}
}

func MaxLen(max int) Rule[string] {
	return Rule[string]{
		Name: "max_length",
		Check: func(value string, _ Env) bool {
			return utf8.RuneCountInString(value) <= max
		},
		Message:           fmt.Sprintf("must be at most %d characters long", max),
		TranslationKey:    "validation.max_length",
		TranslationValues: map[string]any{"max": max},
	}
}

func Len(exact int) Rule[string] {
	return Rule[string]{
		Name: "exact_length",
		Check: func(value string, _ Env) bool {
			return utf8.RuneCountInString(value) == exact
		},
		Message:           fmt.Sprintf("must be exactly %d characters long", exact),
		TranslationKey:    "validation.exact_length",
		TranslationValues: map[string]any{"length": exact},
	}
}

// Match fails when value does not match re.
func Match(re *regexp.Regexp, message string) Rule[string] {
	return Rule[string]{
		Name: "pattern",
		Check: func(value string, _ Env) bool {
			return re.MatchString(value)
		},
		Message:           message,
		TranslationKey:    "validation.pattern",
		TranslationValues: map[string]any{"pattern": re.String()},
	}
}

// StringChain is a fluent rule list for string fields.
type StringChain struct {
	Chain[string]
}

// String starts a string rule chain.
func String() *StringChain {
	return &StringChain{}
}

func (c *StringChain) add(r Rule[string]) *StringChain {
	c.Chain.Add(r)
	return c
}

func (c *StringChain) Required() *StringChain { return c.add(RequiredString()) }
func (c *StringChain) NotEmpty() *StringChain { return c.add(NotEmpty()) }
func (c *StringChain) MinLen(n int) *StringChain { return c.add(MinLen(n)) }
func (c *StringChain) MaxLen(n int) *StringChain { return c.add(MaxLen(n)) }
func (c *StringChain) Len(n int) *StringChain { return c.add(Len(n)) }
func (c *StringChain) Email() *StringChain { return c.add(Email()) }
func (c *StringChain) URL() *StringChain { return c.add(URL()) }
func (c *StringChain) Phone() *StringChain { return c.add(Phone()) }
func (c *StringChain) Alpha() *StringChain { return c.add(Alpha()) }
func (c *StringChain) Alphanumeric() *StringChain { return c.add(Alphanumeric()) }
func (c *StringChain) Numeric() *StringChain { return c.add(NumericString()) }
func (c *StringChain) UUID() *StringChain { return c.add(UUID()) }
func (c *StringChain) OneOf(v ...string) *StringChain {
	return c.add(OneOf(v...))
}
func (c *StringChain) NotOneOf(v ...string) *StringChain {
	return c.add(NotOneOf(v...))
}
func (c *StringChain) Match(re *regexp.Regexp, message string) *StringChain {
	return c.add(Match(re, message))
}

func (c *StringChain) Must(check Predicate[string], message string) *StringChain {
	c.Chain.Must(check, message)
	return c
}

func (c *StringChain) MustAsync(check AsyncPredicate[string], message string) *StringChain {
	c.Chain.MustAsync(check, message)
	return c
}

func (c *StringChain) OnError(fails Predicate[string], message string) *StringChain {
	c.Chain.OnError(fails, message)
	return c
}
