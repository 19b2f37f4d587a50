package rule

import "fmt"

func Min[N Numeric](min N) Rule[N] {
	return Rule[N]{
		Name:              "min",
		Check:             func(value N, _ Env) bool { return value >= min },
		Message:           fmt.Sprintf("must be at least %v", min),
		TranslationKey:    "validation.min",
		TranslationValues: map[string]any{"min": min},
	}
}

func Max[N Numeric](max N) Rule[N] {
	return Rule[N]{
		Name:              "max",
		Check:             func(value N, _ Env) bool { return value <= max },
		Message:           fmt.Sprintf("must be at most %v", max),
		TranslationKey:    "validation.max",
		TranslationValues: map[string]any{"max": max},
	}
}

// Between is inclusive on both ends.
func Between[N Numeric](min, max N) Rule[N] {
	return Rule[N]{
		Name:              "between",
		Check:             func(value N, _ Env) bool { return value >= min && value <= max },
		Message:           fmt.Sprintf("must be between %v and %v", min, max),
		TranslationKey:    "validation.between",
		TranslationValues: map[string]any{"min": min, "max": max},
	}
}

func Positive[N Numeric]() Rule[N] {
	return Rule[N]{
		Name: "positive",
		Check: func(value N, _ Env) bool {
			var zero N
			return value > zero
		},
		Message:        "must be positive",
		TranslationKey: "validation.positive",
	}
}

// NumberChain is a fluent rule list for numeric fields.
type NumberChain[N Numeric] struct {
	Chain[N]
}

// Number starts a numeric rule chain.
func Number[N Numeric]() *NumberChain[N] {
	return &NumberChain[N]{}
}

func (c *NumberChain[N]) add(r Rule[N]) *NumberChain[N] {
	c.Chain.Add(r)
	return c
}

func (c *NumberChain[N]) Required() *NumberChain[N] { return c.add(Required[N]()) }
func (c *NumberChain[N]) Min(min N) *NumberChain[N] { return c.add(Min(min)) }
func (c *NumberChain[N]) Max(max N) *NumberChain[N] { return c.add(Max(max)) }
func (c *NumberChain[N]) Between(min, max N) *NumberChain[N] {
	return c.add(Between(min, max))
}
func (c *NumberChain[N]) Positive() *NumberChain[N] { return c.add(Positive[N]()) }
func (c *NumberChain[N]) OneOf(v ...N) *NumberChain[N] { return c.add(OneOf(v...)) }

func (c *NumberChain[N]) Must(check Predicate[N], message string) *NumberChain[N] {
	c.Chain.Must(check, message)
	return c
}

func (c *NumberChain[N]) MustAsync(check AsyncPredicate[N], message string) *NumberChain[N] {
	c.Chain.MustAsync(check, message)
	return c
}

func (c *NumberChain[N]) OnError(fails Predicate[N], message string) *NumberChain[N] {
	c.Chain.OnError(fails, message)
	return c
}
