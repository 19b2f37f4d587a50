package rule

import "fmt"

func RequiredSlice[E any]() Rule[[]E] {
	return Rule[[]E]{
		Name:           "required",
		Check:          func(value []E, _ Env) bool { return len(value) > 0 },
		Message:        "field is required",
		TranslationKey: "validation.required",
	}
}

func MinItems[E any](min int) Rule[[]E] {
	return Rule[[]E]{
		Name:              "min_items",
		Check:             func(value []E, _ Env) bool { return len(value) >= min },
		Message:           fmt.Sprintf("must have at least %d items", min),
		TranslationKey:    "validation.min_items",
		TranslationValues: map[string]any{"min": min},
	}
}

func MaxItems[E any](max int) Rule[[]E] {
	return Rule[[]E]{
		Name:              "max_items",
		Check:             func(value []E, _ Env) bool { return len(value) <= max },
		Message:           fmt.Sprintf("must have at most %d items", max),
		TranslationKey:    "validation.max_items",
		TranslationValues: map[string]any{"max": max},
	}
}

// Each fails on the first element rejected by r; the element's index is
// added to the translation values.
func Each[E any](r Rule[E]) Rule[[]E] {
	values := map[string]any{"rule": r.Name}
	for k, v := range r.TranslationValues {
		values[k] = v
	}
	return Rule[[]E]{
		Name: "each",
		Check: func(value []E, env Env) bool {
			for _, el := range value {
				if !Evaluate([]Rule[E]{r}, el, env).Valid {
					return false
				}
			}
			return true
		},
		Message:           "contains an invalid item: " + r.Message,
		TranslationKey:    "validation.each",
		TranslationValues: values,
	}
}

// SliceChain is a fluent rule list for slice fields.
type SliceChain[E any] struct {
	Chain[[]E]
}

// Slice starts a slice rule chain.
func Slice[E any]() *SliceChain[E] {
	return &SliceChain[E]{}
}

func (c *SliceChain[E]) add(r Rule[[]E]) *SliceChain[E] {
	c.Chain.Add(r)
	return c
}

func (c *SliceChain[E]) Required() *SliceChain[E] { return c.add(RequiredSlice[E]()) }
func (c *SliceChain[E]) MinItems(n int) *SliceChain[E] { return c.add(MinItems[E](n)) }
func (c *SliceChain[E]) MaxItems(n int) *SliceChain[E] { return c.add(MaxItems[E](n)) }
func (c *SliceChain[E]) Each(r Rule[E]) *SliceChain[E] { return c.add(Each(r)) }

func (c *SliceChain[E]) Must(check Predicate[[]E], message string) *SliceChain[E] {
	c.Chain.Must(check, message)
	return c
}

func (c *SliceChain[E]) OnError(fails Predicate[[]E], message string) *SliceChain[E] {
	c.Chain.OnError(fails, message)
	return c
}
