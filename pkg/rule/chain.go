package rule

// Chain is an ordered, fluent rule list for values of any type.
type Chain[V any] struct {
	rules []Rule[V]
}

// Custom starts an empty chain for V. Combine it with Must and OnError to
// express checks that no built-in rule covers.
func Custom[V any]() *Chain[V] {
	return &Chain[V]{}
}

// Of starts a chain from existing rules.
func Of[V any](rules ...Rule[V]) *Chain[V] {
	return &Chain[V]{rules: append([]Rule[V](nil), rules...)}
}

// Rules returns a copy of the declared rules.
func (c *Chain[V]) Rules() []Rule[V] {
	if c == nil {
		return nil
	}
	return append([]Rule[V](nil), c.rules...)
}

// Add appends rules as they are.
func (c *Chain[V]) Add(rules ...Rule[V]) *Chain[V] {
	c.rules = append(c.rules, rules...)
	return c
}

// Must appends a rule that fails when check returns false.
func (c *Chain[V]) Must(check Predicate[V], message string) *Chain[V] {
	return c.Add(Rule[V]{Name: "custom", Check: check, Message: message})
}

// MustAsync appends a rule backed by an asynchronous predicate.
func (c *Chain[V]) MustAsync(check AsyncPredicate[V], message string) *Chain[V] {
	return c.Add(Rule[V]{Name: "custom_async", CheckAsync: check, Message: message})
}

// OnError attaches an override to the last rule that has none. When every
// rule already carries one, a new override-only rule is appended, so the
// first matching override in declaration order wins.
func (c *Chain[V]) OnError(fails Predicate[V], message string) *Chain[V] {
	ov := &Override[V]{Fails: fails, Message: message}
	if n := len(c.rules); n > 0 && c.rules[n-1].Override == nil {
		c.rules[n-1].Override = ov
		return c
	}
	c.rules = append(c.rules, Rule[V]{Name: "on_error", Override: ov})
	return c
}
