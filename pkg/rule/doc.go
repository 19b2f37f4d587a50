// Package rule provides the typed, ordered rule lists that a validator tree
// runs against each field.
//
// A Rule pairs a predicate with a message and translation metadata. Rules are
// grouped in a Chain per field and evaluated in declaration order; the first
// failing rule decides the outcome and evaluation stops there.
//
// # Architecture
//
// Each file groups a family of rules (strings, formats, numbers, choices,
// collections, UUIDs). Every constructor returns a Rule value and holds no
// state, so chains can be shared between trees and goroutines once built.
//
// Fluent chains exist for the common value kinds:
//
//	rule.String().Required().Email()
//	rule.Number[int]().Between(18, 100)
//	rule.Slice[string]().MinItems(1).Each(rule.NotEmpty())
//	rule.Custom[Profile]().OnError(func(p Profile, _ rule.Env) bool { return p.Age < 18 }, "too young")
//
// # Overrides
//
// OnError attaches an Override to the most recent rule that has none. Once an
// override is attached, its Fails predicate replaces the rule's own check and
// its message is reported. When the last rule already has an override, a new
// override-only rule is appended.
//
// # Asynchronous predicates
//
// MustAsync declares a predicate that may block. EvaluateContext passes the
// caller's context to it; Evaluate uses a background context. An error from
// an asynchronous predicate fails the rule and is reported in Outcome.Err.
package rule
