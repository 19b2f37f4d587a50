package rule

import (
	"context"
	"fmt"
)

// Numeric is the constraint used by the number rules.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Env carries what a predicate may need besides the field value.
type Env struct {
	// Field is the name of the field under validation.
	Field string
	// Container is the object holding the field (a pointer to it).
	Container any
	// Payload is the caller context attached to the validator tree.
	Payload any
}

// Predicate reports whether value passes the rule.
type Predicate[V any] func(value V, env Env) bool

// AsyncPredicate is a predicate that may block, e.g. on a remote lookup.
type AsyncPredicate[V any] func(ctx context.Context, value V, env Env) (bool, error)

// Override replaces a rule's own check: once declared, Fails alone decides
// whether the rule fails, and Message is reported.
type Override[V any] struct {
	Fails   Predicate[V]
	Message string
}

// Rule is a single check applied to a field value.
type Rule[V any] struct {
	Name              string
	Check             Predicate[V]
	CheckAsync        AsyncPredicate[V]
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Override          *Override[V]
}

// Outcome is the verdict of evaluating a rule list against one value.
type Outcome struct {
	Valid             bool
	Rule              string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	// Err is set when an asynchronous predicate returned an error.
	Err error
}

// Source supplies the ordered rules of one field.
type Source[V any] interface {
	Rules() []Rule[V]
}

// List is the simplest Source.
type List[V any] []Rule[V]

func (l List[V]) Rules() []Rule[V] { return l }

// Evaluate runs rules in order against value and stops at the first failure.
// Asynchronous predicates are called inline with a background context.
func Evaluate[V any](rules []Rule[V], value V, env Env) Outcome {
	return EvaluateContext(context.Background(), rules, value, env)
}

// EvaluateContext is Evaluate with a context for asynchronous predicates.
func EvaluateContext[V any](ctx context.Context, rules []Rule[V], value V, env Env) Outcome {
	for _, r := range rules {
		ok, err := r.passes(ctx, value, env)
		if ok {
			continue
		}
		return r.failure(err)
	}
	return Outcome{Valid: true}
}

func (r Rule[V]) passes(ctx context.Context, value V, env Env) (bool, error) {
	switch {
	case r.Override != nil:
		if r.Override.Fails == nil {
			return true, nil
		}
		return !r.Override.Fails(value, env), nil
	case r.Check != nil:
		return r.Check(value, env), nil
	case r.CheckAsync != nil:
		ok, err := r.CheckAsync(ctx, value, env)
		if err != nil {
			return false, fmt.Errorf("rule %q: %w", r.Name, err)
		}
		return ok, nil
	default:
		return true, nil
	}
}

func (r Rule[V]) failure(err error) Outcome {
	if r.Override != nil {
		return Outcome{Rule: r.Name, Message: r.Override.Message, Err: err}
	}
	return Outcome{
		Rule:              r.Name,
		Message:           r.Message,
		TranslationKey:    r.TranslationKey,
		TranslationValues: r.TranslationValues,
		Err:               err,
	}
}

// IsAsync reports whether any rule in the list needs a context to run.
func IsAsync[V any](rules []Rule[V]) bool {
	for _, r := range rules {
		if r.Override == nil && r.Check == nil && r.CheckAsync != nil {
			return true
		}
	}
	return false
}
