package vtree

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"

	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/report"
	"github.com/dmitrymomot/vtree/pkg/rule"
)

// State is the tri-state verdict of a field.
type State int8

const (
	// Unknown means the field was never validated or was reset.
	Unknown State = iota
	Valid
	Invalid
)

func (s State) String() string {
	switch s {
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	default:
		return "unknown"
	}
}

// Runner is the live, per-field view of a configured tree.
type Runner interface {
	Name() string
	State() State
	Valid() bool
	Message() string
	// Value reads the current field value through the tree getter.
	// It returns nil when the tree is unbound or the object is undefined.
	Value() any
	// SetValue writes through the tree getter. Values of the field type are
	// assigned directly, anything else is converted through JSON.
	SetValue(v any) error
	// Container returns the object holding the field, or nil.
	Container() any
	// Tree returns the owning tree.
	Tree() Node
	Validate() bool
	ValidateContext(ctx context.Context) (bool, error)
	Reset()
}

// Item declares one field of T. Build it with Field.
type Item[T any] interface {
	itemName() string
	newRunner(t *Tree[T]) runner[T]
}

type runner[T any] interface {
	Runner
	evaluate(ctx context.Context) (rule.Outcome, bool)
	apply(ctx context.Context, out rule.Outcome)
	restore(it report.Item)
	reportItem() report.Item
	cloneFor(t *Tree[T]) runner[T]
}

// Field declares a field of T addressed by ref and checked by rules.
// ref must return a pointer into the object it receives.
func Field[T, V any](name string, ref func(*T) *V, rules rule.Source[V]) Item[T] {
	var list []rule.Rule[V]
	if rules != nil {
		list = rules.Rules()
	}
	return fieldDecl[T, V]{name: name, ref: ref, rules: list, async: rule.IsAsync(list)}
}

type fieldDecl[T, V any] struct {
	name  string
	ref   func(*T) *V
	rules []rule.Rule[V]
	async bool
}

func (d fieldDecl[T, V]) itemName() string { return d.name }

func (d fieldDecl[T, V]) newRunner(t *Tree[T]) runner[T] {
	return &field[T, V]{fieldDecl: d, tree: t}
}

type field[T, V any] struct {
	fieldDecl[T, V]
	tree *Tree[T]

	state             State
	message           string
	translationKey    string
	translationValues map[string]any
}

func (f *field[T, V]) Name() string    { return f.name }
func (f *field[T, V]) State() State    { return f.state }
func (f *field[T, V]) Valid() bool     { return f.state == Valid }
func (f *field[T, V]) Message() string { return f.message }
func (f *field[T, V]) Tree() Node      { return f.tree }

func (f *field[T, V]) Container() any {
	if obj := f.tree.object(); obj != nil {
		return obj
	}
	return nil
}

func (f *field[T, V]) target() *V {
	obj := f.tree.object()
	if obj == nil {
		return nil
	}
	return f.ref(obj)
}

func (f *field[T, V]) Value() any {
	ptr := f.target()
	if ptr == nil {
		return nil
	}
	return *ptr
}

func (f *field[T, V]) SetValue(v any) error {
	if !f.tree.isBound() {
		return fmt.Errorf("%w: %s", ErrNotReady, f.tree.id)
	}
	ptr := f.target()
	if ptr == nil {
		return &UndefinedTargetError{ID: f.tree.id}
	}

	if v == nil {
		var zero V
		*ptr = zero
		return nil
	}
	if typed, ok := v.(V); ok {
		*ptr = typed
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return errors.Join(ErrValueType, err)
	}
	var out V
	if err := json.Unmarshal(data, &out); err != nil {
		return errors.Join(ErrValueType, fmt.Errorf("field %q: %w", f.name, err))
	}
	*ptr = out
	return nil
}

func (f *field[T, V]) env() rule.Env {
	return rule.Env{Field: f.name, Container: f.Container(), Payload: f.tree.payload()}
}

// evaluate computes the verdict without touching field state.
// The second result is false when there is no value to check.
func (f *field[T, V]) evaluate(ctx context.Context) (rule.Outcome, bool) {
	ptr := f.target()
	if ptr == nil {
		return rule.Outcome{}, false
	}
	return rule.EvaluateContext(ctx, f.rules, *ptr, f.env()), true
}

func (f *field[T, V]) apply(ctx context.Context, out rule.Outcome) {
	if out.Valid {
		f.state = Valid
		f.message = ""
		f.translationKey = ""
		f.translationValues = nil
		return
	}

	f.state = Invalid
	f.message = out.Message
	f.translationKey = out.TranslationKey
	f.translationValues = maps.Clone(out.TranslationValues)
	if out.Err != nil {
		f.tree.error(ctx, "rule failed with error", logger.Field(f.name), logger.Error(out.Err))
	}
}

// Validate evaluates the rules with a background context. Asynchronous
// predicates run inline; use ValidateContext to bound them.
func (f *field[T, V]) Validate() bool {
	ctx := context.Background()
	out, ok := f.evaluate(ctx)
	if !ok {
		f.tree.warn(ctx, "field has no object to validate", logger.Field(f.name))
		return false
	}
	if f.async {
		f.tree.warn(ctx, "asynchronous rules evaluated inline", logger.Field(f.name))
	}
	f.apply(ctx, out)
	return f.Valid()
}

func (f *field[T, V]) ValidateContext(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	out, ok := f.evaluate(ctx)
	if !ok {
		return false, &UndefinedTargetError{ID: f.tree.id}
	}
	f.apply(ctx, out)
	return f.Valid(), nil
}

func (f *field[T, V]) Reset() {
	f.state = Unknown
	f.message = ""
	f.translationKey = ""
	f.translationValues = nil
}

func (f *field[T, V]) restore(it report.Item) {
	if it.Valid {
		f.state = Valid
	} else {
		f.state = Invalid
	}
	f.message = it.Message
	f.translationKey = it.TranslationKey
	f.translationValues = maps.Clone(it.TranslationValues)
}

func (f *field[T, V]) reportItem() report.Item {
	return report.Item{
		Field:             f.name,
		Message:           f.message,
		Valid:             false,
		Value:             f.Value(),
		TranslationKey:    f.translationKey,
		TranslationValues: maps.Clone(f.translationValues),
	}
}

func (f *field[T, V]) cloneFor(t *Tree[T]) runner[T] {
	return &field[T, V]{fieldDecl: f.fieldDecl, tree: t}
}
