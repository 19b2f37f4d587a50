package vtree

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/vtree/pkg/async"
	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/report"
	"github.com/dmitrymomot/vtree/pkg/rule"
)

// Node is the type-erased view of a tree, used for nested trees and
// introspection.
type Node interface {
	ID() string
	Items() []Runner
	Nested() []NestedNode
	ApplyAll()
	AllGood() bool
	Reset()
	Report() report.Report
}

type node interface {
	Node
	resolved() bool
	applyAllContext(ctx context.Context) error
	descendants() []node
	importReport(ctx context.Context, r report.Report)
	inherit(p *base)
}

// Config declares the fields and nested objects of T. Order is preserved
// in reports.
type Config[T any] struct {
	// ID overrides the display name. Defaults to the name of T.
	ID     string
	Items  []Item[T]
	Nested []Child[T]
}

// Tree validates objects of type T against declared field rules and nested
// trees, and produces error reports.
//
// A Tree holds per-field state and is not safe for concurrent use. The batch
// entry points validate every instance on a private copy.
type Tree[T any] struct {
	base

	getter        func() *T
	upstream      func() bool
	parentPayload func() any

	items  []runner[T]
	nested []Child[T]

	userPayload any
	onChange    func(*T)
}

// New returns an empty tree with a copy of the process-wide default options.
func New[T any](opts ...Option) *Tree[T] {
	t := &Tree[T]{
		base: base{
			id:      typeName[T](),
			options: DefaultOptions(),
			log:     logger.Discard(),
		},
	}
	for _, opt := range opts {
		opt(&t.base)
	}
	return t
}

// MustNew returns a configured tree and panics on a configuration error.
func MustNew[T any](cfg Config[T], opts ...Option) *Tree[T] {
	t := New[T](opts...)
	if err := t.Configure(cfg); err != nil {
		panic(err)
	}
	return t
}

func typeName[T any]() string {
	typ := reflect.TypeFor[T]()
	if name := typ.Name(); name != "" {
		return name
	}
	return typ.String()
}

// Configure declares the fields and nested trees. Items, when given,
// replace the declared fields; nested trees are merged by field name.
// It fails when the tree is bound to a getter that resolves to nil.
func (t *Tree[T]) Configure(cfg Config[T]) error {
	if t.isBound() && t.object() == nil {
		return fmt.Errorf("%w: %s", ErrUndefinedObject, t.id)
	}
	if cfg.ID != "" {
		t.id = cfg.ID
	}

	if cfg.Items != nil {
		seen := make(map[string]struct{}, len(cfg.Items))
		items := make([]runner[T], 0, len(cfg.Items))
		for _, it := range cfg.Items {
			name := it.itemName()
			if _, dup := seen[name]; dup {
				return fmt.Errorf("%w: %s.%s", ErrDuplicateField, t.id, name)
			}
			seen[name] = struct{}{}
			items = append(items, it.newRunner(t))
		}
		t.items = items
	}

	for _, c := range cfg.Nested {
		c.attach(t)
		if i := t.nestedIndex(c.childName()); i >= 0 {
			t.nested[i] = c
			continue
		}
		t.nested = append(t.nested, c)
	}

	t.info(context.Background(), "validator configured", logger.Count(len(t.items)))
	return nil
}

// Bind sets the getter every validation reads the object through.
// Trees attached as nested children ignore it.
func (t *Tree[T]) Bind(getter func() *T) *Tree[T] {
	if t.upstream != nil {
		t.warn(context.Background(), "nested validator reads its object through the parent, bind ignored")
		return t
	}
	t.getter = getter
	return t
}

// BindValue binds the tree to a fixed object.
func (t *Tree[T]) BindValue(v *T) *Tree[T] {
	return t.Bind(func() *T { return v })
}

func (t *Tree[T]) ID() string { return t.id }

func (t *Tree[T]) Options() Options { return t.options }

// SetOptions replaces the options of this tree only.
func (t *Tree[T]) SetOptions(o Options) *Tree[T] {
	WithOptions(o)(&t.base)
	return t
}

// SetContext attaches a caller payload handed to rules as rule.Env.Payload.
// Nested trees without their own payload see the parent's.
func (t *Tree[T]) SetContext(payload any) *Tree[T] {
	t.userPayload = payload
	return t
}

func (t *Tree[T]) Context() any { return t.payload() }

// OnChange registers a callback run by NotifyChange.
func (t *Tree[T]) OnChange(fn func(*T)) *Tree[T] {
	t.onChange = fn
	return t
}

// NotifyChange calls the OnChange callback with the bound object, if any.
func (t *Tree[T]) NotifyChange() {
	if t.onChange == nil {
		return
	}
	if obj := t.object(); obj != nil {
		t.onChange(obj)
	}
}

// Items returns the field runners in declaration order.
func (t *Tree[T]) Items() []Runner {
	out := make([]Runner, len(t.items))
	for i, it := range t.items {
		out[i] = it
	}
	return out
}

// Item returns the runner of the named field.
func (t *Tree[T]) Item(name string) (Runner, bool) {
	r, ok := t.lookup(name)
	if !ok {
		return nil, false
	}
	return r, true
}

// Nested returns the nested trees in declaration order.
func (t *Tree[T]) Nested() []NestedNode {
	out := make([]NestedNode, len(t.nested))
	for i, c := range t.nested {
		out[i] = NestedNode{Field: c.childName(), Tree: c.node()}
	}
	return out
}

// ApplyAll validates every field of this tree, not its nested trees.
func (t *Tree[T]) ApplyAll() {
	for _, it := range t.items {
		it.Validate()
	}
}

// inherit takes the options and logger of p where this tree has none of its
// own, and hands the result down to the nested trees.
func (t *Tree[T]) inherit(p *base) {
	t.inheritFrom(p)
	for _, c := range t.nested {
		c.node().inherit(&t.base)
	}
}

// ApplyAllAsync validates every field of this tree concurrently. Field
// state is assigned only after each evaluation is awaited, so an evaluation
// that outlives the rule timeout never touches the tree.
func (t *Tree[T]) ApplyAllAsync(ctx context.Context) error {
	return t.applyAllContext(ctx)
}

func (t *Tree[T]) applyAllContext(ctx context.Context) error {
	futures := make([]*async.Future[rule.Outcome], len(t.items))
	for i, it := range t.items {
		futures[i] = async.Go(ctx, func(ctx context.Context) (rule.Outcome, error) {
			out, ok := it.evaluate(ctx)
			if !ok {
				return out, &UndefinedTargetError{ID: t.id}
			}
			return out, nil
		})
	}

	var errs []error
	for i, fut := range futures {
		it := t.items[i]
		out, err := fut.AwaitWithTimeout(t.options.RuleTimeout)
		if errors.Is(err, async.ErrTimeout) {
			it.apply(ctx, rule.Outcome{Rule: "timeout", Message: ErrRuleTimeout.Error()})
			err = fmt.Errorf("%w: %s.%s after %s", ErrRuleTimeout, t.id, it.Name(), t.options.RuleTimeout)
		}
		if err != nil {
			errs = append(errs, err)
			continue
		}
		it.apply(ctx, out)
	}
	return errors.Join(errs...)
}

// AllGood reports whether every field of this tree is valid. Fields never
// validated count as not valid; a tree without fields is good.
func (t *Tree[T]) AllGood() bool {
	for _, it := range t.items {
		if !it.Valid() {
			return false
		}
	}
	return true
}

// Reset clears the state of every field here and in all nested trees.
func (t *Tree[T]) Reset() {
	for _, it := range t.items {
		it.Reset()
	}
	for _, c := range t.nested {
		c.node().Reset()
	}
}

// Report builds the canonical report from the current field state. Values
// are read live through the getter.
func (t *Tree[T]) Report() report.Report {
	var r report.Report
	for _, it := range t.items {
		if it.State() == Invalid {
			r.Items = append(r.Items, it.reportItem())
		}
	}
	for _, c := range t.nested {
		if cr := c.node().Report(); !cr.IsEmpty() {
			r.Nested = append(r.Nested, report.Child{Field: c.childName(), Report: cr})
		}
	}
	return r
}

func (t *Tree[T]) object() *T {
	if t.getter == nil {
		return nil
	}
	return t.getter()
}

func (t *Tree[T]) isBound() bool {
	if t.getter == nil {
		return false
	}
	return t.upstream == nil || t.upstream()
}

func (t *Tree[T]) resolved() bool {
	return t.isBound() && t.object() != nil
}

func (t *Tree[T]) payload() any {
	if t.userPayload != nil {
		return t.userPayload
	}
	if t.parentPayload != nil {
		return t.parentPayload()
	}
	return nil
}

func (t *Tree[T]) ready(ctx context.Context) error {
	if !t.isBound() {
		err := fmt.Errorf("%w: %s", ErrNotReady, t.id)
		t.error(ctx, "validator is not ready", logger.Error(err))
		return err
	}
	return nil
}

// active returns this tree followed by every nested tree at any depth.
func (t *Tree[T]) active() []node {
	return append([]node{t}, t.descendants()...)
}

func (t *Tree[T]) descendants() []node {
	var out []node
	for _, c := range t.nested {
		n := c.node()
		out = append(out, n)
		out = append(out, n.descendants()...)
	}
	return out
}

func (t *Tree[T]) lookup(name string) (runner[T], bool) {
	for _, it := range t.items {
		if it.Name() == name {
			return it, true
		}
	}
	return nil, false
}

func (t *Tree[T]) nestedIndex(name string) int {
	for i, c := range t.nested {
		if c.childName() == name {
			return i
		}
	}
	return -1
}

// Clone returns an unbound copy with fresh field state that shares the
// declarations, options and logger of t. Clones of a configured tree may be
// taken and used from concurrent goroutines.
func (t *Tree[T]) Clone() *Tree[T] {
	c := t.clone()
	c.getter = nil
	c.upstream = nil
	return c
}

// clone copies the declarations with fresh field state. The copy shares
// the getter, options, logger and payload of t.
func (t *Tree[T]) clone() *Tree[T] {
	c := &Tree[T]{
		base:          t.base,
		getter:        t.getter,
		upstream:      t.upstream,
		parentPayload: t.parentPayload,
		userPayload:   t.userPayload,
		onChange:      t.onChange,
	}
	c.items = make([]runner[T], len(t.items))
	for i, it := range t.items {
		c.items[i] = it.cloneFor(c)
	}
	c.nested = make([]Child[T], len(t.nested))
	for i, n := range t.nested {
		c.nested[i] = n.cloneFor(c)
	}
	return c
}
