package vtree

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/vtree/pkg/async"
	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/report"
)

// Result is the outcome of one validation. Results is nil on success and
// otherwise holds the report in the tree's results type.
type Result struct {
	Success bool           `json:"success"`
	Results report.Encoded `json:"results,omitempty"`
	// Report is the canonical form of Results.
	Report report.Report `json:"-"`
}

// Validate checks the bound object, or data when it is not nil (data is
// bound first), together with every nested object at any depth.
//
// It returns ErrNotReady for an unbound tree, ErrNestedBind when data is
// given to a tree attached as a nested child, and an UndefinedTargetError
// when any object in the tree resolves to nil.
func (t *Tree[T]) Validate(data *T) (bool, error) {
	ctx := context.Background()
	if err := t.prepare(ctx, data); err != nil {
		return false, err
	}

	nodes := t.active()
	for _, n := range nodes {
		if err := t.checkResolved(ctx, n); err != nil {
			return false, err
		}
		n.ApplyAll()
	}
	return t.finish(ctx, nodes), nil
}

// ValidateAsync is Validate with every tree, and every field within a tree,
// evaluated concurrently. Fields that outlive the rule timeout are marked
// invalid and their timeouts are joined into the returned error, as is
// cancellation of ctx. An asynchronous predicate that returns an error only
// fails its field; the error is logged.
func (t *Tree[T]) ValidateAsync(ctx context.Context, data *T) (bool, error) {
	if err := t.prepare(ctx, data); err != nil {
		return false, err
	}

	nodes := t.active()
	for _, n := range nodes {
		if err := t.checkResolved(ctx, n); err != nil {
			return false, err
		}
	}

	futures := make([]*async.Future[struct{}], len(nodes))
	for i, n := range nodes {
		futures[i] = async.Go(ctx, func(ctx context.Context) (struct{}, error) {
			return struct{}{}, n.applyAllContext(ctx)
		})
	}
	if _, err := async.WaitAll(futures...); err != nil {
		t.error(ctx, "asynchronous validation failed", logger.Error(err))
		return false, err
	}
	return t.finish(ctx, nodes), nil
}

// ValidateInfo is Validate returning the report of a failure.
func (t *Tree[T]) ValidateInfo(data *T) (Result, error) {
	ok, err := t.Validate(data)
	if err != nil {
		return Result{}, err
	}
	return t.result(context.Background(), ok), nil
}

func (t *Tree[T]) ValidateInfoAsync(ctx context.Context, data *T) (Result, error) {
	ok, err := t.ValidateAsync(ctx, data)
	if err != nil {
		return Result{}, err
	}
	return t.result(ctx, ok), nil
}

// ValidateThrow returns a *ValidationError when validation fails.
func (t *Tree[T]) ValidateThrow(data *T) error {
	res, err := t.ValidateInfo(data)
	if err != nil {
		return err
	}
	return t.failure(res)
}

func (t *Tree[T]) ValidateThrowAsync(ctx context.Context, data *T) error {
	res, err := t.ValidateInfoAsync(ctx, data)
	if err != nil {
		return err
	}
	return t.failure(res)
}

// prepare binds data, when given, and checks the tree can run.
func (t *Tree[T]) prepare(ctx context.Context, data *T) error {
	if data != nil {
		if t.upstream != nil {
			err := fmt.Errorf("%w: %s", ErrNestedBind, t.id)
			t.error(ctx, "nested validator cannot validate its own data", logger.Error(err))
			return err
		}
		t.BindValue(data)
	}
	return t.ready(ctx)
}

func (t *Tree[T]) checkResolved(ctx context.Context, n node) error {
	if n.resolved() {
		return nil
	}
	err := &UndefinedTargetError{ID: n.ID()}
	t.error(ctx, "validation target is undefined", logger.Error(err))
	return err
}

func (t *Tree[T]) finish(ctx context.Context, nodes []node) bool {
	ok := true
	for _, n := range nodes {
		if !n.AllGood() {
			ok = false
			break
		}
	}
	t.validated(ctx, ok)
	return ok
}

func (t *Tree[T]) result(ctx context.Context, ok bool) Result {
	if ok {
		return Result{Success: true}
	}

	r := t.Report()
	enc := report.Encode(r, t.options.ResultsType)
	t.info(ctx, "validation report materialized",
		logger.ResultsType(string(t.options.ResultsType)),
		logger.Report(enc),
	)
	if t.hooks.OnReport != nil {
		t.hooks.OnReport(t.id, enc)
	}
	return Result{Success: false, Results: enc, Report: r}
}

func (t *Tree[T]) failure(res Result) error {
	if res.Success {
		return nil
	}
	return &ValidationError{ID: t.id, Report: res.Report, Results: res.Results}
}
