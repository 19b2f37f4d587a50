package vtree

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/vtree/pkg/async"
	"github.com/dmitrymomot/vtree/pkg/logger"
)

// BatchResult holds one Result per input, in input order. Success is true
// only when every instance passed.
type BatchResult struct {
	Success bool     `json:"success"`
	Results []Result `json:"results"`
}

// BatchValidate validates every instance independently. Each instance runs
// on a private copy of the tree, so the receiver's state and binding are
// left untouched. A nil instance fails with an UndefinedTargetError.
func (t *Tree[T]) BatchValidate(data ...*T) (BatchResult, error) {
	out := BatchResult{Success: true, Results: make([]Result, len(data))}
	for i, d := range data {
		res, err := t.instance(d).ValidateInfo(nil)
		if err != nil {
			return BatchResult{}, fmt.Errorf("item %d: %w", i, err)
		}
		out.Results[i] = res
		out.Success = out.Success && res.Success
	}
	t.info(context.Background(), "batch validation finished", logger.Success(out.Success), logger.Count(len(data)))
	return out, nil
}

// BatchValidateAsync validates every instance concurrently.
func (t *Tree[T]) BatchValidateAsync(ctx context.Context, data ...*T) (BatchResult, error) {
	futures := make([]*async.Future[Result], len(data))
	for i, d := range data {
		inst := t.instance(d)
		futures[i] = async.Go(ctx, func(ctx context.Context) (Result, error) {
			res, err := inst.ValidateInfoAsync(ctx, nil)
			if err != nil {
				return res, fmt.Errorf("item %d: %w", i, err)
			}
			return res, nil
		})
	}

	results, err := async.WaitAll(futures...)
	if err != nil {
		return BatchResult{}, err
	}

	out := BatchResult{Success: true, Results: results}
	for _, r := range results {
		out.Success = out.Success && r.Success
	}
	t.info(ctx, "batch validation finished", logger.Success(out.Success), logger.Count(len(data)))
	return out, nil
}

// BatchValidateThrow returns a *BatchValidationError when any instance fails.
func (t *Tree[T]) BatchValidateThrow(data ...*T) error {
	res, err := t.BatchValidate(data...)
	if err != nil {
		return err
	}
	return t.batchFailure(res)
}

func (t *Tree[T]) BatchValidateThrowAsync(ctx context.Context, data ...*T) error {
	res, err := t.BatchValidateAsync(ctx, data...)
	if err != nil {
		return err
	}
	return t.batchFailure(res)
}

func (t *Tree[T]) batchFailure(res BatchResult) error {
	if res.Success {
		return nil
	}
	return &BatchValidationError{ID: t.id, Results: res.Results}
}

func (t *Tree[T]) instance(d *T) *Tree[T] {
	c := t.Clone()
	c.getter = func() *T { return d }
	return c
}
