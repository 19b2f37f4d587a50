package vtree

import (
	"context"
	"fmt"

	"github.com/dmitrymomot/vtree/pkg/logger"
	"github.com/dmitrymomot/vtree/pkg/report"
)

// Import restores field state, and values when the tree is bound to an
// object, from a report produced by a tree of the same shape. The report
// encoding must match the tree's results type. Unknown fields and nested
// objects are skipped.
func (t *Tree[T]) Import(enc report.Encoded) error {
	if enc == nil {
		return nil
	}
	if enc.Type() != t.options.ResultsType {
		return fmt.Errorf("%w: got %s, want %s", ErrEncodingMismatch, enc.Type(), t.options.ResultsType)
	}
	t.importReport(context.Background(), enc.Canonical())
	return nil
}

// ImportJSON decodes data in the tree's results type and imports it.
func (t *Tree[T]) ImportJSON(data []byte) error {
	enc, err := report.Decode(data, t.options.ResultsType)
	if err != nil {
		return err
	}
	return t.Import(enc)
}

func (t *Tree[T]) importReport(ctx context.Context, r report.Report) {
	if len(r.Items) > 0 && len(t.items) == 0 {
		t.warn(ctx, "report has fields but the validator declares none")
	}

	bound := t.resolved()
	for _, it := range r.Items {
		f, ok := t.lookup(it.Field)
		if !ok {
			t.warn(ctx, "unknown field in report", logger.Field(it.Field))
			continue
		}
		f.restore(it)
		if !bound {
			continue
		}
		if err := f.SetValue(it.Value); err != nil {
			t.warn(ctx, "cannot restore field value", logger.Field(it.Field), logger.Error(err))
		}
	}

	if len(r.Nested) > 0 && len(t.nested) == 0 {
		t.warn(ctx, "report has nested objects but the validator declares none")
	}
	for _, c := range r.Nested {
		i := t.nestedIndex(c.Field)
		if i < 0 {
			t.warn(ctx, "unknown nested object in report", logger.Field(c.Field))
			continue
		}
		t.nested[i].node().importReport(ctx, c.Report)
	}
}
