package vtree

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrymomot/vtree/pkg/report"
)

var (
	// ErrNotReady is returned by every validation entry point of a tree that
	// was never bound to an object getter.
	ErrNotReady = errors.New("vtree: validator is not ready, bind an object getter first")

	// ErrUndefinedTarget is wrapped by UndefinedTargetError.
	ErrUndefinedTarget = errors.New("vtree: validation target is undefined")

	// ErrUndefinedObject is returned by Configure when the bound getter
	// currently resolves to nil.
	ErrUndefinedObject = errors.New("vtree: cannot configure a validator for an undefined object")

	// ErrValidationFailed is wrapped by ValidationError and BatchValidationError.
	ErrValidationFailed = errors.New("vtree: validation failed")

	// ErrNestedBind is returned when data is passed to a tree attached as a
	// nested child, which always validates the object its parent points to.
	ErrNestedBind = errors.New("vtree: nested validator reads its object through the parent")

	ErrDuplicateField   = errors.New("vtree: duplicate field declaration")
	ErrEncodingMismatch = errors.New("vtree: report encoding does not match the validator results type")
	ErrRuleTimeout      = errors.New("vtree: rule evaluation timed out")
	ErrValueType        = errors.New("vtree: value does not fit the field type")
)

// UndefinedTargetError reports the tree whose getter resolved to nil during
// validation.
type UndefinedTargetError struct {
	ID string
}

func (e *UndefinedTargetError) Error() string {
	return fmt.Sprintf("%s: %s", e.ID, ErrUndefinedTarget.Error())
}

func (e *UndefinedTargetError) Unwrap() error { return ErrUndefinedTarget }

// ValidationError carries the report of a failed validation. It is returned
// by the Throw entry points only.
type ValidationError struct {
	ID      string
	Report  report.Report
	Results report.Encoded
}

func (e *ValidationError) Error() string {
	return summarize(e.ID, e.Report)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

// BatchValidationError carries every per-instance outcome of a batch, in
// input order, when at least one instance failed.
type BatchValidationError struct {
	ID      string
	Results []Result
}

func (e *BatchValidationError) Error() string {
	return fmt.Sprintf("%s: %s for %d of %d items", e.ID, ErrValidationFailed.Error(), len(e.Failed()), len(e.Results))
}

func (e *BatchValidationError) Unwrap() error { return ErrValidationFailed }

// Failed returns the input indexes of the failed instances.
func (e *BatchValidationError) Failed() []int {
	var idx []int
	for i, r := range e.Results {
		if !r.Success {
			idx = append(idx, i)
		}
	}
	return idx
}

func summarize(id string, r report.Report) string {
	msgs := r.Messages()
	if len(msgs) == 0 {
		return fmt.Sprintf("%s: %s", id, ErrValidationFailed.Error())
	}

	parts := make([]string, 0, len(msgs))
	for _, field := range r.Fields() {
		parts = append(parts, fmt.Sprintf("%s: %s", field, msgs[field]))
	}
	return fmt.Sprintf("%s: %s: %s", id, ErrValidationFailed.Error(), strings.Join(parts, "; "))
}
