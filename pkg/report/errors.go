package report

import "errors"

var (
	ErrUnknownType = errors.New("report: unknown results type")
	ErrDecode      = errors.New("report: failed to decode report")
)
