package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// TreeID records the id of a validator tree under the key "tree_id".
func TreeID(id string) slog.Attr {
	return slog.String("tree_id", id)
}

// Field records a field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Success records a validation verdict under the key "success".
func Success(ok bool) slog.Attr {
	return slog.Bool("success", ok)
}

// ResultsType records the report encoding under the key "results_type".
func ResultsType(t string) slog.Attr {
	return slog.String("results_type", t)
}

// Report records an encoded error report under the key "report".
// If report is nil, it returns an empty Attr.
func Report(report any) slog.Attr {
	if report == nil {
		return slog.Attr{}
	}
	return slog.Any("report", report)
}

// ReportID records a stored report identifier under the key "report_id".
func ReportID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("report_id", id)
}

// Count records a number of processed items under the key "count".
func Count(n int) slog.Attr {
	return slog.Int("count", n)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
