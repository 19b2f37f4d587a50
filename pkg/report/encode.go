package report

import (
	"encoding/json"
	"errors"
)

// Encoded is a report in one of the two wire shapes.
type Encoded interface {
	Type() Type
	Canonical() Report
}

// ObjectReport keys nested reports by field name, mirroring the object shape.
type ObjectReport struct {
	Items  []Item                  `json:"items,omitempty"`
	Nested map[string]ObjectReport `json:"nested,omitempty"`
}

// ArrayReport lists nested reports as ordered field/result pairs.
type ArrayReport struct {
	Items  []Item        `json:"items,omitempty"`
	Nested []ArrayNested `json:"nested,omitempty"`
}

// ArrayNested is one entry of ArrayReport.Nested.
type ArrayNested struct {
	Field  string      `json:"field"`
	Result ArrayReport `json:"result"`
}

func (ObjectReport) Type() Type { return TypeObject }
func (ArrayReport) Type() Type  { return TypeArray }

// Canonical converts back to the canonical form. Map iteration has no order,
// so nested children of an object report are returned sorted by field name.
func (o ObjectReport) Canonical() Report {
	return FromObject(o)
}

func (a ArrayReport) Canonical() Report {
	return FromArray(a)
}

// ToObject encodes r in the object shape. Empty nested reports are dropped,
// and empty lists are omitted so that absent keys mean nothing to report.
func ToObject(r Report) ObjectReport {
	out := ObjectReport{Items: cloneItems(r.Items)}
	for _, c := range r.Nested {
		if c.Report.IsEmpty() {
			continue
		}
		if out.Nested == nil {
			out.Nested = make(map[string]ObjectReport)
		}
		out.Nested[c.Field] = ToObject(c.Report)
	}
	return out
}

// ToArray encodes r in the array shape, keeping declaration order.
func ToArray(r Report) ArrayReport {
	out := ArrayReport{Items: cloneItems(r.Items)}
	for _, c := range r.Nested {
		if c.Report.IsEmpty() {
			continue
		}
		out.Nested = append(out.Nested, ArrayNested{Field: c.Field, Result: ToArray(c.Report)})
	}
	return out
}

// Encode picks the encoder for t.
func Encode(r Report, t Type) Encoded {
	if t == TypeArray {
		return ToArray(r)
	}
	return ToObject(r)
}

func FromObject(o ObjectReport) Report {
	out := Report{Items: cloneItems(o.Items)}
	for _, field := range sortedKeys(o.Nested) {
		out.Nested = append(out.Nested, Child{Field: field, Report: FromObject(o.Nested[field])})
	}
	return out
}

func FromArray(a ArrayReport) Report {
	out := Report{Items: cloneItems(a.Items)}
	for _, n := range a.Nested {
		out.Nested = append(out.Nested, Child{Field: n.Field, Report: FromArray(n.Result)})
	}
	return out
}

// Decode parses JSON produced by encoding a report of type t.
func Decode(data []byte, t Type) (Encoded, error) {
	switch t {
	case TypeArray:
		var a ArrayReport
		if err := json.Unmarshal(data, &a); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		return a, nil
	case TypeObject:
		var o ObjectReport
		if err := json.Unmarshal(data, &o); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
		return o, nil
	default:
		return nil, ErrUnknownType
	}
}

func cloneItems(items []Item) []Item {
	if len(items) == 0 {
		return nil
	}
	return append([]Item(nil), items...)
}
