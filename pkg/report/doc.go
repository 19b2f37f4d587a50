// Package report defines the error report produced by a validator tree and
// its two interchangeable encodings.
//
// Report is the canonical form: the failing items of one object, in
// declaration order, followed by the reports of its nested objects. It is
// encoded with one of two pure functions:
//
//	report.ToObject(r) // {"items": [...], "nested": {"profile": {...}}}
//	report.ToArray(r)  // {"items": [...], "nested": [{"field": "profile", "result": {...}}]}
//
// Both encodings carry the same field/message pairs at every level and differ
// only in the container shape of nested reports. Keys are omitted, not
// emptied, when a level has nothing to report, and a report with neither key
// means the validation succeeded.
//
// FromObject, FromArray and Decode convert encoded reports back to the
// canonical form, which is what import on a validator tree consumes.
//
// Localize rewrites item messages through a Translator using each item's
// translation key; the field name and the rule's translation values are
// passed as named parameters.
package report
