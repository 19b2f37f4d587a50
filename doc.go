// Package vtree validates typed objects against declarative field rules and
// nested validator trees, and turns failures into structured error reports.
//
// A tree is declared once per object type. Each field names a pointer into
// the object and an ordered rule list; the first failing rule decides the
// field's message. Nested objects are validated by their own trees and read
// their object through the parent.
//
// Basic Usage:
//
//	type Profile struct {
//		Age int `json:"age"`
//	}
//
//	type User struct {
//		Email   string  `json:"email"`
//		Profile Profile `json:"profile"`
//	}
//
//	profiles := vtree.MustNew(vtree.Config[Profile]{
//		Items: []vtree.Item[Profile]{
//			vtree.Field("age", func(p *Profile) *int { return &p.Age },
//				rule.Number[int]().Min(18).OnError(func(age int, _ rule.Env) bool { return age < 18 }, "too young")),
//		},
//	})
//
//	users := vtree.MustNew(vtree.Config[User]{
//		Items: []vtree.Item[User]{
//			vtree.Field("email", func(u *User) *string { return &u.Email },
//				rule.String().Required().Email()),
//		},
//		Nested: []vtree.Child[User]{
//			vtree.Nest("profile", func(u *User) *Profile { return &u.Profile }, profiles),
//		},
//	})
//
//	res, err := users.ValidateInfo(&User{Email: "bad"})
//	if err != nil {
//		// tree misuse: not bound, or an object resolved to nil
//	}
//	if !res.Success {
//		// res.Results is a report.ObjectReport or report.ArrayReport
//	}
//
// Reports come in two encodings selected by Options.ResultsType: an object
// keyed by nested field name, or an array of {field, result} pairs. Both are
// derived from report.Report and can be imported back with Import.
//
// Asynchronous entry points evaluate trees and fields concurrently and
// accept rules built with MustAsync. Batch entry points validate each
// instance on a private copy of the tree.
//
// Diagnostics go to an injected *slog.Logger. Info and warnings are emitted
// only with Options.Dev; errors always are.
package vtree
