// Package messages provides localized templates for validation messages.
//
// A Catalog is loaded from YAML or JSON documents keyed by language code and
// resolves dot-separated keys with %{name} placeholders. It implements
// report.Translator, so a report can be localized with:
//
//	cat, err := messages.Default()
//	if err != nil {
//		return err
//	}
//	lang := cat.Match(r.Header.Get("Accept-Language"))
//	localized := report.Localize(res.Report, cat, lang)
//
// Default bundles English and German templates for every translation key
// produced by package rule.
package messages
