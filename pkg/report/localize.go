package report

import "fmt"

// Translator resolves a translation key for a language.
// Params are passed as key, value pairs.
type Translator interface {
	T(lang, key string, params ...string) string
}

// Localize returns a copy of r whose messages are translated for lang.
// Items without a translation key keep their message, as do items whose
// translation resolves to the key itself.
func Localize(r Report, tr Translator, lang string) Report {
	out := Report{}
	for _, it := range r.Items {
		if it.TranslationKey != "" {
			if msg := tr.T(lang, it.TranslationKey, params(it)...); msg != "" && msg != it.TranslationKey {
				it.Message = msg
			}
		}
		out.Items = append(out.Items, it)
	}
	for _, c := range r.Nested {
		out.Nested = append(out.Nested, Child{Field: c.Field, Report: Localize(c.Report, tr, lang)})
	}
	return out
}

func params(it Item) []string {
	keys := sortedKeys(it.TranslationValues)
	out := make([]string, 0, 2*len(keys)+2)
	out = append(out, "field", it.Field)
	for _, k := range keys {
		if k == "field" {
			continue
		}
		out = append(out, k, fmt.Sprint(it.TranslationValues[k]))
	}
	return out
}
