package report_test

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vtree/pkg/report"
)

func sample() report.Report {
	return report.Report{
		Items: []report.Item{
			{Field: "email", Message: "unexpected email", Value: "wrong@mail.com"},
		},
		Nested: []report.Child{
			{Field: "profile", Report: report.Report{
				Items: []report.Item{{Field: "age", Message: "too young", Value: 16}},
			}},
			{Field: "settings", Report: report.Report{}},
		},
	}
}

func TestParseType(t *testing.T) {
	t.Parallel()
	typ, err := report.ParseType(" Array ")
	require.NoError(t, err)
	assert.Equal(t, report.TypeArray, typ)

	typ, err = report.ParseType("object")
	require.NoError(t, err)
	assert.Equal(t, report.TypeObject, typ)

	_, err = report.ParseType("yaml")
	assert.ErrorIs(t, err, report.ErrUnknownType)
}

func TestReport_Queries(t *testing.T) {
	t.Parallel()
	r := sample()

	assert.False(t, r.IsEmpty())
	assert.True(t, report.Report{Nested: []report.Child{{Field: "x"}}}.IsEmpty())
	assert.Equal(t, []string{"email", "profile.age"}, r.Fields())
	assert.Equal(t, map[string]string{"email": "unexpected email", "profile.age": "too young"}, r.Messages())

	it, ok := r.Find("profile.age")
	require.True(t, ok)
	assert.Equal(t, "too young", it.Message)
	_, ok = r.Find("profile.name")
	assert.False(t, ok)

	child, ok := r.Child("profile")
	require.True(t, ok)
	assert.Len(t, child.Items, 1)
}

func TestToObject(t *testing.T) {
	t.Parallel()
	o := report.ToObject(sample())

	require.Len(t, o.Items, 1)
	require.Contains(t, o.Nested, "profile")
	assert.NotContains(t, o.Nested, "settings", "empty nested reports are dropped")

	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [{"field": "email", "message": "unexpected email", "valid": false, "value": "wrong@mail.com"}],
		"nested": {"profile": {"items": [{"field": "age", "message": "too young", "valid": false, "value": 16}]}}
	}`, string(data))
}

func TestToArray(t *testing.T) {
	t.Parallel()
	a := report.ToArray(sample())

	data, err := json.Marshal(a)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"items": [{"field": "email", "message": "unexpected email", "valid": false, "value": "wrong@mail.com"}],
		"nested": [{"field": "profile", "result": {"items": [{"field": "age", "message": "too young", "valid": false, "value": 16}]}}]
	}`, string(data))
}

func TestEmptyReportOmitsKeys(t *testing.T) {
	t.Parallel()
	for _, typ := range []report.Type{report.TypeObject, report.TypeArray} {
		data, err := json.Marshal(report.Encode(report.Report{}, typ))
		require.NoError(t, err)
		assert.JSONEq(t, `{}`, string(data), typ)
	}
}

func TestEncodingsAreEquivalent(t *testing.T) {
	t.Parallel()
	r := sample()

	fromObject := report.ToObject(r).Canonical()
	fromArray := report.ToArray(r).Canonical()

	assert.Equal(t, r.Messages(), fromObject.Messages())
	assert.Equal(t, r.Messages(), fromArray.Messages())
	assert.Equal(t, fromObject, fromArray)
}

func TestDecode(t *testing.T) {
	t.Parallel()

	for _, typ := range []report.Type{report.TypeObject, report.TypeArray} {
		t.Run(string(typ), func(t *testing.T) {
			data, err := json.Marshal(report.Encode(sample(), typ))
			require.NoError(t, err)

			enc, err := report.Decode(data, typ)
			require.NoError(t, err)
			assert.Equal(t, typ, enc.Type())
			assert.Equal(t, sample().Messages(), enc.Canonical().Messages())
		})
	}

	_, err := report.Decode([]byte(`{"items": 5}`), report.TypeObject)
	assert.ErrorIs(t, err, report.ErrDecode)

	_, err = report.Decode([]byte(`{}`), report.Type("xml"))
	assert.ErrorIs(t, err, report.ErrUnknownType)
}

type upperTranslator struct{}

func (upperTranslator) T(lang, key string, params ...string) string {
	if key == "validation.unknown" {
		return key
	}
	return fmt.Sprintf("%s:%s:%s", lang, strings.ToUpper(key), strings.Join(params, ","))
}

func TestLocalize(t *testing.T) {
	t.Parallel()
	r := report.Report{
		Items: []report.Item{
			{Field: "age", Message: "must be at least 18", TranslationKey: "validation.min", TranslationValues: map[string]any{"min": 18}},
			{Field: "nick", Message: "custom"},
			{Field: "code", Message: "kept", TranslationKey: "validation.unknown"},
		},
		Nested: []report.Child{{Field: "profile", Report: report.Report{
			Items: []report.Item{{Field: "name", Message: "field is required", TranslationKey: "validation.required"}},
		}}},
	}

	out := report.Localize(r, upperTranslator{}, "de")
	assert.Equal(t, "de:VALIDATION.MIN:field,age,min,18", out.Items[0].Message)
	assert.Equal(t, "custom", out.Items[1].Message)
	assert.Equal(t, "kept", out.Items[2].Message)
	assert.Equal(t, "de:VALIDATION.REQUIRED:field,name", out.Nested[0].Report.Items[0].Message)
	assert.Equal(t, "must be at least 18", r.Items[0].Message, "input is not modified")
}
