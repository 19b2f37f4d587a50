package messages_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/vtree/pkg/messages"
	"github.com/dmitrymomot/vtree/pkg/report"
	"github.com/dmitrymomot/vtree/pkg/rule"
)

func TestCatalog_T(t *testing.T) {
	t.Parallel()
	c := messages.New()
	require.NoError(t, c.Load(context.Background(), messages.YAML, []byte(`
en:
  greeting: "Hello, %{name}!"
  validation:
    min_length: "%{field} needs %{min} characters"
fr:
  greeting: "Bonjour, %{name} !"
`)))

	assert.Equal(t, "Hello, Ann!", c.T("en", "greeting", "name", "Ann"))
	assert.Equal(t, "Bonjour, Ann !", c.T("fr", "greeting", "name", "Ann"))
	assert.Equal(t, "username needs 3 characters", c.T("en", "validation.min_length", "field", "username", "min", "3"))
	assert.Equal(t, "Hello, %{name}!", c.T("en", "greeting"), "missing params keep placeholders")

	t.Run("falls back to default language", func(t *testing.T) {
		assert.Equal(t, "username needs 3 characters", c.T("fr", "validation.min_length", "field", "username", "min", "3"))
	})

	t.Run("falls back to key", func(t *testing.T) {
		assert.Equal(t, "missing.key", c.T("en", "missing.key"))
		assert.Equal(t, "validation", c.T("en", "validation"), "non-string node")
	})

	assert.True(t, c.Has("en", "validation.min_length"))
	assert.False(t, c.Has("fr", "validation.min_length"))
	assert.Equal(t, []string{"en", "fr"}, c.Languages())
}

func TestCatalog_Add_Merges(t *testing.T) {
	t.Parallel()
	c := messages.New()
	c.Add("en", map[string]any{"validation": map[string]any{"required": "needed"}})
	c.Add("en", map[string]any{"validation": map[string]any{"email": "bad email"}})

	assert.Equal(t, "needed", c.T("en", "validation.required"))
	assert.Equal(t, "bad email", c.T("en", "validation.email"))
}

func TestCatalog_LoadJSON(t *testing.T) {
	t.Parallel()
	c := messages.New()
	require.NoError(t, c.Load(context.Background(), messages.JSON, []byte(`{"en":{"a":{"b":"c"}}}`)))
	assert.Equal(t, "c", c.T("en", "a.b"))

	err := c.Load(context.Background(), messages.JSON, []byte(`{"en":"flat"}`))
	assert.ErrorIs(t, err, messages.ErrInvalidStructure)

	err = c.Load(context.Background(), messages.JSON, []byte(`{`))
	assert.ErrorIs(t, err, messages.ErrFailedToParse)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = c.Load(ctx, messages.YAML, []byte(`en: {}`))
	assert.ErrorIs(t, err, messages.ErrParsingCancelled)
}

func TestCatalog_LoadFS(t *testing.T) {
	t.Parallel()
	fsys := fstest.MapFS{
		"i18n/en.yml":    {Data: []byte("en:\n  hi: hello\n")},
		"i18n/es.json":   {Data: []byte(`{"es":{"hi":"hola"}}`)},
		"i18n/notes.txt": {Data: []byte("ignored")},
	}

	c := messages.New()
	require.NoError(t, c.LoadFS(context.Background(), fsys, "i18n/*.y*ml"))
	require.NoError(t, c.LoadFS(context.Background(), fsys, "i18n/*.json"))
	assert.Equal(t, "hola", c.T("es", "hi"))
	assert.Equal(t, "hello", c.T("en", "hi"))

	err := c.LoadFS(context.Background(), fsys, "i18n/*.txt")
	assert.ErrorIs(t, err, messages.ErrUnsupportedFile)
}

func TestCatalog_LogsMissing(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	c := messages.New(messages.WithLogger(slog.New(slog.NewTextHandler(&buf, nil))))
	c.T("en", "nope")
	assert.Contains(t, buf.String(), "translation not found")
}

func TestMatch(t *testing.T) {
	t.Parallel()
	supported := []string{"en", "de"}

	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"de", "de"},
		{"de-AT,de;q=0.9,en;q=0.8", "de"},
		{"fr-FR,fr;q=0.9", "en"},
		{"fr;q=0.9,de;q=0.5", "de"},
		{"not a header;;;", "en"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, messages.Match(tt.header, supported, "en"), tt.header)
	}
}

func TestDefault_LocalizesRuleMessages(t *testing.T) {
	t.Parallel()
	c, err := messages.Default()
	require.NoError(t, err)
	assert.Equal(t, []string{"de", "en"}, c.Languages())

	out := rule.Evaluate(rule.String().MinLen(3).Rules(), "ab", rule.Env{})
	r := report.Report{
		Items: []report.Item{{
			Field:             "username",
			Message:           out.Message,
			Value:             "ab",
			TranslationKey:    out.TranslationKey,
			TranslationValues: out.TranslationValues,
		}},
	}

	en := report.Localize(r, c, "en")
	assert.Equal(t, "username must be at least 3 characters long", en.Items[0].Message)

	de := report.Localize(r, c, c.Match("de-DE"))
	assert.Equal(t, "username muss mindestens 3 Zeichen lang sein", de.Items[0].Message)
}
