package messages

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"maps"
	"regexp"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrymomot/vtree/pkg/logger"
)

// Catalog holds message templates per language. It is safe for concurrent
// use and satisfies report.Translator.
type Catalog struct {
	mu           sync.RWMutex
	translations map[string]map[string]any
	defaultLang  string
	logMissing   bool
	log          *slog.Logger
}

// Option configures a Catalog.
type Option func(*Catalog)

// WithDefaultLanguage sets the language used when a requested one is missing.
func WithDefaultLanguage(lang string) Option {
	return func(c *Catalog) {
		if lang != "" {
			c.defaultLang = lang
		}
	}
}

// WithLogger enables warnings about missing translations.
func WithLogger(l *slog.Logger) Option {
	return func(c *Catalog) {
		if l != nil {
			c.log = l
			c.logMissing = true
		}
	}
}

// New returns an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{
		translations: make(map[string]map[string]any),
		defaultLang:  DefaultLanguage,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add merges translations for lang, overwriting existing keys.
func (c *Catalog) Add(lang string, translations map[string]any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	dst, ok := c.translations[lang]
	if !ok {
		dst = make(map[string]any, len(translations))
		c.translations[lang] = dst
	}
	merge(dst, translations)
}

// Load parses content and merges every language it contains.
func (c *Catalog) Load(ctx context.Context, p Parser, content []byte) error {
	data, err := p.Parse(ctx, content)
	if err != nil {
		return err
	}
	for _, lang := range slices.Sorted(maps.Keys(data)) {
		if lang == "" {
			return fmt.Errorf("%w: empty language code", ErrInvalidStructure)
		}
		c.Add(lang, data[lang])
	}
	return nil
}

// LoadFS loads every file of fsys matching pattern, choosing the parser by
// extension.
func (c *Catalog) LoadFS(ctx context.Context, fsys fs.FS, pattern string) error {
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}

	for _, name := range files {
		if err := ctx.Err(); err != nil {
			return errors.Join(ErrParsingCancelled, err)
		}
		p, err := ParserFor(name)
		if err != nil {
			return err
		}
		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return errors.Join(ErrFailedToReadFile, err)
		}
		if err := c.Load(ctx, p, content); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}

// Languages returns the loaded language codes, sorted.
func (c *Catalog) Languages() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Sorted(maps.Keys(c.translations))
}

// Match picks the best loaded language for an Accept-Language header.
func (c *Catalog) Match(acceptLanguage string) string {
	return Match(acceptLanguage, c.Languages(), c.defaultLang)
}

// Has reports whether key resolves to a string template for lang.
func (c *Catalog) Has(lang, key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := lookup(c.translations[lang], key)
	return ok
}

// T renders the template for key in lang, falling back to the default
// language and then to the key itself. Params are key, value pairs
// substituted into %{name} placeholders.
//
//	c.T("en", "validation.min_length", "field", "username", "min", "3")
func (c *Catalog) T(lang, key string, params ...string) string {
	c.mu.RLock()
	tmpl, ok := lookup(c.translations[lang], key)
	if !ok && lang != c.defaultLang {
		tmpl, ok = lookup(c.translations[c.defaultLang], key)
	}
	c.mu.RUnlock()

	if !ok {
		if c.logMissing {
			c.log.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
		}
		return key
	}
	return render(tmpl, params)
}

func lookup(m map[string]any, key string) (string, bool) {
	if m == nil {
		return "", false
	}
	if v, ok := m[key].(string); ok {
		return v, true
	}

	parts := strings.Split(key, ".")
	cur := m
	for i, part := range parts {
		v, ok := cur[part]
		if !ok {
			return "", false
		}
		if i == len(parts)-1 {
			s, ok := v.(string)
			return s, ok
		}
		if cur, ok = v.(map[string]any); !ok {
			return "", false
		}
	}
	return "", false
}

func merge(dst, src map[string]any) {
	for k, v := range src {
		if sm, ok := v.(map[string]any); ok {
			if dm, ok := dst[k].(map[string]any); ok {
				merge(dm, sm)
				continue
			}
			cp := make(map[string]any, len(sm))
			merge(cp, sm)
			dst[k] = cp
			continue
		}
		dst[k] = v
	}
}

var placeholder = regexp.MustCompile(`%\{([^}]+)\}`)

func render(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return placeholder.ReplaceAllStringFunc(tmpl, func(match string) string {
		if v, ok := params[match[2:len(match)-1]]; ok {
			return v
		}
		return match
	})
}
