package vtree

import (
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/vtree/pkg/config"
	"github.com/dmitrymomot/vtree/pkg/report"
)

// Options controls report encoding and diagnostics of a tree.
type Options struct {
	// ResultsType selects the encoding of reports returned by the Info and
	// Throw entry points and accepted by Import.
	ResultsType report.Type
	// Dev enables info and warning logs.
	Dev bool
	// RuleTimeout bounds each field evaluation in the asynchronous entry
	// points. Zero means no bound.
	RuleTimeout time.Duration
}

type envOptions struct {
	ResultsType string        `env:"RESULTS_TYPE" envDefault:"object"`
	Dev         bool          `env:"DEV" envDefault:"false"`
	RuleTimeout time.Duration `env:"RULE_TIMEOUT" envDefault:"0s"`
}

// EnvPrefix namespaces the environment variables read by LoadDefaultOptions.
const EnvPrefix = "VTREE_"

var (
	defaultsMu     sync.RWMutex
	defaults       = builtinOptions()
	defaultsLoaded sync.Once
)

func builtinOptions() Options {
	return Options{ResultsType: report.TypeObject}
}

// DefaultOptions returns the process-wide defaults copied into every new
// tree. On first use they are read from VTREE_RESULTS_TYPE, VTREE_DEV and
// VTREE_RULE_TIMEOUT; invalid values leave the built-in defaults in place.
func DefaultOptions() Options {
	defaultsLoaded.Do(func() {
		if err := LoadDefaultOptions(); err != nil {
			slog.Default().Warn("vtree: using built-in default options", "error", err)
		}
	})

	defaultsMu.RLock()
	defer defaultsMu.RUnlock()
	return defaults
}

// SetDefaultOptions replaces the process-wide defaults. Existing trees keep
// the copy they were created with.
func SetDefaultOptions(o Options) {
	defaultsLoaded.Do(func() {})
	if o.ResultsType == "" {
		o.ResultsType = report.TypeObject
	}

	defaultsMu.Lock()
	defaults = o
	defaultsMu.Unlock()
}

// LoadDefaultOptions reads the process-wide defaults from the environment.
func LoadDefaultOptions(opts ...config.Option) error {
	var e envOptions
	if err := config.Load(&e, append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)...); err != nil {
		return err
	}

	typ, err := report.ParseType(e.ResultsType)
	if err != nil {
		return err
	}

	defaultsMu.Lock()
	defaults = Options{ResultsType: typ, Dev: e.Dev, RuleTimeout: e.RuleTimeout}
	defaultsMu.Unlock()
	return nil
}

// Hooks are optional observers called at fixed points of a validation.
// They never change results.
type Hooks struct {
	// OnValidated runs after every full-tree validation with its verdict.
	OnValidated func(id string, ok bool)
	// OnReport runs whenever a failing validation materializes a report.
	OnReport func(id string, results report.Encoded)
}

// Option configures a tree at creation.
type Option func(*base)

// WithID sets the display name used in errors and logs.
func WithID(id string) Option {
	return func(b *base) {
		if id != "" {
			b.id = id
		}
	}
}

// WithOptions replaces the options copied from the process defaults.
// Trees given any option of their own keep them when nested; others take a
// copy of the parent's options when the parent is configured.
func WithOptions(o Options) Option {
	return func(b *base) {
		if o.ResultsType == "" {
			o.ResultsType = b.options.ResultsType
		}
		b.options = o
		b.optionsSet = true
	}
}

func WithResultsType(t report.Type) Option {
	return func(b *base) {
		b.options.ResultsType = t
		b.optionsSet = true
	}
}

func WithDev(dev bool) Option {
	return func(b *base) {
		b.options.Dev = dev
		b.optionsSet = true
	}
}

func WithRuleTimeout(d time.Duration) Option {
	return func(b *base) {
		b.options.RuleTimeout = d
		b.optionsSet = true
	}
}

// WithLogger injects the logging sink. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(b *base) {
		if l != nil {
			b.log = l
			b.logSet = true
		}
	}
}

func WithHooks(h Hooks) Option {
	return func(b *base) { b.hooks = h }
}
