package vtree

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/vtree/pkg/logger"
)

// base holds what every tree carries regardless of its object type.
type base struct {
	id           string
	options      Options
	optionsSet   bool
	log          *slog.Logger
	logSet       bool
	logInherited bool
	hooks        Hooks
}

// inheritFrom copies options and logger from a parent unless they were set
// on this tree.
func (b *base) inheritFrom(p *base) {
	if !b.optionsSet {
		b.options = p.options
	}
	if !b.logSet && (p.logSet || p.logInherited) {
		b.log = p.log
		b.logInherited = true
	}
}

func (b *base) emit(ctx context.Context, level slog.Level, msg string, attrs ...slog.Attr) {
	attrs = append(attrs, logger.TreeID(b.id))
	b.log.LogAttrs(ctx, level, msg, attrs...)
}

// info and warn are emitted in development mode only.
func (b *base) info(ctx context.Context, msg string, attrs ...slog.Attr) {
	if b.options.Dev {
		b.emit(ctx, slog.LevelInfo, msg, attrs...)
	}
}

func (b *base) warn(ctx context.Context, msg string, attrs ...slog.Attr) {
	if b.options.Dev {
		b.emit(ctx, slog.LevelWarn, msg, attrs...)
	}
}

func (b *base) error(ctx context.Context, msg string, attrs ...slog.Attr) {
	b.emit(ctx, slog.LevelError, msg, attrs...)
}

func (b *base) validated(ctx context.Context, ok bool) {
	b.info(ctx, "validation finished", logger.Success(ok))
	if b.hooks.OnValidated != nil {
		b.hooks.OnValidated(b.id, ok)
	}
}
