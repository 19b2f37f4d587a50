package messages

import (
	"context"
	"embed"
)

//go:embed locales/*.yaml
var locales embed.FS

// Default returns a catalog preloaded with the bundled rule messages.
func Default(opts ...Option) (*Catalog, error) {
	c := New(opts...)
	if err := c.LoadFS(context.Background(), locales, "locales/*.yaml"); err != nil {
		return nil, err
	}
	return c, nil
}
