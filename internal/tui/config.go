package tui

import (
	"context"

	"github.com/Veraticus/axox-storefront/internal/advisor"
	"github.com/Veraticus/axox-storefront/internal/catalog"
	"github.com/Veraticus/axox-storefront/internal/tui/themes"
)

// Searcher runs a search request. *advisor.Advisor satisfies it.
type Searcher interface {
	Search(ctx context.Context, req advisor.SearchRequest) (advisor.SearchResponse, advisor.Source, error)
}

// Config holds TUI configuration.
type Config struct {
	Searcher     Searcher
	Catalog      *catalog.Catalog
	Theme        themes.Theme
	InitialQuery string
	Width        int
	Height       int
	AltScreen    bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Width:     80,
		Height:    24,
		AltScreen: true,
	}
}

// WithSearcher sets the search backend.
func WithSearcher(s Searcher) Option {
	return func(c *Config) {
		c.Searcher = s
	}
}

// WithCatalog sets the catalog used to resolve recommended product ids.
func WithCatalog(cat *catalog.Catalog) Option {
	return func(c *Config) {
		c.Catalog = cat
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithInitialQuery runs query as soon as the UI starts.
func WithInitialQuery(query string) Option {
	return func(c *Config) {
		c.InitialQuery = query
	}
}

// WithAltScreen toggles the alternate screen buffer.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
