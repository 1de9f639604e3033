package wilayah

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/wilayah/internal/cascade"
	"github.com/aretw0/wilayah/internal/config"
	"github.com/aretw0/wilayah/internal/logging"
	"github.com/aretw0/wilayah/pkg/adapters/file"
	"github.com/aretw0/wilayah/pkg/adapters/query"
	"github.com/aretw0/wilayah/pkg/adapters/remote"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
)

// Engine is the high-level entry point of the library. It binds a dataset
// loader to the selection state machine.
type Engine struct {
	core   *cascade.Engine
	loader ports.DatasetLoader
	hooks  domain.LifecycleHooks
	logger *slog.Logger
	Name   string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLoader injects a custom DatasetLoader; the source passed to New is
// then only a label.
func WithLoader(l ports.DatasetLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// New creates an Engine for source: a JSON/YAML file path or an http(s) URL.
// The dataset is not read until Reload is called.
func New(source string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.loader == nil {
		if source == "" {
			return nil, fmt.Errorf("source is required when no custom loader is provided")
		}
		if config.IsURL(source) {
			l, err := remote.NewLoader(source)
			if err != nil {
				return nil, err
			}
			eng.loader = l
		} else {
			eng.loader = file.NewLoader(source)
		}
	}
	if source != "" {
		eng.Name = filepath.Base(source)
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("dataset", eng.Name)
	}

	eng.core = cascade.NewEngine(
		cascade.WithLifecycleHooks(eng.hooks),
		cascade.WithLogger(eng.logger),
	)
	return eng, nil
}

// Reload reads the dataset through the configured loader. On failure the
// previously loaded dataset, if any, stays in use.
func (e *Engine) Reload(ctx context.Context) error {
	return e.core.Load(ctx, e.loader)
}

// Load reads the dataset through loader instead of the configured one.
func (e *Engine) Load(ctx context.Context, loader ports.DatasetLoader) error {
	return e.core.Load(ctx, loader)
}

// Apply runs one selection operation and returns the settled selection.
func (e *Engine) Apply(ctx context.Context, sel domain.Selection, action domain.Action) (domain.Selection, error) {
	return e.core.Apply(ctx, sel, action)
}

// View derives the option lists and resolved records for sel.
func (e *Engine) View(ctx context.Context, sel domain.Selection) (domain.View, error) {
	return e.core.View(ctx, sel)
}

// Dataset returns the loaded dataset, or nil.
func (e *Engine) Dataset() *domain.Dataset {
	return e.core.Dataset()
}

// Available reports whether a dataset is loaded.
func (e *Engine) Available() bool {
	return e.core.Available()
}

// Loader returns the configured loader.
func (e *Engine) Loader() ports.DatasetLoader {
	return e.loader
}

// ParseQuery decodes a selection from a query string such as
// "province=32&regency=3273". Inconsistent parameters are dropped.
func ParseQuery(raw string) (domain.Selection, error) {
	params, err := query.Parse(raw)
	if err != nil {
		return domain.Selection{}, fmt.Errorf("invalid query: %w", err)
	}
	return cascade.Decode(params), nil
}

// Query encodes sel as a query string without the leading "?".
func Query(sel domain.Selection) string {
	params := query.New()
	cascade.Encode(sel, params)
	return params.Encode()
}

var _ ports.SelectionEngine = (*Engine)(nil)
