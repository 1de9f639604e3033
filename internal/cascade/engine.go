package cascade

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/aretw0/wilayah/internal/logging"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
)

// Engine binds the cascade operations to a loaded dataset.
// It holds no per-user state: selections are passed in and returned by value,
// so one Engine serves any number of concurrent requests.
type Engine struct {
	dataset atomic.Pointer[domain.Dataset]
	hooks   domain.LifecycleHooks
	logger  *slog.Logger
	now     func() time.Time
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithDataset seeds the engine with an already loaded dataset.
func WithDataset(ds *domain.Dataset) EngineOption {
	return func(e *Engine) {
		e.dataset.Store(ds)
	}
}

// NewEngine creates an engine. Without WithDataset it stays unavailable until Load succeeds.
func NewEngine(opts ...EngineOption) *Engine {
	e := &Engine{
		logger: logging.NewNop(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load fetches a dataset through loader and swaps it in.
// On failure the previous dataset, if any, stays in place.
func (e *Engine) Load(ctx context.Context, loader ports.DatasetLoader) error {
	ds, err := loader.Load(ctx)
	if err == nil && ds == nil {
		err = domain.ErrDatasetUnavailable
	}
	if err != nil {
		e.logger.Error("dataset load failed", "err", err)
		if e.hooks.OnDatasetError != nil {
			e.hooks.OnDatasetError(ctx, err)
		}
		return fmt.Errorf("failed to load dataset: %w", err)
	}
	e.dataset.Store(ds)

	stats := ds.Stats()
	e.logger.Info("dataset loaded",
		"provinces", stats.Provinces,
		"regencies", stats.Regencies,
		"districts", stats.Districts,
	)
	if e.hooks.OnDatasetLoaded != nil {
		e.hooks.OnDatasetLoaded(ctx, &domain.DatasetEvent{
			EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventDatasetLoaded},
			Stats:     stats,
		})
	}
	return nil
}

// Dataset returns the current dataset, or nil before the first successful Load.
func (e *Engine) Dataset() *domain.Dataset {
	return e.dataset.Load()
}

// Available reports whether a dataset has been loaded.
func (e *Engine) Available() bool {
	return e.dataset.Load() != nil
}

// Apply runs one selection operation. Orphan levels of sel are dropped first
// and the returned selection is settled: cascade clears have been applied
// together with the change that caused them.
// Apply does not need a dataset; only derivations do.
func (e *Engine) Apply(ctx context.Context, sel domain.Selection, action domain.Action) (domain.Selection, error) {
	sel = Settle(sel)
	next, err := Apply(sel, action)
	if err != nil {
		return sel, err
	}

	e.logger.Debug("selection applied",
		"action", action.Type,
		"id", action.ID.String(),
		"depth", next.Depth(),
	)

	evt := &domain.SelectionEvent{
		EventBase: domain.EventBase{Timestamp: e.now(), Type: domain.EventSelectionChange},
		Action:    action.Type,
		Level:     action.Level(),
		Before:    sel,
		After:     next,
	}
	if action.Type == domain.ActionReset {
		evt.Type = domain.EventReset
		if e.hooks.OnReset != nil {
			e.hooks.OnReset(ctx, evt)
		}
	} else if e.hooks.OnSelectionChange != nil {
		e.hooks.OnSelectionChange(ctx, evt)
	}
	return next, nil
}

// View derives the presentation contract for sel.
// It returns domain.ErrDatasetUnavailable instead of deriving against a missing dataset.
func (e *Engine) View(ctx context.Context, sel domain.Selection) (domain.View, error) {
	ds := e.dataset.Load()
	if ds == nil {
		return domain.View{Selection: sel}, domain.ErrDatasetUnavailable
	}
	return BuildView(ds, sel), nil
}

var _ ports.SelectionEngine = (*Engine)(nil)
