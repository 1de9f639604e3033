package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventSelectionChange EventType = "selection_change"
	EventReset           EventType = "reset"
	EventDatasetLoaded   EventType = "dataset_loaded"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// SelectionEvent describes one applied action.
type SelectionEvent struct {
	EventBase
	Action ActionType `json:"action"`
	Level  Level      `json:"level"`
	Before Selection  `json:"before"`
	After  Selection  `json:"after"`
}

// DatasetEvent describes a (re)loaded dataset.
type DatasetEvent struct {
	EventBase
	Stats Stats `json:"stats"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnSelectionChange func(context.Context, *SelectionEvent)
	OnReset           func(context.Context, *SelectionEvent)
	OnDatasetLoaded   func(context.Context, *DatasetEvent)
	OnDatasetError    func(context.Context, error)
}
