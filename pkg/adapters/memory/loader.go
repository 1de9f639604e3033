package memory

import (
	"context"

	"github.com/aretw0/wilayah/pkg/domain"
)

// Loader implements ports.DatasetLoader over a dataset already held in memory.
// Useful for tests and for hosts that embed their data.
type Loader struct {
	dataset *domain.Dataset
}

// NewLoader creates a Loader returning ds.
func NewLoader(ds *domain.Dataset) *Loader {
	return &Loader{dataset: ds}
}

// Describe names the source for logs.
func (l *Loader) Describe() string {
	return "memory"
}

// Load returns the dataset. A nil dataset yields domain.ErrDatasetUnavailable.
func (l *Loader) Load(ctx context.Context) (*domain.Dataset, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if l.dataset == nil {
		return nil, domain.ErrDatasetUnavailable
	}
	return l.dataset, nil
}
