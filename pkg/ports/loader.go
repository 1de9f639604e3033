package ports

import (
	"context"

	"github.com/aretw0/wilayah/pkg/domain"
)

// DatasetLoader fetches the static region resource and parses it into a Dataset.
// The core consumes only the result; it does not know the transport or location.
type DatasetLoader interface {
	Load(ctx context.Context) (*domain.Dataset, error)
}

// Describer is implemented by loaders that can name their source (path, URL) for logs.
type Describer interface {
	Describe() string
}
