package tests

import (
	"context"
	"testing"

	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
)

// DatasetLoaderContractTest is a reusable test suite that verifies if an adapter complies with ports.DatasetLoader.
// want is the dataset the loader is expected to produce.
func DatasetLoaderContractTest(t *testing.T, loader ports.DatasetLoader, want *domain.Dataset) {
	t.Helper()

	t.Run("Load_Success", func(t *testing.T) {
		got, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading dataset: %v", err)
		}
		if got == nil {
			t.Fatal("expected dataset, got nil")
		}
		if got.Stats() != want.Stats() {
			t.Errorf("stats mismatch: got %+v, want %+v", got.Stats(), want.Stats())
		}
	})

	t.Run("Load_PreservesOrder", func(t *testing.T) {
		got, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("unexpected error loading dataset: %v", err)
		}
		for i := range want.Regencies {
			if i >= len(got.Regencies) {
				break
			}
			if got.Regencies[i] != want.Regencies[i] {
				t.Errorf("regency %d mismatch: got %+v, want %+v", i, got.Regencies[i], want.Regencies[i])
			}
		}
	})

	t.Run("Load_Canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		if _, err := loader.Load(ctx); err == nil {
			t.Error("expected error for canceled context, got nil")
		}
	})
}
