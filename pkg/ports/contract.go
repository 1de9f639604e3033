package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunSelectionStoreContract runs a suite of tests to verify that a SelectionStore implementation
// adheres to the defined interface contract.
func RunSelectionStoreContract(t *testing.T, store SelectionStore) {
	ctx := context.Background()
	sessionID := "contract-test-session-" + time.Now().Format("20060102150405")

	t.Run("Save and Load", func(t *testing.T) {
		sel := domain.Selection{
			Province: domain.Some(32),
			Regency:  domain.Some(3273),
			District: domain.Some(327301),
		}

		err := store.Save(ctx, sessionID, sel)
		require.NoError(t, err, "Save should not return error")

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err, "Load should not return error")
		assert.Equal(t, sel, loaded)
	})

	t.Run("Save Overwrites", func(t *testing.T) {
		sel := domain.Selection{Province: domain.Some(11)}
		require.NoError(t, store.Save(ctx, sessionID, sel))

		loaded, err := store.Load(ctx, sessionID)
		require.NoError(t, err)
		assert.Equal(t, sel, loaded)
		assert.False(t, loaded.Regency.Valid, "Unset levels must round-trip as unset")
	})

	t.Run("Load Non-Existent", func(t *testing.T) {
		_, err := store.Load(ctx, "non-existent-"+sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	})

	t.Run("Delete", func(t *testing.T) {
		err := store.Save(ctx, sessionID, domain.Selection{})
		require.NoError(t, err)

		err = store.Delete(ctx, sessionID)
		require.NoError(t, err, "Delete should not return error")

		_, err = store.Load(ctx, sessionID)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound, "Load after Delete should return ErrSessionNotFound")
	})

	t.Run("List", func(t *testing.T) {
		id1 := sessionID + "-1"
		id2 := sessionID + "-2"
		_ = store.Save(ctx, id1, domain.Selection{})
		_ = store.Save(ctx, id2, domain.Selection{Province: domain.Some(1)})

		defer func() {
			_ = store.Delete(ctx, id1)
			_ = store.Delete(ctx, id2)
		}()

		sessions, err := store.List(ctx)
		require.NoError(t, err)
		assert.Contains(t, sessions, id1)
		assert.Contains(t, sessions, id2)
	})
}
