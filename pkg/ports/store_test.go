package ports_test

import (
	"context"
	"sort"
	"testing"

	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/aretw0/wilayah/pkg/ports"
)

// MockStore is a map-backed implementation of SelectionStore for testing purposes.
type MockStore struct {
	data map[string]domain.Selection
}

func NewMockStore() *MockStore {
	return &MockStore{
		data: make(map[string]domain.Selection),
	}
}

func (m *MockStore) Save(ctx context.Context, sessionID string, sel domain.Selection) error {
	m.data[sessionID] = sel
	return nil
}

func (m *MockStore) Load(ctx context.Context, sessionID string) (domain.Selection, error) {
	sel, ok := m.data[sessionID]
	if !ok {
		return domain.Selection{}, domain.ErrSessionNotFound
	}
	return sel, nil
}

func (m *MockStore) Delete(ctx context.Context, sessionID string) error {
	delete(m.data, sessionID)
	return nil
}

func (m *MockStore) List(ctx context.Context) ([]string, error) {
	ids := make([]string, 0, len(m.data))
	for id := range m.data {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids, nil
}

func TestMockStore_Contract(t *testing.T) {
	ports.RunSelectionStoreContract(t, NewMockStore())
}
