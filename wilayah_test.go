package wilayah_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/wilayah"
	"github.com/aretw0/wilayah/pkg/adapters/file"
	"github.com/aretw0/wilayah/pkg/adapters/remote"
	"github.com/aretw0/wilayah/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `{"provinces":[{"id":1,"name":"Aceh"}],"regencies":[{"id":11,"name":"Kabupaten Simeulue","province_id":1}],"districts":[]}`

func TestNew_FileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "regions.json")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	var loadedStats domain.Stats
	eng, err := wilayah.New(path, wilayah.WithLifecycleHooks(domain.LifecycleHooks{
		OnDatasetLoaded: func(ctx context.Context, e *domain.DatasetEvent) { loadedStats = e.Stats },
	}))
	require.NoError(t, err)
	assert.Equal(t, "regions.json", eng.Name)
	assert.IsType(t, &file.Loader{}, eng.Loader())
	assert.False(t, eng.Available())

	require.NoError(t, eng.Reload(context.Background()))
	assert.True(t, eng.Available())
	assert.Equal(t, 1, loadedStats.Regencies)
}

func TestNew_URLSource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(doc))
	}))
	defer srv.Close()

	eng, err := wilayah.New(srv.URL + "/data/indonesia_regions.json")
	require.NoError(t, err)
	assert.IsType(t, &remote.Loader{}, eng.Loader())

	require.NoError(t, eng.Reload(context.Background()))
	v, err := eng.View(context.Background(), domain.Selection{Province: domain.Some(1)})
	require.NoError(t, err)
	require.Len(t, v.Regencies, 1)
}

func TestNew_RequiresSource(t *testing.T) {
	_, err := wilayah.New("")
	assert.Error(t, err)
}

func TestReload_FailureKeepsUnavailable(t *testing.T) {
	eng, err := wilayah.New(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	err = eng.Reload(context.Background())
	require.Error(t, err)

	_, err = eng.View(context.Background(), domain.Selection{})
	assert.True(t, errors.Is(err, domain.ErrDatasetUnavailable))
}

func TestQueryHelpers(t *testing.T) {
	sel, err := wilayah.ParseQuery("?province=1&district=100")
	require.NoError(t, err)
	assert.Equal(t, domain.Selection{Province: domain.Some(1)}, sel)
	assert.Equal(t, "province=1", wilayah.Query(sel))
	assert.Equal(t, "", wilayah.Query(domain.Selection{}))

	_, err = wilayah.ParseQuery("%zz")
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, wilayah.Version)
}
