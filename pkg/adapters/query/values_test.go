package query_test

import (
	"net/url"
	"testing"

	"github.com/aretw0/wilayah/pkg/adapters/query"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValues_GetSetDelete(t *testing.T) {
	v := query.New()

	_, ok := v.Get("province")
	assert.False(t, ok)

	v.Set("province", "32")
	got, ok := v.Get("province")
	assert.True(t, ok)
	assert.Equal(t, "32", got)

	v.Delete("province")
	v.Delete("province")
	_, ok = v.Get("province")
	assert.False(t, ok)
}

func TestValues_EncodeOrder(t *testing.T) {
	v, err := query.Parse("?utm=x&district=100&regency=10&province=1")
	require.NoError(t, err)
	assert.Equal(t, "province=1&regency=10&district=100&utm=x", v.Encode())
}

func TestValues_FromURL(t *testing.T) {
	u, err := url.Parse("/?province=1&province=2")
	require.NoError(t, err)

	v := query.FromURL(u)
	got, ok := v.Get("province")
	assert.True(t, ok)
	assert.Equal(t, "1", got, "first value wins")

	assert.Empty(t, query.FromURL(nil).Encode())
}
