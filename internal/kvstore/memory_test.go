package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_BasicRoundTrip(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	v, err := s.Get(ctx, "absent")
	require.NoError(t, err)
	assert.Nil(t, v)

	require.NoError(t, s.Set(ctx, "k", []byte("v")))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("v"), v)

	require.NoError(t, s.Delete(ctx, "k"))
	v, err = s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestMemoryStore_GetReturnsCopy(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", []byte("abc")))

	v, err := s.Get(ctx, "k")
	require.NoError(t, err)
	v[0] = 'x'

	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestMemoryStore_KeysSortedByPrefix(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "b:2", nil))
	require.NoError(t, s.Set(ctx, "b:1", nil))
	require.NoError(t, s.Set(ctx, "a:1", nil))

	keys, err := s.Keys(ctx, "b:")
	require.NoError(t, err)
	assert.Equal(t, []string{"b:1", "b:2"}, keys)
}
