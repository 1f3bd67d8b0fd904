package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	Name  string   `json:"name"`
	Types []string `json:"types"`
}

func TestMemory_SetGet(t *testing.T) {
	m := NewMemory(time.Minute, time.Minute)
	ctx := context.Background()

	require.NoError(t, m.Set(ctx, "place:1", entry{Name: "Bouchon", Types: []string{"restaurant"}}, time.Minute))

	var got entry
	ok, err := m.Get(ctx, "place:1", &got)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Bouchon", got.Name)
	assert.Equal(t, 1, m.Len())
}

func TestMemory_Miss(t *testing.T) {
	m := NewMemory(time.Minute, time.Minute)
	var got entry
	ok, err := m.Get(context.Background(), "absent", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemory_ValuesAreCopies(t *testing.T) {
	m := NewMemory(time.Minute, time.Minute)
	ctx := context.Background()
	orig := entry{Name: "A", Types: []string{"cafe"}}
	require.NoError(t, m.Set(ctx, "k", orig, time.Minute))

	var first entry
	_, _ = m.Get(ctx, "k", &first)
	first.Types[0] = "mutated"

	var second entry
	_, _ = m.Get(ctx, "k", &second)
	assert.Equal(t, "cafe", second.Types[0])
}

func TestMemory_Expiry(t *testing.T) {
	m := NewMemory(time.Minute, 10*time.Millisecond)
	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "short", entry{Name: "x"}, 20*time.Millisecond))
	time.Sleep(50 * time.Millisecond)

	var got entry
	ok, err := m.Get(ctx, "short", &got)
	require.NoError(t, err)
	assert.False(t, ok)
}
