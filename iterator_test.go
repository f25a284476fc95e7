package sklist

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededList(t *testing.T, keys ...int) *SkipList[int, string] {
	t.Helper()
	list := newTestList()
	for _, k := range keys {
		require.NoError(t, list.Set(k, "v"))
	}
	return list
}

func TestIterInvalidatedByInsert(t *testing.T) {
	list := seededList(t, 1, 2, 3)
	it := list.Iter()
	require.True(t, it.Next())

	require.NoError(t, list.Set(4, "v"))

	assert.False(t, it.Next())
	assert.True(t, errors.Is(it.Err(), ErrConcurrentModification))
}

func TestIterInvalidatedByRemove(t *testing.T) {
	list := seededList(t, 1, 2, 3)
	it := list.Iter()
	require.True(t, it.Next())

	require.True(t, list.Remove(3))

	assert.False(t, it.Next())
	assert.True(t, errors.Is(it.Err(), ErrConcurrentModification))
}

func TestIterInvalidatedByClear(t *testing.T) {
	list := seededList(t, 1, 2, 3)
	it := list.Iter()

	list.Clear()

	assert.False(t, it.Next())
	assert.True(t, errors.Is(it.Err(), ErrConcurrentModification))
}

func TestIterSurvivesOverwrite(t *testing.T) {
	list := seededList(t, 1, 2, 3)
	it := list.Iter()
	require.True(t, it.Next())

	// in-place value overwrite edits no link
	require.NoError(t, list.Set(3, "new"))

	require.True(t, it.Next())
	require.True(t, it.Next())
	assert.Equal(t, "new", it.Value())
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestIterExhaustedStaysExhausted(t *testing.T) {
	list := seededList(t, 1)
	it := list.Iter()
	require.True(t, it.Next())
	require.False(t, it.Next())
	require.NoError(t, it.Err())

	// later mutations must not resurrect a finished iterator
	require.NoError(t, list.Set(2, "v"))
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}

func TestIterEmptyList(t *testing.T) {
	list := newTestList()
	it := list.Iter()
	assert.False(t, it.Next())
	assert.NoError(t, it.Err())
}
