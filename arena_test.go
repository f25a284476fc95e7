package sklist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaAllocRelease(t *testing.T) {
	a := newArena[int, string]()
	id := a.alloc(1, "one", 3)
	assert.NotEqual(t, nilNode, id)
	assert.Equal(t, 1, a.len())
	assert.Equal(t, 3, a.at(id).level())

	a.release(id)
	assert.Equal(t, 0, a.len())

	// freed slot gets reused before the store grows
	again := a.alloc(2, "two", 1)
	assert.Equal(t, id, again)
	assert.Equal(t, "two", a.at(again).value)
}

func TestArenaSlotZeroReserved(t *testing.T) {
	a := newArena[int, string]()
	first := a.alloc(1, "one", 1)
	assert.Equal(t, nodeID(1), first)
}

func TestArenaReset(t *testing.T) {
	a := newArena[int, string]()
	for i := 0; i < 10; i++ {
		a.alloc(i, "v", 1)
	}
	a.reset()
	assert.Equal(t, 0, a.len())
	assert.Equal(t, nodeID(1), a.alloc(99, "v", 1))
}

func TestArenaStaysBoundedUnderChurn(t *testing.T) {
	list := newTestList()
	for round := 0; round < 50; round++ {
		for i := 0; i < 100; i++ {
			require.NoError(t, list.Set(i, "v"))
		}
		for i := 0; i < 100; i++ {
			require.True(t, list.Remove(i))
		}
	}
	// header + at most one generation of nodes; churn must recycle slots
	assert.LessOrEqual(t, len(list.store.nodes), 102)
}
