package sklist

// arena stores every node of one list in a single growable slice and
// links them by index instead of Go pointer. Slot 0 is reserved so nodeID
// 0 can serve as the "none" link. Released slots are recycled through a
// free list, so long-lived lists with churn do not grow without bound.
type arena[K any, V any] struct {
	nodes []node[K, V]
	free  []nodeID
}

func newArena[K any, V any]() *arena[K, V] {
	return &arena[K, V]{nodes: make([]node[K, V], 1, 16)}
}

func (a *arena[K, V]) alloc(key K, value V, level int) nodeID {
	forward := make([]nodeID, level)
	if n := len(a.free); n > 0 {
		id := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[id] = node[K, V]{key: key, value: value, forward: forward}
		return id
	}
	a.nodes = append(a.nodes, node[K, V]{key: key, value: value, forward: forward})
	return nodeID(len(a.nodes) - 1)
}

// release zeroes the slot, dropping the key/value for collection, and
// queues it for reuse. The caller must have unlinked the node first.
func (a *arena[K, V]) release(id nodeID) {
	a.nodes[id] = node[K, V]{}
	a.free = append(a.free, id)
}

func (a *arena[K, V]) at(id nodeID) *node[K, V] {
	return &a.nodes[id]
}

// len reports the number of live slots, reserved slot 0 excluded.
func (a *arena[K, V]) len() int {
	return len(a.nodes) - 1 - len(a.free)
}

func (a *arena[K, V]) reset() {
	a.nodes = a.nodes[:1]
	a.nodes[0] = node[K, V]{}
	a.free = a.free[:0]
}
