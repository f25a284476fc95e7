package sklist

// nodeID indexes the arena's node store. The zero id is reserved as the
// "none" link, so a freshly zeroed forward slot is already terminated.
type nodeID int32

const nilNode nodeID = 0

// Entry is one key/value pair of the list.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// node is one arena slot: a key/value pair plus one forward link per
// level the node participates in. The level count is fixed at allocation.
// The header sentinel is a node holding no key/value whose forward slice
// spans the generator's level cap.
type node[K any, V any] struct {
	key     K
	value   V
	forward []nodeID
}

func (n *node[K, V]) level() int {
	return len(n.forward)
}
