package sklist

// SpliceOp tells a SplicePolicy whether the point joins or leaves a level
// chain.
type SpliceOp int

const (
	SpliceInsert SpliceOp = iota
	SpliceRemove
)

// SplicePoint is one pending link edit: a node entering or leaving the
// chain at a single level, immediately after its predecessor at that
// level. The policy must complete the edit with Link or Unlink exactly
// once before returning.
type SplicePoint[K any, V any] struct {
	Level int
	list  *SkipList[K, V]
	prev  nodeID
	node  nodeID
}

// Link splices the point's node in after its predecessor: the node adopts
// the predecessor's old forward link and the predecessor now points at
// the node.
func (sp SplicePoint[K, V]) Link() {
	prev := sp.list.store.at(sp.prev)
	n := sp.list.store.at(sp.node)
	n.forward[sp.Level] = prev.forward[sp.Level]
	prev.forward[sp.Level] = sp.node
}

// Unlink removes the point's node from the level chain; the predecessor
// takes over the node's forward link.
func (sp SplicePoint[K, V]) Unlink() {
	prev := sp.list.store.at(sp.prev)
	n := sp.list.store.at(sp.node)
	prev.forward[sp.Level] = n.forward[sp.Level]
	n.forward[sp.Level] = nilNode
}

// SplicePolicy is invoked once per level for every insert and removal.
// Custom policies may instrument around Link/Unlink; the container relies
// on the edit having happened when the policy returns.
type SplicePolicy[K any, V any] func(op SpliceOp, sp SplicePoint[K, V])

func defaultSplice[K any, V any](op SpliceOp, sp SplicePoint[K, V]) {
	if op == SpliceInsert {
		sp.Link()
	} else {
		sp.Unlink()
	}
}
