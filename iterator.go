package sklist

import "github.com/pkg/errors"

// Iterator walks the list in ascending key order. It is lazy, finite and
// non-restartable. A structural mutation of the list after the iterator
// was created (insert of a new key, removal, clear) invalidates it: the
// next advance returns false and Err reports ErrConcurrentModification.
// Overwriting an existing key's value edits no link and does not
// invalidate.
type Iterator[K any, V any] struct {
	list    *SkipList[K, V]
	next    nodeID
	version uint64
	cur     Entry[K, V]
	err     error
	done    bool
}

// Iter starts an iteration over the current contents.
func (l *SkipList[K, V]) Iter() *Iterator[K, V] {
	return &Iterator[K, V]{
		list:    l,
		next:    l.store.at(l.header).forward[0],
		version: l.version,
	}
}

// Next advances to the following pair, reporting false at the end of the
// sequence or on invalidation; Err distinguishes the two. Once false,
// every later call is false.
func (it *Iterator[K, V]) Next() bool {
	if it.done {
		return false
	}
	if it.version != it.list.version {
		it.done = true
		it.err = errors.Wrap(ErrConcurrentModification, "Next")
		return false
	}
	if it.next == nilNode {
		it.done = true
		return false
	}
	n := it.list.store.at(it.next)
	it.cur = Entry[K, V]{Key: n.key, Value: n.value}
	it.next = n.forward[0]
	return true
}

// Key reports the key of the pair Next advanced to.
func (it *Iterator[K, V]) Key() K {
	return it.cur.Key
}

// Value reports the value of the pair Next advanced to.
func (it *Iterator[K, V]) Value() V {
	return it.cur.Value
}

// Entry reports the pair Next advanced to.
func (it *Iterator[K, V]) Entry() Entry[K, V] {
	return it.cur
}

// Err reports ErrConcurrentModification when the iteration was cut short
// by a structural mutation, nil otherwise.
func (it *Iterator[K, V]) Err() error {
	return it.err
}
