// Package sklist implements a probabilistic skip-list ordered map: a
// sorted key/value container with expected-logarithmic search, insert and
// delete, built on randomized multi-level links instead of tree
// rebalancing.
//
// Nodes live in an indexed arena owned by the list; only key/value pairs
// cross the API boundary, never node identities. The list is not safe for
// concurrent use — callers sharing one across goroutines must synchronize
// externally.
package sklist

import (
	"cmp"
	"reflect"

	"github.com/pkg/errors"
)

// Comparator orders keys: negative when a sorts before b, zero when
// equal, positive when after.
type Comparator[K any] func(a, b K) int

// SkipList is a sorted key→value map with unique keys. The zero value is
// not usable; construct through New, NewWithComparator or NewFromConfig.
type SkipList[K any, V any] struct {
	store   *arena[K, V]
	header  nodeID
	level   int // highest level currently in use
	count   int
	version uint64 // structural mutation counter, guards iterators
	compare Comparator[K]
	gen     LevelGenerator
	splice  SplicePolicy[K, V]
}

// Option tweaks list construction.
type Option[K any, V any] func(*SkipList[K, V])

// WithLevelGenerator replaces the default seeded geometric generator.
func WithLevelGenerator[K any, V any](gen LevelGenerator) Option[K, V] {
	return func(l *SkipList[K, V]) {
		if gen != nil {
			l.gen = gen
		}
	}
}

// WithSplicePolicy installs a custom link-editing policy, invoked for
// every single-level splice and unsplice.
func WithSplicePolicy[K any, V any](policy SplicePolicy[K, V]) Option[K, V] {
	return func(l *SkipList[K, V]) {
		if policy != nil {
			l.splice = policy
		}
	}
}

// New creates a list for key types ordered by cmp.Compare.
func New[K cmp.Ordered, V any](opts ...Option[K, V]) *SkipList[K, V] {
	return NewWithComparator[K, V](cmp.Compare[K], opts...)
}

// NewWithComparator creates a list over an arbitrary key type with an
// injected comparator. The comparator must not be nil.
func NewWithComparator[K any, V any](compare Comparator[K], opts ...Option[K, V]) *SkipList[K, V] {
	if compare == nil {
		panic("sklist: comparator must not be nil")
	}
	l := &SkipList[K, V]{
		compare: compare,
		splice:  defaultSplice[K, V],
	}
	for _, opt := range opts {
		opt(l)
	}
	if l.gen == nil {
		cfg := DefaultConfig()
		l.gen = NewLevelGenerator(cfg.Probability, cfg.levelCap(), cfg.Seed)
	}
	l.store = newArena[K, V]()
	var zeroK K
	var zeroV V
	l.header = l.store.alloc(zeroK, zeroV, l.gen.MaxLevel())
	l.level = 1
	return l
}

// NewFromConfig creates a list whose level generator is built from cfg.
func NewFromConfig[K cmp.Ordered, V any](cfg Config, opts ...Option[K, V]) (*SkipList[K, V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	gen := NewLevelGenerator(cfg.Probability, cfg.levelCap(), cfg.Seed)
	opts = append([]Option[K, V]{WithLevelGenerator[K, V](gen)}, opts...)
	return New[K, V](opts...), nil
}

// NewFromConfigFile creates a list from a yaml config file.
func NewFromConfigFile[K cmp.Ordered, V any](fileName string, opts ...Option[K, V]) (*SkipList[K, V], error) {
	cfg, err := LoadConfig(fileName)
	if err != nil {
		return nil, err
	}
	return NewFromConfig[K, V](cfg, opts...)
}

// findPrev walks top-down from the header and returns the level-0
// predecessor of key. When update is non-nil it records, for every level
// below the current list level, the last node visited before descending —
// the update vector inserts and removals splice against.
func (l *SkipList[K, V]) findPrev(key K, update []nodeID) nodeID {
	cur := l.header
	for lv := l.level - 1; lv >= 0; lv-- {
		for {
			next := l.store.at(cur).forward[lv]
			if next == nilNode || l.compare(l.store.at(next).key, key) >= 0 {
				break
			}
			cur = next
		}
		if update != nil {
			update[lv] = cur
		}
	}
	return cur
}

// Set inserts the pair, or overwrites the value in place when the key is
// already present (count and node levels unchanged). A nil key is a
// contract violation and reports ErrNilKey.
func (l *SkipList[K, V]) Set(key K, value V) error {
	if isNilKey(key) {
		return errors.Wrap(ErrNilKey, "Set")
	}

	update := make([]nodeID, l.gen.MaxLevel())
	for i := range update {
		update[i] = l.header
	}
	prev := l.findPrev(key, update)

	if next := l.store.at(prev).forward[0]; next != nilNode {
		if n := l.store.at(next); l.compare(n.key, key) == 0 {
			n.value = value
			return nil
		}
	}

	lvl := l.gen.NextLevel()
	if lvl > l.level {
		l.level = lvl
		defaultLogger.Debug().Int("level", lvl).Msg("raised list level")
	}
	id := l.store.alloc(key, value, lvl)
	for i := 0; i < lvl; i++ {
		l.splice(SpliceInsert, SplicePoint[K, V]{Level: i, list: l, prev: update[i], node: id})
	}
	l.count++
	l.version++
	return nil
}

// Remove unlinks the key's node and reports whether an entry was removed.
// An absent or nil key reports false; removal never raises.
func (l *SkipList[K, V]) Remove(key K) bool {
	if isNilKey(key) {
		return false
	}

	update := make([]nodeID, l.level)
	prev := l.findPrev(key, update)
	target := l.store.at(prev).forward[0]
	if target == nilNode || l.compare(l.store.at(target).key, key) != 0 {
		return false
	}

	for i := 0; i < l.store.at(target).level(); i++ {
		if l.store.at(update[i]).forward[i] != target {
			continue
		}
		l.splice(SpliceRemove, SplicePoint[K, V]{Level: i, list: l, prev: update[i], node: target})
	}
	for l.level > 1 && l.store.at(l.header).forward[l.level-1] == nilNode {
		l.level--
	}
	l.store.release(target)
	l.count--
	l.version++
	return true
}

// TryGet reports the value stored under key, or false when absent.
func (l *SkipList[K, V]) TryGet(key K) (V, bool) {
	var zero V
	if isNilKey(key) {
		return zero, false
	}
	prev := l.findPrev(key, nil)
	next := l.store.at(prev).forward[0]
	if next == nilNode {
		return zero, false
	}
	if n := l.store.at(next); l.compare(n.key, key) == 0 {
		return n.value, true
	}
	return zero, false
}

// Get is the indexed read: a missing key reports ErrKeyNotFound, a nil
// key ErrNilKey.
func (l *SkipList[K, V]) Get(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, errors.Wrap(ErrNilKey, "Get")
	}
	if v, ok := l.TryGet(key); ok {
		return v, nil
	}
	return zero, errors.Wrapf(ErrKeyNotFound, "Get %v", key)
}

func (l *SkipList[K, V]) ContainsKey(key K) bool {
	_, ok := l.TryGet(key)
	return ok
}

// Count reports the number of entries. O(1), maintained on every insert
// and removal rather than recomputed.
func (l *SkipList[K, V]) Count() int {
	return l.count
}

// Min returns the first pair in ascending order; ErrEmptyList when the
// list holds no entries.
func (l *SkipList[K, V]) Min() (Entry[K, V], error) {
	if l.count == 0 {
		return Entry[K, V]{}, errors.Wrap(ErrEmptyList, "Min")
	}
	n := l.store.at(l.store.at(l.header).forward[0])
	return Entry[K, V]{Key: n.key, Value: n.value}, nil
}

// Max returns the last pair in ascending order; ErrEmptyList when the
// list holds no entries. Found by riding the highest populated levels, so
// expected-logarithmic like search.
func (l *SkipList[K, V]) Max() (Entry[K, V], error) {
	if l.count == 0 {
		return Entry[K, V]{}, errors.Wrap(ErrEmptyList, "Max")
	}
	cur := l.header
	for lv := l.level - 1; lv >= 0; lv-- {
		for l.store.at(cur).forward[lv] != nilNode {
			cur = l.store.at(cur).forward[lv]
		}
	}
	n := l.store.at(cur)
	return Entry[K, V]{Key: n.key, Value: n.value}, nil
}

// CopyTo writes exactly Count entries into dst in ascending key order,
// starting at start, leaving every other slot of dst untouched.
func (l *SkipList[K, V]) CopyTo(dst []Entry[K, V], start int) error {
	if dst == nil {
		return errors.Wrap(ErrNilDestination, "CopyTo")
	}
	if start < 0 {
		return errors.Wrapf(ErrArgumentRange, "CopyTo start index %d", start)
	}
	if len(dst)-start < l.count {
		return errors.Wrapf(ErrShortDestination, "CopyTo needs %d slots from index %d, have %d",
			l.count, start, len(dst)-start)
	}
	i := start
	for id := l.store.at(l.header).forward[0]; id != nilNode; id = l.store.at(id).forward[0] {
		n := l.store.at(id)
		dst[i] = Entry[K, V]{Key: n.key, Value: n.value}
		i++
	}
	return nil
}

// Clear releases every node and resets the list to its freshly
// constructed state. Outstanding iterators are invalidated.
func (l *SkipList[K, V]) Clear() {
	l.store.reset()
	var zeroK K
	var zeroV V
	l.header = l.store.alloc(zeroK, zeroV, l.gen.MaxLevel())
	l.level = 1
	l.count = 0
	l.version++
	defaultLogger.Debug().Msg("cleared list")
}

// isNilKey reports whether a reference-typed key is nil. Value-typed keys
// can never be nil and always pass.
func isNilKey(key any) bool {
	if key == nil {
		return true
	}
	switch v := reflect.ValueOf(key); v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
