// Package set provides a sorted set of keys backed by the sklist ordered
// map — the thin wrapper higher-level containers are expected to build on
// top of the map's public contract.
package set

import (
	"cmp"

	"sklist"
)

type Ordered[K cmp.Ordered] struct {
	list *sklist.SkipList[K, struct{}]
}

func New[K cmp.Ordered](opts ...sklist.Option[K, struct{}]) *Ordered[K] {
	return &Ordered[K]{list: sklist.New[K, struct{}](opts...)}
}

// NewFromConfig builds the backing list from a level-generation config.
func NewFromConfig[K cmp.Ordered](cfg sklist.Config) (*Ordered[K], error) {
	list, err := sklist.NewFromConfig[K, struct{}](cfg)
	if err != nil {
		return nil, err
	}
	return &Ordered[K]{list: list}, nil
}

// Add inserts the key; adding a present key is a no-op.
func (s *Ordered[K]) Add(key K) error {
	return s.list.Set(key, struct{}{})
}

func (s *Ordered[K]) Contains(key K) bool {
	return s.list.ContainsKey(key)
}

func (s *Ordered[K]) Remove(key K) bool {
	return s.list.Remove(key)
}

func (s *Ordered[K]) Len() int {
	return s.list.Count()
}

func (s *Ordered[K]) Min() (K, error) {
	e, err := s.list.Min()
	return e.Key, err
}

func (s *Ordered[K]) Max() (K, error) {
	e, err := s.list.Max()
	return e.Key, err
}

// Keys snapshots the set in ascending order.
func (s *Ordered[K]) Keys() ([]K, error) {
	keys := make([]K, 0, s.list.Count())
	it := s.list.Iter()
	for it.Next() {
		keys = append(keys, it.Key())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return keys, nil
}
