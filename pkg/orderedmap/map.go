// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package orderedmap

type Map[K comparable, V any] struct {
	items []MapItem[K, V]
}

type MapItem[K comparable, V any] struct {
	Key   K
	Value V
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Set overwrites the value of an existing key in place (keeping its
// position) or appends a new key at the end.
func (m *Map[K, V]) Set(key K, value V) {
	for i, item := range m.items {
		if item.Key == key {
			m.items[i].Value = value
			return
		}
	}
	m.items = append(m.items, MapItem[K, V]{key, value})
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	for _, item := range m.items {
		if item.Key == key {
			return item.Value, true
		}
	}
	var zero V
	return zero, false
}

func (m *Map[K, V]) Has(key K) bool {
	_, found := m.Get(key)
	return found
}

func (m *Map[K, V]) Keys() (keys []K) {
	m.Iterate(func(k K, _ V) {
		keys = append(keys, k)
	})
	return
}

func (m *Map[K, V]) Iterate(iterFunc func(k K, v V)) {
	for _, item := range m.items {
		iterFunc(item.Key, item.Value)
	}
}

// Merge sets every item of other onto m, in other's order.
// Keys present in both end up with other's value.
func (m *Map[K, V]) Merge(other *Map[K, V]) {
	other.Iterate(func(k K, v V) { m.Set(k, v) })
}

func (m *Map[K, V]) Len() int { return len(m.items) }
