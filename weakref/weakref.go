// Package weakref provides collections that hold their keys weakly. An entry
// lives only as long as its key is reachable from somewhere else, once the
// garbage collector frees the key the entry is dropped.
//
// Keys are pointers and are compared by identity. Nil keys are never stored.
//
// Both types report their real type through RealType, so realtype.Classify
// returns "weakmap" and "weakset" for them.
package weakref

import (
	"runtime"
	"weak"

	"github.com/gostdlib/base/concurrency/sync"
)

// Map is a map keyed by weak pointers. It is safe for concurrent use.
type Map[K, V any] struct {
	mu sync.Mutex
	m  map[weak.Pointer[K]]V
}

// NewMap creates a new Map.
func NewMap[K, V any]() *Map[K, V] {
	return &Map[K, V]{m: map[weak.Pointer[K]]V{}}
}

// RealType implements realtype.Tagger.
func (*Map[K, V]) RealType() string {
	return "WeakMap"
}

// Set stores val for key. A nil key is ignored.
func (m *Map[K, V]) Set(key *K, val V) {
	if key == nil {
		return
	}
	wp := weak.Make(key)

	m.mu.Lock()
	_, ok := m.m[wp]
	m.m[wp] = val
	m.mu.Unlock()

	if !ok {
		runtime.AddCleanup(key, m.remove, wp)
	}
}

// Get returns the value stored for key.
func (m *Map[K, V]) Get(key *K) (V, bool) {
	var zero V
	if key == nil {
		return zero, false
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	v, ok := m.m[weak.Make(key)]
	return v, ok
}

// Has reports if key has an entry.
func (m *Map[K, V]) Has(key *K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes the entry for key and reports if there was one.
func (m *Map[K, V]) Delete(key *K) bool {
	if key == nil {
		return false
	}
	wp := weak.Make(key)

	m.mu.Lock()
	defer m.mu.Unlock()

	_, ok := m.m[wp]
	delete(m.m, wp)
	return ok
}

// Len returns the number of entries whose keys have not been collected yet.
func (m *Map[K, V]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.m)
}

func (m *Map[K, V]) remove(wp weak.Pointer[K]) {
	m.mu.Lock()
	delete(m.m, wp)
	m.mu.Unlock()
}

// Set is a set of weakly held pointers. It is safe for concurrent use.
type Set[K any] struct {
	m *Map[K, struct{}]
}

// NewSet creates a new Set.
func NewSet[K any]() *Set[K] {
	return &Set[K]{m: NewMap[K, struct{}]()}
}

// RealType implements realtype.Tagger.
func (*Set[K]) RealType() string {
	return "WeakSet"
}

// Add puts key in the set. A nil key is ignored.
func (s *Set[K]) Add(key *K) {
	s.m.Set(key, struct{}{})
}

// Has reports if key is in the set.
func (s *Set[K]) Has(key *K) bool {
	return s.m.Has(key)
}

// Delete removes key and reports if it was in the set.
func (s *Set[K]) Delete(key *K) bool {
	return s.m.Delete(key)
}

// Len returns the number of keys that have not been collected yet.
func (s *Set[K]) Len() int {
	return s.m.Len()
}
