package weakref

import (
	"runtime"
	stdsync "sync"
	"testing"
	"time"
)

type key struct {
	name string
	pad  [32]byte
}

func TestMap(t *testing.T) {
	m := NewMap[key, int]()
	a, b := &key{name: "a"}, &key{name: "b"}

	m.Set(a, 1)
	m.Set(b, 2)
	m.Set(a, 3)
	m.Set(nil, 4)

	if got := m.Len(); got != 2 {
		t.Errorf("TestMap: Len() == %d, want 2", got)
	}
	if v, ok := m.Get(a); !ok || v != 3 {
		t.Errorf("TestMap: Get(a) == (%d, %v), want (3, true)", v, ok)
	}
	if m.Has(&key{name: "a"}) {
		t.Errorf("TestMap: keys must compare by identity, an equal key was found")
	}
	if _, ok := m.Get(nil); ok {
		t.Errorf("TestMap: Get(nil) found an entry")
	}
	if !m.Delete(b) {
		t.Errorf("TestMap: Delete(b) == false, want true")
	}
	if m.Delete(b) {
		t.Errorf("TestMap: second Delete(b) == true, want false")
	}
	if m.Has(b) {
		t.Errorf("TestMap: Has(b) after Delete")
	}
	runtime.KeepAlive(a)
}

func TestSet(t *testing.T) {
	s := NewSet[key]()
	a := &key{name: "a"}

	s.Add(a)
	s.Add(a)
	if got := s.Len(); got != 1 {
		t.Errorf("TestSet: Len() == %d, want 1", got)
	}
	if !s.Has(a) {
		t.Errorf("TestSet: Has(a) == false")
	}
	if !s.Delete(a) || s.Has(a) {
		t.Errorf("TestSet: Delete(a) did not remove a")
	}
	runtime.KeepAlive(a)
}

func TestConcurrent(t *testing.T) {
	m := NewMap[key, int]()
	keys := make([]*key, 8)
	for i := range keys {
		keys[i] = &key{name: string(rune('a' + i))}
	}

	var wg stdsync.WaitGroup
	for i, k := range keys {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.Set(k, i)
				m.Get(k)
				m.Len()
			}
		}()
	}
	wg.Wait()

	if got := m.Len(); got != len(keys) {
		t.Errorf("TestConcurrent: got Len() == %d, want %d", got, len(keys))
	}
	for i, k := range keys {
		if v, ok := m.Get(k); !ok || v != i {
			t.Errorf("TestConcurrent(%s): got (%d, %v), want (%d, true)", k.name, v, ok, i)
		}
	}
	runtime.KeepAlive(keys)
}

func TestCollected(t *testing.T) {
	m := NewMap[key, string]()
	s := NewSet[key]()
	func() {
		k := &key{name: "gone"}
		m.Set(k, "v")
		s.Add(k)
	}()

	deadline := time.Now().Add(5 * time.Second)
	for m.Len() != 0 || s.Len() != 0 {
		if time.Now().After(deadline) {
			t.Fatalf("TestCollected: entries still present after the key became unreachable: map %d, set %d", m.Len(), s.Len())
		}
		runtime.GC()
		time.Sleep(10 * time.Millisecond)
	}
}

func TestRealType(t *testing.T) {
	if got := NewMap[int, int]().RealType(); got != "WeakMap" {
		t.Errorf("TestRealType(Map): got %q", got)
	}
	if got := NewSet[int]().RealType(); got != "WeakSet" {
		t.Errorf("TestRealType(Set): got %q", got)
	}
}
