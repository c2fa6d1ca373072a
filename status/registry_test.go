package status

import (
	"sync"
	"testing"
)

func TestMetricMapGetCaches(t *testing.T) {
	r := NewRegistry()

	a := r.Ints.Get("animators.active")
	b := r.Ints.Get("animators.active")
	if a != b {
		t.Error("repeated Get returned different pointers")
	}

	a.Add(3)
	if b.Load() != 3 {
		t.Errorf("value = %d, want 3", b.Load())
	}
	if r.TotalCount() != 1 {
		t.Errorf("total count = %d, want 1", r.TotalCount())
	}
}

func TestMetricMapRangeSorted(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()
	m.Get("step.duration").Set(1.5)
	m.Get("animator.speed").Set(2.0)

	var keys []string
	m.Range(func(key string, _ *AtomicFloat) {
		keys = append(keys, key)
	})
	if len(keys) != 2 || keys[0] != "animator.speed" || keys[1] != "step.duration" {
		t.Errorf("range order = %v", keys)
	}
}

func TestMetricMapConcurrentGet(t *testing.T) {
	m := NewMetricMap[AtomicFloat]()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.Get("shared").Add(1)
		}()
	}
	wg.Wait()

	if got := m.Get("shared").Get(); got != 16 {
		t.Errorf("value = %v, want 16", got)
	}
	if m.Count() != 1 {
		t.Errorf("count = %d, want 1", m.Count())
	}
}

func TestAtomicFloat(t *testing.T) {
	var f AtomicFloat
	if f.Get() != 0 {
		t.Errorf("zero value = %v", f.Get())
	}
	f.Set(2.5)
	if got := f.Add(0.5); got != 3.0 {
		t.Errorf("add result = %v, want 3.0", got)
	}
	if f.Get() != 3.0 {
		t.Errorf("value = %v, want 3.0", f.Get())
	}
}
