package vector

import (
	"testing"
)

func TestVectorMetrics(t *testing.T) {
	v := New[int]()

	// Test initial state
	if v.Size() != 0 {
		t.Errorf("Initial Size = %d, want 0", v.Size())
	}
	if v.Capacity() != 1 {
		t.Errorf("Initial Capacity = %d, want 1", v.Capacity())
	}
	if v.Reallocations() != 0 {
		t.Errorf("Initial Reallocations = %d, want 0", v.Reallocations())
	}
	if v.Utilization() != 0 {
		t.Errorf("Initial Utilization = %f, want 0", v.Utilization())
	}

	for i := 0; i < 5; i++ {
		v.PushBack(i)
	}

	// 1 -> 2 -> 4 -> 8
	if v.Reallocations() != 4 {
		t.Errorf("Reallocations after 5 pushes = %d, want 4", v.Reallocations())
	}
	if v.Utilization() != 5.0/8.0 {
		t.Errorf("Utilization = %f, want %f", v.Utilization(), 5.0/8.0)
	}

	metrics := v.Metrics()
	if metrics.Size != v.Size() {
		t.Errorf("Metrics.Size = %d, want %d", metrics.Size, v.Size())
	}
	if metrics.Capacity != v.Capacity() {
		t.Errorf("Metrics.Capacity = %d, want %d", metrics.Capacity, v.Capacity())
	}
	if metrics.Reallocations != v.Reallocations() {
		t.Errorf("Metrics.Reallocations = %d, want %d", metrics.Reallocations, v.Reallocations())
	}
	if metrics.Utilization != v.Utilization() {
		t.Errorf("Metrics.Utilization = %f, want %f", metrics.Utilization, v.Utilization())
	}
}

func TestMetricsFollowBuffer(t *testing.T) {
	v := NewSized[int](3)
	v.Reserve(32)

	moved := v.Move()
	if moved.Reallocations() != 2 {
		t.Errorf("moved Reallocations = %d, want 2", moved.Reallocations())
	}
	if v.Reallocations() != 0 {
		t.Errorf("source Reallocations after Move = %d, want 0", v.Reallocations())
	}

	c := moved.Clone()
	if c.Reallocations() != 1 {
		t.Errorf("clone Reallocations = %d, want 1", c.Reallocations())
	}
	if c.Utilization() != 3.0/32.0 {
		t.Errorf("clone Utilization = %f, want %f", c.Utilization(), 3.0/32.0)
	}
}
