package vector

// Reallocations returns the number of buffers v has allocated since it was
// constructed or last released. Moves carry the count with the buffer.
func (v *Vector[T]) Reallocations() int {
	return v.reallocs
}

// Utilization returns the ratio of live elements to capacity (0.0 to 1.0).
func (v *Vector[T]) Utilization() float64 {
	if v.capacity == 0 {
		return 0
	}
	return float64(v.size) / float64(v.capacity)
}

// Metrics returns a snapshot of vector statistics.
func (v *Vector[T]) Metrics() VectorMetrics {
	return VectorMetrics{
		Size:          v.size,
		Capacity:      v.capacity,
		Reallocations: v.reallocs,
		Utilization:   v.Utilization(),
	}
}

// VectorMetrics contains statistical information about a vector.
type VectorMetrics struct {
	Size          int     // Live elements
	Capacity      int     // Allocated slots
	Reallocations int     // Buffers allocated
	Utilization   float64 // Ratio of live elements to capacity (0.0-1.0)
}
