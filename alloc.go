package vector

import (
	"math/bits"
)

// maxCapacity is the largest power of two representable as an int.
const maxCapacity = 1 << (bits.UintSize - 2)

// CalculateCapacity returns the smallest power of two >= n. Zero and negative
// counts map to 1, the capacity of an empty vector.
// Panics if the result does not fit in an int.
func CalculateCapacity(n int) int {
	return calculateCapacity(n)
}

func calculateCapacity(n int) int {
	if n <= 1 {
		return 1
	}
	if n > maxCapacity {
		panic("vector: capacity overflow")
	}
	return 1 << bits.Len(uint(n-1))
}

// Reserve grows the buffer so it can hold at least newCap elements without
// further reallocation. The new capacity is rounded up to a power of two.
// Reserve never shrinks: a request at or below the current capacity is a no-op.
func (v *Vector[T]) Reserve(newCap int) {
	if newCap <= v.capacity {
		return
	}
	v.relocate(calculateCapacity(newCap), v.size)
}

// ensure makes room for n live elements, growing by the capacity policy.
// It also materializes a deferred buffer.
func (v *Vector[T]) ensure(n int) {
	if n > v.capacity {
		v.relocate(calculateCapacity(n), v.size)
		return
	}
	if v.data == nil {
		v.relocate(v.capacity, 0)
	}
}

// relocate allocates a buffer of newCap slots, moves the first keep live
// elements into it and adopts it. The old buffer is dropped for the GC.
// The allocation happens before any field is touched, so a failed make
// leaves the vector as it was.
func (v *Vector[T]) relocate(newCap, keep int) {
	buf := make([]T, newCap)
	copy(buf, v.data[:keep])
	oldCap := v.capacity
	v.data = buf
	v.capacity = newCap
	v.reallocs++
	v.logRealloc(oldCap)
}

// allocBuffer returns a buffer sized by the capacity policy for n elements.
func allocBuffer[T any](n int) []T {
	return make([]T, calculateCapacity(n))
}
