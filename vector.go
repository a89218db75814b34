// Package vector implements a generic dynamic array with a power-of-two
// growth policy and explicit ownership transfer.
package vector

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
)

// Vector is a growable, randomly indexable sequence of T backed by a buffer
// it owns exclusively. Not goroutine-safe: a single Vector must not be
// mutated from more than one goroutine without external synchronization.
//
// The zero value is not usable; construct with New or one of the other
// constructors.
type Vector[T any] struct {
	data     []T // nil until first write, otherwise len(data) == capacity
	size     int
	capacity int
	reallocs int
	logger   *zap.Logger
}

// New returns an empty vector with capacity 1. The buffer is allocated on
// the first write.
func New[T any]() *Vector[T] {
	return &Vector[T]{capacity: 1, logger: zap.NewNop()}
}

// NewRepeat returns a vector holding n copies of value.
// Panics if n < 0.
func NewRepeat[T any](n int, value T) *Vector[T] {
	v := NewSized[T](n)
	for i := 0; i < n; i++ {
		v.data[i] = value
	}
	return v
}

// NewSized returns a vector holding n zero values.
// Panics if n < 0.
func NewSized[T any](n int) *Vector[T] {
	if n < 0 {
		panic("vector: negative size")
	}
	v := New[T]()
	v.data = allocBuffer[T](n)
	v.capacity = len(v.data)
	v.size = n
	v.reallocs = 1
	return v
}

// Of returns a vector holding a copy of values, in order.
func Of[T any](values ...T) *Vector[T] {
	return FromSlice(values)
}

// FromSlice returns a vector holding a copy of src.
func FromSlice[T any](src []T) *Vector[T] {
	v := NewSized[T](len(src))
	copy(v.data, src)
	return v
}

// FromRange returns a vector holding a copy of src[start:end].
// It fails with ErrOutOfRange unless 0 <= start <= end <= len(src).
func FromRange[T any](src []T, start, end int) (*Vector[T], error) {
	if start < 0 || end < start || end > len(src) {
		return nil, fmt.Errorf("%w: range [%d, %d) over %d elements", ErrOutOfRange, start, end, len(src))
	}
	return FromSlice(src[start:end]), nil
}

// Clone returns a deep copy of v. The copy has the same capacity and its own
// buffer.
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{capacity: v.capacity, logger: v.logger}
	c.copyLive(v)
	return c
}

// CopyFrom replaces the contents of v with a deep copy of other.
// Copying a vector onto itself is a no-op.
func (v *Vector[T]) CopyFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.capacity = other.capacity
	v.copyLive(other)
}

func (v *Vector[T]) copyLive(src *Vector[T]) {
	if src.data == nil {
		v.data = nil
		v.size = 0
		return
	}
	buf := make([]T, src.capacity)
	copy(buf, src.data[:src.size])
	v.data = buf
	v.size = src.size
	v.reallocs++
}

// Move transfers ownership of v's buffer to a new vector and returns it.
// v is left empty with capacity 1 and stays usable.
func (v *Vector[T]) Move() *Vector[T] {
	dst := &Vector[T]{
		data:     v.data,
		size:     v.size,
		capacity: v.capacity,
		reallocs: v.reallocs,
		logger:   v.logger,
	}
	v.reset()
	return dst
}

// MoveFrom drops v's buffer and takes ownership of other's. other is left
// empty with capacity 1. Moving a vector onto itself is a no-op.
func (v *Vector[T]) MoveFrom(other *Vector[T]) {
	if v == other {
		return
	}
	v.data = other.data
	v.size = other.size
	v.capacity = other.capacity
	v.reallocs = other.reallocs
	other.reset()
}

// Swap exchanges the contents of v and other.
func (v *Vector[T]) Swap(other *Vector[T]) {
	v.data, other.data = other.data, v.data
	v.size, other.size = other.size, v.size
	v.capacity, other.capacity = other.capacity, v.capacity
	v.reallocs, other.reallocs = other.reallocs, v.reallocs
}

// Release drops the buffer and returns v to the empty state, ready for
// reuse. Releasing a moved-from or already released vector is a no-op.
func (v *Vector[T]) Release() {
	v.reset()
}

func (v *Vector[T]) reset() {
	v.data = nil
	v.size = 0
	v.capacity = 1
	v.reallocs = 0
}

// Size returns the number of live elements.
func (v *Vector[T]) Size() int { return v.size }

// Capacity returns the number of allocated slots.
func (v *Vector[T]) Capacity() int { return v.capacity }

// Empty reports whether v has no live elements.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Get returns the element at index i.
// The index is not validated; i outside [0, Size()) panics.
func (v *Vector[T]) Get(i int) T {
	return v.data[:v.size][i]
}

// Set stores value at index i.
// The index is not validated; i outside [0, Size()) panics.
func (v *Vector[T]) Set(i int, value T) {
	v.data[:v.size][i] = value
}

// Ref returns a pointer to the element at index i. The pointer is valid
// until the next operation that reallocates the buffer.
// The index is not validated; i outside [0, Size()) panics.
func (v *Vector[T]) Ref(i int) *T {
	return &v.data[:v.size][i]
}

// At returns the element at index i, or ErrOutOfRange.
func (v *Vector[T]) At(i int) (T, error) {
	if err := v.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return v.data[i], nil
}

// RefAt returns a pointer to the element at index i, or ErrOutOfRange.
func (v *Vector[T]) RefAt(i int) (*T, error) {
	if err := v.checkIndex(i); err != nil {
		return nil, err
	}
	return &v.data[i], nil
}

// SetAt stores value at index i, or returns ErrOutOfRange.
func (v *Vector[T]) SetAt(i int, value T) error {
	if err := v.checkIndex(i); err != nil {
		return err
	}
	v.data[i] = value
	return nil
}

func (v *Vector[T]) checkIndex(i int) error {
	if i < 0 || i >= v.size {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfRange, i, v.size)
	}
	return nil
}

// Values returns a copy of the live elements.
func (v *Vector[T]) Values() []T {
	out := make([]T, v.size)
	copy(out, v.data[:v.size])
	return out
}

// String formats the live elements as [e0 e1 ...].
func (v *Vector[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i := 0; i < v.size; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprint(&sb, v.data[i])
	}
	sb.WriteByte(']')
	return sb.String()
}
