// Package vector implements a generic dynamic array for Go.
//
// # Overview
//
// A Vector[T] is an ordered, randomly indexable sequence of T stored in a
// contiguous buffer that the vector owns exclusively. Capacity always is a
// power of two: whenever the buffer must grow, the new capacity is the
// smallest power of two that holds the requested number of elements.
//
// # Basic Usage
//
//	v := vector.Of(1, 2, 3, 4)
//	v.Clean()                     // size 0, capacity kept
//	v.InsertMany(0, 1, 2, 3)      // [1 2 3]
//	v.Erase(0)                    // [2 3]
//	v.PushBack(11)                // [2 3 11]
//	v.Resize(2)                   // [2 3], capacity 2
//
//	x, err := v.At(5)             // errors.Is(err, vector.ErrOutOfRange)
//	y := v.Get(1)                 // unchecked, panics when out of range
//
// # Construction
//
//   - New: empty, capacity 1, buffer allocated on first write
//   - NewRepeat, NewSized: n copies of a value or n zero values
//   - Of, FromSlice, FromRange: copies of a literal list or slice
//   - Clone, CopyFrom: deep copies with their own buffer
//   - Move, MoveFrom: ownership transfer, the source is left empty
//
// # Ownership
//
// No method returns a slice that aliases the internal buffer; Values copies.
// Pointers from Ref and RefAt are valid only until the next operation that
// reallocates. After Move, MoveFrom or Release the source owns no buffer,
// reports size 0 and capacity 1, and can be reused.
//
// # Capacity Policy
//
//   - Growth (PushBack, Insert, InsertMany, Resize up): CalculateCapacity(newSize)
//   - Reserve: rounds the request up to a power of two, never shrinks
//   - Resize down: always reallocates to CalculateCapacity(newSize)
//   - Erase, PopBack, Clean: never touch capacity
//
// # Errors
//
// Position arguments are validated by At, RefAt, SetAt, Insert, InsertMany,
// Erase, Resize and FromRange, which return an error wrapping ErrOutOfRange.
// PopBack on an empty vector returns ErrUnderflow. Get, Set and Ref skip
// validation and rely on the runtime bounds check of the live elements.
// A failing operation leaves the vector unchanged.
//
// # Thread Safety
//
// Vector is not goroutine-safe. A single vector must not be mutated from
// more than one goroutine at a time without external synchronization.
//
// # Metrics and Logging
//
//	m := v.Metrics()
//	fmt.Printf("Utilization: %.2f%%\n", m.Utilization*100)
//
//	v.WithLogger(zapLogger) // reallocations are logged at debug level
package vector
