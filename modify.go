package vector

import "fmt"

// Resize changes the number of live elements to n, filling new slots with
// the zero value of T. See ResizeFill.
func (v *Vector[T]) Resize(n int) error {
	var zero T
	return v.ResizeFill(n, zero)
}

// ResizeFill changes the number of live elements to n.
//
// Growing fills [Size(), n) with fill, reallocating only when the capacity
// policy asks for more slots than are allocated. Shrinking always
// reallocates to CalculateCapacity(n) and copies the first n elements, so
// a shrunk vector holds no excess capacity at the price of a copy.
// Fails with ErrOutOfRange if n < 0.
func (v *Vector[T]) ResizeFill(n int, fill T) error {
	if n < 0 {
		return fmt.Errorf("%w: resize to %d", ErrOutOfRange, n)
	}
	switch {
	case n > v.size:
		v.ensure(n)
		for i := v.size; i < n; i++ {
			v.data[i] = fill
		}
		v.size = n
	case n < v.size:
		v.size = n
		v.relocate(calculateCapacity(n), n)
	}
	return nil
}

// Insert places value at index pos, shifting the elements at pos and after
// one slot to the right. pos == Size() appends. Returns pos.
// Fails with ErrOutOfRange unless 0 <= pos <= Size(); v is unchanged then.
func (v *Vector[T]) Insert(pos int, value T) (int, error) {
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	v.ensure(v.size + 1)
	copy(v.data[pos+1:v.size+1], v.data[pos:v.size])
	v.data[pos] = value
	v.size++
	return pos, nil
}

// InsertMany places values starting at index pos, shifting the tail right by
// len(values). The buffer grows at most once per call. Returns pos.
// Fails with ErrOutOfRange unless 0 <= pos <= Size(); v is unchanged then.
func (v *Vector[T]) InsertMany(pos int, values ...T) (int, error) {
	if err := v.checkInsertPos(pos); err != nil {
		return pos, err
	}
	k := len(values)
	if k == 0 {
		return pos, nil
	}
	v.ensure(v.size + k)
	copy(v.data[pos+k:v.size+k], v.data[pos:v.size])
	copy(v.data[pos:pos+k], values)
	v.size += k
	return pos, nil
}

func (v *Vector[T]) checkInsertPos(pos int) error {
	if pos < 0 || pos > v.size {
		return fmt.Errorf("%w: insert position %d, size %d", ErrOutOfRange, pos, v.size)
	}
	return nil
}

// Erase removes the element at index pos, shifting the elements after it one
// slot to the left. Capacity is unchanged. Returns pos.
// Fails with ErrOutOfRange unless 0 <= pos < Size().
func (v *Vector[T]) Erase(pos int) (int, error) {
	if err := v.checkIndex(pos); err != nil {
		return pos, err
	}
	copy(v.data[pos:v.size-1], v.data[pos+1:v.size])
	v.size--
	var zero T
	v.data[v.size] = zero
	return pos, nil
}

// PushBack appends value, growing the buffer when it is full.
func (v *Vector[T]) PushBack(value T) {
	v.ensure(v.size + 1)
	v.data[v.size] = value
	v.size++
}

// PopBack removes and returns the last element.
// Fails with ErrUnderflow if v is empty.
func (v *Vector[T]) PopBack() (T, error) {
	var zero T
	if v.size == 0 {
		return zero, ErrUnderflow
	}
	v.size--
	last := v.data[v.size]
	v.data[v.size] = zero
	return last, nil
}

// Clean removes all elements but keeps the buffer and capacity for reuse.
// Vacated slots are zeroed so the vector does not pin their referents.
func (v *Vector[T]) Clean() {
	clear(v.data[:v.size])
	v.size = 0
}
