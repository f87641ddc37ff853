package cowvec

import "iter"

// Iterator is a read-only forward iterator. Each call to Iter produces a
// fresh one, so read passes are restartable and independent.
type Iterator[T any] struct {
	vec  *CowVec[T]
	next int
}

// Iter returns a read-only iterator over the current elements, in order.
// It works in both states and never triggers the copy.
func (v *CowVec[T]) Iter() *Iterator[T] {
	return &Iterator[T]{vec: v}
}

// Next advances the iterator and reports whether an element is available.
func (it *Iterator[T]) Next() bool {
	if it.next >= len(it.vec.elems) {
		return false
	}
	it.next++
	return true
}

// Value returns the element Next advanced to.
func (it *Iterator[T]) Value() T {
	return it.vec.elems[it.next-1]
}

// All returns the current elements as a range-over-func sequence. Like Iter
// it is read-only and never triggers the copy.
func (v *CowVec[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range v.elems {
			if !yield(v.elems[i]) {
				return
			}
		}
	}
}

// MutIterator is a single-pass iterator yielding write-capable handles.
// Advancing it never copies; only writing through a handle does.
type MutIterator[T any] struct {
	vec *CowVec[T]
	idx int
}

// IterMut returns a mutable iterator over the elements, in order. The
// wrapper stays borrowed until the caller actually writes through one of the
// yielded handles; at that point the whole underlying slice is copied once
// and the iteration continues seamlessly over the copy. A pass that only
// reads, or is abandoned before any write, leaves the state untouched.
func (v *CowVec[T]) IterMut() *MutIterator[T] {
	return &MutIterator[T]{vec: v, idx: -1}
}

// Next advances to the next element and reports whether one is available.
func (it *MutIterator[T]) Next() bool {
	if it.idx+1 >= len(it.vec.elems) {
		return false
	}
	it.idx++
	return true
}

// Elem returns a handle to the element Next advanced to.
func (it *MutIterator[T]) Elem() Elem[T] {
	return Elem[T]{vec: it.vec, idx: it.idx}
}

// Skip advances past the next n elements without yielding them.
func (it *MutIterator[T]) Skip(n int) {
	it.idx += n
}

// Remaining returns the number of elements not yet yielded.
func (it *MutIterator[T]) Remaining() int {
	if r := len(it.vec.elems) - it.idx - 1; r > 0 {
		return r
	}
	return 0
}

// Elem is a write-capable handle to a single element. Handles resolve the
// element through the wrapper on every access, so a handle taken before the
// copy stays valid after it.
type Elem[T any] struct {
	vec *CowVec[T]
	idx int
}

// Get reads the element. It never triggers the copy.
func (e Elem[T]) Get() T {
	return e.vec.elems[e.idx]
}

// Set writes the element. If the wrapper is still borrowed this is the copy
// trigger: the original slice is duplicated in full, the wrapper becomes
// owned, and the write lands on the copy. The borrowed slice is never
// modified.
func (e Elem[T]) Set(val T) {
	e.vec.EnsureOwned()
	e.vec.elems[e.idx] = val
}

// Ptr returns a pointer to the element, taking ownership first. Like the
// copy trigger in Set, this assumes the caller is going to write; take Ptr
// only when a write will actually happen, otherwise the copy is wasted.
func (e Elem[T]) Ptr() *T {
	e.vec.EnsureOwned()
	return &e.vec.elems[e.idx]
}
