// Package cowvec provides a lazy copy-on-write wrapper around a slice.
//
// A CowVec is constructed from a slice it borrows but does not own. It can
// then be iterated mutably as if it were a private copy, but the actual
// duplication is deferred until the first write through a yielded element,
// and skipped entirely if no element is ever written.
package cowvec

// CowVec wraps a borrowed []T and copies it on the first write.
//
// It has exactly two states: borrowed, where elems aliases the caller's
// backing array and is never written through, and owned, where elems is a
// private copy. The transition happens at most once per instance and never
// reverts. Length and element order are preserved across the transition.
type CowVec[T any] struct {
	elems []T
	owned bool
}

// From wraps s without copying it. The wrapper starts in borrowed state.
//
// The caller must not mutate s while the wrapper is borrowed; the contract
// is single-owner, single-thread. Elements are duplicated by value when the
// copy triggers, so callers needing deep-copy semantics should store value
// types rather than shared pointers.
func From[T any](s []T) *CowVec[T] {
	return &CowVec[T]{elems: s}
}

// FromOwned wraps s, immediately treating it as owned. No copy ever happens;
// writes apply to s directly. The caller hands over s and must not use it
// afterwards.
func FromOwned[T any](s []T) *CowVec[T] {
	return &CowVec[T]{elems: s, owned: true}
}

// Len returns the number of elements. It is the same in both states.
func (v *CowVec[T]) Len() int {
	return len(v.elems)
}

// At returns the element at index i.
func (v *CowVec[T]) At(i int) T {
	return v.elems[i]
}

// IsOwned reports whether the contents have been copied. It can be used to
// detect whether any write has happened since construction with From.
func (v *CowVec[T]) IsOwned() bool {
	return v.owned
}

// EnsureOwned eagerly takes ownership, copying the borrowed slice if the
// copy has not been triggered yet. Idempotent.
func (v *CowVec[T]) EnsureOwned() {
	if v.owned {
		return
	}
	dup := make([]T, len(v.elems))
	copy(dup, v.elems)
	v.elems = dup
	v.owned = true
}

// ToOwned consumes the wrapper and returns its contents as an independent
// slice: the private copy itself if owned, or a fresh copy of the borrowed
// slice otherwise. The wrapper must not be used after ToOwned.
func (v *CowVec[T]) ToOwned() []T {
	if v.owned {
		return v.elems
	}
	dup := make([]T, len(v.elems))
	copy(dup, v.elems)
	return dup
}

// ForEachMut calls fn for every element in order, passing a write-capable
// handle. It is the internal-iteration counterpart of IterMut, with the same
// copy trigger: the first fn that writes flips the wrapper to owned and the
// remaining calls see the copy.
func (v *CowVec[T]) ForEachMut(fn func(Elem[T])) {
	for i := range v.elems {
		fn(Elem[T]{vec: v, idx: i})
	}
}
