package skipset

// Iterator is a forward-only cursor over the set's elements in ascending
// order. The zero value is the end marker. Iterators are comparable with
// ==: two cursors are equal exactly when they reference the same element,
// or both denote the end.
//
// A cursor observes the set without owning it. Deleting the referenced
// element, clearing the set, or replacing its contents with CopyFrom
// invalidates the cursor; an invalidated cursor must not be dereferenced.
type Iterator[T any] struct {
	cur *node[T]
}

// Begin returns a cursor on the smallest element, or the end marker when
// the set is empty.
func (s *SkipSet[T]) Begin() Iterator[T] {
	return Iterator[T]{s.baseSentinel().next}
}

// End returns the end marker.
func (s *SkipSet[T]) End() Iterator[T] {
	return Iterator[T]{}
}

// Valid reports whether the cursor references an element.
func (it Iterator[T]) Valid() bool {
	return it.cur != nil
}

// Value returns the referenced element. Calling Value on the end marker
// panics.
func (it Iterator[T]) Value() T {
	return *it.cur.val
}

// Next advances the cursor to the next element and reports whether one
// exists. Advancing the end marker is a no-op reporting false.
func (it *Iterator[T]) Next() bool {
	if it.cur == nil {
		return false
	}
	it.cur = it.cur.next
	return it.cur != nil
}
