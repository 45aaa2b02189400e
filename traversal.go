package skipset

// descend walks the layers top-down: on each layer it moves right while
// moveRight holds for the next element, then drops one layer; the last
// layer finishes with the same rightward walk. It returns the rightmost
// base layer node the predicate allows, i.e. the node immediately left of
// the seam where the target would sit (or the node on the seam itself,
// depending on the predicate).
//
// When frontier is non-nil it must have length s.levels; descend records in
// frontier[lvl] the last node visited on layer lvl before dropping, with
// frontier[0] holding the base layer entry. Insert and Delete relink
// through these predecessors.
func (s *SkipSet[T]) descend(moveRight func(T) bool, frontier []*node[T]) *node[T] {
	cur := s.head
	for lvl := s.levels - 1; lvl > 0; lvl-- {
		for cur.next != nil && moveRight(*cur.next.val) {
			cur = cur.next
		}
		if frontier != nil {
			frontier[lvl] = cur
		}
		cur = cur.down
	}
	for cur.next != nil && moveRight(*cur.next.val) {
		cur = cur.next
	}
	if frontier != nil {
		frontier[0] = cur
	}
	return cur
}

// Find returns a cursor on the element equal to v, or the end marker when
// no such element exists.
func (s *SkipSet[T]) Find(v T) Iterator[T] {
	// Descend on "next not greater than v" so the walk lands on the equal
	// node itself when present.
	cur := s.descend(func(x T) bool { return !s.less(v, x) }, nil)
	if cur.val == nil || s.less(*cur.val, v) {
		return Iterator[T]{}
	}
	return Iterator[T]{cur}
}

// SeekGE returns a cursor on the first element not less than v, or the end
// marker when every element orders before v.
func (s *SkipSet[T]) SeekGE(v T) Iterator[T] {
	cur := s.descend(func(x T) bool { return s.less(x, v) }, nil)
	return Iterator[T]{cur.next}
}

// SeekGT returns a cursor on the first element strictly greater than v, or
// the end marker when no element orders after v.
func (s *SkipSet[T]) SeekGT(v T) Iterator[T] {
	cur := s.descend(func(x T) bool { return !s.less(v, x) }, nil)
	return Iterator[T]{cur.next}
}
