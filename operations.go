package skipset

// Insert adds v to the set and returns a cursor on the inserted element.
// When an equal element is already present nothing is mutated and the
// cursor references the existing element.
func (s *SkipSet[T]) Insert(v T) Iterator[T] {
	frontier := make([]*node[T], s.levels)
	cur := s.descend(func(x T) bool { return !s.less(v, x) }, frontier)
	if cur.val != nil && !s.less(*cur.val, v) {
		return Iterator[T]{cur}
	}

	val := &v
	n := &node[T]{val: val, next: cur.next}
	cur.next = n
	s.length++

	below := n
	for lvl := 1; s.coin.flip() && lvl < MaxLevel; lvl++ {
		up := &node[T]{val: val, down: below}
		if lvl < s.levels {
			up.next = frontier[lvl].next
			frontier[lvl].next = up
		} else {
			s.head = newSentinel(s.head)
			s.head.next = up
			frontier = append(frontier, s.head)
			s.levels++
		}
		below = up
	}
	return Iterator[T]{n}
}

// Delete removes the element equal to v and returns a cursor on the element
// now occupying its former position, or the end marker. When no equal
// element exists nothing is mutated and the cursor references the first
// element greater than v (or the end marker).
func (s *SkipSet[T]) Delete(v T) Iterator[T] {
	frontier := make([]*node[T], s.levels)
	cur := s.descend(func(x T) bool { return s.less(x, v) }, frontier)
	target := cur.next
	if target == nil || s.less(v, *target.val) {
		return Iterator[T]{target}
	}

	// Unlink the target's tower bottom-up. Tower membership is value
	// storage identity: every node of a tower aliases the same *T.
	val := target.val
	for _, ref := range frontier {
		if ref.next == nil || ref.next.val != val {
			break
		}
		ref.next = ref.next.next
	}
	s.length--

	// Trim successor-less top layers so the chain height tracks content
	// rather than the historical maximum. Emptied layers below a still
	// populated one are kept.
	for s.head.next == nil && s.levels > 1 {
		s.head = s.head.down
		s.levels--
	}
	return Iterator[T]{frontier[0].next}
}

// DeleteAt removes the element the cursor references, returning a cursor on
// its former successor. A cursor at the end marker, or one whose element
// was already removed from the set, is a no-op returning the end marker.
func (s *SkipSet[T]) DeleteAt(it Iterator[T]) Iterator[T] {
	if !it.Valid() || !s.Contains(*it.cur.val) {
		return Iterator[T]{}
	}
	return s.Delete(*it.cur.val)
}
