// Package skipset provides an ordered set of unique elements backed by a
// skip list: a base sorted singly-linked layer accelerated by progressively
// sparser express-lane layers. Membership in a higher layer is decided by
// independent biased coin flips, giving expected O(log n) search, insertion
// and deletion.
//
// A SkipSet is not safe for concurrent use; callers needing shared access
// must provide their own synchronization.
package skipset

import (
	"cmp"
)

// Less reports whether a orders strictly before b. Element equality is
// derived from it: a and b are equal when neither orders before the other.
type Less[T any] func(a, b T) bool

// SkipSet is an ordered set of unique elements. The zero value is not
// usable; construct instances with New, NewFunc, NewFromSorted or
// NewFromSortedFunc.
type SkipSet[T any] struct {
	less   Less[T]
	head   *node[T] // topmost layer sentinel
	levels int
	length int
	coin   coin
}

// New returns an empty set ordered by cmp.Less.
func New[T cmp.Ordered](opts ...Option) *SkipSet[T] {
	return NewFunc[T](cmp.Less[T], opts...)
}

// NewFunc returns an empty set ordered by less, which must define a strict
// weak order over T.
func NewFunc[T any](less Less[T], opts ...Option) *SkipSet[T] {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SkipSet[T]{
		less:   less,
		head:   newSentinel[T](nil),
		levels: 1,
		coin:   newCoin(cfg),
	}
}

// NewFromSorted builds a set from values, which MUST be strictly increasing
// under cmp.Less with no duplicates. The precondition is not validated:
// violating it silently produces a set whose layering invariants do not
// hold. It skips the per-element search of Insert, so construction is
// linear in len(values).
func NewFromSorted[T cmp.Ordered](values []T, opts ...Option) *SkipSet[T] {
	return NewFromSortedFunc[T](cmp.Less[T], values, opts...)
}

// NewFromSortedFunc is NewFromSorted with a caller-supplied ordering. The
// values MUST be strictly increasing under less with no duplicates; see
// NewFromSorted.
func NewFromSortedFunc[T any](less Less[T], values []T, opts ...Option) *SkipSet[T] {
	s := NewFunc(less, opts...)
	tail := s.newTailFrontier()
	for _, v := range values {
		tail.append(v)
	}
	return s
}

// Clone returns an independent deep copy holding the same elements. The
// physical layering is rebuilt from fresh coin flips, so the copy's tower
// heights generally differ from the receiver's.
func (s *SkipSet[T]) Clone() *SkipSet[T] {
	c := &SkipSet[T]{
		less:   s.less,
		head:   newSentinel[T](nil),
		levels: 1,
		coin:   newCoin(Config{skipFactor: s.coin.factor}),
	}
	tail := c.newTailFrontier()
	for n := s.baseSentinel().next; n != nil; n = n.next {
		tail.append(*n.val)
	}
	return c
}

// CopyFrom replaces the receiver's contents with an independent copy of
// other's elements, invalidating all outstanding iterators. Copying a set
// into itself is a no-op.
func (s *SkipSet[T]) CopyFrom(other *SkipSet[T]) {
	if s == other {
		return
	}
	s.head = newSentinel[T](nil)
	s.levels = 1
	s.length = 0
	tail := s.newTailFrontier()
	for n := other.baseSentinel().next; n != nil; n = n.next {
		tail.append(*n.val)
	}
}

// Len returns the number of elements in the set.
func (s *SkipSet[T]) Len() int {
	return s.length
}

// Empty reports whether the set holds no elements.
func (s *SkipSet[T]) Empty() bool {
	return s.length == 0
}

// Levels returns the current number of layers, including the base layer.
func (s *SkipSet[T]) Levels() int {
	return s.levels
}

// Contains reports whether an element equal to v is present.
func (s *SkipSet[T]) Contains(v T) bool {
	return s.Find(v).Valid()
}

// Count returns the number of elements equal to v. Elements are unique, so
// the result is 0 or 1.
func (s *SkipSet[T]) Count(v T) int {
	if s.Contains(v) {
		return 1
	}
	return 0
}

// Clear removes every element, invalidating all outstanding iterators. The
// head chain keeps its current height; only erasure trims layers.
func (s *SkipSet[T]) Clear() {
	for cur := s.head; cur != nil; cur = cur.down {
		cur.next = nil
	}
	s.length = 0
}

// baseSentinel returns the base layer's sentinel.
func (s *SkipSet[T]) baseSentinel() *node[T] {
	cur := s.head
	for cur.down != nil {
		cur = cur.down
	}
	return cur
}

// tailFrontier tracks the rightmost node of every layer while an ascending
// run of elements is appended, growing fresh random towers without the
// search or duplicate check of Insert. Valid only on an empty single-layer
// set fed strictly increasing values.
type tailFrontier[T any] struct {
	s    *SkipSet[T]
	refs []*node[T] // refs[0] is the base layer tail
}

func (s *SkipSet[T]) newTailFrontier() *tailFrontier[T] {
	return &tailFrontier[T]{s: s, refs: []*node[T]{s.baseSentinel()}}
}

func (tf *tailFrontier[T]) append(v T) {
	s := tf.s
	n := &node[T]{val: &v}
	tf.refs[0].next = n
	tf.refs[0] = n

	below := n
	for lvl := 1; lvl < MaxLevel && s.coin.flip(); lvl++ {
		if lvl >= s.levels {
			s.head = newSentinel(s.head)
			tf.refs = append(tf.refs, s.head)
			s.levels++
		}
		up := &node[T]{val: n.val, down: below}
		tf.refs[lvl].next = up
		tf.refs[lvl] = up
		below = up
	}
	s.length++
}
