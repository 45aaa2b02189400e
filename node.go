package skipset

// MaxLevel is the fixed ceiling on the number of layers any tower may span,
// independent of the randomization outcome.
const MaxLevel = 32

// node is one slot in one layer of the skip list. A nil val marks a layer
// sentinel; the chain of sentinels linked by down is the head chain, one
// sentinel per existing layer, topmost first. Every node of a tower aliases
// the same value storage, so the value is released exactly once when the
// last tower node becomes unreachable.
type node[T any] struct {
	val  *T
	next *node[T]
	down *node[T]
}

func newSentinel[T any](down *node[T]) *node[T] {
	return &node[T]{down: down}
}
