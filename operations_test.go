package skipset

import (
	"math/rand"
	"slices"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertIteratesSortedDistinct(t *testing.T) {
	values := []int{5, 1, 9, 3, 7, 2, 8, 4, 6, 0}
	s := New[int]()
	for _, v := range values {
		s.Insert(v)
	}
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, collect(s))
	checkInvariants(t, s)
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	s := New[int]()
	for v := 0; v <= 10; v++ {
		s.Insert(v)
	}
	for v := 0; v <= 10; v++ {
		it := s.Insert(v)
		assert.Equal(t, s.Find(v), it, "duplicate insert must return the existing element")
	}
	assert.Equal(t, 11, s.Len())
	checkInvariants(t, s)
}

func TestInsertReturnsCursorOnElement(t *testing.T) {
	s := New[int]()
	it := s.Insert(42)
	require.True(t, it.Valid())
	assert.Equal(t, 42, it.Value())
	assert.Equal(t, s.Find(42), it)
}

func TestDeleteReturnsSuccessor(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3})

	it := s.Delete(2)
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Value())
	assert.Equal(t, []int{1, 3}, collect(s))

	it = s.Delete(3)
	assert.Equal(t, s.End(), it, "deleting the largest element yields the end marker")
	checkInvariants(t, s)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	s := NewFromSorted([]int{10, 20, 30})

	it := s.Delete(15)
	require.True(t, it.Valid())
	assert.Equal(t, 20, it.Value(), "deleting an absent value returns the next element in order")
	assert.Equal(t, 3, s.Len())

	it = s.Delete(35)
	assert.Equal(t, s.End(), it)
	assert.Equal(t, 3, s.Len())
	checkInvariants(t, s)
}

func TestDeleteAt(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3})

	it := s.DeleteAt(s.Find(2))
	require.True(t, it.Valid())
	assert.Equal(t, 3, it.Value())
	assert.Equal(t, []int{1, 3}, collect(s))

	assert.Equal(t, s.End(), s.DeleteAt(s.End()), "deleting at the end marker is a no-op")
	assert.Equal(t, 2, s.Len())
}

func TestDeleteAtStaleCursor(t *testing.T) {
	s := NewFromSorted([]int{1, 2, 3})
	stale := s.Find(2)
	s.Delete(2)

	it := s.DeleteAt(stale)
	assert.Equal(t, s.End(), it, "a cursor on a removed element is a no-op returning end")
	assert.Equal(t, 2, s.Len())
	checkInvariants(t, s)
}

func TestFindReflectsInsertsAndDeletes(t *testing.T) {
	s := New[int]()
	assert.Equal(t, s.End(), s.Find(1))

	s.Insert(1)
	require.True(t, s.Find(1).Valid())
	assert.Equal(t, 1, s.Find(1).Value())

	s.Delete(1)
	assert.Equal(t, s.End(), s.Find(1))
}

func TestBounds(t *testing.T) {
	s := New[int]()
	for _, v := range []int{2, 4, 6} {
		s.Insert(v)
	}

	assert.Equal(t, 2, s.SeekGE(1).Value())
	assert.Equal(t, 4, s.SeekGE(3).Value())
	assert.Equal(t, 6, s.SeekGT(4).Value())
	assert.Equal(t, s.End(), s.SeekGT(6))
	assert.Equal(t, s.End(), s.SeekGE(7))

	for _, v := range []int{2, 4, 6} {
		assert.Equal(t, s.Find(v), s.SeekGE(v), "SeekGE of a present value equals Find")
		next := s.Find(v)
		next.Next()
		assert.Equal(t, next, s.SeekGT(v), "SeekGT of a present value is its successor")
	}
}

func TestBoundsEmptySet(t *testing.T) {
	s := New[int]()
	assert.Equal(t, s.End(), s.SeekGE(0))
	assert.Equal(t, s.End(), s.SeekGT(0))
	assert.Equal(t, s.End(), s.Find(0))
}

// TestRandomizedAgainstOracle drives a seeded operation mix against a plain
// map oracle and verifies contents and structural invariants along the way.
func TestRandomizedAgainstOracle(t *testing.T) {
	const (
		ops      = 20_000
		keyRange = 512
	)
	r := rand.New(rand.NewSource(1))
	s := New[int](WithSeed(2))
	oracle := make(map[int]struct{})

	sortedOracle := func() []int {
		keys := make([]int, 0, len(oracle))
		for k := range oracle {
			keys = append(keys, k)
		}
		sort.Ints(keys)
		return keys
	}

	for i := 0; i < ops; i++ {
		key := r.Intn(keyRange)
		switch r.Intn(100) {
		case 0: // occasionally wipe everything
			s.Clear()
			oracle = make(map[int]struct{})
		default:
			if r.Intn(2) == 0 {
				s.Insert(key)
				oracle[key] = struct{}{}
			} else {
				s.Delete(key)
				delete(oracle, key)
			}
		}

		_, want := oracle[key]
		require.Equal(t, want, s.Contains(key))

		if i%1000 == 999 {
			keys := sortedOracle()
			require.Equal(t, len(keys), s.Len())
			if len(keys) == 0 {
				require.Equal(t, s.End(), s.Begin())
			} else {
				require.Equal(t, keys, collect(s))
			}
			checkInvariants(t, s)
		}
	}

	keys := sortedOracle()
	got := collect(s)
	if len(keys) == 0 {
		assert.Empty(t, got)
	} else {
		assert.Equal(t, keys, got)
	}
	assert.True(t, slices.IsSorted(got))
	checkInvariants(t, s)
}
