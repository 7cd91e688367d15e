package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashMapPutGet(t *testing.T) {
	hm := NewHashMap[string, int](10)
	hm.Put("apple", 1)
	hm.Put("banana", 2)

	v, err := hm.Get("apple")
	require.Nil(t, err)
	require.Equal(t, 1, v)

	v, err = hm.Get("banana")
	require.Nil(t, err)
	require.Equal(t, 2, v)

	require.Equal(t, 2, hm.Length())
	require.Equal(t, 10, hm.Capacity())
}

func TestHashMapReplaceInPlace(t *testing.T) {
	// A single bucket forces every key into the same chain, so the
	// enumeration order is exactly the insertion order.
	hm := NewHashMap[string, string](1)
	hm.Put("a", "1")
	hm.Put("b", "2")
	hm.Put("c", "3")
	require.Equal(t, 3, hm.Length())

	// Replacing the middle key must not move it or change the length
	hm.Put("b", "two")
	require.Equal(t, 3, hm.Length())
	require.Equal(t, []string{"a", "b", "c"}, hm.Keys())
	require.Equal(t, []string{"1", "two", "3"}, hm.Values())
}

func TestHashMapRemove(t *testing.T) {
	hm := NewHashMap[string, int](1)
	hm.Put("a", 1)
	hm.Put("b", 2)
	hm.Put("c", 3)

	require.Nil(t, hm.Remove("b"))
	require.Equal(t, 2, hm.Length())
	require.False(t, hm.Contains("b"))
	require.Equal(t, []string{"a", "c"}, hm.Keys())

	err := hm.Remove("b")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrKeyNotFound))
}

func TestHashMapMissingKey(t *testing.T) {
	hm := NewHashMap[string, int](10)
	hm.Put("apple", 1)

	_, err := hm.Get("pear")
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrKeyNotFound))

	require.True(t, errors.Is(hm.Remove("pear"), ErrKeyNotFound))
}

func TestHashMapContainsTracksMutations(t *testing.T) {
	hm := NewHashMap[string, int](4)
	require.Equal(t, 0, hm.Length())
	require.False(t, hm.Contains("x"))

	hm.Put("x", 1)
	require.True(t, hm.Contains("x"))
	require.Equal(t, 1, hm.Length())

	// A replacement is not a new key
	hm.Put("x", 2)
	require.Equal(t, 1, hm.Length())

	hm.Put("y", 3)
	require.Equal(t, 2, hm.Length())

	require.Nil(t, hm.Remove("x"))
	require.False(t, hm.Contains("x"))
	require.True(t, hm.Contains("y"))
	require.Equal(t, 1, hm.Length())
}

func TestHashMapBucketIndex(t *testing.T) {
	// Spot-check the Horner fold against hand-computed values for
	// capacity 10: the reduction happens at every step of the fold.
	hm := NewHashMap[string, int](10).(*hashMap[string, int])
	require.Equal(t, 0, hm.bucketIndex("apple"))
	require.Equal(t, 9, hm.bucketIndex("banana"))
	require.Equal(t, 6, hm.bucketIndex("orange"))
	require.Equal(t, 9, hm.bucketIndex("strawberry"))

	// Non-string keys fold over their canonical string form, so an int
	// key hashes the same as its decimal rendering.
	ihm := NewHashMap[int, int](10).(*hashMap[int, int])
	require.Equal(t, hm.bucketIndex("42"), ihm.bucketIndex(42))
}

func TestHashMapBucketEnumerationOrder(t *testing.T) {
	// With capacity 10, the fruit keys land in buckets 0 (apple),
	// 6 (orange) and 9 (banana then strawberry, in insertion order), so
	// enumerations must produce exactly this sequence regardless of the
	// overall insertion order.
	hm := NewHashMap[string, int](10)
	hm.Put("apple", 1)
	hm.Put("banana", 2)
	hm.Put("orange", 3)
	hm.Put("strawberry", 4)

	require.Equal(t, []string{"apple", "orange", "banana", "strawberry"}, hm.Keys())
	require.Equal(t, []int{1, 3, 2, 4}, hm.Values())
	require.Equal(t, []MapItem[string, int]{
		{Key: "apple", Value: 1},
		{Key: "orange", Value: 3},
		{Key: "banana", Value: 2},
		{Key: "strawberry", Value: 4},
	}, hm.Items())
}

func TestHashMapIntKeys(t *testing.T) {
	hm := NewHashMap[int, string](8)
	hm.Put(42, "answer")
	hm.Put(7, "seven")

	v, err := hm.Get(42)
	require.Nil(t, err)
	require.Equal(t, "answer", v)
	require.True(t, hm.Contains(7))
	require.False(t, hm.Contains(8))
}

func TestHashMapInvalidCapacity(t *testing.T) {
	require.Panics(t, func() { NewHashMap[string, int](0) })
	require.Panics(t, func() { NewHashMap[string, int](-3) })
}
