package collections

import (
	"fmt"

	"github.com/Invicton-Labs/go-collections/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// A MapItem is a single key/value pair stored in a HashMap.
type MapItem[K comparable, V any] struct {
	Key   K
	Value V
}

// HashMap is a key/value map with a fixed number of buckets that resolves
// hash collisions by separate chaining: every pair that hashes to the same
// index is stored in that bucket, in insertion order. The bucket count is
// set at construction and never changes, so the load factor is unbounded
// and operations on a bucket degrade from O(1) toward O(n) as it fills.
//
// The bucket for a key is derived from the key's canonical string form
// (fmt.Sprint), folding each code point with
//
//	hash = (hash*31 + codePoint) mod capacity
//
// starting from zero. The reduction happens at every step, so the fold
// produces the bucket index directly. Enumerations walk bucket 0 fully,
// then bucket 1, and so on, which makes their order a deterministic
// function of the capacity and the insertion order, not of either alone.
type HashMap[K comparable, V any] interface {
	// Put stores a value under the given key. If the key is already
	// present, its value is replaced in place without moving the key
	// within its bucket or changing the length.
	Put(key K, value V)
	// Get returns the value stored under the given key.
	Get(key K) (V, stackerr.Error)
	// Remove deletes the key and its value from the map.
	Remove(key K) stackerr.Error
	// Contains returns whether the key is present in the map.
	Contains(key K) bool
	// Keys returns all keys, enumerated bucket-by-bucket in bucket index
	// order and in insertion order within each bucket.
	Keys() []K
	// Values returns all values, in the same order as Keys.
	Values() []V
	// Items returns all key/value pairs, in the same order as Keys.
	Items() []MapItem[K, V]
	// Length returns the number of distinct keys in the map.
	// The complexity is O(1).
	Length() int
	// Capacity returns the fixed number of buckets.
	Capacity() int
}

type hashMap[K comparable, V any] struct {
	capacity int
	size     int
	buckets  [][]MapItem[K, V]
}

// NewHashMap creates a map with a fixed number of buckets. It panics if
// the capacity is not positive.
func NewHashMap[K comparable, V any](capacity int) HashMap[K, V] {
	if capacity < 1 {
		panic("capacity must be positive")
	}
	return &hashMap[K, V]{
		capacity: capacity,
		buckets:  make([][]MapItem[K, V], capacity),
	}
}

// bucketIndex folds the code points of the key's string form into a
// bucket index, reducing modulo the bucket count at every step.
func (hm *hashMap[K, V]) bucketIndex(key K) int {
	hash := 0
	for _, r := range fmt.Sprint(key) {
		hash = (hash*31 + int(r)) % hm.capacity
	}
	return hash
}

func (hm *hashMap[K, V]) Put(key K, value V) {
	idx := hm.bucketIndex(key)
	bucket := hm.buckets[idx]
	for i := range bucket {
		if bucket[i].Key == key {
			bucket[i].Value = value
			return
		}
	}
	hm.buckets[idx] = append(bucket, MapItem[K, V]{Key: key, Value: value})
	hm.size++
}

func (hm *hashMap[K, V]) Get(key K) (V, stackerr.Error) {
	bucket := hm.buckets[hm.bucketIndex(key)]
	for i := range bucket {
		if bucket[i].Key == key {
			return bucket[i].Value, nil
		}
	}
	return zero.ZeroValue[V](), stackerr.Wrap(fmt.Errorf("key `%v` is not in the map: %w", key, ErrKeyNotFound))
}

func (hm *hashMap[K, V]) Remove(key K) stackerr.Error {
	idx := hm.bucketIndex(key)
	bucket := hm.buckets[idx]
	for i := range bucket {
		if bucket[i].Key == key {
			hm.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
			hm.size--
			return nil
		}
	}
	return stackerr.Wrap(fmt.Errorf("key `%v` is not in the map: %w", key, ErrKeyNotFound))
}

func (hm *hashMap[K, V]) Contains(key K) bool {
	bucket := hm.buckets[hm.bucketIndex(key)]
	for i := range bucket {
		if bucket[i].Key == key {
			return true
		}
	}
	return false
}

func (hm *hashMap[K, V]) Keys() []K {
	keys := make([]K, 0, hm.size)
	for _, bucket := range hm.buckets {
		for i := range bucket {
			keys = append(keys, bucket[i].Key)
		}
	}
	return keys
}

func (hm *hashMap[K, V]) Values() []V {
	values := make([]V, 0, hm.size)
	for _, bucket := range hm.buckets {
		for i := range bucket {
			values = append(values, bucket[i].Value)
		}
	}
	return values
}

func (hm *hashMap[K, V]) Items() []MapItem[K, V] {
	items := make([]MapItem[K, V], 0, hm.size)
	for _, bucket := range hm.buckets {
		items = append(items, bucket...)
	}
	return items
}

func (hm *hashMap[K, V]) Length() int {
	return hm.size
}

func (hm *hashMap[K, V]) Capacity() int {
	return hm.capacity
}
