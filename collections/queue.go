package collections

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-collections/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// queueNode is a single node of a Queue, linked from front to rear.
type queueNode[T any] struct {
	value T
	next  *queueNode[T]
}

// Queue is a first-in-first-out sequence over a singly linked chain of
// nodes. The front and rear are both nil exactly when the queue is empty,
// and the rear node never has a successor.
type Queue[T any] interface {
	// Enqueue adds a value at the rear of the queue.
	// The complexity is O(1).
	Enqueue(value T)
	// Dequeue removes and returns the value at the front of the queue, or
	// ErrEmptyContainer (wrapped) if the queue is empty.
	// The complexity is O(1).
	Dequeue() (T, stackerr.Error)
	// Peek returns the value at the front of the queue without removing
	// it, or ErrEmptyContainer (wrapped) if the queue is empty.
	Peek() (T, stackerr.Error)
	// IsEmpty returns whether the queue holds no values.
	IsEmpty() bool
	// Length returns the number of values in the queue.
	// The complexity is O(1).
	Length() int

	fmt.Stringer
}

type queue[T any] struct {
	front *queueNode[T]
	rear  *queueNode[T]
	size  int
}

// NewQueue returns an empty queue.
func NewQueue[T any]() Queue[T] {
	return &queue[T]{}
}

func (q *queue[T]) Enqueue(value T) {
	node := &queueNode[T]{value: value}
	if q.rear == nil {
		q.front = node
		q.rear = node
	} else {
		q.rear.next = node
		q.rear = node
	}
	q.size++
}

func (q *queue[T]) Dequeue() (T, stackerr.Error) {
	if q.front == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(fmt.Errorf("cannot dequeue: %w", ErrEmptyContainer))
	}
	value := q.front.value
	q.front = q.front.next
	if q.front == nil {
		q.rear = nil
	}
	q.size--
	return value, nil
}

func (q *queue[T]) Peek() (T, stackerr.Error) {
	if q.front == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(fmt.Errorf("cannot peek: %w", ErrEmptyContainer))
	}
	return q.front.value, nil
}

func (q *queue[T]) IsEmpty() bool {
	return q.front == nil
}

func (q *queue[T]) Length() int {
	return q.size
}

// String renders the queue from front to rear as "Queue: v1 -> v2 -> v3".
func (q *queue[T]) String() string {
	values := make([]string, 0, q.size)
	for node := q.front; node != nil; node = node.next {
		values = append(values, fmt.Sprint(node.value))
	}
	return "Queue: " + strings.Join(values, " -> ")
}
