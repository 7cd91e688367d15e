package collections

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-collections/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// listNode is a single node of a DoublyLinkedList. Nodes are created and
// owned by the list and are never shared between lists or exposed to
// callers; once unlinked, a node is unreachable and eligible for
// reclamation.
type listNode[T comparable] struct {
	value T
	next  *listNode[T]
	prev  *listNode[T]
}

// DoublyLinkedList is an ordered sequence with O(1) insertion at both
// ends and bidirectional links between neighbors. For every internal
// node, node.next.prev == node and node.prev.next == node; the head and
// tail are both nil exactly when the list is empty.
type DoublyLinkedList[T comparable] interface {
	// Append adds a value at the tail of the list.
	// The complexity is O(1).
	Append(value T)
	// Prepend adds a value at the head of the list.
	// The complexity is O(1).
	Prepend(value T)
	// Insert places a value at the given position. Index 0 behaves as
	// Prepend; any other index walks index-1 nodes forward from the head
	// and inserts after the walked node, updating the tail when inserting
	// at the end. It returns ErrIndexOutOfBounds (wrapped) if the walk
	// runs past the end of the list.
	Insert(value T, index int) stackerr.Error
	// Delete removes the first node, scanning from the head, whose value
	// equals the given value. Deleting a value that is not present is a
	// no-op, not an error, unlike the index-based operations.
	Delete(value T)
	// Pop removes the node that follows the node reached by walking
	// index-1 nodes forward from the head. The head itself is therefore
	// never removed. It returns ErrIndexOutOfBounds (wrapped) on an empty
	// list or when the walk runs past the end.
	Pop(index int) stackerr.Error
	// Get returns the value at the given 0-based position, or
	// ErrIndexOutOfBounds (wrapped) if the position is past the end.
	Get(index int) (T, stackerr.Error)
	// Contains returns whether any node holds the given value.
	// The complexity is O(n).
	Contains(value T) bool
	// Length returns the number of nodes in the list. The length is not
	// cached; the complexity is O(n).
	Length() int

	fmt.Stringer
}

type doublyLinkedList[T comparable] struct {
	head *listNode[T]
	tail *listNode[T]
}

// NewDoublyLinkedList returns an empty list.
func NewDoublyLinkedList[T comparable]() DoublyLinkedList[T] {
	return &doublyLinkedList[T]{}
}

func (l *doublyLinkedList[T]) Append(value T) {
	node := &listNode[T]{value: value}
	if l.head == nil {
		l.head = node
		l.tail = node
		return
	}
	node.prev = l.tail
	l.tail.next = node
	l.tail = node
}

func (l *doublyLinkedList[T]) Prepend(value T) {
	node := &listNode[T]{value: value, next: l.head}
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}
	l.head = node
}

func (l *doublyLinkedList[T]) Insert(value T, index int) stackerr.Error {
	if index == 0 {
		l.Prepend(value)
		return nil
	}
	at := l.head
	for i := 0; i < index-1; i++ {
		if at == nil || at.next == nil {
			return stackerr.Wrap(fmt.Errorf("cannot insert at index %d: %w", index, ErrIndexOutOfBounds))
		}
		at = at.next
	}
	if at == nil {
		return stackerr.Wrap(fmt.Errorf("cannot insert at index %d: %w", index, ErrIndexOutOfBounds))
	}
	node := &listNode[T]{value: value, next: at.next, prev: at}
	if at.next != nil {
		at.next.prev = node
	} else {
		l.tail = node
	}
	at.next = node
	return nil
}

func (l *doublyLinkedList[T]) Delete(value T) {
	node := l.head
	if node == nil {
		return
	}
	if node.value == value {
		l.head = node.next
		if l.head != nil {
			l.head.prev = nil
		} else {
			l.tail = nil
		}
		node.next = nil // avoid memory leaks
		return
	}
	for node.next != nil {
		if node.next.value == value {
			removed := node.next
			node.next = removed.next
			if removed.next != nil {
				removed.next.prev = node
			} else {
				l.tail = node
			}
			removed.next = nil // avoid memory leaks
			removed.prev = nil
			return
		}
		node = node.next
	}
}

func (l *doublyLinkedList[T]) Pop(index int) stackerr.Error {
	if l.head == nil {
		return stackerr.Wrap(fmt.Errorf("cannot pop index %d from an empty list: %w", index, ErrIndexOutOfBounds))
	}
	at := l.head
	for i := 0; i < index-1; i++ {
		if at.next == nil {
			return stackerr.Wrap(fmt.Errorf("cannot pop index %d: %w", index, ErrIndexOutOfBounds))
		}
		at = at.next
	}
	if at.next == nil {
		return stackerr.Wrap(fmt.Errorf("cannot pop index %d: %w", index, ErrIndexOutOfBounds))
	}
	removed := at.next
	at.next = removed.next
	if removed.next != nil {
		removed.next.prev = at
	} else {
		l.tail = at
	}
	removed.next = nil // avoid memory leaks
	removed.prev = nil
	return nil
}

func (l *doublyLinkedList[T]) Get(index int) (T, stackerr.Error) {
	if l.head == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(fmt.Errorf("cannot get index %d from an empty list: %w", index, ErrIndexOutOfBounds))
	}
	node := l.head
	for i := 0; i < index; i++ {
		if node.next == nil {
			return zero.ZeroValue[T](), stackerr.Wrap(fmt.Errorf("cannot get index %d: %w", index, ErrIndexOutOfBounds))
		}
		node = node.next
	}
	return node.value, nil
}

func (l *doublyLinkedList[T]) Contains(value T) bool {
	for node := l.head; node != nil; node = node.next {
		if node.value == value {
			return true
		}
	}
	return false
}

func (l *doublyLinkedList[T]) Length() int {
	count := 0
	for node := l.head; node != nil; node = node.next {
		count++
	}
	return count
}

// String renders the list from head to tail as "← v1 ↔ v2 ↔ v3 →", or
// "←" for an empty list.
func (l *doublyLinkedList[T]) String() string {
	if l.head == nil {
		return "←"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "← %v", l.head.value)
	for node := l.head.next; node != nil; node = node.next {
		fmt.Fprintf(&sb, " ↔ %v", node.value)
	}
	sb.WriteString(" →")
	return sb.String()
}
