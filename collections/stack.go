package collections

import (
	"fmt"
	"strings"

	"github.com/Invicton-Labs/go-collections/zero"
	"github.com/Invicton-Labs/go-stackerr"
)

// stackNode is a single node of a Stack, linked from top to bottom.
type stackNode[T any] struct {
	value T
	next  *stackNode[T]
}

// Stack is a last-in-first-out sequence over a singly linked chain of
// nodes. The top is nil exactly when the stack is empty.
type Stack[T any] interface {
	// Push adds a value at the top of the stack.
	// The complexity is O(1).
	Push(value T)
	// Pop removes and returns the value at the top of the stack, or
	// ErrEmptyContainer (wrapped) if the stack is empty.
	// The complexity is O(1).
	Pop() (T, stackerr.Error)
	// Peek returns the value at the top of the stack without removing it,
	// or ErrEmptyContainer (wrapped) if the stack is empty.
	Peek() (T, stackerr.Error)
	// IsEmpty returns whether the stack holds no values.
	IsEmpty() bool
	// Length returns the number of values in the stack.
	// The complexity is O(1).
	Length() int

	fmt.Stringer
}

type stack[T any] struct {
	top  *stackNode[T]
	size int
}

// NewStack returns an empty stack.
func NewStack[T any]() Stack[T] {
	return &stack[T]{}
}

func (s *stack[T]) Push(value T) {
	s.top = &stackNode[T]{value: value, next: s.top}
	s.size++
}

func (s *stack[T]) Pop() (T, stackerr.Error) {
	if s.top == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(fmt.Errorf("cannot pop: %w", ErrEmptyContainer))
	}
	value := s.top.value
	s.top = s.top.next
	s.size--
	return value, nil
}

func (s *stack[T]) Peek() (T, stackerr.Error) {
	if s.top == nil {
		return zero.ZeroValue[T](), stackerr.Wrap(fmt.Errorf("cannot peek: %w", ErrEmptyContainer))
	}
	return s.top.value, nil
}

func (s *stack[T]) IsEmpty() bool {
	return s.top == nil
}

func (s *stack[T]) Length() int {
	return s.size
}

// String renders the stack from top to bottom as "Stack: v1 -> v2 -> v3".
func (s *stack[T]) String() string {
	values := make([]string, 0, s.size)
	for node := s.top; node != nil; node = node.next {
		values = append(values, fmt.Sprint(node.value))
	}
	return "Stack: " + strings.Join(values, " -> ")
}
