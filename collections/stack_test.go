package collections

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStackLIFOOrder(t *testing.T) {
	s := NewStack[string]()
	s.Push("a")
	s.Push("b")

	v, err := s.Pop()
	require.Nil(t, err)
	require.Equal(t, "b", v)

	// The earlier value is back on top
	v, err = s.Peek()
	require.Nil(t, err)
	require.Equal(t, "a", v)
	require.Equal(t, 1, s.Length())
}

func TestStackPeekDoesNotRemove(t *testing.T) {
	s := NewStack[int]()
	s.Push(1)

	for i := 0; i < 3; i++ {
		v, err := s.Peek()
		require.Nil(t, err)
		require.Equal(t, 1, v)
	}
	require.Equal(t, 1, s.Length())
}

func TestStackEmptyBehavior(t *testing.T) {
	s := NewStack[int]()
	require.True(t, s.IsEmpty())
	require.Equal(t, 0, s.Length())

	_, err := s.Pop()
	require.NotNil(t, err)
	require.True(t, errors.Is(err, ErrEmptyContainer))

	_, err = s.Peek()
	require.True(t, errors.Is(err, ErrEmptyContainer))

	s.Push(1)
	require.False(t, s.IsEmpty())
	_, err = s.Pop()
	require.Nil(t, err)
	require.True(t, s.IsEmpty())
	_, err = s.Pop()
	require.True(t, errors.Is(err, ErrEmptyContainer))
}

func TestStackLengthTracksMutations(t *testing.T) {
	s := NewStack[int]()
	for i := 1; i <= 5; i++ {
		s.Push(i)
		require.Equal(t, i, s.Length())
	}
	for i := 4; i >= 0; i-- {
		_, err := s.Pop()
		require.Nil(t, err)
		require.Equal(t, i, s.Length())
	}
}

func TestStackString(t *testing.T) {
	s := NewStack[int]()
	require.Equal(t, "Stack: ", s.String())

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, "Stack: 3 -> 2 -> 1", s.String())

	_, err := s.Pop()
	require.Nil(t, err)
	require.Equal(t, "Stack: 2 -> 1", s.String())
}
