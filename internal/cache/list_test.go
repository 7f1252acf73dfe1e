package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecencyListPushFrontAndOrder(t *testing.T) {
	l := newRecencyList[string, int](4)

	a := l.alloc("a", 1)
	l.pushFront(a)
	b := l.alloc("b", 2)
	l.pushFront(b)
	c := l.alloc("c", 3)
	l.pushFront(c)

	require.Equal(t, 3, l.size)
	require.Equal(t, []string{"c", "b", "a"}, l.keysInOrder())
	require.Equal(t, c, l.head)
	require.Equal(t, a, l.tail)
}

func TestRecencyListUnlink(t *testing.T) {
	l := newRecencyList[string, int](4)

	a := l.alloc("a", 1)
	l.pushFront(a)
	b := l.alloc("b", 2)
	l.pushFront(b)
	c := l.alloc("c", 3)
	l.pushFront(c)

	// Middle node.
	l.unlink(b)
	require.Equal(t, []string{"c", "a"}, l.keysInOrder())

	// Head node.
	l.unlink(c)
	require.Equal(t, []string{"a"}, l.keysInOrder())
	require.Equal(t, a, l.head)
	require.Equal(t, a, l.tail)

	// Last node: list becomes empty.
	l.unlink(a)
	require.Equal(t, 0, l.size)
	require.Equal(t, nilIdx, l.head)
	require.Equal(t, nilIdx, l.tail)
}

func TestRecencyListMoveToFront(t *testing.T) {
	l := newRecencyList[string, int](4)

	a := l.alloc("a", 1)
	l.pushFront(a)
	b := l.alloc("b", 2)
	l.pushFront(b)
	c := l.alloc("c", 3)
	l.pushFront(c)

	l.moveToFront(a) // from tail
	require.Equal(t, []string{"a", "c", "b"}, l.keysInOrder())

	l.moveToFront(a) // already at head: no-op
	saved := l.linkWrites
	l.moveToFront(a)
	require.Equal(t, saved, l.linkWrites)

	l.moveToFront(c) // from the middle
	require.Equal(t, []string{"c", "a", "b"}, l.keysInOrder())
	require.Equal(t, 3, l.size)
}

func TestRecencyListSlotReuse(t *testing.T) {
	l := newRecencyList[string, int](2)

	a := l.alloc("a", 1)
	l.pushFront(a)
	b := l.alloc("b", 2)
	l.pushFront(b)
	arenaLen := len(l.nodes)

	l.unlink(a)
	l.release(a)

	// The released slot is zeroed so it doesn't pin the old entry.
	require.Zero(t, l.nodes[a].key)
	require.Zero(t, l.nodes[a].val)

	c := l.alloc("c", 3)
	require.Equal(t, a, c, "expected the freed slot to be reused")
	l.pushFront(c)
	require.Equal(t, arenaLen, len(l.nodes))
	require.Equal(t, []string{"c", "b"}, l.keysInOrder())
}

func TestRecencyListReset(t *testing.T) {
	l := newRecencyList[string, int](2)

	l.pushFront(l.alloc("a", 1))
	l.pushFront(l.alloc("b", 2))
	l.reset()

	require.Equal(t, 0, l.size)
	require.Equal(t, nilIdx, l.head)
	require.Equal(t, nilIdx, l.tail)
	require.Empty(t, l.keysInOrder())
}
