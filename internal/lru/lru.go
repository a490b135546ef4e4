// Package lru provides the intrusive recency list behind the mesh
// cache. The owning cache maps keys to nodes and asks the list which
// key to evict; keeping the list next to the map makes eviction O(1)
// with no allocation beyond the node itself.
package lru

// Node is an element of a List. It carries its key so an evicting
// cache can delete the matching map entry without a search.
type Node[K comparable] struct {
	key        K
	prev, next *Node[K]
}

// List is a doubly-linked recency list: the head is the most recently
// used entry, the tail the least. It is not safe for concurrent use;
// the owning cache serializes access.
type List[K comparable] struct {
	head *Node[K]
	tail *Node[K]
	len  int
}

// New returns an empty recency list.
func New[K comparable]() *List[K] {
	return &List[K]{}
}

// Len returns the number of nodes in the list.
func (l *List[K]) Len() int {
	return l.len
}

// PushFront inserts a new node for key at the head and returns it.
func (l *List[K]) PushFront(key K) *Node[K] {
	n := &Node[K]{key: key}
	l.pushNode(n)
	return n
}

// MoveToFront marks an existing node as most recently used.
func (l *List[K]) MoveToFront(n *Node[K]) {
	if n == nil || n == l.head {
		return
	}
	l.unlink(n)
	l.pushNode(n)
}

// Remove unlinks the node from the list.
func (l *List[K]) Remove(n *Node[K]) {
	if n == nil {
		return
	}
	l.unlink(n)
}

// RemoveOldest unlinks the least recently used node and returns its
// key. ok is false when the list is empty.
func (l *List[K]) RemoveOldest() (key K, ok bool) {
	if l.tail == nil {
		return key, false
	}
	n := l.tail
	l.unlink(n)
	return n.key, true
}

// Oldest returns the least recently used key without unlinking it.
func (l *List[K]) Oldest() (key K, ok bool) {
	if l.tail == nil {
		return key, false
	}
	return l.tail.key, true
}

// Clear drops every node.
func (l *List[K]) Clear() {
	l.head = nil
	l.tail = nil
	l.len = 0
}

func (l *List[K]) pushNode(n *Node[K]) {
	n.prev = nil
	n.next = l.head
	if l.head != nil {
		l.head.prev = n
	}
	l.head = n
	if l.tail == nil {
		l.tail = n
	}
	l.len++
}

func (l *List[K]) unlink(n *Node[K]) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		l.head = n.next
	}
	if n.next != nil {
		n.next.prev = n.prev
	} else {
		l.tail = n.prev
	}
	n.prev = nil
	n.next = nil
	l.len--
}
