package ast

// NodeList is an ordered, owning sequence of sibling nodes, assembled
// incrementally by the grammar. Grammar productions that recognize
// elements right-to-left build the list by repeated PushFront;
// separately built runs are joined with Append. Both are O(1).
//
// A NodeList owns its elements the same way a composite node owns its
// children: once a list is passed to a factory or spliced into
// another list it is consumed and must not be reused.
type NodeList struct {
	head *listEntry
	tail *listEntry
	size int
}

type listEntry struct {
	node Node
	next *listEntry
}

// NewNodeList builds a list owning the given nodes in order.
func NewNodeList(nodes ...Node) *NodeList {
	l := &NodeList{}
	for i := len(nodes) - 1; i >= 0; i-- {
		l.PushFront(nodes[i])
	}
	return l
}

// Len reports the number of elements. It always equals the number of
// nodes reachable through Each.
func (l *NodeList) Len() int {
	if l == nil {
		return 0
	}
	return l.size
}

// PushFront inserts n at the head of the list, taking ownership of it.
func (l *NodeList) PushFront(n Node) {
	e := &listEntry{node: n, next: l.head}
	l.head = e
	if l.tail == nil {
		l.tail = e
	}
	l.size++
}

// Append splices src onto the tail of l. This is a consuming move:
// src's elements are transferred, not copied, and src is left empty so
// it cannot alias the target's entries or hand them out twice.
// A nil or empty src leaves l unchanged.
func (l *NodeList) Append(src *NodeList) {
	if src == nil || src.head == nil {
		return
	}
	if l.tail == nil {
		l.head = src.head
		l.tail = src.tail
		l.size = src.size
	} else {
		l.tail.next = src.head
		l.tail = src.tail
		l.size += src.size
	}
	src.head = nil
	src.tail = nil
	src.size = 0
}

// Each calls fn for every element front-to-back, stopping early when
// fn returns false.
func (l *NodeList) Each(fn func(Node) bool) {
	if l == nil {
		return
	}
	for e := l.head; e != nil; e = e.next {
		if !fn(e.node) {
			return
		}
	}
}

// Nodes returns the elements front-to-back in a fresh slice. The
// slice is a non-owning view for traversal.
func (l *NodeList) Nodes() []Node {
	if l == nil || l.size == 0 {
		return nil
	}
	out := make([]Node, 0, l.size)
	for e := l.head; e != nil; e = e.next {
		out = append(out, e.node)
	}
	return out
}
