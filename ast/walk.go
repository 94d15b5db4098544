package ast

// Walk traverses the ownership tree rooted at n in depth-first
// pre-order: the node itself, then its owned children, lists
// front-to-back. Since every node has exactly one owner and the tree
// is acyclic by construction, each reachable node is visited exactly
// once. fn returning false prunes descent below that node.
func Walk(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}
	switch n := n.(type) {
	case *SelectStmt:
		walkList(n.selectList, fn)
		walkList(n.tablerefList, fn)
		Walk(n.where, fn)
		Walk(n.group, fn)
		Walk(n.having, fn)
		Walk(n.order, fn)
		walkList(n.windowList, fn)
		if n.limit != nil {
			Walk(n.limit, fn)
		}
	case *ResTarget:
		walkList(n.indirection, fn)
		Walk(n.val, fn)
	case *FuncCall:
		walkList(n.args, fn)
		if n.over != nil {
			Walk(n.over, fn)
		}
	case *WindowDef:
		walkList(n.partitions, fn)
		walkList(n.orders, fn)
		if n.frame != nil {
			Walk(n.frame, fn)
		}
	case *Frame:
		if n.start != nil {
			Walk(n.start, fn)
		}
		if n.end != nil {
			Walk(n.end, fn)
		}
	case *FrameBound:
		Walk(n.offset, fn)
	case *OrderBy:
		Walk(n.expr, fn)
	}
}

func walkList(l *NodeList, fn func(Node) bool) {
	l.Each(func(n Node) bool {
		Walk(n, fn)
		return true
	})
}
