package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// Dump returns the debug rendering of a node: the kind name first,
// each structural field on its own line one tab deeper, absent
// node-valued children as NULL on the label line, lists in []/bracket
// form, absent frame bounds as UNBOUNDED. The output depends only on
// tree structure and is byte-for-byte stable for identical trees, so
// it can be compared against golden files.
func Dump(n Node) string {
	var b strings.Builder
	dumpNode(&b, n, 0)
	return b.String()
}

// DumpList renders a list in the bracket form used for list-valued
// fields. An empty or nil list renders as the single token [].
func DumpList(l *NodeList) string {
	var b strings.Builder
	dumpList(&b, l, 0)
	return b.String()
}

func writeLine(b *strings.Builder, depth int, format string, args ...any) {
	for i := 0; i < depth; i++ {
		b.WriteByte('\t')
	}
	fmt.Fprintf(b, format, args...)
	b.WriteByte('\n')
}

func dumpNode(b *strings.Builder, n Node, depth int) {
	switch n := n.(type) {
	case *SelectStmt:
		writeLine(b, depth, "%s", n.Kind())
		dumpListField(b, "select_list", n.selectList, depth+1)
		dumpListField(b, "tableref_list", n.tablerefList, depth+1)
		dumpNodeField(b, "where", n.where, depth+1)
		dumpNodeField(b, "group", n.group, depth+1)
		dumpNodeField(b, "having", n.having, depth+1)
		dumpNodeField(b, "order", n.order, depth+1)
		dumpListField(b, "window_list", n.windowList, depth+1)
		if n.limit == nil {
			writeLine(b, depth+1, "limit: NULL")
		} else {
			writeLine(b, depth+1, "limit:")
			dumpNode(b, n.limit, depth+2)
		}

	case *ResTarget:
		writeLine(b, depth, "%s", n.Kind())
		dumpNodeField(b, "val", n.val, depth+1)
		writeLine(b, depth+1, "name: %q", n.name)

	case *TableRef:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "table: %q", n.table)
		writeLine(b, depth+1, "alias: %q", n.alias)

	case *FuncCall:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "function_name: %q", n.name)
		dumpListField(b, "args", n.args, depth+1)
		if n.over == nil {
			writeLine(b, depth+1, "over: NULL")
		} else {
			writeLine(b, depth+1, "over:")
			dumpNode(b, n.over, depth+2)
		}

	case *WindowDef:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "window_name: %q", n.name)
		dumpListField(b, "partitions", n.partitions, depth+1)
		dumpListField(b, "orders", n.orders, depth+1)
		if n.frame == nil {
			writeLine(b, depth+1, "frame: NULL")
		} else {
			writeLine(b, depth+1, "frame:")
			dumpNode(b, n.frame, depth+2)
		}

	case *Frame:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "frame_type: %s", n.typ)
		dumpBoundField(b, "start", n.start, depth+1)
		dumpBoundField(b, "end", n.end, depth+1)

	case *FrameBound:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "bound: %s", n.bound)
		switch {
		case n.offset != nil:
			writeLine(b, depth+1, "offset:")
			dumpNode(b, n.offset, depth+2)
		case n.bound != BoundCurrent:
			// Representable but non-canonical; the grammar encodes
			// UNBOUNDED as an absent bound on the Frame.
			writeLine(b, depth+1, "offset: UNBOUNDED")
		}

	case *OrderBy:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "sort_type: %s", n.sort)
		dumpNodeField(b, "order_by", n.expr, depth+1)

	case *Limit:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "count: %d", n.count)

	case *ColumnRef:
		writeLine(b, depth, "%s", n.Kind())
		writeLine(b, depth+1, "relation_name: %q", n.relation)
		writeLine(b, depth+1, "column_name: %q", n.column)

	case *Literal:
		writeLine(b, depth, "%s", n.Kind())
		switch n.kind {
		case KindNull:
			// No value field; the kind line is the whole rendering.
		case KindInt:
			writeLine(b, depth+1, "value: %s", strconv.FormatInt(int64(n.i32), 10))
		case KindBigInt:
			writeLine(b, depth+1, "value: %s", strconv.FormatInt(n.i64, 10))
		case KindFloat:
			writeLine(b, depth+1, "value: %s", strconv.FormatFloat(float64(n.f32), 'g', -1, 32))
		case KindDouble:
			writeLine(b, depth+1, "value: %s", strconv.FormatFloat(n.f64, 'g', -1, 64))
		case KindText:
			writeLine(b, depth+1, "value: %q", n.text)
		}

	default:
		// Unknown and any future position-only variants.
		writeLine(b, depth, "%s", n.Kind())
	}
}

// dumpNodeField writes a node-valued field: "label: NULL" when absent,
// otherwise the label line followed by the child one level deeper.
func dumpNodeField(b *strings.Builder, label string, n Node, depth int) {
	if n == nil {
		writeLine(b, depth, "%s: NULL", label)
		return
	}
	writeLine(b, depth, "%s:", label)
	dumpNode(b, n, depth+1)
}

// dumpListField writes a list-valued field: "label: []" when the list
// is absent or empty, otherwise the label line followed by the bracket
// form one level deeper.
func dumpListField(b *strings.Builder, label string, l *NodeList, depth int) {
	if l.Len() == 0 {
		writeLine(b, depth, "%s: []", label)
		return
	}
	writeLine(b, depth, "%s:", label)
	dumpList(b, l, depth+1)
}

// dumpBoundField writes a frame-bound field; an absent bound renders
// as the token UNBOUNDED.
func dumpBoundField(b *strings.Builder, label string, fb *FrameBound, depth int) {
	if fb == nil {
		writeLine(b, depth, "%s: UNBOUNDED", label)
		return
	}
	writeLine(b, depth, "%s:", label)
	dumpNode(b, fb, depth+1)
}

func dumpList(b *strings.Builder, l *NodeList, depth int) {
	if l.Len() == 0 {
		writeLine(b, depth, "[]")
		return
	}
	writeLine(b, depth, "[")
	l.Each(func(n Node) bool {
		dumpNode(b, n, depth+1)
		return true
	})
	writeLine(b, depth, "]")
}
