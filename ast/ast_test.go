package ast_test

import (
	"testing"

	"github.com/emmanuel-ferdman/OpenMLDB/ast"
)

func TestFactoriesRecordPosition(t *testing.T) {
	pos := ast.Position{Line: 3, Column: 14}
	nodes := []ast.Node{
		ast.NewSelectStmt(pos, nil, nil, nil, nil, nil, nil, nil, nil),
		ast.NewTableRef(pos, "t", ""),
		ast.NewColumnRef(pos, "c", ""),
		ast.NewLimit(pos, 1),
		ast.NewTextLiteral(pos, "abc"),
		ast.NewUnknown(pos),
	}
	for _, n := range nodes {
		if n.Pos() != pos {
			t.Errorf("%s Pos() = %+v, want %+v", n.Kind(), n.Pos(), pos)
		}
	}
}

func TestSelectStmtAccessors(t *testing.T) {
	targets := ast.NewNodeList(ast.NewResTarget(ast.Position{}, ast.NewColumnRef(ast.Position{}, "uv", ""), ""))
	tables := ast.NewNodeList(ast.NewTableRef(ast.Position{}, "t1", "a"))
	where := ast.NewColumnRef(ast.Position{}, "flag", "")
	limit := ast.NewLimit(ast.Position{}, 20)

	stmt := ast.NewSelectStmt(ast.Position{}, targets, tables, where, nil, nil, nil, nil, limit)

	if stmt.Kind() != ast.KindSelectStmt {
		t.Fatalf("Kind() = %s, want SelectStmt", stmt.Kind())
	}
	if stmt.SelectList().Len() != 1 {
		t.Errorf("SelectList().Len() = %d, want 1", stmt.SelectList().Len())
	}
	if stmt.TableRefList().Len() != 1 {
		t.Errorf("TableRefList().Len() = %d, want 1", stmt.TableRefList().Len())
	}
	if stmt.Where() != ast.Node(where) {
		t.Error("Where() did not return the owned child")
	}
	if stmt.Group() != nil || stmt.Having() != nil || stmt.Order() != nil {
		t.Error("absent clauses must be nil")
	}
	if stmt.WindowList().Len() != 0 {
		t.Errorf("WindowList().Len() = %d, want 0", stmt.WindowList().Len())
	}
	if stmt.Limit().Count() != 20 {
		t.Errorf("Limit().Count() = %d, want 20", stmt.Limit().Count())
	}
}

func TestResTargetAccessors(t *testing.T) {
	val := ast.NewColumnRef(ast.Position{}, "uv", "t1")
	rt := ast.NewResTarget(ast.Position{}, val, "u")
	if rt.Val() != ast.Node(val) {
		t.Error("Val() did not return the owned expression")
	}
	if rt.Name() != "u" {
		t.Errorf("Name() = %q, want %q", rt.Name(), "u")
	}
	if rt.Indirection() != nil {
		t.Error("Indirection() should be nil when never supplied")
	}
}

func TestFuncCallAccessors(t *testing.T) {
	over := ast.NewWindowDef(ast.Position{}, "w", nil, nil, nil)
	fc := ast.NewFuncCall(ast.Position{}, "count", nil, over)
	if fc.Name() != "count" {
		t.Errorf("Name() = %q, want %q", fc.Name(), "count")
	}
	if fc.Args().Len() != 0 {
		t.Errorf("Args().Len() = %d, want 0 for absent args", fc.Args().Len())
	}
	if fc.Over() != over {
		t.Error("Over() did not return the owned window definition")
	}
}

func TestWindowDefAccessors(t *testing.T) {
	frame := ast.NewFrame(ast.Position{}, ast.FrameRange, nil, nil)
	w := ast.NewWindowDef(ast.Position{}, "w1",
		ast.NewNodeList(ast.NewColumnRef(ast.Position{}, "pk", "")), nil, frame)

	if w.Name() != "w1" {
		t.Errorf("Name() = %q, want %q", w.Name(), "w1")
	}
	if w.Partitions().Len() != 1 {
		t.Errorf("Partitions().Len() = %d, want 1", w.Partitions().Len())
	}
	if w.Orders().Len() != 0 {
		t.Errorf("Orders().Len() = %d, want 0", w.Orders().Len())
	}
	if w.Frame() != frame {
		t.Error("Frame() did not return the owned frame")
	}
	if w.Frame().Type() != ast.FrameRange {
		t.Errorf("Frame().Type() = %s, want RANGE", w.Frame().Type())
	}
}

func TestFrameBoundAccessors(t *testing.T) {
	offset := ast.NewIntLiteral(ast.Position{}, 5)
	fb := ast.NewFrameBound(ast.Position{}, ast.BoundFollowing, offset)
	if fb.Bound() != ast.BoundFollowing {
		t.Errorf("Bound() = %s, want FOLLOWING", fb.Bound())
	}
	if fb.Offset() != ast.Node(offset) {
		t.Error("Offset() did not return the owned expression")
	}

	current := ast.NewFrameBound(ast.Position{}, ast.BoundCurrent, nil)
	if current.Offset() != nil {
		t.Error("CURRENT bound must carry no offset")
	}
}

func TestOrderByAccessors(t *testing.T) {
	col := ast.NewColumnRef(ast.Position{}, "ts", "")
	o := ast.NewOrderBy(ast.Position{}, col, ast.SortDesc)
	if o.Sort() != ast.SortDesc {
		t.Errorf("Sort() = %s, want DESC", o.Sort())
	}
	if o.Expr() != ast.Node(col) {
		t.Error("Expr() did not return the owned expression")
	}
}

func TestLeafAccessors(t *testing.T) {
	tr := ast.NewTableRef(ast.Position{}, "t1", "a")
	if tr.Table() != "t1" || tr.Alias() != "a" {
		t.Errorf("TableRef = (%q, %q), want (t1, a)", tr.Table(), tr.Alias())
	}
	cr := ast.NewColumnRef(ast.Position{}, "uv", "t1")
	if cr.Column() != "uv" || cr.Relation() != "t1" {
		t.Errorf("ColumnRef = (%q, %q), want (uv, t1)", cr.Column(), cr.Relation())
	}
}

func TestKindNames(t *testing.T) {
	cases := []struct {
		kind ast.Kind
		want string
	}{
		{ast.KindSelectStmt, "SelectStmt"},
		{ast.KindResTarget, "ResTarget"},
		{ast.KindTableRef, "TableRef"},
		{ast.KindFuncCall, "FuncCall"},
		{ast.KindWindowDef, "WindowDef"},
		{ast.KindFrameBound, "FrameBound"},
		{ast.KindFrame, "Frame"},
		{ast.KindColumnRef, "ColumnRef"},
		{ast.KindOrderBy, "OrderBy"},
		{ast.KindLimit, "Limit"},
		{ast.KindUnknown, "Unknown"},
		{ast.KindNull, "null"},
		{ast.KindInt, "int"},
		{ast.KindBigInt, "bigint"},
		{ast.KindFloat, "float"},
		{ast.KindDouble, "double"},
		{ast.KindText, "text"},
		{ast.Kind(-1), "Unknown"},
		{ast.Kind(9999), "Unknown"},
	}
	for _, tc := range cases {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tc.kind, got, tc.want)
		}
	}
}
