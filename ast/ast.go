// Package ast defines the abstract syntax tree handed over by the SQL
// grammar to the rest of the front end.
//
// The grammar builds a tree bottom-up through the New* factories: leaf
// nodes first, siblings collected into a NodeList, then composite
// factories that take ownership of their children. Every factory
// consumes the child nodes and lists passed to it; after the call the
// caller must reach them only through the returned parent. Accessors
// return non-owning views for read-only traversal. No factory
// validates SQL semantics; nonsense trees are the caller's problem
// and are surfaced by later analysis passes, not here.
package ast

// Position is a source position reported by the grammar.
type Position struct {
	Line   int // line number (1-based)
	Column int // column number (1-based)
}

// Kind identifies the variant of a Node. For literal nodes the kind
// doubles as the tag of the active value representation.
type Kind int

const (
	KindUnknown Kind = iota
	KindSelectStmt
	KindResTarget
	KindTableRef
	KindFuncCall
	KindWindowDef
	KindFrameBound
	KindFrame
	KindColumnRef
	KindOrderBy
	KindLimit

	// Literal kinds. A Literal's Kind reports which of these is active.
	KindNull
	KindInt
	KindBigInt
	KindFloat
	KindDouble
	KindText
)

var kindNames = [...]string{
	KindUnknown:    "Unknown",
	KindSelectStmt: "SelectStmt",
	KindResTarget:  "ResTarget",
	KindTableRef:   "TableRef",
	KindFuncCall:   "FuncCall",
	KindWindowDef:  "WindowDef",
	KindFrameBound: "FrameBound",
	KindFrame:      "Frame",
	KindColumnRef:  "ColumnRef",
	KindOrderBy:    "OrderBy",
	KindLimit:      "Limit",
	KindNull:       "null",
	KindInt:        "int",
	KindBigInt:     "bigint",
	KindFloat:      "float",
	KindDouble:     "double",
	KindText:       "text",
}

// String returns the kind name used as the first token of a node's
// debug dump.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Unknown"
	}
	return kindNames[k]
}

// Node is the interface implemented by all AST nodes.
type Node interface {
	Kind() Kind
	Pos() Position

	// node restricts implementations to this package; the set of
	// kinds is closed.
	node()
}

// base carries the metadata shared by every node variant.
type base struct {
	kind Kind
	pos  Position
}

func (b base) Kind() Kind { return b.kind }
func (b base) Pos() Position { return b.pos }
func (base) node() {}

// FrameType distinguishes logical (RANGE) from physical (ROWS) window
// frames. Stored verbatim, never interpreted by this layer.
type FrameType string

const (
	FrameRange FrameType = "RANGE"
	FrameRows  FrameType = "ROWS"
)

// BoundType is the kind of a window-frame bound.
type BoundType string

const (
	BoundPreceding BoundType = "PRECEDING"
	BoundFollowing BoundType = "FOLLOWING"
	BoundCurrent   BoundType = "CURRENT"
)

// SortType is the direction of an ORDER BY element.
type SortType string

const (
	SortAsc  SortType = "ASC"
	SortDesc SortType = "DESC"
)

// -----------------------------------------------------------------------------
// Statements and clauses

// SelectStmt represents a SELECT statement. Every clause is
// independently optional; absence is a nil list or nil node, never a
// sentinel.
type SelectStmt struct {
	base
	selectList   *NodeList
	tablerefList *NodeList
	where        Node
	group        Node
	having       Node
	order        Node
	windowList   *NodeList
	limit        *Limit
}

// NewSelectStmt builds a SELECT statement node, taking ownership of
// every non-nil argument.
func NewSelectStmt(pos Position, selectList, tablerefList *NodeList, where, group, having, order Node, windowList *NodeList, limit *Limit) *SelectStmt {
	return &SelectStmt{
		base:         base{kind: KindSelectStmt, pos: pos},
		selectList:   selectList,
		tablerefList: tablerefList,
		where:        where,
		group:        group,
		having:       having,
		order:        order,
		windowList:   windowList,
		limit:        limit,
	}
}

func (s *SelectStmt) SelectList() *NodeList { return s.selectList }
func (s *SelectStmt) TableRefList() *NodeList { return s.tablerefList }
func (s *SelectStmt) Where() Node { return s.where }
func (s *SelectStmt) Group() Node { return s.group }
func (s *SelectStmt) Having() Node { return s.having }
func (s *SelectStmt) Order() Node { return s.order }
func (s *SelectStmt) WindowList() *NodeList { return s.windowList }
func (s *SelectStmt) Limit() *Limit { return s.limit }

// ResTarget represents one entry of a SELECT target list: a value
// expression with an optional output name. The indirection list
// (subscripts, field access) is reserved for the grammar and may be
// nil.
type ResTarget struct {
	base
	indirection *NodeList
	val         Node
	name        string
}

// NewResTarget builds a result-target node owning val.
func NewResTarget(pos Position, val Node, name string) *ResTarget {
	return &ResTarget{
		base: base{kind: KindResTarget, pos: pos},
		val:  val,
		name: name,
	}
}

func (r *ResTarget) Val() Node { return r.val }
func (r *ResTarget) Name() string { return r.name }
func (r *ResTarget) Indirection() *NodeList { return r.indirection }

// TableRef references a table by name with an optional alias.
type TableRef struct {
	base
	table string
	alias string
}

// NewTableRef builds a table-reference leaf.
func NewTableRef(pos Position, table, alias string) *TableRef {
	return &TableRef{
		base:  base{kind: KindTableRef, pos: pos},
		table: table,
		alias: alias,
	}
}

func (t *TableRef) Table() string { return t.table }
func (t *TableRef) Alias() string { return t.alias }

// FuncCall represents a (possibly windowed) function call. For
// "f(...) OVER w" the grammar passes a name-only WindowDef as over;
// the full definition lives in the statement's window list.
type FuncCall struct {
	base
	name string
	args *NodeList
	over *WindowDef
}

// NewFuncCall builds a function-call node, taking ownership of args
// and over.
func NewFuncCall(pos Position, name string, args *NodeList, over *WindowDef) *FuncCall {
	return &FuncCall{
		base: base{kind: KindFuncCall, pos: pos},
		name: name,
		args: args,
		over: over,
	}
}

func (f *FuncCall) Name() string { return f.name }
func (f *FuncCall) Args() *NodeList { return f.args }
func (f *FuncCall) Over() *WindowDef { return f.over }

// WindowDef represents a window definition: a name plus optional
// PARTITION BY list, ORDER BY list and frame.
type WindowDef struct {
	base
	name       string
	partitions *NodeList
	orders     *NodeList
	frame      *Frame
}

// NewWindowDef builds a window-definition node, taking ownership of
// the lists and the frame.
func NewWindowDef(pos Position, name string, partitions, orders *NodeList, frame *Frame) *WindowDef {
	return &WindowDef{
		base:       base{kind: KindWindowDef, pos: pos},
		name:       name,
		partitions: partitions,
		orders:     orders,
		frame:      frame,
	}
}

func (w *WindowDef) Name() string { return w.name }
func (w *WindowDef) Partitions() *NodeList { return w.partitions }
func (w *WindowDef) Orders() *NodeList { return w.orders }
func (w *WindowDef) Frame() *Frame { return w.frame }

// Frame represents a window frame. A nil start or end bound means
// UNBOUNDED on that side. Bound ordering is preserved exactly as
// written; validating it is downstream's job.
type Frame struct {
	base
	typ   FrameType
	start *FrameBound
	end   *FrameBound
}

// NewFrame builds a frame node owning both bounds.
func NewFrame(pos Position, typ FrameType, start, end *FrameBound) *Frame {
	return &Frame{
		base:  base{kind: KindFrame, pos: pos},
		typ:   typ,
		start: start,
		end:   end,
	}
}

func (f *Frame) Type() FrameType { return f.typ }
func (f *Frame) Start() *FrameBound { return f.start }
func (f *Frame) End() *FrameBound { return f.end }

// FrameBound represents one edge of a window frame. CURRENT carries
// no offset; PRECEDING and FOLLOWING carry one exactly when bounded.
// An unbounded side is canonically an absent bound on the Frame, not
// an offsetless PRECEDING/FOLLOWING bound.
type FrameBound struct {
	base
	bound  BoundType
	offset Node
}

// NewFrameBound builds a frame-bound node owning the optional offset
// expression.
func NewFrameBound(pos Position, bound BoundType, offset Node) *FrameBound {
	return &FrameBound{
		base:   base{kind: KindFrameBound, pos: pos},
		bound:  bound,
		offset: offset,
	}
}

func (f *FrameBound) Bound() BoundType { return f.bound }
func (f *FrameBound) Offset() Node { return f.offset }

// OrderBy represents one ORDER BY element.
type OrderBy struct {
	base
	sort SortType
	expr Node
}

// NewOrderBy builds an order-by node owning expr.
func NewOrderBy(pos Position, expr Node, sort SortType) *OrderBy {
	return &OrderBy{
		base: base{kind: KindOrderBy, pos: pos},
		sort: sort,
		expr: expr,
	}
}

func (o *OrderBy) Sort() SortType { return o.sort }
func (o *OrderBy) Expr() Node { return o.expr }

// Limit represents a LIMIT clause.
type Limit struct {
	base
	count int
}

// NewLimit builds a limit node.
func NewLimit(pos Position, count int) *Limit {
	return &Limit{
		base:  base{kind: KindLimit, pos: pos},
		count: count,
	}
}

func (l *Limit) Count() int { return l.count }

// ColumnRef references a column, optionally qualified by a relation
// name.
type ColumnRef struct {
	base
	column   string
	relation string
}

// NewColumnRef builds a column-reference leaf.
func NewColumnRef(pos Position, column, relation string) *ColumnRef {
	return &ColumnRef{
		base:     base{kind: KindColumnRef, pos: pos},
		column:   column,
		relation: relation,
	}
}

func (c *ColumnRef) Column() string { return c.column }
func (c *ColumnRef) Relation() string { return c.relation }

// Unknown is the catch-all for constructs the grammar recognizes but
// this layer does not classify.
type Unknown struct {
	base
}

// NewUnknown builds an unknown node.
func NewUnknown(pos Position) *Unknown {
	return &Unknown{base: base{kind: KindUnknown, pos: pos}}
}
