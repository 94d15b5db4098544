package ast

import (
	"errors"
	"fmt"
)

// ErrLiteralKind is returned when a literal's value is read through an
// accessor that does not match its active representation.
var ErrLiteralKind = errors.New("literal kind mismatch")

// Literal is a typed constant leaf. Exactly one representation is
// active, selected by the node's kind at construction and never
// changed afterwards. Reading through a mismatched accessor returns an
// error wrapping ErrLiteralKind rather than a silent zero value.
type Literal struct {
	base
	i32  int32
	i64  int64
	f32  float32
	f64  float64
	text string
}

// NewNullLiteral builds a NULL literal.
func NewNullLiteral(pos Position) *Literal {
	return &Literal{base: base{kind: KindNull, pos: pos}}
}

// NewIntLiteral builds a 32-bit integer literal.
func NewIntLiteral(pos Position, v int32) *Literal {
	return &Literal{base: base{kind: KindInt, pos: pos}, i32: v}
}

// NewBigIntLiteral builds a 64-bit integer literal.
func NewBigIntLiteral(pos Position, v int64) *Literal {
	return &Literal{base: base{kind: KindBigInt, pos: pos}, i64: v}
}

// NewFloatLiteral builds a 32-bit float literal.
func NewFloatLiteral(pos Position, v float32) *Literal {
	return &Literal{base: base{kind: KindFloat, pos: pos}, f32: v}
}

// NewDoubleLiteral builds a 64-bit float literal.
func NewDoubleLiteral(pos Position, v float64) *Literal {
	return &Literal{base: base{kind: KindDouble, pos: pos}, f64: v}
}

// NewTextLiteral builds a text literal. The value is stored as an
// owned copy; the literal never borrows the caller's buffer.
func NewTextLiteral(pos Position, v string) *Literal {
	return &Literal{base: base{kind: KindText, pos: pos}, text: v}
}

// IsNull reports whether the NULL representation is active.
func (l *Literal) IsNull() bool { return l.kind == KindNull }

// Int returns the 32-bit integer value.
func (l *Literal) Int() (int32, error) {
	if l.kind != KindInt {
		return 0, l.kindErr(KindInt)
	}
	return l.i32, nil
}

// BigInt returns the 64-bit integer value.
func (l *Literal) BigInt() (int64, error) {
	if l.kind != KindBigInt {
		return 0, l.kindErr(KindBigInt)
	}
	return l.i64, nil
}

// Float returns the 32-bit float value.
func (l *Literal) Float() (float32, error) {
	if l.kind != KindFloat {
		return 0, l.kindErr(KindFloat)
	}
	return l.f32, nil
}

// Double returns the 64-bit float value.
func (l *Literal) Double() (float64, error) {
	if l.kind != KindDouble {
		return 0, l.kindErr(KindDouble)
	}
	return l.f64, nil
}

// Text returns the text value.
func (l *Literal) Text() (string, error) {
	if l.kind != KindText {
		return "", l.kindErr(KindText)
	}
	return l.text, nil
}

func (l *Literal) kindErr(want Kind) error {
	return fmt.Errorf("%w: have %s, want %s", ErrLiteralKind, l.kind, want)
}
