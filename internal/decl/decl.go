package decl

import "github.com/quill-lang/quill/internal/source"

// Node represents any declaration-tree node with an associated source span.
type Node interface {
	Span() source.Span
}

// Decl represents a declaration.
type Decl interface {
	Node
	declNode()
}

// Expr represents a resolved expression. The declaration checkers only care
// about presence, never shape, so the interface is deliberately opaque.
type Expr interface {
	Node
	exprNode()
}

// File represents one resolved compilation unit.
type File struct {
	Decls []Decl
	span  source.Span
}

// Span returns the span covering the entire file.
func (f *File) Span() source.Span { return f.span }

// NewFile constructs a file node with the provided span.
func NewFile(span source.Span) *File {
	return &File{span: span}
}

// OpaqueExpr is a placeholder expression used when building trees by hand
// (tests, tree fixtures). Resolution details are outside this pass.
type OpaqueExpr struct {
	span source.Span
}

// Span returns the expression span.
func (e *OpaqueExpr) Span() source.Span { return e.span }

// NewOpaqueExpr constructs an opaque expression node.
func NewOpaqueExpr(span source.Span) *OpaqueExpr {
	return &OpaqueExpr{span: span}
}

func (*OpaqueExpr) exprNode() {}

// Stack is the containment context for a checked node: the ordered stack of
// enclosing declarations, innermost last. It is read-only for checkers.
type Stack []Decl

// Container returns the immediate lexical container, or nil at top level.
func (s Stack) Container() Decl {
	if len(s) == 0 {
		return nil
	}
	return s[len(s)-1]
}

// Push returns a new stack with d appended. The receiver is not modified,
// so sibling subtrees can share a prefix safely.
func (s Stack) Push(d Decl) Stack {
	out := make(Stack, len(s), len(s)+1)
	copy(out, s)
	return append(out, d)
}
