package decl

import "github.com/quill-lang/quill/internal/source"

// PropertyID is a stable per-class identifier for a member property,
// assigned in declaration order. Analysis accumulators key on it instead of
// node pointers.
type PropertyID int

// Property represents a member property declaration.
type Property struct {
	Name       string
	ID         PropertyID
	Visibility Visibility
	Mutable    bool // var vs val

	// Initializer is the plain initializer expression, Delegate the `by`
	// expression. In resolved code the two never coexist.
	Initializer Expr
	Delegate    Expr

	Getter *PropertyAccessor
	Setter *PropertyAccessor

	// Abstract and Open are the effective flags after resolution; members of
	// an interface are implicitly abstract even without the modifier. The
	// HasXxxModifier fields record what was actually written in source.
	Abstract            bool
	Open                bool
	Expect              bool
	HasAbstractModifier bool
	HasOpenModifier     bool

	span source.Span
}

// Span returns the declaration span.
func (p *Property) Span() source.Span { return p.span }

// NewProperty constructs a property declaration node.
func NewProperty(name string, id PropertyID, span source.Span) *Property {
	return &Property{Name: name, ID: id, span: span}
}

func (*Property) declNode() {}

// IsDelegated reports whether the property is implemented via a delegate.
func (p *Property) IsDelegated() bool { return p.Delegate != nil }

// HasInitializer reports whether the property has a plain initializer.
func (p *Property) HasInitializer() bool { return p.Initializer != nil }

// Synthesized reports whether the property was generated by the compiler
// rather than written in source. Synthesized members carry no location and
// are exempt from member-property diagnostics.
func (p *Property) Synthesized() bool { return !p.span.IsValid() }

// PropertyAccessor represents a property getter or setter.
type PropertyAccessor struct {
	// HasBody is true for accessors with an explicit body, false for
	// default (generated) accessors written as a bare `get`/`set` or
	// omitted entirely.
	HasBody    bool
	Visibility Visibility

	// ExplicitVisibility records whether the visibility was written in
	// source rather than inherited from the property.
	ExplicitVisibility bool

	span source.Span
}

// Span returns the accessor span.
func (a *PropertyAccessor) Span() source.Span { return a.span }

// NewPropertyAccessor constructs an accessor node.
func NewPropertyAccessor(hasBody bool, span source.Span) *PropertyAccessor {
	return &PropertyAccessor{HasBody: hasBody, span: span}
}
