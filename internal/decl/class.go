package decl

import "github.com/quill-lang/quill/internal/source"

// Class represents a resolved class-like declaration: classes, interfaces,
// enum classes and their entries, annotation classes, and objects
// (including companions).
type Class struct {
	Name       string
	Kind       ClassKind
	Visibility Visibility

	// Modifier flags. Companion is set on the companion object of another
	// class; Local is set when the class is declared inside a function body
	// or other statement-level scope.
	Inner     bool
	Local     bool
	Companion bool
	Abstract  bool
	Open      bool
	Expect    bool

	// Members holds the direct member declarations in declaration order.
	Members []Decl

	span source.Span
}

// Span returns the declaration span.
func (c *Class) Span() source.Span { return c.span }

// NewClass constructs a class declaration node.
func NewClass(name string, kind ClassKind, span source.Span) *Class {
	return &Class{Name: name, Kind: kind, span: span}
}

func (*Class) declNode() {}

// IsSingleton reports whether the class is an object-like declaration that
// has exactly one instance (objects and companions).
func (c *Class) IsSingleton() bool {
	return c.Kind == KindObject || c.Companion
}

// Properties returns the direct member properties in declaration order.
func (c *Class) Properties() []*Property {
	var props []*Property
	for _, m := range c.Members {
		if p, ok := m.(*Property); ok {
			props = append(props, p)
		}
	}
	return props
}

// Constructors returns the class constructors in declaration order.
func (c *Class) Constructors() []*Constructor {
	var ctors []*Constructor
	for _, m := range c.Members {
		if ctor, ok := m.(*Constructor); ok {
			ctors = append(ctors, ctor)
		}
	}
	return ctors
}

// AnonymousInitializers returns the init blocks in declaration order.
func (c *Class) AnonymousInitializers() []*AnonymousInitializer {
	var inits []*AnonymousInitializer
	for _, m := range c.Members {
		if in, ok := m.(*AnonymousInitializer); ok {
			inits = append(inits, in)
		}
	}
	return inits
}

// CanHaveAbstractMembers reports whether the class may declare abstract
// members: interfaces, abstract classes, and enum classes (whose entries
// provide the implementations).
func (c *Class) CanHaveAbstractMembers() bool {
	return c.Kind == KindInterface || c.Kind == KindEnumClass || c.Abstract
}

// Constructor represents a class constructor.
type Constructor struct {
	Primary    bool
	Visibility Visibility

	// DelegatesTo is the same-class constructor targeted by a this(...)
	// delegation call, or nil when there is none or resolution failed.
	DelegatesTo *Constructor

	span source.Span
}

// Span returns the declaration span.
func (c *Constructor) Span() source.Span { return c.span }

// NewConstructor constructs a constructor declaration node.
func NewConstructor(primary bool, span source.Span) *Constructor {
	return &Constructor{Primary: primary, span: span}
}

func (*Constructor) declNode() {}

// AnonymousInitializer represents an init { ... } block.
type AnonymousInitializer struct {
	span source.Span
}

// Span returns the declaration span.
func (a *AnonymousInitializer) Span() source.Span { return a.span }

// NewAnonymousInitializer constructs an init-block declaration node.
func NewAnonymousInitializer(span source.Span) *AnonymousInitializer {
	return &AnonymousInitializer{span: span}
}

func (*AnonymousInitializer) declNode() {}

// Function represents a function declaration. The declaration checkers only
// need it as a containment context (classes declared inside a function body
// are local), so parameters and the statement body are not modeled; Locals
// holds the local declarations resolution hoisted out of the body.
type Function struct {
	Name   string
	Locals []Decl
	span   source.Span
}

// Span returns the declaration span.
func (f *Function) Span() source.Span { return f.span }

// NewFunction constructs a function declaration node.
func NewFunction(name string, span source.Span) *Function {
	return &Function{Name: name, span: span}
}

func (*Function) declNode() {}
