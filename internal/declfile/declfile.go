// Package declfile loads a declaration tree plus its per-member control-flow
// graphs from a YAML description. The format stands in for the parser and
// resolver, which live outside this module: tools and integration tests feed
// the declaration checkers resolved trees without parsing Quill source.
package declfile

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/quill-lang/quill/internal/cfg"
	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/source"
)

// maxFileSize caps tree files the same way config files are capped.
const maxFileSize = 4 << 20

type fileDoc struct {
	File         string    `yaml:"file"`
	Declarations []declDoc `yaml:"declarations"`
}

// declDoc is the YAML shape of one declaration. Exactly one of Class,
// Function, Property, Constructor or Init selects the node kind.
type declDoc struct {
	Class       string   `yaml:"class,omitempty"`
	Function    string   `yaml:"function,omitempty"`
	Property    string   `yaml:"property,omitempty"`
	Constructor *ctorDoc `yaml:"constructor,omitempty"`
	Init        *bodyDoc `yaml:"init,omitempty"`

	// Class fields.
	Kind       string    `yaml:"kind,omitempty"`
	Modifiers  []string  `yaml:"modifiers,omitempty"`
	Visibility string    `yaml:"visibility,omitempty"`
	Members    []declDoc `yaml:"members,omitempty"`

	// Function fields.
	Locals []declDoc `yaml:"locals,omitempty"`

	// Property fields.
	Mutable     bool         `yaml:"mutable,omitempty"`
	Initializer bool         `yaml:"initializer,omitempty"`
	Delegate    bool         `yaml:"delegate,omitempty"`
	Getter      *accessorDoc `yaml:"getter,omitempty"`
	Setter      *accessorDoc `yaml:"setter,omitempty"`
	Synthesized bool         `yaml:"synthesized,omitempty"`

	// Assigns describes the property initializer's graph when the
	// initializer performs assignments as a side effect: one branch per
	// alternative path, each branch listing assigned property names.
	Assigns [][]string `yaml:"assigns,omitempty"`
}

type ctorDoc struct {
	Primary bool `yaml:"primary,omitempty"`

	// DelegatesTo is the zero-based index of the this(...) target among the
	// class's constructors.
	DelegatesTo *int `yaml:"delegatesTo,omitempty"`

	// Body lists alternative branches, each naming the properties it
	// assigns. Absent means no graph is available for the constructor.
	Body [][]string `yaml:"body,omitempty"`
}

type bodyDoc struct {
	Body [][]string `yaml:"body,omitempty"`
}

type accessorDoc struct {
	Body       bool   `yaml:"body,omitempty"`
	Visibility string `yaml:"visibility,omitempty"`
}

// Load reads a tree file and returns the declaration tree together with the
// control-flow graphs for its executable members.
func Load(path string) (*decl.File, cfg.MapProvider, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, nil, fmt.Errorf("stat tree file: %w", err)
	}
	if info.Size() > maxFileSize {
		return nil, nil, fmt.Errorf("tree file %s exceeds %d bytes", path, maxFileSize)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read tree file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML tree description.
func Parse(data []byte) (*decl.File, cfg.MapProvider, error) {
	var doc fileDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("parse tree file: %w", err)
	}

	b := &builder{
		filename: doc.File,
		graphs:   make(cfg.MapProvider),
	}
	file := decl.NewFile(b.nextSpan())
	for i, d := range doc.Declarations {
		node, err := b.buildDecl(d, fmt.Sprintf("declarations[%d]", i))
		if err != nil {
			return nil, nil, err
		}
		file.Decls = append(file.Decls, node)
	}
	return file, b.graphs, nil
}

type builder struct {
	filename string
	line     int
	graphs   cfg.MapProvider
}

// nextSpan synthesizes a distinct valid span per node, in document order.
func (b *builder) nextSpan() source.Span {
	b.line++
	return source.Span{Filename: b.filename, Line: b.line, Column: 1, Start: b.line, End: b.line + 1}
}

func (b *builder) buildDecl(d declDoc, at string) (decl.Decl, error) {
	switch {
	case d.Class != "":
		return b.buildClass(d, at)
	case d.Function != "":
		fn := decl.NewFunction(d.Function, b.nextSpan())
		for i, l := range d.Locals {
			node, err := b.buildDecl(l, fmt.Sprintf("%s.locals[%d]", at, i))
			if err != nil {
				return nil, err
			}
			fn.Locals = append(fn.Locals, node)
		}
		return fn, nil
	default:
		return nil, fmt.Errorf("%s: top-level declaration must be a class or function", at)
	}
}

func (b *builder) buildClass(d declDoc, at string) (*decl.Class, error) {
	kind, err := parseKind(d.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	class := decl.NewClass(d.Class, kind, b.nextSpan())
	if class.Visibility, err = parseVisibility(d.Visibility); err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	for _, m := range d.Modifiers {
		switch m {
		case "inner":
			class.Inner = true
		case "local":
			class.Local = true
		case "companion":
			class.Companion = true
		case "abstract":
			class.Abstract = true
		case "open":
			class.Open = true
		case "expect":
			class.Expect = true
		default:
			return nil, fmt.Errorf("%s: unknown class modifier %q", at, m)
		}
	}

	// First pass: create properties so bodies can reference them by name.
	props := make(map[string]decl.PropertyID)
	var nextID decl.PropertyID
	for i, m := range d.Members {
		if m.Property == "" {
			continue
		}
		mAt := fmt.Sprintf("%s.members[%d]", at, i)
		if _, dup := props[m.Property]; dup {
			return nil, fmt.Errorf("%s: duplicate property %q", mAt, m.Property)
		}
		props[m.Property] = nextID
		nextID++
	}

	var ctors []*decl.Constructor
	var delegations []struct {
		from   *decl.Constructor
		target int
		at     string
	}

	for i, m := range d.Members {
		mAt := fmt.Sprintf("%s.members[%d]", at, i)
		switch {
		case m.Property != "":
			p, err := b.buildProperty(m, props, mAt)
			if err != nil {
				return nil, err
			}
			class.Members = append(class.Members, p)
		case m.Constructor != nil:
			ctor := decl.NewConstructor(m.Constructor.Primary, b.nextSpan())
			if m.Constructor.Body != nil {
				g, err := b.buildGraph(m.Constructor.Body, props, mAt)
				if err != nil {
					return nil, err
				}
				b.graphs[ctor] = g
			}
			if m.Constructor.DelegatesTo != nil {
				delegations = append(delegations, struct {
					from   *decl.Constructor
					target int
					at     string
				}{ctor, *m.Constructor.DelegatesTo, mAt})
			}
			ctors = append(ctors, ctor)
			class.Members = append(class.Members, ctor)
		case m.Init != nil:
			init := decl.NewAnonymousInitializer(b.nextSpan())
			if m.Init.Body != nil {
				g, err := b.buildGraph(m.Init.Body, props, mAt)
				if err != nil {
					return nil, err
				}
				b.graphs[init] = g
			}
			class.Members = append(class.Members, init)
		case m.Class != "" || m.Function != "":
			node, err := b.buildDecl(m, mAt)
			if err != nil {
				return nil, err
			}
			class.Members = append(class.Members, node)
		default:
			return nil, fmt.Errorf("%s: member must be a property, constructor, init block, class or function", mAt)
		}
	}

	for _, d := range delegations {
		if d.target < 0 || d.target >= len(ctors) {
			return nil, fmt.Errorf("%s: delegatesTo index %d out of range", d.at, d.target)
		}
		d.from.DelegatesTo = ctors[d.target]
	}
	return class, nil
}

func (b *builder) buildProperty(m declDoc, props map[string]decl.PropertyID, at string) (*decl.Property, error) {
	sp := b.nextSpan()
	if m.Synthesized {
		sp = source.Span{}
	}
	p := decl.NewProperty(m.Property, props[m.Property], sp)
	var err error
	if p.Visibility, err = parseVisibility(m.Visibility); err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	p.Mutable = m.Mutable
	if m.Initializer {
		p.Initializer = decl.NewOpaqueExpr(sp)
	}
	if m.Delegate {
		p.Delegate = decl.NewOpaqueExpr(sp)
	}
	if m.Getter != nil {
		if p.Getter, err = b.buildAccessor(m.Getter, at+".getter"); err != nil {
			return nil, err
		}
	}
	if m.Setter != nil {
		if p.Setter, err = b.buildAccessor(m.Setter, at+".setter"); err != nil {
			return nil, err
		}
	}
	for _, mod := range m.Modifiers {
		switch mod {
		case "abstract":
			p.Abstract = true
			p.HasAbstractModifier = true
		case "open":
			p.Open = true
			p.HasOpenModifier = true
		case "expect":
			p.Expect = true
		default:
			return nil, fmt.Errorf("%s: unknown property modifier %q", at, mod)
		}
	}
	if m.Assigns != nil {
		g, err := b.buildGraph(m.Assigns, props, at)
		if err != nil {
			return nil, err
		}
		b.graphs[p] = g
	}
	return p, nil
}

func (b *builder) buildAccessor(a *accessorDoc, at string) (*decl.PropertyAccessor, error) {
	acc := decl.NewPropertyAccessor(a.Body, b.nextSpan())
	var err error
	if acc.Visibility, err = parseVisibility(a.Visibility); err != nil {
		return nil, fmt.Errorf("%s: %w", at, err)
	}
	acc.ExplicitVisibility = a.Visibility != ""
	return acc, nil
}

// buildGraph turns branch lists into a graph: one straight line for a single
// branch, entry/arms/join for alternatives.
func (b *builder) buildGraph(branches [][]string, props map[string]decl.PropertyID, at string) (*cfg.Graph, error) {
	resolve := func(names []string) ([]decl.PropertyID, error) {
		ids := make([]decl.PropertyID, 0, len(names))
		for _, n := range names {
			id, ok := props[n]
			if !ok {
				return nil, fmt.Errorf("%s: assignment to unknown property %q", at, n)
			}
			ids = append(ids, id)
		}
		return ids, nil
	}

	gb := cfg.NewBuilder()
	switch len(branches) {
	case 0:
		blk := gb.Block()
		return gb.Finish(blk, blk), nil
	case 1:
		ids, err := resolve(branches[0])
		if err != nil {
			return nil, err
		}
		blk := gb.Block(ids...)
		return gb.Finish(blk, blk), nil
	default:
		entry := gb.Block()
		join := gb.Block()
		for _, branch := range branches {
			ids, err := resolve(branch)
			if err != nil {
				return nil, err
			}
			arm := gb.Block(ids...)
			gb.Edge(entry, arm)
			gb.Edge(arm, join)
		}
		return gb.Finish(entry, join), nil
	}
}

func parseKind(s string) (decl.ClassKind, error) {
	switch s {
	case "", "class":
		return decl.KindClass, nil
	case "interface":
		return decl.KindInterface, nil
	case "enum class":
		return decl.KindEnumClass, nil
	case "enum entry":
		return decl.KindEnumEntry, nil
	case "annotation class":
		return decl.KindAnnotationClass, nil
	case "object":
		return decl.KindObject, nil
	default:
		return 0, fmt.Errorf("unknown class kind %q", s)
	}
}

func parseVisibility(s string) (decl.Visibility, error) {
	switch s {
	case "", "public":
		return decl.Public, nil
	case "internal":
		return decl.Internal, nil
	case "protected":
		return decl.Protected, nil
	case "private":
		return decl.Private, nil
	default:
		return 0, fmt.Errorf("unknown visibility %q", s)
	}
}
