package cfg

import "github.com/quill-lang/quill/internal/decl"

// Builder assembles graphs block by block. It exists for the resolution
// phase, the tree-file loader and tests; the checkers never build graphs.
type Builder struct {
	g *Graph
}

// NewBuilder creates an empty graph builder.
func NewBuilder() *Builder {
	return &Builder{g: &Graph{}}
}

// Block appends a normal block assigning the given properties.
func (b *Builder) Block(assigns ...decl.PropertyID) *Block {
	blk := &Block{Assigns: assigns}
	b.g.Blocks = append(b.g.Blocks, blk)
	return blk
}

// ExceptionalBlock appends a block on the thrown-error path.
func (b *Builder) ExceptionalBlock(assigns ...decl.PropertyID) *Block {
	blk := &Block{Assigns: assigns, Exceptional: true}
	b.g.Blocks = append(b.g.Blocks, blk)
	return blk
}

// Edge adds a control-flow edge from one block to another.
func (b *Builder) Edge(from, to *Block) {
	from.Succs = append(from.Succs, to)
}

// Finish fixes the entry and exit blocks and returns the graph.
func (b *Builder) Finish(entry, exit *Block) *Graph {
	b.g.Entry = entry
	b.g.Exit = exit
	return b.g
}

// Linear builds a straight-line graph that assigns the given properties in
// order. The common case for constructors without branching.
func Linear(assigns ...decl.PropertyID) *Graph {
	b := NewBuilder()
	blk := b.Block(assigns...)
	return b.Finish(blk, blk)
}

// Branch builds a diamond: entry, two alternative arms, join. Used to model
// if/else bodies in fixtures and tests.
func Branch(then, els []decl.PropertyID) *Graph {
	b := NewBuilder()
	entry := b.Block()
	thenBlk := b.Block(then...)
	elseBlk := b.Block(els...)
	join := b.Block()
	b.Edge(entry, thenBlk)
	b.Edge(entry, elseBlk)
	b.Edge(thenBlk, join)
	b.Edge(elseBlk, join)
	return b.Finish(entry, join)
}
