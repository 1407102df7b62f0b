package decl_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/source"
)

func sp(line int) source.Span {
	return source.Span{Filename: "t.qll", Line: line, Column: 1}
}

func TestClassKind_Labels(t *testing.T) {
	labels := map[decl.ClassKind]string{
		decl.KindClass:           "Class",
		decl.KindInterface:       "Interface",
		decl.KindEnumClass:       "Enum class",
		decl.KindEnumEntry:       "Enum entry",
		decl.KindAnnotationClass: "Annotation class",
		decl.KindObject:          "Object",
	}
	for kind, want := range labels {
		assert.Equal(t, want, kind.Label())
	}
}

func TestClass_MemberAccessors(t *testing.T) {
	class := decl.NewClass("C", decl.KindClass, sp(1))
	p := decl.NewProperty("x", 0, sp(2))
	ctor := decl.NewConstructor(true, sp(3))
	init := decl.NewAnonymousInitializer(sp(4))
	nested := decl.NewClass("N", decl.KindClass, sp(5))
	class.Members = []decl.Decl{p, ctor, init, nested}

	assert.Equal(t, []*decl.Property{p}, class.Properties())
	assert.Equal(t, []*decl.Constructor{ctor}, class.Constructors())
	assert.Equal(t, []*decl.AnonymousInitializer{init}, class.AnonymousInitializers())
}

func TestClass_CanHaveAbstractMembers(t *testing.T) {
	abstract := decl.NewClass("A", decl.KindClass, sp(1))
	abstract.Abstract = true
	assert.True(t, abstract.CanHaveAbstractMembers())

	assert.True(t, decl.NewClass("I", decl.KindInterface, sp(2)).CanHaveAbstractMembers())
	assert.True(t, decl.NewClass("E", decl.KindEnumClass, sp(3)).CanHaveAbstractMembers())
	assert.False(t, decl.NewClass("C", decl.KindClass, sp(4)).CanHaveAbstractMembers())
}

func TestStack_PushDoesNotAliasPrefix(t *testing.T) {
	a := decl.NewClass("A", decl.KindClass, sp(1))
	b := decl.NewClass("B", decl.KindClass, sp(2))
	c := decl.NewClass("C", decl.KindClass, sp(3))

	base := decl.Stack{}.Push(a)
	left := base.Push(b)
	right := base.Push(c)

	assert.Equal(t, b, left.Container())
	assert.Equal(t, c, right.Container(), "sibling pushes must not clobber each other")
	assert.Nil(t, decl.Stack(nil).Container())
}

func TestWalkClasses_VisitsWithContainment(t *testing.T) {
	inner := decl.NewClass("Inner", decl.KindClass, sp(3))
	outer := decl.NewClass("Outer", decl.KindClass, sp(2))
	outer.Members = []decl.Decl{inner}
	local := decl.NewClass("Local", decl.KindClass, sp(5))
	local.Local = true
	fn := decl.NewFunction("f", sp(4))
	fn.Locals = []decl.Decl{local}

	file := decl.NewFile(sp(1))
	file.Decls = []decl.Decl{outer, fn}

	type visit struct {
		name      string
		container decl.Decl
	}
	var visits []visit
	decl.WalkClasses(file, func(c *decl.Class, stack decl.Stack) {
		visits = append(visits, visit{c.Name, stack.Container()})
	})

	require.Len(t, visits, 3)
	assert.Equal(t, visit{"Outer", nil}, visits[0])
	assert.Equal(t, visit{"Inner", outer}, visits[1])
	assert.Equal(t, visit{"Local", fn}, visits[2])
}

func TestProperty_Synthesized(t *testing.T) {
	real := decl.NewProperty("x", 0, sp(1))
	assert.False(t, real.Synthesized())

	generated := decl.NewProperty("y", 1, source.Span{})
	assert.True(t, generated.Synthesized())
}
