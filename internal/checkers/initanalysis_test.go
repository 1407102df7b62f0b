package checkers_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quill-lang/quill/internal/cfg"
	"github.com/quill-lang/quill/internal/checkers"
	"github.com/quill-lang/quill/internal/decl"
)

// buildClass assembles a class with the given members, numbering properties
// in declaration order.
func buildClass(members ...decl.Decl) *decl.Class {
	class := decl.NewClass("C", decl.KindClass, span())
	class.Members = members
	return class
}

func newProp(name string, id decl.PropertyID) *decl.Property {
	return decl.NewProperty(name, id, span())
}

func TestInitAnalysis_NoConstructorsNoInitBlocks(t *testing.T) {
	withInit := newProp("a", 0)
	withInit.Initializer = decl.NewOpaqueExpr(span())
	bare := newProp("b", 1)

	class := buildClass(withInit, bare)
	result := checkers.AnalyzeInitialization(class, cfg.MapProvider{})

	assert.True(t, result.IsInitialized(withInit), "explicit initializer suffices")
	assert.False(t, result.IsInitialized(bare))
}

func TestInitAnalysis_EveryConstructorMustProve(t *testing.T) {
	p := newProp("x", 0)
	setting := decl.NewConstructor(false, span())
	silent := decl.NewConstructor(false, span())
	class := buildClass(p, setting, silent)

	graphs := cfg.MapProvider{
		setting: cfg.Linear(p.ID),
		silent:  cfg.Linear(),
	}

	result := checkers.AnalyzeInitialization(class, graphs)

	assert.False(t, result.IsInitialized(p), "one constructor leaves x unset; the caller may pick it")
}

func TestInitAnalysis_AllConstructorsProve(t *testing.T) {
	p := newProp("x", 0)
	a := decl.NewConstructor(false, span())
	b := decl.NewConstructor(false, span())
	class := buildClass(p, a, b)

	graphs := cfg.MapProvider{
		a: cfg.Linear(p.ID),
		b: cfg.Linear(p.ID),
	}

	assert.True(t, checkers.AnalyzeInitialization(class, graphs).IsInitialized(p))
}

func TestInitAnalysis_DelegationUnionsFacts(t *testing.T) {
	// A sets x; B sets nothing itself but delegates to A via this(...).
	// Initialization before delegation and after are sequential, so the
	// union covers B.
	x := newProp("x", 0)
	a := decl.NewConstructor(false, span())
	b := decl.NewConstructor(false, span())
	b.DelegatesTo = a
	class := buildClass(x, a, b)

	graphs := cfg.MapProvider{
		a: cfg.Linear(x.ID),
		b: cfg.Linear(),
	}

	assert.True(t, checkers.AnalyzeInitialization(class, graphs).IsInitialized(x))
}

func TestInitAnalysis_DelegateNotYetComputedContributesNothing(t *testing.T) {
	// B appears before A in declaration order, so A's facts are not yet
	// cached when B is processed. The delegation fact degrades to absent.
	x := newProp("x", 0)
	a := decl.NewConstructor(false, span())
	b := decl.NewConstructor(false, span())
	b.DelegatesTo = a
	class := buildClass(x, b, a)

	graphs := cfg.MapProvider{
		a: cfg.Linear(x.ID),
		b: cfg.Linear(),
	}

	assert.False(t, checkers.AnalyzeInitialization(class, graphs).IsInitialized(x))
}

func TestInitAnalysis_AnyInitBlockSuffices(t *testing.T) {
	x := newProp("x", 0)
	first := decl.NewAnonymousInitializer(span())
	second := decl.NewAnonymousInitializer(span())
	class := buildClass(x, first, second)

	graphs := cfg.MapProvider{
		first:  cfg.Linear(),
		second: cfg.Linear(x.ID),
	}

	assert.True(t, checkers.AnalyzeInitialization(class, graphs).IsInitialized(x),
		"init blocks all run unconditionally; any one proving x suffices")
}

func TestInitAnalysis_OtherPropertyInitializerSideEffect(t *testing.T) {
	// a's initializer performs an inlined call that assigns b.
	a := newProp("a", 0)
	a.Initializer = decl.NewOpaqueExpr(span())
	b := newProp("b", 1)
	class := buildClass(a, b)

	graphs := cfg.MapProvider{
		a: cfg.Linear(b.ID),
	}

	result := checkers.AnalyzeInitialization(class, graphs)
	assert.True(t, result.IsInitialized(b))
}

func TestInitAnalysis_AbsentGraphIsSkipped(t *testing.T) {
	// The erroneous constructor has no graph; it neither proves nor
	// disproves, so the proving constructor decides.
	x := newProp("x", 0)
	proving := decl.NewConstructor(false, span())
	erroneous := decl.NewConstructor(false, span())
	class := buildClass(x, proving, erroneous)

	graphs := cfg.MapProvider{
		proving: cfg.Linear(x.ID),
	}

	assert.True(t, checkers.AnalyzeInitialization(class, graphs).IsInitialized(x))
}

func TestInitAnalysis_BranchInsideConstructor(t *testing.T) {
	x := newProp("x", 0)
	y := newProp("y", 1)
	ctor := decl.NewConstructor(true, span())
	class := buildClass(x, y, ctor)

	// x assigned in both arms, y in one.
	graphs := cfg.MapProvider{
		ctor: cfg.Branch([]decl.PropertyID{x.ID, y.ID}, []decl.PropertyID{x.ID}),
	}

	result := checkers.AnalyzeInitialization(class, graphs)
	assert.True(t, result.IsInitialized(x))
	assert.False(t, result.IsInitialized(y))
}
