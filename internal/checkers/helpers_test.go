package checkers_test

import (
	"github.com/quill-lang/quill/internal/cfg"
	"github.com/quill-lang/quill/internal/checkers"
	"github.com/quill-lang/quill/internal/config"
	"github.com/quill-lang/quill/internal/decl"
	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/source"
)

var nextLine int

// span hands out distinct valid spans so every hand-built node counts as
// written in source rather than synthesized.
func span() source.Span {
	nextLine++
	return source.Span{Filename: "test.qll", Line: nextLine, Column: 1, Start: nextLine * 10, End: nextLine*10 + 1}
}

func newChecker(graphs cfg.Provider, bag *diag.Bag) *checkers.Checker {
	return checkers.NewChecker(graphs, config.Default(), bag)
}

// checkClass runs the full class check and returns the reported diagnostics.
func checkClass(class *decl.Class, stack decl.Stack, graphs cfg.Provider) []diag.Diagnostic {
	bag := diag.NewBag()
	newChecker(graphs, bag).CheckClass(class, stack)
	return bag.Diagnostics()
}

// codes projects diagnostics onto their codes, preserving order.
func codes(diags []diag.Diagnostic) []diag.Code {
	out := make([]diag.Code, len(diags))
	for i, d := range diags {
		out[i] = d.Code
	}
	return out
}
