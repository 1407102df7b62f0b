package diag_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quill-lang/quill/internal/diag"
	"github.com/quill-lang/quill/internal/source"
)

func TestBag_AccumulatesAndFilters(t *testing.T) {
	bag := diag.NewBagWithDisabled([]diag.Code{diag.CodeRedundantOpenInInterface})

	bag.Report(diag.Diagnostic{
		Stage:    diag.StageDeclCheck,
		Severity: diag.SeverityError,
		Code:     diag.CodeNestedClassNotAllowed,
		Message:  "Class is not allowed here",
	})
	bag.Report(diag.Diagnostic{
		Stage:    diag.StageDeclCheck,
		Severity: diag.SeverityWarning,
		Code:     diag.CodeRedundantOpenInInterface,
		Message:  "redundant open",
	})

	require.Len(t, bag.Diagnostics(), 1, "disabled code should be dropped at report time")
	assert.Equal(t, diag.CodeNestedClassNotAllowed, bag.Diagnostics()[0].Code)
	assert.True(t, bag.HasErrors())
}

func TestBag_MergeAndSort(t *testing.T) {
	a := diag.NewBag()
	a.Report(diag.Diagnostic{
		Code: diag.CodeMustBeInitialized,
		Span: source.Span{Filename: "m.qll", Line: 9, Column: 5},
	})

	b := diag.NewBag()
	b.Report(diag.Diagnostic{
		Code: diag.CodeAbstractPropertyWithInitializer,
		Span: source.Span{Filename: "m.qll", Line: 2, Column: 1},
	})

	a.Merge(b)
	a.SortBySpan()

	require.Len(t, a.Diagnostics(), 2)
	assert.Equal(t, 2, a.Diagnostics()[0].Span.Line)
	assert.Equal(t, 9, a.Diagnostics()[1].Span.Line)
}

func TestFormatter_PlainOutput(t *testing.T) {
	var sb strings.Builder
	f := diag.NewFormatter(&sb, false)

	f.Format(diag.Diagnostic{
		Severity: diag.SeverityError,
		Code:     diag.CodeAbstractDelegatedProperty,
		Message:  "abstract property cannot be delegated",
		Span:     source.Span{Line: 3, Column: 4},
	}.WithHelp("remove the delegate or the abstract modifier"))

	out := sb.String()
	assert.Contains(t, out, "error[ABSTRACT_DELEGATED_PROPERTY]")
	assert.Contains(t, out, "abstract property cannot be delegated")
	assert.Contains(t, out, "help: remove the delegate")
}
