package diag

import "github.com/quill-lang/quill/internal/source"

// Stage identifies which compiler phase produced the diagnostic.
type Stage string

const (
	StageLexer     Stage = "lexer"
	StageParser    Stage = "parser"
	StageResolve   Stage = "resolve"
	StageDeclCheck Stage = "declcheck"
	StageTypeCheck Stage = "typecheck"
)

// Severity captures how impactful the diagnostic is.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityNote    Severity = "note"
)

// Code is a stable identifier for a diagnostic.
type Code string

const (
	// Class nesting
	CodeNestedClassNotAllowed Code = "NESTED_CLASS_NOT_ALLOWED"

	// Member properties
	CodePrivatePropertyInInterface         Code = "PRIVATE_PROPERTY_IN_INTERFACE"
	CodeAbstractPropertyInNonAbstractClass Code = "ABSTRACT_PROPERTY_IN_NON_ABSTRACT_CLASS"
	CodeAbstractPropertyWithInitializer    Code = "ABSTRACT_PROPERTY_WITH_INITIALIZER"
	CodeAbstractDelegatedProperty          Code = "ABSTRACT_DELEGATED_PROPERTY"
	CodeAbstractPropertyWithGetter         Code = "ABSTRACT_PROPERTY_WITH_GETTER"
	CodePrivateSetterForAbstractProperty   Code = "PRIVATE_SETTER_FOR_ABSTRACT_PROPERTY"
	CodeAbstractPropertyWithSetter         Code = "ABSTRACT_PROPERTY_WITH_SETTER"
	CodeRedundantOpenInInterface           Code = "REDUNDANT_OPEN_IN_INTERFACE"
	CodePrivateSetterForOpenProperty       Code = "PRIVATE_SETTER_FOR_OPEN_PROPERTY"

	// Definite initialization
	CodeMustBeInitialized           Code = "MUST_BE_INITIALIZED"
	CodeMustBeInitializedOrAbstract Code = "MUST_BE_INITIALIZED_OR_BE_ABSTRACT"

	// Multiplatform (expect) declarations
	CodeExpectedPropertyWithInitializer Code = "EXPECTED_PROPERTY_WITH_INITIALIZER"
	CodeExpectedPrivateDeclaration      Code = "EXPECTED_PRIVATE_DECLARATION"
)

// Diagnostic is a compiler diagnostic surfaced to end-users.
type Diagnostic struct {
	Stage    Stage
	Severity Severity
	Code     Code
	Message  string
	Span     source.Span
	Notes    []string // Additional notes to display
	Help     string   // Optional help text for fixing the error
}

// WithNote adds a note to the diagnostic.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes, note)
	return d
}

// WithHelp adds help text to the diagnostic.
func (d Diagnostic) WithHelp(help string) Diagnostic {
	d.Help = help
	return d
}

// Reporter is the sink declaration checkers emit through. Implementations
// accumulate and continue; reporting never aborts a pass.
type Reporter interface {
	Report(d Diagnostic)
}
