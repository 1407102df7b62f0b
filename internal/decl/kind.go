package decl

// ClassKind tags the flavor of a class-like declaration.
type ClassKind int

const (
	KindClass ClassKind = iota
	KindInterface
	KindEnumClass
	KindEnumEntry
	KindAnnotationClass
	KindObject
)

// String returns the source-level keyword form of the kind.
func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindEnumClass:
		return "enum class"
	case KindEnumEntry:
		return "enum entry"
	case KindAnnotationClass:
		return "annotation class"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Label returns the human-readable label used in diagnostic messages.
func (k ClassKind) Label() string {
	switch k {
	case KindClass:
		return "Class"
	case KindInterface:
		return "Interface"
	case KindEnumClass:
		return "Enum class"
	case KindEnumEntry:
		return "Enum entry"
	case KindAnnotationClass:
		return "Annotation class"
	case KindObject:
		return "Object"
	default:
		return "Declaration"
	}
}

// Visibility is the declared visibility of a declaration.
type Visibility int

const (
	Public Visibility = iota
	Internal
	Protected
	Private
)

// String returns the source-level keyword form of the visibility.
func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Internal:
		return "internal"
	case Protected:
		return "protected"
	case Private:
		return "private"
	default:
		return "unknown"
	}
}
