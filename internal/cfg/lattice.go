package cfg

// LatticeValue summarizes what is known about one property's initialization
// at a program point. Values are ordered NotInitialized < MaybeInitialized <
// DefinitelyInitialized.
type LatticeValue int

const (
	// NotInitialized: no path reaching here assigns the property.
	NotInitialized LatticeValue = iota
	// MaybeInitialized: some but not all paths assign the property.
	MaybeInitialized
	// DefinitelyInitialized: every path reaching here assigns the property.
	DefinitelyInitialized
)

// IsDefinitelyInitialized reports whether the property is proven initialized
// on all paths.
func (v LatticeValue) IsDefinitelyInitialized() bool {
	return v == DefinitelyInitialized
}

// Meet combines values arriving over alternative paths (control-flow join).
func (v LatticeValue) Meet(other LatticeValue) LatticeValue {
	if other < v {
		return other
	}
	return v
}

// Join combines values accumulated sequentially along one path.
func (v LatticeValue) Join(other LatticeValue) LatticeValue {
	if other > v {
		return other
	}
	return v
}

// String returns a short description for debugging output.
func (v LatticeValue) String() string {
	switch v {
	case DefinitelyInitialized:
		return "definitely-initialized"
	case MaybeInitialized:
		return "maybe-initialized"
	default:
		return "not-initialized"
	}
}
