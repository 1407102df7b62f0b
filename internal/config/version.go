package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a Quill language version in MAJOR.MINOR form.
type Version struct {
	Major int
	Minor int
}

// Language version milestones referenced by the declaration checkers.
var (
	// EnumEntryNestingVersion is the version since which enum entries may
	// only host inner classes and companions.
	EnumEntryNestingVersion = Version{Major: 1, Minor: 2}

	// CurrentVersion is the default language version.
	CurrentVersion = Version{Major: 1, Minor: 4}
)

// ParseVersion parses "MAJOR.MINOR".
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, fmt.Errorf("invalid language version %q: expected MAJOR.MINOR", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("invalid language version %q: %w", s, err)
	}
	min, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, fmt.Errorf("invalid language version %q: %w", s, err)
	}
	if maj < 0 || min < 0 {
		return Version{}, fmt.Errorf("invalid language version %q: components must be non-negative", s)
	}
	return Version{Major: maj, Minor: min}, nil
}

// AtLeast reports whether v >= other.
func (v Version) AtLeast(other Version) bool {
	if v.Major != other.Major {
		return v.Major > other.Major
	}
	return v.Minor >= other.Minor
}

// String returns the MAJOR.MINOR form.
func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// UnmarshalYAML decodes a version from its string form.
func (v *Version) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseVersion(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// MarshalYAML encodes the version as a string.
func (v Version) MarshalYAML() (any, error) {
	return v.String(), nil
}
