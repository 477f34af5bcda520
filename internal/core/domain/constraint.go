package domain

import (
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.trai.ch/zerr"
)

// DefaultConstraint accepts any released version.
const DefaultConstraint = ">= 0.0.0"

// Constraint is a parsed version constraint such as "~> 1.1.0" or ">= 0.0.4".
// The zero value behaves like DefaultConstraint.
type Constraint struct {
	raw string
	set *semver.Constraints
}

// ParseConstraint parses text into a Constraint. Empty text yields DefaultConstraint.
func ParseConstraint(text string) (Constraint, error) {
	raw := strings.TrimSpace(text)
	if raw == "" {
		raw = DefaultConstraint
	}

	set, err := semver.NewConstraint(raw)
	if err != nil {
		return Constraint{}, zerr.With(zerr.Wrap(ErrInvalidConstraint, err.Error()), "constraint", text)
	}

	return Constraint{raw: raw, set: set}, nil
}

// MustParseConstraint is like ParseConstraint but panics on malformed input.
func MustParseConstraint(text string) Constraint {
	c, err := ParseConstraint(text)
	if err != nil {
		panic(err)
	}
	return c
}

// ExactConstraint pins a single version.
func ExactConstraint(version string) (Constraint, error) {
	return ParseConstraint("= " + version)
}

// Satisfies reports whether version meets the constraint.
// Versions that cannot be parsed never satisfy a constraint.
func (c Constraint) Satisfies(version string) bool {
	v, err := semver.NewVersion(version)
	if err != nil {
		return false
	}
	if c.set == nil {
		return true
	}
	return c.set.Check(v)
}

// String returns the constraint as written.
func (c Constraint) String() string {
	if c.raw == "" {
		return DefaultConstraint
	}
	return c.raw
}

// MarshalText implements encoding.TextMarshaler.
func (c Constraint) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Constraint) UnmarshalText(text []byte) error {
	parsed, err := ParseConstraint(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// CompareVersions orders two version strings. Unparsable versions sort first.
func CompareVersions(a, b string) int {
	va, errA := semver.NewVersion(a)
	vb, errB := semver.NewVersion(b)
	switch {
	case errA != nil && errB != nil:
		return strings.Compare(a, b)
	case errA != nil:
		return -1
	case errB != nil:
		return 1
	}
	return va.Compare(vb)
}

// ValidVersion reports whether s is a parsable version.
func ValidVersion(s string) bool {
	_, err := semver.NewVersion(s)
	return err == nil
}
