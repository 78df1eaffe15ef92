package wirenum

import (
	"errors"
	"fmt"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrSealed is returned when a caller tries to grow a Builder whose
	// Type has already been built.  Types and Members carry no mutators,
	// so sealing the Builder closes the one mutation avenue the API
	// would otherwise leave open.
	ErrSealed = errors.New("enum type is sealed")

	// ErrNotFound is the generic keyed-access failure returned by
	// Type.ByName and Context.LookupMember.
	ErrNotFound = errors.New("not found")

	// ErrTypeExists is returned by Context.Define when a type name is
	// already bound to a structurally different definition.
	ErrTypeExists = errors.New("type exists with different definition")
)

// A DuplicateNameError reports a name declared more than once within a
// single type definition.
type DuplicateNameError struct {
	Type  string
	Name  string
	Value int32 // value bound by the first declaration
	Dup   int32 // value carried by the colliding declaration
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("enum %s: duplicate name %q (values %d and %d)",
		e.Type, e.Name, e.Value, e.Dup)
}

// An UnknownValueError reports a strict lookup for a wire value the type
// does not declare.  Decoders that must tolerate newer schema versions
// use TryValue and never see this error.
type UnknownValueError struct {
	Type  *Type
	Value int32
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%d is not a valid %s", e.Value, e.Type.name)
}

// An UnknownNameError reports a name lookup for an undeclared name.
// When a declared name is close to the requested one, Suggestion holds
// it.
type UnknownNameError struct {
	Type       *Type
	Name       string
	Suggestion string
}

func (e *UnknownNameError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown name %q for enum %s (did you mean %q?)",
			e.Name, e.Type.name, e.Suggestion)
	}
	return fmt.Sprintf("unknown name %q for enum %s", e.Name, e.Type.name)
}

// A TypeMismatchError reports a member resolved through one Type but
// owned by another.  It indicates a defect in the caller mixing Types,
// not bad wire data: correctly constructed Types cannot produce it.
type TypeMismatchError struct {
	Want *Type
	Got  *Type
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("member of enum %s used where enum %s is required",
		e.Got.name, e.Want.name)
}

// suggestion returns the declared name closest to name, or "" when
// nothing is close enough to be a plausible misspelling.
func (t *Type) suggestion(name string) string {
	const maxDistance = 3
	best, bestDist := "", maxDistance+1
	for _, n := range t.names {
		if d := levenshtein.ComputeDistance(name, n); d < bestDist {
			best, bestDist = n, d
		}
	}
	return best
}
