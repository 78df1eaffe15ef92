// Package wirenum implements closed, integer-backed enumeration types for
// schema-driven wire formats.  An enumeration is defined once, at
// initialization, from an ordered list of (name, value) declarations and
// is immutable thereafter.  Within one Type each distinct wire value is
// represented by exactly one Member so that member identity is pointer
// identity; names declared for an already-seen value alias the interned
// Member rather than creating a new one.  Lookup is bidirectional (by
// value and by name) and comes in a strict form, which fails for values
// the schema does not declare, and a tolerant form, which never fails and
// preserves unknown wire values so that readers stay compatible with
// schemas newer than themselves.
package wirenum

import (
	"fmt"
	"strconv"

	"golang.org/x/exp/slices"
)

// A MemberSet is the finite ordered collection view of an enumeration
// type, for consumers that iterate, measure, test containment, or index
// by name without caring which concrete Type they hold.
type MemberSet interface {
	Members() []*Member
	Len() int
	Contains(*Member) bool
	ByName(string) (*Member, error)
}

// A Type is a closed enumeration: a named, ordered set of integer-valued
// Members with interned identity.  A Type is constructed by Define or by
// a Builder and is immutable once constructed; all methods are safe for
// unsynchronized concurrent use after construction.
type Type struct {
	id      int
	name    string
	names   []string
	members []*Member
	byValue map[int32]*Member
	byName  map[string]*Member
}

var _ MemberSet = (*Type)(nil)

// ID returns the Type's identifier within the Context that interned it,
// or -1 for a Type defined outside any Context.
func (t *Type) ID() int {
	return t.id
}

func (t *Type) Name() string {
	return t.name
}

func (t *Type) String() string {
	return t.name
}

func (t *Type) GoString() string {
	return "<enum '" + t.name + "'>"
}

// Lookup returns the interned Member for wire value v and fails with an
// UnknownValueError when the type declares no member for v.  Decoders
// that must accept values from newer schema versions use TryValue
// instead and treat a Lookup failure as a decode error.
func (t *Type) Lookup(v int32) (*Member, error) {
	m, ok := t.byValue[v]
	if !ok {
		return nil, &UnknownValueError{Type: t, Value: v}
	}
	return m, nil
}

// TryValue returns a Member for wire value v and never fails.  Declared
// values resolve to their interned Member; any other value yields a
// fresh unnamed Member that carries v unchanged.  Synthesized Members
// are not interned, so repeated calls with the same unknown value return
// distinct but equal-valued instances.
func (t *Type) TryValue(v int32) *Member {
	if m, ok := t.byValue[v]; ok && m.typ == t {
		return m
	}
	return &Member{typ: t, value: v}
}

// Default returns the Member for wire value 0, the proto3 default for an
// unset enum field, synthesizing one if the type does not declare 0.
func (t *Type) Default() *Member {
	return t.TryValue(0)
}

// FromString returns the Member declared under name.  An undeclared name
// fails with an UnknownNameError; a resolved member owned by another
// Type fails with a TypeMismatchError, which indicates a defect in the
// caller and is unreachable for correctly constructed Types.
func (t *Type) FromString(name string) (*Member, error) {
	m, ok := t.byName[name]
	if !ok {
		return nil, &UnknownNameError{Type: t, Name: name, Suggestion: t.suggestion(name)}
	}
	if m.typ != t {
		return nil, &TypeMismatchError{Want: t, Got: m.typ}
	}
	return m, nil
}

// ByName is FromString with keyed-collection semantics: an undeclared
// name fails with an error wrapping ErrNotFound rather than a named
// error kind.
func (t *Type) ByName(name string) (*Member, error) {
	m, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("%s[%q]: %w", t.name, name, ErrNotFound)
	}
	return m, nil
}

// Members returns the Members in declaration order of their names.  A
// value declared under several names appears once per name, as the same
// interned Member each time.  The returned slice is a copy.
func (t *Type) Members() []*Member {
	return slices.Clone(t.members)
}

// ReverseMembers returns the Members sequence in reverse
// declaration order.
func (t *Type) ReverseMembers() []*Member {
	out := slices.Clone(t.members)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Names returns the declared names in declaration order.
func (t *Type) Names() []string {
	return slices.Clone(t.names)
}

// Len returns the number of declared names, counting aliases of one
// value separately.
func (t *Type) Len() int {
	return len(t.names)
}

// Contains reports whether m is a declared member of this exact Type.
// Members of other Types and Members synthesized by TryValue are not
// contained, even when their wire values are declared here.
func (t *Type) Contains(m *Member) bool {
	if m == nil || m.typ != t {
		return false
	}
	_, ok := t.byName[m.name]
	return ok
}

// UnmarshalMember resolves text produced by Member.MarshalText: a
// declared name, or a decimal wire value, which resolves tolerantly so
// unknown values written by a newer schema survive a text round trip.
func (t *Type) UnmarshalMember(text []byte) (*Member, error) {
	if m, ok := t.byName[string(text)]; ok && m.typ == t {
		return m, nil
	}
	v, err := strconv.ParseInt(string(text), 10, 32)
	if err != nil {
		return nil, &UnknownNameError{Type: t, Name: string(text), Suggestion: t.suggestion(string(text))}
	}
	return t.TryValue(int32(v)), nil
}
