package wirenum

import "strconv"

// A Member is one declared value of an enumeration Type, or a
// synthesized holder for a wire value the Type does not declare.
// Declared Members are interned: within one Type there is exactly one
// Member per distinct wire value, shared by every name aliased to that
// value, so equality of declared Members is pointer equality.  A Member
// is immutable; copying the pointer is the only copy there is.
type Member struct {
	typ   *Type
	name  string
	value int32
}

// Type returns the enumeration that owns or synthesized this Member.
func (m *Member) Type() *Type {
	return m.typ
}

// Name returns the member's declared name, or the empty string for a
// Member synthesized by TryValue.  An aliased value reports the first
// name declared for it.
func (m *Member) Name() string {
	return m.name
}

// Value returns the member's wire value.
func (m *Member) Value() int32 {
	return m.value
}

// Known reports whether m was declared by its Type rather than
// synthesized for an undeclared wire value.
func (m *Member) Known() bool {
	return m.name != ""
}

func (m *Member) String() string {
	if m.name == "" {
		return "None"
	}
	return m.name
}

func (m *Member) GoString() string {
	return m.typ.name + "." + m.String()
}

// MarshalText implements encoding.TextMarshaler.  Declared members emit
// their name; synthesized members emit their decimal wire value so that
// unknown values survive a text round trip.  Type.UnmarshalMember
// reverses both forms.
func (m *Member) MarshalText() ([]byte, error) {
	if m.name != "" {
		return []byte(m.name), nil
	}
	return strconv.AppendInt(nil, int64(m.value), 10), nil
}
