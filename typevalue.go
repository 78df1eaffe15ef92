package wirenum

import (
	"encoding/binary"
	"errors"
	"math"
)

// MaxMembers bounds the declaration count accepted when decoding a type
// value, so a corrupt length prefix cannot drive a huge allocation.
const MaxMembers = 100_000

var errBadTypeValue = errors.New("bad type value encoding")

// EncodeTypeValue returns the canonical binary form of a type
// definition: the type name followed by each declared (name, value) pair
// in declaration order, uvarint-framed.  Two definitions encode to equal
// byte strings exactly when Define would produce interchangeable Types,
// so the encoding doubles as the structural interning key within a
// Context and as the transfer form between Contexts.
func EncodeTypeValue(t *Type) []byte {
	b := appendCounted(nil, t.name)
	b = binary.AppendUvarint(b, uint64(len(t.names)))
	for i, name := range t.names {
		b = appendCounted(b, name)
		b = binary.AppendVarint(b, int64(t.members[i].value))
	}
	return b
}

func appendCounted(b []byte, s string) []byte {
	b = binary.AppendUvarint(b, uint64(len(s)))
	return append(b, s...)
}

func decodeTypeValue(tv []byte) (string, []Def, error) {
	name, tv, err := decodeCounted(tv)
	if err != nil {
		return "", nil, err
	}
	n, tv, err := decodeUvarint(tv)
	if err != nil || n > MaxMembers {
		return "", nil, errBadTypeValue
	}
	defs := make([]Def, 0, n)
	for k := uint64(0); k < n; k++ {
		var defName string
		defName, tv, err = decodeCounted(tv)
		if err != nil {
			return "", nil, err
		}
		var v int64
		v, tv, err = decodeVarint(tv)
		if err != nil || v < math.MinInt32 || v > math.MaxInt32 {
			return "", nil, errBadTypeValue
		}
		defs = append(defs, Def{Name: defName, Value: int32(v)})
	}
	if len(tv) != 0 {
		return "", nil, errBadTypeValue
	}
	return name, defs, nil
}

func decodeCounted(tv []byte) (string, []byte, error) {
	n, tv, err := decodeUvarint(tv)
	if err != nil || n > uint64(len(tv)) {
		return "", nil, errBadTypeValue
	}
	return string(tv[:n]), tv[n:], nil
}

func decodeUvarint(tv []byte) (uint64, []byte, error) {
	u, n := binary.Uvarint(tv)
	if n <= 0 {
		return 0, nil, errBadTypeValue
	}
	return u, tv[n:], nil
}

func decodeVarint(tv []byte) (int64, []byte, error) {
	v, n := binary.Varint(tv)
	if n <= 0 {
		return 0, nil, errBadTypeValue
	}
	return v, tv[n:], nil
}
