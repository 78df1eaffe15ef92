package wirenum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeValueRoundTrip(t *testing.T) {
	typ, err := Define("Color", colorDefs)
	require.NoError(t, err)

	tv := EncodeTypeValue(typ)
	name, defs, err := decodeTypeValue(tv)
	require.NoError(t, err)
	assert.Equal(t, "Color", name)
	assert.Equal(t, colorDefs, defs)
}

func TestTypeValueCanonical(t *testing.T) {
	a, err := Define("Color", colorDefs)
	require.NoError(t, err)
	b, err := Define("Color", colorDefs)
	require.NoError(t, err)
	assert.NotSame(t, a, b)
	assert.Equal(t, EncodeTypeValue(a), EncodeTypeValue(b))

	// Declaration order is part of the canonical form.
	c, err := Define("Color", []Def{
		{Name: "GREEN", Value: 1},
		{Name: "RED", Value: 0},
		{Name: "CRIMSON", Value: 0},
	})
	require.NoError(t, err)
	assert.NotEqual(t, EncodeTypeValue(a), EncodeTypeValue(c))
}

func TestTypeValueBadEncoding(t *testing.T) {
	typ, err := Define("Color", colorDefs)
	require.NoError(t, err)
	tv := EncodeTypeValue(typ)

	for _, tc := range []struct {
		name string
		tv   []byte
	}{
		{"empty", nil},
		{"truncated", tv[:len(tv)-1]},
		{"trailing garbage", append(tv, 0)},
		{"huge count", []byte{0, 0xff, 0xff, 0xff, 0xff, 0x7f}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := decodeTypeValue(tc.tv)
			assert.Error(t, err)
		})
	}
}
