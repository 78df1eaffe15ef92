package wirenum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wirenum/wirenum"
	"go.uber.org/multierr"
)

func TestBuilderDuplicateNames(t *testing.T) {
	b := wirenum.NewBuilder("Status")
	require.NoError(t, b.Add("OK", 0))
	require.NoError(t, b.Add("OK", 1))
	require.NoError(t, b.Add("FAILED", 2))
	require.NoError(t, b.Add("FAILED", 2))

	typ, err := b.Build()
	assert.Nil(t, typ)
	errs := multierr.Errors(err)
	require.Len(t, errs, 2)

	var dup *wirenum.DuplicateNameError
	require.ErrorAs(t, errs[0], &dup)
	assert.Equal(t, "Status", dup.Type)
	assert.Equal(t, "OK", dup.Name)
	assert.Equal(t, int32(0), dup.Value)
	assert.Equal(t, int32(1), dup.Dup)
	assert.EqualError(t, dup, `enum Status: duplicate name "OK" (values 0 and 1)`)

	// A redeclaration is rejected even when the value matches.
	require.ErrorAs(t, errs[1], &dup)
	assert.Equal(t, "FAILED", dup.Name)
}

func TestBuilderSealed(t *testing.T) {
	b := wirenum.NewBuilder("Status")
	require.NoError(t, b.Add("OK", 0))
	typ, err := b.Build()
	require.NoError(t, err)
	require.NotNil(t, typ)

	assert.ErrorIs(t, b.Add("LATE", 1), wirenum.ErrSealed)
	_, err = b.Build()
	assert.ErrorIs(t, err, wirenum.ErrSealed)

	// The built Type is unaffected by the rejected mutation.
	assert.Equal(t, 1, typ.Len())
	_, err = typ.FromString("LATE")
	assert.Error(t, err)
}

func TestMustDefine(t *testing.T) {
	typ := wirenum.MustDefine("Status", wirenum.Def{Name: "OK", Value: 0})
	assert.Equal(t, "Status", typ.Name())

	assert.Panics(t, func() {
		wirenum.MustDefine("Status",
			wirenum.Def{Name: "OK", Value: 0},
			wirenum.Def{Name: "OK", Value: 1},
		)
	})
}

func TestDefineEmptyName(t *testing.T) {
	_, err := wirenum.Define("Status", []wirenum.Def{{Name: "", Value: 0}})
	assert.EqualError(t, err, "enum Status: empty member name for value 0")
}

func TestDefineEmpty(t *testing.T) {
	typ, err := wirenum.Define("Empty", nil)
	require.NoError(t, err)
	assert.Equal(t, 0, typ.Len())
	assert.Empty(t, typ.Members())

	m := typ.TryValue(0)
	assert.False(t, m.Known())
	_, err = typ.Lookup(0)
	assert.Error(t, err)
}
