package wirenum

import (
	"fmt"

	"go.uber.org/multierr"
)

// A Def declares one named value of an enumeration.
type Def struct {
	Name  string
	Value int32
}

// Define constructs an enumeration type from defs, in order.  The first
// name declared for a value owns the interned Member; later names for
// the same value become aliases of it.  A name declared more than once
// is a DuplicateNameError, and every collision in defs is reported, not
// just the first.
func Define(name string, defs []Def) (*Type, error) {
	b := NewBuilder(name)
	for _, def := range defs {
		if err := b.Add(def.Name, def.Value); err != nil {
			return nil, err
		}
	}
	return b.Build()
}

// MustDefine is Define for generated code run at package
// initialization; it panics on a malformed declaration.
func MustDefine(name string, defs ...Def) *Type {
	typ, err := Define(name, defs)
	if err != nil {
		panic(err)
	}
	return typ
}

// A Builder accumulates (name, value) declarations for one enumeration
// type.  A successful Build seals the Builder: the Type it returned is
// immutable and the Builder cannot be reused to grow it.
type Builder struct {
	typ    *Type
	sealed bool
	errs   error
}

func NewBuilder(name string) *Builder {
	return &Builder{
		typ: &Type{
			id:      -1,
			name:    name,
			byValue: make(map[int32]*Member),
			byName:  make(map[string]*Member),
		},
	}
}

// Add declares name for value.  Name collisions are deferred to Build so
// that one Build reports every problem in the declaration; Add itself
// fails only with ErrSealed, after the Builder has built its Type.
func (b *Builder) Add(name string, value int32) error {
	if b.sealed {
		return fmt.Errorf("%s: add %q: %w", b.typ.name, name, ErrSealed)
	}
	t := b.typ
	if name == "" {
		// An empty name is reserved for members synthesized by TryValue.
		b.errs = multierr.Append(b.errs, fmt.Errorf("enum %s: empty member name for value %d", t.name, value))
		return nil
	}
	if prev, ok := t.byName[name]; ok {
		b.errs = multierr.Append(b.errs, &DuplicateNameError{
			Type:  t.name,
			Name:  name,
			Value: prev.value,
			Dup:   value,
		})
		return nil
	}
	m, ok := t.byValue[value]
	if !ok {
		m = &Member{typ: t, name: name, value: value}
		t.byValue[value] = m
	}
	t.byName[name] = m
	t.names = append(t.names, name)
	t.members = append(t.members, m)
	return nil
}

// Build returns the constructed Type and seals the Builder.  When any
// Add collided, Build fails with the accumulated DuplicateNameErrors and
// the Type is not produced.
func (b *Builder) Build() (*Type, error) {
	if b.sealed {
		return nil, fmt.Errorf("%s: %w", b.typ.name, ErrSealed)
	}
	if b.errs != nil {
		return nil, b.errs
	}
	b.sealed = true
	return b.typ, nil
}
