package wirenum

import (
	"fmt"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// qualifiedCacheSize bounds the per-Context cache of resolved
// "Type.MEMBER" references.
const qualifiedCacheSize = 512

// A Context interns enumeration Types for one schema session so that a
// given definition corresponds to exactly one *Type and type equivalence
// can be determined by pointer comparison.  (Type pointers from distinct
// Contexts obviously do not have this property; see TranslateType and
// Mapper.)  Generated code registers its types through Define at
// initialization; decode paths then look them up by id, by declared type
// name, or by qualified member name.  A Context is safe for concurrent
// use.
type Context struct {
	mu        sync.RWMutex
	byID      []*Type
	toType    map[string]*Type
	byName    map[string]*Type
	qualified *lru.Cache[string, *Member]
}

func NewContext() *Context {
	qualified, _ := lru.New[string, *Member](qualifiedCacheSize)
	return &Context{
		toType:    make(map[string]*Type),
		byName:    make(map[string]*Type),
		qualified: qualified,
	}
}

func (c *Context) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.byID = nil
	c.toType = make(map[string]*Type)
	c.byName = make(map[string]*Type)
	c.qualified.Purge()
}

// Define constructs an enumeration type as the package-level Define does
// and interns it in the Context.  Defining the same name with an
// identical declaration returns the previously interned Type; defining
// it with a different declaration fails with ErrTypeExists.
func (c *Context) Define(name string, defs []Def) (*Type, error) {
	typ, err := Define(name, defs)
	if err != nil {
		return nil, err
	}
	return c.enter(typ)
}

// enter interns typ, returning the existing Type when an identical
// definition is already present.
func (c *Context) enter(typ *Type) (*Type, error) {
	tv := string(EncodeTypeValue(typ))
	c.mu.Lock()
	defer c.mu.Unlock()
	if existing, ok := c.toType[tv]; ok {
		return existing, nil
	}
	if _, ok := c.byName[typ.name]; ok {
		return nil, fmt.Errorf("enum %s: %w", typ.name, ErrTypeExists)
	}
	typ.id = len(c.byID)
	c.byID = append(c.byID, typ)
	c.toType[tv] = typ
	c.byName[typ.name] = typ
	return typ, nil
}

// LookupType returns the Type interned under id.
func (c *Context) LookupType(id int) (*Type, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if id < 0 || id >= len(c.byID) {
		return nil, fmt.Errorf("type id (%d) not in context (size %d)", id, len(c.byID))
	}
	return c.byID[id], nil
}

// LookupTypeName returns the Type interned under the declared type name,
// or nil.
func (c *Context) LookupTypeName(name string) *Type {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.byName[name]
}

// LookupMember resolves a qualified "Type.MEMBER" reference, the form
// text-format and JSON decoders read.  Resolved references are cached,
// so the per-field cost on a hot decode path is one cache probe.
func (c *Context) LookupMember(qualified string) (*Member, error) {
	if m, ok := c.qualified.Get(qualified); ok {
		return m, nil
	}
	typeName, memberName, ok := strings.Cut(qualified, ".")
	if !ok {
		return nil, fmt.Errorf("bad qualified member %q: %w", qualified, ErrNotFound)
	}
	typ := c.LookupTypeName(typeName)
	if typ == nil {
		return nil, fmt.Errorf("unknown enum %q: %w", typeName, ErrNotFound)
	}
	m, err := typ.FromString(memberName)
	if err != nil {
		return nil, err
	}
	c.qualified.Add(qualified, m)
	return m, nil
}

// LookupByValue returns the Type indicated by a canonical type value,
// interning it first if absent.  This translates the context-independent
// encoding produced by EncodeTypeValue into the receiver Context.
func (c *Context) LookupByValue(tv []byte) (*Type, error) {
	c.mu.RLock()
	typ, ok := c.toType[string(tv)]
	c.mu.RUnlock()
	if ok {
		return typ, nil
	}
	name, defs, err := decodeTypeValue(tv)
	if err != nil {
		return nil, err
	}
	typ, err = Define(name, defs)
	if err != nil {
		return nil, err
	}
	return c.enter(typ)
}

// TranslateType takes a type from another Context and creates and
// returns that type in this Context.
func (c *Context) TranslateType(ext *Type) (*Type, error) {
	return c.LookupByValue(EncodeTypeValue(ext))
}
