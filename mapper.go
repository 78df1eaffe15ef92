package wirenum

import "sync"

// A Mapper caches translations of enumeration types from a foreign
// Context into a local one, indexed by the foreign Context's type ids.
// Decoders streaming definitions from another session use a Mapper so
// that each foreign type is translated once.
type Mapper struct {
	out   *Context
	mu    sync.RWMutex
	types []*Type
}

func NewMapper(out *Context) *Mapper {
	return &Mapper{out: out}
}

// Lookup translates a type by its id in the foreign Context.  If the
// binding has not yet been entered, nil is returned and Enter should be
// called to create it.  There is a race when two threads Enter the same
// id, but it is benign: the output Context returns the same interned
// pointer both times, so the second entry changes nothing.
func (m *Mapper) Lookup(id int) *Type {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if id >= 0 && id < len(m.types) {
		return m.types[id]
	}
	return nil
}

// Enter translates ext into the output Context and binds it to id.
func (m *Mapper) Enter(id int, ext *Type) (*Type, error) {
	typ, err := m.out.TranslateType(ext)
	if err != nil {
		return nil, err
	}
	m.EnterType(id, typ)
	return typ, nil
}

func (m *Mapper) EnterType(id int, typ *Type) {
	m.mu.Lock()
	if id >= cap(m.types) {
		grown := make([]*Type, id+1, 2*(id+1))
		copy(grown, m.types)
		m.types = grown
	} else if id >= len(m.types) {
		m.types = m.types[:id+1]
	}
	m.types[id] = typ
	m.mu.Unlock()
}
