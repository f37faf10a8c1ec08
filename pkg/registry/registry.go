package registry

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/ubl-sec/container-ids/pkg/identifier"
)

// Containers is the fixed set of logical containers known to the
// platform. Declaration order is significant: the emitted mapping
// preserves it.
var Containers = []string{
	"C.Messenger",
	"C.Jobs",
	"C.Office",
	"C.Policy",
	"C.Runner",
}

// Mapping associates container names with their derived identifiers,
// preserving the order of the name list it was built from.
type Mapping struct {
	names []string
	ids   map[string]string
}

// Build derives an identifier for each name and assembles the
// ordered mapping, one entry per name.
func Build(names []string) *Mapping {
	m := &Mapping{
		names: names,
		ids:   make(map[string]string, len(names)),
	}
	for _, name := range names {
		m.ids[name] = identifier.Derive(name)
	}
	return m
}

// Names returns the container names in declaration order.
func (m *Mapping) Names() []string {
	return m.names
}

// Get returns the identifier for the given container name.
func (m *Mapping) Get(name string) (string, bool) {
	id, ok := m.ids[name]
	return id, ok
}

func (m *Mapping) Len() int {
	return len(m.names)
}

// MarshalJSON emits the mapping as a JSON object with keys in
// declaration order. The container list is not alphabetical, so
// plain map marshaling (which sorts keys) would reorder it.
func (m *Mapping) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range m.names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(m.ids[name])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Write serializes the mapping to w with 2-space indentation.
func (m *Mapping) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(m)
}
