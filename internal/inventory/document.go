package inventory

import (
	"bytes"
	"encoding/json"
	"io"
	"sort"
	"strings"
)

// MetaKey is the top-level key holding host variables.
const MetaKey = "_meta"

// Meta is the "_meta" entry of a dynamic inventory. Host variables are
// always empty.
type Meta struct {
	HostVars map[string]map[string]any `json:"hostvars"`
}

// Document is a dynamic inventory: the "_meta" entry plus one entry per group.
type Document struct {
	Meta   Meta
	Groups map[string][]string
}

// NewDocument wraps filtered groups in the "_meta" envelope.
func NewDocument(groups Groups) *Document {
	doc := &Document{
		Meta:   Meta{HostVars: map[string]map[string]any{}},
		Groups: make(map[string][]string, len(groups)),
	}
	for _, key := range groups.Keys() {
		addresses := make([]string, 0, len(groups[key]))
		for _, address := range groups[key] {
			if address != nil {
				addresses = append(addresses, *address)
			}
		}
		if len(addresses) > 0 && key != MetaKey {
			doc.Groups[key] = addresses
		}
	}
	return doc
}

// GroupKeys returns the group keys in ascending order.
func (d *Document) GroupKeys() []string {
	keys := make([]string, 0, len(d.Groups))
	for key := range d.Groups {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// HostCount returns the number of distinct addresses across all groups.
func (d *Document) HostCount() int {
	seen := map[string]struct{}{}
	for _, addresses := range d.Groups {
		for _, address := range addresses {
			seen[address] = struct{}{}
		}
	}
	return len(seen)
}

// MarshalJSON writes "_meta" first and then the groups in key order.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	meta := d.Meta
	if meta.HostVars == nil {
		meta.HostVars = map[string]map[string]any{}
	}
	if err := writeMember(&buf, MetaKey, meta); err != nil {
		return nil, err
	}
	for _, key := range d.GroupKeys() {
		buf.WriteByte(',')
		if err := writeMember(&buf, key, d.Groups[key]); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func writeMember(buf *bytes.Buffer, key string, value any) error {
	k, err := json.Marshal(key)
	if err != nil {
		return err
	}
	v, err := json.Marshal(value)
	if err != nil {
		return err
	}
	buf.Write(k)
	buf.WriteByte(':')
	buf.Write(v)
	return nil
}

// WriteJSON encodes d to w, indented by indent spaces per level. An indent of
// zero or less writes compact JSON.
func (d *Document) WriteJSON(w io.Writer, indent int) error {
	return writeJSON(w, d, indent)
}

// WriteHostVars writes the variables of a single host, which are always empty.
func WriteHostVars(w io.Writer, indent int) error {
	return writeJSON(w, map[string]any{}, indent)
}

func writeJSON(w io.Writer, v any, indent int) error {
	enc := json.NewEncoder(w)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}
	return enc.Encode(v)
}
