package inventory

import (
	"strings"
	"unicode/utf16"
)

const groupKeyPrefix = "tag_"

// ExtractTag returns the value of the first tag on instance whose key equals
// name. Matching is exact and case-sensitive.
func ExtractTag(instance Instance, name string) (string, bool) {
	for _, tag := range instance.Tags {
		if tag.Key == name {
			return tag.Value, true
		}
	}
	return "", false
}

// NormalizeKey builds the group key "tag_<name>_<value>" with every character
// outside [0-9A-Za-z] replaced by an underscore. An empty value yields no key.
func NormalizeKey(name, value string) (string, bool) {
	if value == "" {
		return "", false
	}
	return sanitize(groupKeyPrefix + name + "_" + value), true
}

// sanitize replaces characters the way a global /[^0-9A-Za-z]/ replacement
// over UTF-16 text would: one underscore per code unit.
func sanitize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9', r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z':
			b.WriteRune(r)
		default:
			n := utf16.RuneLen(r)
			if n < 1 {
				n = 1
			}
			b.WriteString(strings.Repeat("_", n))
		}
	}
	return b.String()
}

// TagNames is an ordered set of tag names, kept in first-appearance order.
type TagNames struct {
	names []string
	seen  map[string]struct{}
}

// Add appends name unless it is already present. It reports whether name was
// added.
func (t *TagNames) Add(name string) bool {
	if t.seen == nil {
		t.seen = make(map[string]struct{})
	}
	if _, ok := t.seen[name]; ok {
		return false
	}
	t.seen[name] = struct{}{}
	t.names = append(t.names, name)
	return true
}

// Contains reports whether name is in the set.
func (t *TagNames) Contains(name string) bool {
	_, ok := t.seen[name]
	return ok
}

// Len returns the number of distinct names.
func (t *TagNames) Len() int { return len(t.names) }

// Names returns a copy of the names in first-appearance order.
func (t *TagNames) Names() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)
	return out
}

// DiscoverTagNames collects the distinct tag keys used anywhere in the fleet.
func DiscoverTagNames(instances []Instance) *TagNames {
	names := &TagNames{}
	for _, instance := range instances {
		for _, tag := range instance.Tags {
			names.Add(tag.Key)
		}
	}
	return names
}
