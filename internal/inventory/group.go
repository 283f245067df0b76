package inventory

import "sort"

// Groups maps a group key to the public addresses of its instances. Before
// Filter runs, an address may be nil.
type Groups map[string][]*string

// Keys returns the group keys in ascending order.
func (g Groups) Keys() []string {
	keys := make([]string, 0, len(g))
	for key := range g {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GroupByTag groups instances by their value for the tag name. Instances
// without the tag are skipped; nil addresses are kept for Filter to drop.
func GroupByTag(name string, instances []Instance) Groups {
	groups := Groups{}
	for _, instance := range instances {
		value, ok := ExtractTag(instance, name)
		if !ok {
			continue
		}
		key, ok := NormalizeKey(name, value)
		if !ok {
			continue
		}
		groups[key] = append(groups[key], instance.PublicIPAddress)
	}
	return groups
}

// Assemble groups instances by every tag name found in the fleet.
//
// Groups are merged key by key in discovery order. When two tag names
// normalize to the same key, for example "Instance-Type" and "Instance_Type",
// the group of the later name replaces the earlier one; address lists are not
// combined.
func Assemble(instances []Instance) Groups {
	merged := Groups{}
	for _, name := range DiscoverTagNames(instances).Names() {
		for key, addresses := range GroupByTag(name, instances) {
			merged[key] = addresses
		}
	}
	return merged
}

// Filter returns a copy of groups without nil addresses and without groups
// that end up empty. The input is not modified.
func Filter(groups Groups) Groups {
	filtered := Groups{}
	for key, addresses := range groups {
		var kept []*string
		for _, address := range addresses {
			if address != nil {
				kept = append(kept, address)
			}
		}
		if len(kept) > 0 {
			filtered[key] = kept
		}
	}
	return filtered
}
