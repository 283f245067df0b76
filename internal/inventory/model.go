package inventory

import "errors"

// ErrMalformedInstance is returned when a provider hands back a record that
// cannot be an instance at all, such as a nil reservation or instance.
var ErrMalformedInstance = errors.New("malformed instance record")

// Tag is a user-assigned label on an instance.
type Tag struct {
	Key   string
	Value string
}

// Instance is the part of a compute instance the inventory cares about.
type Instance struct {
	Tags []Tag
	// PublicIPAddress is nil when the instance has no public address.
	PublicIPAddress *string
}

// Reservation groups the instances started by one launch request.
type Reservation struct {
	Instances []Instance
}

// Flatten returns every instance of every reservation, in reservation order
// and then instance order.
func Flatten(reservations []Reservation) []Instance {
	var instances []Instance
	for _, reservation := range reservations {
		instances = append(instances, reservation.Instances...)
	}
	return instances
}
