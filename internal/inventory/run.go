package inventory

import "context"

// Provider lists the instances of a compute provider grouped in reservations.
type Provider interface {
	Reservations(ctx context.Context) ([]Reservation, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(ctx context.Context) ([]Reservation, error)

// Reservations calls f.
func (f ProviderFunc) Reservations(ctx context.Context) ([]Reservation, error) {
	return f(ctx)
}

// Build turns reservations into a document: flatten, group by every tag,
// drop missing addresses and wrap the result in the "_meta" envelope.
func Build(reservations []Reservation) *Document {
	instances := Flatten(reservations)
	return NewDocument(Filter(Assemble(instances)))
}

// Run fetches the provider's current reservations and builds the document.
// A provider error is returned as is.
func Run(ctx context.Context, provider Provider) (*Document, error) {
	reservations, err := provider.Reservations(ctx)
	if err != nil {
		return nil, err
	}
	return Build(reservations), nil
}
