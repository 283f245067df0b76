package inventory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleReservations() []Reservation {
	return []Reservation{
		{Instances: []Instance{{
			PublicIPAddress: ip("52.59.188.175"),
			Tags: []Tag{
				{Key: "Name", Value: "Test Inventory"},
				{Key: "size", Value: "XXS"},
			},
		}}},
		{Instances: []Instance{{
			PublicIPAddress: ip("52.59.188.114"),
			Tags: []Tag{
				{Key: "Name", Value: "Test Inventory II"},
				{Key: "size", Value: "M"},
			},
		}}},
	}
}

func sampleGroups() map[string][]string {
	return map[string][]string{
		"tag_Name_Test_Inventory":    {"52.59.188.175"},
		"tag_size_XXS":               {"52.59.188.175"},
		"tag_Name_Test_Inventory_II": {"52.59.188.114"},
		"tag_size_M":                 {"52.59.188.114"},
	}
}

func staticProvider(reservations []Reservation) Provider {
	return ProviderFunc(func(context.Context) ([]Reservation, error) {
		return reservations, nil
	})
}

func TestFlatten(t *testing.T) {
	a, b, c := Instance{PublicIPAddress: ip("a")}, Instance{PublicIPAddress: ip("b")}, Instance{PublicIPAddress: ip("c")}

	got := Flatten([]Reservation{
		{Instances: []Instance{a, b}},
		{},
		{Instances: []Instance{c}},
	})

	assert.Equal(t, []Instance{a, b, c}, got)
	assert.Empty(t, Flatten(nil))
}

func TestRun(t *testing.T) {
	reservations := sampleReservations()
	reservations = append(reservations, Reservation{Instances: []Instance{{}}})

	doc, err := Run(context.Background(), staticProvider(reservations))
	require.NoError(t, err)

	assert.Equal(t, map[string]map[string]any{}, doc.Meta.HostVars)
	assert.Equal(t, sampleGroups(), doc.Groups)
}

func TestRunDropsInstancesWithoutAddress(t *testing.T) {
	reservations := sampleReservations()
	reservations[0].Instances = append(reservations[0].Instances, Instance{
		Tags: []Tag{{Key: "property", Value: "no_public_ip_address"}},
	})

	doc, err := Run(context.Background(), staticProvider(reservations))
	require.NoError(t, err)

	assert.Equal(t, sampleGroups(), doc.Groups)
	assert.NotContains(t, doc.Groups, "tag_property_no_public_ip_address")
}

func TestRunKeepsAddressedInstancesInSharedGroup(t *testing.T) {
	reservations := []Reservation{{Instances: []Instance{
		{Tags: []Tag{{Key: "Role", Value: "web"}}},
		{PublicIPAddress: ip("10.0.0.1"), Tags: []Tag{{Key: "Role", Value: "web"}}},
	}}}

	doc, err := Run(context.Background(), staticProvider(reservations))
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{"tag_Role_web": {"10.0.0.1"}}, doc.Groups)
}

func TestRunDoesNotModifyReservations(t *testing.T) {
	reservations := sampleReservations()
	before := sampleReservations()

	_, err := Run(context.Background(), staticProvider(reservations))
	require.NoError(t, err)

	assert.Equal(t, before, reservations)
}

func TestRunProviderError(t *testing.T) {
	providerErr := errors.New("access denied")
	provider := ProviderFunc(func(context.Context) ([]Reservation, error) {
		return nil, providerErr
	})

	doc, err := Run(context.Background(), provider)

	assert.Nil(t, doc)
	assert.Same(t, providerErr, err)
}

func TestRunIsStateless(t *testing.T) {
	provider := staticProvider(sampleReservations())

	first, err := Run(context.Background(), provider)
	require.NoError(t, err)
	second, err := Run(context.Background(), provider)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	first.Groups["tag_extra"] = []string{"10.9.9.9"}
	assert.NotContains(t, second.Groups, "tag_extra")
}
