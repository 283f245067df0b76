package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fl4re/ec2-inventory/internal/inventory"
	"github.com/fl4re/ec2-inventory/internal/messages"
)

func TestLoadInventoryCmd(t *testing.T) {
	address := "10.0.0.1"
	provider := inventory.ProviderFunc(func(context.Context) ([]inventory.Reservation, error) {
		return []inventory.Reservation{{Instances: []inventory.Instance{{
			PublicIPAddress: &address,
			Tags:            []inventory.Tag{{Key: "Role", Value: "web"}},
		}}}}, nil
	})

	msg := LoadInventoryCmd(context.Background(), provider, nil)()

	loaded, ok := msg.(messages.InventoryLoadedMsg)
	require.True(t, ok, "unexpected message %T", msg)
	assert.Equal(t, map[string][]string{"tag_Role_web": {"10.0.0.1"}}, loaded.Groups)
}

func TestLoadInventoryCmdError(t *testing.T) {
	providerErr := errors.New("throttled")
	provider := inventory.ProviderFunc(func(context.Context) ([]inventory.Reservation, error) {
		return nil, providerErr
	})

	msg := LoadInventoryCmd(context.Background(), provider, nil)()

	errMsg, ok := msg.(messages.ErrMsg)
	require.True(t, ok, "unexpected message %T", msg)
	assert.ErrorIs(t, errMsg, providerErr)
}

func TestSshArgs(t *testing.T) {
	assert.Equal(t, []string{"-i", "/keys/deploy.pem", "ec2-user@10.0.0.1"}, SshArgs("ec2-user", "/keys/deploy.pem", "10.0.0.1"))
	assert.Equal(t, []string{"10.0.0.1"}, SshArgs("", "", "10.0.0.1"))
}

func TestSshIntoHostCmd(t *testing.T) {
	assert.NotNil(t, SshIntoHostCmd("ec2-user", "", "10.0.0.1"))
}
