package messages

import "github.com/fl4re/ec2-inventory/internal/inventory"

// messages are used to pass data between commands and the Update function.
type (
	InventoryLoadedMsg *inventory.Document
	SshExitMsg         struct{ Err error }
	ErrMsg             error
)
