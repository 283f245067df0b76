package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/fl4re/ec2-inventory/internal/inventory"
)

// Snapshot reads a saved DescribeInstances response, such as the output of
// "aws ec2 describe-instances", instead of calling EC2.
type Snapshot struct {
	Path   string
	Logger *slog.Logger
}

// Reservations implements inventory.Provider.
func (s Snapshot) Reservations(ctx context.Context) ([]inventory.Reservation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}
	var out ec2.DescribeInstancesOutput
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", s.Path, err)
	}
	if s.Logger != nil {
		s.Logger.Debug("loaded snapshot", "path", s.Path, "reservations", len(out.Reservations))
	}
	return FromEC2(out.Reservations)
}
