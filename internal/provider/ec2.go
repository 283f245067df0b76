// Package provider supplies inventory reservations from EC2 or from a saved
// DescribeInstances response.
package provider

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/ec2"
	"github.com/aws/aws-sdk-go/service/ec2/ec2iface"

	"github.com/fl4re/ec2-inventory/internal/config"
	"github.com/fl4re/ec2-inventory/internal/inventory"
)

// NewSession creates an AWS session from the shared config files, using the
// configured profile and region when they are set.
func NewSession(cfg config.AWS) (*session.Session, error) {
	opts := session.Options{
		SharedConfigState: session.SharedConfigEnable,
		Profile:           cfg.Profile,
	}
	if cfg.Region != "" {
		opts.Config.Region = &cfg.Region
	}
	sess, err := session.NewSessionWithOptions(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return sess, nil
}

// EC2 lists instances with a single DescribeInstances call.
type EC2 struct {
	svc    ec2iface.EC2API
	logger *slog.Logger
}

// NewEC2 returns an EC2 provider backed by svc.
func NewEC2(svc ec2iface.EC2API, logger *slog.Logger) *EC2 {
	if logger == nil {
		logger = slog.Default()
	}
	return &EC2{svc: svc, logger: logger}
}

// NewEC2FromSession returns an EC2 provider using a client built from sess.
func NewEC2FromSession(sess *session.Session, logger *slog.Logger) *EC2 {
	return NewEC2(ec2.New(sess), logger)
}

// Reservations implements inventory.Provider.
func (p *EC2) Reservations(ctx context.Context) ([]inventory.Reservation, error) {
	result, err := p.svc.DescribeInstancesWithContext(ctx, &ec2.DescribeInstancesInput{})
	if err != nil {
		return nil, fmt.Errorf("failed to describe instances: %w", err)
	}
	p.logger.Debug("described instances", "reservations", len(result.Reservations))
	return FromEC2(result.Reservations)
}
