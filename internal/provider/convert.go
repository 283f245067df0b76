package provider

import (
	"fmt"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/ec2"

	"github.com/fl4re/ec2-inventory/internal/inventory"
)

// FromEC2 converts DescribeInstances reservations into inventory reservations.
// Tags without a key are skipped. A nil reservation or instance is reported as
// inventory.ErrMalformedInstance.
func FromEC2(reservations []*ec2.Reservation) ([]inventory.Reservation, error) {
	out := make([]inventory.Reservation, 0, len(reservations))
	for i, reservation := range reservations {
		if reservation == nil {
			return nil, fmt.Errorf("reservation %d: %w", i, inventory.ErrMalformedInstance)
		}
		converted := inventory.Reservation{Instances: make([]inventory.Instance, 0, len(reservation.Instances))}
		for j, instance := range reservation.Instances {
			if instance == nil {
				return nil, fmt.Errorf("reservation %s instance %d: %w",
					aws.StringValue(reservation.ReservationId), j, inventory.ErrMalformedInstance)
			}
			converted.Instances = append(converted.Instances, fromEC2Instance(instance))
		}
		out = append(out, converted)
	}
	return out, nil
}

func fromEC2Instance(instance *ec2.Instance) inventory.Instance {
	converted := inventory.Instance{}
	if instance.PublicIpAddress != nil {
		converted.PublicIPAddress = aws.String(aws.StringValue(instance.PublicIpAddress))
	}
	for _, tag := range instance.Tags {
		if tag == nil || tag.Key == nil {
			continue
		}
		converted.Tags = append(converted.Tags, inventory.Tag{
			Key:   aws.StringValue(tag.Key),
			Value: aws.StringValue(tag.Value),
		})
	}
	return converted
}
