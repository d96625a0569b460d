package contact

import (
	"context"
	"fmt"
)

// RelayConfig selects whether the email relay is used. It is either
// RelayConfigured or RelayNotConfigured.
type RelayConfig interface {
	relayConfig()
}

// RelayConfigured carries the three relay credentials, all non-empty.
type RelayConfigured struct {
	ServiceID  string
	TemplateID string
	PublicKey  string
}

// RelayNotConfigured disables the relay; every submission goes to mailto.
type RelayNotConfigured struct{}

func (RelayConfigured) relayConfig() {}
func (RelayNotConfigured) relayConfig() {}

// NewRelayConfig returns RelayConfigured only when every value is set.
func NewRelayConfig(serviceID, templateID, publicKey string) RelayConfig {
	if serviceID == "" || templateID == "" || publicKey == "" {
		return RelayNotConfigured{}
	}
	return RelayConfigured{
		ServiceID:  serviceID,
		TemplateID: templateID,
		PublicKey:  publicKey,
	}
}

// Sender delivers a message through the relay.
type Sender interface {
	Send(ctx context.Context, cfg RelayConfigured, msg Message) error
}

// RejectedError is returned when the relay answers with a non-2xx status.
type RejectedError struct {
	StatusCode int
	Status     string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("relay rejected message: %s", e.Status)
}
