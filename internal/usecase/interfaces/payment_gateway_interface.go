package interfaces

import (
	"context"
	"encoding/json"
)

// RentCharge is what the provider reports back for a rent payment attempt.
// Raw is stored verbatim on the payment record.
type RentCharge struct {
	ProviderID string
	Status     string
	Raw        json.RawMessage
}

// Approved reports whether the provider accredited the charge.
func (c RentCharge) Approved() bool { return c.Status == "approved" }

// IPaymentGateway charges a tenant's pending rent with a card provider.
type IPaymentGateway interface {
	Charge(ctx context.Context, payload json.RawMessage) (RentCharge, error)
}
