package interfaces

import (
	"context"
	"errors"
)

var ErrMessagingNotConfigured = errors.New("messaging credentials not configured")

// IMessageSender dispatches WhatsApp messages. to must already be normalized.
type IMessageSender interface {
	SendWhatsApp(ctx context.Context, to, body string) error
}
