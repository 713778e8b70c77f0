// Package whatsapp sends WhatsApp messages through Twilio.
package whatsapp

import (
	"context"
	"fmt"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"

	"gestorpro/internal/config"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

const channelPrefix = "whatsapp:"

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

type TwilioSender struct {
	api    messageCreator
	from   string
	logger *zap.Logger
}

var _ interfaces.IMessageSender = (*TwilioSender)(nil)

// NewTwilioSender returns a sender whose every call fails with
// ErrMessagingNotConfigured when the credentials are incomplete.
func NewTwilioSender(cfg config.TwilioConfig, logger *zap.Logger) *TwilioSender {
	s := &TwilioSender{
		from:   withChannel(cfg.PhoneNumber),
		logger: logging.OrNop(logger).Named("whatsapp"),
	}
	if cfg.AccountSID != "" && cfg.AuthToken.IsSet() && cfg.PhoneNumber != "" {
		client := twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: cfg.AccountSID,
			Password: cfg.AuthToken.Value(),
		})
		s.api = client.Api
	}
	return s
}

func (s *TwilioSender) SendWhatsApp(ctx context.Context, to, body string) error {
	if s.api == nil {
		return interfaces.ErrMessagingNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(s.from)
	params.SetTo(withChannel(to))
	params.SetBody(body)

	msg, err := s.api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("send whatsapp: %w", err)
	}
	if msg != nil && msg.Sid != nil {
		s.logger.Debug("message queued", zap.String("sid", *msg.Sid))
	}
	return nil
}

func withChannel(number string) string {
	number = strings.TrimSpace(number)
	if number == "" || strings.HasPrefix(number, channelPrefix) {
		return number
	}
	return channelPrefix + number
}
