package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/phone"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrInvalidDNI             = errors.New("dni must have 8 digits")
	ErrWhatsAppFieldsRequired = errors.New("phone number and message are required")
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

// IIntegrations groups the staff-facing calls to third-party services.
type IIntegrations interface {
	LookupDNI(ctx context.Context, dni string) (string, error)
	SendWhatsApp(ctx context.Context, actor entities.Actor, phoneNumber, message string) error
}

type Integrations struct {
	dni    interfaces.INationalIDLookup
	sender interfaces.IMessageSender
	logger *zap.Logger
}

var _ IIntegrations = (*Integrations)(nil)

func NewIntegrations(dni interfaces.INationalIDLookup, sender interfaces.IMessageSender, logger *zap.Logger) *Integrations {
	return &Integrations{dni: dni, sender: sender, logger: logging.OrNop(logger).Named("integrations")}
}

func (u *Integrations) LookupDNI(ctx context.Context, dni string) (string, error) {
	dni = strings.TrimSpace(dni)
	if !dniPattern.MatchString(dni) {
		return "", ErrInvalidDNI
	}
	if u.dni == nil {
		return "", interfaces.ErrNationalIDNotConfigured
	}
	name, err := u.dni.FullName(ctx, dni)
	if err != nil {
		u.logger.Warn("dni lookup failed", zap.Error(err))
		return "", err
	}
	return name, nil
}

func (u *Integrations) SendWhatsApp(ctx context.Context, actor entities.Actor, phoneNumber, message string) error {
	if strings.TrimSpace(phoneNumber) == "" || strings.TrimSpace(message) == "" {
		return ErrWhatsAppFieldsRequired
	}
	if u.sender == nil {
		return interfaces.ErrMessagingNotConfigured
	}
	to := phone.Normalize(phoneNumber)
	if err := u.sender.SendWhatsApp(ctx, to, message); err != nil {
		u.logger.Error("whatsapp send failed", zap.String("org_id", actor.OrgID), zap.String("to", to), zap.Error(err))
		return err
	}
	u.logger.Info("whatsapp sent", zap.String("org_id", actor.OrgID), zap.String("to", to))
	return nil
}
