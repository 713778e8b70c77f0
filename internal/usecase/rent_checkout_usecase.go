package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrPaymentNotPending              = errors.New("payment is not pending")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// CheckoutOptions tunes payload validation. Sandbox means the access token is a
// Mercado Pago "TEST-" token.
type CheckoutOptions struct {
	Mock            bool
	Sandbox         bool
	TestPayerEmail  string
	TestPayerUserID string
}

type CheckoutResult struct {
	Payment           entities.Document
	ProviderPaymentID string
	ProviderStatus    string
	Transition        *TransitionResult
}

// IRentCheckout lets a tenant pay a pending rent payment online.
//
// Behavior:
//   - The gateway outcome is stored on the payment (providerPaymentId, providerStatus).
//   - An approved result advances the payment to Pagado through the regular status
//     transition, so it is audited and confirmed by WhatsApp like a manual one.
type IRentCheckout interface {
	Checkout(ctx context.Context, actor entities.Actor, paymentID string, mpPayload json.RawMessage) (CheckoutResult, error)
}

type RentCheckout struct {
	store       interfaces.IRecordStore
	gateway     interfaces.IPaymentGateway
	transitions *StatusTransitions
	opts        CheckoutOptions
	logger      *zap.Logger
	now         func() time.Time
}

var _ IRentCheckout = (*RentCheckout)(nil)

func NewRentCheckout(store interfaces.IRecordStore, gateway interfaces.IPaymentGateway, transitions *StatusTransitions, opts CheckoutOptions, logger *zap.Logger) *RentCheckout {
	return &RentCheckout{
		store:       store,
		gateway:     gateway,
		transitions: transitions,
		opts:        opts,
		logger:      logging.OrNop(logger).Named("checkout"),
		now:         time.Now,
	}
}

func (u *RentCheckout) Checkout(ctx context.Context, actor entities.Actor, paymentID string, mpPayload json.RawMessage) (CheckoutResult, error) {
	u.logger.Debug("checkout start", zap.String("org_id", actor.OrgID), zap.String("record_id", paymentID), zap.Int("payload_len", len(mpPayload)))
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !u.opts.Mock {
			return CheckoutResult{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return CheckoutResult{}, errors.New("payment gateway not configured")
	}

	payment, err := u.transitions.loadPayment(ctx, actor.OrgID, paymentID)
	if err != nil {
		return CheckoutResult{}, err
	}
	// A tenant only ever sees its own payments.
	if actor.Role == entities.RoleTenant && payment.TenantID != actor.TenantDocID {
		return CheckoutResult{}, ErrPaymentNotFound
	}
	if payment.Status != entities.PaymentStatusPendiente {
		return CheckoutResult{}, ErrPaymentNotPending
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return CheckoutResult{}, ErrInvalidMPPayload
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			u.logger.Info("missing payment_method_id", zap.String("record_id", payment.ID))
			return CheckoutResult{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap)
		if !hasPayer(reqMap) {
			u.logger.Info("missing or invalid payer", zap.String("record_id", payment.ID))
			return CheckoutResult{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = payment.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = payment.Concept
	}
	// The amount always comes from the stored payment.
	reqMap["transaction_amount"] = payment.Amount
	body, err := json.Marshal(reqMap)
	if err != nil {
		return CheckoutResult{}, err
	}

	charge, err := u.gateway.Charge(ctx, body)
	if err != nil {
		u.logger.Warn("payment gateway failed", zap.String("org_id", actor.OrgID), zap.String("record_id", payment.ID), zap.Error(err))
		return CheckoutResult{}, mapGatewayError(err)
	}
	u.logger.Info("payment gateway success", zap.String("record_id", payment.ID),
		zap.String("provider_payment_id", charge.ProviderID), zap.String("provider_status", charge.Status))

	patch := entities.Document{
		"providerPaymentId": charge.ProviderID,
		"providerStatus":    charge.Status,
		"updatedAt":         dates.Stamp(u.now()),
	}
	var parsed map[string]any
	if err := json.Unmarshal(charge.Raw, &parsed); err == nil {
		patch["providerPayload"] = parsed
	}
	updated, err := u.store.Update(ctx, actor.OrgID, entities.CollectionPayments, payment.ID, patch)
	if err != nil {
		u.logger.Error("checkout store update failed", zap.String("record_id", payment.ID), zap.Error(err))
		return CheckoutResult{}, err
	}
	if updated == nil {
		return CheckoutResult{}, ErrPaymentNotFound
	}

	result := CheckoutResult{Payment: updated, ProviderPaymentID: charge.ProviderID, ProviderStatus: charge.Status}
	if !charge.Approved() {
		return result, nil
	}
	tr, err := u.transitions.advancePayment(ctx, actor, payment, entities.PaymentStatusPagado)
	if err != nil {
		return CheckoutResult{}, fmt.Errorf("advance paid payment: %w", err)
	}
	result.Payment = tr.Record
	result.Transition = &tr
	return result, nil
}

func (u *RentCheckout) ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	// In sandbox, either payer.id or payer.email may be used; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if u.opts.TestPayerEmail != "" {
			payer["email"] = u.opts.TestPayerEmail
		} else if u.opts.Sandbox {
			payer["email"] = "test_user_pe@testuser.com"
		}
	}
}

func (u *RentCheckout) normalizeSandboxPayer(m map[string]any) {
	if !u.opts.Sandbox || u.opts.TestPayerUserID == "" || u.opts.TestPayerEmail == "" {
		return
	}
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.opts.TestPayerUserID {
		return
	}
	payer["email"] = u.opts.TestPayerEmail
	delete(payer, "id")
	u.logger.Debug("mapped sandbox payer user_id to payer.email")
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func mapGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	default:
		return err
	}
}
