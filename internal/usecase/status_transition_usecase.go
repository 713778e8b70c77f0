package usecase

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/phone"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/domain/schema"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrPaymentNotFound     = errors.New("payment not found")
	ErrExpenseNotFound     = errors.New("expense not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrTransitionForbidden = errors.New("role cannot perform this status transition")
	ErrNoRecipient         = errors.New("tenant has no phone number")
)

// TransitionResult carries the updated record and, for payments reaching Pagado,
// the outcome of the WhatsApp confirmation. A failed notification never undoes
// the transition.
type TransitionResult struct {
	Record    entities.Document
	Notified  bool
	NotifyErr error
}

// IStatusTransitions advances payments (Pendiente -> Pagado -> Verificado) and
// expenses (Pendiente -> Verificado). Verification is limited to Admin and Verificador.
type IStatusTransitions interface {
	AdvancePayment(ctx context.Context, actor entities.Actor, paymentID string, to entities.PaymentStatus) (TransitionResult, error)
	AdvanceExpense(ctx context.Context, actor entities.Actor, expenseID string, to entities.ExpenseStatus) (TransitionResult, error)
}

type StatusTransitions struct {
	store  interfaces.IRecordStore
	sender interfaces.IMessageSender
	audit  IAuditLogger
	logger *zap.Logger
	now    func() time.Time
}

var _ IStatusTransitions = (*StatusTransitions)(nil)

func NewStatusTransitions(store interfaces.IRecordStore, sender interfaces.IMessageSender, audit IAuditLogger, logger *zap.Logger) *StatusTransitions {
	return &StatusTransitions{
		store:  store,
		sender: sender,
		audit:  audit,
		logger: logging.OrNop(logger).Named("status"),
		now:    time.Now,
	}
}

func (u *StatusTransitions) AdvancePayment(ctx context.Context, actor entities.Actor, paymentID string, to entities.PaymentStatus) (TransitionResult, error) {
	if to == entities.PaymentStatusVerificado && !rbac.Can(actor.Role, rbac.ActionVerify) {
		return TransitionResult{}, ErrTransitionForbidden
	}
	if to == entities.PaymentStatusPagado && !rbac.Can(actor.Role, rbac.ActionWrite) {
		return TransitionResult{}, ErrTransitionForbidden
	}
	payment, err := u.loadPayment(ctx, actor.OrgID, paymentID)
	if err != nil {
		return TransitionResult{}, err
	}
	return u.advancePayment(ctx, actor, payment, to)
}

// advancePayment skips the role check; the online checkout reaches Pagado on the
// tenant's behalf.
func (u *StatusTransitions) advancePayment(ctx context.Context, actor entities.Actor, payment entities.Payment, to entities.PaymentStatus) (TransitionResult, error) {
	next, ok := payment.Status.Next()
	if !ok || next != to {
		return TransitionResult{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, payment.Status, to)
	}

	updated, err := u.store.Update(ctx, actor.OrgID, entities.CollectionPayments, payment.ID, entities.Document{
		"status":    string(to),
		"updatedAt": dates.Stamp(u.now()),
		"updatedBy": actor.Email,
	})
	if err != nil {
		u.logger.Error("payment status update failed", zap.String("org_id", actor.OrgID), zap.String("record_id", payment.ID), zap.Error(err))
		return TransitionResult{}, err
	}
	if updated == nil {
		return TransitionResult{}, ErrPaymentNotFound
	}

	u.audit.Log(ctx, actor, "UPDATE_PAYMENT_STATUS", schema.Payments.Title, map[string]any{
		"paymentId": payment.ID,
		"before":    map[string]any{"status": string(payment.Status)},
		"after":     map[string]any{"status": string(to)},
	})

	result := TransitionResult{Record: updated}
	if to == entities.PaymentStatusPagado {
		result.NotifyErr = u.confirmPayment(ctx, actor.OrgID, payment)
		result.Notified = result.NotifyErr == nil
	}
	return result, nil
}

func (u *StatusTransitions) AdvanceExpense(ctx context.Context, actor entities.Actor, expenseID string, to entities.ExpenseStatus) (TransitionResult, error) {
	if !rbac.Can(actor.Role, rbac.ActionVerify) {
		return TransitionResult{}, ErrTransitionForbidden
	}
	expenseID = strings.TrimSpace(expenseID)
	if expenseID == "" {
		return TransitionResult{}, ErrExpenseNotFound
	}
	doc, err := u.store.Get(ctx, actor.OrgID, entities.CollectionExpenses, expenseID)
	if err != nil {
		return TransitionResult{}, err
	}
	if doc == nil {
		return TransitionResult{}, ErrExpenseNotFound
	}
	current := entities.ExpenseStatus(doc.String("status"))
	next, ok := current.Next()
	if !ok || next != to {
		return TransitionResult{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, to)
	}

	updated, err := u.store.Update(ctx, actor.OrgID, entities.CollectionExpenses, expenseID, entities.Document{
		"status":    string(to),
		"updatedAt": dates.Stamp(u.now()),
		"updatedBy": actor.Email,
	})
	if err != nil {
		return TransitionResult{}, err
	}
	if updated == nil {
		return TransitionResult{}, ErrExpenseNotFound
	}

	u.audit.Log(ctx, actor, "UPDATE_EXPENSE_STATUS", schema.Expenses.Title, map[string]any{
		"expenseId": expenseID,
		"before":    map[string]any{"status": string(current)},
		"after":     map[string]any{"status": string(to)},
	})
	return TransitionResult{Record: updated}, nil
}

func (u *StatusTransitions) loadPayment(ctx context.Context, orgID, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	doc, err := u.store.Get(ctx, orgID, entities.CollectionPayments, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if doc == nil {
		return entities.Payment{}, ErrPaymentNotFound
	}
	var p entities.Payment
	if err := entities.Decode(doc, &p); err != nil {
		return entities.Payment{}, err
	}
	p.ID = id
	return p, nil
}

func (u *StatusTransitions) confirmPayment(ctx context.Context, orgID string, payment entities.Payment) error {
	if u.sender == nil {
		return interfaces.ErrMessagingNotConfigured
	}
	tenantDoc, err := u.store.Get(ctx, orgID, entities.CollectionTenants, payment.TenantID)
	if err != nil {
		return err
	}
	if tenantDoc == nil || strings.TrimSpace(tenantDoc.String("phone")) == "" {
		return ErrNoRecipient
	}
	msg := PaymentConfirmationMessage(tenantDoc.String("name"), payment.Concept, payment.Amount)
	to := phone.Normalize(tenantDoc.String("phone"))
	if err := u.sender.SendWhatsApp(ctx, to, msg); err != nil {
		u.logger.Warn("payment confirmation failed", zap.String("org_id", orgID), zap.String("record_id", payment.ID), zap.Error(err))
		return err
	}
	return nil
}

func PaymentConfirmationMessage(tenantName, concept string, amount float64) string {
	return fmt.Sprintf("Hola %s, te confirmamos la recepción de tu pago por el concepto de \"%s\" por un monto de S/ %s. ¡Gracias!",
		tenantName, concept, formatAmount(amount))
}

// formatAmount prints amounts the way they are stored: 1500 stays "1500", 99.5 stays "99.5".
func formatAmount(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
