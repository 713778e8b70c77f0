package response

import (
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
)

// TransitionResponse reports a status change; a failed WhatsApp confirmation
// does not undo the transition and is surfaced in notifyError.
type TransitionResponse struct {
	Record      entities.Document `json:"record"`
	Notified    bool              `json:"notified"`
	NotifyError string            `json:"notifyError,omitempty"`
}

func FromTransition(r usecase.TransitionResult) TransitionResponse {
	out := TransitionResponse{Record: r.Record, Notified: r.Notified}
	if r.NotifyErr != nil {
		out.NotifyError = r.NotifyErr.Error()
	}
	return out
}

type TriageResponse struct {
	Suggestion usecase.TriageSuggestion `json:"suggestion"`
	Result     entities.AIResult        `json:"result"`
}

type CheckoutResponse struct {
	Payment           entities.Document   `json:"payment"`
	ProviderPaymentID string              `json:"providerPaymentId"`
	ProviderStatus    string              `json:"providerStatus"`
	Transition        *TransitionResponse `json:"transition,omitempty"`
}

func FromCheckout(r usecase.CheckoutResult) CheckoutResponse {
	out := CheckoutResponse{Payment: r.Payment, ProviderPaymentID: r.ProviderPaymentID, ProviderStatus: r.ProviderStatus}
	if r.Transition != nil {
		t := FromTransition(*r.Transition)
		out.Transition = &t
	}
	return out
}

type NameResponse struct {
	FullName string `json:"nombreCompleto"`
}

type SentResponse struct {
	Sent bool `json:"sent"`
}
