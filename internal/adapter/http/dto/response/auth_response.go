package response

import (
	"time"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/usecase"
)

type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expiresAt"`
	SessionID string        `json:"sessionId"`
	User      entities.User `json:"user"`
}

func FromLoginResult(r usecase.LoginResult) LoginResponse {
	return LoginResponse{Token: r.Token, ExpiresAt: r.ExpiresAt, SessionID: r.SessionID, User: r.User}
}

// ConfirmationResponse is returned with 202 when a destructive action waits for
// an answer on POST /confirmations/{id}.
type ConfirmationResponse struct {
	ConfirmationID string                      `json:"confirmationId"`
	Prompt         entities.ConfirmationPrompt `json:"prompt"`
	ExpiresAt      string                      `json:"expiresAt"`
}

func FromConfirmationRequest(r entities.ConfirmationRequest) ConfirmationResponse {
	return ConfirmationResponse{ConfirmationID: r.ID, Prompt: r.Prompt, ExpiresAt: r.ExpiresAt}
}

type DeleteResponse struct {
	Deleted bool `json:"deleted"`
}
