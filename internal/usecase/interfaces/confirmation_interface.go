package interfaces

import (
	"context"

	"gestorpro/internal/domain/entities"
)

// IConfirmer asks the acting user a yes/no question and waits for the answer.
// An unanswered prompt resolves to false.
type IConfirmer interface {
	Confirm(ctx context.Context, prompt entities.ConfirmationPrompt) (bool, error)
}
