package interfaces

import (
	"context"

	"gestorpro/internal/domain/entities"
)

type GenerateRequest struct {
	APIKey      string
	Instruction string
	Context     any
	// ResponseSchema, when set, asks for constrained JSON output.
	ResponseSchema map[string]any
}

// ITextGenerator never returns an error; failures are tagged in the result.
type ITextGenerator interface {
	Generate(ctx context.Context, req GenerateRequest) entities.AIResult
}
