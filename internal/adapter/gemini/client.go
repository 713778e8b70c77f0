// Package gemini calls the Gemini generateContent endpoint.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"gestorpro/internal/config"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

const (
	missingKeyMessage = "Error: La clave de API de Gemini no ha sido configurada. Por favor, ve a la página de 'Ajustes' para añadirla."
	transportMessage  = "No se pudo conectar con el servicio de IA. Verifica tu conexión a internet."
	emptyMessage      = "La IA no pudo generar una respuesta. Por favor, intenta de nuevo."
	malformedMessage  = "La IA devolvió una respuesta JSON mal formada."
	invalidErrorBody  = "Respuesta de error no válida"

	maxResponseBytes = 4 << 20
)

type Client struct {
	http    *http.Client
	baseURL string
	model   string
	limiter *rate.Limiter
	logger  *zap.Logger
}

var _ interfaces.ITextGenerator = (*Client)(nil)

func NewClient(cfg config.GeminiConfig, logger *zap.Logger) *Client {
	burst := int(cfg.RatePerSecond)
	if burst < 1 {
		burst = 1
	}
	return &Client{
		http:    &http.Client{Timeout: cfg.Timeout},
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(cfg.RatePerSecond), burst),
		logger:  logging.OrNop(logger).Named("gemini"),
	}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Prompt appends the JSON context to the instruction the way every AI feature expects.
func Prompt(instruction string, ctx any) (string, error) {
	if ctx == nil {
		ctx = map[string]any{}
	}
	b, err := json.MarshalIndent(ctx, "", "  ")
	if err != nil {
		return "", err
	}
	return instruction + "\n\nContexto en JSON para tu análisis:\n" + string(b), nil
}

func (c *Client) Generate(ctx context.Context, req interfaces.GenerateRequest) entities.AIResult {
	if strings.TrimSpace(req.APIKey) == "" {
		return entities.AIFailed(entities.AIFailureMissingKey, missingKeyMessage)
	}
	prompt, err := Prompt(req.Instruction, req.Context)
	if err != nil {
		c.logger.Error("marshal context failed", zap.Error(err))
		return entities.AIFailed(entities.AIFailureTransport, transportMessage)
	}

	payload := generateRequest{Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}}}
	if req.ResponseSchema != nil {
		payload.GenerationConfig = &generationConfig{ResponseMimeType: "application/json", ResponseSchema: req.ResponseSchema}
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return entities.AIFailed(entities.AIFailureTransport, transportMessage)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return entities.AIFailed(entities.AIFailureTransport, transportMessage)
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent?key=%s", c.baseURL, c.model, url.QueryEscape(req.APIKey))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return entities.AIFailed(entities.AIFailureTransport, transportMessage)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.http.Do(httpReq)
	if err != nil {
		c.logger.Warn("generate request failed", zap.Error(err))
		return entities.AIFailed(entities.AIFailureTransport, transportMessage)
	}
	defer resp.Body.Close()
	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return entities.AIFailed(entities.AIFailureTransport, transportMessage)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := invalidErrorBody
		var e errorResponse
		if json.Unmarshal(raw, &e) == nil && e.Error.Message != "" {
			msg = e.Error.Message
		}
		c.logger.Warn("generate rejected", zap.Int("status", resp.StatusCode), zap.String("message", msg))
		return entities.AIFailed(entities.AIFailureProvider, fmt.Sprintf("Error al contactar la IA: %s.", msg))
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return entities.AIFailed(entities.AIFailureEmpty, emptyMessage)
	}
	text := ""
	if len(out.Candidates) > 0 && len(out.Candidates[0].Content.Parts) > 0 {
		text = out.Candidates[0].Content.Parts[0].Text
	}
	if text == "" {
		c.logger.Warn("generate returned no candidates")
		return entities.AIFailed(entities.AIFailureEmpty, emptyMessage)
	}
	c.logger.Debug("generate done", zap.Duration("elapsed", time.Since(start)))

	if req.ResponseSchema == nil {
		return entities.AIText(text)
	}
	if !json.Valid([]byte(text)) {
		return entities.AIFailed(entities.AIFailureMalformed, malformedMessage)
	}
	return entities.AIResult{OK: true, Text: text, Data: json.RawMessage(text)}
}
