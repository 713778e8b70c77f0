package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"gestorpro/internal/domain/entities"
	"gestorpro/internal/logging"
	"gestorpro/internal/metrics"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrEmptyPrompt        = errors.New("prompt text is required")
	ErrUnknownCopilotTask = errors.New("unknown copilot task")
)

const (
	CopilotDraftEmail  = "draftEmail"
	CopilotAnalyzeData = "analyzeData"
)

const (
	insightsInstruction = "Actúa como un asesor inmobiliario experto. Analiza los siguientes datos de mi portafolio y proporciona un resumen conciso y 3 recomendaciones clave, con formato markdown, para mejorar la rentabilidad y gestión."
	triageInstruction   = "Actúa como un experto en mantenimiento de propiedades. Basado en la siguiente descripción de un problema, proporciona un análisis en formato JSON. Descripción: \"%s\". El costo estimado debe estar en Soles Peruanos (PEN)."
	chatInstruction     = "Eres un asistente virtual para un inquilino de una propiedad. Tu nombre es GestorBot. Responde de forma amable y concisa. Utiliza la siguiente información para responder la pregunta del inquilino. Si la pregunta no se puede responder con esta información, di amablemente que no tienes esa información y que debe contactar al administrador. Pregunta del inquilino: \"%s\""
	contractInstruction = `Actúa como un asistente legal experto. A continuación te proporciono una plantilla de contrato y los datos específicos de un nuevo alquiler.
Tu tarea es tomar la plantilla y rellenarla con los datos proporcionados para generar un contrato finalizado y personalizado.
Asegúrate de reemplazar todos los placeholders (ej. [NOMBRE_INQUILINO], [DIRECCION_PROPIEDAD]) con la información correcta.
Valida que la dirección de la propiedad sea coherente y esté bien formada.
El resultado debe ser únicamente el texto completo del contrato nuevo en formato Markdown.`

	missingKeyMessage     = "Error: La clave de API de Gemini no ha sido configurada. Por favor, ve a la página de 'Ajustes' para añadirla."
	chatNotConfiguredText = "Lo siento, el asistente virtual no está configurado por el administrador en este momento."
)

var triageSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"priority":           map[string]any{"type": "STRING", "enum": []string{"Baja", "Media", "Alta", "Urgente"}},
		"estimatedCost":      map[string]any{"type": "STRING"},
		"suggestedMaterials": map[string]any{"type": "ARRAY", "items": map[string]any{"type": "STRING"}},
	},
	"required": []string{"priority", "estimatedCost", "suggestedMaterials"},
}

// TriageSuggestion is ready to be merged into the maintenance form; materials are
// joined one per line.
type TriageSuggestion struct {
	Priority           entities.MaintenancePriority `json:"priority,omitempty"`
	EstimatedCost      string                       `json:"estimatedCost,omitempty"`
	SuggestedMaterials string                       `json:"suggestedMaterials"`
}

// IAIAssistant wraps every prompt the product sends to the text generator. The
// organization's own API key is used; a missing key never reaches the network.
type IAIAssistant interface {
	Insights(ctx context.Context, actor entities.Actor) (entities.AIResult, error)
	TriageMaintenance(ctx context.Context, actor entities.Actor, description string) (TriageSuggestion, entities.AIResult, error)
	Copilot(ctx context.Context, actor entities.Actor, task, text string) (entities.AIResult, error)
	DraftContract(ctx context.Context, actor entities.Actor, templateID, rentalID string) (entities.AIResult, error)
	TenantChat(ctx context.Context, actor entities.Actor, question string) (entities.AIResult, error)
}

type AIAssistant struct {
	orgs      interfaces.IOrganizationRepository
	store     interfaces.IRecordStore
	generator interfaces.ITextGenerator
	metrics   *metrics.Metrics
	logger    *zap.Logger
}

var _ IAIAssistant = (*AIAssistant)(nil)

func NewAIAssistant(orgs interfaces.IOrganizationRepository, store interfaces.IRecordStore, generator interfaces.ITextGenerator, m *metrics.Metrics, logger *zap.Logger) *AIAssistant {
	return &AIAssistant{orgs: orgs, store: store, generator: generator, metrics: m, logger: logging.OrNop(logger).Named("ai")}
}

func (u *AIAssistant) Insights(ctx context.Context, actor entities.Actor) (entities.AIResult, error) {
	key, err := u.apiKey(ctx, actor.OrgID)
	if err != nil {
		return entities.AIResult{}, err
	}
	payments, expenses, properties, rentals, err := u.portfolio(ctx, actor.OrgID)
	if err != nil {
		return entities.AIResult{}, err
	}
	active := 0
	for _, r := range rentals {
		if r.String("status") == string(entities.RentalStatusActivo) {
			active++
		}
	}
	available := 0
	for _, p := range properties {
		if p.String("status") == string(entities.PropertyStatusDisponible) {
			available++
		}
	}
	return u.generate(ctx, "insights", interfaces.GenerateRequest{
		APIKey:      key,
		Instruction: insightsInstruction,
		Context: map[string]any{
			"totalIngresos":          sumAmounts(payments, "amount"),
			"totalGastos":            sumAmounts(expenses, "amount"),
			"numeroPropiedades":      len(properties),
			"propiedadesAlquiladas":  active,
			"propiedadesDisponibles": available,
		},
	}), nil
}

func (u *AIAssistant) TriageMaintenance(ctx context.Context, actor entities.Actor, description string) (TriageSuggestion, entities.AIResult, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return TriageSuggestion{}, entities.AIResult{}, ErrEmptyPrompt
	}
	key, err := u.apiKey(ctx, actor.OrgID)
	if err != nil {
		return TriageSuggestion{}, entities.AIResult{}, err
	}
	res := u.generate(ctx, "triage", interfaces.GenerateRequest{
		APIKey:         key,
		Instruction:    fmt.Sprintf(triageInstruction, description),
		Context:        map[string]any{},
		ResponseSchema: triageSchema,
	})
	if !res.OK {
		return TriageSuggestion{}, res, nil
	}
	var raw struct {
		Priority           string   `json:"priority"`
		EstimatedCost      string   `json:"estimatedCost"`
		SuggestedMaterials []string `json:"suggestedMaterials"`
	}
	if err := json.Unmarshal(res.Data, &raw); err != nil {
		return TriageSuggestion{}, entities.AIFailed(entities.AIFailureMalformed, "La IA devolvió una respuesta JSON mal formada."), nil
	}
	s := TriageSuggestion{EstimatedCost: raw.EstimatedCost, SuggestedMaterials: strings.Join(raw.SuggestedMaterials, "\n")}
	if p := entities.MaintenancePriority(raw.Priority); p.Valid() {
		s.Priority = p
	}
	return s, res, nil
}

func (u *AIAssistant) Copilot(ctx context.Context, actor entities.Actor, task, text string) (entities.AIResult, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return entities.AIResult{}, ErrEmptyPrompt
	}
	var instruction string
	switch task {
	case CopilotDraftEmail:
		instruction = "Redacta un correo electrónico profesional para la siguiente situación: " + text
	case CopilotAnalyzeData:
		instruction = "Analiza los siguientes datos y proporciona un resumen y 3 puntos clave: " + text
	default:
		return entities.AIResult{}, ErrUnknownCopilotTask
	}
	key, err := u.apiKey(ctx, actor.OrgID)
	if err != nil {
		return entities.AIResult{}, err
	}
	return u.generate(ctx, "copilot", interfaces.GenerateRequest{APIKey: key, Instruction: instruction, Context: map[string]any{}}), nil
}

func (u *AIAssistant) DraftContract(ctx context.Context, actor entities.Actor, templateID, rentalID string) (entities.AIResult, error) {
	lease, err := loadLease(ctx, u.store, actor.OrgID, rentalID)
	if err != nil {
		return entities.AIResult{}, err
	}
	if lease.Rental.String("status") != string(entities.RentalStatusActivo) {
		return entities.AIResult{}, ErrRentalNotActive
	}
	template, err := u.store.Get(ctx, actor.OrgID, entities.CollectionContractTemplates, strings.TrimSpace(templateID))
	if err != nil {
		return entities.AIResult{}, err
	}
	if template == nil {
		return entities.AIResult{}, ErrTemplateNotFound
	}
	key, err := u.apiKey(ctx, actor.OrgID)
	if err != nil {
		return entities.AIResult{}, err
	}
	return u.generate(ctx, "contract", interfaces.GenerateRequest{
		APIKey:      key,
		Instruction: contractInstruction,
		Context: map[string]any{
			"plantilla":          template.String("content"),
			"datos_del_alquiler": lease.Placeholders(),
		},
	}), nil
}

// TenantChat answers a tenant from its lease and latest five payments. A missing
// key yields the friendly "not configured" reply instead of the settings hint.
func (u *AIAssistant) TenantChat(ctx context.Context, actor entities.Actor, question string) (entities.AIResult, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return entities.AIResult{}, ErrEmptyPrompt
	}
	key, err := u.apiKey(ctx, actor.OrgID)
	if err != nil {
		return entities.AIResult{}, err
	}
	if key == "" {
		return entities.AIFailed(entities.AIFailureMissingKey, chatNotConfiguredText), nil
	}
	rental, err := activeLeaseOf(ctx, u.store, actor.OrgID, actor.TenantDocID)
	if err != nil {
		return entities.AIResult{}, err
	}
	payments, err := paymentsOf(ctx, u.store, actor.OrgID, actor.TenantDocID)
	if err != nil {
		return entities.AIResult{}, err
	}
	if len(payments) > 5 {
		payments = payments[:5]
	}
	return u.generate(ctx, "chat", interfaces.GenerateRequest{
		APIKey:      key,
		Instruction: fmt.Sprintf(chatInstruction, question),
		Context: map[string]any{
			"contrato":      rental,
			"ultimos_pagos": payments,
		},
	}), nil
}

func (u *AIAssistant) generate(ctx context.Context, op string, req interfaces.GenerateRequest) entities.AIResult {
	if strings.TrimSpace(req.APIKey) == "" {
		u.metrics.AICall(op, string(entities.AIFailureMissingKey))
		return entities.AIFailed(entities.AIFailureMissingKey, missingKeyMessage)
	}
	res := u.generator.Generate(ctx, req)
	outcome := "ok"
	if !res.OK {
		outcome = string(res.Failure)
		u.logger.Warn("generation failed", zap.String("operation", op), zap.String("failure", outcome))
	}
	u.metrics.AICall(op, outcome)
	return res
}

func (u *AIAssistant) apiKey(ctx context.Context, orgID string) (string, error) {
	org, err := u.orgs.GetByID(ctx, orgID)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(org.Settings.GeminiAPIKey), nil
}

func (u *AIAssistant) portfolio(ctx context.Context, orgID string) (payments, expenses, properties, rentals []entities.Document, err error) {
	if payments, err = u.store.List(ctx, orgID, entities.CollectionPayments, entities.Query{}); err != nil {
		return
	}
	if expenses, err = u.store.List(ctx, orgID, entities.CollectionExpenses, entities.Query{}); err != nil {
		return
	}
	if properties, err = u.store.List(ctx, orgID, entities.CollectionProperties, entities.Query{}); err != nil {
		return
	}
	rentals, err = u.store.List(ctx, orgID, entities.CollectionRentals, entities.Query{})
	return
}

func sumAmounts(docs []entities.Document, field string) float64 {
	total := 0.0
	for _, d := range docs {
		total += d.Float(field)
	}
	return total
}
