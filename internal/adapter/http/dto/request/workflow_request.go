package request

type StatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type DraftContractRequest struct {
	RentalID string `json:"rentalId" binding:"required"`
}

type SaveContractRequest struct {
	TemplateID string `json:"templateId" binding:"required"`
	Content    string `json:"content" binding:"required"`
}

type TriageRequest struct {
	Description string `json:"description"`
}

type CopilotRequest struct {
	Task string `json:"task" binding:"required"`
	Text string `json:"text"`
}

type TeamMemberRequest struct {
	Email string `json:"email"`
	DNI   string `json:"dni"`
	Role  string `json:"role"`
}

type RoleRequest struct {
	Role string `json:"role" binding:"required"`
}

type SettingsRequest struct {
	GeminiAPIKey       string `json:"geminiApiKey"`
	ManagerPhoneNumber string `json:"managerPhoneNumber"`
}

type DNIRequest struct {
	DNI string `json:"dni"`
}

type WhatsAppRequest struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

type MaintenanceRequest struct {
	Description string `json:"description"`
}

type ChatRequest struct {
	Question string `json:"question"`
}
