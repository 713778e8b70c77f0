package entities

import "strings"

// Organization is the root scoping key of every other record.
//
// Storage model (DynamoDB, table "organizations"):
//   - PK: id

type Organization struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Settings  OrganizationSettings `json:"settings"`
	CreatedAt string               `json:"createdAt,omitempty"`
}

// OrganizationSettings is editable by staff from the settings page.
type OrganizationSettings struct {
	GeminiAPIKey       string `json:"geminiApiKey"`
	ManagerPhoneNumber string `json:"managerPhoneNumber"`
}

type Role string

const (
	RoleAdmin       Role = "Admin"
	RoleGestor      Role = "Gestor"
	RoleVerificador Role = "Verificador"
	RoleContador    Role = "Contador"
	RoleTenant      Role = "Tenant"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleGestor, RoleVerificador, RoleContador, RoleTenant:
		return true
	}
	return false
}

// User is the profile linked to an authentication identity.
//
// Storage model (DynamoDB, table "users"):
//   - PK: uid
//   - GSI: org_id-index (PK: orgId)
//
// Tenant-role users reference their tenant record through TenantDocID.
type User struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	Role        Role   `json:"role"`
	OrgID       string `json:"orgId"`
	DNI         string `json:"dni,omitempty"`
	TenantDocID string `json:"tenantDocId,omitempty"`
}

// Actor identifies who performs an operation. It is built from the session token.
type Actor struct {
	UserID      string
	Email       string
	OrgID       string
	Role        Role
	SessionID   string
	TenantDocID string
}

func (a Actor) Valid() bool {
	return strings.TrimSpace(a.OrgID) != "" && strings.TrimSpace(a.UserID) != ""
}

// AuditEntry is an immutable record of one state-changing action, stored in "logs".
type AuditEntry struct {
	ID        string         `json:"id,omitempty"`
	Timestamp string         `json:"timestamp"`
	UserEmail string         `json:"userEmail"`
	UserID    string         `json:"userId"`
	Action    string         `json:"action"`
	Section   string         `json:"section"`
	Details   map[string]any `json:"details"`
}

// ConfirmationPrompt describes a destructive action waiting for an explicit yes/no.
type ConfirmationPrompt struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ConfirmText string `json:"confirmText"`
	Collection  string `json:"collection,omitempty"`
	RecordID    string `json:"recordId,omitempty"`
}

// ConfirmationRequest is an open prompt identified by its correlation id.
type ConfirmationRequest struct {
	ID        string             `json:"id"`
	SessionID string             `json:"-"`
	Prompt    ConfirmationPrompt `json:"prompt"`
	ExpiresAt string             `json:"expiresAt"`
}
