package entities

import "io"

type PropertyType string

const (
	PropertyTypeResidencial     PropertyType = "Residencial"
	PropertyTypeComercial       PropertyType = "Comercial"
	PropertyTypeTerrenoAgricola PropertyType = "Terreno Agricola"
)

// PropertyStatus is advisory; it is never derived from the leases of the property.
type PropertyStatus string

const (
	PropertyStatusDisponible    PropertyStatus = "Disponible"
	PropertyStatusAlquilado     PropertyStatus = "Alquilado"
	PropertyStatusMantenimiento PropertyStatus = "Mantenimiento"
)

type Property struct {
	ID                  string         `json:"id"`
	Name                string         `json:"name"`
	Type                PropertyType   `json:"type"`
	Address             string         `json:"address"`
	DetailedDescription string         `json:"detailedDescription"`
	Status              PropertyStatus `json:"status"`
}

// Tenant is a person renting one or more properties.
//
// HasAccess/UID are set once a portal identity has been provisioned; Password keeps
// the initial portal password, which is the tenant's DNI.
type Tenant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	DNI       string `json:"dni"`
	Domicilio string `json:"domicilio"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	HasAccess bool   `json:"hasAccess,omitempty"`
	UID       string `json:"uid,omitempty"`
	Password  string `json:"password,omitempty"`
}

type RentalStatus string

const (
	RentalStatusActivo     RentalStatus = "Activo"
	RentalStatusFinalizado RentalStatus = "Finalizado"
)

// Rental is a lease binding one tenant to one property. At most one Activo lease per
// (property, tenant) pair is assumed by the views but not enforced by storage.
type Rental struct {
	ID                string       `json:"id"`
	PropertyID        string       `json:"propertyId"`
	TenantID          string       `json:"tenantId"`
	DepartmentDetails string       `json:"departmentDetails"`
	StartDate         string       `json:"startDate"`
	EndDate           string       `json:"endDate"`
	RentAmount        float64      `json:"rentAmount"`
	Status            RentalStatus `json:"status"`
}

type MaintenancePriority string

const (
	MaintenancePriorityBaja    MaintenancePriority = "Baja"
	MaintenancePriorityMedia   MaintenancePriority = "Media"
	MaintenancePriorityAlta    MaintenancePriority = "Alta"
	MaintenancePriorityUrgente MaintenancePriority = "Urgente"
)

func (p MaintenancePriority) Valid() bool {
	switch p {
	case MaintenancePriorityBaja, MaintenancePriorityMedia, MaintenancePriorityAlta, MaintenancePriorityUrgente:
		return true
	}
	return false
}

type MaintenanceStatus string

const (
	MaintenanceStatusPendiente  MaintenanceStatus = "Pendiente"
	MaintenanceStatusEnProgreso MaintenanceStatus = "En Progreso"
	MaintenanceStatusCompletado MaintenanceStatus = "Completado"
)

type MaintenanceTicket struct {
	ID                 string              `json:"id"`
	PropertyID         string              `json:"propertyId"`
	Description        string              `json:"description"`
	Priority           MaintenancePriority `json:"priority"`
	EstimatedCost      string              `json:"estimatedCost"`
	SuggestedMaterials string              `json:"suggestedMaterials"`
	Status             MaintenanceStatus   `json:"status"`
	ReportedBy         string              `json:"reportedBy,omitempty"`
	CreatedAt          string              `json:"createdAt,omitempty"`
}

// ContractTemplate is a markdown contract with placeholder tokens such as [NOMBRE_INQUILINO].
type ContractTemplate struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Content     string `json:"content"`
}

// GeneratedContract lives under rentals/{rentalId}/generatedContracts.
type GeneratedContract struct {
	ID           string `json:"id"`
	Content      string `json:"content"`
	TemplateID   string `json:"templateId"`
	TemplateName string `json:"templateName"`
	RentalID     string `json:"rentalId"`
	CreatedAt    string `json:"createdAt"`
	CreatedBy    string `json:"createdBy"`
}

// StoredFile is the metadata record kept next to every uploaded blob
// (record documents and tenant service receipts).
type StoredFile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Path      string `json:"path"`
	CreatedAt string `json:"createdAt"`
}

// Upload is a file received from a client, ready to be streamed to object storage.
type Upload struct {
	Name        string
	ContentType string
	Size        int64
	Body        io.Reader
}
