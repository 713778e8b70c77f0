package entities

import "encoding/json"

// PaymentStatus is the ordered lifecycle of a rent payment:
// Pendiente -> Pagado -> Verificado. There is no regression path.

type PaymentStatus string

const (
	PaymentStatusPendiente  PaymentStatus = "Pendiente"
	PaymentStatusPagado     PaymentStatus = "Pagado"
	PaymentStatusVerificado PaymentStatus = "Verificado"
)

// Next returns the only status a payment may advance to.
func (s PaymentStatus) Next() (PaymentStatus, bool) {
	switch s {
	case PaymentStatusPendiente:
		return PaymentStatusPagado, true
	case PaymentStatusPagado:
		return PaymentStatusVerificado, true
	default:
		return "", false
	}
}

// Payment is a rent payment owed under a lease.
//
// Storage model: collection "payments" of the organization.
//   - rentalId references the lease; tenantId and propertyId are copied from it on create
//     so the reminder job and the tenant portal can query payments without a join.
//
// Online payments (Mercado Pago):
//   - ProviderPaymentID / ProviderStatus keep the gateway outcome.
//   - ProviderPayloadRaw keeps the gateway response body for traceability.

type Payment struct {
	ID          string        `json:"id"`
	RentalID    string        `json:"rentalId"`
	TenantID    string        `json:"tenantId"`
	PropertyID  string        `json:"propertyId"`
	Amount      float64       `json:"amount"`
	PaymentDate string        `json:"paymentDate"`
	Concept     string        `json:"concept"`
	Status      PaymentStatus `json:"status"`

	ProviderPaymentID  string          `json:"providerPaymentId,omitempty"`
	ProviderStatus     string          `json:"providerStatus,omitempty"`
	ProviderPayloadRaw json.RawMessage `json:"-"`

	CreatedAt string `json:"createdAt,omitempty"`
	CreatedBy string `json:"createdBy,omitempty"`
}

// ExpenseStatus: Pendiente -> Verificado.

type ExpenseStatus string

const (
	ExpenseStatusPendiente  ExpenseStatus = "Pendiente"
	ExpenseStatusVerificado ExpenseStatus = "Verificado"
)

func (s ExpenseStatus) Next() (ExpenseStatus, bool) {
	if s == ExpenseStatusPendiente {
		return ExpenseStatusVerificado, true
	}
	return "", false
}

type ExpenseCategory string

const (
	ExpenseCategoryReparacion ExpenseCategory = "Reparación"
	ExpenseCategoryServicios  ExpenseCategory = "Servicios"
	ExpenseCategoryImpuestos  ExpenseCategory = "Impuestos"
)

type Expense struct {
	ID          string          `json:"id"`
	PropertyID  string          `json:"propertyId"`
	Amount      float64         `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	Category    ExpenseCategory `json:"category"`
	Status      ExpenseStatus   `json:"status"`
	PhotoURLs   []string        `json:"photoURLs,omitempty"`
}
