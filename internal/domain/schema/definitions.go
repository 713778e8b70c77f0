package schema

import (
	"sort"

	"gestorpro/internal/domain/entities"
)

var (
	Properties = Schema{
		Collection: entities.CollectionProperties,
		Singular:   "PROPERTY",
		Title:      "Propiedades",
		Fields: []Field{
			{Name: "name", Label: "Nombre de la Propiedad", Kind: KindText, Required: true},
			{Name: "type", Label: "Tipo", Kind: KindSelect, Required: true, Options: OptionSource{
				Static: staticOptions(string(entities.PropertyTypeResidencial), string(entities.PropertyTypeComercial),
					string(entities.PropertyTypeTerrenoAgricola)),
			}},
			{Name: "address", Label: "Dirección", Kind: KindText, Required: true},
			{Name: "detailedDescription", Label: "Descripción Detallada", Kind: KindTextArea, Rows: 4,
				Placeholder: "Ej: Departamento de 3 dormitorios, 2 baños, cocina equipada..."},
			{Name: "status", Label: "Estado", Kind: KindSelect, Required: true, Options: OptionSource{
				Static: staticOptions(string(entities.PropertyStatusDisponible), string(entities.PropertyStatusAlquilado),
					string(entities.PropertyStatusMantenimiento)),
			}},
		},
	}

	Tenants = Schema{
		Collection: entities.CollectionTenants,
		Singular:   "TENANT",
		Title:      "Inquilinos",
		Fields: []Field{
			{Name: "name", Label: "Nombre Completo", Kind: KindText, Required: true},
			{Name: "dni", Label: "DNI", Kind: KindText, Required: true},
			{Name: "domicilio", Label: "Domicilio", Kind: KindText},
			{Name: "email", Label: "Email", Kind: KindEmail},
			{Name: "phone", Label: "Teléfono", Kind: KindPhone},
		},
	}

	Rentals = Schema{
		Collection: entities.CollectionRentals,
		Singular:   "RENTAL",
		Title:      "Contratos",
		Fields: []Field{
			{Name: "propertyId", Label: "Propiedad", Kind: KindReference, Required: true,
				Options: OptionSource{Collection: entities.CollectionProperties}},
			{Name: "tenantId", Label: "Inquilino", Kind: KindReference, Required: true,
				Options: OptionSource{Collection: entities.CollectionTenants}},
			{Name: "departmentDetails", Label: "Detalles del Departamento", Kind: KindTextArea, Rows: 2,
				Placeholder: "Ej: Piso 3, Dpto 301"},
			{Name: "startDate", Label: "Fecha de Inicio", Kind: KindDate, Required: true},
			{Name: "endDate", Label: "Fecha de Fin", Kind: KindDate, Required: true},
			{Name: "rentAmount", Label: "Monto del Alquiler", Kind: KindNumber, Required: true, Money: true},
			{Name: "status", Label: "Estado", Kind: KindSelect, Default: string(entities.RentalStatusActivo), Options: OptionSource{
				Static: staticOptions(string(entities.RentalStatusActivo), string(entities.RentalStatusFinalizado)),
			}},
		},
	}

	ContractTemplates = Schema{
		Collection: entities.CollectionContractTemplates,
		Singular:   "CONTRACT_TEMPLATE",
		Title:      "Plantillas",
		Fields: []Field{
			{Name: "name", Label: "Nombre de la Plantilla", Kind: KindText, Required: true},
			{Name: "description", Label: "Descripción", Kind: KindText},
			{Name: "content", Label: "Contenido", Kind: KindTextArea, Required: true, Rows: 15,
				Placeholder: "Usa marcadores como [NOMBRE_INQUILINO] o [MONTO_ALQUILER_NUMERO]"},
		},
	}

	Payments = Schema{
		Collection: entities.CollectionPayments,
		Singular:   "PAYMENT",
		Title:      "Pagos",
		Fields: []Field{
			{Name: "rentalId", Label: "Contrato", Kind: KindReference, Required: true, Options: OptionSource{
				Collection: entities.CollectionRentals,
				Where:      []entities.Filter{entities.Where("status", entities.OpEq, string(entities.RentalStatusActivo))},
				Label:      LabelRentalParties,
			}},
			{Name: "amount", Label: "Monto", Kind: KindNumber, Required: true, Money: true},
			{Name: "paymentDate", Label: "Fecha de Pago", Kind: KindDate, Required: true},
			{Name: "concept", Label: "Concepto", Kind: KindText, Required: true, Placeholder: "Ej: Alquiler Junio 2025"},
			{Name: "status", Label: "Estado", Kind: KindSelect, Default: string(entities.PaymentStatusPendiente), Options: OptionSource{
				Static: staticOptions(string(entities.PaymentStatusPendiente), string(entities.PaymentStatusPagado), string(entities.PaymentStatusVerificado)),
			}},
		},
		Derive: []Derivation{
			{From: "rentalId", Collection: entities.CollectionRentals, Copy: []string{"tenantId", "propertyId"}},
		},
	}

	Expenses = Schema{
		Collection: entities.CollectionExpenses,
		Singular:   "EXPENSE",
		Title:      "Gastos",
		Fields: []Field{
			{Name: "propertyId", Label: "Propiedad", Kind: KindReference, Required: true,
				Options: OptionSource{Collection: entities.CollectionProperties}},
			{Name: "amount", Label: "Monto", Kind: KindNumber, Required: true, Money: true},
			{Name: "date", Label: "Fecha", Kind: KindDate, Required: true},
			{Name: "description", Label: "Descripción", Kind: KindText},
			{Name: "category", Label: "Categoría", Kind: KindSelect, Required: true, Options: OptionSource{
				Static: staticOptions(string(entities.ExpenseCategoryReparacion), string(entities.ExpenseCategoryServicios), string(entities.ExpenseCategoryImpuestos)),
			}},
			{Name: "status", Label: "Estado", Kind: KindSelect, Default: string(entities.ExpenseStatusPendiente), Options: OptionSource{
				Static: staticOptions(string(entities.ExpenseStatusPendiente), string(entities.ExpenseStatusVerificado)),
			}},
			{Name: "photoURLs", Label: "Comprobantes", Kind: KindPhotos},
		},
		AttachmentPrefix: "expense_receipts",
		CreateOverrides:  entities.Document{"status": string(entities.ExpenseStatusPendiente)},
	}

	Maintenance = Schema{
		Collection: entities.CollectionMaintenance,
		Singular:   "MAINTENANCE",
		Title:      "Mantenimiento",
		Fields: []Field{
			{Name: "propertyId", Label: "Propiedad", Kind: KindReference, Required: true,
				Options: OptionSource{Collection: entities.CollectionProperties}},
			{Name: "description", Label: "Descripción del Problema", Kind: KindTextArea, Required: true, Rows: 3},
			{Name: "priority", Label: "Prioridad", Kind: KindSelect, Default: string(entities.MaintenancePriorityMedia), Options: OptionSource{
				Static: staticOptions(string(entities.MaintenancePriorityBaja), string(entities.MaintenancePriorityMedia),
					string(entities.MaintenancePriorityAlta), string(entities.MaintenancePriorityUrgente)),
			}},
			{Name: "estimatedCost", Label: "Costo Estimado", Kind: KindText, Placeholder: "Ej: S/ 150 - S/ 300"},
			{Name: "suggestedMaterials", Label: "Materiales Sugeridos", Kind: KindTextArea, Rows: 3},
			{Name: "status", Label: "Estado", Kind: KindSelect, Default: string(entities.MaintenanceStatusPendiente), Options: OptionSource{
				Static: staticOptions(string(entities.MaintenanceStatusPendiente), string(entities.MaintenanceStatusEnProgreso),
					string(entities.MaintenanceStatusCompletado)),
			}},
		},
	}
)

var registry = map[string]Schema{}

func init() {
	for _, s := range []Schema{Properties, Tenants, Rentals, ContractTemplates, Payments, Expenses, Maintenance} {
		registry[s.Collection] = s
	}
}

// For returns the schema of an editable collection.
func For(collection string) (Schema, bool) {
	s, ok := registry[collection]
	return s, ok
}

func Collections() []string {
	out := make([]string, 0, len(registry))
	for name := range registry {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
