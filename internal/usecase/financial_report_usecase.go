package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"gestorpro/internal/domain/dates"
	"gestorpro/internal/domain/entities"
	"gestorpro/internal/domain/rbac"
	"gestorpro/internal/logging"
	"gestorpro/internal/usecase/interfaces"
)

var (
	ErrInvalidReportRange = errors.New("report needs a valid start and end date")
	ErrReportsForbidden   = errors.New("role cannot read financial reports")
)

type IncomeRow struct {
	PaymentID string  `json:"paymentId"`
	Date      string  `json:"date"`
	Tenant    string  `json:"tenant"`
	Property  string  `json:"property"`
	Concept   string  `json:"concept"`
	Amount    float64 `json:"amount"`
}

type ExpenseRow struct {
	ExpenseID   string  `json:"expenseId"`
	Date        string  `json:"date"`
	Property    string  `json:"property"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

type FinancialReport struct {
	Start         string       `json:"start"`
	End           string       `json:"end"`
	Period        string       `json:"period"`
	TotalIncome   float64      `json:"totalIncome"`
	TotalExpenses float64      `json:"totalExpenses"`
	NetProfit     float64      `json:"netProfit"`
	Income        []IncomeRow  `json:"income"`
	Expenses      []ExpenseRow `json:"expenses"`
}

type IFinancialReports interface {
	Generate(ctx context.Context, actor entities.Actor, start, end string) (FinancialReport, error)
}

// FinancialReports counts a payment as income once it has left Pendiente. Both
// range bounds are inclusive calendar days.
type FinancialReports struct {
	store  interfaces.IRecordStore
	logger *zap.Logger
}

var _ IFinancialReports = (*FinancialReports)(nil)

func NewFinancialReports(store interfaces.IRecordStore, logger *zap.Logger) *FinancialReports {
	return &FinancialReports{store: store, logger: logging.OrNop(logger).Named("reports")}
}

func (u *FinancialReports) Generate(ctx context.Context, actor entities.Actor, start, end string) (FinancialReport, error) {
	if !rbac.Can(actor.Role, rbac.ActionReports) {
		return FinancialReport{}, ErrReportsForbidden
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if !dates.Valid(start) || !dates.Valid(end) || start > end {
		return FinancialReport{}, ErrInvalidReportRange
	}
	set, err := loadPortfolio(ctx, u.store, actor.OrgID)
	if err != nil {
		return FinancialReport{}, err
	}

	report := FinancialReport{
		Start:    start,
		End:      end,
		Period:   dates.FormatLong(start) + " - " + dates.FormatLong(end),
		Income:   []IncomeRow{},
		Expenses: []ExpenseRow{},
	}
	within := func(day string) bool {
		day = dayOf(day)
		return day >= start && day <= end
	}
	for _, p := range set.payments {
		if p.String("status") == string(entities.PaymentStatusPendiente) || !within(p.String("paymentDate")) {
			continue
		}
		row := IncomeRow{
			PaymentID: p.ID(),
			Date:      dayOf(p.String("paymentDate")),
			Tenant:    "N/A",
			Property:  "N/A",
			Concept:   p.String("concept"),
			Amount:    p.Float("amount"),
		}
		if rental, ok := set.rentals[p.String("rentalId")]; ok {
			row.Tenant = set.name(set.tenants, rental.String("tenantId"))
			row.Property = set.name(set.properties, rental.String("propertyId"))
		}
		report.Income = append(report.Income, row)
		report.TotalIncome += row.Amount
	}
	for _, e := range set.expenses {
		if !within(e.String("date")) {
			continue
		}
		row := ExpenseRow{
			ExpenseID:   e.ID(),
			Date:        dayOf(e.String("date")),
			Property:    set.name(set.properties, e.String("propertyId")),
			Category:    e.String("category"),
			Description: e.String("description"),
			Amount:      e.Float("amount"),
		}
		report.Expenses = append(report.Expenses, row)
		report.TotalExpenses += row.Amount
	}
	report.NetProfit = report.TotalIncome - report.TotalExpenses
	u.logger.Debug("report generated", zap.String("org_id", actor.OrgID),
		zap.Int("income_rows", len(report.Income)), zap.Int("expense_rows", len(report.Expenses)))
	return report, nil
}

// dayOf keeps the calendar day of a date or timestamp string.
func dayOf(v string) string {
	if len(v) > len(dates.Layout) {
		return v[:len(dates.Layout)]
	}
	return v
}
