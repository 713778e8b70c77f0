package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gestorpro/internal/domain/entities"
)

func TestFinancialReports_Generate(t *testing.T) {
	uc := NewFinancialReports(seedPortfolio(t), nil)

	report, err := uc.Generate(context.Background(), testActor, "2025-05-01", "2025-06-05")
	require.NoError(t, err)

	assert.Equal(t, "1 de mayo de 2025 - 5 de junio de 2025", report.Period)
	assert.Equal(t, []IncomeRow{
		{PaymentID: "pay2", Date: "2025-05-20", Tenant: "Luis", Property: "Local Luna", Concept: "Mayo", Amount: 800},
		{PaymentID: "pay1", Date: "2025-06-01", Tenant: "Ana", Property: "Casa Sol", Concept: "Junio", Amount: 1000},
	}, report.Income)
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, "Caño", report.Expenses[0].Description)
	assert.Equal(t, "Casa Sol", report.Expenses[0].Property)
	assert.Equal(t, 1800.0, report.TotalIncome)
	assert.Equal(t, 200.0, report.TotalExpenses)
	assert.Equal(t, 1600.0, report.NetProfit)
}

func TestFinancialReports_BoundsAreInclusive(t *testing.T) {
	uc := NewFinancialReports(seedPortfolio(t), nil)

	report, err := uc.Generate(context.Background(), testActor, "2025-04-30", "2025-04-30")
	require.NoError(t, err)
	assert.Empty(t, report.Income)
	require.Len(t, report.Expenses, 1)
	assert.Equal(t, -50.5, report.NetProfit)
}

func TestFinancialReports_Errors(t *testing.T) {
	uc := NewFinancialReports(seedPortfolio(t), nil)
	ctx := context.Background()

	for _, r := range [][2]string{{"", "2025-06-01"}, {"2025-06-02", "2025-06-01"}, {"2025-02-30", "2025-03-01"}} {
		_, err := uc.Generate(ctx, testActor, r[0], r[1])
		assert.ErrorIs(t, err, ErrInvalidReportRange, "range %v", r)
	}
	_, err := uc.Generate(ctx, tenantActor, "2025-01-01", "2025-12-31")
	assert.ErrorIs(t, err, ErrReportsForbidden)
	_, err = uc.Generate(ctx, entities.Actor{UserID: "c", OrgID: "org1", Role: entities.RoleContador}, "2025-01-01", "2025-12-31")
	assert.NoError(t, err)
}
