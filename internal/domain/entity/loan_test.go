package entity

import (
	"testing"

	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildScheduleLastInstallmentAbsorbsRemainder(t *testing.T) {
	loan := &Loan{
		PrincipalAmount:   decimal.RequireFromString("1000"),
		InterestRate:      decimal.Zero,
		TotalInstallments: 3,
		StartDate:         bizdate.New(2024, 1, 31),
	}
	loan.BuildSchedule()

	require.Len(t, loan.Installments, 3)
	assert.Equal(t, "333.33", loan.InstallmentAmount.StringFixed(2))
	assert.Equal(t, "333.33", loan.Installments[0].Amount.StringFixed(2))
	assert.Equal(t, "333.34", loan.Installments[2].Amount.StringFixed(2))

	sum := decimal.Zero
	for _, inst := range loan.Installments {
		sum = sum.Add(inst.Amount)
	}
	assert.True(t, sum.Equal(loan.TotalAmount))

	// month-end start dates clamp to the last day of shorter months
	assert.Equal(t, bizdate.New(2024, 2, 29), loan.Installments[0].DueDate)
	assert.Equal(t, bizdate.New(2024, 3, 31), loan.Installments[1].DueDate)
	assert.Equal(t, loan.Installments[0].DueDate, loan.NextDueDate)
	assert.True(t, loan.CanDelete())
}

func TestInstallmentApplyTransitions(t *testing.T) {
	inst := &Installment{Amount: decimal.RequireFromString("500"), PaidAmount: decimal.Zero, Status: enum.InstallmentStatusPending}

	inst.Apply(decimal.RequireFromString("200"), bizdate.New(2024, 3, 1).Time())
	assert.Equal(t, enum.InstallmentStatusPartial, inst.Status)
	assert.Nil(t, inst.PaidAt)
	assert.Equal(t, "300.00", inst.Outstanding().StringFixed(2))

	inst.Apply(decimal.RequireFromString("300"), bizdate.New(2024, 3, 2).Time())
	assert.Equal(t, enum.InstallmentStatusPaid, inst.Status)
	require.NotNil(t, inst.PaidAt)
	assert.True(t, inst.Outstanding().IsZero())
}

func TestRecalculateSkipsPaidInstallmentsForNextDueDate(t *testing.T) {
	loan := &Loan{
		PrincipalAmount:   decimal.RequireFromString("200"),
		InterestRate:      decimal.RequireFromString("10"),
		TotalInstallments: 2,
		StartDate:         bizdate.New(2024, 5, 10),
	}
	loan.BuildSchedule()
	assert.Equal(t, "220.00", loan.TotalAmount.StringFixed(2))

	loan.Installments[0].Apply(loan.Installments[0].Amount, bizdate.New(2024, 6, 10).Time())
	loan.Recalculate()

	assert.Equal(t, bizdate.New(2024, 7, 10), loan.NextDueDate)
	assert.Equal(t, "110.00", loan.RemainingAmount.StringFixed(2))
	assert.Equal(t, enum.LoanStatusActive, loan.Status)
	assert.False(t, loan.CanDelete())
}
