package service

import (
	"context"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/domain/entity"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	mock_repository "github.com/sangkips/shopledger-api/internal/domain/repository/mocks"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loanFixture struct {
	svc    *LoanService
	repo   *mock_repository.MockLoanRepository
	shopID uuid.UUID
	worker Actor
	ctx    context.Context
}

func newLoanFixture(t *testing.T) *loanFixture {
	ctrl := gomock.NewController(t)
	repo := mock_repository.NewMockLoanRepository(ctrl)
	shopID := uuid.New()
	return &loanFixture{
		svc:    NewLoanService(repo, fixedClock(2024, 3, 15)),
		repo:   repo,
		shopID: shopID,
		worker: Actor{UserID: uuid.New(), Role: enum.RoleShopWorker, ShopID: shopID},
		ctx:    context.Background(),
	}
}

// activeLoan returns a stored 3 x 1000 loan with no payments
func (f *loanFixture) activeLoan() *entity.Loan {
	loan := &entity.Loan{
		ID:                uuid.New(),
		ShopID:            f.shopID,
		CustomerName:      "Bilal",
		PrincipalAmount:   dec("3000"),
		InterestRate:      decimal.Zero,
		TotalInstallments: 3,
		StartDate:         bizdate.New(2024, 1, 31),
	}
	loan.BuildSchedule()
	for i := range loan.Installments {
		loan.Installments[i].ID = uuid.New()
	}
	return loan
}

func TestCreateLoanBuildsSchedule(t *testing.T) {
	f := newLoanFixture(t)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	loan, err := f.svc.CreateLoan(f.ctx, f.worker, f.shopID, &CreateLoanInput{
		CustomerName:      "Asad",
		PrincipalAmount:   dec("10000"),
		InterestRate:      dec("5"),
		TotalInstallments: 3,
	})
	require.NoError(t, err)

	assert.True(t, dec("10500").Equal(loan.TotalAmount))
	assert.True(t, dec("3500").Equal(loan.InstallmentAmount))
	assert.Equal(t, bizdate.New(2024, 3, 15), loan.StartDate)
	assert.Equal(t, bizdate.New(2024, 4, 15), loan.NextDueDate)
	assert.Equal(t, enum.LoanStatusActive, loan.Status)
	assert.Len(t, loan.Installments, 3)
	assert.Equal(t, f.worker.UserID, loan.CreatedBy)
}

func TestCreateLoanValidation(t *testing.T) {
	f := newLoanFixture(t)

	_, err := f.svc.CreateLoan(f.ctx, f.worker, f.shopID, &CreateLoanInput{
		PrincipalAmount:   decimal.Zero,
		InterestRate:      dec("-1"),
		TotalInstallments: 0,
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestRecordPaymentPartialThenFull(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()
	first := loan.Installments[0]

	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil).Times(2)
	f.repo.EXPECT().SaveRepayment(gomock.Any(), loan, gomock.Any(), gomock.Any()).Return(nil).Times(2)

	updated, err := f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: first.ID, Amount: dec("400"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.InstallmentStatusPartial, updated.Installments[0].Status)
	assert.True(t, dec("2600").Equal(updated.RemainingAmount))

	updated, err = f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: first.ID, Amount: dec("600"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.InstallmentStatusPaid, updated.Installments[0].Status)
	assert.NotNil(t, updated.Installments[0].PaidAt)
	assert.Equal(t, loan.Installments[1].DueDate, updated.NextDueDate)
}

func TestRecordPaymentRejectsOverpayment(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()

	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil)

	_, err := f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: loan.Installments[0].ID, Amount: dec("1000.01"),
	})
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}

func TestLoanAmountsRejectFractionsOfPaisa(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil)
	f.repo.EXPECT().SaveRepayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := f.svc.CreateLoan(f.ctx, f.worker, f.shopID, &CreateLoanInput{
		CustomerName:      "Asad",
		PrincipalAmount:   dec("10000.001"),
		TotalInstallments: 2,
	})
	assert.Equal(t, []string{"principal_amount"}, errorFields(err))

	_, err = f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: loan.Installments[0].ID, Amount: dec("100.125"),
	})
	assert.Equal(t, []string{"amount"}, errorFields(err))
}

func TestRecordPaymentCompletesLoan(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()
	loan.Installments[0].Apply(dec("1000"), fixedClock(2024, 3, 1)())
	loan.Installments[1].Apply(dec("1000"), fixedClock(2024, 3, 2)())
	loan.Recalculate()

	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil)
	f.repo.EXPECT().SaveRepayment(gomock.Any(), loan, gomock.Any(), decimal.Zero).Return(nil)

	updated, err := f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: loan.Installments[2].ID, Amount: dec("1000"),
	})
	require.NoError(t, err)
	assert.Equal(t, enum.LoanStatusCompleted, updated.Status)
	assert.True(t, updated.RemainingAmount.IsZero())
	assert.True(t, updated.NextDueDate.IsZero())
}

func TestRecordPaymentStaleInstallmentIsConflict(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()

	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil)
	f.repo.EXPECT().SaveRepayment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(repository.ErrStaleInstallment)

	_, err := f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: loan.Installments[0].ID, Amount: dec("100"),
	})
	assert.Equal(t, http.StatusConflict, statusOf(err))
}

func TestRecordPaymentUnknownInstallment(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()

	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil)

	_, err := f.svc.RecordPayment(f.ctx, f.worker, f.shopID, &RecordInstallmentPaymentInput{
		LoanID: loan.ID, InstallmentID: uuid.New(), Amount: dec("100"),
	})
	assert.Equal(t, http.StatusNotFound, statusOf(err))
}

func TestDeleteLoanWithPaymentsIsRejected(t *testing.T) {
	f := newLoanFixture(t)
	loan := f.activeLoan()
	loan.Installments[0].Apply(dec("10"), fixedClock(2024, 3, 1)())
	loan.Recalculate()

	f.repo.EXPECT().GetByID(gomock.Any(), f.shopID, loan.ID).Return(loan, nil)
	f.repo.EXPECT().Delete(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := f.svc.DeleteLoan(f.ctx, f.worker, f.shopID, loan.ID)
	assert.Equal(t, http.StatusBadRequest, statusOf(err))
}
