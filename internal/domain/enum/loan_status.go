package enum

// LoanStatus represents the state of a customer loan
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "ACTIVE"
	LoanStatusCompleted LoanStatus = "COMPLETED"
)

func (s LoanStatus) String() string {
	return string(s)
}

func (s LoanStatus) IsValid() bool {
	return s == LoanStatusActive || s == LoanStatusCompleted
}

// InstallmentStatus represents how much of an installment has been paid
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "PENDING"
	InstallmentStatusPartial InstallmentStatus = "PARTIAL"
	InstallmentStatusPaid    InstallmentStatus = "PAID"
)

func (s InstallmentStatus) String() string {
	return string(s)
}
