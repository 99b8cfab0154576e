package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

// LoanHandler handles customer loan requests
type LoanHandler struct {
	loanService *service.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *service.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// List handles listing loans
// @Summary List loans
// @Tags loans
// @Produce json
// @Param status query string false "ACTIVE or COMPLETED"
// @Param search query string false "Customer name or phone"
// @Success 200 {object} response.APIResponse
// @Router /loans [get]
func (h *LoanHandler) List(c *gin.Context) {
	params := &repository.LoanFilterParams{
		Pagination: queryPagination(c),
		Search:     c.Query("search"),
	}
	if s := c.Query("status"); s != "" {
		status := enum.LoanStatus(s)
		params.Status = &status
	}
	actor, shopID := scope(c)

	loans, page, err := h.loanService.ListLoans(c.Request.Context(), actor, shopID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Loans retrieved successfully", loans, page)
}

// Create handles creating a loan and its installment schedule
// @Summary Create loan
// @Tags loans
// @Accept json
// @Produce json
// @Param request body request.CreateLoanRequest true "Loan data"
// @Success 201 {object} response.APIResponse
// @Router /loans [post]
func (h *LoanHandler) Create(c *gin.Context) {
	var req request.CreateLoanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	loan, err := h.loanService.CreateLoan(c.Request.Context(), actor, shopID, &service.CreateLoanInput{
		CustomerName:      req.CustomerName,
		CustomerPhone:     req.CustomerPhone,
		PrincipalAmount:   req.PrincipalAmount,
		InterestRate:      req.InterestRate,
		TotalInstallments: req.TotalInstallments,
		StartDate:         req.StartDate,
		Notes:             req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Loan created successfully", loan)
}

// Get handles getting a loan with its installments
func (h *LoanHandler) Get(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	loan, err := h.loanService.GetLoan(c.Request.Context(), actor, shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Loan retrieved successfully", loan)
}

// Delete handles deleting a loan that has no repayments
func (h *LoanHandler) Delete(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	if err := h.loanService.DeleteLoan(c.Request.Context(), actor, shopID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Loan deleted successfully", nil)
}

// PayInstallment records a repayment against one installment
// @Summary Pay installment
// @Tags loans
// @Accept json
// @Produce json
// @Param id path string true "Loan ID"
// @Param installmentId path string true "Installment ID"
// @Param request body request.InstallmentPaymentRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Failure 409 {object} response.APIResponse
// @Router /loans/{id}/installments/{installmentId}/payments [post]
func (h *LoanHandler) PayInstallment(c *gin.Context) {
	loanID, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	installmentID, err := paramUUID(c, "installmentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.InstallmentPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	loan, err := h.loanService.RecordPayment(c.Request.Context(), actor, shopID, &service.RecordInstallmentPaymentInput{
		LoanID:        loanID,
		InstallmentID: installmentID,
		Amount:        req.Amount,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment recorded successfully", loan)
}
