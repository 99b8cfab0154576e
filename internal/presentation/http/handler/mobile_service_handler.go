package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/shopledger-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// MobileServiceHandler handles counter service transaction requests
type MobileServiceHandler struct {
	mobileService *service.MobileServiceService
}

// NewMobileServiceHandler creates a new mobile service handler
func NewMobileServiceHandler(mobileService *service.MobileServiceService) *MobileServiceHandler {
	return &MobileServiceHandler{mobileService: mobileService}
}

// List handles listing service transactions
// @Summary List service transactions
// @Tags mobile-services
// @Produce json
// @Param date query string false "Transaction date (YYYY-MM-DD)"
// @Param service_type query string false "Service type"
// @Param status query string false "Transaction status"
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Success 200 {object} response.APIResponse
// @Router /mobile-services [get]
func (h *MobileServiceHandler) List(c *gin.Context) {
	actor, shopID := scope(c)

	date, err := queryDate(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	input := &service.ListServiceTransactionsInput{
		Pagination: queryPagination(c),
		Date:       date,
	}
	if st := c.Query("service_type"); st != "" {
		serviceType := enum.ServiceType(st)
		input.ServiceType = &serviceType
	}
	if s := c.Query("status"); s != "" {
		status := enum.TransactionStatus(s)
		input.Status = &status
	}

	items, page, err := h.mobileService.List(c.Request.Context(), actor, shopID, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Service transactions retrieved successfully", items, page)
}

// PreviewCommission returns the commission a fee rule would give for an amount
// @Summary Preview commission
// @Tags mobile-services
// @Produce json
// @Param service_type query string true "Service type"
// @Param amount query string true "Transaction amount"
// @Success 200 {object} response.APIResponse
// @Router /mobile-services/commission-preview [get]
func (h *MobileServiceHandler) PreviewCommission(c *gin.Context) {
	actor, shopID := scope(c)

	amount, err := decimal.NewFromString(c.Query("amount"))
	if err != nil {
		response.Error(c, apperror.NewFieldError("amount", "Amount must be a number"))
		return
	}

	quote, err := h.mobileService.PreviewCommission(c.Request.Context(), actor, shopID, enum.ServiceType(c.Query("service_type")), amount)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Commission calculated", quote)
}

// Create handles recording a service transaction
// @Summary Record service transaction
// @Tags mobile-services
// @Accept json
// @Produce json
// @Param request body request.CreateMobileServiceRequest true "Transaction data"
// @Success 201 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /mobile-services [post]
func (h *MobileServiceHandler) Create(c *gin.Context) {
	var req request.CreateMobileServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	txn, err := h.mobileService.Create(c.Request.Context(), actor, shopID, &service.CreateServiceTransactionInput{
		ServiceType:     req.ServiceType,
		LoadProvider:    req.LoadProvider,
		Amount:          req.Amount,
		Discount:        req.Discount,
		Commission:      req.Commission,
		Status:          req.Status,
		TransactionDate: req.TransactionDate,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		ReferenceID:     req.ReferenceID,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Service transaction recorded successfully", txn)
}

// Get handles getting a service transaction by ID
func (h *MobileServiceHandler) Get(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	txn, err := h.mobileService.Get(c.Request.Context(), actor, shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service transaction retrieved successfully", txn)
}

// Update handles a partial update of a service transaction
// @Summary Update service transaction
// @Tags mobile-services
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body request.UpdateMobileServiceRequest true "Changed fields"
// @Success 200 {object} response.APIResponse
// @Router /mobile-services/{id} [patch]
func (h *MobileServiceHandler) Update(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.UpdateMobileServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	txn, err := h.mobileService.Update(c.Request.Context(), actor, shopID, id, &service.UpdateServiceTransactionInput{
		Amount:        req.Amount,
		Discount:      req.Discount,
		Commission:    req.Commission,
		LoadProvider:  req.LoadProvider,
		Status:        req.Status,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		ReferenceID:   req.ReferenceID,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service transaction updated successfully", txn)
}

// Delete handles deleting a service transaction
func (h *MobileServiceHandler) Delete(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	if err := h.mobileService.Delete(c.Request.Context(), actor, shopID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service transaction deleted successfully", nil)
}
