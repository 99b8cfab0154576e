package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

// PurchaseHandler handles stock purchase and supplier requests
type PurchaseHandler struct {
	purchaseService *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseService *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseService: purchaseService}
}

// List handles listing purchases
// @Summary List purchases
// @Tags purchases
// @Produce json
// @Param status query int false "0 unpaid, 1 partial, 2 paid"
// @Param supplier_id query string false "Supplier ID"
// @Param start_date query string false "From (YYYY-MM-DD)"
// @Param end_date query string false "To (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Router /purchases [get]
func (h *PurchaseHandler) List(c *gin.Context) {
	params := &repository.PurchaseFilterParams{Pagination: queryPagination(c)}

	if statusStr := c.Query("status"); statusStr != "" {
		statusInt, err := strconv.Atoi(statusStr)
		if err == nil {
			status := enum.PurchaseStatus(statusInt)
			params.Status = &status
		}
	}
	if supplierIDStr := c.Query("supplier_id"); supplierIDStr != "" {
		supplierID, err := uuid.Parse(supplierIDStr)
		if err != nil {
			response.BadRequest(c, "Invalid supplier_id format")
			return
		}
		params.SupplierID = &supplierID
	}

	var err error
	if params.StartDate, err = queryDate(c, "start_date"); err != nil {
		response.Error(c, err)
		return
	}
	if params.EndDate, err = queryDate(c, "end_date"); err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	result, err := h.purchaseService.ListPurchases(c.Request.Context(), actor, shopID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Purchases retrieved successfully", result.Items, result.Pagination)
}

// Create handles recording a purchase
// @Summary Create purchase
// @Tags purchases
// @Accept json
// @Produce json
// @Param request body request.CreatePurchaseRequest true "Purchase data"
// @Success 201 {object} response.APIResponse
// @Router /purchases [post]
func (h *PurchaseHandler) Create(c *gin.Context) {
	var req request.CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	purchase, err := h.purchaseService.CreatePurchase(c.Request.Context(), actor, shopID, &service.CreatePurchaseInput{
		SupplierID:    req.SupplierID,
		PurchaseNo:    req.PurchaseNo,
		PurchaseDate:  req.PurchaseDate,
		TotalAmount:   req.TotalAmount,
		PaidAmount:    req.PaidAmount,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Purchase created successfully", purchase)
}

// Get handles getting a purchase with its payments
func (h *PurchaseHandler) Get(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	purchase, err := h.purchaseService.GetPurchase(c.Request.Context(), actor, shopID, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Purchase retrieved successfully", purchase)
}

// RecordPayment pays a supplier against a purchase
// @Summary Pay supplier
// @Tags purchases
// @Accept json
// @Produce json
// @Param id path string true "Purchase ID"
// @Param request body request.SupplierPaymentRequest true "Payment"
// @Success 200 {object} response.APIResponse
// @Router /purchases/{id}/payments [post]
func (h *PurchaseHandler) RecordPayment(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req request.SupplierPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	purchase, err := h.purchaseService.RecordPayment(c.Request.Context(), actor, shopID, &service.RecordSupplierPaymentInput{
		PurchaseID:    id,
		Amount:        req.Amount,
		PaymentDate:   req.PaymentDate,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Payment recorded successfully", purchase)
}

// ListSuppliers handles listing suppliers
func (h *PurchaseHandler) ListSuppliers(c *gin.Context) {
	actor, shopID := scope(c)

	result, err := h.purchaseService.ListSuppliers(c.Request.Context(), actor, shopID, queryPagination(c), c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Suppliers retrieved successfully", result.Items, result.Pagination)
}

// CreateSupplier handles creating a supplier
func (h *PurchaseHandler) CreateSupplier(c *gin.Context) {
	var req request.CreateSupplierRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	supplier, err := h.purchaseService.CreateSupplier(c.Request.Context(), actor, shopID, &service.CreateSupplierInput{
		Name:    req.Name,
		Phone:   req.Phone,
		Address: req.Address,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Supplier created successfully", supplier)
}
