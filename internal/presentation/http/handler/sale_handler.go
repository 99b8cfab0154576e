package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/domain/repository"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

// SaleHandler handles POS sale requests
type SaleHandler struct {
	saleService *service.SaleService
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(saleService *service.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// List handles listing sales
// @Summary List sales
// @Tags sales
// @Produce json
// @Param date query string false "Sale date (YYYY-MM-DD)"
// @Param payment_method query string false "Payment method"
// @Success 200 {object} response.APIResponse
// @Router /sales [get]
func (h *SaleHandler) List(c *gin.Context) {
	date, err := queryDate(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	params := &repository.SaleFilterParams{
		Pagination: queryPagination(c),
		Date:       date,
	}
	if pm := c.Query("payment_method"); pm != "" {
		method := enum.PaymentMethod(pm)
		params.PaymentMethod = &method
	}
	actor, shopID := scope(c)

	sales, page, err := h.saleService.ListSales(c.Request.Context(), actor, shopID, params)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, "Sales retrieved successfully", sales, page)
}

// Create handles recording a sale
// @Summary Record sale
// @Tags sales
// @Accept json
// @Produce json
// @Param request body request.CreateSaleRequest true "Sale data"
// @Success 201 {object} response.APIResponse
// @Router /sales [post]
func (h *SaleHandler) Create(c *gin.Context) {
	var req request.CreateSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	sale, err := h.saleService.CreateSale(c.Request.Context(), actor, shopID, &service.CreateSaleInput{
		TotalAmount:   req.TotalAmount,
		PaymentMethod: req.PaymentMethod,
		SaleDate:      req.SaleDate,
		InvoiceNo:     req.InvoiceNo,
		CustomerName:  req.CustomerName,
		Notes:         req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Sale recorded successfully", sale)
}

// Delete handles deleting a sale
func (h *SaleHandler) Delete(c *gin.Context) {
	id, err := paramUUID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	if err := h.saleService.DeleteSale(c.Request.Context(), actor, shopID, id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale deleted successfully", nil)
}
