package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
	"github.com/sangkips/shopledger-api/pkg/bizdate"
)

// DailyClosingHandler handles the end-of-day closing screen
type DailyClosingHandler struct {
	closingService *service.ClosingService
	printerService *service.PrinterService
}

// NewDailyClosingHandler creates a new daily closing handler
func NewDailyClosingHandler(closingService *service.ClosingService, printerService *service.PrinterService) *DailyClosingHandler {
	return &DailyClosingHandler{
		closingService: closingService,
		printerService: printerService,
	}
}

// Get returns the day's aggregate, the stored closing if any, and a preview
// @Summary Get daily closing
// @Tags daily-closing
// @Produce json
// @Param date query string false "Business date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.APIResponse
// @Router /daily-closing [get]
func (h *DailyClosingHandler) Get(c *gin.Context) {
	date, err := queryDate(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	var d bizdate.Date
	if date != nil {
		d = *date
	}
	actor, shopID := scope(c)

	view, err := h.closingService.GetClosing(c.Request.Context(), actor, shopID, d)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily closing retrieved successfully", view)
}

// Submit saves the closing for a date, filling omitted fields from the aggregate
// @Summary Submit daily closing
// @Tags daily-closing
// @Accept json
// @Produce json
// @Param request body request.SubmitClosingRequest true "Manual closing entries"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /daily-closing [post]
func (h *DailyClosingHandler) Submit(c *gin.Context) {
	var req request.SubmitClosingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	var date bizdate.Date
	if req.Date != nil {
		date = *req.Date
	}

	result, err := h.closingService.SubmitClosing(c.Request.Context(), actor, shopID, date, &service.ClosingInput{
		CashSales:        req.CashSales,
		JazzLoadSales:    req.JazzLoadSales,
		TelenorLoadSales: req.TelenorLoadSales,
		ZongLoadSales:    req.ZongLoadSales,
		UfoneLoadSales:   req.UfoneLoadSales,
		EasypaisaSales:   req.EasypaisaSales,
		JazzcashSales:    req.JazzcashSales,
		Loan:             req.Loan,
		Inventory:        req.Inventory,
		Receiving:        req.Receiving,
		BankTransfer:     req.BankTransfer,
		Cash:             req.Cash,
		Credit:           req.Credit,
		Notes:            req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Daily closing saved", result)
}

// History lists the most recent closings, newest first
// @Summary Closing history
// @Tags daily-closing
// @Produce json
// @Param limit query int false "Number of days (default 30)"
// @Success 200 {object} response.APIResponse
// @Router /daily-closing/history [get]
func (h *DailyClosingHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	actor, shopID := scope(c)

	closings, err := h.closingService.History(c.Request.Context(), actor, shopID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Closing history retrieved successfully", closings)
}

// Print sends a stored closing to the receipt printer
// @Summary Print daily closing
// @Tags daily-closing
// @Produce json
// @Param date query string true "Business date (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Failure 503 {object} response.APIResponse
// @Router /daily-closing/print [post]
func (h *DailyClosingHandler) Print(c *gin.Context) {
	date, err := requiredDate(c, "date")
	if err != nil {
		response.Error(c, err)
		return
	}
	actor, shopID := scope(c)

	result, err := h.printerService.PrintClosing(c.Request.Context(), actor, shopID, date)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !result.Printed {
		response.OK(c, "Printer is disabled, closing was not printed", result)
		return
	}
	response.OK(c, "Closing sent to printer", result)
}
