package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/shopledger-api/internal/application/service"
	"github.com/sangkips/shopledger-api/internal/domain/enum"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/request"
	"github.com/sangkips/shopledger-api/internal/presentation/http/dto/response"
)

// FeeRuleHandler handles the shop's commission policy
type FeeRuleHandler struct {
	feeRuleService *service.FeeRuleService
}

// NewFeeRuleHandler creates a new fee rule handler
func NewFeeRuleHandler(feeRuleService *service.FeeRuleService) *FeeRuleHandler {
	return &FeeRuleHandler{feeRuleService: feeRuleService}
}

// List returns every fee rule configured for the shop
// @Summary List fee rules
// @Tags fee-rules
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /fee-rules [get]
func (h *FeeRuleHandler) List(c *gin.Context) {
	actor, shopID := scope(c)

	rules, err := h.feeRuleService.List(c.Request.Context(), actor, shopID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Fee rules retrieved successfully", rules)
}

// Upsert replaces the rule for one service type
// @Summary Set fee rule
// @Tags fee-rules
// @Accept json
// @Produce json
// @Param serviceType path string true "Service type"
// @Param request body request.UpsertFeeRuleRequest true "Fee rule"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /fee-rules/{serviceType} [put]
func (h *FeeRuleHandler) Upsert(c *gin.Context) {
	var req request.UpsertFeeRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	actor, shopID := scope(c)

	slabs := make([]service.FeeSlabInput, len(req.Slabs))
	for i, s := range req.Slabs {
		slabs[i] = service.FeeSlabInput{MinAmount: s.MinAmount, MaxAmount: s.MaxAmount, Fee: s.Fee}
	}

	rule, err := h.feeRuleService.Upsert(c.Request.Context(), actor, shopID, &service.UpsertFeeRuleInput{
		ServiceType:  enum.ServiceType(c.Param("serviceType")),
		IsPercentage: req.IsPercentage,
		Rate:         req.Rate,
		UseSlabs:     req.UseSlabs,
		Slabs:        slabs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Fee rule saved successfully", rule)
}
