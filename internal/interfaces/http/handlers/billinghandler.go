package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"coachdesk/internal/application/billing/gateway"
	"coachdesk/internal/application/billing/usecases"
	"coachdesk/internal/interfaces/http/middleware"
	"coachdesk/internal/shared/logger"
	"coachdesk/internal/shared/utils"
)

type BillingHandler struct {
	applyEventUseCase *usecases.ApplyBillingEventUseCase
	updatePlanUseCase *usecases.UpdatePlanUseCase
	checkoutUseCase   *usecases.CreateCheckoutUseCase
	pricingUseCase    *usecases.GetPricingUseCase
	syncUseCase       *usecases.SyncSubscriptionUseCase
	gateway           gateway.BillingGateway
	logger            logger.Interface
}

func NewBillingHandler(
	applyEventUC *usecases.ApplyBillingEventUseCase,
	updatePlanUC *usecases.UpdatePlanUseCase,
	checkoutUC *usecases.CreateCheckoutUseCase,
	pricingUC *usecases.GetPricingUseCase,
	syncUC *usecases.SyncSubscriptionUseCase,
	gw gateway.BillingGateway,
	logger logger.Interface,
) *BillingHandler {
	return &BillingHandler{
		applyEventUseCase: applyEventUC,
		updatePlanUseCase: updatePlanUC,
		checkoutUseCase:   checkoutUC,
		pricingUseCase:    pricingUC,
		syncUseCase:       syncUC,
		gateway:           gw,
		logger:            logger,
	}
}

type UpdatePlanRequest struct {
	Plan string `json:"plan" binding:"required"`
}

type CheckoutRequest struct {
	Plan       string `json:"plan" binding:"required"`
	SuccessURL string `json:"success_url" binding:"required,url"`
	CancelURL  string `json:"cancel_url" binding:"required,url"`
}

// Webhook receives status-change notifications from the payment gateway.
// The gateway signs each delivery; unverifiable requests are rejected before
// any state is touched.
func (h *BillingHandler) Webhook(c *gin.Context) {
	event, err := h.gateway.VerifyWebhook(c.Request)
	if err != nil {
		h.logger.Warnw("webhook verification failed", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid webhook signature")
		return
	}

	if _, err := h.applyEventUseCase.Execute(c.Request.Context(), event); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Event processed", nil)
}

func (h *BillingHandler) UpdatePlan(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.updatePlanUseCase.Execute(c.Request.Context(), usecases.UpdatePlanCommand{
		TrainerID: trainerID,
		Plan:      req.Plan,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Plan updated successfully", result)
}

func (h *BillingHandler) CreateCheckout(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request format: "+err.Error())
		return
	}

	result, err := h.checkoutUseCase.Execute(c.Request.Context(), usecases.CreateCheckoutCommand{
		TrainerID:  trainerID,
		Plan:       req.Plan,
		SuccessURL: req.SuccessURL,
		CancelURL:  req.CancelURL,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Checkout session created")
}

func (h *BillingHandler) GetPricing(c *gin.Context) {
	result, err := h.pricingUseCase.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// SyncSubscription polls the gateway directly, as a fallback when webhook
// delivery is in doubt.
func (h *BillingHandler) SyncSubscription(c *gin.Context) {
	trainerID, ok := middleware.TrainerID(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "missing trainer session")
		return
	}

	result, err := h.syncUseCase.Execute(c.Request.Context(), usecases.SyncSubscriptionCommand{
		TrainerID: trainerID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Subscription synced", result)
}
