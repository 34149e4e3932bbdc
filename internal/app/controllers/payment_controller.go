package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lenslearn/backend/internal/app/models"
	"github.com/lenslearn/backend/internal/app/models/dto"
	"github.com/lenslearn/backend/internal/app/services"
	"github.com/lenslearn/backend/internal/middleware"
)

// PaymentController handles the payment intent and payment record routes
type PaymentController struct {
	paymentService services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateIntent handles POST /create-payment-intent and POST /payments
// (historically the same operation under two paths). Runs behind JWTAuth.
func (c *PaymentController) CreateIntent(ctx *gin.Context) {
	var req dto.CreateIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	clientSecret, err := c.paymentService.CreateIntent(ctx, req.Price)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.IntentResponse{ClientSecret: clientSecret})
}

// SavePayment handles POST /save-payment. The caller reports a completed
// charge; recording is idempotent on the gateway transaction id, so a
// retried call cannot produce a second record.
func (c *PaymentController) SavePayment(ctx *gin.Context) {
	var req dto.SavePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid payment data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	payment := &models.Payment{
		Email:         req.Email,
		Amount:        req.Amount,
		TransactionID: req.TransactionID,
		ClassIDs:      req.ClassIDs,
	}

	created, err := c.paymentService.RecordPayment(ctx, payment)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if !created {
		ctx.JSON(http.StatusOK, dto.SuccessResponse{Message: "Payment already recorded"})
		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// GetPayments handles GET /save-payment, listing the caller's payment
// records. Runs behind JWTAuth; the email comes from the verified token,
// never from the request.
func (c *PaymentController) GetPayments(ctx *gin.Context) {
	email := ctx.GetString(middleware.ContextEmailKey)

	payments, err := c.paymentService.ListPayments(ctx, email)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, payments)
}
