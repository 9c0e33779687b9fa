package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tanmay/coachdesk/internal/app/models/dto"
	"github.com/tanmay/coachdesk/internal/app/services"
	"github.com/tanmay/coachdesk/internal/middleware"
)

// PaymentController handles the two-phase payment settlement endpoints.
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{paymentService: paymentService}
}

// CreateOrder reserves a payment order with the gateway.
// @Summary Create a payment order
// @Description Reserves an order with the payment gateway for the student's fees. No ledger mutation happens here.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.CreateOrderRequest true "Amount in minor currency units and target student"
// @Success 200 {object} dto.CreateOrderResponse "Order reserved"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 500 {object} dto.ErrorResponse "Gateway error"
// @Router /payments/orders [post]
func (c *PaymentController) CreateOrder(ctx *gin.Context) {
	var req dto.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	order, err := c.paymentService.CreateOrder(ctx.Request.Context(), req.Amount, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.CreateOrderResponse{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
	})
}

// VerifyPayment verifies a completion callback and settles the ledger.
// @Summary Verify a payment and settle fees
// @Description Recomputes the keyed signature over orderId|paymentId and, only on a constant-time match, marks the student's fees paid. Repeating a valid settle is a no-op success.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body dto.VerifyPaymentRequest true "Gateway callback parameters"
// @Success 200 {object} dto.APIResponse "Payment verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid signature or unknown student"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/verify [put]
func (c *PaymentController) VerifyPayment(ctx *gin.Context) {
	var req dto.VerifyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	err := c.paymentService.Settle(ctx.Request.Context(), req.OrderID, req.PaymentID, req.Signature, req.StudentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(nil, "Payment verified successfully."))
}
