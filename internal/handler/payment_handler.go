package handler

import (
	"net/http"

	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	paymentService service.PaymentService
}

func NewPaymentHandler(paymentService service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) RegisterRoutes(router *gin.RouterGroup) {
	payments := router.Group("/api/payments")
	{
		payments.GET("", h.ListPayments)
		payments.POST("", h.CreatePayment)
		payments.GET("/:id", h.GetPayment)
		payments.POST("/:id/transition", h.TransitionPayment)
	}
}

// @Summary      List payment requests
// @Tags         Payments
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.paymentService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payments))
}

// @Summary      Get a payment request
// @Tags         Payments
// @Produce      json
// @Param        id path string true "Payment ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /api/payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	payment, err := h.paymentService.Get(c.Param("id"))
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payment))
}

// @Summary      Create a payment request
// @Description  Raises a payment against an order; the amount may not exceed the order's remaining balance
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        payment body service.CreatePaymentDTO true "Payment payload"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "Validation failed, unknown order or amount exceeds balance"
// @Router       /api/payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req service.CreatePaymentDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	payment, err := h.paymentService.Create(req)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, payment))
}

// @Summary      Transition a payment request
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        id path string true "Payment ID"
// @Param        transition body TransitionDTO true "Target status"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid transition"
// @Failure      404 {object} response.Response
// @Router       /api/payments/{id}/transition [post]
func (h *PaymentHandler) TransitionPayment(c *gin.Context) {
	var req TransitionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	payment, err := h.paymentService.Transition(c.Param("id"), req.Status)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, payment))
}
