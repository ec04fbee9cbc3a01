package handler

import (
	"net/http"

	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.POST("/:id/transition", h.TransitionOrder)
	}
}

// @Summary      List purchase orders
// @Tags         Orders
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.orderService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, orders))
}

// @Summary      Get a purchase order
// @Tags         Orders
// @Produce      json
// @Param        id path string true "Order ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.Get(c.Param("id"))
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// @Summary      Create a purchase order
// @Description  Raises an order from an approved purchase request; lines are copied from the request
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        order body service.CreateOrderDTO true "Order payload"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "Validation failed or source request not approved"
// @Failure      404 {object} response.Response
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.orderService.Create(req)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, order))
}

// @Summary      Transition a purchase order
// @Tags         Orders
// @Accept       json
// @Produce      json
// @Param        id path string true "Order ID"
// @Param        transition body TransitionDTO true "Target status"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid transition"
// @Failure      404 {object} response.Response
// @Router       /api/orders/{id}/transition [post]
func (h *OrderHandler) TransitionOrder(c *gin.Context) {
	var req TransitionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	order, err := h.orderService.Transition(c.Param("id"), req.Status)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}
