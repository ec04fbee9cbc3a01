package handler

import (
	"net/http"

	"procurement/internal/service"
	"procurement/pkg/response"

	"github.com/gin-gonic/gin"
)

type RequestHandler struct {
	requestService service.RequestService
}

func NewRequestHandler(requestService service.RequestService) *RequestHandler {
	return &RequestHandler{requestService: requestService}
}

func (h *RequestHandler) RegisterRoutes(router *gin.RouterGroup) {
	requests := router.Group("/api/requests")
	{
		requests.GET("", h.ListRequests)
		requests.POST("", h.CreateRequest)
		requests.GET("/:id", h.GetRequest)
		requests.PUT("/:id", h.UpdateRequest)
		requests.DELETE("/:id", h.DeleteRequest)
		requests.POST("/:id/transition", h.TransitionRequest)
	}
}

// @Summary      List purchase requests
// @Description  Returns all purchase requests enriched with product names and totals
// @Tags         Requests
// @Produce      json
// @Success      200 {object} response.Response
// @Router       /api/requests [get]
func (h *RequestHandler) ListRequests(c *gin.Context) {
	requests, err := h.requestService.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, requests))
}

// @Summary      Get a purchase request
// @Tags         Requests
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /api/requests/{id} [get]
func (h *RequestHandler) GetRequest(c *gin.Context) {
	request, err := h.requestService.Get(c.Param("id"))
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, request))
}

// @Summary      Create a purchase request
// @Description  Creates a draft purchase request with at least one line item
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Param        request body service.CreateRequestDTO true "Request payload"
// @Success      201 {object} response.Response
// @Failure      400 {object} response.Response "Validation failed"
// @Router       /api/requests [post]
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	var req service.CreateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.Create(req)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, request))
}

// @Summary      Edit a draft purchase request
// @Description  Replaces lines and metadata; allowed only while the request is a draft
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        request body service.CreateRequestDTO true "Request payload"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /api/requests/{id} [put]
func (h *RequestHandler) UpdateRequest(c *gin.Context) {
	var req service.UpdateRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.Update(c.Param("id"), req)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, request))
}

// @Summary      Delete a purchase request
// @Description  Unconditional removal; dependent orders keep a dangling reference
// @Tags         Requests
// @Produce      json
// @Param        id path string true "Request ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response
// @Router       /api/requests/{id} [delete]
func (h *RequestHandler) DeleteRequest(c *gin.Context) {
	if err := h.requestService.Delete(c.Param("id")); err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, gin.H{"deleted": c.Param("id")}))
}

// @Summary      Transition a purchase request
// @Description  Moves the request along its status life-cycle
// @Tags         Requests
// @Accept       json
// @Produce      json
// @Param        id path string true "Request ID"
// @Param        transition body TransitionDTO true "Target status"
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "Invalid transition"
// @Failure      404 {object} response.Response
// @Router       /api/requests/{id}/transition [post]
func (h *RequestHandler) TransitionRequest(c *gin.Context) {
	var req TransitionDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "Invalid request payload: "+err.Error()))
		return
	}

	request, err := h.requestService.Transition(c.Param("id"), req.Status)
	if err != nil {
		status := httpStatus(err)
		c.JSON(status, response.Error(status, err.Error()))
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, request))
}
