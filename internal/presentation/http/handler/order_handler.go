package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bookstore-api/internal/domain/repository"
	"github.com/sangkips/bookstore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bookstore-api/internal/presentation/http/dto/response"
	"github.com/sangkips/bookstore-api/pkg/pagination"
)

// OrderHandler handles order-related HTTP requests
type OrderHandler struct {
	orderService OrderManager
}

// NewOrderHandler creates a new order handler
func NewOrderHandler(orderService OrderManager) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// List handles listing orders
// @Summary List orders
// @Tags orders
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param completed query bool false "Filter by completion"
// @Param email query string false "Filter by buyer email"
// @Success 200 {object} response.APIResponse
// @Router /orders [get]
func (h *OrderHandler) List(c *gin.Context) {
	var query request.ListOrdersQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	result, err := h.orderService.ListOrders(c.Request.Context(), &repository.OrderFilterParams{
		Pagination: &pagination.PaginationParams{Page: query.Page, PerPage: query.PerPage},
		Email:      query.Email,
		Completed:  query.Completed,
		SortOrder:  query.SortOrder,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Orders retrieved successfully", result)
}

// Get handles getting a single order with its books
// @Summary Get order
// @Tags orders
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} response.APIResponse
// @Failure 404 {object} response.APIResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	order, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order retrieved successfully", order)
}

// UpdateStatus handles marking an order completed or pending
// @Summary Update order status
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /orders/{id}/status [patch]
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), id, *req.Completed)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order status updated successfully", order)
}

// ConfirmReceipt handles the buyer confirming delivery
// @Summary Confirm receipt
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param request body request.ConfirmReceiptRequest true "Buyer email"
// @Success 200 {object} response.APIResponse
// @Failure 403 {object} response.APIResponse
// @Router /orders/{id}/confirm-receipt [patch]
func (h *OrderHandler) ConfirmReceipt(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.ConfirmReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	order, err := h.orderService.ConfirmReceipt(c.Request.Context(), id, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Receipt confirmed", gin.H{
		"id":              order.ID,
		"completed":       order.Completed,
		"buyer_confirmed": order.BuyerConfirmed,
	})
}
