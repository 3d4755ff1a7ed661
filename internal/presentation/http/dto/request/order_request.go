package request

// ListOrdersQuery represents the query string of the order listing
type ListOrdersQuery struct {
	Page      int    `form:"page"`
	PerPage   int    `form:"per_page"`
	Completed *bool  `form:"completed"`
	Email     string `form:"email" binding:"omitempty,email"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc ASC DESC"`
}

// UpdateOrderStatusRequest sets an order's completion flag
type UpdateOrderStatusRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}

// ConfirmReceiptRequest is sent by the buyer to confirm delivery
type ConfirmReceiptRequest struct {
	Email string `json:"email" binding:"required,email"`
}
