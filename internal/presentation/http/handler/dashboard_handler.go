package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/bookstore-api/internal/presentation/http/dto/request"
	"github.com/sangkips/bookstore-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	dashboardService SalesReporter
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService SalesReporter) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GetSalesReport handles the sales report for a date range
// @Summary Sales report
// @Description Daily revenue and units, range totals, best sellers and order stats
// @Tags dashboard
// @Produce json
// @Param start query string false "First day (YYYY-MM-DD)"
// @Param end query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} response.APIResponse
// @Failure 400 {object} response.APIResponse
// @Router /dashboard/sales [get]
func (h *DashboardHandler) GetSalesReport(c *gin.Context) {
	var query request.SalesReportQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	rng, err := h.dashboardService.ResolveRange(query.Start, query.End)
	if err != nil {
		response.Error(c, err)
		return
	}

	report, err := h.dashboardService.GetSalesReport(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales report retrieved successfully", report)
}

// GetStats handles the order completion counters
// @Summary Order stats
// @Tags dashboard
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboardService.GetOrderStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Order stats retrieved successfully", stats)
}
