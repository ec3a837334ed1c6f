package handler

import (
	"net/http"

	"charty-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboard *dashboard.Service
}

func NewDashboardHandler(d *dashboard.Service) *DashboardHandler {
	return &DashboardHandler{dashboard: d}
}

func (h *DashboardHandler) Cards(c *gin.Context) {
	cards, err := h.dashboard.FetchCardData(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, cards)
}
