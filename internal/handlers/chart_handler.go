package handler

import (
	"net/http"

	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type ChartHandler struct {
	actions   *actions.Service
	dashboard *dashboard.Service
}

func NewChartHandler(a *actions.Service, d *dashboard.Service) *ChartHandler {
	return &ChartHandler{actions: a, dashboard: d}
}

func (h *ChartHandler) List(c *gin.Context) {
	query := c.Query("query")
	page := pageParam(c)

	charts, err := h.dashboard.FetchFilteredCharts(c.Request.Context(), query, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	pages, err := h.dashboard.FetchChartsPages(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listingResponse{Data: charts, TotalPages: pages, Page: page})
}

func (h *ChartHandler) Get(c *gin.Context) {
	chart, err := h.dashboard.FetchChartByID(c.Request.Context(), c.Param("cid"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, chart)
}

func (h *ChartHandler) Create(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	state, err := h.actions.CreateChart(c.Request.Context(), actions.ActionState{}, form)
	renderState(c, state, err)
}

// Update edits the chart keyed by the cid path segment. A cid in the body is ignored.
func (h *ChartHandler) Update(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	state, err := h.actions.UpdateChart(c.Request.Context(), c.Param("cid"), actions.ActionState{}, form)
	renderState(c, state, err)
}

func (h *ChartHandler) Delete(c *gin.Context) {
	state, err := h.actions.DeleteChart(c.Request.Context(), c.Param("cid"))
	renderState(c, state, err)
}
