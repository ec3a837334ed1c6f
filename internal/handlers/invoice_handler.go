package handler

import (
	"net/http"

	"charty-dashboard-backend/internal/services/actions"
	"charty-dashboard-backend/internal/services/dashboard"

	"github.com/gin-gonic/gin"
)

type InvoiceHandler struct {
	actions   *actions.Service
	dashboard *dashboard.Service
}

func NewInvoiceHandler(a *actions.Service, d *dashboard.Service) *InvoiceHandler {
	return &InvoiceHandler{actions: a, dashboard: d}
}

// List serves GET /dashboard/invoices?query=&page=
func (h *InvoiceHandler) List(c *gin.Context) {
	query := c.Query("query")
	page := pageParam(c)

	rows, err := h.dashboard.FetchFilteredInvoices(c.Request.Context(), query, page)
	if err != nil {
		_ = c.Error(err)
		return
	}
	pages, err := h.dashboard.FetchInvoicesPages(c.Request.Context(), query)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, listingResponse{Data: rows, TotalPages: pages, Page: page})
}

func (h *InvoiceHandler) Latest(c *gin.Context) {
	latest, err := h.dashboard.FetchLatestInvoices(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": latest})
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	invoice, err := h.dashboard.FetchInvoiceByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	state, err := h.actions.CreateInvoice(c.Request.Context(), actions.ActionState{}, form)
	renderState(c, state, err)
}

func (h *InvoiceHandler) Update(c *gin.Context) {
	form, err := readForm(c)
	if err != nil {
		_ = c.Error(err)
		return
	}
	state, err := h.actions.UpdateInvoice(c.Request.Context(), c.Param("id"), actions.ActionState{}, form)
	renderState(c, state, err)
}

func (h *InvoiceHandler) Delete(c *gin.Context) {
	state, err := h.actions.DeleteInvoice(c.Request.Context(), c.Param("id"))
	renderState(c, state, err)
}

func (h *InvoiceHandler) Customers(c *gin.Context) {
	customers, err := h.dashboard.FetchCustomers(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": customers})
}
