package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type InvoiceController struct {
	Invoices *services.InvoiceService
}

func NewInvoiceController(invoices *services.InvoiceService) *InvoiceController {
	return &InvoiceController{Invoices: invoices}
}

// GetInvoices (GET /api/invoices)
func (ic *InvoiceController) GetInvoices(c *gin.Context) {
	invoices, err := ic.Invoices.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoices")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, invoices)
}

// GetInvoice (GET /api/invoices/:id)
func (ic *InvoiceController) GetInvoice(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	inv, err := ic.Invoices.GetByID(id)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "invoice not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load invoice")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, inv)
}
