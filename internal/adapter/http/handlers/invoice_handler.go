package handlers

import (
	"errors"
	"net/http"

	response "ikhaya/internal/adapter/http/dto/response"
	"ikhaya/internal/adapter/http/middleware"
	"ikhaya/internal/usecase"
	"ikhaya/pkg"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler serves the commission invoices of the calling landlord.
type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

// ListInvoices godoc
// @Summary   List the caller's commission invoices
// @Tags      invoices
// @Produce   json
// @Success   200  {array}  response.InvoiceResponse
// @Security  Bearer
// @Router    /invoices [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.ListInvoicesForLandlord(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

// GetInvoice godoc
// @Summary   Get a commission invoice
// @Tags      invoices
// @Produce   json
// @Param     id   path      string  true  "Invoice ID"
// @Success   200  {object}  response.InvoiceResponse
// @Failure   403  {object}  pkg.HTTPError
// @Failure   404  {object}  pkg.HTTPError
// @Security  Bearer
// @Router    /invoices/{id} [get]
func (h *InvoiceHandler) GetInvoice(c *gin.Context) {
	inv, err := h.usecase.GetInvoice(c.Request.Context(), c.Param("id"), middleware.UserID(c))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(inv))
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidInvoiceID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
