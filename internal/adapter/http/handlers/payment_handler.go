package handlers

import (
	"errors"
	"log"
	"net/http"

	request "ikhaya/internal/adapter/http/dto/request"
	response "ikhaya/internal/adapter/http/dto/response"
	"ikhaya/internal/adapter/http/middleware"
	"ikhaya/internal/usecase"
	"ikhaya/pkg"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles HTTP requests for invoice payments.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// RecordPayment godoc
// @Summary      Record a payment against an invoice
// @Description  With payment_method "mercadopago" the mp_payload is charged through Mercado Pago first.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                        true  "Invoice ID"
// @Param        payment  body      request.RecordPaymentRequest  true  "Payment"
// @Success      201      {object}  response.PaymentResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Security     Bearer
// @Router       /invoices/{id}/payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	invoiceID := c.Param("id")
	log.Printf("[payment][handler] record start invoice_id=%s", invoiceID)

	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[payment][handler] invalid payload invoice_id=%s err=%v", invoiceID, err)
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	in, err := payload.ToInput(invoiceID, middleware.UserID(c))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	created, err := h.usecase.RecordPayment(c.Request.Context(), in)
	if err != nil {
		log.Printf("[payment][handler] record failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success invoice_id=%s payment_id=%s", invoiceID, created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPayments godoc
// @Summary   List the payments of an invoice
// @Tags      payments
// @Produce   json
// @Param     id   path     string  true  "Invoice ID"
// @Success   200  {array}  response.PaymentResponse
// @Security  Bearer
// @Router    /invoices/{id}/payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	invoiceID := c.Param("id")
	payments, err := h.usecase.ListPaymentsForInvoice(c.Request.Context(), invoiceID, middleware.UserID(c))
	if err != nil {
		log.Printf("[payment][handler] list failed invoice_id=%s err=%v", invoiceID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func mapPaymentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentAmount),
		errors.Is(err, usecase.ErrInvalidPaymentMethod),
		errors.Is(err, usecase.ErrInvalidPaymentLandlord),
		errors.Is(err, request.ErrInvalidDate):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_INPUT", err.Error(), http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvoiceID), errors.Is(err, usecase.ErrInvalidProviderPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvoiceForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", err.Error(), http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment was not approved by the provider", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider rejected the service credentials", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainError("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
