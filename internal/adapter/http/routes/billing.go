package routes

import (
	"ikhaya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
)

func addBillingRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.PaymentHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.POST("/:id/payments", paymentHandler.RecordPayment)
		invoices.GET("/:id/payments", paymentHandler.ListPayments)
	}
}
