package routes

import (
	"invoicer/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathTotals   = "/totals"
	PathPayments = "/payments"
)

func addInvoiceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler, paymentHandler *handlers.InvoicePaymentHandler) {
	rg.POST(PathTotals, invoiceHandler.CalculateTotals)

	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("/next-id", invoiceHandler.NextInvoiceID)
		invoices.GET("/new", invoiceHandler.NewInvoice)
		invoices.GET("/:id", invoiceHandler.GetInvoice)
		invoices.PUT("/:id", invoiceHandler.UpdateInvoice)
		invoices.DELETE("/:id", invoiceHandler.DeleteInvoice)
		invoices.GET("/:id/document", invoiceHandler.GetInvoiceDocument)

		invoices.POST("/:id"+PathPayments, paymentHandler.PayInvoice)
		invoices.GET("/:id"+PathPayments, paymentHandler.ListInvoicePayments)
	}
}
