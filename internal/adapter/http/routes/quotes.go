package routes

import (
	"vaif_quotes/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes   = "/quotes"
	PathPayments = "/payments"
	PathCatalog  = "/catalog"
	PathPing     = "/ping"
)

func addPingRoutes(rg *gin.RouterGroup) {
	rg.GET(PathPing, handlers.Ping)
}

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	rg.GET(PathCatalog, catalogHandler.ListCatalog)
}

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler, paymentHandler *handlers.QuotePaymentHandler) {
	quotes := rg.Group(PathQuotes)
	{
		// Quote builder flow.
		quotes.POST("/analyze", quoteHandler.Analyze)
		quotes.POST("/estimate", quoteHandler.Estimate)
		quotes.POST("/generate", quoteHandler.Generate)

		quotes.GET("/:id", quoteHandler.GetQuote)
		quotes.PATCH("/:id/accept", quoteHandler.AcceptQuote)
		quotes.PATCH("/:id/reject", quoteHandler.RejectQuote)
		quotes.PATCH("/:id/cancel", quoteHandler.CancelQuote)

		quotes.POST("/:id/payments", paymentHandler.CreateDeposit)
		quotes.GET("/:id/payments", paymentHandler.GetLatestByQuoteID)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:payment_id", paymentHandler.GetPayment)
	}
}
