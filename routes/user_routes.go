package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/controllers"
	"github.com/pjrivas16-ctrl/datos-aqg-app/middleware"
)

// initUserRoutes initializes all dealer-facing routes
func initUserRoutes(router *gin.RouterGroup) {
	// Public routes (no authentication required)
	router.POST("/register", controllers.RegisterUser)
	router.POST("/login", controllers.LoginUser)

	// Catalog routes
	router.GET("/catalog/lines", controllers.GetProductLines)
	router.GET("/catalog/dimensions", controllers.GetDimensions)
	router.GET("/catalog/price", controllers.GetBasePrice)
	router.GET("/catalog/options", controllers.GetCatalogOptions)

	// Protected routes (require authentication)
	protected := router.Group("/user")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/logout", controllers.LogoutUser)
		protected.GET("/profile", controllers.GetProfile)
		protected.PUT("/profile", controllers.UpdateProfile)
		protected.POST("/promotion/activate", controllers.ActivatePromotion)

		// Wizard draft
		protected.GET("/draft", controllers.GetDraft)
		protected.PUT("/draft", controllers.SaveDraft)
		protected.DELETE("/draft", controllers.ClearDraft)

		// Quote operations
		protected.POST("/quotes", controllers.CreateQuote)
		protected.GET("/quotes", controllers.ListQuotes)
		protected.GET("/quotes/:id", controllers.GetQuote)
		protected.PUT("/quotes/:id", controllers.UpdateQuoteDetails)
		protected.DELETE("/quotes/:id", controllers.DeleteQuote)
		protected.POST("/quotes/:id/duplicate", controllers.DuplicateQuote)
		protected.PATCH("/quotes/:id/order", controllers.MarkQuoteOrdered)
		protected.PUT("/quotes/:id/discounts", controllers.SetQuoteDiscounts)

		// Quote items
		protected.POST("/quotes/:id/items", controllers.AddQuoteItem)
		protected.PUT("/quotes/:id/items/:itemKey", controllers.UpdateQuoteItem)
		protected.DELETE("/quotes/:id/items/:itemKey", controllers.RemoveQuoteItem)

		// Documents
		protected.GET("/quotes/:id/pdf", controllers.DownloadQuotePDF)
		protected.POST("/quotes/:id/email", controllers.EmailQuote)
	}
}
