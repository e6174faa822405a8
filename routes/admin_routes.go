package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/pjrivas16-ctrl/datos-aqg-app/controllers"
	"github.com/pjrivas16-ctrl/datos-aqg-app/middleware"
)

// initAdminRoutes initializes all admin-related routes
func initAdminRoutes(router *gin.RouterGroup) {
	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		// User management
		admin.GET("/users", controllers.AdminListUsers)
		admin.PATCH("/users/:id/block", controllers.AdminBlockUser)

		// Reporting
		admin.GET("/reports/quotes", controllers.AdminDownloadQuoteReport)
	}
}
