package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/danandika/mhs-api/internal/app/controllers"
	"github.com/danandika/mhs-api/internal/app/models/dto"
	"github.com/danandika/mhs-api/internal/middleware"
)

// SetupRouter populates the dispatch table. The table is fixed and built
// once per worker at startup; there is no dynamic route discovery.
func SetupRouter(
	router *gin.Engine,
	homeController *controllers.HomeController,
	studentController *controllers.StudentController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// Static pages
	router.GET("/", homeController.Home)
	router.GET("/about", homeController.About)

	// Student record resource
	mhs := router.Group("/mhs")
	{
		// Creation is public: it is the operation that issues the token.
		mhs.POST("/create", studentController.Create)

		protected := mhs.Group("")
		protected.Use(authMiddleware.JWTAuth())
		{
			protected.GET("/results", studentController.List)
			protected.GET("/result", studentController.Get)
			protected.GET("/result/:id", studentController.Get)

			protected.PUT("/update/:id", studentController.Update)
			protected.PUT("/update", studentController.Update)
			// POST alias kept for the legacy client
			protected.POST("/update/:id", studentController.Update)
			protected.POST("/update", studentController.Update)

			protected.DELETE("/delete/:id", studentController.Delete)
			protected.DELETE("/delete", studentController.Delete)
		}
	}

	// Health check endpoint (public)
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, dto.NewSuccess(200, c.Request.Method, "ok"))
	})
}
