package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/myurcick/profkomlviv-sub000/internal/app/controllers"
	"github.com/myurcick/profkomlviv-sub000/internal/app/models/dto"
	"github.com/myurcick/profkomlviv-sub000/internal/middleware"
)

// SetupRouter configures all application routes. Reads are public, all
// mutations sit behind the admin JWT.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	newsController *controllers.NewsController,
	teamController *controllers.TeamController,
	profController *controllers.ProfController,
	unitController *controllers.UnitController,
	uploadController *controllers.UploadController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	api.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, dto.HealthResponse{
			Status:  "ok",
			Message: "Server is running",
		})
	})

	// --- Public read routes ---
	news := api.Group("/news")
	{
		news.GET("", newsController.List)
		news.GET("/:id", newsController.GetByID)
	}

	team := api.Group("/team")
	{
		team.GET("", teamController.List)
		team.GET("/available-heads", teamController.AvailableHeads)
		team.GET("/:id", teamController.GetByID)
	}

	prof := api.Group("/prof")
	{
		prof.GET("", profController.List)
		prof.GET("/:id", profController.GetByID)
	}

	unit := api.Group("/unit")
	{
		unit.GET("", unitController.List)
		unit.GET("/:id", unitController.GetByID)
	}

	// --- Public auth routes ---
	api.POST("/admin/login", authController.Login)

	// --- Protected mutation routes ---
	protected := api.Group("")
	protected.Use(authMiddleware.JWTAuth())
	{
		protected.POST("/news", newsController.Create)
		protected.PUT("/news/:id", newsController.Update)
		protected.DELETE("/news/:id", newsController.Delete)

		protected.POST("/team", teamController.Create)
		protected.PUT("/team/:id", teamController.Update)
		protected.DELETE("/team/:id", teamController.Delete)

		protected.POST("/prof", profController.Create)
		protected.PUT("/prof/:id", profController.Update)
		protected.DELETE("/prof/:id", profController.Delete)

		protected.POST("/unit", unitController.Create)
		protected.PUT("/unit/:id", unitController.Update)
		protected.DELETE("/unit/:id", unitController.Delete)

		protected.POST("/uploads", uploadController.Upload)
	}
}
