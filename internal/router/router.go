package router

import (
	"github.com/gin-gonic/gin"
	"github.com/vitrina/vitrina-backend/config"
	"github.com/vitrina/vitrina-backend/internal/app/controller"
	"github.com/vitrina/vitrina-backend/internal/middleware"
)

type Router struct {
	authController    *controller.AuthController
	productController *controller.ProductController
	optionController  *controller.OptionController
	variantController *controller.VariantController
	authMiddleware    *middleware.AuthMiddleware
	config            *config.Config
}

func NewRouter(
	authController *controller.AuthController,
	productController *controller.ProductController,
	optionController *controller.OptionController,
	variantController *controller.VariantController,
	authMiddleware *middleware.AuthMiddleware,
	cfg *config.Config,
) *Router {
	return &Router{
		authController:    authController,
		productController: productController,
		optionController:  optionController,
		variantController: variantController,
		authMiddleware:    authMiddleware,
		config:            cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	gin.SetMode(r.config.Server.GinMode)

	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.LoggingMiddleware())
	router.Use(corsMiddleware(r.config.CORS.AllowedOrigins))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"message": "VITRINA API is running",
		})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/login", r.authController.Login)
			auth.POST("/logout", r.authMiddleware.Authenticate(), r.authController.Logout)
			auth.GET("/me", r.authMiddleware.Authenticate(), r.authController.Me)
		}

		products := v1.Group("/products")
		products.Use(r.authMiddleware.Authenticate())
		{
			products.GET("", r.productController.ListProducts)
			products.GET("/:id", r.productController.GetProductByID)
			products.POST("",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.productController.CreateProduct,
			)
			products.PUT("/:id",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.productController.UpdateProduct,
			)
			products.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.productController.DeleteProduct,
			)

			products.GET("/:id/options", r.optionController.ListOptions)
			products.POST("/:id/options",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.optionController.CreateOption,
			)

			products.GET("/:id/variants", r.variantController.ListVariants)
			products.POST("/:id/variants",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.variantController.CreateVariant,
			)
			products.POST("/:id/variants/preview",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.variantController.PreviewVariants,
			)
			products.POST("/:id/variants/generate",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.variantController.GenerateVariants,
			)
			products.GET("/:id/variants/export", r.variantController.ExportVariants)
		}

		options := v1.Group("/options")
		options.Use(r.authMiddleware.Authenticate())
		{
			options.PUT("/:id",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.optionController.UpdateOption,
			)
			options.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.optionController.DeleteOption,
			)
			options.POST("/:id/values",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.optionController.AddOptionValue,
			)
		}

		optionValues := v1.Group("/option-values")
		optionValues.Use(r.authMiddleware.Authenticate())
		{
			optionValues.PUT("/:id",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.optionController.UpdateOptionValue,
			)
			optionValues.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.optionController.DeleteOptionValue,
			)
		}

		variants := v1.Group("/variants")
		variants.Use(r.authMiddleware.Authenticate())
		{
			variants.GET("/:id", r.variantController.GetVariantByID)
			variants.PUT("/:id",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.variantController.UpdateVariant,
			)
			variants.DELETE("/:id",
				r.authMiddleware.RequireRole("admin"),
				r.variantController.DeleteVariant,
			)
			variants.PUT("/:id/default",
				r.authMiddleware.RequireRole("manager", "admin"),
				r.variantController.SetDefaultVariant,
			)
		}
	}

	return router
}

func corsMiddleware(allowedOrigins []string) gin.HandlerFunc {
	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		allowed := false
		for _, allowedOrigin := range allowedOrigins {
			if origin == allowedOrigin || allowedOrigin == "*" {
				allowed = true
				break
			}
		}

		if allowed {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
