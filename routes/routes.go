package routes

import (
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/configs"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/controllers"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/entity"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/middlewares"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/repository"
	"github.com/PrathamTiwari-max/fullstack-food-ordering-rbac/services"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	payRepo := repository.NewPaymentRepository(db)

	// Services
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	orderSvc := services.NewOrderService(db, orderRepo, restRepo)
	paySvc := services.NewPaymentService(payRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	payCtrl := controllers.NewPaymentController(paySvc)

	// Public
	r.POST("/login", authCtrl.Login)

	// Any authenticated user
	auth := r.Group("/", middlewares.AuthMiddleware(db, cfg))
	{
		auth.GET("/me", authCtrl.Me)
		auth.GET("/restaurants", restCtrl.List)
		auth.GET("/restaurants/:id", restCtrl.Detail)
		auth.POST("/orders", orderCtrl.Create)
		auth.GET("/orders", orderCtrl.List)
		auth.GET("/payment-methods", payCtrl.List)
	}

	// Managers and admins settle orders
	manage := r.Group("/", middlewares.AuthMiddleware(db, cfg, entity.RoleAdmin, entity.RoleManager))
	{
		manage.POST("/orders/:id/checkout", orderCtrl.Checkout)
		manage.POST("/orders/:id/cancel", orderCtrl.Cancel)
	}

	// Admin only
	admin := r.Group("/", middlewares.AuthMiddleware(db, cfg, entity.RoleAdmin))
	{
		admin.PUT("/payment-methods/:id", payCtrl.Update)
	}
}
