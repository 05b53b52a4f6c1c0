package routes

import (
	"github.com/Nitin6404/sryzen-backend/configs"
	"github.com/Nitin6404/sryzen-backend/controllers"
	"github.com/Nitin6404/sryzen-backend/middlewares"
	"github.com/Nitin6404/sryzen-backend/repository"
	"github.com/Nitin6404/sryzen-backend/services"
	"github.com/Nitin6404/sryzen-backend/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRoutes wires repositories, services and controllers once per
// process and mounts the API.
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	userRepo := repository.NewUserRepository(db)
	restRepo := repository.NewRestaurantRepository(db)
	menuRepo := repository.NewMenuRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Tracking hub
	hub := ws.NewTrackHub(orderRepo)
	go hub.Run()

	// Services
	mailer := services.NewEmailService(cfg)
	authSvc := services.NewAuthService(userRepo, mailer, cfg.JWTSecret, cfg.JWTTTL)
	restSvc := services.NewRestaurantService(restRepo)
	menuSvc := services.NewMenuService(menuRepo, restRepo)
	cartSvc := services.NewCartService(db, cartRepo, menuRepo)
	orderSvc := services.NewOrderService(db, orderRepo, cartRepo, restRepo)
	orderSvc.Notifier = hub
	invoiceSvc := services.NewInvoiceService(orderRepo, cfg.InvoiceDir)
	adminSvc := services.NewAdminService(db, userRepo, restRepo, orderRepo)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	restCtrl := controllers.NewRestaurantController(restSvc)
	menuCtrl := controllers.NewMenuController(menuSvc)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc, invoiceSvc)
	adminCtrl := controllers.NewAdminController(adminSvc)

	auth := middlewares.AuthMiddleware(cfg.JWTSecret)
	adminOnly := middlewares.AuthMiddleware(cfg.JWTSecret, "admin")

	api := r.Group("/api")

	// Auth
	a := api.Group("/auth")
	{
		a.POST("/register", authCtrl.Register)
		a.POST("/login", authCtrl.Login)
		a.POST("/verify-email", authCtrl.VerifyEmail)
		a.POST("/forgot-password", authCtrl.ForgotPassword)
		a.POST("/reset-password", authCtrl.ResetPassword)
		a.GET("/me", auth, authCtrl.Me)
	}

	// Catalog (public reads, admin writes)
	api.GET("/restaurants", restCtrl.List)
	api.GET("/restaurants/:id", restCtrl.Detail)
	api.POST("/restaurants", adminOnly, restCtrl.Create)
	api.PUT("/restaurants/:id", adminOnly, restCtrl.Update)
	api.DELETE("/restaurants/:id", adminOnly, restCtrl.Delete)

	api.GET("/menu-items", menuCtrl.List)
	api.GET("/menu-items/:id", menuCtrl.Detail)
	api.POST("/menu-items", adminOnly, menuCtrl.Create)
	api.PUT("/menu-items/:id", adminOnly, menuCtrl.Update)
	api.DELETE("/menu-items/:id", adminOnly, menuCtrl.Delete)

	// Cart
	cart := api.Group("/cart", auth)
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.Add)
		cart.PUT("/items/:id", cartCtrl.Update)
		cart.DELETE("/items/:id", cartCtrl.Remove)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders
	orders := api.Group("/orders", auth)
	{
		orders.POST("", orderCtrl.Create)
		orders.GET("", orderCtrl.ListForMe)
		orders.GET("/:id", orderCtrl.Detail)
		orders.GET("/:id/invoice", orderCtrl.DownloadInvoice)
	}
	api.PUT("/orders/:id/status", adminOnly, orderCtrl.UpdateStatus)

	// Admin
	admin := api.Group("/admin", adminOnly)
	{
		admin.GET("/dashboard", adminCtrl.Dashboard)
		admin.GET("/users", adminCtrl.Users)
		admin.PUT("/users/:id", adminCtrl.UpdateUser)
		admin.DELETE("/users/:id", adminCtrl.DeleteUser)
		admin.GET("/orders", adminCtrl.Orders)
		admin.DELETE("/orders/:id", adminCtrl.DeleteOrder)
	}

	// Live order tracking. Browsers cannot set headers on a websocket
	// handshake, so this route takes the token from ?token= as well.
	r.GET("/ws/orders/:id", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.HandleWebSocket)
}
