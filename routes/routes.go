package routes

import (
	"log"

	"backend/configs"
	"backend/controllers"
	"backend/middlewares"
	"backend/repository"
	"backend/services"
	"backend/ws"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config, hub *ws.StaffHub) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	dishRepo := repository.NewDishRepository(db)
	tableRepo := repository.NewTableRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	accountRepo := repository.NewAccountRepository(db)

	// Services
	cartSvc := services.NewCartService(dishRepo)
	orderSvc, err := services.NewOrderService(db, orderRepo, dishRepo, cartSvc)
	if err != nil {
		log.Fatalf("order service: %v", err)
	}
	menuSvc := services.NewMenuService(dishRepo)
	tableSvc := services.NewTableService(tableRepo, cfg.UploadDir, cfg.PublicHost)
	customerSvc := services.NewCustomerService(customerRepo, tableRepo)
	authSvc := services.NewAuthService(db, accountRepo, cfg.JWTSecret, cfg.JWTTTL)
	dashSvc, err := services.NewDashboardService(orderRepo)
	if err != nil {
		log.Fatalf("dashboard service: %v", err)
	}

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	customerAuthCtrl := controllers.NewCustomerAuthController(customerSvc, cfg.JWTSecret, cfg.JWTTTL)
	cartCtrl := controllers.NewCartController(cartSvc, orderSvc, hub)
	orderCtrl := controllers.NewOrderController(orderSvc)
	staffOrderCtrl := controllers.NewStaffOrderController(orderSvc, hub)
	tableCtrl := controllers.NewTableController(tableSvc, hub)
	dishCtrl := controllers.NewDishController(menuSvc, cfg.UploadDir)
	menuCtrl := controllers.NewMenuController(menuSvc)
	dashCtrl := controllers.NewDashboardController(dashSvc)
	customerCtrl := controllers.NewCustomerController(customerSvc)

	// Public
	r.GET("/menu/:ownerId", menuCtrl.PublicMenu)
	r.POST("/auth/register", authCtrl.Register)
	r.POST("/auth/login", authCtrl.Login)
	r.POST("/customer/login", customerAuthCtrl.Login)

	// Customer (table-visit token)
	customer := r.Group("/orders", middlewares.AuthMiddleware(cfg.JWTSecret, "customer"))
	{
		customer.POST("/checkout", cartCtrl.Checkout)
		customer.GET("/history", orderCtrl.History)
	}

	// Staff + owner
	staff := r.Group("/staff", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "staff"))
	{
		staff.GET("/orders", staffOrderCtrl.List)
		staff.PATCH("/orders/:id/status", staffOrderCtrl.UpdateStatus)
		staff.PATCH("/order-details/:id", staffOrderCtrl.UpdateDetailStatus)
		staff.GET("/tables", tableCtrl.List)
		staff.PATCH("/tables/:id/status", tableCtrl.UpdateStatus)
	}

	// Owner only
	owner := r.Group("/owner", middlewares.AuthMiddleware(cfg.JWTSecret, "owner"))
	{
		owner.GET("/dashboard", dashCtrl.Summary)
		owner.GET("/profile", authCtrl.Profile)
		owner.GET("/customers", customerCtrl.List)
		owner.GET("/staff", authCtrl.ListStaff)
		owner.POST("/staff", authCtrl.CreateStaff)
		owner.PATCH("/staff/:id", authCtrl.SetStaffActive)
		owner.GET("/dishes", dishCtrl.List)
		owner.POST("/dishes", dishCtrl.Create)
		owner.PATCH("/dishes/:id", dishCtrl.Update)
		owner.POST("/dishes/:id/picture", dishCtrl.UploadPicture)
		owner.GET("/categories", dishCtrl.ListCategories)
		owner.POST("/categories", dishCtrl.CreateCategory)
		owner.POST("/tables", tableCtrl.Create)
		owner.DELETE("/tables/:id", tableCtrl.Delete)
	}

	// Real-time staff board
	r.GET("/ws/staff", middlewares.WSAuthMiddleware(cfg.JWTSecret, "owner", "staff"), hub.HandleWebSocket)
}
