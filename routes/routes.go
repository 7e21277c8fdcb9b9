package routes

import (
	"net/http"

	"cafesync/controllers"
	"cafesync/middleware"
	"cafesync/realtime"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterRoutes wires every HTTP endpoint and the websocket upgrade path.
func RegisterRoutes(r *gin.Engine, hub *realtime.Hub, jwtSecret []byte, logger *zap.Logger) {
	orders := controllers.NewOrderController(hub, logger)
	tables := controllers.NewTableController(hub, logger)
	products := controllers.NewProductController(logger)
	categories := controllers.NewCategoryController(logger)
	users := controllers.NewUserController(jwtSecret, logger)
	settings := controllers.NewSettingsController(logger)

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Cafe POS Server is running!")
	})
	r.GET("/ws", hub.HandleWS)

	api := r.Group("/api")
	{
		order := api.Group("/orders")
		{
			order.POST("", orders.CreateOrder)
			order.GET("", orders.GetOrders)
			order.GET("/summary/today", orders.GetTodaySummary)
			order.GET("/summary/report", orders.GetOrderReport)
			order.GET("/summary/sales", orders.GetDailySales)
			order.GET("/:id", orders.GetOrderByID)
			order.PUT("/:id", orders.UpdateOrder)
			order.DELETE("/:id", orders.DeleteOrder)
		}

		table := api.Group("/tables")
		{
			table.GET("", tables.GetAllTables)
			table.POST("", tables.CreateTable)
			table.GET("/stats", tables.GetTableStats)
			table.POST("/:id/status", tables.UpdateTableStatus)
			table.PUT("/:id", tables.UpdateTable)
			table.DELETE("/:id", tables.DeleteTable)
		}

		product := api.Group("/products")
		{
			product.POST("", products.CreateProduct)
			product.GET("", products.GetProducts)
			product.GET("/search", products.SearchProducts)
			product.GET("/category/:categoryId", products.GetProductsByCategory)
			product.GET("/:id", products.GetProductByID)
			product.PUT("/:id", products.UpdateProduct)
			product.DELETE("/:id", products.DeleteProduct)
		}

		category := api.Group("/categories")
		{
			category.POST("", categories.CreateCategory)
			category.GET("", categories.GetCategories)
			category.GET("/:id", categories.GetCategoryByID)
			category.PUT("/:id", categories.UpdateCategory)
			category.DELETE("/:id", categories.DeleteCategory)
		}

		user := api.Group("/users")
		{
			user.GET("/superadmin", users.CreateSuperAdmin)
			user.POST("/register", users.Register)
			user.POST("/login", users.Login)

			staff := user.Group("/staff")
			staff.Use(middleware.AuthMiddleware(jwtSecret), middleware.AdminMiddleware())
			{
				staff.GET("", users.GetStaffs)
				staff.POST("", users.AddStaff)
				staff.PUT("/:id", users.UpdateStaff)
				staff.PATCH("/:id/active", users.ToggleStaffActive)
				staff.DELETE("/:id", users.DeleteStaff)
			}

			profile := user.Group("/profile")
			profile.Use(middleware.AuthMiddleware(jwtSecret))
			{
				profile.GET("", users.GetUserProfile)
				profile.PUT("", users.UpdateUserProfile)
			}
		}

		setting := api.Group("/settings")
		{
			setting.GET("", settings.GetSettings)
			setting.PUT("", settings.UpdateSettings)
		}
	}
}
