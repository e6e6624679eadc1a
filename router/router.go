package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafeteria-app/controllers"
	"github.com/yeremiapane/cafeteria-app/middlewares"
)

func SetupRouter(db *gorm.DB) *gin.Engine {
	r := gin.Default()

	// Apply security middlewares
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares())
	r.Use(middlewares.LoggerMiddleware())

	// Inisialisasi controller
	employeeCtrl := controllers.NewEmployeeController(db)
	customerCtrl := controllers.NewCustomerController(db)
	productCtrl := controllers.NewProductController(db)
	tableCtrl := controllers.NewTableController(db)
	orderCtrl := controllers.NewOrderController(db)
	orderItemCtrl := controllers.NewOrderItemController(db)
	reservationCtrl := controllers.NewReservationController(db)
	dashboardCtrl := controllers.NewDashboardController(db)

	// ----------------------------------------------------------------
	//                      PUBLIC ROUTES
	// ----------------------------------------------------------------
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	// Rate limiter ketat untuk login/register
	public := r.Group("/")
	public.Use(middlewares.NewStrictRateLimiter())
	{
		public.POST("/register", employeeCtrl.Register)
		public.POST("/login", employeeCtrl.Login)
		public.POST("/customers/login", customerCtrl.Login)
	}

	// ----------------------------------------------------------------
	//                      AUTHENTICATED ROUTES
	// ----------------------------------------------------------------
	auth := r.Group("/")
	auth.Use(middlewares.AuthMiddleware())

	auth.POST("/logout", employeeCtrl.Logout)
	auth.GET("/profile", employeeCtrl.GetProfile)

	staff := []string{"admin", "manager", "attendant"}
	managers := []string{"admin", "manager"}
	reservationRoles := []string{"admin", "manager", "attendant", "customer"}

	// RESERVATIONS (staff + customer)
	reservations := auth.Group("/reservations", middlewares.RequireRoles(reservationRoles...))
	{
		reservations.POST("", reservationCtrl.CreateReservation)
		reservations.GET("", reservationCtrl.GetAllReservations)
		reservations.GET("/check-availability", reservationCtrl.CheckAvailability)
		reservations.GET("/:reservation_id", reservationCtrl.GetReservationByID)
		reservations.PUT("/:reservation_id", reservationCtrl.UpdateReservation)
		reservations.PATCH("/:reservation_id/cancel", reservationCtrl.CancelReservation)
	}

	// ORDERS (semua yang terautentikasi)
	auth.POST("/orders", orderCtrl.CreateOrder)
	auth.GET("/orders", orderCtrl.GetAllOrders)
	auth.GET("/orders/:order_id", orderCtrl.GetOrderByID)
	auth.PUT("/orders/:order_id", orderCtrl.UpdateOrder)
	auth.DELETE("/orders/:order_id", middlewares.RequireRoles(managers...), orderCtrl.DeleteOrder)

	// ORDER ITEMS (staff)
	orderItems := auth.Group("/order-items", middlewares.RequireRoles(staff...))
	{
		orderItems.GET("", orderItemCtrl.GetAllOrderItems)
		orderItems.GET("/:item_id", orderItemCtrl.GetOrderItemByID)
		orderItems.DELETE("/:item_id", orderItemCtrl.DeleteOrderItem)
	}

	// PRODUCTS (baca: semua; mutasi + stok: admin/manager)
	auth.GET("/products", productCtrl.GetAllProducts)
	auth.GET("/products/:product_id", productCtrl.GetProductByID)
	auth.POST("/products", middlewares.RequireRoles(managers...), productCtrl.CreateProduct)
	auth.PUT("/products/:product_id", middlewares.RequireRoles(managers...), productCtrl.UpdateProduct)
	auth.DELETE("/products/:product_id", middlewares.RequireRoles(managers...), productCtrl.DeleteProduct)
	auth.POST("/products/:product_id/increase", middlewares.RequireRoles(managers...), productCtrl.IncreaseStock)
	auth.POST("/products/:product_id/decrease", middlewares.RequireRoles(managers...), productCtrl.DecreaseStock)

	// TABLES (baca: staff + customer; mutasi: admin/manager)
	auth.GET("/tables", middlewares.RequireRoles(reservationRoles...), tableCtrl.GetAllTables)
	auth.GET("/tables/:table_id", middlewares.RequireRoles(reservationRoles...), tableCtrl.GetTableByID)
	auth.POST("/tables", middlewares.RequireRoles(managers...), tableCtrl.CreateTable)
	auth.PUT("/tables/:table_id", middlewares.RequireRoles(managers...), tableCtrl.UpdateTable)
	auth.DELETE("/tables/:table_id", middlewares.RequireRoles(managers...), tableCtrl.DeleteTable)

	// CUSTOMERS (staff)
	customers := auth.Group("/customers", middlewares.RequireRoles(staff...))
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.POST("", customerCtrl.CreateCustomer)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
		customers.PATCH("/:customer_id", customerCtrl.UpdateCustomer)
		customers.DELETE("/:customer_id", customerCtrl.DeleteCustomer)
	}

	// EMPLOYEES (admin/manager)
	employees := auth.Group("/employees", middlewares.RequireRoles(managers...))
	{
		employees.GET("", employeeCtrl.GetAllEmployees)
		employees.GET("/:employee_id", employeeCtrl.GetEmployeeByID)
		employees.PATCH("/:employee_id", employeeCtrl.UpdateEmployee)
		employees.DELETE("/:employee_id", employeeCtrl.DeleteEmployee)
	}

	// DASHBOARD (admin/manager)
	auth.GET("/dashboard/stats", middlewares.RequireRoles(managers...), dashboardCtrl.GetDashboardStats)

	return r
}
