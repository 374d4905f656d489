package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	db *gorm.DB,
	authCtrl *controllers.AuthController,
	customerCtrl *controllers.CustomerController,
	roomCtrl *controllers.RoomController,
	bookingCtrl *controllers.BookingController,
	paymentCtrl *controllers.PaymentController,
	adminCtrl *controllers.AdminController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		// Public auth endpoints
		api.POST("/register", authCtrl.Register)
		api.POST("/login", authCtrl.Login)
		api.POST("/customer/register", customerCtrl.Register)
		api.POST("/customer/login", customerCtrl.Login)

		// Public room browsing
		api.GET("/rooms", roomCtrl.GetRooms)
		api.GET("/rooms/:id", roomCtrl.GetRoom)

		authed := api.Group("")
		authed.Use(middleware.RequireAuth(db))
		{
			authed.GET("/profile", authCtrl.Profile)
			authed.PATCH("/change-password", authCtrl.ChangePassword)
			authed.GET("/customer/profile", customerCtrl.Profile)
			authed.PATCH("/customers/:id", customerCtrl.UpdateCustomer)

			bookings := authed.Group("/bookings")
			{
				bookings.GET("", bookingCtrl.GetBookings)
				bookings.POST("", bookingCtrl.CreateBooking)
				bookings.GET("/:id", bookingCtrl.GetBooking)
				bookings.PATCH("/:id/cancel", bookingCtrl.CancelBooking)
				bookings.PATCH("/:id/pay", paymentCtrl.PayBooking)
				bookings.GET("/:id/payments", paymentCtrl.GetPaymentsByBooking)
			}

			admin := authed.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.GET("/customers", customerCtrl.GetCustomers)
				admin.DELETE("/customers/:id", customerCtrl.DeleteCustomer)

				admin.POST("/rooms", roomCtrl.CreateRoom)
				admin.PUT("/rooms/:id", roomCtrl.UpdateRoom)
				admin.PATCH("/rooms/:id", roomCtrl.UpdateRoom)
				admin.DELETE("/rooms/:id", roomCtrl.DeleteRoom)

				admin.GET("/payments", paymentCtrl.GetPayments)

				admin.GET("/admin/overview", adminCtrl.Overview)
				admin.GET("/admin/metrics", adminCtrl.Metrics)
				admin.PATCH("/admin/promote/:id", adminCtrl.PromoteUser)
				admin.PATCH("/admin/demote/:id", adminCtrl.DemoteUser)
			}
		}
	}

	return r
}
