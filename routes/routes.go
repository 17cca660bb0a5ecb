package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-booking/controllers"
	"hotel-booking/middleware"
)

// SetupRouter wires the public health check and the authenticated /booking routes.
func SetupRouter(
	bc *controllers.BookingController,
	jwtSecret string,
	origins []string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	bookings := r.Group("/booking", middleware.JWTAuth(jwtSecret))
	{
		bookings.GET("", bc.GetBooking)
		bookings.POST("", bc.CreateBooking)
		bookings.PUT("/:bookingId", bc.UpdateBooking)
	}

	return r
}
