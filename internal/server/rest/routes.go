package rest

import (
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

const serviceName = "hotelbook-api"

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.logger))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitOrigins(s.config.FrontendURL)
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	router.GET("/health", handleHealth)

	api := router.Group("/api")
	{
		api.POST("/users/register", s.register)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", s.login)
			authRoutes.GET("/validate-token", s.requireAuth(), s.validateToken)
			authRoutes.POST("/logout", s.logout)
		}

		myHotels := api.Group("/my-hotels", s.requireAuth())
		{
			myHotels.POST("", s.createHotel)
			myHotels.GET("", s.listMyHotels)
		}
	}

	router.NoRoute(s.noRoute())

	return router
}

func handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": serviceName,
	})
}

// splitOrigins accepts a comma separated list so staging can allow several
// frontends.
func splitOrigins(v string) []string {
	var out []string
	for _, o := range strings.Split(v, ",") {
		if o = strings.TrimRight(strings.TrimSpace(o), "/"); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		out = []string{"http://localhost:5173"}
	}
	return out
}
