package handlers

import (
	"strings"
	"time"

	"royalestats/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(authHandler *AuthHandler, userHandler *UserHandler, limiter *middleware.RateLimiter, validator middleware.AccessValidator, allowedOrigins string) *gin.Engine {
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = splitOrigins(allowedOrigins)
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"}
	r.Use(cors.New(config))

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", limiter.Limit("register", 5, 1*time.Minute), authHandler.Register)
			auth.POST("/login", limiter.Limit("login", 5, 1*time.Minute), authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.POST("/logout", authHandler.Logout)
		}
		user := api.Group("/user")
		user.Use(middleware.AuthMiddleware(validator))
		{
			user.GET("/data", userHandler.GetUserData)
			user.GET("/player-stats/:playerTag", userHandler.GetPlayerStats)
			user.POST("/player-tag", userHandler.LinkPlayerTag)
		}
	}

	return r
}

func splitOrigins(origins string) []string {
	var out []string
	for _, o := range strings.Split(origins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
