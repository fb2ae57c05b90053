package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/http/handlers"
	"github.com/Subham0803a/AWS-RDS-and-Azure-Blob-Setup/internal/http/middleware"
)

func BuildRouter(ah *handlers.AuthHandlers, dh *handlers.DocumentHandlers, jwtmw *middleware.AuthMW) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	auth := r.Group("/auth")
	auth.POST("/signup", ah.Signup)
	auth.POST("/verify-otp", ah.VerifyOTP)
	auth.POST("/login", ah.Login)
	auth.POST("/forget-password", ah.ForgetPassword)
	auth.POST("/reset-password", ah.ResetPassword)
	auth.POST("/resend-otp", ah.ResendOTP)
	auth.POST("/logout", jwtmw.WithJWT(), ah.Logout)

	docs := r.Group("/documents").Use(jwtmw.WithJWT())
	docs.POST("/upload", dh.Upload)
	docs.GET("", dh.List)
	docs.GET("/:id", dh.Get)
	docs.GET("/:id/download", dh.Download)
	docs.DELETE("/:id", dh.Delete)

	return r
}
