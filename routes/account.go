package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	accountControllers "github.com/larissavarjao/lvstore-api/controllers/account"
	"github.com/larissavarjao/lvstore-api/middleware"
)

// SetupAccountRoutes registers the identity-establishing endpoints (no auth
// gate: these are how a session comes to exist) plus the admin user surface.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	r.POST("/signup", accountControllers.Signup(db, deps.Auth))
	r.POST("/signin", accountControllers.Signin(db, deps.Auth))
	r.POST("/signout", accountControllers.Signout())
	r.POST("/reset/request", accountControllers.RequestReset(db, deps.Notifier, deps.FrontendURL))
	r.POST("/reset/complete", accountControllers.ResetPassword(db, deps.Auth))

	// Current user; answers null for anonymous callers instead of 401.
	r.GET("/me", accountControllers.Me(db))

	users := r.Group("/users")
	users.Use(middleware.RequireAuth)
	{
		users.GET("", accountControllers.GetAllUsers(db))
		users.PUT("/:id/permissions", accountControllers.UpdatePermissions(db))
	}
}
