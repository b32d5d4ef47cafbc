package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/auth"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/notify"
	"github.com/larissavarjao/lvstore-api/payment"
)

// Deps bundles the collaborators the route groups hand to their handlers:
// session signer, payment provider, notification channel and the base URL
// reset links point at.
type Deps struct {
	Auth        auth.Auth
	Charger     payment.Charger
	Notifier    notify.Sender
	FrontendURL string
}

// SetupRoutes wires all route groups. Session resolution runs on every
// request; the auth gate is applied per group.
func SetupRoutes(r *gin.Engine, db *gorm.DB, deps Deps) {
	r.Use(middleware.Session(deps.Auth))

	SetupAccountRoutes(r, db, deps)
	SetupItemRoutes(r, db)
	SetupCartRoutes(r, db)
	SetupOrderRoutes(r, db, deps)
}
