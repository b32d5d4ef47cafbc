package accountControllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/auth"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/models"
)

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

type SigninRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func fail(c *gin.Context, err error) {
	c.JSON(apperrors.Status(err), gin.H{"error": err.Error()})
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetCookie(middleware.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
}

// POST /signup
func Signup(db *gorm.DB, a auth.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SignupRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(req.Email))

		var existing models.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			fail(c, apperrors.New(apperrors.ErrValidation, "email already in use"))
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			fail(c, apperrors.New(apperrors.ErrValidation, err.Error()))
			return
		}

		user := models.User{
			ID:          uuid.NewString(),
			Email:       email,
			Name:        req.Name,
			Password:    hash,
			Permissions: []models.Permission{models.PermissionUser},
		}
		if err := db.Create(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
			return
		}

		token, err := a.GenerateToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusCreated, user)
	}
}

// POST /signin
func Signin(db *gorm.DB, a auth.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SigninRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		var user models.User
		err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(req.Email))).First(&user).Error
		if err != nil {
			// Same response as a wrong password, so nothing confirms the
			// email exists.
			fail(c, apperrors.ErrBadCredentials)
			return
		}
		if err := auth.VerifyPassword(req.Password, user.Password); err != nil {
			fail(c, apperrors.ErrBadCredentials)
			return
		}

		token, err := a.GenerateToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue session"})
			return
		}
		setSessionCookie(c, token)

		c.JSON(http.StatusOK, user)
	}
}

// POST /signout
func Signout() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(middleware.SessionCookie, "", -1, "/", "", false, true)
		c.JSON(http.StatusOK, gin.H{"message": "Goodbye!"})
	}
}

// GET /me returns the current user, or null for anonymous callers. Never an
// auth error.
func Me(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusOK, nil)
			return
		}

		var user models.User
		if err := db.First(&user, "id = ?", userIDVal).Error; err != nil {
			c.JSON(http.StatusOK, nil)
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
