package accountControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/middleware"
	"github.com/larissavarjao/lvstore-api/models"
)

type UpdatePermissionsRequest struct {
	Permissions []string `json:"permissions" binding:"required"`
}

// loadCaller fetches the authenticated user behind the request. Routes using
// it sit behind RequireAuth, so a missing row means a stale session.
func loadCaller(db *gorm.DB, c *gin.Context) (models.User, bool) {
	var caller models.User
	if err := db.First(&caller, "id = ?", middleware.UserID(c)).Error; err != nil {
		fail(c, apperrors.ErrUnauthenticated)
		return models.User{}, false
	}
	return caller, true
}

// PUT /users/:id/permissions — auth + ADMIN or PERMISSIONUPDATE.
func UpdatePermissions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := loadCaller(db, c)
		if !ok {
			return
		}
		if !caller.HasAnyPermission(models.PermissionAdmin, models.PermissionPermissionUpdate) {
			fail(c, apperrors.ErrForbidden)
			return
		}

		var req UpdatePermissionsRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		perms := make([]models.Permission, 0, len(req.Permissions))
		for _, raw := range req.Permissions {
			p, err := models.ParsePermission(raw)
			if err != nil {
				fail(c, apperrors.New(apperrors.ErrValidation, err.Error()))
				return
			}
			perms = append(perms, p)
		}

		var target models.User
		if err := db.First(&target, "id = ?", c.Param("id")).Error; err != nil {
			fail(c, apperrors.New(apperrors.ErrNotFound, "user not found"))
			return
		}

		target.Permissions = perms
		if err := db.Save(&target).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update permissions"})
			return
		}

		c.JSON(http.StatusOK, target.Public())
	}
}

// GET /users — auth + ADMIN or PERMISSIONUPDATE.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := loadCaller(db, c)
		if !ok {
			return
		}
		if !caller.HasAnyPermission(models.PermissionAdmin, models.PermissionPermissionUpdate) {
			fail(c, apperrors.ErrForbidden)
			return
		}

		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch users"})
			return
		}

		out := make([]models.PublicUser, 0, len(users))
		for _, u := range users {
			out = append(out, u.Public())
		}
		c.JSON(http.StatusOK, out)
	}
}
