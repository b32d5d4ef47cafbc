package accountControllers

import (
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/apperrors"
	"github.com/larissavarjao/lvstore-api/auth"
	"github.com/larissavarjao/lvstore-api/models"
	"github.com/larissavarjao/lvstore-api/notify"
)

type ResetRequestInput struct {
	Email string `json:"email" binding:"required,email"`
}

type ResetPasswordInput struct {
	ResetToken      string `json:"reset_token" binding:"required"`
	Password        string `json:"password" binding:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

// resetRequestedMessage is returned whether or not the email matched, so the
// endpoint cannot be used to enumerate accounts.
const resetRequestedMessage = "Thanks! Check your email for a reset link."

// IssueReset stamps a fresh single-use token on the user behind email and
// hands it to the notification channel. Issuing again overwrites the prior
// token. The returned error is the internal outcome; callers must translate
// a miss into the same caller-visible result as a hit.
func IssueReset(db *gorm.DB, sender notify.Sender, frontendURL, email string) error {
	var user models.User
	if err := db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error; err != nil {
		return apperrors.New(apperrors.ErrNotFound, "invalid email or password")
	}

	token, err := auth.NewResetToken()
	if err != nil {
		return err
	}
	expiry := time.Now().Add(auth.ResetTokenTTL)

	updates := map[string]interface{}{
		"reset_token":        token,
		"reset_token_expiry": expiry,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		return err
	}

	// Fire and forget. A lost email never fails the request; the user can
	// simply ask again.
	if sender != nil {
		if err := sender.SendPasswordReset(user.Email, frontendURL+"/reset?resetToken="+token); err != nil {
			log.Printf("notify: reset email to %s not published: %v", user.Email, err)
		}
	}
	return nil
}

// ConsumeReset exchanges a live token for a new password. The token lookup
// and the expiry judgment use the stored expiry against the clock directly,
// so a token dies exactly ResetTokenTTL after issuance and exactly once:
// both token fields are nulled in the same transaction that writes the hash.
func ConsumeReset(db *gorm.DB, token, password, confirmPassword string) (models.User, error) {
	if password != confirmPassword {
		return models.User{}, apperrors.New(apperrors.ErrValidation, "passwords don't match")
	}

	var user models.User
	err := db.Where("reset_token = ? AND reset_token_expiry > ?", token, time.Now()).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.User{}, apperrors.New(apperrors.ErrTokenExpired, "this token is either invalid or expired")
		}
		return models.User{}, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return models.User{}, apperrors.New(apperrors.ErrValidation, err.Error())
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Model(&user).Updates(map[string]interface{}{
			"password":           hash,
			"reset_token":        nil,
			"reset_token_expiry": nil,
		}).Error
	})
	if err != nil {
		return models.User{}, err
	}

	user.Password = hash
	user.ResetToken = nil
	user.ResetTokenExpiry = nil
	return user, nil
}

// POST /reset/request
func RequestReset(db *gorm.DB, sender notify.Sender, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetRequestInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if err := IssueReset(db, sender, frontendURL, req.Email); err != nil {
			if !errors.Is(err, apperrors.ErrNotFound) {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to request reset"})
				return
			}
			// Unknown email gets the exact same answer as a known one.
		}

		c.JSON(http.StatusOK, gin.H{"message": resetRequestedMessage})
	}
}

// POST /reset/complete
func ResetPassword(db *gorm.DB, a auth.Auth) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ResetPasswordInput
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		user, err := ConsumeReset(db, req.ResetToken, req.Password, req.ConfirmPassword)
		if err != nil {
			fail(c, err)
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
