package accountControllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/larissavarjao/lvstore-api/auth"
	"github.com/larissavarjao/lvstore-api/models"
)

func newAccountRouter(t *testing.T, db *gorm.DB) (*gin.Engine, auth.Auth) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	a := auth.New("test-secret")
	r := gin.New()
	r.POST("/signup", Signup(db, a))
	r.POST("/signin", Signin(db, a))
	r.POST("/signout", Signout())
	return r, a
}

func postJSON(r *gin.Engine, path string, payload gin.H) *httptest.ResponseRecorder {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == "token" {
			return c
		}
	}
	return nil
}

func TestSignupNormalizesEmailAndSetsSession(t *testing.T) {
	db := newTestDB(t)
	r, a := newAccountRouter(t, db)

	w := postJSON(r, "/signup", gin.H{
		"email":    "Alice@Example.COM",
		"name":     "Alice",
		"password": "hunter2hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var user models.User
	require.NoError(t, db.First(&user, "email = ?", "alice@example.com").Error)
	assert.Equal(t, []models.Permission{models.PermissionUser}, user.Permissions)
	assert.NotEqual(t, "hunter2hunter2", user.Password, "password must be stored hashed")

	cookie := sessionCookie(w)
	require.NotNil(t, cookie, "signup must issue a session cookie")
	assert.True(t, cookie.HttpOnly)

	userID, err := a.VerifyToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	r, _ := newAccountRouter(t, db)
	seedUser(t, db, "alice@example.com")

	w := postJSON(r, "/signup", gin.H{
		"email":    "alice@example.com",
		"name":     "Imposter",
		"password": "hunter2hunter2",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSigninFailsUniformly(t *testing.T) {
	db := newTestDB(t)
	r, _ := newAccountRouter(t, db)
	seedUser(t, db, "alice@example.com")

	wrongPassword := postJSON(r, "/signin", gin.H{
		"email":    "alice@example.com",
		"password": "not-the-password",
	})
	unknownEmail := postJSON(r, "/signin", gin.H{
		"email":    "nobody@example.com",
		"password": "not-the-password",
	})

	assert.Equal(t, http.StatusBadRequest, wrongPassword.Code)
	assert.Equal(t, http.StatusBadRequest, unknownEmail.Code)
	assert.Equal(t, wrongPassword.Body.String(), unknownEmail.Body.String(),
		"wrong password and unknown email must be indistinguishable")
}

func TestSigninSuccess(t *testing.T) {
	db := newTestDB(t)
	r, a := newAccountRouter(t, db)
	user := seedUser(t, db, "alice@example.com")

	w := postJSON(r, "/signin", gin.H{
		"email":    "alice@example.com",
		"password": "original-password",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	userID, err := a.VerifyToken(cookie.Value)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
}

func TestSignoutClearsSession(t *testing.T) {
	db := newTestDB(t)
	r, _ := newAccountRouter(t, db)

	w := postJSON(r, "/signout", gin.H{})
	require.Equal(t, http.StatusOK, w.Code)

	cookie := sessionCookie(w)
	require.NotNil(t, cookie)
	assert.Empty(t, cookie.Value)
	assert.True(t, cookie.MaxAge < 0, "cookie must be expired")
	assert.True(t, strings.Contains(w.Body.String(), "Goodbye"))
}
