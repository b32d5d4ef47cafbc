package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionTTL is how long a signed-in session stays valid. Matches the
// cookie max-age set by the controllers.
const SessionTTL = 365 * 24 * time.Hour

type Auth struct {
	Secret string
}

func New(secret string) Auth {
	return Auth{Secret: secret}
}

// GenerateToken signs a long-lived session token for the user.
func (a Auth) GenerateToken(userID string) (string, error) {
	if userID == "" {
		return "", errors.New("missing user id for token")
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"iat":     now.Unix(),
		"exp":     now.Add(SessionTTL).Unix(),
	})

	return token.SignedString([]byte(a.Secret))
}

// VerifyToken parses a session token and returns the user id it is bound to.
// Accepts both a bare token and "Bearer <token>".
func (a Auth) VerifyToken(tokenString string) (string, error) {
	tokenString = strings.TrimSpace(tokenString)
	if strings.HasPrefix(strings.ToLower(tokenString), "bearer ") {
		tokenString = strings.TrimSpace(tokenString[len("bearer "):])
	}
	if tokenString == "" {
		return "", errors.New("missing token")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(a.Secret), nil
	})
	if err != nil || !token.Valid {
		return "", errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid token claims")
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", errors.New("invalid token claims")
	}
	return userID, nil
}
