// internals/features/admins/service/token_service.go
package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"

	"videoku_backend/internals/configs"
	"videoku_backend/internals/features/admins/model"
)

var ErrMissingSecret = errors.New("JWT_SECRET is not set")

// CreateAccessToken menerbitkan JWT HS256 untuk sesi admin.
func CreateAccessToken(admin *model.AdminModel, now time.Time) (string, error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingSecret
	}
	ttl := time.Duration(configs.AccessTokenTTLH) * time.Hour
	claims := jwt.MapClaims{
		"sub":      admin.AdminID,
		"username": admin.AdminUsername,
		"iat":      now.Unix(),
		"exp":      now.Add(ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(configs.JWTSecret))
}

// ParseAccessToken memverifikasi signature + expiry dan mengembalikan admin_id.
func ParseAccessToken(tokenString string) (adminID string, err error) {
	if configs.JWTSecret == "" {
		return "", ErrMissingSecret
	}
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(configs.JWTSecret), nil
	})
	if err != nil || !tok.Valid {
		return "", errors.New("invalid token")
	}
	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid claims")
	}
	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("missing subject")
	}
	return sub, nil
}
