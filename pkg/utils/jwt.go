package utils

import (
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
)

func CreateJWTToken(userID string, userName string, isAdmin bool, jwtSecretKey string) (string, error) {
	claims := jwt.MapClaims{}
	claims["authorized"] = true
	claims["userID"] = userID
	claims["name"] = userName
	claims["isAdmin"] = isAdmin
	claims["exp"] = time.Now().Add(time.Hour * 24).Unix()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtSecretKey))
}

func ExtractTokenUser(c echo.Context) (string, string, bool) {
	user, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return "", "", false
	}

	if user.Valid {
		claims := user.Claims.(jwt.MapClaims)
		userID, _ := claims["userID"].(string)
		name, _ := claims["name"].(string)
		isAdmin, _ := claims["isAdmin"].(bool)
		return userID, name, isAdmin
	}
	return "", "", false
}
