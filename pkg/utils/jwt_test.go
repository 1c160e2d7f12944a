package utils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateJWTToken_ClaimsRoundTrip(t *testing.T) {
	signed, err := CreateJWTToken("u1", "Admin", true, "secret")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)
	require.True(t, token.Valid)

	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "u1", claims["userID"])
	assert.Equal(t, "Admin", claims["name"])
	assert.Equal(t, true, claims["isAdmin"])

	exp, ok := claims["exp"].(float64)
	require.True(t, ok)
	assert.Greater(t, int64(exp), time.Now().Unix())
}

func TestCreateJWTToken_RejectsWrongSecret(t *testing.T) {
	signed, err := CreateJWTToken("u1", "Admin", true, "secret")
	require.NoError(t, err)

	_, err = jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("other"), nil
	})
	assert.Error(t, err)
}

func TestExtractTokenUser(t *testing.T) {
	signed, err := CreateJWTToken("u1", "Admin", true, "secret")
	require.NoError(t, err)

	token, err := jwt.Parse(signed, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	require.NoError(t, err)

	e := echo.New()
	c := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	c.Set("user", token)

	userID, name, isAdmin := ExtractTokenUser(c)
	assert.Equal(t, "u1", userID)
	assert.Equal(t, "Admin", name)
	assert.True(t, isAdmin)
}

func TestExtractTokenUser_MissingToken(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())

	userID, name, isAdmin := ExtractTokenUser(c)
	assert.Empty(t, userID)
	assert.Empty(t, name)
	assert.False(t, isAdmin)
}
