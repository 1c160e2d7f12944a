package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt"
	"github.com/mondragon/guitar-shop/storefront-service/config"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testJWTSecret = "test-secret"

func newUserServiceFixture() (UserService, *fakeUserRepository) {
	repo := newFakeUserRepository()
	conf := config.Config{JWTSecret: testJWTSecret}
	return CreateUserService(repo, conf), repo
}

func TestAddUser_ThenLogin(t *testing.T) {
	svc, _ := newUserServiceFixture()
	ctx := context.Background()

	err := svc.AddUser(ctx, dto.UserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)

	resp, err := svc.Login(ctx, dto.UserRequest{Email: "sam@example.com", Password: "secret123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.False(t, resp.IsAdmin)
	assert.Equal(t, "sam@example.com", resp.Profile.Email)
}

func TestAddUser_RejectsDuplicateEmail(t *testing.T) {
	svc, _ := newUserServiceFixture()
	ctx := context.Background()

	req := dto.UserRequest{Name: "Sam", Email: "sam@example.com", Password: "secret123"}
	require.NoError(t, svc.AddUser(ctx, req))

	// same address with different casing is still a duplicate
	req.Email = " SAM@Example.com "
	err := svc.AddUser(ctx, req)

	assert.ErrorIs(t, err, errs.ErrEmailAlreadyUsed)
}

func TestLogin_EmailIsTrimmedAndCaseInsensitive(t *testing.T) {
	svc, _ := newUserServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddUser(ctx, dto.UserRequest{
		Name:     "Sam",
		Email:    "Sam@Example.com",
		Password: "secret123",
	}))

	resp, err := svc.Login(ctx, dto.UserRequest{Email: "  sam@EXAMPLE.com ", Password: "secret123"})

	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newUserServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.AddUser(ctx, dto.UserRequest{
		Name:     "Sam",
		Email:    "sam@example.com",
		Password: "secret123",
	}))

	_, err := svc.Login(ctx, dto.UserRequest{Email: "sam@example.com", Password: "wrong"})

	assert.ErrorIs(t, err, errs.ErrInvalidCredentialsEmail)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newUserServiceFixture()

	_, err := svc.Login(context.Background(), dto.UserRequest{Email: "nobody@example.com", Password: "secret123"})

	assert.ErrorIs(t, err, errs.ErrInvalidCredentialsEmail)
}

func TestEnsureAdmin_SeedsOnceWithAdminClaim(t *testing.T) {
	svc, repo := newUserServiceFixture()
	ctx := context.Background()

	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "123456"))
	require.NoError(t, svc.EnsureAdmin(ctx, "Admin", "admin@example.com", "123456"))

	assert.Len(t, repo.users, 1)

	resp, err := svc.Login(ctx, dto.UserRequest{Email: "admin@example.com", Password: "123456"})
	require.NoError(t, err)
	assert.True(t, resp.IsAdmin)

	// token verification is stateless: the admin flag rides in the claims
	token, err := jwt.Parse(resp.Token, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, true, claims["isAdmin"])
}
