package service

import (
	"context"
	"strings"
	"time"

	"github.com/mondragon/guitar-shop/storefront-service/config"
	"github.com/mondragon/guitar-shop/storefront-service/internal/domain"
	"github.com/mondragon/guitar-shop/storefront-service/internal/dto"
	"github.com/mondragon/guitar-shop/storefront-service/internal/repository"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/errs"
	"github.com/mondragon/guitar-shop/storefront-service/pkg/utils"
	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	repo   repository.UserRepository
	config config.Config
}

func CreateUserService(repo repository.UserRepository, config config.Config) UserService {
	return &UserServiceImpl{repo: repo, config: config}
}

// normalizeEmail trims surrounding whitespace and lowercases the address
// before any lookup or write, so login is case-insensitive.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserServiceImpl) AddUser(ctx context.Context, data dto.UserRequest) (err error) {
	if data.Name == "" || data.Email == "" || data.Password == "" {
		return errs.ErrValidation
	}

	email := normalizeEmail(data.Email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return errs.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	userEnt := domain.User{
		Name:           data.Name,
		Email:          email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err = s.repo.AddUser(ctx, userEnt)
	if err != nil {
		return err
	}

	return nil
}

func (s *UserServiceImpl) Login(ctx context.Context, payload dto.UserRequest) (respPayload dto.LoginResponse, err error) {
	user, err := s.repo.GetUserByEmail(ctx, normalizeEmail(payload.Email))
	if err != nil {
		return
	}

	if user.ID.IsZero() {
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	err = bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(payload.Password))
	if err != nil {
		log.Ctx(ctx).Warn().Str("component", "Login").Msg("password mismatch")
		return respPayload, errs.ErrInvalidCredentialsEmail
	}

	token, err := utils.CreateJWTToken(user.ID.Hex(), user.Name, user.IsAdmin, s.config.JWTSecret)
	if err != nil {
		return
	}

	respPayload.Token = token
	respPayload.IsAdmin = user.IsAdmin
	respPayload.Profile = buildUserResponse(user)

	return
}

func (s *UserServiceImpl) GetProfile(ctx context.Context, userID string) (resp dto.UserResponse, err error) {
	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		return
	}

	return buildUserResponse(user), nil
}

// EnsureAdmin seeds the operator account from config at startup. Existing
// accounts are left untouched.
func (s *UserServiceImpl) EnsureAdmin(ctx context.Context, name string, email string, password string) (err error) {
	if email == "" || password == "" {
		return nil
	}

	email = normalizeEmail(email)

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return
	}

	if !user.ID.IsZero() {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	now := time.Now().Unix()
	_, err = s.repo.AddUser(ctx, domain.User{
		Name:           name,
		Email:          email,
		HashedPassword: string(hash),
		ExternalID:     ulid.Make().String(),
		IsAdmin:        true,
		CreatedAt:      now,
		UpdatedAt:      now,
	})
	if err != nil {
		return err
	}

	log.Ctx(ctx).Info().Str("component", "EnsureAdmin").Str("email", email).Msg("seeded admin account")
	return nil
}

func buildUserResponse(user domain.User) dto.UserResponse {
	return dto.UserResponse{
		ID:         user.ID.Hex(),
		ExternalID: user.ExternalID,
		Name:       user.Name,
		Email:      user.Email,
		IsAdmin:    user.IsAdmin,
	}
}
