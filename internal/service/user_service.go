package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/internal/repository"
	"github.com/limbo/salatchecker/pkg/entity"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	repo repository.UsersRepositoryI
}

func NewUserService(usersRepo repository.UsersRepositoryI) *UserService {
	return &UserService{
		repo: usersRepo,
	}
}

func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: empty request", errorvalues.ErrValidation)
	}
	normalized := RegisterRequest{
		Username:    strings.TrimSpace(req.Username),
		PhoneNumber: strings.TrimSpace(req.PhoneNumber),
		Password:    req.Password,
	}
	if err := validateStruct(normalized); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(normalized.Password)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return nil, fmt.Errorf("%w: password must be at most %d bytes", errorvalues.ErrValidation, maxPasswordBytes)
		}
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := &entity.User{
		Username:     normalized.Username,
		PhoneNumber:  normalized.PhoneNumber,
		PasswordHash: passwordHash,
	}
	if err = us.repo.Create(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, fmt.Errorf("repository creating error: %w", err)
	}
	return user, nil
}

func (us *UserService) Login(ctx context.Context, phone, password string) (*entity.User, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phoneNumber is required", errorvalues.ErrValidation)
	}
	if password == "" {
		return nil, fmt.Errorf("%w: password is required", errorvalues.ErrValidation)
	}
	user, err := us.repo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	return user, nil
}

func (us *UserService) GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := us.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, fmt.Errorf("repository searching error: %w", err)
	}
	return user, nil
}
