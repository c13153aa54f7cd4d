package localstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/entity"
	"gorm.io/gorm"
)

type UsersRepository struct {
	db *gorm.DB
}

func (ur *UsersRepository) Create(ctx context.Context, user *entity.User) error {
	if user == nil {
		return errors.New("user is nil")
	}
	m := userModel{
		ID:           uuid.NewString(),
		Username:     user.Username,
		PhoneNumber:  user.PhoneNumber,
		PasswordHash: user.PasswordHash,
	}
	if err := ur.db.WithContext(ctx).Create(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errorvalues.ErrUserExists
		}
		return errors.New("creating user db error: " + err.Error())
	}
	*user = m.toEntity()
	return nil
}

func (ur *UsersRepository) FindByPhone(ctx context.Context, phone string) (*entity.User, error) {
	var m userModel
	err := ur.db.WithContext(ctx).Where("phone_number = ?", phone).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by phone error: " + err.Error())
	}
	user := m.toEntity()
	return &user, nil
}

func (ur *UsersRepository) FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var m userModel
	err := ur.db.WithContext(ctx).Where("id = ?", uid.String()).Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("searching user by id error: " + err.Error())
	}
	user := m.toEntity()
	return &user, nil
}

func (m userModel) toEntity() entity.User {
	return entity.User{
		ID:           uuid.MustParse(m.ID),
		Username:     m.Username,
		PhoneNumber:  m.PhoneNumber,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
