package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/salatchecker/pkg/entity"
)

type RegisterRequest struct {
	Username    string `validate:"required,min=2,max=100"`
	PhoneNumber string `validate:"required,intl_phone"`
	Password    string `validate:"required,min=6,bcrypt_len"`
}

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type UserServiceI interface {
	// Validates user's data, creates new row in storage. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, phone, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type PrayerServiceI interface {
	// Returns stored record for the date or all-not_prayed defaults when nothing was saved
	GetRecord(ctx context.Context, uid uuid.UUID, date string) (*entity.PrayerRecord, error)
	// Validates states, upserts record by (uid, date) and returns the stored one
	SaveRecord(ctx context.Context, uid uuid.UUID, date string, prayers entity.PrayersUpdate) (*entity.PrayerRecord, error)
	GetRecordsInRange(ctx context.Context, uid uuid.UUID, start, end string) ([]entity.PrayerRecord, error)
	GetStatistics(ctx context.Context, uid uuid.UUID, start, end string) (*entity.Statistics, error)
}
