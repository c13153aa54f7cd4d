package repository

import (
	"context"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/entity"
)

// Unavailable stands in for the database when it is not configured. Every call
// fails with ErrStoreNotAvailable so the API answers 500 while /health stays up.
type Unavailable struct{}

func (Unavailable) Ping(context.Context) error {
	return errorvalues.ErrStoreNotAvailable
}

func (Unavailable) Create(context.Context, *entity.User) error {
	return errorvalues.ErrStoreNotAvailable
}

func (Unavailable) FindByPhone(context.Context, string) (*entity.User, error) {
	return nil, errorvalues.ErrStoreNotAvailable
}

func (Unavailable) FindByID(context.Context, uuid.UUID) (*entity.User, error) {
	return nil, errorvalues.ErrStoreNotAvailable
}

func (Unavailable) Get(context.Context, uuid.UUID, string) (*entity.PrayerRecord, error) {
	return nil, errorvalues.ErrStoreNotAvailable
}

func (Unavailable) Upsert(context.Context, *entity.PrayerRecord) (*entity.PrayerRecord, error) {
	return nil, errorvalues.ErrStoreNotAvailable
}

func (Unavailable) GetInRange(context.Context, uuid.UUID, string, string) ([]entity.PrayerRecord, error) {
	return nil, errorvalues.ErrStoreNotAvailable
}
