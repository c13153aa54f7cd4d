package repository_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/internal/repository"
	"github.com/limbo/salatchecker/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestUnavailable(t *testing.T) {
	var (
		users   repository.UsersRepositoryI        = repository.Unavailable{}
		records repository.PrayerRecordsRepositoryI = repository.Unavailable{}
		pinger  repository.Pinger                   = repository.Unavailable{}
	)
	ctx := context.Background()
	uid := uuid.New()
	assert.ErrorIs(t, pinger.Ping(ctx), errorvalues.ErrStoreNotAvailable)
	assert.ErrorIs(t, users.Create(ctx, &entity.User{}), errorvalues.ErrStoreNotAvailable)
	_, err := users.FindByPhone(ctx, "+212600000001")
	assert.ErrorIs(t, err, errorvalues.ErrStoreNotAvailable)
	_, err = users.FindByID(ctx, uid)
	assert.ErrorIs(t, err, errorvalues.ErrStoreNotAvailable)
	_, err = records.Get(ctx, uid, "2024-01-01")
	assert.ErrorIs(t, err, errorvalues.ErrStoreNotAvailable)
	_, err = records.Upsert(ctx, &entity.PrayerRecord{UserID: uid, Date: "2024-01-01"})
	assert.ErrorIs(t, err, errorvalues.ErrStoreNotAvailable)
	_, err = records.GetInRange(ctx, uid, "2024-01-01", "2024-01-31")
	assert.ErrorIs(t, err, errorvalues.ErrStoreNotAvailable)
}
