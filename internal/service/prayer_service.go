package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/internal/repository"
	"github.com/limbo/salatchecker/pkg/entity"
)

type RangeRequest struct {
	Start string `validate:"required,calendar_date"`
	End   string `validate:"required,calendar_date"`
}

type PrayerService struct {
	repo repository.PrayerRecordsRepositoryI
}

func NewPrayerService(recordsRepo repository.PrayerRecordsRepositoryI) *PrayerService {
	return &PrayerService{
		repo: recordsRepo,
	}
}

func (ps *PrayerService) GetRecord(ctx context.Context, uid uuid.UUID, date string) (*entity.PrayerRecord, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	record, err := ps.repo.Get(ctx, uid, date)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRecordNotFound) {
			return &entity.PrayerRecord{
				UserID:  uid,
				Date:    date,
				Prayers: entity.DefaultPrayers(),
			}, nil
		}
		return nil, fmt.Errorf("repository getting record error: %w", err)
	}
	return record, nil
}

func (ps *PrayerService) SaveRecord(ctx context.Context, uid uuid.UUID, date string, prayers entity.PrayersUpdate) (*entity.PrayerRecord, error) {
	if err := ValidateDate(date); err != nil {
		return nil, err
	}
	normalized, err := NormalizePrayers(prayers)
	if err != nil {
		return nil, err
	}
	record, err := ps.repo.Upsert(ctx, &entity.PrayerRecord{
		UserID:  uid,
		Date:    date,
		Prayers: normalized,
	})
	if err != nil {
		return nil, fmt.Errorf("repository saving record error: %w", err)
	}
	return record, nil
}

func (ps *PrayerService) GetRecordsInRange(ctx context.Context, uid uuid.UUID, start, end string) ([]entity.PrayerRecord, error) {
	if err := validateStruct(RangeRequest{Start: start, End: end}); err != nil {
		return nil, err
	}
	// YYYY-MM-DD compares lexically in calendar order
	if start > end {
		return nil, errorvalues.ErrInvalidRange
	}
	records, err := ps.repo.GetInRange(ctx, uid, start, end)
	if err != nil {
		return nil, fmt.Errorf("repository getting records error: %w", err)
	}
	return records, nil
}

func (ps *PrayerService) GetStatistics(ctx context.Context, uid uuid.UUID, start, end string) (*entity.Statistics, error) {
	records, err := ps.GetRecordsInRange(ctx, uid, start, end)
	if err != nil {
		return nil, err
	}
	stats := ComputeStatistics(records)
	return &stats, nil
}

// NormalizePrayers fills omitted slots with not_prayed and rejects unknown states, the empty string included.
func NormalizePrayers(u entity.PrayersUpdate) (entity.Prayers, error) {
	p := entity.DefaultPrayers()
	slots := [entity.PrayersPerDay]struct {
		in  *entity.PrayerState
		out *entity.PrayerState
	}{
		{u.Fajr, &p.Fajr},
		{u.Dhuhr, &p.Dhuhr},
		{u.Asr, &p.Asr},
		{u.Maghrib, &p.Maghrib},
		{u.Isha, &p.Isha},
	}
	for i, slot := range slots {
		if slot.in == nil {
			continue
		}
		if !slot.in.Valid() {
			return entity.Prayers{}, fmt.Errorf("%w for %s, must be one of: not_prayed, prayed, missed",
				errorvalues.ErrInvalidPrayerState, entity.PrayerNames[i])
		}
		*slot.out = *slot.in
	}
	return p, nil
}
