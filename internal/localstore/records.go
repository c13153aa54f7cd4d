package localstore

import (
	"context"
	"errors"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PrayerRecordsRepository struct {
	db *gorm.DB
}

func (pr *PrayerRecordsRepository) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.PrayerRecord, error) {
	var m prayerRecordModel
	err := pr.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", uid.String(), date).
		Take(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting prayer record error: " + err.Error())
	}
	rec := m.toEntity(uid)
	return &rec, nil
}

func (pr *PrayerRecordsRepository) Upsert(ctx context.Context, record *entity.PrayerRecord) (*entity.PrayerRecord, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	p := record.Prayers
	m := prayerRecordModel{
		UserID:  record.UserID.String(),
		Date:    record.Date,
		Fajr:    string(p.Fajr),
		Dhuhr:   string(p.Dhuhr),
		Asr:     string(p.Asr),
		Maghrib: string(p.Maghrib),
		Isha:    string(p.Isha),
	}
	var saved prayerRecordModel
	err := pr.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Omit("User").Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"fajr", "dhuhr", "asr", "maghrib", "isha", "updated_at"}),
		}).Create(&m).Error
		if err != nil {
			return err
		}
		return tx.Where("user_id = ? AND date = ?", m.UserID, m.Date).Take(&saved).Error
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("saving prayer record error: " + err.Error())
	}
	rec := saved.toEntity(record.UserID)
	return &rec, nil
}

func (pr *PrayerRecordsRepository) GetInRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.PrayerRecord, error) {
	var models []prayerRecordModel
	err := pr.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", uid.String(), from, to).
		Order("date DESC").
		Find(&models).Error
	if err != nil {
		return nil, errors.New("getting prayer records for period error: " + err.Error())
	}
	records := make([]entity.PrayerRecord, 0, len(models))
	for _, m := range models {
		records = append(records, m.toEntity(uid))
	}
	return records, nil
}

func (m prayerRecordModel) toEntity(uid uuid.UUID) entity.PrayerRecord {
	return entity.PrayerRecord{
		UserID: uid,
		Date:   m.Date,
		Prayers: entity.Prayers{
			Fajr:    entity.PrayerState(m.Fajr),
			Dhuhr:   entity.PrayerState(m.Dhuhr),
			Asr:     entity.PrayerState(m.Asr),
			Maghrib: entity.PrayerState(m.Maghrib),
			Isha:    entity.PrayerState(m.Isha),
		},
		UpdatedAt: m.UpdatedAt,
	}
}
