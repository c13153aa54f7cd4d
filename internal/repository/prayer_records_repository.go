package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/entity"
)

const (
	recordColumns = `to_char(date, 'YYYY-MM-DD'), fajr, dhuhr, asr, maghrib, isha, updated_at`

	getRecordQuery = `SELECT ` + recordColumns + ` FROM prayer_records WHERE user_id = $1 AND date = $2;`

	// Single statement so concurrent saves for one (user, date) resolve to the
	// last writer without duplicate rows.
	upsertRecordQuery = `INSERT INTO prayer_records (user_id, date, fajr, dhuhr, asr, maghrib, isha)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, date) DO UPDATE SET
			fajr = EXCLUDED.fajr,
			dhuhr = EXCLUDED.dhuhr,
			asr = EXCLUDED.asr,
			maghrib = EXCLUDED.maghrib,
			isha = EXCLUDED.isha,
			updated_at = NOW()
		RETURNING ` + recordColumns + `;`

	rangeQuery = `SELECT ` + recordColumns + ` FROM prayer_records
		WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date DESC;`
)

type PrayerRecordsRepository struct {
	conn PgConnection
}

func NewPrayerRecordsRepo(conn PgConnection) *PrayerRecordsRepository {
	return &PrayerRecordsRepository{
		conn: conn,
	}
}

func scanRecord(row pgx.Row, uid uuid.UUID) (*entity.PrayerRecord, error) {
	rec := entity.PrayerRecord{UserID: uid}
	p := &rec.Prayers
	if err := row.Scan(&rec.Date, &p.Fajr, &p.Dhuhr, &p.Asr, &p.Maghrib, &p.Isha, &rec.UpdatedAt); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (pr *PrayerRecordsRepository) Get(ctx context.Context, uid uuid.UUID, date string) (*entity.PrayerRecord, error) {
	rec, err := scanRecord(pr.conn.QueryRow(ctx, getRecordQuery, uid, date), uid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRecordNotFound
		}
		return nil, errors.New("getting prayer record error: " + err.Error())
	}
	return rec, nil
}

func (pr *PrayerRecordsRepository) Upsert(ctx context.Context, record *entity.PrayerRecord) (*entity.PrayerRecord, error) {
	if record == nil {
		return nil, errors.New("record is nil")
	}
	p := record.Prayers
	row := pr.conn.QueryRow(ctx, upsertRecordQuery,
		record.UserID, record.Date, p.Fajr, p.Dhuhr, p.Asr, p.Maghrib, p.Isha,
	)
	rec, err := scanRecord(row, record.UserID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("saving prayer record error: " + err.Error())
	}
	return rec, nil
}

func (pr *PrayerRecordsRepository) GetInRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.PrayerRecord, error) {
	rows, err := pr.conn.Query(ctx, rangeQuery, uid, from, to)
	if err != nil {
		return nil, errors.New("getting prayer records for period error: " + err.Error())
	}
	defer rows.Close()
	records := make([]entity.PrayerRecord, 0, 8)
	for rows.Next() {
		rec, err := scanRecord(rows, uid)
		if err != nil {
			return nil, errors.New("prayer record row parsing error: " + err.Error())
		}
		records = append(records, *rec)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected prayer record rows error: " + err.Error())
	}
	return records, nil
}
