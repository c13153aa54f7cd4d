package localstore

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/limbo/salatchecker/pkg/cleanup"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type userModel struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"size:100;not null"`
	PhoneNumber  string    `gorm:"size:16;not null;uniqueIndex"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

func (userModel) TableName() string { return "users" }

type prayerRecordModel struct {
	ID        uint      `gorm:"primaryKey;autoIncrement"`
	UserID    string    `gorm:"size:36;not null;uniqueIndex:idx_prayer_records_user_date,priority:1"`
	Date      string    `gorm:"size:10;not null;uniqueIndex:idx_prayer_records_user_date,priority:2"`
	Fajr      string    `gorm:"size:10;not null;default:not_prayed"`
	Dhuhr     string    `gorm:"size:10;not null;default:not_prayed"`
	Asr       string    `gorm:"size:10;not null;default:not_prayed"`
	Maghrib   string    `gorm:"size:10;not null;default:not_prayed"`
	Isha      string    `gorm:"size:10;not null;default:not_prayed"`
	User      userModel `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (prayerRecordModel) TableName() string { return "prayer_records" }

// Store is an embedded SQLite database holding users and prayer records.
type Store struct {
	db *gorm.DB
}

// Open opens (or creates) the database at path and brings the schema up to date.
// path may be a file name or an sqlite URI such as "file::memory:".
func Open(path string) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(dsn(path)), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Discard,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		return nil, errors.New("opening sqlite error: " + err.Error())
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.New("getting sqlite handle error: " + err.Error())
	}
	// sqlite allows a single writer
	sqlDB.SetMaxOpenConns(1)
	if err = db.AutoMigrate(&userModel{}, &prayerRecordModel{}); err != nil {
		sqlDB.Close()
		return nil, errors.New("sqlite migration error: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing sqlite store",
		F: func() error {
			return sqlDB.Close()
		},
	})
	return &Store{db: db}, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Users returns the users repository backed by the store.
func (s *Store) Users() *UsersRepository {
	return &UsersRepository{db: s.db}
}

// PrayerRecords returns the prayer records repository backed by the store.
func (s *Store) PrayerRecords() *PrayerRecordsRepository {
	return &PrayerRecordsRepository{db: s.db}
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "FOREIGN KEY constraint failed")
}
