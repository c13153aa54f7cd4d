package repository

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/salatchecker/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/repository_mocks.go -package=mocks

type UsersRepositoryI interface {
	// Creates new user in database. ID and CreatedAt are filled from the stored row
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by phone number. Used for login
	FindByPhone(ctx context.Context, phone string) (*entity.User, error)
	// Looks up user by uid. Used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
}

type PrayerRecordsRepositoryI interface {
	// Returns record of user for the date or ErrRecordNotFound
	Get(ctx context.Context, uid uuid.UUID, date string) (*entity.PrayerRecord, error)
	// Inserts record or overwrites the one stored for (UserID, Date). Returns the stored row
	Upsert(ctx context.Context, record *entity.PrayerRecord) (*entity.PrayerRecord, error)
	// Lists records with from <= date <= to, newest first
	GetInRange(ctx context.Context, uid uuid.UUID, from, to string) ([]entity.PrayerRecord, error)
}

type Pinger interface {
	Ping(ctx context.Context) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Host     string
	Port     int
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	u := url.URL{
		Scheme: "postgresql",
		User:   url.UserPassword(pgcfg.Username, pgcfg.Password),
		Host:   net.JoinHostPort(pgcfg.Host, strconv.Itoa(pgcfg.Port)),
		Path:   "/" + pgcfg.DB,
	}
	if pgcfg.SSLMode != "" {
		u.RawQuery = fmt.Sprintf("sslmode=%s", url.QueryEscape(pgcfg.SSLMode))
	}
	return u.String()
}
