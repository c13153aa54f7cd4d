package api

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
	"github.com/limbo/salatchecker/pkg/entity"
)

type JWTServiceI interface {
	GenerateToken(user *entity.User) (string, error)
	ParseToken(tokenString string) (*JWTClaims, error)
}

type JWTClaims struct {
	jwt.RegisteredClaims
	UserID      string `json:"userId"`
	PhoneNumber string `json:"phoneNumber"`
}

type PrayerTimesProviderI interface {
	// Returns timetable for date (YYYY-MM-DD) at the coordinates
	Timings(ctx context.Context, date string, lat, lng float64) (*entity.PrayerTimes, error)
}
