package jwtservice_test

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/limbo/salatchecker/internal/api"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/entity"
	jwtservice "github.com/limbo/salatchecker/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test_secret"

func TestGenerateAndParse(t *testing.T) {
	s := jwtservice.New(secret)
	user := &entity.User{ID: uuid.New(), Username: "amina", PhoneNumber: "+212600000000"}
	token, err := s.GenerateToken(user)
	require.NoError(t, err)

	claims, err := s.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, user.PhoneNumber, claims.PhoneNumber)
	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	assert.Equal(t, 7*24*time.Hour, ttl)
}

func signed(t *testing.T, method jwt.SigningMethod, key any, claims *api.JWTClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func TestParseRejectsUniformly(t *testing.T) {
	s := jwtservice.New(secret)
	valid, err := s.GenerateToken(&entity.User{ID: uuid.New(), PhoneNumber: "+212600000000"})
	require.NoError(t, err)
	parts := strings.Split(valid, ".")
	require.Len(t, parts, 3)

	past := time.Now().Add(-8 * 24 * time.Hour)
	testCases := []struct {
		Desc  string
		Token string
	}{
		{
			Desc:  "expired",
			Token: signed(t, jwt.SigningMethodHS256, []byte(secret), &api.JWTClaims{
				UserID: uuid.NewString(),
				RegisteredClaims: jwt.RegisteredClaims{
					IssuedAt:  jwt.NewNumericDate(past),
					ExpiresAt: jwt.NewNumericDate(past.Add(24 * time.Hour)),
				},
			}),
		},
		{
			Desc:  "foreign secret",
			Token: signed(t, jwt.SigningMethodHS256, []byte("other"), &api.JWTClaims{
				UserID:           uuid.NewString(),
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			}),
		},
		{
			Desc:  "other algorithm",
			Token: signed(t, jwt.SigningMethodHS512, []byte(secret), &api.JWTClaims{
				UserID:           uuid.NewString(),
				RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))},
			}),
		},
		{
			Desc:  "no expiry",
			Token: signed(t, jwt.SigningMethodHS256, []byte(secret), &api.JWTClaims{UserID: uuid.NewString()}),
		},
		{
			Desc:  "tampered payload",
			Token: parts[0] + "." + parts[1] + "x." + parts[2],
		},
		{
			Desc:  "tampered signature",
			Token: parts[0] + "." + parts[1] + "." + strings.ToUpper(parts[2]),
		},
		{
			Desc:  "garbage",
			Token: "not-a-token",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			_, err := s.ParseToken(tc.Token)
			assert.ErrorIs(t, err, errorvalues.ErrInvalidToken)
		})
	}
}
