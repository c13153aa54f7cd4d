package api_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/limbo/salatchecker/internal/api"
	"github.com/limbo/salatchecker/internal/localstore"
	"github.com/limbo/salatchecker/internal/service"
	"github.com/limbo/salatchecker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlersWithLocalStore(t *testing.T) {
	store, err := localstore.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		store.Close()
	})
	serv := newTestServer(t, &api.ServicesList{
		UserService:   service.NewUserService(store.Users()),
		PrayerService: service.NewPrayerService(store.PrayerRecords()),
		Storage:       store,
	}, api.WithInfo(3000, "test", "sqlite"))

	signUp := api.SignUpRequest{Username: username, PhoneNumber: phone, Password: password}
	var token string
	t.Run("signup", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/auth/signup", signUp, "")
		require.Equal(t, http.StatusCreated, rr.Code)
		var resp api.AuthResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, username, resp.User.Username)
		assert.NotEmpty(t, resp.User.ID)
	})
	t.Run("duplicate phone", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/auth/signup", signUp, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "phone number already registered", decodeError(t, rr).Message)
	})
	t.Run("short username", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/auth/signup",
			api.SignUpRequest{Username: "a", PhoneNumber: "+212600000002", Password: password}, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("password over bcrypt limit", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/auth/signup",
			api.SignUpRequest{Username: username, PhoneNumber: "+212600000003", Password: strings.Repeat("é", 40)}, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Message, "72 bytes")
	})
	t.Run("signin with wrong password", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/auth/signin",
			api.SignInRequest{PhoneNumber: phone, Password: password + "1"}, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
	t.Run("signin", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/auth/signin",
			api.SignInRequest{PhoneNumber: phone, Password: password}, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.AuthResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		token = resp.Token
		require.NotEmpty(t, token)
	})
	t.Run("me", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/api/auth/me", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), phone)
	})
	t.Run("record defaults", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/api/prayers/2024-01-01", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		var record entity.PrayerRecord
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&record))
		assert.Equal(t, entity.DefaultPrayers(), record.Prayers)
	})
	t.Run("save partial record", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/prayers/2024-01-01",
			`{"prayers":{"fajr":"prayed","dhuhr":"prayed","asr":"missed"}}`, token)
		require.Equal(t, http.StatusOK, rr.Code)
		var record entity.PrayerRecord
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&record))
		assert.Equal(t, entity.Prayers{
			Fajr:    entity.Prayed,
			Dhuhr:   entity.Prayed,
			Asr:     entity.Missed,
			Maghrib: entity.NotPrayed,
			Isha:    entity.NotPrayed,
		}, record.Prayers)
	})
	t.Run("save full record twice", func(t *testing.T) {
		body := `{"prayers":{"fajr":"prayed","dhuhr":"prayed","asr":"prayed","maghrib":"prayed","isha":"missed"}}`
		rr := doRequest(t, serv, http.MethodPost, "/api/prayers/2024-01-02", body, token)
		require.Equal(t, http.StatusOK, rr.Code)
		body = `{"prayers":{"fajr":"prayed","dhuhr":"prayed","asr":"prayed","maghrib":"prayed","isha":"prayed"}}`
		rr = doRequest(t, serv, http.MethodPost, "/api/prayers/2024-01-02", body, token)
		require.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("explicit empty state", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/prayers/2024-01-04", `{"prayers":{"fajr":"prayed","asr":""}}`, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Message, "asr")
	})
	t.Run("invalid state", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodPost, "/api/prayers/2024-01-03", `{"prayers":{"isha":"done"}}`, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, decodeError(t, rr).Message, "isha")
	})
	t.Run("statistics", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/api/prayers/statistics/range?startDate=2024-01-01&endDate=2024-01-31", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		var stats entity.Statistics
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&stats))
		assert.Equal(t, 7, stats.TotalPrayed)
		assert.Equal(t, 1, stats.TotalMissed)
		assert.Equal(t, 2, stats.TotalNotPrayed)
		assert.Equal(t, 2, stats.TotalDays)
		assert.Equal(t, 70.0, stats.CompletionPercentage)
		require.Len(t, stats.DailyBreakdown, 2)
		assert.Equal(t, "2024-01-02", stats.DailyBreakdown[0].Date)
		assert.Equal(t, 100.0, stats.DailyBreakdown[0].Completion)
		assert.Equal(t, "2024-01-01", stats.DailyBreakdown[1].Date)
		assert.Equal(t, 40.0, stats.DailyBreakdown[1].Completion)
	})
	t.Run("empty range", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/api/prayers/statistics/range?startDate=2023-01-01&endDate=2023-01-31", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		var stats entity.Statistics
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&stats))
		assert.Zero(t, stats.TotalDays)
		assert.Zero(t, stats.CompletionPercentage)
	})
	t.Run("health", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/api/health", nil, "")
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.HealthResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.Equal(t, "up", resp.Database)
		assert.Equal(t, "sqlite", resp.Storage)
	})
}
