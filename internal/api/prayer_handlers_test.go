package api_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/limbo/salatchecker/internal/api"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/internal/prayertimes"
	"github.com/limbo/salatchecker/internal/service/mocks"
	"github.com/limbo/salatchecker/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrayersTestServer(t *testing.T) (*api.Server, *mocks.MockPrayerServiceI) {
	t.Helper()
	ctrl := gomock.NewController(t)
	pService := mocks.NewMockPrayerServiceI(ctrl)
	userMock := &UserServiceMock{}
	userMock.ChangeState(true, nil)
	serv := newTestServer(t, &api.ServicesList{
		UserService:   userMock,
		PrayerService: pService,
	})
	return serv, pService
}

func TestGetPrayerRecord(t *testing.T) {
	serv, pService := newPrayersTestServer(t)
	token := testToken(t)
	testCases := []struct {
		Desc         string
		Date         string
		Token        string
		ExpectedCode int
		ExpectedBody string
		MockPrepFunc func()
	}{
		{
			Desc:         "defaults",
			Date:         testDate,
			Token:        token,
			ExpectedCode: http.StatusOK,
			ExpectedBody: `{"date":"2024-01-01","prayers":{"fajr":"not_prayed","dhuhr":"not_prayed","asr":"not_prayed","maghrib":"not_prayed","isha":"not_prayed"}}`,
			MockPrepFunc: func() {
				pService.EXPECT().GetRecord(gomock.Any(), uid, testDate).Return(&entity.PrayerRecord{
					UserID:  uid,
					Date:    testDate,
					Prayers: entity.DefaultPrayers(),
				}, nil)
			},
		},
		{
			Desc:         "unpadded date",
			Date:         "2024-1-1",
			Token:        token,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "impossible date",
			Date:         "2024-13-40",
			Token:        token,
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "service error",
			Date:         testDate,
			Token:        token,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				pService.EXPECT().GetRecord(gomock.Any(), uid, testDate).Return(nil, errors.New("db error"))
			},
		},
		{
			Desc:         "unauthorized",
			Date:         testDate,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := doRequest(t, serv, http.MethodGet, "/prayers/"+tc.Date, nil, tc.Token)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedBody != "" {
				assert.JSONEq(t, tc.ExpectedBody, rr.Body.String())
			}
		})
	}
}

func TestSavePrayerRecord(t *testing.T) {
	serv, pService := newPrayersTestServer(t)
	token := testToken(t)
	prayers := entity.Prayers{
		Fajr:    entity.Prayed,
		Dhuhr:   entity.Prayed,
		Asr:     entity.Missed,
		Maghrib: entity.NotPrayed,
		Isha:    entity.Prayed,
	}
	update := entity.UpdateOf(prayers)
	body := api.SavePrayersRequest{Prayers: &update}
	done, empty := entity.PrayerState("done"), entity.PrayerState("")
	testCases := []struct {
		Desc         string
		Date         string
		Body         any
		ExpectedCode int
		ExpectedMsg  string
		MockPrepFunc func()
	}{
		{
			Desc:         "saved",
			Date:         testDate,
			Body:         body,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				pService.EXPECT().SaveRecord(gomock.Any(), uid, testDate, update).Return(&entity.PrayerRecord{
					UserID:  uid,
					Date:    testDate,
					Prayers: prayers,
				}, nil)
			},
		},
		{
			Desc:         "invalid state",
			Date:         testDate,
			Body:         `{"prayers":{"fajr":"done"}}`,
			ExpectedCode: http.StatusBadRequest,
			ExpectedMsg:  "invalid prayer state for fajr, must be one of: not_prayed, prayed, missed",
			MockPrepFunc: func() {
				pService.EXPECT().SaveRecord(gomock.Any(), uid, testDate, entity.PrayersUpdate{Fajr: &done}).
					Return(nil, fmt.Errorf("%w for fajr, must be one of: not_prayed, prayed, missed", errorvalues.ErrInvalidPrayerState))
			},
		},
		{
			Desc:         "explicit empty state reaches the service",
			Date:         testDate,
			Body:         `{"prayers":{"fajr":"","dhuhr":null}}`,
			ExpectedCode: http.StatusBadRequest,
			ExpectedMsg:  "invalid prayer state for fajr, must be one of: not_prayed, prayed, missed",
			MockPrepFunc: func() {
				pService.EXPECT().SaveRecord(gomock.Any(), uid, testDate, entity.PrayersUpdate{Fajr: &empty}).
					Return(nil, fmt.Errorf("%w for fajr, must be one of: not_prayed, prayed, missed", errorvalues.ErrInvalidPrayerState))
			},
		},
		{
			Desc:         "missing prayers",
			Date:         testDate,
			Body:         `{}`,
			ExpectedCode: http.StatusBadRequest,
			ExpectedMsg:  "prayers object is required",
			MockPrepFunc: func() {},
		},
		{
			Desc:         "body over 1 MiB",
			Date:         testDate,
			Body:         `{"prayers":{"fajr":"` + strings.Repeat("x", 1<<20) + `"}}`,
			ExpectedCode: http.StatusRequestEntityTooLarge,
			ExpectedMsg:  "request body too large",
			MockPrepFunc: func() {},
		},
		{
			Desc:         "invalid body",
			Date:         testDate,
			Body:         `{"prayers":`,
			ExpectedCode: http.StatusBadRequest,
			ExpectedMsg:  "invalid request body",
			MockPrepFunc: func() {},
		},
		{
			Desc:         "invalid date",
			Date:         "01-01-2024",
			Body:         body,
			ExpectedCode: http.StatusBadRequest,
			ExpectedMsg:  errorvalues.ErrInvalidDate.Error(),
			MockPrepFunc: func() {},
		},
		{
			Desc:         "service error",
			Date:         testDate,
			Body:         body,
			ExpectedCode: http.StatusInternalServerError,
			ExpectedMsg:  "internal server error",
			MockPrepFunc: func() {
				pService.EXPECT().SaveRecord(gomock.Any(), uid, testDate, update).Return(nil, errors.New("db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := doRequest(t, serv, http.MethodPost, "/api/prayers/"+tc.Date, tc.Body, token)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedMsg != "" {
				assert.Equal(t, tc.ExpectedMsg, decodeError(t, rr).Message)
				return
			}
			var record entity.PrayerRecord
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&record))
			assert.Equal(t, testDate, record.Date)
			assert.Equal(t, prayers, record.Prayers)
		})
	}
}

func TestGetStatistics(t *testing.T) {
	serv, pService := newPrayersTestServer(t)
	token := testToken(t)
	t.Run("range", func(t *testing.T) {
		stats := &entity.Statistics{
			TotalPrayed:          4,
			TotalMissed:          1,
			TotalDays:            1,
			CompletionPercentage: 80,
			DailyBreakdown: []entity.DailyStats{
				{Date: testDate, Prayed: 4, Missed: 1, Completion: 80},
			},
		}
		pService.EXPECT().GetStatistics(gomock.Any(), uid, testDate, "2024-01-07").Return(stats, nil)
		rr := doRequest(t, serv, http.MethodGet, "/prayers/statistics/range?startDate=2024-01-01&endDate=2024-01-07", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `{
			"totalPrayed": 4,
			"totalMissed": 1,
			"totalNotPrayed": 0,
			"totalDays": 1,
			"completionPercentage": 80,
			"dailyBreakdown": [{"date": "2024-01-01", "prayed": 4, "missed": 1, "notPrayed": 0, "completion": 80}]
		}`, rr.Body.String())
	})
	t.Run("missing dates", func(t *testing.T) {
		pService.EXPECT().GetStatistics(gomock.Any(), uid, "", "").
			Return(nil, fmt.Errorf("%w: startDate is required", errorvalues.ErrValidation))
		rr := doRequest(t, serv, http.MethodGet, "/prayers/statistics/range", nil, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "validation error: startDate is required", decodeError(t, rr).Message)
	})
	t.Run("reversed range", func(t *testing.T) {
		pService.EXPECT().GetStatistics(gomock.Any(), uid, "2024-02-01", testDate).Return(nil, errorvalues.ErrInvalidRange)
		rr := doRequest(t, serv, http.MethodGet, "/prayers/statistics/range?startDate=2024-02-01&endDate=2024-01-01", nil, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/prayers/statistics/range", nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

type timesProviderMock struct {
	lat, lng float64
	err      error
}

func (m *timesProviderMock) Timings(ctx context.Context, date string, lat, lng float64) (*entity.PrayerTimes, error) {
	m.lat, m.lng = lat, lng
	if m.err != nil {
		return nil, m.err
	}
	times := prayertimes.FallbackTimes
	times.Date = date
	return &times, nil
}

func TestGetPrayerTimes(t *testing.T) {
	userMock := &UserServiceMock{}
	userMock.ChangeState(true, nil)
	provider := &timesProviderMock{}
	serv := newTestServer(t, &api.ServicesList{
		UserService: userMock,
		PrayerTimes: provider,
	})
	token := testToken(t)
	t.Run("default location", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/prayers/times/"+testDate, nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		var times entity.PrayerTimes
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&times))
		assert.Equal(t, testDate, times.Date)
		assert.Equal(t, prayertimes.DefaultLatitude, provider.lat)
		assert.Equal(t, prayertimes.DefaultLongitude, provider.lng)
	})
	t.Run("given location", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/prayers/times/"+testDate+"?latitude=33.5731&longitude=-7.5898", nil, token)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 33.5731, provider.lat)
		assert.Equal(t, -7.5898, provider.lng)
	})
	t.Run("bad latitude", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/prayers/times/"+testDate+"?latitude=north", nil, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "invalid latitude", decodeError(t, rr).Message)
	})
	t.Run("bad date", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/prayers/times/2024-02-30", nil, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("coordinates out of range", func(t *testing.T) {
		provider.err = fmt.Errorf("%w: coordinates out of range", errorvalues.ErrValidation)
		defer func() { provider.err = nil }()
		rr := doRequest(t, serv, http.MethodGet, "/prayers/times/"+testDate+"?latitude=95", nil, token)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("unauthorized", func(t *testing.T) {
		rr := doRequest(t, serv, http.MethodGet, "/prayers/times/"+testDate, nil, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
