package prayertimes

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-resty/resty/v2"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/entity"
	"go.uber.org/zap"
)

const (
	DefaultBaseURL   = "https://api.aladhan.com/v1"
	DefaultMethod    = 2
	DefaultLatitude  = 21.4225
	DefaultLongitude = 39.8262

	cacheTTL       = 24 * time.Hour
	requestTimeout = 10 * time.Second
)

// FallbackTimes is served when the upstream cannot be reached.
var FallbackTimes = entity.PrayerTimes{
	Fajr:    "05:00",
	Dhuhr:   "12:00",
	Asr:     "15:30",
	Maghrib: "18:00",
	Isha:    "19:30",
}

type Config struct {
	BaseURL string
	Method  int
	Timeout time.Duration
}

type Client struct {
	http   *resty.Client
	method int
	cache  Cache
	logger *zap.Logger
}

type timingsResponse struct {
	Code int    `json:"code"`
	Data struct {
		Timings map[string]string `json:"timings"`
	} `json:"data"`
}

func New(cfg Config, cache Cache, logger *zap.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Method == 0 {
		cfg.Method = DefaultMethod
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = requestTimeout
	}
	if cache == nil {
		cache = NewMemoryCache()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(sonic.Marshal).
		SetJSONUnmarshaler(sonic.Unmarshal)
	return &Client{
		http:   httpClient,
		method: cfg.Method,
		cache:  cache,
		logger: logger,
	}
}

// Timings returns the five daily prayer times for date (YYYY-MM-DD) at the given
// coordinates. Upstream failures are logged and answered with FallbackTimes.
func (c *Client) Timings(ctx context.Context, date string, lat, lng float64) (*entity.PrayerTimes, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, errorvalues.ErrInvalidDate
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, fmt.Errorf("%w: coordinates out of range", errorvalues.ErrValidation)
	}
	key := cacheKey(date, lat, lng)
	if cached, ok := c.cache.Get(ctx, key); ok {
		return cached, nil
	}
	times, err := c.fetch(ctx, day, lat, lng)
	if err != nil {
		c.logger.Warn("prayer times upstream failed, serving fallback",
			zap.String("date", date), zap.Error(err))
		fallback := FallbackTimes
		fallback.Date = date
		fallback.Fallback = true
		return &fallback, nil
	}
	times.Date = date
	c.cache.Set(ctx, key, times, cacheTTL)
	return times, nil
}

func (c *Client) fetch(ctx context.Context, day time.Time, lat, lng float64) (*entity.PrayerTimes, error) {
	var body timingsResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetPathParam("date", day.Format("02-01-2006")).
		SetQueryParams(map[string]string{
			"latitude":  formatCoord(lat),
			"longitude": formatCoord(lng),
			"method":    strconv.Itoa(c.method),
		}).
		SetResult(&body).
		Get("/timings/{date}")
	if err != nil {
		return nil, fmt.Errorf("%w: %s", errorvalues.ErrTimesUnavailable, err.Error())
	}
	if resp.IsError() {
		return nil, fmt.Errorf("%w: upstream status %d", errorvalues.ErrTimesUnavailable, resp.StatusCode())
	}
	if body.Code != 200 || len(body.Data.Timings) == 0 {
		return nil, fmt.Errorf("%w: unexpected payload code %d", errorvalues.ErrTimesUnavailable, body.Code)
	}
	t := body.Data.Timings
	times := &entity.PrayerTimes{
		Fajr:    clock(t["Fajr"]),
		Dhuhr:   clock(t["Dhuhr"]),
		Asr:     clock(t["Asr"]),
		Maghrib: clock(t["Maghrib"]),
		Isha:    clock(t["Isha"]),
	}
	if times.Fajr == "" || times.Dhuhr == "" || times.Asr == "" || times.Maghrib == "" || times.Isha == "" {
		return nil, fmt.Errorf("%w: incomplete timings", errorvalues.ErrTimesUnavailable)
	}
	return times, nil
}

// clock strips timezone suffixes like "04:55 (+03)".
func clock(v string) string {
	fields := strings.Fields(v)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func cacheKey(date string, lat, lng float64) string {
	return "prayertimes:" + date + ":" + formatCoord(lat) + ":" + formatCoord(lng)
}
