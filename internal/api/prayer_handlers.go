package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/limbo/salatchecker/internal/prayertimes"
	"github.com/limbo/salatchecker/internal/service"
	"github.com/limbo/salatchecker/pkg/entity"
	"github.com/limbo/salatchecker/pkg/httputil"
	"go.uber.org/zap"
)

type SavePrayersRequest struct {
	Prayers *entity.PrayersUpdate `json:"prayers"`
}

func (s *Server) GetPrayerRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting record error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	date := chi.URLParam(r, "date")
	if err = service.ValidateDate(date); err != nil {
		writeServiceError(w, logger, "getting record", err)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.storeTimeout)
	defer cancel()
	record, err := s.prayerService.GetRecord(ctx, uid, date)
	if err != nil {
		writeServiceError(w, logger, "getting record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
}

func (s *Server) SavePrayerRecord(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("saving record error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	date := chi.URLParam(r, "date")
	if err = service.ValidateDate(date); err != nil {
		writeServiceError(w, logger, "saving record", err)
		return
	}
	var req SavePrayersRequest
	if !decodeBody(w, r, logger, "saving record", &req) {
		return
	}
	if req.Prayers == nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "prayers object is required", nil)
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.storeTimeout)
	defer cancel()
	record, err := s.prayerService.SaveRecord(ctx, uid, date, *req.Prayers)
	if err != nil {
		writeServiceError(w, logger, "saving record", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, record)
	logger.Info("prayer record saved", zap.String("date", date))
}

func (s *Server) GetStatistics(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("getting statistics error: no uid in context")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	query := r.URL.Query()
	ctx, cancel := context.WithTimeout(r.Context(), s.storeTimeout)
	defer cancel()
	stats, err := s.prayerService.GetStatistics(ctx, uid, query.Get("startDate"), query.Get("endDate"))
	if err != nil {
		writeServiceError(w, logger, "getting statistics", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
}

func (s *Server) GetPrayerTimes(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	date := chi.URLParam(r, "date")
	if err := service.ValidateDate(date); err != nil {
		writeServiceError(w, logger, "getting prayer times", err)
		return
	}
	lat, err := floatQueryParam(r, "latitude", prayertimes.DefaultLatitude)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid latitude", nil)
		return
	}
	lng, err := floatQueryParam(r, "longitude", prayertimes.DefaultLongitude)
	if err != nil {
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid longitude", nil)
		return
	}
	if s.prayerTimes == nil {
		logger.Error("getting prayer times error: provider is not configured")
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
		return
	}
	times, err := s.prayerTimes.Timings(r.Context(), date, lat, lng)
	if err != nil {
		writeServiceError(w, logger, "getting prayer times", err)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, times)
}

func floatQueryParam(r *http.Request, key string, def float64) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def, nil
	}
	return strconv.ParseFloat(raw, 64)
}
