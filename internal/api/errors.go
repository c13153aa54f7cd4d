package api

import (
	"errors"
	"net/http"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/salatchecker/internal/error_values"
	"github.com/limbo/salatchecker/pkg/httputil"
	"go.uber.org/zap"
)

// writeServiceError maps service errors onto HTTP answers. Unknown errors are
// logged and hidden behind a generic 500.
func writeServiceError(w http.ResponseWriter, logger *zap.Logger, action string, err error) {
	switch {
	case errors.Is(err, errorvalues.ErrValidation),
		errors.Is(err, errorvalues.ErrInvalidDate),
		errors.Is(err, errorvalues.ErrInvalidPrayerState),
		errors.Is(err, errorvalues.ErrInvalidRange):
		logger.Info(action+" error: invalid input", zap.String("reason", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, errorvalues.ErrUserExists):
		logger.Info(action + " error: phone number taken")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, errorvalues.ErrUserExists.Error(), nil)
	case errors.Is(err, errorvalues.ErrWrongCredentials):
		logger.Info(action + " error: wrong credentials")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, errorvalues.ErrWrongCredentials.Error(), nil)
	case errors.Is(err, errorvalues.ErrUserNotFound):
		logger.Info(action + " error: user not found")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "user not found", nil)
	default:
		logger.Error(action+" error: internal", zap.Error(err))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal server error", nil)
	}
}

const maxBodyBytes = 1 << 20

// decodeBody reads a JSON body of at most maxBodyBytes into dst. On failure the
// answer is already written and false is returned.
func decodeBody(w http.ResponseWriter, r *http.Request, logger *zap.Logger, action string, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	defer r.Body.Close()
	err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return true
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		logger.Info(action+" error: body too large", zap.Int64("limit", tooLarge.Limit))
		httputil.WriteErrorResponse(w, http.StatusRequestEntityTooLarge, "request body too large", nil)
		return false
	}
	logger.Info(action + " error: invalid body")
	httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
	return false
}
