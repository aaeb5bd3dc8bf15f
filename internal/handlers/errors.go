package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/AlenaMolokova/masterdata/internal/accounting"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/usecase"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"github.com/AlenaMolokova/masterdata/internal/validation"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

var errInvalidID = errors.New("invalid id")

// writeError maps layer errors to a status code and a client-facing message.
// Unknown errors are logged and answered with 500 without leaking the cause.
func writeError(w http.ResponseWriter, r *http.Request, log *zap.Logger, err error) {
	status, message := http.StatusInternalServerError, "Internal server error"

	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrInvalidStatus),
		errors.Is(err, usecase.ErrWeakPassword):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, usecase.ErrInvalidIdentityNumber):
		status, message = http.StatusUnprocessableEntity, "Invalid identity number"
	case errors.Is(err, usecase.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, "Invalid login or password"
	case errors.Is(err, usecase.ErrLoginExists):
		status, message = http.StatusConflict, "Login already exists"
	case errors.Is(err, storage.ErrNotFound):
		status, message = http.StatusNotFound, "Not found"
	case errors.Is(err, storage.ErrDuplicate):
		status, message = http.StatusConflict, "Record already exists"
	case errors.Is(err, storage.ErrInvalidValue):
		status, message = http.StatusBadRequest, "Value out of range"
	case errors.Is(err, storage.ErrInvalidReference):
		if r.Method == http.MethodDelete {
			status, message = http.StatusConflict, "Record is still referenced"
		} else {
			status, message = http.StatusUnprocessableEntity, "Referenced record does not exist"
		}
	case errors.Is(err, usecase.ErrAccountingDisabled):
		status, message = http.StatusServiceUnavailable, "Accounting API is not configured"
	case errors.Is(err, accounting.ErrUnavailable), errors.Is(err, accounting.ErrUnauthorized):
		status, message = http.StatusBadGateway, "Accounting API unavailable"
	case errors.Is(err, accounting.ErrRateLimited):
		status, message = http.StatusServiceUnavailable, "Accounting API rate limit exceeded"
	case errors.Is(err, accounting.ErrRejected):
		status, message = http.StatusBadGateway, "Accounting API rejected the request"
	}

	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	} else {
		log.Debug("request rejected", zap.String("path", r.URL.Path), zap.Int("status", status), zap.Error(err))
	}
	utils.WriteJSONError(w, status, message)
}

func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

// decodeRequest reads a JSON body into req and runs its validate tags. It
// writes the 400 response itself and returns false when the body is rejected.
func decodeRequest(w http.ResponseWriter, r *http.Request, log *zap.Logger, req any) bool {
	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Debug("failed to decode request", zap.String("path", r.URL.Path), zap.Error(err))
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if details := validation.ValidateRequest(req); details != nil {
		utils.WriteValidationError(w, details)
		return false
	}
	return true
}
