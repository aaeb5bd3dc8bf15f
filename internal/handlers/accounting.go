package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const entryDateLayout = "2006-01-02"

type entryRequest struct {
	Description  string          `json:"description" validate:"required,max=200"`
	AuxiliaryID  int64           `json:"auxiliary_id" validate:"min=0"`
	AccountID    int64           `json:"account_id" validate:"required,gt=0"`
	MovementType string          `json:"movement_type" validate:"required,oneof=DB CR db cr"`
	Amount       decimal.Decimal `json:"amount"`
	Date         string          `json:"date"`
}

type AccountingHandler struct {
	service AccountingService
	log     *zap.Logger
}

func NewAccountingHandler(service AccountingService, log *zap.Logger) *AccountingHandler {
	return &AccountingHandler{service: service, log: log}
}

func (h *AccountingHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.service.ListAccounts(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusOK, accounts)
}

func (h *AccountingHandler) ListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.service.ListEntries(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusOK, entries)
}

func (h *AccountingHandler) CreateEntry(w http.ResponseWriter, r *http.Request) {
	var req entryRequest
	if !decodeRequest(w, r, h.log, &req) {
		return
	}

	entry := models.AccountingEntry{
		Description:  req.Description,
		AuxiliaryID:  req.AuxiliaryID,
		AccountID:    req.AccountID,
		MovementType: req.MovementType,
		Amount:       req.Amount,
	}
	if req.Date != "" {
		date, err := time.Parse(entryDateLayout, req.Date)
		if err != nil {
			utils.WriteValidationError(w, []utils.FieldError{{Field: "date", Message: "must be a date in YYYY-MM-DD format"}})
			return
		}
		entry.Date = date
	}

	created, err := h.service.CreateEntry(r.Context(), entry)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	writeRaw(w, http.StatusCreated, created)
}

// writeRaw passes the accounting API payload through unchanged.
func writeRaw(w http.ResponseWriter, status int, payload json.RawMessage) {
	if len(payload) == 0 {
		payload = json.RawMessage("null")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(payload)
}
