package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/zap"
)

type supplierRequest struct {
	Name           string `json:"name" validate:"required,max=150"`
	IdentityNumber string `json:"identity_number" validate:"required,max=64"`
	ContactName    string `json:"contact_name" validate:"max=150"`
	Phone          string `json:"phone" validate:"max=30"`
	Email          string `json:"email" validate:"omitempty,max=150,email"`
	Status         string `json:"status"`
}

func (req supplierRequest) toModel(id int64) models.Supplier {
	return models.Supplier{
		ID:             id,
		Name:           req.Name,
		IdentityNumber: req.IdentityNumber,
		ContactName:    pgtype.Text{String: req.ContactName, Valid: req.ContactName != ""},
		Phone:          pgtype.Text{String: req.Phone, Valid: req.Phone != ""},
		Email:          pgtype.Text{String: req.Email, Valid: req.Email != ""},
		Status:         req.Status,
	}
}

type SupplierHandler struct {
	service SupplierService
	log     *zap.Logger
}

func NewSupplierHandler(service SupplierService, log *zap.Logger) *SupplierHandler {
	return &SupplierHandler{service: service, log: log}
}

func (h *SupplierHandler) List(w http.ResponseWriter, r *http.Request) {
	suppliers, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, suppliers)
}

func (h *SupplierHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if !decodeRequest(w, r, h.log, &req) {
		return
	}
	created, err := h.service.Create(r.Context(), req.toModel(0))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusCreated, created)
}

func (h *SupplierHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	supplier, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, supplier)
}

func (h *SupplierHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req supplierRequest
	if !decodeRequest(w, r, h.log, &req) {
		return
	}
	updated, err := h.service.Update(r.Context(), req.toModel(id))
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, updated)
}

func (h *SupplierHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
