package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"go.uber.org/zap"
)

type unitRequest struct {
	Description  string `json:"description" validate:"required,max=100"`
	Abbreviation string `json:"abbreviation" validate:"required,max=10"`
	Status       string `json:"status"`
}

func (req unitRequest) toModel(id int64) models.Unit {
	return models.Unit{ID: id, Description: req.Description, Abbreviation: req.Abbreviation, Status: req.Status}
}

type UnitHandler struct {
	service UnitService
	log     *zap.Logger
}

func NewUnitHandler(service UnitService, log *zap.Logger) *UnitHandler {
	return &UnitHandler{service: service, log: log}
}

func (h *UnitHandler) List(w http.ResponseWriter, r *http.Request) {
	units, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, units)
}

func (h *UnitHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req unitRequest
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

func (h *UnitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	unit, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, unit)
}

func (h *UnitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req unitRequest
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

func (h *UnitHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
