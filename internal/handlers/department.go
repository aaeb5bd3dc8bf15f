package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"go.uber.org/zap"
)

type departmentRequest struct {
	Name   string `json:"name" validate:"required,max=100"`
	Status string `json:"status"`
}

func (req departmentRequest) toModel(id int64) models.Department {
	return models.Department{ID: id, Name: req.Name, Status: req.Status}
}

type DepartmentHandler struct {
	service DepartmentService
	log     *zap.Logger
}

func NewDepartmentHandler(service DepartmentService, log *zap.Logger) *DepartmentHandler {
	return &DepartmentHandler{service: service, log: log}
}

func (h *DepartmentHandler) List(w http.ResponseWriter, r *http.Request) {
	departments, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, departments)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req departmentRequest
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

func (h *DepartmentHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	dept, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, dept)
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req departmentRequest
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

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
