package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/utils"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type articleRequest struct {
	Description string          `json:"description" validate:"required,max=200"`
	UnitID      int64           `json:"unit_id" validate:"required,gt=0"`
	SupplierID  *int64          `json:"supplier_id" validate:"omitempty,gt=0"`
	Stock       decimal.Decimal `json:"stock"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Status      string          `json:"status"`
}

func (req articleRequest) toModel(id int64) models.Article {
	article := models.Article{
		ID:          id,
		Description: req.Description,
		UnitID:      req.UnitID,
		Stock:       req.Stock,
		UnitCost:    req.UnitCost,
		Status:      req.Status,
	}
	if req.SupplierID != nil {
		article.SupplierID = pgtype.Int8{Int64: *req.SupplierID, Valid: true}
	}
	return article
}

type ArticleHandler struct {
	service ArticleService
	log     *zap.Logger
}

func NewArticleHandler(service ArticleService, log *zap.Logger) *ArticleHandler {
	return &ArticleHandler{service: service, log: log}
}

func (h *ArticleHandler) List(w http.ResponseWriter, r *http.Request) {
	articles, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, articles)
}

func (h *ArticleHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req articleRequest
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

func (h *ArticleHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	article, err := h.service.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, article)
}

func (h *ArticleHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		utils.WriteJSONError(w, http.StatusBadRequest, "Invalid id")
		return
	}
	var req articleRequest
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

func (h *ArticleHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
