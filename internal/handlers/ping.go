package handlers

import (
	"net/http"

	"github.com/AlenaMolokova/masterdata/internal/utils"
	"go.uber.org/zap"
)

type PingHandler struct {
	db  Pinger
	log *zap.Logger
}

func NewPingHandler(db Pinger, log *zap.Logger) *PingHandler {
	return &PingHandler{db: db, log: log}
}

func (h *PingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.db.Ping(r.Context()); err != nil {
		h.log.Error("database ping failed", zap.Error(err))
		utils.WriteJSONError(w, http.StatusServiceUnavailable, "Database unavailable")
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("pong"))
}
