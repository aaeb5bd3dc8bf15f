package handlers

import (
	"net/http"
	"strings"

	"github.com/AlenaMolokova/masterdata/internal/utils"
)

type identityResponse struct {
	Number string `json:"number"`
	Valid  bool   `json:"valid"`
}

// IdentityHandler answers whether an identity number is well formed and carries
// a correct check digit. A malformed number is reported as invalid, not as 400.
type IdentityHandler struct {
	checker  IdentityChecker
	observer IdentityObserver
}

func NewIdentityHandler(checker IdentityChecker, observer IdentityObserver) *IdentityHandler {
	return &IdentityHandler{checker: checker, observer: observer}
}

func (h *IdentityHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number := strings.TrimSpace(r.URL.Query().Get("number"))
	if number == "" {
		utils.WriteJSONError(w, http.StatusBadRequest, "Query parameter number is required")
		return
	}

	valid := h.checker.ValidateIdentityNumber(number)
	if h.observer != nil {
		h.observer.ObserveIdentityValidation(valid)
	}
	utils.WriteJSON(w, http.StatusOK, identityResponse{Number: number, Valid: valid})
}
