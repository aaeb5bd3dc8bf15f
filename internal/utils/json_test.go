package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWriteJSONError(t *testing.T) {
	tests := []struct {
		name           string
		status         int
		message        string
		expectedBody   string
		expectedStatus int
	}{
		{
			name:           "bad request",
			status:         http.StatusBadRequest,
			message:        "bad request",
			expectedBody:   `{"error":"bad request"}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "not found",
			status:         http.StatusNotFound,
			message:        "Department not found",
			expectedBody:   `{"error":"Department not found"}`,
			expectedStatus: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			err := WriteJSONError(w, tt.status, tt.message)

			assert.NoError(t, err, "WriteJSONError should not return an error")
			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"), "Content-Type header mismatch")
			assert.JSONEq(t, tt.expectedBody, w.Body.String(), "Response body mismatch")
		})
	}
}

func TestWriteValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteValidationError(w, []FieldError{{Field: "name", Message: "is required"}})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Validation failed","details":[{"field":"name","message":"is required"}]}`, w.Body.String())
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()
	err := WriteJSON(w, http.StatusCreated, map[string]int{"id": 7})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"id":7}`, w.Body.String())
}
