package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AlenaMolokova/masterdata/internal/accounting"
	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/testutils"
	"github.com/AlenaMolokova/masterdata/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func TestAccountingHandler(t *testing.T) {
	t.Run("план счетов передаётся как есть", func(t *testing.T) {
		client := &testutils.MockAccountingClient{}
		client.On("ListAccounts", mock.Anything).Return(json.RawMessage(`[{"id":1,"descripcion":"Caja"}]`), nil)
		h := NewAccountingHandler(usecase.NewAccountingUseCase(client), zap.NewNop())

		w := httptest.NewRecorder()
		h.ListAccounts(w, httptest.NewRequest(http.MethodGet, "/api/accounting/accounts", nil))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[{"id":1,"descripcion":"Caja"}]`, w.Body.String())
		client.AssertExpectations(t)
	})

	t.Run("не настроено", func(t *testing.T) {
		h := NewAccountingHandler(usecase.NewAccountingUseCase(nil), zap.NewNop())

		w := httptest.NewRecorder()
		h.ListEntries(w, httptest.NewRequest(http.MethodGet, "/api/accounting/entries", nil))

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.JSONEq(t, `{"error":"Accounting API is not configured"}`, w.Body.String())
	})

	t.Run("API недоступен", func(t *testing.T) {
		client := &testutils.MockAccountingClient{}
		client.On("ListEntries", mock.Anything).Return(nil, accounting.ErrUnavailable)
		h := NewAccountingHandler(usecase.NewAccountingUseCase(client), zap.NewNop())

		w := httptest.NewRecorder()
		h.ListEntries(w, httptest.NewRequest(http.MethodGet, "/api/accounting/entries", nil))

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestAccountingHandlerCreateEntry(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*testutils.MockAccountingClient)
		expectedStatus int
	}{
		{
			name: "успешная запись",
			body: `{"description":"Compra","account_id":11,"movement_type":"CR","amount":"99.90","date":"2024-03-15"}`,
			setupMocks: func(c *testutils.MockAccountingClient) {
				c.On("CreateEntry", mock.Anything, mock.MatchedBy(func(e models.AccountingEntry) bool {
					return e.MovementType == "CR" && e.Date.Equal(time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC))
				})).Return(json.RawMessage(`{"id":77}`), nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "неверный тип движения",
			body:           `{"description":"Compra","account_id":11,"movement_type":"XX","amount":"1"}`,
			setupMocks:     func(c *testutils.MockAccountingClient) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "неверная дата",
			body:           `{"description":"Compra","account_id":11,"movement_type":"DB","amount":"1","date":"15/03/2024"}`,
			setupMocks:     func(c *testutils.MockAccountingClient) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "нулевая сумма",
			body:           `{"description":"Compra","account_id":11,"movement_type":"DB","amount":"0"}`,
			setupMocks:     func(c *testutils.MockAccountingClient) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "превышен лимит запросов",
			body: `{"description":"Compra","account_id":11,"movement_type":"DB","amount":"1"}`,
			setupMocks: func(c *testutils.MockAccountingClient) {
				c.On("CreateEntry", mock.Anything, mock.AnythingOfType("models.AccountingEntry")).
					Return(nil, accounting.ErrRateLimited)
			},
			expectedStatus: http.StatusServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &testutils.MockAccountingClient{}
			tt.setupMocks(client)
			h := NewAccountingHandler(usecase.NewAccountingUseCase(client), zap.NewNop())

			w := httptest.NewRecorder()
			h.CreateEntry(w, httptest.NewRequest(http.MethodPost, "/api/accounting/entries", bytes.NewBufferString(tt.body)))

			assert.Equal(t, tt.expectedStatus, w.Code)
			client.AssertExpectations(t)
		})
	}
}
