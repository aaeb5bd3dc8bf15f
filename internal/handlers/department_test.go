package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AlenaMolokova/masterdata/internal/models"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/testutils"
	"github.com/AlenaMolokova/masterdata/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func departmentRouter(ds *testutils.MockDepartmentStorage) http.Handler {
	h := NewDepartmentHandler(usecase.NewDepartmentUseCase(ds, zap.NewNop()), zap.NewNop())
	r := chi.NewRouter()
	r.Get("/api/departments", h.List)
	r.Post("/api/departments", h.Create)
	r.Get("/api/departments/{id}", h.Get)
	r.Put("/api/departments/{id}", h.Update)
	r.Delete("/api/departments/{id}", h.Delete)
	return r
}

func TestDepartmentHandler(t *testing.T) {
	tests := []struct {
		name           string
		method         string
		target         string
		body           string
		setupMocks     func(*testutils.MockDepartmentStorage)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:   "пустой список",
			method: http.MethodGet,
			target: "/api/departments",
			setupMocks: func(ds *testutils.MockDepartmentStorage) {
				ds.On("ListDepartments", mock.Anything).Return([]models.Department{}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `[]`,
		},
		{
			name:   "успешное создание",
			method: http.MethodPost,
			target: "/api/departments",
			body:   `{"name":"Compras"}`,
			setupMocks: func(ds *testutils.MockDepartmentStorage) {
				ds.On("CreateDepartment", mock.Anything, models.Department{Name: "Compras", Status: "Activo"}).
					Return(models.Department{ID: 1, Name: "Compras", Status: "Activo"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   `{"id":1,"name":"Compras","status":"Activo","created_at":null,"updated_at":null}`,
		},
		{
			name:           "нет имени",
			method:         http.MethodPost,
			target:         "/api/departments",
			body:           `{"status":"Activo"}`,
			setupMocks:     func(ds *testutils.MockDepartmentStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Validation failed","details":[{"field":"name","message":"is required"}]}`,
		},
		{
			name:           "невалидный JSON",
			method:         http.MethodPost,
			target:         "/api/departments",
			body:           `{"name":`,
			setupMocks:     func(ds *testutils.MockDepartmentStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid request format"}`,
		},
		{
			name:           "неизвестный статус",
			method:         http.MethodPost,
			target:         "/api/departments",
			body:           `{"name":"Compras","status":"Borrado"}`,
			setupMocks:     func(ds *testutils.MockDepartmentStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"status must be Activo or Inactivo"}`,
		},
		{
			name:   "дубликат",
			method: http.MethodPost,
			target: "/api/departments",
			body:   `{"name":"Compras"}`,
			setupMocks: func(ds *testutils.MockDepartmentStorage) {
				ds.On("CreateDepartment", mock.Anything, mock.AnythingOfType("models.Department")).
					Return(models.Department{}, storage.ErrDuplicate)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   `{"error":"Record already exists"}`,
		},
		{
			name:           "невалидный id",
			method:         http.MethodGet,
			target:         "/api/departments/abc",
			setupMocks:     func(ds *testutils.MockDepartmentStorage) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"error":"Invalid id"}`,
		},
		{
			name:   "не найден",
			method: http.MethodGet,
			target: "/api/departments/9",
			setupMocks: func(ds *testutils.MockDepartmentStorage) {
				ds.On("GetDepartment", mock.Anything, int64(9)).Return(models.Department{}, storage.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   `{"error":"Not found"}`,
		},
		{
			name:   "обновление",
			method: http.MethodPut,
			target: "/api/departments/3",
			body:   `{"name":"RRHH","status":"Inactivo"}`,
			setupMocks: func(ds *testutils.MockDepartmentStorage) {
				ds.On("UpdateDepartment", mock.Anything, models.Department{ID: 3, Name: "RRHH", Status: "Inactivo"}).
					Return(models.Department{ID: 3, Name: "RRHH", Status: "Inactivo"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"id":3,"name":"RRHH","status":"Inactivo","created_at":null,"updated_at":null}`,
		},
		{
			name:   "удаление",
			method: http.MethodDelete,
			target: "/api/departments/3",
			setupMocks: func(ds *testutils.MockDepartmentStorage) {
				ds.On("DeleteDepartment", mock.Anything, int64(3)).Return(nil)
			},
			expectedStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := &testutils.MockDepartmentStorage{}
			tt.setupMocks(ds)

			req := httptest.NewRequest(tt.method, tt.target, bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()
			departmentRouter(ds).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			} else {
				assert.Empty(t, w.Body.String())
			}
			ds.AssertExpectations(t)
		})
	}
}
