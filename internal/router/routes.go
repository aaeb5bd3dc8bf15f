package router

import (
	"net/http"

	"github.com/AlenaMolokova/masterdata/internal/handlers"
	"github.com/AlenaMolokova/masterdata/internal/metrics"
	"github.com/AlenaMolokova/masterdata/internal/middleware"
	"github.com/AlenaMolokova/masterdata/internal/session"
	"github.com/AlenaMolokova/masterdata/internal/storage"
	"github.com/AlenaMolokova/masterdata/internal/usecase"
	"github.com/AlenaMolokova/masterdata/internal/validation"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

const (
	APIPrefix       = "/api"
	AuthPath        = "/auth"
	DepartmentsPath = "/departments"
	SuppliersPath   = "/suppliers"
	UnitsPath       = "/units"
	ArticlesPath    = "/articles"
	IdentityPath    = "/identity/validate"
	AccountingPath  = "/accounting"
	PingPath        = "/ping"
	MetricsPath     = "/metrics"
)

type Options struct {
	Sessions     *session.Manager
	Accounting   usecase.AccountingClient
	Metrics      *metrics.Metrics
	SecureCookie bool
	Log          *zap.Logger
}

func SetupRoutes(store *storage.Storage, opts Options) *chi.Mux {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestLogger(opts.Log))
	r.Use(opts.Metrics.Middleware)

	identity := validation.NewCedulaValidator()

	authUC := usecase.NewAuthUseCase(store, validation.NewDefaultPasswordValidator(), opts.Sessions, opts.Log)
	departmentUC := usecase.NewDepartmentUseCase(store, opts.Log)
	supplierUC := usecase.NewSupplierUseCase(store, identity, opts.Metrics, opts.Log)
	unitUC := usecase.NewUnitUseCase(store, opts.Log)
	articleUC := usecase.NewArticleUseCase(store, opts.Log)
	accountingUC := usecase.NewAccountingUseCase(opts.Accounting)

	auth := handlers.NewAuthHandler(authUC, opts.SecureCookie, opts.Log)

	r.Get(PingPath, handlers.NewPingHandler(store, opts.Log).ServeHTTP)
	r.Method(http.MethodGet, MetricsPath, opts.Metrics.Handler())
	r.Post(APIPrefix+AuthPath+"/register", auth.Register)
	r.Post(APIPrefix+AuthPath+"/login", auth.Login)

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(opts.Sessions, opts.Log))

		r.Post(APIPrefix+AuthPath+"/logout", auth.Logout)
		r.Get(APIPrefix+IdentityPath, handlers.NewIdentityHandler(identity, opts.Metrics).ServeHTTP)

		crud(r, APIPrefix+DepartmentsPath, handlers.NewDepartmentHandler(departmentUC, opts.Log))
		crud(r, APIPrefix+SuppliersPath, handlers.NewSupplierHandler(supplierUC, opts.Log))
		crud(r, APIPrefix+UnitsPath, handlers.NewUnitHandler(unitUC, opts.Log))
		crud(r, APIPrefix+ArticlesPath, handlers.NewArticleHandler(articleUC, opts.Log))

		accounting := handlers.NewAccountingHandler(accountingUC, opts.Log)
		r.Get(APIPrefix+AccountingPath+"/accounts", accounting.ListAccounts)
		r.Get(APIPrefix+AccountingPath+"/entries", accounting.ListEntries)
		r.Post(APIPrefix+AccountingPath+"/entries", accounting.CreateEntry)
	})

	return r
}

type crudHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

func crud(r chi.Router, prefix string, h crudHandler) {
	r.Get(prefix, h.List)
	r.Post(prefix, h.Create)
	r.Get(prefix+"/{id}", h.Get)
	r.Put(prefix+"/{id}", h.Update)
	r.Delete(prefix+"/{id}", h.Delete)
}
