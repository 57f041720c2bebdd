package http

import (
	"net/http"

	"liber-server/internal/delivery/http/handler"
	"liber-server/internal/delivery/http/middleware"
	"liber-server/internal/domain/entity"
	"liber-server/internal/usecase"
	"liber-server/pkg/validator"

	"github.com/gorilla/mux"
)

type Router struct {
	router          *mux.Router
	authHandler     *handler.AuthHandler
	patientHandler  *handler.PatientHandler
	hospHandler     *handler.HospitalizationHandler
	reportHandler   *handler.ReportHandler
	cityHandler     *handler.CityHandler
	catalogHandlers []*handler.CatalogHandler
	authMiddleware  *middleware.AuthMiddleware
	corsMiddleware  *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	hospHandler *handler.HospitalizationHandler,
	reportHandler *handler.ReportHandler,
	cityHandler *handler.CityHandler,
	catalogUsecase usecase.CatalogUsecase,
	validator *validator.CustomValidator,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	catalogHandlers := make([]*handler.CatalogHandler, 0, len(entity.Catalogs))
	for _, def := range entity.Catalogs {
		catalogHandlers = append(catalogHandlers, handler.NewCatalogHandler(def, catalogUsecase, validator))
	}
	return &Router{
		router:          mux.NewRouter(),
		authHandler:     authHandler,
		patientHandler:  patientHandler,
		hospHandler:     hospHandler,
		reportHandler:   reportHandler,
		cityHandler:     cityHandler,
		catalogHandlers: catalogHandlers,
		authMiddleware:  authMiddleware,
		corsMiddleware:  corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Authentication (public)
	api.HandleFunc("/authenticate", r.authHandler.Authenticate).Methods(http.MethodPost)

	// Everything below needs a bearer token.
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Reference catalogues: same surface for all twelve, writes restricted
	// to social assistants, reads open to any clinical role.
	for _, h := range r.catalogHandlers {
		def := h.Def()
		base := "/" + def.Path

		writes := protected.NewRoute().Subrouter()
		writes.Use(middleware.RequireSocialAssistant(def.Entity))
		writes.HandleFunc(base, h.Create).Methods(http.MethodPost)
		writes.HandleFunc(base+"/{id}", h.Delete).Methods(http.MethodDelete)

		reads := protected.NewRoute().Subrouter()
		reads.Use(middleware.RequireClinical(def.Entity))
		reads.HandleFunc(base, h.List).Methods(http.MethodGet)
		reads.HandleFunc(base+"/{id}", h.Get).Methods(http.MethodGet)
	}

	// Geographic read model
	cities := protected.NewRoute().Subrouter()
	cities.Use(middleware.RequireClinical("city"))
	cities.HandleFunc("/cities", r.cityHandler.List).Methods(http.MethodGet)
	cities.HandleFunc("/cities/{id}", r.cityHandler.Get).Methods(http.MethodGet)

	// Patients
	patientWrites := protected.NewRoute().Subrouter()
	patientWrites.Use(middleware.RequireSocialAssistant("patientManagement"))
	patientWrites.HandleFunc("/patients", r.patientHandler.Create).Methods(http.MethodPost)
	patientWrites.HandleFunc("/patients", r.patientHandler.Update).Methods(http.MethodPut)
	patientWrites.HandleFunc("/patients/{id}", r.patientHandler.Delete).Methods(http.MethodDelete)

	patientReads := protected.NewRoute().Subrouter()
	patientReads.Use(middleware.RequireClinical("patientManagement"))
	patientReads.HandleFunc("/patients", r.patientHandler.List).Methods(http.MethodGet)
	patientReads.HandleFunc("/patients/{id}", r.patientHandler.Get).Methods(http.MethodGet)

	// Hospitalizations
	hospWrites := protected.NewRoute().Subrouter()
	hospWrites.Use(middleware.RequireSocialAssistant("hospitalization"))
	hospWrites.HandleFunc("/hospitalizations", r.hospHandler.Open).Methods(http.MethodPost)
	hospWrites.HandleFunc("/hospitalizations", r.hospHandler.Finish).Methods(http.MethodPut)
	hospWrites.HandleFunc("/hospitalizations", r.hospHandler.Delete).Methods(http.MethodDelete)

	hospReads := protected.NewRoute().Subrouter()
	hospReads.Use(middleware.RequireClinical("hospitalization"))
	hospReads.HandleFunc("/hospitalizations", r.hospHandler.List).Methods(http.MethodGet)
	hospReads.HandleFunc("/hospitalizations/current/{patientId}", r.hospHandler.IsHospitalized).Methods(http.MethodGet)
	hospReads.HandleFunc("/hospitalizations/{patientId}", r.hospHandler.ListByPatient).Methods(http.MethodGet)

	// Reports; the author-only update rule lives in the service layer.
	reportDeletes := protected.NewRoute().Subrouter()
	reportDeletes.Use(middleware.RequireSocialAssistant("report"))
	reportDeletes.HandleFunc("/reports/{id}", r.reportHandler.Delete).Methods(http.MethodDelete)

	reports := protected.NewRoute().Subrouter()
	reports.Use(middleware.RequireClinical("report"))
	reports.HandleFunc("/reports", r.reportHandler.Create).Methods(http.MethodPost)
	reports.HandleFunc("/reports", r.reportHandler.Update).Methods(http.MethodPut)
	reports.HandleFunc("/reports", r.reportHandler.List).Methods(http.MethodGet)
	reports.HandleFunc("/reports/{id}", r.reportHandler.Get).Methods(http.MethodGet)

	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
