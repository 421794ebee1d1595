package http

import (
	"net/http"

	"health-records-backend/internal/delivery/http/handler"
	"health-records-backend/internal/delivery/http/middleware"
	"health-records-backend/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router           *mux.Router
	authHandler      *handler.AuthHandler
	patientHandler   *handler.PatientHandler
	dashboardHandler *handler.DashboardHandler
	auditLogHandler  *handler.AuditLogHandler
	authMiddleware   *middleware.AuthMiddleware
	corsMiddleware   *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	patientHandler *handler.PatientHandler,
	dashboardHandler *handler.DashboardHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:           mux.NewRouter(),
		authHandler:      authHandler,
		patientHandler:   patientHandler,
		dashboardHandler: dashboardHandler,
		auditLogHandler:  auditLogHandler,
		authMiddleware:   authMiddleware,
		corsMiddleware:   corsMiddleware,
	}
}

// Setup declares the route table. Role allow-lists are declared here as
// route metadata so permitted roles per operation are auditable in one
// place; subrouters without a RequireRole are authentication-only.
func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/family/signup", r.authHandler.Signup).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)

	// Auth routes (authenticated, any role)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	authProtected.HandleFunc("/delete-account", r.authHandler.DeleteAccount).Methods(http.MethodDelete)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Admin provisioning (ADMIN only)
	adminAuth := api.PathPrefix("/auth/admin").Subrouter()
	adminAuth.Use(r.authMiddleware.Authenticate)
	adminAuth.Use(middleware.RequireRole(entity.RoleAdmin))
	adminAuth.HandleFunc("/create-doctor", r.authHandler.CreateDoctor).Methods(http.MethodPost)
	adminAuth.HandleFunc("/create-caregiver", r.authHandler.CreateCaregiver).Methods(http.MethodPost)
	adminAuth.HandleFunc("/create-admin", r.authHandler.CreateAdmin).Methods(http.MethodPost)

	// Family patient registration (FAMILY only)
	familyAuth := api.PathPrefix("/auth/family").Subrouter()
	familyAuth.Use(r.authMiddleware.Authenticate)
	familyAuth.Use(middleware.RequireRole(entity.RoleFamily))
	familyAuth.HandleFunc("/create-patient", r.authHandler.CreatePatient).Methods(http.MethodPost)

	// Family patient management (FAMILY only)
	family := api.PathPrefix("/family").Subrouter()
	family.Use(r.authMiddleware.Authenticate)
	family.Use(middleware.RequireRole(entity.RoleFamily))
	family.HandleFunc("/patients", r.patientHandler.ListPatients).Methods(http.MethodGet)
	family.HandleFunc("/patients/{id}", r.patientHandler.UpdatePatient).Methods(http.MethodPut)
	family.HandleFunc("/patients/{id}", r.patientHandler.DeletePatient).Methods(http.MethodDelete)

	// Admin reporting (ADMIN only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireRole(entity.RoleAdmin))
	admin.HandleFunc("/dashboard", r.dashboardHandler.GetStats).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAuditLogs).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
