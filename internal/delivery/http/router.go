package http

import (
	"net/http"

	"health-automation-backend/internal/delivery/dto"
	"health-automation-backend/internal/delivery/http/handler"
	"health-automation-backend/internal/delivery/http/middleware"
	"health-automation-backend/internal/domain/entity"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	patientHandler       *handler.ProfileHandler[entity.PatientProfile, dto.PatientProfileResponse]
	doctorHandler        *handler.ProfileHandler[entity.DoctorProfile, dto.DoctorProfileResponse]
	employeeHandler      *handler.ProfileHandler[entity.EmployeeProfile, dto.EmployeeProfileResponse]
	appointmentHandler   *handler.AppointmentHandler
	investigationHandler *handler.InvestigationHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	patientHandler *handler.ProfileHandler[entity.PatientProfile, dto.PatientProfileResponse],
	doctorHandler *handler.ProfileHandler[entity.DoctorProfile, dto.DoctorProfileResponse],
	employeeHandler *handler.ProfileHandler[entity.EmployeeProfile, dto.EmployeeProfileResponse],
	appointmentHandler *handler.AppointmentHandler,
	investigationHandler *handler.InvestigationHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		patientHandler:       patientHandler,
		doctorHandler:        doctorHandler,
		employeeHandler:      employeeHandler,
		appointmentHandler:   appointmentHandler,
		investigationHandler: investigationHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/login/{role:patient|doctor|employee|admin}", r.authHandler.LoginWithRole).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Records (public; a bearer token, when sent, is recorded as the audit actor)
	records := api.NewRoute().Subrouter()
	records.Use(r.authMiddleware.Identify)

	records.HandleFunc("/users/{id:[0-9]+}", r.userHandler.GetUser).Methods(http.MethodGet)
	records.HandleFunc("/users/{id:[0-9]+}", r.userHandler.DeleteUser).Methods(http.MethodDelete)

	records.HandleFunc("/patients/{userId:[0-9]+}", r.patientHandler.Get).Methods(http.MethodGet)
	records.HandleFunc("/patients/{userId:[0-9]+}", r.patientHandler.Upsert).Methods(http.MethodPost)
	records.HandleFunc("/patients/{userId:[0-9]+}", r.patientHandler.Delete).Methods(http.MethodDelete)

	records.HandleFunc("/doctors/{userId:[0-9]+}", r.doctorHandler.Get).Methods(http.MethodGet)
	records.HandleFunc("/doctors/{userId:[0-9]+}", r.doctorHandler.Upsert).Methods(http.MethodPost)
	records.HandleFunc("/doctors/{userId:[0-9]+}", r.doctorHandler.Delete).Methods(http.MethodDelete)

	records.HandleFunc("/employees/{userId:[0-9]+}", r.employeeHandler.Get).Methods(http.MethodGet)
	records.HandleFunc("/employees/{userId:[0-9]+}", r.employeeHandler.Upsert).Methods(http.MethodPost)
	records.HandleFunc("/employees/{userId:[0-9]+}", r.employeeHandler.Delete).Methods(http.MethodDelete)

	records.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	records.HandleFunc("/appointments/today", r.appointmentHandler.Today).Methods(http.MethodGet)
	records.HandleFunc("/appointments/{id:[0-9]+}", r.appointmentHandler.Get).Methods(http.MethodGet)

	records.HandleFunc("/investigations", r.investigationHandler.GetAll).Methods(http.MethodGet)
	records.HandleFunc("/investigations/{id:[0-9]+}", r.investigationHandler.GetByID).Methods(http.MethodGet)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/investigations", r.investigationHandler.Create).Methods(http.MethodPost)
	admin.HandleFunc("/investigations/{id:[0-9]+}", r.investigationHandler.Update).Methods(http.MethodPut)
	admin.HandleFunc("/investigations/{id:[0-9]+}", r.investigationHandler.Delete).Methods(http.MethodDelete)

	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id:[0-9]+}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// CORS wraps the whole router so preflight requests never reach route matching
	return r.corsMiddleware.Handle(r.router)
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
