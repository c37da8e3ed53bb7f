package http

import (
	"net/http"

	"clinic-management-api/internal/delivery/http/handler"
	"clinic-management-api/internal/delivery/http/middleware"
	"clinic-management-api/internal/domain/entity"
	"clinic-management-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	visitHandler        *handler.VisitHandler
	prescriptionHandler *handler.PrescriptionHandler
	doctorHandler       *handler.DoctorHandler
	nurseHandler        *handler.NurseHandler
	patientHandler      *handler.PatientHandler
	dictionaryHandler   *handler.DictionaryHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	throttleMiddleware  *middleware.ThrottleMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	visitHandler *handler.VisitHandler,
	prescriptionHandler *handler.PrescriptionHandler,
	doctorHandler *handler.DoctorHandler,
	nurseHandler *handler.NurseHandler,
	patientHandler *handler.PatientHandler,
	dictionaryHandler *handler.DictionaryHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	throttleMiddleware *middleware.ThrottleMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		visitHandler:        visitHandler,
		prescriptionHandler: prescriptionHandler,
		doctorHandler:       doctorHandler,
		nurseHandler:        nurseHandler,
		patientHandler:      patientHandler,
		dictionaryHandler:   dictionaryHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		throttleMiddleware:  throttleMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// A method miss on a known path must answer 405, not 404
	r.router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		response.MethodNotAllowed(w)
	})

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Visit reads: all four roles, patients and doctors narrowed to own rows
	visitRead := api.PathPrefix("/visits").Subrouter()
	visitRead.Use(r.authMiddleware.Authenticate)
	visitRead.Use(middleware.RequireAnyRole)
	visitRead.HandleFunc("", r.visitHandler.List).Methods(http.MethodGet)
	visitRead.HandleFunc("/{id}", r.visitHandler.GetByID).Methods(http.MethodGet)

	// Visit mutations: nurse or admin, nurse-scope throttled
	visitWrite := api.PathPrefix("/visits").Subrouter()
	visitWrite.Use(r.authMiddleware.Authenticate)
	visitWrite.Use(middleware.RequireNurseOrAdmin)
	visitWrite.Use(r.throttleMiddleware.Handle)
	visitWrite.HandleFunc("", r.visitHandler.Create).Methods(http.MethodPost)
	visitWrite.HandleFunc("/{id}", r.visitHandler.Update).Methods(http.MethodPatch)
	visitWrite.HandleFunc("/{id}", r.visitHandler.Delete).Methods(http.MethodDelete)

	// Prescription reads: all four roles, patients narrowed to own rows.
	// No update route exists, PATCH answers 405.
	prescriptionRead := api.PathPrefix("/prescriptions").Subrouter()
	prescriptionRead.Use(r.authMiddleware.Authenticate)
	prescriptionRead.Use(middleware.RequireAnyRole)
	prescriptionRead.HandleFunc("", r.prescriptionHandler.List).Methods(http.MethodGet)
	prescriptionRead.HandleFunc("/{id}", r.prescriptionHandler.GetByID).Methods(http.MethodGet)

	// Prescription mutations: doctor or admin, doctor-scope throttled
	prescriptionWrite := api.PathPrefix("/prescriptions").Subrouter()
	prescriptionWrite.Use(r.authMiddleware.Authenticate)
	prescriptionWrite.Use(middleware.RequireDoctorOrAdmin)
	prescriptionWrite.Use(r.throttleMiddleware.Handle)
	prescriptionWrite.HandleFunc("", r.prescriptionHandler.Create).Methods(http.MethodPost)
	prescriptionWrite.HandleFunc("/{id}", r.prescriptionHandler.Delete).Methods(http.MethodDelete)

	// Doctor records
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.Use(middleware.RequireStaff)
	doctors.HandleFunc("", r.doctorHandler.List).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.GetByID).Methods(http.MethodGet)

	doctorWrite := api.PathPrefix("/doctors").Subrouter()
	doctorWrite.Use(r.authMiddleware.Authenticate)
	doctorWrite.Use(middleware.RequireRole(entity.RoleIDDoctor, entity.RoleIDAdmin))
	doctorWrite.HandleFunc("/{id}", r.doctorHandler.Update).Methods(http.MethodPatch)

	// Nurse records (read-only); nurses retrieve self only, list is doctor/admin
	nurseList := api.PathPrefix("/nurses").Subrouter()
	nurseList.Use(r.authMiddleware.Authenticate)
	nurseList.Use(middleware.RequireRole(entity.RoleIDDoctor, entity.RoleIDAdmin))
	nurseList.HandleFunc("", r.nurseHandler.List).Methods(http.MethodGet)

	nurseDetail := api.PathPrefix("/nurses").Subrouter()
	nurseDetail.Use(r.authMiddleware.Authenticate)
	nurseDetail.Use(middleware.RequireStaff)
	nurseDetail.HandleFunc("/{id}", r.nurseHandler.GetByID).Methods(http.MethodGet)

	// Patient records; patients retrieve and edit self only
	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.Use(middleware.RequireStaff)
	patients.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)

	patientDetail := api.PathPrefix("/patients").Subrouter()
	patientDetail.Use(r.authMiddleware.Authenticate)
	patientDetail.Use(middleware.RequireAnyRole)
	patientDetail.HandleFunc("/{id}", r.patientHandler.GetByID).Methods(http.MethodGet)

	patientWrite := api.PathPrefix("/patients").Subrouter()
	patientWrite.Use(r.authMiddleware.Authenticate)
	patientWrite.Use(middleware.RequireRole(entity.RoleIDPatient, entity.RoleIDAdmin))
	patientWrite.Use(r.throttleMiddleware.Handle)
	patientWrite.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPatch)

	// Dictionary catalogs; offices are visible to every role, the rest to
	// doctor/admin
	offices := api.PathPrefix("/offices").Subrouter()
	offices.Use(r.authMiddleware.Authenticate)
	offices.Use(middleware.RequireAnyRole)
	offices.HandleFunc("", r.dictionaryHandler.ListOffices).Methods(http.MethodGet)
	offices.HandleFunc("/{id}", r.dictionaryHandler.GetOffice).Methods(http.MethodGet)

	dictionaries := api.NewRoute().Subrouter()
	dictionaries.Use(r.authMiddleware.Authenticate)
	dictionaries.Use(middleware.RequireDoctorOrAdmin)
	dictionaries.HandleFunc("/diseases", r.dictionaryHandler.ListDiseases).Methods(http.MethodGet)
	dictionaries.HandleFunc("/diseases/{id}", r.dictionaryHandler.GetDisease).Methods(http.MethodGet)
	dictionaries.HandleFunc("/medicines", r.dictionaryHandler.ListMedicines).Methods(http.MethodGet)
	dictionaries.HandleFunc("/medicines/{id}", r.dictionaryHandler.GetMedicine).Methods(http.MethodGet)
	dictionaries.HandleFunc("/specializations", r.dictionaryHandler.ListSpecializations).Methods(http.MethodGet)
	dictionaries.HandleFunc("/specializations/{id}", r.dictionaryHandler.GetSpecialization).Methods(http.MethodGet)

	// Admin routes
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)
	admin.HandleFunc("/visits/{id}/status", r.visitHandler.UpdateStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.List).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetByID).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
