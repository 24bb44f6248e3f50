package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/Hallssss0000/SGHSS-API/internal/middleware"
)

// NewRouter monta a tabela de rotas com os guards compostos por rota:
// autenticação no subrouter protegido, perfil por endpoint. Os testes usam o
// mesmo router, então a cadeia de guards é exercitada de ponta a ponta.
func NewRouter(h *Handler) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/health", h.Health).Methods(http.MethodGet)
	r.HandleFunc("/auth/login", h.Login).Methods(http.MethodPost)
	r.HandleFunc("/auth/register", h.Register).Methods(http.MethodPost)

	protected := r.NewRoute().Subrouter()
	protected.Use(middleware.RequireAuthMiddleware(h.Cfg.JWTSecret))

	protected.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)

	protected.Handle("/patients", middleware.RequireAdmin(http.HandlerFunc(h.ListPatients))).Methods(http.MethodGet)
	protected.Handle("/patients", middleware.RequireAdmin(http.HandlerFunc(h.CreatePatient))).Methods(http.MethodPost)
	protected.HandleFunc("/patients/{id}", h.GetPatient).Methods(http.MethodGet)
	protected.HandleFunc("/patients/{id}", h.UpdatePatient).Methods(http.MethodPut)
	protected.HandleFunc("/patients/{id}/consultations", h.PatientConsultations).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", h.ListAppointments).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", h.CreateAppointment).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", h.UpdateAppointment).Methods(http.MethodPut)
	protected.HandleFunc("/appointments/{id}", h.DeleteAppointment).Methods(http.MethodDelete)
	protected.Handle("/appointments/{id}/complete", middleware.RequireProfessional(http.HandlerFunc(h.CompleteAppointment))).Methods(http.MethodPost)

	return r
}
