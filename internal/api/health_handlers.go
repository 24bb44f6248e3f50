package api

import (
	"net/http"
	"time"
)

const apiVersion = "2.1.0"

// Health responde o catálogo estático de endpoints e notas de uso.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "online",
		"timestamp": time.Now(),
		"version":   apiVersion,
		"endpoints": map[string][]string{
			"auth": {
				"POST /auth/login",
				"POST /auth/register",
				"GET /auth/me",
			},
			"patients": {
				"GET /patients",
				"POST /patients",
				"GET /patients/{id}",
				"PUT /patients/{id}",
				"GET /patients/{id}/consultations",
			},
			"appointments": {
				"GET /appointments",
				"POST /appointments",
				"PUT /appointments/{id}",
				"DELETE /appointments/{id}",
				"POST /appointments/{id}/complete",
			},
		},
		"notes": map[string]interface{}{
			"authentication": "Todos os endpoints (exceto /auth/login, /auth/register e /health) requerem token JWT no header Authorization: Bearer {token}",
			"roles": map[string]string{
				"ADMIN":        "Acesso completo a todos os endpoints",
				"PROFESSIONAL": "Pode gerenciar suas consultas e pacientes relacionados",
				"PATIENT":      "Acesso apenas aos próprios dados e consultas",
			},
		},
	})
}
