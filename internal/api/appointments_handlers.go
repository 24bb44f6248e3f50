package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/Hallssss0000/SGHSS-API/internal/auth"
	"github.com/Hallssss0000/SGHSS-API/internal/repo"
)

func appointmentJSON(a repo.Appointment) map[string]interface{} {
	return map[string]interface{}{
		"id":              a.ID,
		"patient_id":      a.PatientID,
		"professional_id": a.ProfessionalID,
		"scheduled_at":    a.ScheduledAt,
		"status":          a.Status,
		"kind":            a.Kind,
		"remote_link":     a.RemoteLink,
		"created_at":      a.CreatedAt,
		"created_by":      a.CreatedBy,
	}
}

func appointmentIDFromPath(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

// ListAppointments: PATIENT vê as próprias, PROFESSIONAL as da sua agenda,
// ADMIN todas. Nomes de paciente/profissional são denormalizados best-effort.
func (h *Handler) ListAppointments(w http.ResponseWriter, r *http.Request) {
	callerID := auth.UserIDFrom(r.Context())
	role := auth.RoleFrom(r.Context())

	users := map[int]string{}
	for _, u := range repo.UsersAll(h.Store) {
		users[u.ID] = u.Name
	}
	professionals := map[int]string{}
	for _, p := range repo.ProfessionalsAll(h.Store) {
		professionals[p.ID] = p.Name
	}

	out := []map[string]interface{}{}
	for _, a := range repo.AppointmentsAll(h.Store) {
		switch role {
		case auth.RolePatient:
			if a.PatientID != callerID {
				continue
			}
		case auth.RoleProfessional:
			if a.ProfessionalID != callerID {
				continue
			}
		}
		item := appointmentJSON(a)
		if name, ok := users[a.PatientID]; ok {
			item["patient_name"] = name
		}
		if name, ok := professionals[a.ProfessionalID]; ok {
			item["professional_name"] = name
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, out)
}

type CreateAppointmentRequest struct {
	ProfessionalID *int   `json:"professional_id"`
	ScheduledAt    string `json:"scheduled_at"`
	Kind           string `json:"kind"`
	PatientID      *int   `json:"patient_id"`
}

func (h *Handler) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Corpo da requisição inválido"}`, http.StatusBadRequest)
		return
	}
	switch {
	case req.ProfessionalID == nil:
		errorJSON(w, http.StatusBadRequest, "Campo obrigatório faltando: professional_id")
		return
	case req.ScheduledAt == "":
		errorJSON(w, http.StatusBadRequest, "Campo obrigatório faltando: scheduled_at")
		return
	case req.Kind == "":
		errorJSON(w, http.StatusBadRequest, "Campo obrigatório faltando: kind")
		return
	}

	created, err := repo.ScheduleAppointment(h.Store, repo.ScheduleRequest{
		CallerID:       auth.UserIDFrom(r.Context()),
		CallerRole:     auth.RoleFrom(r.Context()),
		ProfessionalID: *req.ProfessionalID,
		ScheduledAt:    req.ScheduledAt,
		Kind:           req.Kind,
		PatientID:      req.PatientID,
		RemoteLinkBase: h.Cfg.RemoteLinkBase,
	})
	switch err {
	case nil:
	case repo.ErrSlotTaken:
		http.Error(w, `{"error":"Horário ocupado para este profissional"}`, http.StatusConflict)
		return
	case repo.ErrPatientRequired:
		http.Error(w, `{"error":"ID do paciente é necessário"}`, http.StatusBadRequest)
		return
	case repo.ErrForbidden:
		http.Error(w, `{"error":"Você só pode agendar consultas para si mesmo"}`, http.StatusForbidden)
		return
	default:
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}

	_ = repo.NotifyPatient(h.Store, created.PatientID, "Consulta agendada para "+created.ScheduledAt)

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":     "Consulta agendada com sucesso",
		"appointment": appointmentJSON(created),
	})
}

type UpdateAppointmentRequest struct {
	ScheduledAt *string `json:"scheduled_at"`
	Status      *string `json:"status"`
	// patient_id/professional_id não são aplicados, mas a presença do campo
	// entra na checagem de dono (ver repo.AppointmentUpdate).
	PatientID      *int `json:"patient_id"`
	ProfessionalID *int `json:"professional_id"`
}

func (h *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromPath(r)
	if !ok {
		http.Error(w, `{"error":"ID inválido"}`, http.StatusBadRequest)
		return
	}
	var req UpdateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Corpo da requisição inválido"}`, http.StatusBadRequest)
		return
	}

	res, err := repo.UpdateAppointment(h.Store, id, auth.UserIDFrom(r.Context()), auth.RoleFrom(r.Context()), repo.AppointmentUpdate{
		ScheduledAt:       req.ScheduledAt,
		Status:            req.Status,
		HasPatientID:      req.PatientID != nil,
		HasProfessionalID: req.ProfessionalID != nil,
	})
	switch err {
	case nil:
	case repo.ErrNotFound:
		http.Error(w, `{"error":"Consulta não encontrada"}`, http.StatusNotFound)
		return
	case repo.ErrForbidden:
		http.Error(w, `{"error":"Acesso não autorizado"}`, http.StatusForbidden)
		return
	case repo.ErrSlotTaken:
		http.Error(w, `{"error":"Horário ocupado"}`, http.StatusConflict)
		return
	default:
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}

	if res.Rescheduled {
		_ = repo.NotifyPatient(h.Store, res.Appointment.PatientID, "Consulta reagendada para "+res.Appointment.ScheduledAt)
	}
	if res.Canceled {
		_ = repo.NotifyPatient(h.Store, res.Appointment.PatientID, "Consulta cancelada")
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Consulta atualizada",
		"appointment": appointmentJSON(res.Appointment),
	})
}

func (h *Handler) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromPath(r)
	if !ok {
		http.Error(w, `{"error":"ID inválido"}`, http.StatusBadRequest)
		return
	}
	removed, reason, err := repo.DeleteAppointment(h.Store, id, auth.UserIDFrom(r.Context()), auth.RoleFrom(r.Context()))
	switch err {
	case nil:
	case repo.ErrNotFound:
		errorJSON(w, http.StatusNotFound, fmt.Sprintf("Não existe consulta com ID %d", id))
		return
	case repo.ErrForbidden:
		http.Error(w, `{"error":"Você não tem permissão para deletar esta consulta"}`, http.StatusForbidden)
		return
	case repo.ErrCompletedImmutable:
		http.Error(w, `{"error":"Consultas já realizadas não podem ser removidas. Altere o status para CANCELED em vez de deletar."}`, http.StatusBadRequest)
		return
	default:
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}

	_ = repo.NotifyPatient(h.Store, removed.PatientID, fmt.Sprintf("Consulta do dia %s foi removida do sistema", removed.ScheduledAt))
	if removed.ProfessionalID != 0 {
		_ = repo.NotifyProfessional(h.Store, removed.ProfessionalID, fmt.Sprintf("Consulta com %d foi removida", removed.PatientID))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":     true,
		"message":     "Consulta deletada com sucesso",
		"deleted_id":  id,
		"appointment": appointmentJSON(removed),
		"reason":      reason,
		"timestamp":   time.Now(),
	})
}

type CompleteAppointmentRequest struct {
	Notes string `json:"notes"`
}

// CompleteAppointment registra o atendimento: SCHEDULED → COMPLETED, um
// atendimento e uma entrada de prontuário com o mesmo timestamp e notas.
func (h *Handler) CompleteAppointment(w http.ResponseWriter, r *http.Request) {
	id, ok := appointmentIDFromPath(r)
	if !ok {
		http.Error(w, `{"error":"ID inválido"}`, http.StatusBadRequest)
		return
	}
	var req CompleteAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Notes == "" {
		http.Error(w, `{"error":"Observações são obrigatórias"}`, http.StatusBadRequest)
		return
	}

	completed, err := repo.CompleteAppointment(h.Store, id, auth.UserIDFrom(r.Context()))
	switch err {
	case nil:
	case repo.ErrNotFound:
		http.Error(w, `{"error":"Consulta não encontrada"}`, http.StatusNotFound)
		return
	case repo.ErrForbidden:
		http.Error(w, `{"error":"Esta consulta não é sua para atender"}`, http.StatusForbidden)
		return
	case repo.ErrNotScheduled:
		http.Error(w, `{"error":"Consulta não está agendada"}`, http.StatusBadRequest)
		return
	default:
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}

	now := time.Now()
	attendance, err := repo.AppendAttendance(h.Store, completed, req.Notes, now)
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	_ = repo.AppendRecordEntry(h.Store, completed, req.Notes, now)
	_ = repo.NotifyPatient(h.Store, completed.PatientID, "Atendimento realizado")

	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":    "Atendimento registrado",
		"attendance": attendance,
	})
}
