package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/Hallssss0000/SGHSS-API/internal/auth"
	"github.com/Hallssss0000/SGHSS-API/internal/repo"
)

func patientIDFromPath(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	return id, err == nil
}

// canAccessPatient: ADMIN sempre; caso contrário só o próprio paciente.
func canAccessPatient(r *http.Request, patientID int) bool {
	return auth.IsAdmin(r.Context()) || auth.UserIDFrom(r.Context()) == patientID
}

// ListPatients combina perfil + usuário; perfis sem usuário correspondente são omitidos.
func (h *Handler) ListPatients(w http.ResponseWriter, r *http.Request) {
	users := repo.UsersAll(h.Store)
	byID := make(map[int]repo.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}
	out := []map[string]interface{}{}
	for _, p := range repo.PatientsAll(h.Store) {
		u, ok := byID[p.ID]
		if !ok {
			continue
		}
		out = append(out, map[string]interface{}{
			"id":         p.ID,
			"name":       u.Name,
			"email":      u.Email,
			"phone":      p.Phone,
			"birth_date": p.BirthDate,
			"address":    p.Address,
			"created_at": p.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

type CreatePatientRequest struct {
	Name      string                 `json:"name"`
	Email     string                 `json:"email"`
	Password  string                 `json:"password"`
	Phone     string                 `json:"phone"`
	BirthDate string                 `json:"birth_date"`
	Address   map[string]interface{} `json:"address"`
}

func (h *Handler) CreatePatient(w http.ResponseWriter, r *http.Request) {
	var req CreatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Corpo da requisição inválido"}`, http.StatusBadRequest)
		return
	}
	for field, v := range map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
		"phone":    req.Phone,
	} {
		if strings.TrimSpace(v) == "" {
			errorJSON(w, http.StatusBadRequest, "Campo obrigatório faltando: "+field)
			return
		}
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	u, err := repo.CreateUser(h.Store, req.Name, strings.TrimSpace(req.Email), hash, auth.RolePatient)
	if err == repo.ErrEmailTaken {
		http.Error(w, `{"error":"Email já cadastrado"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	if _, err := repo.CreatePatientProfile(h.Store, u.ID, req.Phone, req.BirthDate, req.Address); err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message": "Paciente criado com sucesso",
		"patient": map[string]interface{}{
			"id":    u.ID,
			"name":  u.Name,
			"email": u.Email,
			"phone": req.Phone,
		},
	})
}

func (h *Handler) GetPatient(w http.ResponseWriter, r *http.Request) {
	id, ok := patientIDFromPath(r)
	if !ok {
		http.Error(w, `{"error":"ID inválido"}`, http.StatusBadRequest)
		return
	}
	if !canAccessPatient(r, id) {
		http.Error(w, `{"error":"Acesso não autorizado"}`, http.StatusForbidden)
		return
	}
	p := repo.PatientProfileByID(h.Store, id)
	if p == nil {
		http.Error(w, `{"error":"Paciente não encontrado"}`, http.StatusNotFound)
		return
	}
	out := map[string]interface{}{
		"id":         p.ID,
		"phone":      p.Phone,
		"birth_date": p.BirthDate,
		"address":    p.Address,
		"created_at": p.CreatedAt,
	}
	if u := repo.UserByID(h.Store, id); u != nil {
		out["name"] = u.Name
		out["email"] = u.Email
	}
	writeJSON(w, http.StatusOK, out)
}

type UpdatePatientRequest struct {
	Name      *string                `json:"name"`
	Email     *string                `json:"email"`
	Phone     *string                `json:"phone"`
	BirthDate *string                `json:"birth_date"`
	Address   map[string]interface{} `json:"address"`
}

func (h *Handler) UpdatePatient(w http.ResponseWriter, r *http.Request) {
	id, ok := patientIDFromPath(r)
	if !ok {
		http.Error(w, `{"error":"ID inválido"}`, http.StatusBadRequest)
		return
	}
	if !canAccessPatient(r, id) {
		http.Error(w, `{"error":"Acesso não autorizado"}`, http.StatusForbidden)
		return
	}
	var req UpdatePatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Corpo da requisição inválido"}`, http.StatusBadRequest)
		return
	}
	if err := repo.UpdatePatientProfile(h.Store, id, req.Phone, req.BirthDate, req.Address); err == repo.ErrNotFound {
		http.Error(w, `{"error":"Paciente não encontrado"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	if req.Name != nil || req.Email != nil {
		switch err := repo.UpdateUserNameEmail(h.Store, id, req.Name, req.Email); err {
		case nil:
		case repo.ErrEmailTaken:
			http.Error(w, `{"error":"Email já está em uso"}`, http.StatusConflict)
			return
		case repo.ErrNotFound:
			http.Error(w, `{"error":"Paciente não encontrado"}`, http.StatusNotFound)
			return
		default:
			http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
			return
		}
	}
	if h.Cache != nil {
		h.Cache.Delete("me:" + strconv.Itoa(id))
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Paciente atualizado com sucesso"})
}

// PatientConsultations lista as consultas do paciente com o nome do
// profissional (best-effort: lookup ausente deixa o campo de fora).
func (h *Handler) PatientConsultations(w http.ResponseWriter, r *http.Request) {
	id, ok := patientIDFromPath(r)
	if !ok {
		http.Error(w, `{"error":"ID inválido"}`, http.StatusBadRequest)
		return
	}
	if !canAccessPatient(r, id) {
		http.Error(w, `{"error":"Acesso não autorizado"}`, http.StatusForbidden)
		return
	}
	professionals := map[int]string{}
	for _, p := range repo.ProfessionalsAll(h.Store) {
		professionals[p.ID] = p.Name
	}
	out := []map[string]interface{}{}
	for _, a := range repo.AppointmentsAll(h.Store) {
		if a.PatientID != id {
			continue
		}
		item := appointmentJSON(a)
		if name, ok := professionals[a.ProfessionalID]; ok {
			item["professional_name"] = name
		}
		out = append(out, item)
	}
	writeJSON(w, http.StatusOK, out)
}
