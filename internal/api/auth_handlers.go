package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/auth"
	"github.com/Hallssss0000/SGHSS-API/internal/repo"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
	// Campos opcionais do perfil PATIENT
	Phone     string                 `json:"phone"`
	BirthDate string                 `json:"birth_date"`
	Address   map[string]interface{} `json:"address"`
	// Campos opcionais do perfil PROFESSIONAL
	Specialty     string `json:"specialty"`
	LicenseNumber string `json:"license_number"`
}

// userPayload monta o bloco "user" das respostas de login/registro,
// enriquecido com dados do perfil quando existirem (best-effort).
func (h *Handler) userPayload(u *repo.User) map[string]interface{} {
	out := map[string]interface{}{
		"id":    u.ID,
		"name":  u.Name,
		"email": u.Email,
		"role":  u.Role,
	}
	switch u.Role {
	case auth.RolePatient:
		if p := repo.PatientProfileByID(h.Store, u.ID); p != nil {
			out["phone"] = p.Phone
		}
	case auth.RoleProfessional:
		if p := repo.ProfessionalByID(h.Store, u.ID); p != nil {
			out["full_name"] = p.Name
			out["specialty"] = p.Specialty
		}
	}
	return out
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Email e senha são obrigatórios"}`, http.StatusBadRequest)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		http.Error(w, `{"error":"Email e senha são obrigatórios"}`, http.StatusBadRequest)
		return
	}

	u := repo.UserByEmail(h.Store, req.Email)
	if u == nil || !auth.CheckPassword(u.PasswordHash, req.Password) {
		// Mesma resposta para email desconhecido e senha errada.
		http.Error(w, `{"error":"Credenciais inválidas"}`, http.StatusUnauthorized)
		return
	}

	tok, err := auth.BuildJWT(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.JWTTTL)
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"message":      "Login realizado com sucesso",
		"access_token": tok,
		"token_type":   "Bearer",
		"expires_at":   time.Now().Add(h.Cfg.JWTTTL),
		"user":         h.userPayload(u),
	})
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error":"Corpo da requisição inválido"}`, http.StatusBadRequest)
		return
	}
	for field, v := range map[string]string{
		"name":     req.Name,
		"email":    req.Email,
		"password": req.Password,
		"role":     req.Role,
	} {
		if strings.TrimSpace(v) == "" {
			errorJSON(w, http.StatusBadRequest, "Campo obrigatório faltando: "+field)
			return
		}
	}
	if !auth.ValidRole(req.Role) {
		http.Error(w, `{"error":"Perfil inválido"}`, http.StatusBadRequest)
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	u, err := repo.CreateUser(h.Store, req.Name, strings.TrimSpace(req.Email), hash, req.Role)
	if err == repo.ErrEmailTaken {
		http.Error(w, `{"error":"Email já cadastrado"}`, http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}

	switch req.Role {
	case auth.RolePatient:
		_, _ = repo.CreatePatientProfile(h.Store, u.ID, req.Phone, req.BirthDate, req.Address)
	case auth.RoleProfessional:
		_, _ = repo.CreateProfessionalProfile(h.Store, u.ID, req.Name, req.Specialty, req.LicenseNumber)
	}

	tok, err := auth.BuildJWT(h.Cfg.JWTSecret, u.ID, u.Role, h.Cfg.JWTTTL)
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"message":      "Usuário criado com sucesso",
		"access_token": tok,
		"token_type":   "Bearer",
		"user":         h.userPayload(&u),
	})
}

// Me retorna os dados do usuário autenticado, com perfil. Resposta cacheada
// por usuário; invalidação acontece nas escritas de perfil.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	userID := auth.UserIDFrom(r.Context())
	cacheKey := "me:" + strconv.Itoa(userID)
	if h.Cache != nil {
		if cached := h.Cache.Get(cacheKey); cached != nil {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write(cached)
			return
		}
	}

	u := repo.UserByID(h.Store, userID)
	if u == nil {
		http.Error(w, `{"error":"Usuário não encontrado"}`, http.StatusNotFound)
		return
	}

	out := map[string]interface{}{
		"id":         u.ID,
		"name":       u.Name,
		"email":      u.Email,
		"role":       u.Role,
		"created_at": u.CreatedAt,
	}
	switch u.Role {
	case auth.RolePatient:
		if p := repo.PatientProfileByID(h.Store, u.ID); p != nil {
			out["phone"] = p.Phone
			out["birth_date"] = p.BirthDate
			out["address"] = p.Address
		}
	case auth.RoleProfessional:
		if p := repo.ProfessionalByID(h.Store, u.ID); p != nil {
			out["full_name"] = p.Name
			out["specialty"] = p.Specialty
			out["license_number"] = p.LicenseNumber
		}
	}

	buf, err := json.Marshal(out)
	if err != nil {
		http.Error(w, `{"error":"Erro interno do servidor"}`, http.StatusInternalServerError)
		return
	}
	if h.Cache != nil {
		h.Cache.Set(cacheKey, buf)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(buf)
}
