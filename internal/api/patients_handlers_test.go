package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/Hallssss0000/SGHSS-API/internal/auth"
)

func TestListPatientsAdminOnly(t *testing.T) {
	_, srv := newTestEnv(t)
	patientTok, _ := registerUser(t, srv, "Ana", "ana@example.com", auth.RolePatient)
	adminTok, _ := registerUser(t, srv, "Root", "root@example.com", auth.RoleAdmin)

	rr := doJSON(t, srv, http.MethodGet, "/patients", patientTok, nil)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403 for non-admin list, got %d", rr.Code)
	}

	rr = doJSON(t, srv, http.MethodGet, "/patients", adminTok, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("admin list: got %d body=%s", rr.Code, rr.Body.String())
	}
	list := decodeList(t, rr)
	if len(list) != 1 || list[0]["name"] != "Ana" || list[0]["email"] != "ana@example.com" {
		t.Fatalf("unexpected patient list: %v", list)
	}
}

func TestCreatePatientByAdmin(t *testing.T) {
	_, srv := newTestEnv(t)
	adminTok, _ := registerUser(t, srv, "Root", "root@example.com", auth.RoleAdmin)

	rr := doJSON(t, srv, http.MethodPost, "/patients", adminTok, map[string]interface{}{
		"name":       "Bia",
		"email":      "bia@example.com",
		"password":   "senha-123",
		"phone":      "47988887777",
		"birth_date": "1990-05-20",
		"address":    map[string]interface{}{"city": "Joinville"},
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("create patient: got %d body=%s", rr.Code, rr.Body.String())
	}
	out := decodeBody(t, rr)
	p := out["patient"].(map[string]interface{})
	id := int(p["id"].(float64))

	rr = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/patients/%d", id), adminTok, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("get patient: got %d", rr.Code)
	}
	got := decodeBody(t, rr)
	if got["name"] != "Bia" || got["phone"] != "47988887777" {
		t.Fatalf("patient fields mismatch: %v", got)
	}
	addr, _ := got["address"].(map[string]interface{})
	if addr["city"] != "Joinville" {
		t.Fatalf("address not persisted: %v", got["address"])
	}

	// O paciente criado consegue logar com a senha informada.
	rr = doJSON(t, srv, http.MethodPost, "/auth/login", "", map[string]string{
		"email": "bia@example.com", "password": "senha-123",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("created patient login: got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestCreatePatientValidation(t *testing.T) {
	_, srv := newTestEnv(t)
	adminTok, _ := registerUser(t, srv, "Root", "root@example.com", auth.RoleAdmin)

	rr := doJSON(t, srv, http.MethodPost, "/patients", adminTok, map[string]interface{}{
		"name": "Bia", "email": "bia@example.com", "password": "senha-123",
	})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without phone, got %d", rr.Code)
	}

	registerUser(t, srv, "Ana", "ana@example.com", auth.RolePatient)
	rr = doJSON(t, srv, http.MethodPost, "/patients", adminTok, map[string]interface{}{
		"name": "Outra", "email": "ana@example.com", "password": "senha-123", "phone": "4791",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for duplicate email, got %d", rr.Code)
	}
}

func TestGetPatientAccess(t *testing.T) {
	_, srv := newTestEnv(t)
	anaTok, anaID := registerUser(t, srv, "Ana", "ana@example.com", auth.RolePatient)
	leoTok, _ := registerUser(t, srv, "Leo", "leo@example.com", auth.RolePatient)
	adminTok, _ := registerUser(t, srv, "Root", "root@example.com", auth.RoleAdmin)

	path := fmt.Sprintf("/patients/%d", anaID)
	if rr := doJSON(t, srv, http.MethodGet, path, anaTok, nil); rr.Code != http.StatusOK {
		t.Fatalf("self access: got %d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodGet, path, adminTok, nil); rr.Code != http.StatusOK {
		t.Fatalf("admin access: got %d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodGet, path, leoTok, nil); rr.Code != http.StatusForbidden {
		t.Fatalf("foreign access should be 403, got %d", rr.Code)
	}
	if rr := doJSON(t, srv, http.MethodGet, "/patients/9999", adminTok, nil); rr.Code != http.StatusNotFound {
		t.Fatalf("missing patient should be 404, got %d", rr.Code)
	}
}

func TestUpdatePatient(t *testing.T) {
	_, srv := newTestEnv(t)
	anaTok, anaID := registerUser(t, srv, "Ana", "ana@example.com", auth.RolePatient)
	registerUser(t, srv, "Leo", "leo@example.com", auth.RolePatient)

	path := fmt.Sprintf("/patients/%d", anaID)
	rr := doJSON(t, srv, http.MethodPut, path, anaTok, map[string]interface{}{
		"phone": "47900001111",
		"name":  "Ana Paula",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got %d body=%s", rr.Code, rr.Body.String())
	}

	rr = doJSON(t, srv, http.MethodGet, path, anaTok, nil)
	got := decodeBody(t, rr)
	if got["phone"] != "47900001111" || got["name"] != "Ana Paula" {
		t.Fatalf("update not applied: %v", got)
	}
	// Campos não enviados permanecem.
	if got["email"] != "ana@example.com" {
		t.Fatalf("email should be untouched: %v", got["email"])
	}

	// Email de outro usuário: 409.
	rr = doJSON(t, srv, http.MethodPut, path, anaTok, map[string]interface{}{
		"email": "leo@example.com",
	})
	if rr.Code != http.StatusConflict {
		t.Fatalf("expected 409 for taken email, got %d", rr.Code)
	}
}

func TestUpdatePatientRefreshesMe(t *testing.T) {
	_, srv := newTestEnv(t)
	anaTok, anaID := registerUser(t, srv, "Ana", "ana@example.com", auth.RolePatient)

	// Aquece o cache de /auth/me.
	if rr := doJSON(t, srv, http.MethodGet, "/auth/me", anaTok, nil); rr.Code != http.StatusOK {
		t.Fatalf("me: got %d", rr.Code)
	}
	rr := doJSON(t, srv, http.MethodPut, fmt.Sprintf("/patients/%d", anaID), anaTok, map[string]interface{}{
		"name": "Ana Paula",
	})
	if rr.Code != http.StatusOK {
		t.Fatalf("update: got %d", rr.Code)
	}
	rr = doJSON(t, srv, http.MethodGet, "/auth/me", anaTok, nil)
	if got := decodeBody(t, rr); got["name"] != "Ana Paula" {
		t.Fatalf("stale /auth/me after profile update: %v", got)
	}
}

func TestPatientConsultations(t *testing.T) {
	_, srv := newTestEnv(t)
	anaTok, anaID := registerUser(t, srv, "Ana", "ana@example.com", auth.RolePatient)
	leoTok, _ := registerUser(t, srv, "Leo", "leo@example.com", auth.RolePatient)
	_, profID := registerUser(t, srv, "Dr. Bruno", "bruno@example.com", auth.RoleProfessional)

	createAppointment(t, srv, anaTok, map[string]interface{}{
		"professional_id": profID, "scheduled_at": "2026-11-01T10:00:00", "kind": "REMOTE",
	})
	createAppointment(t, srv, leoTok, map[string]interface{}{
		"professional_id": profID, "scheduled_at": "2026-11-01T11:00:00", "kind": "REMOTE",
	})

	path := fmt.Sprintf("/patients/%d/consultations", anaID)
	rr := doJSON(t, srv, http.MethodGet, path, anaTok, nil)
	if rr.Code != http.StatusOK {
		t.Fatalf("consultations: got %d body=%s", rr.Code, rr.Body.String())
	}
	list := decodeList(t, rr)
	if len(list) != 1 {
		t.Fatalf("expected only own consultations, got %d", len(list))
	}
	if list[0]["professional_name"] != "Dr. Bruno" {
		t.Fatalf("professional name missing: %v", list[0])
	}

	if rr := doJSON(t, srv, http.MethodGet, path, leoTok, nil); rr.Code != http.StatusForbidden {
		t.Fatalf("foreign consultations should be 403, got %d", rr.Code)
	}
}
