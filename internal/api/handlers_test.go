package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/cache"
	"github.com/Hallssss0000/SGHSS-API/internal/testutil"
)

// newTestEnv monta handler + router completos sobre um store temporário.
func newTestEnv(t *testing.T) (*Handler, http.Handler) {
	t.Helper()
	h := &Handler{
		Store: testutil.NewStore(t),
		Cfg:   testutil.NewConfig(),
		Cache: cache.New(30 * time.Second),
	}
	return h, NewRouter(h)
}

func doJSON(t *testing.T, srv http.Handler, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rr.Body.String(), err)
	}
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("resposta não é um array JSON: %v (%s)", err, rr.Body.String())
	}
	return out
}

// registerUser registra um usuário e retorna (token, id).
func registerUser(t *testing.T, srv http.Handler, name, email, role string) (string, int) {
	t.Helper()
	rr := doJSON(t, srv, http.MethodPost, "/auth/register", "", map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": "senha-123",
		"role":     role,
		"phone":    "47999990000",
	})
	if rr.Code != http.StatusCreated {
		t.Fatalf("register %s: got %d body=%s", email, rr.Code, rr.Body.String())
	}
	out := decodeBody(t, rr)
	tok, _ := out["access_token"].(string)
	user, _ := out["user"].(map[string]interface{})
	id, _ := user["id"].(float64)
	if tok == "" || id == 0 {
		t.Fatalf("register %s: missing token or id in %v", email, out)
	}
	return tok, int(id)
}
