package api

import (
	"encoding/json"
	"net/http"

	"github.com/Hallssss0000/SGHSS-API/internal/cache"
	"github.com/Hallssss0000/SGHSS-API/internal/config"
	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

type Handler struct {
	Store *store.Store
	Cfg   *config.Config
	Cache *cache.TTL
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// errorJSON responde {"error": msg}; msg dinâmica passa por json.Marshal.
func errorJSON(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
