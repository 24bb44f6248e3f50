// Package testutil monta o ambiente dos testes de API: store em diretório
// temporário e configuração determinística, sem depender de variáveis de
// ambiente da máquina.
package testutil

import (
	"testing"
	"time"

	"github.com/Hallssss0000/SGHSS-API/internal/config"
	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func NewStore(t *testing.T) *store.Store {
	t.Helper()
	s := store.New(t.TempDir())
	if err := s.Bootstrap(); err != nil {
		t.Fatalf("bootstrap store: %v", err)
	}
	return s
}

func NewConfig() *config.Config {
	return &config.Config{
		Port:           "0",
		JWTSecret:      []byte("test-jwt-secret-min-32-chars-xxxxxxxxxxxx"),
		JWTTTL:         time.Hour,
		CORSOrigins:    []string{"*"},
		RemoteLinkBase: "https://telemed.local/consulta",
	}
}
