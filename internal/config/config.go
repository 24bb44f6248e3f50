package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const insecureDefaultSecret = "telemed-super-secret-key-change-in-production"

type Config struct {
	Port              string
	DataDir           string
	JWTSecret         []byte
	JWTTTL            time.Duration
	CORSOrigins       []string
	RequestTimeoutSec int
	RemoteLinkBase    string
	// SecretIsDefault indica que JWT_SECRET não foi configurado e o
	// fallback inseguro está ativo. Usado só para aviso no startup.
	SecretIsDefault bool
}

func Load() *Config {
	_ = godotenv.Load()

	secret := os.Getenv("JWT_SECRET")
	secretIsDefault := false
	if len(secret) < 32 {
		secret = insecureDefaultSecret
		secretIsDefault = true
	}

	ttlMin := 60
	if v := os.Getenv("JWT_TTL_MINUTES"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			ttlMin = n
		}
	}

	timeoutSec := 15
	if v := os.Getenv("REQUEST_TIMEOUT_SEC"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			timeoutSec = n
		}
	}

	var origins []string
	for _, o := range strings.Split(getEnv("CORS_ORIGINS", "*"), ",") {
		if t := strings.TrimSpace(o); t != "" {
			origins = append(origins, t)
		}
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DataDir:           getEnv("DATA_DIR", "database"),
		JWTSecret:         []byte(secret),
		JWTTTL:            time.Duration(ttlMin) * time.Minute,
		CORSOrigins:       origins,
		RequestTimeoutSec: timeoutSec,
		RemoteLinkBase:    strings.TrimRight(getEnv("REMOTE_LINK_BASE", "https://telemed.local/consulta"), "/"),
		SecretIsDefault:   secretIsDefault,
	}
}

// LogStartupWarnings escreve avisos de configuração insegura no startup.
func (c *Config) LogStartupWarnings() {
	if c.SecretIsDefault {
		log.Warn().Msg("JWT_SECRET ausente ou curto demais (<32 chars): usando segredo padrão INSEGURO. Configure JWT_SECRET em produção.")
	}
}

func getEnv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
