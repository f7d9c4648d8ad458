// Package config carga la configuración del servicio desde variables de entorno
// (y un .env opcional), con defaults pensados para desarrollo local.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"veterinaria-api/internal/platform/logger"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type DBConfig struct {
	DSN string // si viene, manda sobre el resto

	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string

	MaxOpenConns int
}

type Config struct {
	Port    string
	Storage string

	DB DBConfig

	CORSAllowedOrigins []string

	LogLevel  logger.Level
	LogFormat logger.Format
	AppName   string
}

// Load lee .env si existe y luego el entorno del proceso.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return FromLookup(os.LookupEnv)
}

// FromLookup arma la config desde una función de lookup (os.LookupEnv en prod).
func FromLookup(lookup func(string) (string, bool)) (*Config, error) {
	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	cfg := &Config{
		Port:    get("PORT", "3001"),
		Storage: strings.ToLower(get("STORAGE_DRIVER", StoragePostgres)),
		DB: DBConfig{
			DSN:      get("DB_DSN", ""),
			Host:     get("DB_HOST", "localhost"),
			User:     get("DB_USER", "postgres"),
			Password: get("DB_PASSWORD", ""),
			Name:     get("DB_NAME", "veterinaria"),
			SSLMode:  get("DB_SSLMODE", "disable"),
		},
		LogLevel:  logger.ParseLevel(get("LOG_LEVEL", "info")),
		LogFormat: logger.ParseFormat(get("LOG_FORMAT", "text")),
		AppName:   get("APP_NAME", "veterinaria-api"),
	}

	// DB_PASSWORD puede ser intencionalmente vacío; no se trimmea.
	if v, ok := lookup("DB_PASSWORD"); ok {
		cfg.DB.Password = v
	}

	port, err := strconv.Atoi(get("DB_PORT", "5432"))
	if err != nil || port <= 0 {
		return nil, fmt.Errorf("invalid DB_PORT: %q", get("DB_PORT", ""))
	}
	cfg.DB.Port = port

	maxConns, err := strconv.Atoi(get("DB_MAX_OPEN_CONNS", "10"))
	if err != nil || maxConns <= 0 {
		return nil, fmt.Errorf("invalid DB_MAX_OPEN_CONNS: %q", get("DB_MAX_OPEN_CONNS", ""))
	}
	cfg.DB.MaxOpenConns = maxConns

	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return nil, fmt.Errorf("invalid PORT: %q", cfg.Port)
	}

	switch cfg.Storage {
	case StoragePostgres, StorageMemory:
	default:
		return nil, fmt.Errorf("invalid STORAGE_DRIVER: %q (expected postgres|memory)", cfg.Storage)
	}

	for _, o := range strings.Split(get("CORS_ALLOWED_ORIGINS", "*"), ",") {
		if o = strings.TrimSpace(o); o != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, o)
		}
	}

	return cfg, nil
}

// Addr devuelve la dirección de escucha del servidor HTTP.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// BuildDSN arma la DSN de Postgres desde las partes, salvo que DB_DSN venga explícita.
func (db DBConfig) BuildDSN() string {
	if db.DSN != "" {
		return db.DSN
	}

	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(db.User, db.Password),
		Host:   fmt.Sprintf("%s:%d", db.Host, db.Port),
		Path:   "/" + db.Name,
	}
	q := url.Values{}
	q.Set("sslmode", db.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}
