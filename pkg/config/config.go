package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = "afroman"

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "AFROMAN_DB_DSN"
	EnvDBHost = "AFROMAN_DB_HOST"
	EnvDBUser = "AFROMAN_DB_USER"
	EnvDBName = "AFROMAN_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Admin        AdminConfig
	CORS         CORSConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(cfg.FeatureFlags.UseSQLite); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"AFROMAN_APP_ENV" required:"true"`
	Port         string `envconfig:"AFROMAN_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"AFROMAN_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"AFROMAN_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"AFROMAN_DB_DSN"`
	Driver string `envconfig:"AFROMAN_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"AFROMAN_DB_HOST"`
	LegacyPort     int    `envconfig:"AFROMAN_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"AFROMAN_DB_USER"`
	LegacyPassword string `envconfig:"AFROMAN_DB_PASSWORD"`
	LegacyName     string `envconfig:"AFROMAN_DB_NAME"`
	LegacySSLMode  string `envconfig:"AFROMAN_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"AFROMAN_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"AFROMAN_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"AFROMAN_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"AFROMAN_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"AFROMAN_REDIS_URL"`
	Address      string        `envconfig:"AFROMAN_REDIS_ADDR"`
	Password     string        `envconfig:"AFROMAN_REDIS_PASSWORD"`
	DB           int           `envconfig:"AFROMAN_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"AFROMAN_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"AFROMAN_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"AFROMAN_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"AFROMAN_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"AFROMAN_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"AFROMAN_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"AFROMAN_JWT_ISSUER" default:"afroman-api"`
	ExpirationMinutes int    `envconfig:"AFROMAN_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"AFROMAN_SESSION_TTL_MINUTES" default:"1440"`
}

// SessionTTL returns the admin session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

// Expiration returns the access token lifetime.
func (j JWTConfig) Expiration() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"AFROMAN_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"AFROMAN_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"AFROMAN_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"AFROMAN_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"AFROMAN_ARGON_KEY_LEN" default:"32"`
}

// AdminConfig holds the single back-office identity permitted to manage content.
type AdminConfig struct {
	Email        string `envconfig:"AFROMAN_ADMIN_EMAIL" required:"true"`
	PasswordHash string `envconfig:"AFROMAN_ADMIN_PASSWORD_HASH" required:"true"`
}

type CORSConfig struct {
	AllowedOrigins []string `envconfig:"AFROMAN_CORS_ALLOWED_ORIGINS" default:"http://localhost:8081,https://app.afroman.example"`
}

type FeatureFlagsConfig struct {
	UseSQLite   bool `envconfig:"AFROMAN_USE_SQLITE" default:"false"`
	AutoMigrate bool `envconfig:"AFROMAN_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN(useSQLite bool) error {
	if useSQLite {
		db.Driver = "sqlite"
		if db.DSN == "" {
			db.DSN = "file:afroman.db?cache=shared"
		}
		return nil
	}

	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
