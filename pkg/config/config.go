package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App           AppConfig
	DB            DBConfig
	Redis         RedisConfig
	Session       SessionConfig
	Password      PasswordConfig
	AuthRateLimit AuthRateLimitConfig
	FeatureFlags  FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	if cfg.App.IsProd() {
		cfg.Session.CookieSecure = true
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"ROOMVIBE_APP_ENV" required:"true"`
	Port         string `envconfig:"ROOMVIBE_APP_PORT" default:"3000"`
	LogLevel     string `envconfig:"ROOMVIBE_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"ROOMVIBE_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN string `envconfig:"ROOMVIBE_DB_DSN"`

	Host     string `envconfig:"ROOMVIBE_DB_HOST"`
	Port     int    `envconfig:"ROOMVIBE_DB_PORT" default:"5432"`
	User     string `envconfig:"ROOMVIBE_DB_USER"`
	Password string `envconfig:"ROOMVIBE_DB_PASSWORD"`
	Name     string `envconfig:"ROOMVIBE_DB_NAME"`
	SSLMode  string `envconfig:"ROOMVIBE_DB_SSLMODE" default:"disable"`

	ConnectTimeout  time.Duration `envconfig:"ROOMVIBE_DB_CONNECT_TIMEOUT" default:"30s"`
	MaxOpenConns    int           `envconfig:"ROOMVIBE_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"ROOMVIBE_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"ROOMVIBE_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"ROOMVIBE_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	parts := map[string]string{
		EnvDBHost: db.Host,
		EnvDBUser: db.User,
		EnvDBName: db.Name,
	}
	for _, env := range []string{EnvDBHost, EnvDBUser, EnvDBName} {
		if parts[env] == "" {
			missing = append(missing, env)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("database config incomplete: set %s or %s", EnvDBDSN, strings.Join(missing, ", "))
	}

	db.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		db.Host, db.Port, db.User, db.Password, db.Name, db.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"ROOMVIBE_REDIS_URL" required:"true"`
	Address      string        `envconfig:"ROOMVIBE_REDIS_ADDR"`
	Password     string        `envconfig:"ROOMVIBE_REDIS_PASSWORD"`
	DB           int           `envconfig:"ROOMVIBE_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"ROOMVIBE_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"ROOMVIBE_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"ROOMVIBE_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"ROOMVIBE_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"ROOMVIBE_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type SessionConfig struct {
	CookieName string        `envconfig:"ROOMVIBE_SESSION_COOKIE_NAME" default:"roomvibe_session"`
	TTL        time.Duration `envconfig:"ROOMVIBE_SESSION_TTL" default:"24h"`

	// CookieSecure is forced on in production, where traffic is always
	// HTTPS-terminated; elsewhere it can be enabled explicitly.
	CookieSecure bool `envconfig:"ROOMVIBE_SESSION_COOKIE_SECURE" default:"false"`
}

type PasswordConfig struct {
	BcryptCost int `envconfig:"ROOMVIBE_BCRYPT_COST" default:"10"`
}

type AuthRateLimitConfig struct {
	LoginWindow      time.Duration `envconfig:"ROOMVIBE_AUTH_RATE_LIMIT_LOGIN_WINDOW" default:"1m"`
	LoginEmailLimit  int           `envconfig:"ROOMVIBE_AUTH_RATE_LIMIT_LOGIN_EMAIL_LIMIT" default:"5"`
	LoginIPLimit     int           `envconfig:"ROOMVIBE_AUTH_RATE_LIMIT_LOGIN_IP_LIMIT" default:"20"`
	SignupWindow     time.Duration `envconfig:"ROOMVIBE_AUTH_RATE_LIMIT_SIGNUP_WINDOW" default:"5m"`
	SignupEmailLimit int           `envconfig:"ROOMVIBE_AUTH_RATE_LIMIT_SIGNUP_EMAIL_LIMIT" default:"3"`
	SignupIPLimit    int           `envconfig:"ROOMVIBE_AUTH_RATE_LIMIT_SIGNUP_IP_LIMIT" default:"20"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"ROOMVIBE_AUTO_MIGRATE" default:"false"`
}
