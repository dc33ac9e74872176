package config

const EnvPrefix = "ROOMVIBE"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvAppEnv   = "ROOMVIBE_APP_ENV"
	EnvPort     = "ROOMVIBE_APP_PORT"
	EnvDBDSN    = "ROOMVIBE_DB_DSN"
	EnvDBHost   = "ROOMVIBE_DB_HOST"
	EnvDBUser   = "ROOMVIBE_DB_USER"
	EnvDBName   = "ROOMVIBE_DB_NAME"
	EnvRedisURL = "ROOMVIBE_REDIS_URL"
)
