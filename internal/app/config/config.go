package config

import (
	"healthagent-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                      utils.GetEnvString("APP_ENV", "development"),
			Port:                     utils.GetEnvString("APP_PORT", "8080"),
			Version:                  utils.GetEnvString("APP_VERSION", "v1"),
			Timezone:                 utils.GetEnvString("APP_TIMEZONE", "UTC"),
			EndpointPrefix:           utils.GetEnvString("APP_ENDPOINT_PREFIX", "api"),
			AllowedOrigins:           utils.GetEnvStringSlice("APP_ALLOWED_ORIGINS", []string{"*"}),
			MaxRequests:              utils.GetEnvInt("APP_MAX_REQUEST", 20),
			ShutdownTimeoutInSeconds: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			SessionTTLInMinutes:      utils.GetEnvInt("APP_SESSION_TTL_IN_MINUTES", 120),
			RequestBodyLimitInKB:     utils.GetEnvInt("APP_REQUEST_BODY_LIMIT_IN_KB", 64),
		},
		Analysis: AppAnalysis{
			BaseUrl:              utils.GetEnvString("ANALYSIS_BASE_URL", "http://localhost:8028"),
			TimeoutInSeconds:     utils.GetEnvInt("ANALYSIS_TIMEOUT_IN_SECONDS", 300),
			ChatTimeoutInSeconds: utils.GetEnvInt("ANALYSIS_CHAT_TIMEOUT_IN_SECONDS", 120),
			RatePerSecond:        utils.GetEnvFloat("ANALYSIS_RATE_PER_SECOND", 2),
			Burst:                utils.GetEnvInt("ANALYSIS_BURST", 4),
			FieldMapFile:         utils.GetEnvString("ANALYSIS_FIELD_MAP_FILE", ""),
		},
		Progress: AppProgress{
			PercentPerSecond: utils.GetEnvFloat("PROGRESS_PERCENT_PER_SECOND", 3),
		},
		JWT: AppJWT{
			Secret:        utils.GetEnvString("JWT_SECRET", "anyjwt"),
			ExpTimeInHour: utils.GetEnvInt("JWT_EXP_TIME_IN_HOUR", 12),
		},
	}
}
