package config

type InternalConfig struct {
	App      App         `mapstructure:"app"`
	Analysis AppAnalysis `mapstructure:"analysis"`
	Progress AppProgress `mapstructure:"progress"`
	JWT      AppJWT      `mapstructure:"jwt"`
}

type App struct {
	Env                      string   `mapstructure:"env"`
	Port                     string   `mapstructure:"port"`
	Version                  string   `mapstructure:"version"`
	Timezone                 string   `mapstructure:"timezone"`
	EndpointPrefix           string   `mapstructure:"endpoint_prefix"`
	AllowedOrigins           []string `mapstructure:"allowed_origins"`
	MaxRequests              int      `mapstructure:"max_requests"`
	ShutdownTimeoutInSeconds int      `mapstructure:"shutdown_timeout_in_seconds"`
	SessionTTLInMinutes      int      `mapstructure:"session_ttl_in_minutes"`
	RequestBodyLimitInKB     int      `mapstructure:"request_body_limit_in_kb"`
}

// AppAnalysis points at the analysis service that turns an intake into claims data and
// answers follow-up questions about it.
type AppAnalysis struct {
	BaseUrl              string  `mapstructure:"base_url"`
	TimeoutInSeconds     int     `mapstructure:"timeout_in_seconds"`
	ChatTimeoutInSeconds int     `mapstructure:"chat_timeout_in_seconds"`
	RatePerSecond        float64 `mapstructure:"rate_per_second"`
	Burst                int     `mapstructure:"burst"`
	FieldMapFile         string  `mapstructure:"field_map_file"`
}

type AppProgress struct {
	PercentPerSecond float64 `mapstructure:"percent_per_second"`
}

type AppJWT struct {
	Secret        string `mapstructure:"secret"`
	ExpTimeInHour int    `mapstructure:"exp_time_in_hour"`
}
