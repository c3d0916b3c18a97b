package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingSessionIDKey      = "session_id"
	LoggingSessionStageKey   = "session_stage"
	LoggingDataKey           = "data"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingResponseLengthKey = "response_length"
	LoggingRedisKey          = "redis_key"
	LoggingLockValueKey      = "lock_value"
	LoggingLockExpirationKey = "lock_expiration"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingSuccessKey        = "success"
	LoggingURLKey            = "url"
	LoggingErrorFieldsKey    = "error_fields"
	LoggingHistoryLengthKey  = "history_length"
	LoggingChartTypeKey      = "chart_type"
	LoggingRecordCountKey    = "record_count"
	LoggingRiskScoreKey      = "risk_score"
	LoggingTableKey          = "table"
	LoggingPercentKey        = "percent"
)
