package constvars

// Field-level messages shown next to the intake form inputs, keyed by field then validation tag.
var IntakeValidationErrorMessages = map[string]map[string]string{
	"firstName": {
		"required":    "First name is required.",
		"person_name": "Only letters, spaces, apostrophes, hyphens. 2-30 chars.",
	},
	"lastName": {
		"required":    "Last name is required.",
		"person_name": "Only letters, spaces, apostrophes, hyphens. 2-30 chars.",
	},
	"dateOfBirth": {
		"required":        "Date of birth is required.",
		"calendar_date":   "Invalid date.",
		"not_future_date": "Date cannot be in the future.",
		"plausible_age":   "Please enter a realistic date of birth.",
	},
	"gender": {
		"required": "Please select a gender option.",
		"oneof":    "Please select a gender option.",
	},
	"zipCode": {
		"required": "Zip code is required.",
		"zip_code": "Enter a valid US ZIP (12345 or 12345-6789).",
	},
	"nationalId": {
		"required":    "SSN is required.",
		"national_id": "SSN must be exactly 9 digits.",
	},
}

// Generic tag messages for request DTOs outside the intake form.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"max":      "maximum at %s characters long",
	"min":      "must be at least %s characters long",
	"oneof":    "must be one of [%s]",
	"uuid":     "must be a valid UUID",
	"dive":     "is invalid",
}

var TagsWithParams = map[string]bool{
	"max":   true,
	"min":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientSessionEnded                  = "your session ended, please start a new one"
	ErrClientIntakeInvalid                 = "please correct the highlighted fields"
	ErrClientAnalysisFailed                = "Sorry, we could not complete the analysis. Please try again."
	ErrClientChatFailed                    = "Sorry, I encountered an error. Please try again."
	ErrClientMissingAnalysisSession        = "Session ID is missing. Please run analysis first."
	ErrClientAnalysisInProgress            = "an analysis is already running for this session"
	ErrClientAnalysisNotReady              = "analysis results are not available yet"
	ErrClientTooManyRequests               = "too many requests, please slow down"
	ErrClientUnknownTable                  = "the requested table does not exist"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON"
	ErrDevCannotMarshalJSON         = "cannot marshal JSON"
	ErrDevCreateHTTPRequest         = "failed to create HTTP request"
	ErrDevSendHTTPRequest           = "failed to send HTTP request"
	ErrDevReadHTTPResponse          = "failed to read HTTP response body"
	ErrDevDecodeResponse            = "failed to decode response"
	ErrDevAnalysisService           = "analysis service responded with status %d: %s"
	ErrDevAnalysisUnsuccessful      = "analysis service reported an unsuccessful analysis: %s"
	ErrDevAnalysisRequestFailed     = "analysis request failed"
	ErrDevAnalysisRateLimited       = "outbound limiter refused the analysis call"
	ErrDevServerDeadlineExceeded    = "server deadline exceeded"
	ErrDevMissingRequestID          = "request id missing from context"
	ErrDevMissingAnalysisSession    = "analysis session handle missing"
	ErrDevAuthTokenMissing          = "authorization token missing"
	ErrDevAuthTokenInvalid          = "authorization token invalid"
	ErrDevAuthTokenInvalidOrExpired = "authorization token invalid or expired"
	ErrDevAuthSigningMethod         = "unexpected token signing method"
	ErrDevAuthGenerateToken         = "failed to generate token"
	ErrDevSessionMismatch           = "session in path does not match session in token"
	ErrDevSessionNotFound           = "session %s not found"
	ErrDevSessionLocked             = "session %s is locked by another request"
	ErrDevSessionStage              = "session %s is in stage %s"
	ErrDevRedisSet                  = "failed to set data in redis"
	ErrDevRedisGet                  = "failed to get data from redis"
	ErrDevRedisDelete               = "failed to delete data from redis"
	ErrDevRedisUnlock               = "failed to release redis lock"
	ErrDevURLParamValidation        = "failed to validate url param %s"
	ErrDevUnknownTable              = "unknown table %s"
	ErrDevWriteCSV                  = "failed to write CSV"
	ErrDevLoadFieldMap              = "failed to load field map file %s"
)
