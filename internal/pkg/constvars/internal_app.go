package constvars

type ContextKey string

const (
	ResourceIntake   = "intake"
	ResourceSessions = "sessions"
	ResourceChat     = "chat"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
	CONTEXT_SESSION_ID_KEY           ContextKey = "session_id"
	CONTEXT_REFERENCE_DATE_KEY       ContextKey = "reference_date"
)

const (
	REQUEST_ID_PREFIX = "HLTHAGT_SVC_"
)

const (
	URLParamSessionID = "session_id"
	URLParamTable     = "table"
)

// Stages a UI session moves through. A failed analysis returns the session to SessionStageForm.
const (
	SessionStageForm       = "form"
	SessionStageProcessing = "processing"
	SessionStageComplete   = "complete"
)

const (
	ChatRoleUser      = "user"
	ChatRoleAssistant = "assistant"
)

const (
	GenderMale   = "Male"
	GenderFemale = "Female"

	AnalysisGenderMale   = "M"
	AnalysisGenderFemale = "F"
)

const (
	AnalysisEndpointAnalyzeSync = "/analyze-sync"
	AnalysisEndpointChat        = "/chat"
	AnalysisEndpointGraphTest   = "/chat/graph-test"
)

const (
	RedisSessionKeyPrefix = "healthagent:session:"
	RedisSessionLockKey   = "healthagent:lock:"
)

const (
	DateLayoutISO = "2006-01-02"
	UnknownValue  = "Unknown"
)

const (
	TableICD10        = "icd10"
	TableServiceCodes = "service-codes"
	TableNDC          = "ndc"
	TableMedications  = "medications"
)
