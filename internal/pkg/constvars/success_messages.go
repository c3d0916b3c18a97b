package constvars

const (
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	IntakeValidSuccessMessage       = "intake is valid"
	SessionCreatedSuccessMessage    = "session created successfully"
	SessionGetSuccessMessage        = "get session successfully"
	ProgressGetSuccessMessage       = "get analysis progress successfully"
	AnalysisCompletedSuccessMessage = "analysis completed successfully"
	ChatReplySuccessMessage         = "chat reply received"
	ChatClearedSuccessMessage       = "chat history cleared"
	ChartClosedSuccessMessage       = "chart closed"
	QuickQuestionsSuccessMessage    = "get quick questions successfully"
)
