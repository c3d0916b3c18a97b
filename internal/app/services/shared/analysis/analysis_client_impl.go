package analysis

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"healthagent-service/internal/app/contracts"
	"healthagent-service/internal/app/models"
	"healthagent-service/internal/pkg/constvars"
	"healthagent-service/internal/pkg/dto/requests"
	"healthagent-service/internal/pkg/dto/responses"
	"healthagent-service/internal/pkg/exceptions"
	"healthagent-service/internal/pkg/utils"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	analysisErrorFallback = "Unknown error occurred"
	chatErrorFallback     = "Unexpected error occurred"
)

var (
	analysisClientInstance contracts.AnalysisClient
	onceAnalysisClient     sync.Once
)

type Options struct {
	BaseUrl         string
	AnalysisTimeout time.Duration
	ChatTimeout     time.Duration
	RatePerSecond   float64
	Burst           int
}

type analysisClient struct {
	BaseUrl         string
	AnalysisTimeout time.Duration
	ChatTimeout     time.Duration
	HTTPClient      *http.Client
	Limiter         *rate.Limiter
	Log             *zap.Logger
}

func NewAnalysisClient(options Options, logger *zap.Logger) contracts.AnalysisClient {
	onceAnalysisClient.Do(func() {
		analysisClientInstance = newAnalysisClient(options, logger)
	})
	return analysisClientInstance
}

func newAnalysisClient(options Options, logger *zap.Logger) *analysisClient {
	limit := rate.Inf
	if options.RatePerSecond > 0 {
		limit = rate.Limit(options.RatePerSecond)
	}
	burst := options.Burst
	if burst <= 0 {
		burst = 1
	}
	return &analysisClient{
		BaseUrl:         strings.TrimRight(options.BaseUrl, "/"),
		AnalysisTimeout: options.AnalysisTimeout,
		ChatTimeout:     options.ChatTimeout,
		HTTPClient:      &http.Client{},
		Limiter:         rate.NewLimiter(limit, burst),
		Log:             logger,
	}
}

func (c *analysisClient) RunAnalysisSync(ctx context.Context, request *requests.AnalysisSync) (*responses.AnalysisSync, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info("analysisClient.RunAnalysisSync called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	statusCode, body, err := c.post(ctx, "analysisClient.RunAnalysisSync", constvars.AnalysisEndpointAnalyzeSync, c.AnalysisTimeout, request)
	if err != nil {
		return nil, err
	}

	if !isSuccessStatus(statusCode) {
		detail := errorDetail(body, analysisErrorFallback)
		c.Log.Error("analysisClient.RunAnalysisSync analysis service error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String(constvars.LoggingResponseKey, detail),
		)
		return nil, exceptions.ErrAnalysisService(fmt.Errorf("unexpected status %d", statusCode), statusCode, detail)
	}

	if !gjson.ValidBytes(body) {
		c.Log.Error("analysisClient.RunAnalysisSync error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeResponse(errors.New("analysis response is not valid JSON"))
	}

	parsed := gjson.ParseBytes(body)
	if success := parsed.Get("success"); success.Exists() && !success.Bool() {
		detail := errorDetail(body, analysisErrorFallback)
		c.Log.Error("analysisClient.RunAnalysisSync analysis reported failure",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingResponseKey, detail),
		)
		return nil, exceptions.ErrAnalysisUnsuccessful(errors.New("success flag is false"), detail)
	}

	response := &responses.AnalysisSync{
		Success:   true,
		SessionID: parsed.Get("session_id").String(),
	}
	if results := parsed.Get("analysis_results"); results.Exists() {
		response.AnalysisResults = json.RawMessage(results.Raw)
	}

	c.Log.Info("analysisClient.RunAnalysisSync succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Bool(constvars.LoggingSuccessKey, true),
		zap.Int(constvars.LoggingResponseLengthKey, len(body)),
	)
	return response, nil
}

func (c *analysisClient) SendChatMessage(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error) {
	return c.chat(ctx, "analysisClient.SendChatMessage", constvars.AnalysisEndpointChat, request, true)
}

// SendGraphTestMessage uses the same contract as SendChatMessage. The graph-test endpoint
// only ever embeds charts in the reply text, so structured graph fields are ignored.
func (c *analysisClient) SendGraphTestMessage(ctx context.Context, request *requests.AnalysisChat) (*responses.AnalysisChat, error) {
	return c.chat(ctx, "analysisClient.SendGraphTestMessage", constvars.AnalysisEndpointGraphTest, request, false)
}

func (c *analysisClient) chat(ctx context.Context, caller, endpoint string, request *requests.AnalysisChat, withGraph bool) (*responses.AnalysisChat, error) {
	requestID := utils.GetRequestID(ctx)
	c.Log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHistoryLengthKey, len(request.ChatHistory)),
	)

	if request.SessionID == "" {
		c.Log.Warn(caller+" called without analysis session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrMissingAnalysisSession(exceptions.ErrNoAnalysisSession)
	}
	payload := *request
	if payload.ChatHistory == nil {
		payload.ChatHistory = []models.ChatTurn{}
	}

	statusCode, body, err := c.post(ctx, caller, endpoint, c.ChatTimeout, &payload)
	if err != nil {
		return nil, err
	}

	if !isSuccessStatus(statusCode) {
		detail := errorDetail(body, chatErrorFallback)
		c.Log.Error(caller+" analysis service error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, statusCode),
			zap.String(constvars.LoggingResponseKey, detail),
		)
		return nil, exceptions.ErrAnalysisService(fmt.Errorf("unexpected status %d", statusCode), statusCode, detail)
	}

	if !gjson.ValidBytes(body) {
		c.Log.Error(caller+" error decoding response",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrDecodeResponse(errors.New("chat response is not valid JSON"))
	}

	response := decodeChatResponse(gjson.ParseBytes(body), withGraph)
	response.SessionID = request.SessionID

	c.Log.Info(caller+" succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingHistoryLengthKey, len(response.UpdatedChatHistory)),
		zap.Int("graph_present", response.GraphPresent),
	)
	return response, nil
}

// decodeChatResponse reads every field on its own so one malformed field never costs the
// whole reply.
func decodeChatResponse(parsed gjson.Result, withGraph bool) *responses.AnalysisChat {
	response := &responses.AnalysisChat{
		Success:  true,
		Response: parsed.Get("response").String(),
	}

	if history := parsed.Get("updated_chat_history"); history.IsArray() {
		var turns []models.ChatTurn
		if err := json.Unmarshal([]byte(history.Raw), &turns); err == nil {
			response.UpdatedChatHistory = turns
		}
	}

	if !withGraph {
		return response
	}
	response.GraphPresent = int(parsed.Get("graph_present").Int())
	if graph := parsed.Get("json_graph_data"); graph.IsObject() {
		spec := new(models.ChartSpec)
		if err := json.Unmarshal([]byte(graph.Raw), spec); err == nil {
			response.JSONGraphData = spec
		}
	}
	return response
}

// post sends one JSON request and returns the raw reply. It never retries.
func (c *analysisClient) post(ctx context.Context, caller, endpoint string, timeout time.Duration, payload interface{}) (int, []byte, error) {
	requestID := utils.GetRequestID(ctx)

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	err := c.Limiter.Wait(ctx)
	if err != nil {
		c.Log.Warn(caller+" outbound limiter refused request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, nil, exceptions.ErrAnalysisRateLimited(err)
	}

	requestJSON, err := json.Marshal(payload)
	if err != nil {
		c.Log.Error(caller+" error marshaling JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := c.BaseUrl + endpoint
	req, err := http.NewRequestWithContext(ctx, constvars.MethodPost, url, bytes.NewBuffer(requestJSON))
	if err != nil {
		c.Log.Error(caller+" error creating HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, nil, exceptions.ErrCreateHTTPRequest(err)
	}
	req.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	if requestID != "" {
		req.Header.Set(constvars.HeaderXRequestID, requestID)
	}

	startTime := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Log.Error(caller+" error sending HTTP request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingURLKey, url),
			zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
			zap.Error(err),
		)
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, nil, exceptions.ErrServerDeadlineExceeded(err)
		}
		return 0, nil, exceptions.ErrSendHTTPRequest(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.Log.Error(caller+" error reading response body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, nil, exceptions.ErrReadHTTPResponse(err)
	}

	c.Log.Debug(caller+" received response",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingURLKey, url),
		zap.Int(constvars.LoggingStatusCodeKey, resp.StatusCode),
		zap.Duration(constvars.LoggingDurationKey, time.Since(startTime)),
	)
	return resp.StatusCode, body, nil
}

func isSuccessStatus(statusCode int) bool {
	return statusCode >= 200 && statusCode < 300
}

// errorDetail reads the "detail" field of an error body. It is either a message or a list
// of validation items carrying "msg".
func errorDetail(body []byte, fallback string) string {
	detail := gjson.GetBytes(body, "detail")
	switch {
	case detail.Type == gjson.String && detail.String() != "":
		return detail.String()
	case detail.IsArray():
		var messages []string
		detail.ForEach(func(_, item gjson.Result) bool {
			if message := item.Get("msg").String(); message != "" {
				messages = append(messages, message)
			}
			return true
		})
		if len(messages) > 0 {
			return strings.Join(messages, "; ")
		}
	}
	return fallback
}
