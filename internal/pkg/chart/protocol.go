package chart

import (
	"healthagent-service/internal/app/models"
	"strings"

	"github.com/goccy/go-json"
)

// Assistant replies may embed one chart as a JSON object between these markers.
const (
	StartMarker = "***GRAPH_START***"
	EndMarker   = "***GRAPH_END***"
)

type Reply struct {
	Text  string            `json:"text"`
	Chart *models.ChartSpec `json:"chart,omitempty"`
}

// ParseReply pulls the first chart block out of text. The end marker is only looked for after
// the start marker. Unless both markers are found and the body between them decodes as a
// ChartSpec object, text comes back untouched with no chart.
func ParseReply(text string) Reply {
	unchanged := Reply{Text: text}

	start := strings.Index(text, StartMarker)
	if start < 0 {
		return unchanged
	}
	bodyStart := start + len(StartMarker)

	offset := strings.Index(text[bodyStart:], EndMarker)
	if offset < 0 {
		return unchanged
	}
	bodyEnd := bodyStart + offset

	body := strings.TrimSpace(text[bodyStart:bodyEnd])
	if !strings.HasPrefix(body, "{") {
		return unchanged
	}

	spec := new(models.ChartSpec)
	if err := json.Unmarshal([]byte(body), spec); err != nil {
		return unchanged
	}

	return Reply{
		Text:  text[:start] + text[bodyEnd+len(EndMarker):],
		Chart: spec,
	}
}

// Resolve prefers the chart the backend sent as structured data when it flags one. The text
// still goes through ParseReply so a duplicate in-band block is not shown to the user.
func Resolve(response string, graphPresent int, graphData *models.ChartSpec) Reply {
	parsed := ParseReply(response)
	if graphPresent == 1 && graphData != nil {
		return Reply{Text: parsed.Text, Chart: graphData}
	}
	return parsed
}
