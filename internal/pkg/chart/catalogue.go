package chart

// Family is the kind of plot a graph type is drawn with.
type Family string

const (
	FamilyBar           Family = "bar"
	FamilyHorizontalBar Family = "horizontal_bar"
	FamilyPie           Family = "pie"
	FamilyLine          Family = "line"
	FamilyScatter       Family = "scatter"
	FamilyError         Family = "error"
)

var graphFamilies = map[string]Family{
	"diagnosis_frequency":     FamilyBar,
	"medication_distribution": FamilyPie,
	"risk_assessment":         FamilyHorizontalBar,
	"timeline":                FamilyLine,
	"condition_distribution":  FamilyPie,
	"bar_chart":               FamilyBar,
	"pie_chart":               FamilyPie,
	"line_chart":              FamilyLine,
	"scatter_plot":            FamilyScatter,
	"histogram":               FamilyBar,
	"error":                   FamilyError,
}

// FamilyOf falls back to a bar chart for graph types it does not know.
func FamilyOf(graphType string) Family {
	if family, ok := graphFamilies[graphType]; ok {
		return family
	}
	return FamilyBar
}

func IsKnownGraphType(graphType string) bool {
	_, ok := graphFamilies[graphType]
	return ok
}
