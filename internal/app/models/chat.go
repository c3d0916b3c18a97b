package models

type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChartSpec describes one chart the assistant asked the UI to draw.
type ChartSpec struct {
	GraphType  string    `json:"graph_type"`
	Title      string    `json:"title"`
	Categories []string  `json:"categories"`
	Data       []float64 `json:"data"`
}

type ChartPoint struct {
	Category string  `json:"category"`
	Value    float64 `json:"value"`
}

// Points pairs every category with its value. Categories without a value get 0.
func (c *ChartSpec) Points() []ChartPoint {
	points := make([]ChartPoint, 0, len(c.Categories))
	for i, category := range c.Categories {
		var value float64
		if i < len(c.Data) {
			value = c.Data[i]
		}
		points = append(points, ChartPoint{Category: category, Value: value})
	}
	return points
}
