package progress

import (
	"math"
	"time"
)

const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusDone       = "done"

	CompleteTask = "Complete"

	// MaxPendingPercent is as far as the bar goes before the backend has answered.
	MaxPendingPercent = 99
)

type Step struct {
	Name      string
	Sub       string
	Threshold int
}

var Steps = []Step{
	{Name: "API Fetch", Sub: "Fetching comprehensive claims data", Threshold: 14},
	{Name: "Deidentification", Sub: "Advanced PHI removal with clinical preservation", Threshold: 29},
	{Name: "Field Extraction", Sub: "Extracting medical and pharmacy fields", Threshold: 43},
	{Name: "Entity Extraction", Sub: "Advanced health entity identification", Threshold: 57},
	{Name: "Health Trajectory", Sub: "Comprehensive predictive health analysis", Threshold: 71},
	{Name: "Heart Risk Prediction", Sub: "ML-based cardiovascular assessment", Threshold: 86},
	{Name: "Chatbot Initialization", Sub: "AI assistant with graph generation", Threshold: 100},
}

type Task struct {
	Name   string `json:"name"`
	Sub    string `json:"sub"`
	Status string `json:"status"`
}

type Snapshot struct {
	TotalSteps int    `json:"totalSteps"`
	Completed  int    `json:"completed"`
	Processing int    `json:"processing"`
	Percent    int    `json:"percent"`
	ActiveTask string `json:"activeTask"`
	Tasks      []Task `json:"tasks"`
}

// Simulator produces the progress animation shown while the analysis call is in flight.
// Progress is a pure function of elapsed time so every poll of the same session agrees.
type Simulator struct {
	percentPerSecond float64
}

func NewSimulator(percentPerSecond float64) *Simulator {
	if percentPerSecond <= 0 {
		percentPerSecond = 3
	}
	return &Simulator{percentPerSecond: percentPerSecond}
}

func (s *Simulator) SnapshotAt(elapsed time.Duration, done bool) Snapshot {
	if done {
		return snapshotFor(100, true)
	}
	if elapsed < 0 {
		elapsed = 0
	}
	percent := int(math.Floor(elapsed.Seconds() * s.percentPerSecond))
	if percent > MaxPendingPercent {
		percent = MaxPendingPercent
	}
	return snapshotFor(percent, false)
}

// Idle is the snapshot before anything was submitted.
func Idle() Snapshot {
	return snapshotFor(0, false)
}

func snapshotFor(percent int, done bool) Snapshot {
	snapshot := Snapshot{
		TotalSteps: len(Steps),
		Percent:    percent,
		ActiveTask: CompleteTask,
		Tasks:      make([]Task, 0, len(Steps)),
	}

	activeFound := false
	for _, step := range Steps {
		task := Task{Name: step.Name, Sub: step.Sub, Status: StatusPending}
		switch {
		case done || (percent >= step.Threshold && step.Threshold < 100):
			task.Status = StatusDone
			snapshot.Completed++
		case !activeFound:
			task.Status = StatusProcessing
			snapshot.Processing = 1
			snapshot.ActiveTask = step.Name
			activeFound = true
		}
		snapshot.Tasks = append(snapshot.Tasks, task)
	}
	return snapshot
}
