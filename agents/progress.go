package agents

import (
	"go.uber.org/atomic"

	"github.com/bububa/food-agents/components"
	"github.com/bububa/food-agents/schema"
)

// Progress is reported after every stage commits
type Progress struct {
	// RunID of the reporting run
	RunID string
	// Stage that just committed, 1 to 5
	Stage schema.StageID
	// Name of that stage
	Name string
	// Percent of the run completed
	Percent int
	// Status describes what the run does next, or StatusCompleted
	Status string
	// Result is a snapshot owned by the callback
	Result *components.Result
}

// ProgressFunc receives Progress on the goroutine running the pipeline
type ProgressFunc func(Progress)

var stagePercent = map[schema.StageID]int{
	schema.StageExtraction:   25,
	schema.StageDescription:  50,
	schema.StageHealthTips:   75,
	schema.StageAssessment:   90,
	schema.StageAlternatives: 100,
}

func percentOf(idx int, total int, id schema.StageID) int {
	if idx == total-1 {
		return 100
	}
	if total == schema.StageCount {
		if v, ok := stagePercent[id]; ok {
			return v
		}
	}
	return (idx + 1) * 100 / total
}

// Tracker keeps the latest progress of a run for readers on other goroutines
type Tracker struct {
	stage   *atomic.Int32
	percent *atomic.Int32
	status  *atomic.String
}

// NewTracker returns a Tracker reporting status until the first update
func NewTracker(status string) *Tracker {
	return &Tracker{
		stage:   atomic.NewInt32(0),
		percent: atomic.NewInt32(0),
		status:  atomic.NewString(status),
	}
}

// Observe records p, it is meant to be passed to WithProgress
func (t *Tracker) Observe(p Progress) {
	t.stage.Store(int32(p.Stage))
	t.percent.Store(int32(p.Percent))
	t.status.Store(p.Status)
}

// Stage returns the last committed stage
func (t *Tracker) Stage() schema.StageID {
	return schema.StageID(t.stage.Load())
}

// Percent returns the completed percentage
func (t *Tracker) Percent() int {
	return int(t.percent.Load())
}

// Status returns the current status text
func (t *Tracker) Status() string {
	return t.status.Load()
}

// Done reports whether the run reached 100%
func (t *Tracker) Done() bool {
	return t.percent.Load() >= 100
}
