package pipeline

import (
	"log"
	"time"
)

// StageMetrics records how one stage went
type StageMetrics struct {
	Name     string        `json:"name"`
	Records  int           `json:"records"`
	Dropped  int           `json:"dropped"`
	Duration time.Duration `json:"duration"`
}

// tracker times the stages of one run
type tracker struct {
	verbose bool
	stages  []StageMetrics
	current string
	began   time.Time
}

func newTracker(verbose bool) *tracker {
	return &tracker{verbose: verbose}
}

// StartStage marks the beginning of a stage
func (t *tracker) StartStage(name string) {
	t.current = name
	t.began = time.Now()
}

// EndStage closes the current stage with the records it produced and dropped
func (t *tracker) EndStage(records, dropped int) {
	m := StageMetrics{
		Name:     t.current,
		Records:  records,
		Dropped:  dropped,
		Duration: time.Since(t.began),
	}
	t.stages = append(t.stages, m)

	if !t.verbose {
		return
	}
	if dropped > 0 {
		log.Printf("📊 Stage %s: %d records (%d dropped) in %v", m.Name, m.Records, m.Dropped, m.Duration)
	} else {
		log.Printf("📊 Stage %s: %d records in %v", m.Name, m.Records, m.Duration)
	}
}

// Stages returns the finished stages in run order
func (t *tracker) Stages() []StageMetrics {
	return t.stages
}
