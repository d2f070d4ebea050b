package hermes

import "time"

type AnalysisCompletedEvent struct {
	RunID            string    `json:"run_id"`
	Group            string    `json:"group"`
	Entities         int       `json:"entities"`
	Leader           string    `json:"leader"`
	ParetoOptimal    []string  `json:"pareto_optimal"`
	DominantStrategy *string   `json:"dominant_strategy"`
	MostBalanced     string    `json:"most_balanced"`
	Timestamp        time.Time `json:"timestamp"`
}

type AnalysisFailedEvent struct {
	RunID     string    `json:"run_id"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}
