package hermes

const (
	SubjectAnalysisRequest = "payoff.request.analysis"
	SubjectAnalysisEvents  = "payoff.analysis.>"

	QueueGroup = "payoff"

	StreamName   = "PAYOFF_EVENTS"
	StreamMaxAge = "168h" // 7 days
)

func SubjectAnalysisCompleted(runID string) string { return "payoff.analysis." + runID + ".completed" }
func SubjectAnalysisFailed(runID string) string { return "payoff.analysis." + runID + ".failed" }
