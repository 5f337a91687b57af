package schema

// PriorityLevel is the heuristic urgency of a facility's needs.
type PriorityLevel string

const (
	PriorityLow    PriorityLevel = "low"
	PriorityMedium PriorityLevel = "medium"
	PriorityHigh   PriorityLevel = "high"
)

// Sentiment of free-text issues and comments.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Prediction holds the heuristic needs assessment of a single facility.
type Prediction struct {
	PriorityLevel   PriorityLevel `json:"priority_level"`
	PredictedNeeds  []string      `json:"predicted_needs"`
	RiskFactors     []string      `json:"risk_factors"`
	Recommendations []string      `json:"recommendations"`
}

// Anomaly is one data quality finding on a submission.
type Anomaly struct {
	Type     string `json:"type"`
	Field    string `json:"field"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
}

const (
	AnomalyMissingData     = "missing_data"
	AnomalyInvalidLocation = "invalid_location"
	AnomalyInconsistency   = "inconsistency"

	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// TextAnalysis is the keyword analysis of issues and comments text.
type TextAnalysis struct {
	Sentiment Sentiment     `json:"sentiment"`
	Topics    []string      `json:"topics"`
	Priority  PriorityLevel `json:"priority"`
	Insights  []string      `json:"insights"`
	Summary   string        `json:"summary"`
}

// ScoreDistribution buckets satisfaction scores by quality band.
type ScoreDistribution struct {
	Excellent int `json:"excellent"`
	Good      int `json:"good"`
	Fair      int `json:"fair"`
	Poor      int `json:"poor"`
}

// SatisfactionAnalysis summarizes a satisfaction survey block.
type SatisfactionAnalysis struct {
	AverageScore      float64           `json:"average_score"`
	TotalResponses    int               `json:"total_responses"`
	Insights          []string          `json:"insights"`
	Recommendations   []string          `json:"recommendations"`
	ScoreDistribution ScoreDistribution `json:"score_distribution"`
}

// AtRiskFacility is one facility flagged by the risk view.
type AtRiskFacility struct {
	ID             string        `json:"id"`
	FacilityName   string        `json:"facility_name"`
	State          string        `json:"state"`
	LGA            string        `json:"lga"`
	Condition      string        `json:"condition"`
	Priority       PriorityLevel `json:"priority"`
	RiskFactors    []string      `json:"risk_factors"`
	PredictedNeeds []string      `json:"predicted_needs"`
	AnomaliesCount int           `json:"anomalies_count"`
}

// FacilityRecommendation is one routed recommendation in the recommendations view.
type FacilityRecommendation struct {
	Facility       string `json:"facility"`
	State          string `json:"state"`
	Recommendation string `json:"recommendation"`
}

// RecommendationBuckets groups recommendations by concern.
type RecommendationBuckets struct {
	Infrastructure []FacilityRecommendation `json:"infrastructure"`
	Staffing       []FacilityRecommendation `json:"staffing"`
	Funding        []FacilityRecommendation `json:"funding"`
	General        []FacilityRecommendation `json:"general"`
}

// SubmissionInsights is the per-submission insight bundle served by the API.
type SubmissionInsights struct {
	IssuesAnalysis       TextAnalysis         `json:"issues_analysis"`
	SatisfactionAnalysis SatisfactionAnalysis `json:"satisfaction_analysis"`
	Predictions          Prediction           `json:"predictions"`
	Anomalies            []Anomaly            `json:"anomalies"`
	Summary              string               `json:"summary"`
}
