package analytics

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pfmo-ng/facility-api/schema"
)

// InsightsSummary builds a one-line natural language summary of a facility's
// heuristic assessment.
func InsightsSummary(sub *schema.Submission) string {
	facilityName := sub.FacilityName
	if facilityName == "" {
		facilityName = "Unknown Facility"
	}
	state := sub.State
	if state == "" {
		state = "Unknown State"
	}
	condition := sub.FacilityCondition
	if condition == "" {
		condition = "Unknown"
	}

	prediction := PredictFacilityNeeds(sub)
	anomalies := DetectAnomalies(sub)

	parts := []string{
		fmt.Sprintf("Facility: %s in %s", facilityName, state),
		fmt.Sprintf("Condition: %s", condition),
	}

	if len(prediction.RiskFactors) > 0 {
		parts = append(parts, fmt.Sprintf("Risk Factors: %s", strings.Join(prediction.RiskFactors, ", ")))
	}
	if len(prediction.PredictedNeeds) > 0 {
		parts = append(parts, fmt.Sprintf("Predicted Needs: %s", strings.Join(prediction.PredictedNeeds, ", ")))
	}
	if len(anomalies) > 0 {
		parts = append(parts, fmt.Sprintf("Data Quality Issues: %d anomalies detected", len(anomalies)))
	}

	return strings.Join(parts, ". ") + "."
}

// SubmissionInsights bundles every per-submission analysis for the insight
// endpoint.
func SubmissionInsights(sub *schema.Submission) schema.SubmissionInsights {
	return schema.SubmissionInsights{
		IssuesAnalysis:       AnalyzeText(sub.Issues, sub.Comments),
		SatisfactionAnalysis: AnalyzeSatisfaction(sub.SatisfactionSurveyData),
		Predictions:          PredictFacilityNeeds(sub),
		Anomalies:            DetectAnomalies(sub),
		Summary:              InsightsSummary(sub),
	}
}

// AtRiskFacilities flags submissions with a high predicted priority or any
// detected anomaly, high priority first. The sort is stable, so facilities of
// equal priority keep their submission order.
func AtRiskFacilities(submissions []schema.Submission) []schema.AtRiskFacility {
	atRisk := []schema.AtRiskFacility{}

	for i := range submissions {
		sub := &submissions[i]
		prediction := PredictFacilityNeeds(sub)
		anomalies := DetectAnomalies(sub)

		if prediction.PriorityLevel != schema.PriorityHigh && len(anomalies) == 0 {
			continue
		}

		atRisk = append(atRisk, schema.AtRiskFacility{
			ID:             sub.ID.Hex(),
			FacilityName:   sub.FacilityName,
			State:          sub.State,
			LGA:            sub.LGA,
			Condition:      sub.FacilityCondition,
			Priority:       prediction.PriorityLevel,
			RiskFactors:    prediction.RiskFactors,
			PredictedNeeds: prediction.PredictedNeeds,
			AnomaliesCount: len(anomalies),
		})
	}

	sort.SliceStable(atRisk, func(i, j int) bool {
		return atRisk[i].Priority == schema.PriorityHigh && atRisk[j].Priority != schema.PriorityHigh
	})

	return atRisk
}

// RouteRecommendations collects every predicted recommendation across the
// submission set and routes each one into a concern bucket by keyword.
func RouteRecommendations(submissions []schema.Submission) schema.RecommendationBuckets {
	buckets := schema.RecommendationBuckets{
		Infrastructure: []schema.FacilityRecommendation{},
		Staffing:       []schema.FacilityRecommendation{},
		Funding:        []schema.FacilityRecommendation{},
		General:        []schema.FacilityRecommendation{},
	}

	for i := range submissions {
		sub := &submissions[i]
		prediction := PredictFacilityNeeds(sub)

		for _, rec := range prediction.Recommendations {
			entry := schema.FacilityRecommendation{
				Facility:       sub.FacilityName,
				State:          sub.State,
				Recommendation: rec,
			}

			lower := strings.ToLower(rec)
			switch {
			case strings.Contains(lower, "infrastructure") || strings.Contains(lower, "power") || strings.Contains(lower, "water"):
				buckets.Infrastructure = append(buckets.Infrastructure, entry)
			case strings.Contains(lower, "staff") || strings.Contains(lower, "worker"):
				buckets.Staffing = append(buckets.Staffing, entry)
			case strings.Contains(lower, "funding") || strings.Contains(lower, "financial"):
				buckets.Funding = append(buckets.Funding, entry)
			default:
				buckets.General = append(buckets.General, entry)
			}
		}
	}

	return buckets
}
