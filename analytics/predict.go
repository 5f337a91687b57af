package analytics

import (
	"strings"

	"github.com/pfmo-ng/facility-api/schema"
)

// PredictFacilityNeeds runs the heuristic needs assessment for one submission.
// Each rule fires independently; only the condition rule escalates priority.
// It is a pure function of the submission.
func PredictFacilityNeeds(sub *schema.Submission) schema.Prediction {
	prediction := schema.Prediction{
		PriorityLevel:   schema.PriorityMedium,
		PredictedNeeds:  []string{},
		RiskFactors:     []string{},
		Recommendations: []string{},
	}

	condition := strings.ToLower(sub.FacilityCondition)
	if condition == "poor" || condition == "critical" {
		prediction.PriorityLevel = schema.PriorityHigh
		prediction.RiskFactors = append(prediction.RiskFactors, "Poor facility condition")
		prediction.PredictedNeeds = append(prediction.PredictedNeeds, "Infrastructure improvement")
		prediction.Recommendations = append(prediction.Recommendations, "Prioritize facility rehabilitation")
	}

	if staffTotal(sub.HumanResourcesData) < 5 {
		prediction.RiskFactors = append(prediction.RiskFactors, "Insufficient staffing")
		prediction.PredictedNeeds = append(prediction.PredictedNeeds, "Additional healthcare workers")
		prediction.Recommendations = append(prediction.Recommendations, "Recruit and train more staff")
	}

	if !hasCapability(sub.FundingData, bhcpfStatusAlias, "Received") {
		prediction.RiskFactors = append(prediction.RiskFactors, "Lack of funding")
		prediction.PredictedNeeds = append(prediction.PredictedNeeds, "Financial support")
		prediction.Recommendations = append(prediction.Recommendations, "Apply for BHCPF or IMPACT funding")
	}

	if !hasCapability(sub.InfrastructureData, infrastructureAliases["power"], "Yes") {
		prediction.PredictedNeeds = append(prediction.PredictedNeeds, "Power supply")
		prediction.Recommendations = append(prediction.Recommendations, "Install or repair power infrastructure")
	}
	if !hasCapability(sub.InfrastructureData, infrastructureAliases["water"], "Yes") {
		prediction.PredictedNeeds = append(prediction.PredictedNeeds, "Water supply")
		prediction.Recommendations = append(prediction.Recommendations, "Ensure reliable water access")
	}

	return prediction
}

// staffTotal sums staff head counts across the human resources block.
// Values that cannot be coerced are skipped.
func staffTotal(block schema.AttributeBlock) int {
	total := 0
	for key, value := range block {
		if !keyMatches(key, predictStaffMarkers) {
			continue
		}
		if count, ok := leadingInt(value); ok {
			total += count
		}
	}
	return total
}
