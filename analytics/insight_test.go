package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pfmo-ng/facility-api/schema"
)

func TestInsightsSummaryHealthy(t *testing.T) {
	sub := healthySubmission()
	summary := InsightsSummary(&sub)

	assert.Equal(t, "Facility: Ikeja PHC in Lagos. Condition: Good.", summary)
}

func TestInsightsSummaryWithFindings(t *testing.T) {
	sub := schema.Submission{
		FacilityName:      "Gwoza Dispensary",
		State:             "Borno",
		LGA:               "Gwoza",
		FacilityCondition: "Poor",
	}

	summary := InsightsSummary(&sub)

	assert.Contains(t, summary, "Facility: Gwoza Dispensary in Borno")
	assert.Contains(t, summary, "Condition: Poor")
	assert.Contains(t, summary, "Risk Factors: Poor facility condition, Insufficient staffing, Lack of funding")
	assert.Contains(t, summary, "Predicted Needs: Infrastructure improvement, Additional healthcare workers, Financial support, Power supply, Water supply")
	assert.NotContains(t, summary, "Data Quality Issues")
}

func TestInsightsSummaryUnknownFacility(t *testing.T) {
	sub := schema.Submission{}
	summary := InsightsSummary(&sub)

	assert.Contains(t, summary, "Facility: Unknown Facility in Unknown State")
	assert.Contains(t, summary, "Condition: Unknown")
	assert.Contains(t, summary, "Data Quality Issues: 4 anomalies detected")
}

func TestAtRiskFacilitiesFilterAndOrder(t *testing.T) {
	healthy := healthySubmission()

	poorA := healthySubmission()
	poorA.FacilityName = "Facility A"
	poorA.FacilityCondition = "Poor"

	anomalousB := healthySubmission()
	anomalousB.FacilityName = "Facility B"
	anomalousB.LGA = "" // one missing_data anomaly, priority stays medium

	poorC := healthySubmission()
	poorC.FacilityName = "Facility C"
	poorC.FacilityCondition = "Critical"

	atRisk := AtRiskFacilities([]schema.Submission{healthy, anomalousB, poorA, poorC})

	assert.Len(t, atRisk, 3)
	// high priority first; equal priorities keep submission order
	assert.Equal(t, "Facility A", atRisk[0].FacilityName)
	assert.Equal(t, schema.PriorityHigh, atRisk[0].Priority)
	assert.Equal(t, "Facility C", atRisk[1].FacilityName)
	assert.Equal(t, "Facility B", atRisk[2].FacilityName)
	assert.Equal(t, schema.PriorityMedium, atRisk[2].Priority)
	assert.Equal(t, 1, atRisk[2].AnomaliesCount)
}

func TestRouteRecommendations(t *testing.T) {
	sub := schema.Submission{
		FacilityName:      "Kafanchan PHC",
		State:             "Kaduna",
		FacilityCondition: "Poor",
	}

	buckets := RouteRecommendations([]schema.Submission{sub})

	// "Prioritize facility rehabilitation" carries no routing keyword
	assert.Len(t, buckets.General, 1)
	assert.Equal(t, "Prioritize facility rehabilitation", buckets.General[0].Recommendation)
	assert.Equal(t, "Kafanchan PHC", buckets.General[0].Facility)

	assert.Len(t, buckets.Staffing, 1)
	assert.Equal(t, "Recruit and train more staff", buckets.Staffing[0].Recommendation)

	assert.Len(t, buckets.Funding, 1)
	assert.Equal(t, "Apply for BHCPF or IMPACT funding", buckets.Funding[0].Recommendation)

	assert.Len(t, buckets.Infrastructure, 2)
	assert.Equal(t, "Install or repair power infrastructure", buckets.Infrastructure[0].Recommendation)
	assert.Equal(t, "Ensure reliable water access", buckets.Infrastructure[1].Recommendation)
}

func TestRouteRecommendationsEmpty(t *testing.T) {
	buckets := RouteRecommendations(nil)

	assert.Empty(t, buckets.Infrastructure)
	assert.Empty(t, buckets.Staffing)
	assert.Empty(t, buckets.Funding)
	assert.Empty(t, buckets.General)
}
