package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pfmo-ng/facility-api/schema"
)

func floatPtr(v float64) *float64 { return &v }

func TestDetectAnomaliesMissingFields(t *testing.T) {
	sub := schema.Submission{State: "Lagos"}

	anomalies := DetectAnomalies(&sub)

	assert.Len(t, anomalies, 3)
	fields := []string{}
	for _, a := range anomalies {
		assert.Equal(t, schema.AnomalyMissingData, a.Type)
		assert.Equal(t, schema.SeverityHigh, a.Severity)
		fields = append(fields, a.Field)
	}
	assert.Equal(t, []string{"facility_name", "lga", "facility_condition"}, fields)
}

func TestDetectAnomaliesLocationBounds(t *testing.T) {
	sub := healthySubmission()
	sub.Latitude = floatPtr(9.0)
	sub.Longitude = floatPtr(7.5)
	assert.Empty(t, DetectAnomalies(&sub))

	sub.Latitude = floatPtr(40.0)
	anomalies := DetectAnomalies(&sub)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, schema.AnomalyInvalidLocation, anomalies[0].Type)
	assert.Equal(t, "coordinates", anomalies[0].Field)
	assert.Equal(t, schema.SeverityMedium, anomalies[0].Severity)
}

func TestDetectAnomaliesLocationNeedsBothCoordinates(t *testing.T) {
	sub := healthySubmission()
	sub.Latitude = floatPtr(40.0)
	sub.Longitude = nil
	assert.Empty(t, DetectAnomalies(&sub))

	// zero coordinates mean no GPS fix, not the Gulf of Guinea
	sub.Latitude = floatPtr(0)
	sub.Longitude = floatPtr(0)
	assert.Empty(t, DetectAnomalies(&sub))
}

func TestDetectAnomaliesWorkerInconsistency(t *testing.T) {
	sub := healthySubmission()
	sub.HasHealthWorkers = "No"

	anomalies := DetectAnomalies(&sub)
	assert.Len(t, anomalies, 1)
	assert.Equal(t, schema.AnomalyInconsistency, anomalies[0].Type)
	assert.Equal(t, "health_workers", anomalies[0].Field)

	// no inconsistency when the HR block holds no truthy values
	sub.HumanResourcesData = schema.AttributeBlock{"nurse_staff_count": "", "note": nil}
	assert.Empty(t, DetectAnomalies(&sub))

	sub.HumanResourcesData = nil
	assert.Empty(t, DetectAnomalies(&sub))
}

func TestDetectAnomaliesCleanSubmission(t *testing.T) {
	sub := healthySubmission()
	assert.Equal(t, []schema.Anomaly{}, DetectAnomalies(&sub))
}
