package analytics

import (
	"fmt"

	"github.com/pfmo-ng/facility-api/consts"
	"github.com/pfmo-ng/facility-api/schema"
)

// DetectAnomalies inspects one submission for data quality problems:
// missing critical fields, GPS fixes outside Nigeria, and head counts
// contradicting the health-worker flag. Findings come back in a fixed order.
func DetectAnomalies(sub *schema.Submission) []schema.Anomaly {
	anomalies := []schema.Anomaly{}

	criticalFields := []struct {
		name  string
		value string
	}{
		{"facility_name", sub.FacilityName},
		{"state", sub.State},
		{"lga", sub.LGA},
		{"facility_condition", sub.FacilityCondition},
	}
	for _, field := range criticalFields {
		if field.value == "" {
			anomalies = append(anomalies, schema.Anomaly{
				Type:     schema.AnomalyMissingData,
				Field:    field.name,
				Severity: schema.SeverityHigh,
				Message:  fmt.Sprintf("Missing critical field: %s", field.name),
			})
		}
	}

	// A zero coordinate means the device never got a fix.
	if sub.Latitude != nil && sub.Longitude != nil && *sub.Latitude != 0 && *sub.Longitude != 0 {
		lat, lon := *sub.Latitude, *sub.Longitude
		outOfBounds := lat < consts.NigeriaMinLatitude || lat > consts.NigeriaMaxLatitude ||
			lon < consts.NigeriaMinLongitude || lon > consts.NigeriaMaxLongitude
		if outOfBounds {
			anomalies = append(anomalies, schema.Anomaly{
				Type:     schema.AnomalyInvalidLocation,
				Field:    "coordinates",
				Severity: schema.SeverityMedium,
				Message:  fmt.Sprintf("Coordinates (%v, %v) appear to be outside Nigeria", lat, lon),
			})
		}
	}

	if sub.HasHealthWorkers == "No" && hasAnyValue(sub.HumanResourcesData) {
		anomalies = append(anomalies, schema.Anomaly{
			Type:     schema.AnomalyInconsistency,
			Field:    "health_workers",
			Severity: schema.SeverityMedium,
			Message:  "Form indicates no health workers but HR data exists",
		})
	}

	return anomalies
}

func hasAnyValue(block schema.AttributeBlock) bool {
	for _, value := range block {
		if truthy(value) {
			return true
		}
	}
	return false
}
