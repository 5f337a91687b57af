package analytics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pfmo-ng/facility-api/schema"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in     interface{}
		amount float64
		ok     bool
	}{
		{"12,500", 12500, true},
		{"1,234,567.89", 1234567.89, true},
		{"2500", 2500, true},
		{2500.0, 2500, true},
		{300, 300, true},
		{"not-a-number", 0, false},
		{"₦5000", 0, false},
		{nil, 0, false},
	}

	for _, c := range cases {
		amount, ok := parseAmount(c.in)
		assert.Equal(t, c.ok, ok, "input %v", c.in)
		assert.Equal(t, c.amount, amount, "input %v", c.in)
	}
}

func TestLeadingInt(t *testing.T) {
	cases := []struct {
		in    interface{}
		count int
		ok    bool
	}{
		{"12 nurses", 12, true},
		{"7", 7, true},
		{5.0, 5, true},
		{5.9, 5, true},
		{3, 3, true},
		{true, 1, true},
		{false, 0, true},
		{"about twelve", 0, false},
		{"", 0, false},
		{nil, 0, false},
	}

	for _, c := range cases {
		count, ok := leadingInt(c.in)
		assert.Equal(t, c.ok, ok, "input %v", c.in)
		assert.Equal(t, c.count, count, "input %v", c.in)
	}
}

func TestLeadingFloat(t *testing.T) {
	f, ok := leadingFloat("4.5 stars")
	assert.True(t, ok)
	assert.Equal(t, 4.5, f)

	f, ok = leadingFloat(3)
	assert.True(t, ok)
	assert.Equal(t, 3.0, f)

	_, ok = leadingFloat("excellent")
	assert.False(t, ok)
}

func TestTruthy(t *testing.T) {
	assert.True(t, truthy("Yes"))
	assert.True(t, truthy("0")) // non-empty string
	assert.True(t, truthy(1.0))
	assert.True(t, truthy(true))
	assert.True(t, truthy([]interface{}{1}))

	assert.False(t, truthy(nil))
	assert.False(t, truthy(""))
	assert.False(t, truthy(0.0))
	assert.False(t, truthy(false))
	assert.False(t, truthy(map[string]interface{}{}))
}

func TestHasCapabilityDualSpelling(t *testing.T) {
	alias := capabilityAlias{YesKey: "has_power", TruthyKey: "power_available"}

	assert.True(t, hasCapability(schema.AttributeBlock{"has_power": "Yes"}, alias, "Yes"))
	assert.True(t, hasCapability(schema.AttributeBlock{"power_available": true}, alias, "Yes"))
	// any truthy value under the alias key counts, even a non-boolean
	assert.True(t, hasCapability(schema.AttributeBlock{"power_available": "solar"}, alias, "Yes"))

	assert.False(t, hasCapability(schema.AttributeBlock{"has_power": "No"}, alias, "Yes"))
	assert.False(t, hasCapability(schema.AttributeBlock{}, alias, "Yes"))
	assert.False(t, hasCapability(nil, alias, "Yes"))
}

func TestKeyMatches(t *testing.T) {
	assert.True(t, keyMatches("nurse_staff_count", staffKeyMarkers))
	assert.True(t, keyMatches("Security_PERSONNEL", staffKeyMarkers))
	assert.True(t, keyMatches("community_health_workers", staffKeyMarkers))
	assert.False(t, keyMatches("building_age", staffKeyMarkers))

	assert.True(t, keyMatches("monthly_patient_count", patientKeyMarkers))
	assert.True(t, keyMatches("opd_attendance", patientKeyMarkers))
	assert.False(t, keyMatches("immunization_service", patientKeyMarkers))
}

func TestHumanizeKey(t *testing.T) {
	assert.Equal(t, "Nurse Staff Count", humanizeKey("nurse_staff_count"))
	assert.Equal(t, "Opd Attendance", humanizeKey("OPD_attendance"))
	assert.Equal(t, "Overall Satisfaction", humanizeKey("overall satisfaction"))
}

func TestPercentageZeroDenominator(t *testing.T) {
	assert.Equal(t, 0.0, percentage(5, 0))
	assert.Equal(t, 33.33, percentage(1, 3))
	assert.Equal(t, 100.0, percentage(3, 3))
}
