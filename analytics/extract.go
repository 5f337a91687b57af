package analytics

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/pfmo-ng/facility-api/schema"
)

// Field submissions arrive from several generations of mobile forms, so a
// capability can show up under two spellings: an explicit "Yes" answer or a
// truthy flag. capabilityAlias keeps both spellings in one place.
type capabilityAlias struct {
	YesKey    string
	TruthyKey string
}

var infrastructureAliases = map[string]capabilityAlias{
	"power":          {YesKey: "has_power", TruthyKey: "power_available"},
	"water":          {YesKey: "has_water", TruthyKey: "water_available"},
	"internet":       {YesKey: "has_internet", TruthyKey: "internet_available"},
	"pharmacy":       {YesKey: "has_pharmacy", TruthyKey: "pharmacy_available"},
	"revitalization": {YesKey: "revitalization", TruthyKey: "revitalized"},
}

var (
	bhcpfReceivedAlias = capabilityAlias{YesKey: "bhcpf_received", TruthyKey: "has_bhcpf"}
	impactFundingAlias = capabilityAlias{YesKey: "received", TruthyKey: "has_impact_funding"}

	// The needs predictor reads the funding status under its own spelling,
	// with "Received" as the marker instead of "Yes".
	bhcpfStatusAlias = capabilityAlias{YesKey: "bhcpf_status", TruthyKey: "has_bhcpf"}
)

// markers for substring key matching inside open blocks
var (
	staffKeyMarkers        = []string{"staff", "personnel", "worker"}
	predictStaffMarkers    = []string{"staff", "personnel"}
	patientKeyMarkers      = []string{"patient", "attendance", "utilization"}
	satisfactionKeyMarkers = []string{"satisfaction", "rating", "score"}
)

var offeredServiceValues = []string{"yes", "true", "available"}

// HasCapability reports whether a block signals a capability under either of
// its accepted spellings: a literal marker string under the first key, or any
// truthy value under the second. The dual check is kept as-is even though a
// non-boolean value under the alias key also counts.
func hasCapability(block schema.AttributeBlock, alias capabilityAlias, marker string) bool {
	if s, ok := block[alias.YesKey].(string); ok && s == marker {
		return true
	}
	return truthy(block[alias.TruthyKey])
}

// truthy mirrors the loose interpretation the mobile clients use for flags:
// nil, empty strings, zero numbers, false and empty collections are absent.
func truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case float64:
		return t != 0
	case float32:
		return t != 0
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case []interface{}:
		return len(t) > 0
	case map[string]interface{}:
		return len(t) > 0
	default:
		return true
	}
}

// keyMatches reports whether the key contains any of the markers,
// case-insensitively.
func keyMatches(key string, markers []string) bool {
	lower := strings.ToLower(key)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// parseAmount coerces a free-form monetary value ("12,500", 12500) into a
// float. Thousands separators are stripped before parsing.
func parseAmount(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case int:
		return float64(t), true
	case int64:
		return float64(t), true
	}

	s := strings.Replace(fmt.Sprintf("%v", v), ",", "", -1)
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// leadingInt extracts an integer count from a heterogeneous value. Strings
// contribute their first whitespace-delimited token ("12 nurses" -> 12),
// numbers are truncated, booleans count as 0 or 1.
func leadingInt(v interface{}) (int, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case int:
		return t, true
	case int32:
		return int(t), true
	case int64:
		return int(t), true
	case float64:
		return int(t), true
	case float32:
		return int(t), true
	case string:
		fields := strings.Fields(t)
		if len(fields) == 0 {
			return 0, false
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// leadingFloat extracts a score from a heterogeneous value; strings contribute
// their first whitespace-delimited token ("4.5 stars" -> 4.5).
func leadingFloat(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case string:
		fields := strings.Fields(t)
		if len(fields) == 0 {
			return 0, false
		}
		f, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// numericScore coerces a whole value into a float, without token splitting.
// Used by the satisfaction survey analyzer where answers are plain scores.
func numericScore(v interface{}) (float64, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return 1, true
		}
		return 0, true
	case int:
		return float64(t), true
	case int32:
		return float64(t), true
	case int64:
		return float64(t), true
	case float64:
		return t, true
	case float32:
		return float64(t), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// humanizeKey turns a form field key into a display name:
// "nurse_staff_count" -> "Nurse Staff Count".
func humanizeKey(key string) string {
	words := strings.Split(strings.Replace(key, "_", " ", -1), " ")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// round2 rounds to two decimals, the precision used across all report sections.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// percentage of count over total, 0 when the denominator is empty.
func percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return round2(float64(count) / float64(total) * 100)
}
