package analytics

import (
	"sort"
	"strings"

	"github.com/pfmo-ng/facility-api/schema"
)

const topListSize = 10

// orderedCounter counts string values while remembering first-encounter order,
// so distributions and rankings stay deterministic across report runs.
type orderedCounter struct {
	keys   []string
	counts map[string]int
}

func newOrderedCounter() *orderedCounter {
	return &orderedCounter{counts: make(map[string]int)}
}

func (c *orderedCounter) Add(key string, n int) {
	if _, seen := c.counts[key]; !seen {
		c.keys = append(c.keys, key)
	}
	c.counts[key] += n
}

func (c *orderedCounter) Distribution(total int) []schema.DistributionEntry {
	entries := make([]schema.DistributionEntry, 0, len(c.keys))
	for _, key := range c.keys {
		entries = append(entries, schema.DistributionEntry{
			Value:      key,
			Count:      c.counts[key],
			Percentage: percentage(c.counts[key], total),
		})
	}
	return entries
}

// Top returns at most n entries sorted descending by count; ties keep
// first-encounter order.
func (c *orderedCounter) Top(n int) []string {
	keys := make([]string, len(c.keys))
	copy(keys, c.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return c.counts[keys[i]] > c.counts[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// orderedSum accumulates float totals per key in first-encounter order.
type orderedSum struct {
	keys []string
	sums map[string]float64
}

func newOrderedSum() *orderedSum {
	return &orderedSum{sums: make(map[string]float64)}
}

func (s *orderedSum) Add(key string, v float64) {
	if _, seen := s.sums[key]; !seen {
		s.keys = append(s.keys, key)
	}
	s.sums[key] += v
}

func (s *orderedSum) Top(n int) []string {
	keys := make([]string, len(s.keys))
	copy(keys, s.keys)
	sort.SliceStable(keys, func(i, j int) bool {
		return s.sums[keys[i]] > s.sums[keys[j]]
	})
	if len(keys) > n {
		keys = keys[:n]
	}
	return keys
}

// Compose runs one full pass over the submission set and builds the detailed
// analytics report. Submissions are never mutated. Malformed values inside the
// open blocks drop only their own contribution; the report always comes back
// fully populated, with zeros where no data could be extracted.
func Compose(submissions []schema.Submission) schema.AnalyticsReport {
	total := len(submissions)

	conditions := newOrderedCounter()
	ownerships := newOrderedCounter()
	assessmentTypes := newOrderedCounter()
	healthWorkers := newOrderedCounter()
	zones := newOrderedCounter()

	bhcpfFacilities := 0
	impactFacilities := 0
	totalFunding := 0.0
	fundingByState := newOrderedSum()

	infraCounts := map[string]int{}

	totalStaff := 0
	facilitiesWithStaff := 0
	staffByType := newOrderedCounter()

	totalPatients := 0
	servicesOffered := newOrderedCounter()

	satisfactionSum := 0.0
	satisfactionCount := 0
	satisfactionByCategory := map[string]*struct {
		sum   float64
		count int
	}{}

	completeData := 0

	for i := range submissions {
		sub := &submissions[i]

		if sub.FacilityCondition != "" {
			conditions.Add(sub.FacilityCondition, 1)
		}
		if sub.OwnershipType != "" {
			ownerships.Add(sub.OwnershipType, 1)
		}
		if sub.AssessmentType != "" {
			assessmentTypes.Add(sub.AssessmentType, 1)
		}
		if sub.HasHealthWorkers != "" {
			healthWorkers.Add(sub.HasHealthWorkers, 1)
		}
		if sub.GeopoliticalZone != "" {
			zones.Add(sub.GeopoliticalZone, 1)
		}
		if sub.FacilityCondition != "" && sub.OwnershipType != "" {
			completeData++
		}

		if block := sub.FundingData; block != nil {
			if hasCapability(block, bhcpfReceivedAlias, "Yes") {
				bhcpfFacilities++
			}
			if raw, ok := block["amount"]; ok && truthy(raw) {
				if amount, ok := parseAmount(raw); ok {
					totalFunding += amount
					if sub.State != "" {
						fundingByState.Add(sub.State, amount)
					}
				}
			}
		}

		if block := sub.ImpactFundingData; block != nil {
			if hasCapability(block, impactFundingAlias, "Yes") {
				impactFacilities++
			}
		}

		if block := sub.InfrastructureData; block != nil {
			for capability, alias := range infrastructureAliases {
				if hasCapability(block, alias, "Yes") {
					infraCounts[capability]++
				}
			}
		}

		if block := sub.HumanResourcesData; block != nil {
			facilityStaff := 0
			for _, key := range sortedKeys(block) {
				if !keyMatches(key, staffKeyMarkers) {
					continue
				}
				count, ok := leadingInt(block[key])
				if !ok {
					continue
				}
				facilityStaff += count
				staffByType.Add(humanizeKey(key), count)
			}
			if facilityStaff > 0 {
				totalStaff += facilityStaff
				facilitiesWithStaff++
			}
		}

		if block := sub.ServicesData; block != nil {
			keys := sortedKeys(block)
			for _, key := range keys {
				if keyMatches(key, patientKeyMarkers) {
					if count, ok := leadingInt(block[key]); ok {
						totalPatients += count
					}
				}
			}
			for _, key := range keys {
				if s, ok := block[key].(string); ok && isOfferedServiceValue(s) {
					servicesOffered.Add(humanizeKey(key), 1)
				}
			}
		}

		if block := sub.SatisfactionSurveyData; block != nil {
			for _, key := range sortedKeys(block) {
				if !keyMatches(key, satisfactionKeyMarkers) {
					continue
				}
				score, ok := leadingFloat(block[key])
				if !ok {
					continue
				}
				satisfactionSum += score
				satisfactionCount++

				category := humanizeKey(key)
				acc, seen := satisfactionByCategory[category]
				if !seen {
					acc = &struct {
						sum   float64
						count int
					}{}
					satisfactionByCategory[category] = acc
				}
				acc.sum += score
				acc.count++
			}
		}
	}

	report := schema.AnalyticsReport{
		FacilityAnalysis: schema.FacilityAnalysis{
			ConditionDistribution:      conditions.Distribution(total),
			OwnershipDistribution:      ownerships.Distribution(total),
			AssessmentTypeDistribution: assessmentTypes.Distribution(total),
			HealthWorkersDistribution:  healthWorkers.Distribution(total),
			ZoneDistribution:           zones.Distribution(total),
		},
		FundingAnalysis: schema.FundingAnalysis{
			BHCPFFacilities:    bhcpfFacilities,
			BHCPFPercentage:    percentage(bhcpfFacilities, total),
			ImpactFacilities:   impactFacilities,
			ImpactPercentage:   percentage(impactFacilities, total),
			TotalFundingAmount: round2(totalFunding),
			FundingByState:     []schema.StateFunding{},
		},
		InfrastructureAnalysis: schema.InfrastructureAnalysis{
			FacilitiesWithPower:      infraCounts["power"],
			PowerPercentage:          percentage(infraCounts["power"], total),
			FacilitiesWithWater:      infraCounts["water"],
			WaterPercentage:          percentage(infraCounts["water"], total),
			FacilitiesWithInternet:   infraCounts["internet"],
			InternetPercentage:       percentage(infraCounts["internet"], total),
			FacilitiesWithPharmacy:   infraCounts["pharmacy"],
			PharmacyPercentage:       percentage(infraCounts["pharmacy"], total),
			RevitalizedFacilities:    infraCounts["revitalization"],
			RevitalizationPercentage: percentage(infraCounts["revitalization"], total),
		},
		HumanResourcesAnalysis: schema.HumanResourcesAnalysis{
			TotalStaff:          totalStaff,
			FacilitiesWithStaff: facilitiesWithStaff,
			StaffByType:         []schema.StaffTypeCount{},
		},
		ServicesUtilization: schema.ServicesUtilization{
			TotalPatients:      totalPatients,
			TopServicesOffered: []schema.ServiceCount{},
		},
		PatientSatisfaction: schema.PatientSatisfaction{
			TotalResponses:   satisfactionCount,
			ScoresByCategory: map[string]schema.CategoryScore{},
		},
		Summary: schema.ReportSummary{
			TotalFacilities:            total,
			FacilitiesWithCompleteData: completeData,
			DataCompletenessPercentage: percentage(completeData, total),
		},
	}

	if total > 0 {
		report.FundingAnalysis.AverageFundingPerFacility = round2(totalFunding / float64(total))
		report.ServicesUtilization.AveragePatientsPerFacility = round2(float64(totalPatients) / float64(total))
	}
	if facilitiesWithStaff > 0 {
		report.HumanResourcesAnalysis.AverageStaffPerFacility = round2(float64(totalStaff) / float64(facilitiesWithStaff))
	}
	if satisfactionCount > 0 {
		report.PatientSatisfaction.AverageScore = round2(satisfactionSum / float64(satisfactionCount))
	}

	for _, state := range fundingByState.Top(topListSize) {
		report.FundingAnalysis.FundingByState = append(report.FundingAnalysis.FundingByState, schema.StateFunding{
			State:  state,
			Amount: round2(fundingByState.sums[state]),
		})
	}
	for _, staffType := range staffByType.Top(topListSize) {
		report.HumanResourcesAnalysis.StaffByType = append(report.HumanResourcesAnalysis.StaffByType, schema.StaffTypeCount{
			Type:  staffType,
			Count: staffByType.counts[staffType],
		})
	}
	for _, service := range servicesOffered.Top(topListSize) {
		report.ServicesUtilization.TopServicesOffered = append(report.ServicesUtilization.TopServicesOffered, schema.ServiceCount{
			Service:    service,
			Facilities: servicesOffered.counts[service],
			Percentage: percentage(servicesOffered.counts[service], total),
		})
	}
	for category, acc := range satisfactionByCategory {
		report.PatientSatisfaction.ScoresByCategory[category] = schema.CategoryScore{
			Average: round2(acc.sum / float64(acc.count)),
			Count:   acc.count,
		}
	}

	return report
}

func isOfferedServiceValue(s string) bool {
	for _, marker := range offeredServiceValues {
		if strings.EqualFold(s, marker) {
			return true
		}
	}
	return false
}

// sortedKeys gives block iteration a stable order, so top lists break ties
// the same way on every run.
func sortedKeys(block schema.AttributeBlock) []string {
	keys := make([]string, 0, len(block))
	for key := range block {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
