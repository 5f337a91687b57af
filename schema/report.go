package schema

// DistributionEntry is one value of a categorical field with its share of all submissions.
type DistributionEntry struct {
	Value      string  `json:"value"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type FacilityAnalysis struct {
	ConditionDistribution      []DistributionEntry `json:"condition_distribution"`
	OwnershipDistribution      []DistributionEntry `json:"ownership_distribution"`
	AssessmentTypeDistribution []DistributionEntry `json:"assessment_type_distribution"`
	HealthWorkersDistribution  []DistributionEntry `json:"health_workers_distribution"`
	ZoneDistribution           []DistributionEntry `json:"geopolitical_zone_distribution"`
}

// StateFunding is one state's accumulated funding amount.
type StateFunding struct {
	State  string  `json:"state"`
	Amount float64 `json:"amount"`
}

type FundingAnalysis struct {
	BHCPFFacilities           int            `json:"bhcpf_facilities"`
	BHCPFPercentage           float64        `json:"bhcpf_percentage"`
	ImpactFacilities          int            `json:"impact_facilities"`
	ImpactPercentage          float64        `json:"impact_percentage"`
	TotalFundingAmount        float64        `json:"total_funding_amount"`
	AverageFundingPerFacility float64        `json:"average_funding_per_facility"`
	FundingByState            []StateFunding `json:"funding_by_state"`
}

type InfrastructureAnalysis struct {
	FacilitiesWithPower      int     `json:"facilities_with_power"`
	PowerPercentage          float64 `json:"power_percentage"`
	FacilitiesWithWater      int     `json:"facilities_with_water"`
	WaterPercentage          float64 `json:"water_percentage"`
	FacilitiesWithInternet   int     `json:"facilities_with_internet"`
	InternetPercentage       float64 `json:"internet_percentage"`
	FacilitiesWithPharmacy   int     `json:"facilities_with_pharmacy"`
	PharmacyPercentage       float64 `json:"pharmacy_percentage"`
	RevitalizedFacilities    int     `json:"revitalized_facilities"`
	RevitalizationPercentage float64 `json:"revitalization_percentage"`
}

// StaffTypeCount is one staff cadre with its total head count across facilities.
type StaffTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

type HumanResourcesAnalysis struct {
	TotalStaff              int              `json:"total_staff"`
	FacilitiesWithStaff     int              `json:"facilities_with_staff"`
	AverageStaffPerFacility float64          `json:"average_staff_per_facility"`
	StaffByType             []StaffTypeCount `json:"staff_by_type"`
}

// ServiceCount is one offered service with the number of facilities offering it.
type ServiceCount struct {
	Service    string  `json:"service"`
	Facilities int     `json:"facilities"`
	Percentage float64 `json:"percentage"`
}

type ServicesUtilization struct {
	TotalPatients              int            `json:"total_patients"`
	AveragePatientsPerFacility float64        `json:"average_patients_per_facility"`
	TopServicesOffered         []ServiceCount `json:"top_services_offered"`
}

// CategoryScore is the average satisfaction score of one survey question category.
type CategoryScore struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

type PatientSatisfaction struct {
	AverageScore     float64                  `json:"average_score"`
	TotalResponses   int                      `json:"total_responses"`
	ScoresByCategory map[string]CategoryScore `json:"scores_by_category"`
}

type ReportSummary struct {
	TotalFacilities            int     `json:"total_facilities"`
	FacilitiesWithCompleteData int     `json:"facilities_with_complete_data"`
	DataCompletenessPercentage float64 `json:"data_completeness_percentage"`
}

// AnalyticsReport is the full composed output of one aggregation pass.
type AnalyticsReport struct {
	FacilityAnalysis       FacilityAnalysis       `json:"facility_analysis"`
	FundingAnalysis        FundingAnalysis        `json:"funding_analysis"`
	InfrastructureAnalysis InfrastructureAnalysis `json:"infrastructure_analysis"`
	HumanResourcesAnalysis HumanResourcesAnalysis `json:"human_resources_analysis"`
	ServicesUtilization    ServicesUtilization    `json:"services_utilization"`
	PatientSatisfaction    PatientSatisfaction    `json:"patient_satisfaction"`
	Summary                ReportSummary          `json:"summary"`
}
