package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	SubmissionCollection = "submissions"
)

// SubmissionStatus describes the intake lifecycle of a submission.
type SubmissionStatus string

const (
	SubmissionPending SubmissionStatus = "pending"
	SubmissionSynced  SubmissionStatus = "synced"
	SubmissionFailed  SubmissionStatus = "failed"
)

// SyncStatus describes the upstream sync lifecycle of a submission.
type SyncStatus string

const (
	SyncPending SyncStatus = "pending"
	SyncSyncing SyncStatus = "syncing"
	SyncSynced  SyncStatus = "synced"
	SyncFailed  SyncStatus = "failed"
)

// AttributeBlock is an open mapping collected from a dynamic form section.
// Keys and value types are not fixed; consumers must parse defensively.
type AttributeBlock map[string]interface{}

// Submission is one facility assessment form submitted by a field officer.
type Submission struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FormID      string             `json:"form_id" bson:"form_id,omitempty"`
	CollectorID uint               `json:"collector_id" bson:"collector_id"`

	// PFMO identification
	PFMOName         string `json:"pfmo_name" bson:"pfmo_name,omitempty"`
	PFMOPhone        string `json:"pfmo_phone" bson:"pfmo_phone,omitempty"`
	GeopoliticalZone string `json:"geopolitical_zone" bson:"geopolitical_zone,omitempty"`
	State            string `json:"state" bson:"state,omitempty"`
	LGA              string `json:"lga" bson:"lga,omitempty"`
	Ward             string `json:"ward" bson:"ward,omitempty"`

	// Health facility information
	FacilityName      string `json:"facility_name" bson:"facility_name,omitempty"`
	FacilityUID       string `json:"facility_uid" bson:"facility_uid,omitempty"`
	AssessmentType    string `json:"assessment_type" bson:"assessment_type,omitempty"`
	HasHealthWorkers  string `json:"has_health_workers" bson:"has_health_workers,omitempty"`
	FacilityCondition string `json:"facility_condition" bson:"facility_condition,omitempty"`
	OwnershipType     string `json:"ownership_type" bson:"ownership_type,omitempty"`
	OwnershipSpecify  string `json:"ownership_specify" bson:"ownership_specify,omitempty"`

	// GPS coordinates; absent when the device could not get a fix
	Latitude  *float64 `json:"latitude" bson:"latitude,omitempty"`
	Longitude *float64 `json:"longitude" bson:"longitude,omitempty"`
	Altitude  *float64 `json:"altitude" bson:"altitude,omitempty"`
	Accuracy  *float64 `json:"accuracy" bson:"accuracy,omitempty"`

	FacilityImagePath string `json:"facility_image_path" bson:"facility_image_path,omitempty"`

	// Officer-in-charge
	OICFirstName string `json:"oic_first_name" bson:"oic_first_name,omitempty"`
	OICLastName  string `json:"oic_last_name" bson:"oic_last_name,omitempty"`
	OICGender    string `json:"oic_gender" bson:"oic_gender,omitempty"`
	OICPhone     string `json:"oic_phone" bson:"oic_phone,omitempty"`
	OICEmail     string `json:"oic_email" bson:"oic_email,omitempty"`

	// Dynamic form sections
	FundingData             AttributeBlock `json:"funding_data" bson:"funding_data,omitempty"`
	ImpactFundingData       AttributeBlock `json:"impact_funding_data" bson:"impact_funding_data,omitempty"`
	InfrastructureData      AttributeBlock `json:"infrastructure_data" bson:"infrastructure_data,omitempty"`
	HumanResourcesData      AttributeBlock `json:"human_resources_data" bson:"human_resources_data,omitempty"`
	ServicesData            AttributeBlock `json:"services_data" bson:"services_data,omitempty"`
	CommoditiesData         AttributeBlock `json:"commodities_data" bson:"commodities_data,omitempty"`
	SatisfactionSurveyData  AttributeBlock `json:"satisfaction_survey_data" bson:"satisfaction_survey_data,omitempty"`
	FinancialValidationData AttributeBlock `json:"financial_validation_data" bson:"financial_validation_data,omitempty"`

	// Issue escalation and general comments
	Issues   string `json:"issues" bson:"issues,omitempty"`
	Comments string `json:"comments" bson:"comments,omitempty"`

	SubmissionStatus SubmissionStatus `json:"submission_status" bson:"submission_status"`
	SyncStatus       SyncStatus       `json:"sync_status" bson:"sync_status"`
	IsSynced         bool             `json:"is_synced" bson:"is_synced"`

	RawSubmissionData AttributeBlock `json:"-" bson:"raw_submission_data,omitempty"`

	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
	SyncedAt  *time.Time `json:"synced_at" bson:"synced_at,omitempty"`
}

// Location is a geographic point on a submission.
type Location struct {
	Latitude  float64 `json:"latitude" bson:"latitude"`
	Longitude float64 `json:"longitude" bson:"longitude"`
	State     string  `json:"state,omitempty" bson:"state,omitempty"`
	LGA       string  `json:"lga,omitempty" bson:"lga,omitempty"`
	Country   string  `json:"country,omitempty" bson:"country,omitempty"`
}
