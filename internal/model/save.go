package model

import "time"

// SurveySave is a stored set of raw survey responses for a user.
// Response keys are stringified sequence numbers: BSON maps require string
// keys, and the JSON form is identical either way.
type SurveySave struct {
	ID                string         `json:"id" bson:"_id,omitempty"`
	UserEmail         string         `json:"userEmail" bson:"userEmail"`
	Title             string         `json:"title,omitempty" bson:"title,omitempty"`
	Responses         map[string]int `json:"responses" bson:"responses"`
	ExcludedSequences []int          `json:"excludedSequences,omitempty" bson:"excludedSequences,omitempty"`
	CreatedAt         time.Time      `json:"createdAt" bson:"createdAt"`
}

// EEGSave is a stored EEG capture for a user
type EEGSave struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	UserEmail string           `json:"userEmail" bson:"userEmail"`
	Title     string           `json:"title,omitempty" bson:"title,omitempty"`
	Metrics   EEGDomainMetrics `json:"metrics" bson:"metrics"`
	CreatedAt time.Time        `json:"createdAt" bson:"createdAt"`
}

// DiagnosisRecord is one persisted end-to-end diagnosis run
type DiagnosisRecord struct {
	ID        string            `json:"id" bson:"_id,omitempty"`
	UserEmail string            `json:"userEmail" bson:"userEmail"`
	Survey    SurveyResult      `json:"survey" bson:"survey"`
	Combined  CombinedSBIResult `json:"combined" bson:"combined"`
	Report    SBIReport         `json:"report" bson:"report"`
	CreatedAt time.Time         `json:"createdAt" bson:"createdAt"`
}
