package model

// DomainCombinedScore is the weighted survey+EEG blend for one domain
type DomainCombinedScore struct {
	DomainName       string  `json:"domainName" bson:"domainName"`
	SurveyScore      float64 `json:"surveyScore" bson:"surveyScore"`           // raw 1-5 mean
	SurveyNormalized float64 `json:"surveyNormalized" bson:"surveyNormalized"` // 0-100
	EEGScore         float64 `json:"eegScore" bson:"eegScore"`                 // 0-100, clamped
	CombinedScore    float64 `json:"combinedScore" bson:"combinedScore"`       // S_norm*wS + E*wE, clamped
	WeightSurvey     float64 `json:"weightSurvey" bson:"weightSurvey"`
	WeightEEG        float64 `json:"weightEEG" bson:"weightEEG"`
	Inconsistency    bool    `json:"inconsistency" bson:"inconsistency"` // |S_norm - E| >= 20
}

// CombinedSBIResult is the per-domain combined diagnosis
type CombinedSBIResult struct {
	SurveyOverall     float64               `json:"surveyOverall" bson:"surveyOverall"`         // 1-5
	SurveyNormalized  float64               `json:"surveyNormalized" bson:"surveyNormalized"`   // 0-100
	EEGMetrics        EEGDomainMetrics      `json:"eegMetrics" bson:"eegMetrics"`
	DomainScores      []DomainCombinedScore `json:"domainScores" bson:"domainScores"`           // canonical order
	OverallIndex      float64               `json:"overallIndex" bson:"overallIndex"`           // mean of combined scores
	InconsistencyFlag bool                  `json:"inconsistencyFlag" bson:"inconsistencyFlag"` // OR over domains
	ItemsUsed         int                   `json:"itemsUsed" bson:"itemsUsed"`
	ExcludedSequences []int                 `json:"excludedSequences" bson:"excludedSequences"`
	Message           string                `json:"message" bson:"message"`
}

// CombinedAnalysisResult is the simple aggregate-EEG combination: one blended
// index from the overall survey mean and a single EEG summary score.
type CombinedAnalysisResult struct {
	SurveyScore      float64       `json:"surveyScore"`      // 1-5 overall mean
	SurveyNormalized float64       `json:"surveyNormalized"` // 0-100
	EEGEngagement    *float64      `json:"eegEngagement,omitempty"`
	EEGFocus         *float64      `json:"eegFocus,omitempty"`
	CombinedIndex    float64       `json:"combinedIndex"` // 0-100
	DomainScores     []DomainScore `json:"domainScores"`
	Message          string        `json:"message"`
}
