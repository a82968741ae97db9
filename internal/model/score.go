package model

// DomainScore is the survey average for one competency domain
type DomainScore struct {
	DomainName        string  `json:"domainName" bson:"domainName"`
	Average           float64 `json:"average" bson:"average"` // mean of raw 1-5 scores, 2 decimals
	ItemCount         int     `json:"itemCount" bson:"itemCount"`
	IncludedSequences []int   `json:"includedSequences" bson:"includedSequences"`
}

// SurveyResult is the aggregate of one scoring call. Immutable once built.
type SurveyResult struct {
	OverallAverage    float64       `json:"overallAverage" bson:"overallAverage"` // mean of all included scores, 0.0 if none
	DomainScores      []DomainScore `json:"domainScores" bson:"domainScores"`     // fixed presentation order
	ItemsUsed         int           `json:"itemsUsed" bson:"itemsUsed"`
	ExcludedSequences []int         `json:"excludedSequences" bson:"excludedSequences"` // sorted ascending
}

// SubCompetencyScore is the normalized average for one sub-competency,
// emitted alongside a diagnosis for the breakdown table.
type SubCompetencyScore struct {
	SubCompetency string   `json:"subCompetency" bson:"subCompetency"`
	Score         *float64 `json:"score" bson:"score"` // 0-100, nil when no included items
}
