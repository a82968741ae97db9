package model

// ExpectedItemCount is the size of the fixed survey item set.
const ExpectedItemCount = 96

// SurveyItem is one row of the fixed 96-item survey catalog
type SurveyItem struct {
	Sequence       int    `json:"sequence" bson:"sequence"`             // global sequence, 1..96
	Domain         string `json:"domain" bson:"domain"`                 // one of the 4 competency domains
	SubCompetency  string `json:"subCompetency" bson:"subCompetency"`   // e.g. 창업생태계이해
	SubElement     string `json:"subElement" bson:"subElement"`         // finer grouping within the sub-competency
	SubElementSeq  int    `json:"subElementSeq" bson:"subElementSeq"`   // sequence within the sub-element
	Prompt         string `json:"prompt" bson:"prompt"`                 // calibrated question text
	SampleResponse int    `json:"sampleResponse" bson:"sampleResponse"` // 1-5, used by self-test scoring
	Remark         string `json:"remark,omitempty" bson:"remark,omitempty"`
}

// CatalogValidation is the result of the startup integrity self-check:
// the loaded catalog must form a bijection onto 1..96.
type CatalogValidation struct {
	TotalCount      int   `json:"totalCount"`
	ExpectedFirst   int   `json:"expectedFirst"`
	ExpectedLast    int   `json:"expectedLast"`
	ActualSequences []int `json:"actualSequences"`
	Missing         []int `json:"missing"`
	Extra           []int `json:"extra"`
	IsValid         bool  `json:"isValid"`
}
