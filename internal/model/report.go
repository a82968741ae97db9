package model

// UserProfile carries optional personal context for report phrasing
type UserProfile struct {
	Name          string `json:"name,omitempty" bson:"name,omitempty"`
	Gender        string `json:"gender,omitempty" bson:"gender,omitempty"`
	Age           *int   `json:"age,omitempty" bson:"age,omitempty"`
	Occupation    string `json:"occupation,omitempty" bson:"occupation,omitempty"`
	SleepHours    string `json:"sleepHours,omitempty" bson:"sleepHours,omitempty"`
	MealHabit     string `json:"mealHabit,omitempty" bson:"mealHabit,omitempty"`
	BowelHabit    string `json:"bowelHabit,omitempty" bson:"bowelHabit,omitempty"`
	ExerciseHabit string `json:"exerciseHabit,omitempty" bson:"exerciseHabit,omitempty"`
}

// DomainReportSection is the interpretation for one domain: keyword glossary,
// band text, and (for the weak band) remediation references.
type DomainReportSection struct {
	DomainName        string   `json:"domainName" bson:"domainName"`
	CombinedScore     float64  `json:"combinedScore" bson:"combinedScore"`
	Interpretation    string   `json:"interpretation" bson:"interpretation"`
	RecommendedStages []string `json:"recommendedStages,omitempty" bson:"recommendedStages,omitempty"`
	RecommendedLaws   []string `json:"recommendedLaws,omitempty" bson:"recommendedLaws,omitempty"`
	Inconsistency     bool     `json:"inconsistency" bson:"inconsistency"`
	SubElements       []string `json:"subElements,omitempty" bson:"subElements,omitempty"`
	Evidence          string   `json:"evidence,omitempty" bson:"evidence,omitempty"` // knowledge-search snippet
}

// SBIReport is the full narrative interpretation of a combined diagnosis
type SBIReport struct {
	Summary                     string                `json:"summary" bson:"summary"`
	Sections                    []DomainReportSection `json:"sections" bson:"sections"` // canonical order
	InconsistencyInterpretation string                `json:"inconsistencyInterpretation,omitempty" bson:"inconsistencyInterpretation,omitempty"`
	BrainStages                 []string              `json:"brainStages" bson:"brainStages"` // 5-stage reference list
	BOSLaws                     []string              `json:"bosLaws" bson:"bosLaws"`         // 5 practice principles
}
