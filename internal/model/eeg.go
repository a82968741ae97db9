package model

// EEGDomainMetrics holds the four domain-aligned EEG indicators on a 0-100
// scale, one per competency domain. Produced by an eeg.Provider per request.
type EEGDomainMetrics struct {
	Motivation     float64 `json:"motivation" bson:"motivation"`         // frontal asymmetry index
	Resilience     float64 `json:"resilience" bson:"resilience"`         // alpha recovery speed
	Innovation     float64 `json:"innovation" bson:"innovation"`         // SMR/beta coherence
	Responsibility float64 `json:"responsibility" bson:"responsibility"` // prefrontal stability
}

// BrainwaveMetrics is the aggregate-summary EEG form used by the simple
// combination mode. Every field may be absent.
type BrainwaveMetrics struct {
	Alpha      *float64 `json:"alpha,omitempty" bson:"alpha,omitempty"`
	Beta       *float64 `json:"beta,omitempty" bson:"beta,omitempty"`
	Theta      *float64 `json:"theta,omitempty" bson:"theta,omitempty"`
	Delta      *float64 `json:"delta,omitempty" bson:"delta,omitempty"`
	Engagement *float64 `json:"engagement,omitempty" bson:"engagement,omitempty"` // 0-100
	Focus      *float64 `json:"focus,omitempty" bson:"focus,omitempty"`           // 0-100
}
