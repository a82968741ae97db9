// Package domain resolves competency domain names to their canonical identity.
// The catalog is authored by hand and domain names drift (whitespace, embedded
// newlines, trailing "역량"), so every consumer matches through this package:
// scoring order, weight lookup, interpretation tables, and coupon keywords all
// agree on which canonical domain a name belongs to.
package domain

import (
	"strings"

	"sbindex/internal/model"
)

// Canonical identifies one of the four fixed competency domains
type Canonical int

const (
	None Canonical = iota
	Motivation
	Resilience
	Innovation
	Responsibility
)

// All lists the canonical domains in presentation order
var All = []Canonical{Motivation, Resilience, Innovation, Responsibility}

type descriptor struct {
	name         string // canonical short name
	displayName  string // presentation name used by catalog and reports
	key          string // concept key for keyword tables
	keywords     []string
	weightSurvey float64
	weightEEG    float64
}

var descriptors = map[Canonical]descriptor{
	Motivation: {
		name:         "창업공감 및 동기부여",
		displayName:  "창업공감 및 동기부여 역량",
		key:          "창업공감",
		keywords:     []string{"창업공감", "동기부여"},
		weightSurvey: 0.7,
		weightEEG:    0.3,
	},
	Resilience: {
		name:         "창업위기감수 및 극복",
		displayName:  "창업위기감수 및 극복 역량",
		key:          "위기감수",
		keywords:     []string{"위기감수", "극복"},
		weightSurvey: 0.5,
		weightEEG:    0.5,
	},
	Innovation: {
		name:         "창업두뇌활용 및 계발",
		displayName:  "창업두뇌활용 및 계발 역량",
		key:          "두뇌활용",
		keywords:     []string{"두뇌활용", "계발"},
		weightSurvey: 0.6,
		weightEEG:    0.4,
	},
	Responsibility: {
		name:         "주체적책임 및 창업의식",
		displayName:  "주체적책임 및 창업의식 역량",
		key:          "주체적",
		keywords:     []string{"주체적", "창업의식"},
		weightSurvey: 0.8,
		weightEEG:    0.2,
	},
}

// Normalize unifies whitespace and embedded newlines for name comparison
func Normalize(name string) string {
	s := strings.ReplaceAll(name, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.Join(strings.Fields(s), " ")
}

// Resolve maps a raw domain name to its canonical domain: exact normalized
// match first, then ordered keyword fallback. Returns None when neither
// matches; callers treat that as fail-closed and skip the domain.
func Resolve(raw string) Canonical {
	n := Normalize(raw)
	if n == "" {
		return None
	}
	for _, c := range All {
		d := descriptors[c]
		if n == d.name || n == d.displayName {
			return c
		}
	}
	for _, c := range All {
		for _, kw := range descriptors[c].keywords {
			if strings.Contains(n, kw) {
				return c
			}
		}
	}
	return None
}

// Name returns the canonical short name
func (c Canonical) Name() string {
	return descriptors[c].name
}

// DisplayName returns the presentation name ("... 역량")
func (c Canonical) DisplayName() string {
	return descriptors[c].displayName
}

// Key returns the concept key used by keyword tables
func (c Canonical) Key() string {
	return descriptors[c].key
}

// Weights returns the fixed survey/EEG weight pair for the domain
func (c Canonical) Weights() (weightSurvey, weightEEG float64) {
	d := descriptors[c]
	return d.weightSurvey, d.weightEEG
}

// EEGScore picks the domain-aligned indicator out of the metrics set
func (c Canonical) EEGScore(m model.EEGDomainMetrics) float64 {
	switch c {
	case Motivation:
		return m.Motivation
	case Resilience:
		return m.Resilience
	case Innovation:
		return m.Innovation
	case Responsibility:
		return m.Responsibility
	}
	return 0
}

// OrderIndex returns the presentation position of a raw domain name.
// Unresolvable names sort last.
func OrderIndex(raw string) int {
	c := Resolve(raw)
	if c == None {
		return len(All)
	}
	for i, d := range All {
		if d == c {
			return i
		}
	}
	return len(All)
}
