// Package scoring aggregates raw 1-5 survey responses into per-domain and
// overall averages. Pure computation: no I/O, no shared mutable state.
package scoring

import (
	"math"
	"sort"

	"sbindex/internal/catalog"
	"sbindex/internal/domain"
	"sbindex/internal/model"
)

// Engine scores response sets against the loaded catalog
type Engine struct {
	catalog *catalog.Catalog
}

// NewEngine creates a scoring engine over a loaded catalog
func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// CalculateScore aggregates responses into a SurveyResult.
//
// Items listed in excludedSequences are dropped before partitioning. Scores
// outside 1-5 are silently omitted from the averages; range validation is the
// caller's job at the boundary. The overall average is the mean over every
// included item score, not a mean of domain means, so unequal domain item
// counts do not bias it.
func (e *Engine) CalculateScore(responses map[int]int, excludedSequences []int) model.SurveyResult {
	excluded := make(map[int]bool, len(excludedSequences))
	for _, seq := range excludedSequences {
		excluded[seq] = true
	}

	var filtered []model.SurveyItem
	for _, item := range e.catalog.Items() {
		if !excluded[item.Sequence] {
			filtered = append(filtered, item)
		}
	}

	// Domain set comes from the filtered catalog, not a hardcoded list, so
	// name variants in the source file still get scored.
	domainSet := make(map[string]bool)
	var domains []string
	for _, item := range filtered {
		if !domainSet[item.Domain] {
			domainSet[item.Domain] = true
			domains = append(domains, item.Domain)
		}
	}
	sort.Strings(domains)

	var domainScores []model.DomainScore
	var allScores []int
	for _, name := range domains {
		var scores []int
		var included []int
		for _, item := range filtered {
			if item.Domain != name {
				continue
			}
			score, ok := responses[item.Sequence]
			if !ok || score < 1 || score > 5 {
				continue
			}
			scores = append(scores, score)
			included = append(included, item.Sequence)
			allScores = append(allScores, score)
		}
		if len(scores) == 0 {
			continue // domains with no included items are omitted, not zero-filled
		}
		domainScores = append(domainScores, model.DomainScore{
			DomainName:        name,
			Average:           round2(mean(scores)),
			ItemCount:         len(scores),
			IncludedSequences: included,
		})
	}

	sort.SliceStable(domainScores, func(i, j int) bool {
		return domain.OrderIndex(domainScores[i].DomainName) < domain.OrderIndex(domainScores[j].DomainName)
	})

	overall := 0.0
	if len(allScores) > 0 {
		overall = round2(mean(allScores))
	}

	sortedExcluded := append([]int(nil), excludedSequences...)
	sort.Ints(sortedExcluded)

	return model.SurveyResult{
		OverallAverage:    overall,
		DomainScores:      domainScores,
		ItemsUsed:         len(allScores),
		ExcludedSequences: sortedExcluded,
	}
}

// CalculateWithSampleData scores the catalog's own sample-response column.
// Used by the startup self-test and the seeder.
func (e *Engine) CalculateWithSampleData(excludedSequences []int) model.SurveyResult {
	responses := make(map[int]int, len(e.catalog.Items()))
	for _, item := range e.catalog.Items() {
		responses[item.Sequence] = item.SampleResponse
	}
	return e.CalculateScore(responses, excludedSequences)
}

// SubCompetencyScores computes the 0-100 normalized average per
// sub-competency, in catalog insertion order. Sub-competencies with no
// included responses report a nil score.
func (e *Engine) SubCompetencyScores(responses map[int]int, excludedSequences []int) []model.SubCompetencyScore {
	excluded := make(map[int]bool, len(excludedSequences))
	for _, seq := range excludedSequences {
		excluded[seq] = true
	}

	seen := make(map[string]bool)
	var order []string
	for _, item := range e.catalog.Items() {
		if item.SubCompetency != "" && !seen[item.SubCompetency] {
			seen[item.SubCompetency] = true
			order = append(order, item.SubCompetency)
		}
	}

	var out []model.SubCompetencyScore
	for _, name := range order {
		var scores []int
		for _, item := range e.catalog.Items() {
			if item.SubCompetency != name || excluded[item.Sequence] {
				continue
			}
			if score, ok := responses[item.Sequence]; ok && score >= 1 && score <= 5 {
				scores = append(scores, score)
			}
		}
		entry := model.SubCompetencyScore{SubCompetency: name}
		if len(scores) > 0 {
			normalized := math.Round((mean(scores)-1)/4*100*10) / 10
			entry.Score = &normalized
		}
		out = append(out, entry)
	}
	return out
}

func mean(scores []int) float64 {
	sum := 0
	for _, s := range scores {
		sum += s
	}
	return float64(sum) / float64(len(scores))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
