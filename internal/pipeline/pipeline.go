// Package pipeline sequences a full diagnosis run: scoring, EEG fetch,
// combination, interpretation, knowledge search. Thin glue only; the stages
// carry the business logic. Each stage's wall-clock duration is recorded and
// the first failure short-circuits with a stage-tagged error.
package pipeline

import (
	"context"
	"fmt"
	"time"

	"sbindex/internal/analysis"
	"sbindex/internal/coupon"
	"sbindex/internal/eeg"
	"sbindex/internal/interpret"
	"sbindex/internal/model"
	"sbindex/internal/scoring"
)

// Stage keys in Result.TimingsMS
const (
	StageScoring   = "1_survey_scoring"
	StageEEG       = "2_mock_eeg"
	StageCombined  = "3_combined_sbi"
	StageKnowledge = "4_db_search"
	StageTotal     = "total"
)

// KnowledgeSearcher finds stored blog/youtube rows for the given keywords.
// Implemented by the knowledge service; nil disables the search stage.
type KnowledgeSearcher interface {
	SearchForReport(ctx context.Context, keywords []string, limitPerSource int) (blog, youtube []model.KnowledgeRow, err error)
}

// Broadcaster receives stage-completion events. Implemented by the WS hub.
type Broadcaster interface {
	PipelineStage(stage string, elapsedMS float64)
}

// Result is one end-to-end diagnosis run
type Result struct {
	Success          bool                    `json:"success"`
	Error            string                  `json:"error,omitempty"`
	TimingsMS        map[string]float64      `json:"timingsMs"`
	Survey           model.SurveyResult      `json:"survey"`
	Combined         model.CombinedSBIResult `json:"combined"`
	Report           model.SBIReport         `json:"report"`
	KnowledgeBlog    []model.KnowledgeRef    `json:"knowledgeBlog,omitempty"`
	KnowledgeYoutube []model.KnowledgeRef    `json:"knowledgeYoutube,omitempty"`
}

// Runner wires the stages together
type Runner struct {
	scoring     *scoring.Engine
	provider    eeg.Provider
	knowledge   KnowledgeSearcher
	broadcaster Broadcaster
}

// NewRunner creates a pipeline runner. knowledge may be nil.
func NewRunner(engine *scoring.Engine, provider eeg.Provider, knowledge KnowledgeSearcher) *Runner {
	return &Runner{scoring: engine, provider: provider, knowledge: knowledge}
}

// SetBroadcaster injects the progress broadcaster
func (r *Runner) SetBroadcaster(b Broadcaster) {
	r.broadcaster = b
}

// Run executes one diagnosis. A knowledge-search failure is absorbed (the
// report simply loses its evidence snippets); every other stage failure stops
// the run with a stage-tagged error.
func (r *Runner) Run(ctx context.Context, responses map[int]int, excludedSequences []int, profile *model.UserProfile) Result {
	out := Result{TimingsMS: make(map[string]float64)}
	t0 := time.Now()

	// 1. survey scoring
	t := time.Now()
	survey := r.scoring.CalculateScore(responses, excludedSequences)
	r.finishStage(&out, StageScoring, t)
	out.Survey = survey

	// 2. EEG metrics
	t = time.Now()
	if r.provider == nil {
		out.Error = fmt.Sprintf("stage %s: no EEG provider configured", StageEEG)
		r.finishStage(&out, StageEEG, t)
		return out
	}
	metrics := r.provider.Metrics()
	r.finishStage(&out, StageEEG, t)

	// 3. combined index + interpretation
	t = time.Now()
	combined := analysis.CombineSBI(survey, metrics)
	report := interpret.GenerateReport(combined.DomainScores, combined.InconsistencyFlag, profile)
	r.finishStage(&out, StageCombined, t)
	out.Combined = combined

	// 4. knowledge search for evidence snippets and recommendations
	t = time.Now()
	if r.knowledge != nil {
		keywords := coupon.SearchKeywordsFor(combined.DomainScores)
		blog, youtube, err := r.knowledge.SearchForReport(ctx, keywords, 3)
		if err == nil {
			interpret.AugmentWithKnowledge(&report, append(append([]model.KnowledgeRow(nil), blog...), youtube...))
			out.KnowledgeBlog = refs(blog)
			out.KnowledgeYoutube = refs(youtube)
		}
	}
	r.finishStage(&out, StageKnowledge, t)
	out.Report = report

	out.Success = true
	out.TimingsMS[StageTotal] = msSince(t0)
	return out
}

func (r *Runner) finishStage(out *Result, stage string, start time.Time) {
	elapsed := msSince(start)
	out.TimingsMS[stage] = elapsed
	if r.broadcaster != nil {
		r.broadcaster.PipelineStage(stage, elapsed)
	}
}

func refs(rows []model.KnowledgeRow) []model.KnowledgeRef {
	out := make([]model.KnowledgeRef, 0, len(rows))
	for _, r := range rows {
		out = append(out, model.KnowledgeRef{Title: r.Title, URL: r.URL})
	}
	return out
}

func msSince(t time.Time) float64 {
	return float64(time.Since(t).Microseconds()) / 1000.0
}
