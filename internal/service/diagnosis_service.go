package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"

	"sbindex/internal/analysis"
	"sbindex/internal/cache"
	"sbindex/internal/catalog"
	"sbindex/internal/coupon"
	"sbindex/internal/eeg"
	"sbindex/internal/interpret"
	"sbindex/internal/model"
	"sbindex/internal/pipeline"
	"sbindex/internal/repository"
	"sbindex/internal/scoring"
)

// Diagnosis is the full JSON payload of one immediate diagnosis call
type Diagnosis struct {
	Combined             model.CombinedSBIResult    `json:"combined"`
	Report               model.SBIReport            `json:"report"`
	SubCompetencyScores  []model.SubCompetencyScore `json:"subCompetencyScores"`
	CouponRecommendation coupon.Recommendation      `json:"couponRecommendation"`
}

// DiagnosisService runs the scoring/combination/interpretation flow behind
// the web boundary. It validates inputs up front; the engines themselves
// never reject.
type DiagnosisService struct {
	catalog       *catalog.Catalog
	scoring       *scoring.Engine
	provider      eeg.Provider
	runner        *pipeline.Runner
	knowledge     *KnowledgeService
	diagnosisRepo repository.DiagnosisRepo
	resultCache   cache.ResultCache

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(
	cat *catalog.Catalog,
	engine *scoring.Engine,
	provider eeg.Provider,
	runner *pipeline.Runner,
	knowledge *KnowledgeService,
	diagnosisRepo repository.DiagnosisRepo,
	resultCache cache.ResultCache,
	seed int64,
) *DiagnosisService {
	return &DiagnosisService{
		catalog:       cat,
		scoring:       engine,
		provider:      provider,
		runner:        runner,
		knowledge:     knowledge,
		diagnosisRepo: diagnosisRepo,
		resultCache:   resultCache,
		rng:           rand.New(rand.NewSource(seed)),
	}
}

// ValidateRequest rejects malformed scoring input before any computation:
// unknown sequence numbers and out-of-range scores are hard errors here,
// never coerced downstream.
func (s *DiagnosisService) ValidateRequest(responses map[int]int, excludedSequences []int) error {
	for seq, score := range responses {
		if _, ok := s.catalog.GetBySequence(seq); !ok {
			return fmt.Errorf("unknown item sequence %d in responses", seq)
		}
		if score < 1 || score > 5 {
			return fmt.Errorf("sequence %d: score %d is outside the 1-5 range", seq, score)
		}
	}
	for _, seq := range excludedSequences {
		if _, ok := s.catalog.GetBySequence(seq); !ok {
			return fmt.Errorf("unknown item sequence %d in excluded list", seq)
		}
	}
	return nil
}

// Score aggregates a validated response set into a SurveyResult
func (s *DiagnosisService) Score(responses map[int]int, excludedSequences []int) (model.SurveyResult, error) {
	if err := s.ValidateRequest(responses, excludedSequences); err != nil {
		return model.SurveyResult{}, err
	}
	return s.scoring.CalculateScore(responses, excludedSequences), nil
}

// AnalyzeCombined scores the responses and blends the overall mean with an
// aggregate brainwave summary (simple combination mode).
func (s *DiagnosisService) AnalyzeCombined(responses map[int]int, excludedSequences []int, brainwave *model.BrainwaveMetrics, surveyWeight, eegWeight float64) (model.CombinedAnalysisResult, error) {
	if err := s.ValidateRequest(responses, excludedSequences); err != nil {
		return model.CombinedAnalysisResult{}, err
	}
	survey := s.scoring.CalculateScore(responses, excludedSequences)
	return analysis.RunCombinedAnalysis(survey, brainwave, surveyWeight, eegWeight), nil
}

// AnalyzeSBI runs the immediate per-domain diagnosis: scoring, EEG fetch,
// weighted combination, interpretation, sub-competency breakdown and the
// coupon recommendation.
func (s *DiagnosisService) AnalyzeSBI(ctx context.Context, responses map[int]int, excludedSequences []int, profile *model.UserProfile) (*Diagnosis, error) {
	if err := s.ValidateRequest(responses, excludedSequences); err != nil {
		return nil, err
	}

	survey := s.scoring.CalculateScore(responses, excludedSequences)
	metrics := s.provider.Metrics()
	combined := analysis.CombineSBI(survey, metrics)
	report := interpret.GenerateReport(combined.DomainScores, combined.InconsistencyFlag, profile)

	var blog, youtube []model.KnowledgeRow
	if s.knowledge != nil {
		keywords := coupon.SearchKeywordsFor(combined.DomainScores)
		var err error
		blog, youtube, err = s.knowledge.SearchForReport(ctx, keywords, 5)
		if err != nil {
			// degraded report, not a failed diagnosis
			log.Printf("knowledge search failed: %v", err)
			blog, youtube = nil, nil
		}
		interpret.AugmentWithKnowledge(&report, append(append([]model.KnowledgeRow(nil), blog...), youtube...))
	}

	s.mu.Lock()
	rec := coupon.Recommend(combined, blog, youtube, s.rng)
	s.mu.Unlock()

	return &Diagnosis{
		Combined:             combined,
		Report:               report,
		SubCompetencyScores:  s.scoring.SubCompetencyScores(responses, excludedSequences),
		CouponRecommendation: rec,
	}, nil
}

// RunPipeline executes the full orchestration for a user and persists the
// outcome. Persistence failures are logged, not returned: the diagnosis
// itself succeeded and the caller still gets it.
func (s *DiagnosisService) RunPipeline(ctx context.Context, userEmail string, responses map[int]int, excludedSequences []int, profile *model.UserProfile) (pipeline.Result, error) {
	if err := s.ValidateRequest(responses, excludedSequences); err != nil {
		return pipeline.Result{}, err
	}

	result := s.runner.Run(ctx, responses, excludedSequences, profile)
	if !result.Success {
		return result, nil
	}

	record := &model.DiagnosisRecord{
		UserEmail: userEmail,
		Survey:    result.Survey,
		Combined:  result.Combined,
		Report:    result.Report,
	}
	if s.diagnosisRepo != nil {
		if _, err := s.diagnosisRepo.Create(ctx, record); err != nil {
			log.Printf("diagnosis persist failed for %s: %v", userEmail, err)
		}
	}
	if s.resultCache != nil {
		if err := s.resultCache.SetLatest(ctx, record); err != nil {
			log.Printf("diagnosis cache write failed for %s: %v", userEmail, err)
		}
	}
	return result, nil
}

// Latest returns a user's most recent diagnosis, cache first
func (s *DiagnosisService) Latest(ctx context.Context, userEmail string) (*model.DiagnosisRecord, error) {
	if s.resultCache != nil {
		record, err := s.resultCache.GetLatest(ctx, userEmail)
		if err != nil {
			log.Printf("diagnosis cache read failed for %s: %v", userEmail, err)
		} else if record != nil {
			return record, nil
		}
	}
	if s.diagnosisRepo == nil {
		return nil, nil
	}
	return s.diagnosisRepo.GetLatestByUser(ctx, userEmail)
}

// CatalogItems exposes the loaded item set for the catalog endpoints
func (s *DiagnosisService) CatalogItems() []model.SurveyItem {
	return s.catalog.Items()
}

// CatalogValidation runs the startup integrity self-check
func (s *DiagnosisService) CatalogValidation() model.CatalogValidation {
	return s.catalog.Validate()
}
