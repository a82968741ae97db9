// Package analysis blends survey scores with EEG metrics into the combined
// SBI index. Two modes exist: the per-domain weighted form (CombineSBI) and a
// simple aggregate form (RunCombinedAnalysis) for when only a single EEG
// summary score is available.
package analysis

import (
	"math"

	"sbindex/internal/domain"
	"sbindex/internal/model"
)

// InconsistencyThreshold is the survey-vs-EEG gap, on the 0-100 scale, at
// which a domain is flagged as inconsistent.
const InconsistencyThreshold = 20.0

// Default weights for the simple aggregate combination mode
const (
	DefaultSurveyWeight = 0.6
	DefaultEEGWeight    = 0.4
)

const (
	msgCombinedSBI         = "설문(S)과 뇌파(E)를 영역별 가중치로 결합한 SBI 통합 지수입니다."
	msgInconsistencySuffix = " 설문-뇌파 불일치 역량이 있어 리포트 생성을 권장합니다."
	msgSurveyOnly          = "설문(SBI) 점수만 반영된 종합 지수입니다. 뇌파 데이터를 추가하면 결합 지수가 산출됩니다."
	msgSimpleCombined      = "설문(SBI)과 뇌파(EEG) 데이터가 결합된 종합 지수입니다."
)

// Normalize rescales a 1-5 Likert mean to 0-100. Values outside 1-5 yield
// 0.0; that is the documented fallback for empty results, not an error.
func Normalize(score float64) float64 {
	if math.IsNaN(score) || score < 1 || score > 5 {
		return 0.0
	}
	return round2((score - 1) / 4.0 * 100.0)
}

// CombineSBI blends per-domain survey averages with domain-aligned EEG
// metrics using the fixed weight table and derives the overall index.
//
// Domains whose name resolves to no canonical domain are skipped entirely
// rather than blended with default weights. A domain is flagged inconsistent
// when its normalized survey score and EEG score differ by 20 points or more;
// the result's flag is the OR over all domains. With no scorable domains the
// overall index falls back to the normalized overall survey mean.
func CombineSBI(survey model.SurveyResult, eeg model.EEGDomainMetrics) model.CombinedSBIResult {
	var combined []model.DomainCombinedScore
	inconsistencyFlag := false

	for _, ds := range survey.DomainScores {
		c := domain.Resolve(ds.DomainName)
		if c == domain.None {
			continue
		}
		wS, wE := c.Weights()

		sNorm := Normalize(ds.Average)
		e := c.EEGScore(eeg)
		if math.IsNaN(e) {
			e = 0
		}
		e = clamp(e, 0, 100)

		score := clamp(round2(sNorm*wS+e*wE), 0, 100)
		inconsistent := math.Abs(sNorm-e) >= InconsistencyThreshold
		if inconsistent {
			inconsistencyFlag = true
		}

		combined = append(combined, model.DomainCombinedScore{
			DomainName:       ds.DomainName,
			SurveyScore:      ds.Average,
			SurveyNormalized: sNorm,
			EEGScore:         e,
			CombinedScore:    score,
			WeightSurvey:     wS,
			WeightEEG:        wE,
			Inconsistency:    inconsistent,
		})
	}

	surveyNorm := Normalize(survey.OverallAverage)
	overall := surveyNorm
	if len(combined) > 0 {
		sum := 0.0
		for _, d := range combined {
			sum += d.CombinedScore
		}
		overall = round2(sum / float64(len(combined)))
	}
	overall = clamp(overall, 0, 100)

	message := msgCombinedSBI
	if inconsistencyFlag {
		message += msgInconsistencySuffix
	}

	return model.CombinedSBIResult{
		SurveyOverall:     survey.OverallAverage,
		SurveyNormalized:  surveyNorm,
		EEGMetrics:        eeg,
		DomainScores:      combined,
		OverallIndex:      overall,
		InconsistencyFlag: inconsistencyFlag,
		ItemsUsed:         survey.ItemsUsed,
		ExcludedSequences: survey.ExcludedSequences,
		Message:           message,
	}
}

// RunCombinedAnalysis blends the overall survey mean with a single aggregate
// EEG score. The EEG score is selected by precedence: a valid engagement
// value, then a valid focus value, then a heuristic estimate from the
// alpha+beta bands ((a+b)*10, clamped), then the 50.0 midpoint. A nil
// brainwave input yields the survey-only index with its own message.
func RunCombinedAnalysis(survey model.SurveyResult, brainwave *model.BrainwaveMetrics, surveyWeight, eegWeight float64) model.CombinedAnalysisResult {
	sbiNorm := Normalize(survey.OverallAverage)

	result := model.CombinedAnalysisResult{
		SurveyScore:      survey.OverallAverage,
		SurveyNormalized: sbiNorm,
		DomainScores:     survey.DomainScores,
	}

	if brainwave == nil {
		result.CombinedIndex = sbiNorm
		result.Message = msgSurveyOnly
		return result
	}

	eng := brainwave.Engagement
	foc := brainwave.Focus
	var eegScore float64
	switch {
	case eng != nil && *eng >= 0 && *eng <= 100:
		eegScore = *eng
	case foc != nil && *foc >= 0 && *foc <= 100:
		eegScore = *foc
	default:
		a, b := 0.0, 0.0
		if brainwave.Alpha != nil {
			a = *brainwave.Alpha
		}
		if brainwave.Beta != nil {
			b = *brainwave.Beta
		}
		if a+b > 0 {
			eegScore = clamp((a+b)*10, 0, 100)
		} else {
			eegScore = 50.0 // no usable signal at all
		}
		if eng == nil {
			v := eegScore
			eng = &v
		}
		if foc == nil {
			v := eegScore
			foc = &v
		}
	}

	totalWeight := surveyWeight + eegWeight
	if totalWeight <= 0 {
		totalWeight = 1.0
	}
	index := round2((surveyWeight*sbiNorm + eegWeight*eegScore) / totalWeight)

	result.EEGEngagement = eng
	result.EEGFocus = foc
	result.CombinedIndex = clamp(index, 0, 100)
	result.Message = msgSimpleCombined
	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(hi, math.Max(lo, v))
}
