package analysis

import (
	"math"
	"strings"
	"testing"

	"sbindex/internal/model"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  float64
	}{
		{"minimum", 1.0, 0.0},
		{"midpoint", 3.0, 50.0},
		{"maximum", 5.0, 100.0},
		{"fractional", 3.5, 62.5},
		{"below range", 0.5, 0.0},
		{"zero", 0.0, 0.0},
		{"above range", 5.1, 0.0},
		{"nan", math.NaN(), 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Normalize(tt.score); got != tt.want {
				t.Errorf("Normalize(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func surveyFixture() model.SurveyResult {
	return model.SurveyResult{
		OverallAverage: 4.0,
		DomainScores: []model.DomainScore{
			{DomainName: "창업공감 및 동기부여", Average: 4.0, ItemCount: 24},
			{DomainName: "창업위기감수 및 극복", Average: 3.0, ItemCount: 24},
			{DomainName: "창업두뇌활용 및 계발", Average: 5.0, ItemCount: 24},
			{DomainName: "주체적책임 및 창업의식", Average: 2.0, ItemCount: 24},
		},
		ItemsUsed: 96,
	}
}

func TestCombineSBIWeights(t *testing.T) {
	eeg := model.EEGDomainMetrics{
		Motivation:     75.0,
		Resilience:     50.0,
		Innovation:     80.0,
		Responsibility: 25.0,
	}

	result := CombineSBI(surveyFixture(), eeg)

	if len(result.DomainScores) != 4 {
		t.Fatalf("got %d domains, want 4", len(result.DomainScores))
	}

	// motivation: survey 4.0 -> 75.0 normalized, 0.7*75 + 0.3*75 = 75.0
	mot := result.DomainScores[0]
	if mot.SurveyNormalized != 75.0 {
		t.Errorf("motivation normalized = %v, want 75.0", mot.SurveyNormalized)
	}
	if mot.CombinedScore != 75.0 {
		t.Errorf("motivation combined = %v, want 75.0", mot.CombinedScore)
	}
	if mot.WeightSurvey != 0.7 || mot.WeightEEG != 0.3 {
		t.Errorf("motivation weights = (%v, %v), want (0.7, 0.3)", mot.WeightSurvey, mot.WeightEEG)
	}
	if mot.Inconsistency {
		t.Error("motivation should not be inconsistent: survey 75 vs eeg 75")
	}

	// resilience: survey 3.0 -> 50.0, 0.5*50 + 0.5*50 = 50.0
	res := result.DomainScores[1]
	if res.CombinedScore != 50.0 {
		t.Errorf("resilience combined = %v, want 50.0", res.CombinedScore)
	}

	// innovation: survey 5.0 -> 100.0, 0.6*100 + 0.4*80 = 92.0, gap 20 flags
	inn := result.DomainScores[2]
	if inn.CombinedScore != 92.0 {
		t.Errorf("innovation combined = %v, want 92.0", inn.CombinedScore)
	}
	if !inn.Inconsistency {
		t.Error("innovation should be inconsistent: |100-80| >= 20")
	}

	// responsibility: survey 2.0 -> 25.0, 0.8*25 + 0.2*25 = 25.0
	resp := result.DomainScores[3]
	if resp.CombinedScore != 25.0 {
		t.Errorf("responsibility combined = %v, want 25.0", resp.CombinedScore)
	}

	if !result.InconsistencyFlag {
		t.Error("overall flag should be set when any domain is inconsistent")
	}
	if !strings.Contains(result.Message, "리포트 생성을 권장") {
		t.Errorf("inconsistency message missing: %q", result.Message)
	}

	// overall: mean of (75 + 50 + 92 + 25) = 60.5
	if result.OverallIndex != 60.5 {
		t.Errorf("OverallIndex = %v, want 60.5", result.OverallIndex)
	}
}

func TestCombineSBIInconsistencyBoundary(t *testing.T) {
	survey := model.SurveyResult{
		OverallAverage: 3.0,
		DomainScores: []model.DomainScore{
			{DomainName: "창업위기감수 및 극복", Average: 3.0}, // normalized 50.0
		},
	}

	tests := []struct {
		name string
		eeg  float64
		want bool
	}{
		{"gap below threshold", 69.99, false},
		{"gap exactly threshold", 70.0, true},
		{"gap above threshold", 70.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CombineSBI(survey, model.EEGDomainMetrics{Resilience: tt.eeg})
			if result.InconsistencyFlag != tt.want {
				t.Errorf("gap %v: flag = %v, want %v", tt.eeg-50.0, result.InconsistencyFlag, tt.want)
			}
		})
	}
}

func TestCombineSBISkipsUnresolvedDomains(t *testing.T) {
	survey := model.SurveyResult{
		OverallAverage: 4.0,
		DomainScores: []model.DomainScore{
			{DomainName: "정체불명의 영역", Average: 4.0},
		},
	}

	result := CombineSBI(survey, model.EEGDomainMetrics{})

	if len(result.DomainScores) != 0 {
		t.Fatalf("unresolved domain should be skipped, got %d", len(result.DomainScores))
	}
	// fallback: overall index is the normalized survey mean
	if result.OverallIndex != 75.0 {
		t.Errorf("OverallIndex = %v, want normalized survey fallback 75.0", result.OverallIndex)
	}
}

func TestCombineSBISanitizesEEG(t *testing.T) {
	survey := model.SurveyResult{
		OverallAverage: 3.0,
		DomainScores: []model.DomainScore{
			{DomainName: "창업공감 및 동기부여", Average: 3.0},
		},
	}

	t.Run("nan treated as zero", func(t *testing.T) {
		result := CombineSBI(survey, model.EEGDomainMetrics{Motivation: math.NaN()})
		if got := result.DomainScores[0].EEGScore; got != 0 {
			t.Errorf("EEGScore = %v, want 0", got)
		}
	})

	t.Run("out of range clamped", func(t *testing.T) {
		result := CombineSBI(survey, model.EEGDomainMetrics{Motivation: 250})
		if got := result.DomainScores[0].EEGScore; got != 100 {
			t.Errorf("EEGScore = %v, want 100", got)
		}
		if got := result.DomainScores[0].CombinedScore; got > 100 {
			t.Errorf("CombinedScore = %v, must not exceed 100", got)
		}
	})
}

func floatPtr(v float64) *float64 { return &v }

func TestRunCombinedAnalysisNilBrainwave(t *testing.T) {
	result := RunCombinedAnalysis(surveyFixture(), nil, DefaultSurveyWeight, DefaultEEGWeight)

	if result.CombinedIndex != 75.0 {
		t.Errorf("CombinedIndex = %v, want survey-only 75.0", result.CombinedIndex)
	}
	if result.EEGEngagement != nil || result.EEGFocus != nil {
		t.Error("no EEG values should be reported without brainwave input")
	}
	if !strings.Contains(result.Message, "설문(SBI) 점수만") {
		t.Errorf("survey-only message missing: %q", result.Message)
	}
}

func TestRunCombinedAnalysisPrecedence(t *testing.T) {
	survey := surveyFixture() // normalized 75.0

	tests := []struct {
		name      string
		brainwave model.BrainwaveMetrics
		want      float64 // 0.6*75 + 0.4*eeg
	}{
		{
			"engagement wins",
			model.BrainwaveMetrics{Engagement: floatPtr(80), Focus: floatPtr(20), Alpha: floatPtr(1)},
			0.6*75 + 0.4*80,
		},
		{
			"focus when engagement invalid",
			model.BrainwaveMetrics{Engagement: floatPtr(150), Focus: floatPtr(60)},
			0.6*75 + 0.4*60,
		},
		{
			"band heuristic",
			model.BrainwaveMetrics{Alpha: floatPtr(3), Beta: floatPtr(4)}, // (3+4)*10 = 70
			0.6*75 + 0.4*70,
		},
		{
			"band heuristic clamped",
			model.BrainwaveMetrics{Alpha: floatPtr(8), Beta: floatPtr(8)}, // 160 -> 100
			0.6*75 + 0.4*100,
		},
		{
			"midpoint default",
			model.BrainwaveMetrics{},
			0.6*75 + 0.4*50,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := RunCombinedAnalysis(survey, &tt.brainwave, DefaultSurveyWeight, DefaultEEGWeight)
			want := math.Round(tt.want*100) / 100
			if result.CombinedIndex != want {
				t.Errorf("CombinedIndex = %v, want %v", result.CombinedIndex, want)
			}
		})
	}
}

func TestRunCombinedAnalysisBackfillsSummary(t *testing.T) {
	// with only band data, engagement and focus echo the heuristic estimate
	brainwave := model.BrainwaveMetrics{Alpha: floatPtr(3), Beta: floatPtr(4)}
	result := RunCombinedAnalysis(surveyFixture(), &brainwave, DefaultSurveyWeight, DefaultEEGWeight)

	if result.EEGEngagement == nil || *result.EEGEngagement != 70 {
		t.Errorf("EEGEngagement = %v, want 70", result.EEGEngagement)
	}
	if result.EEGFocus == nil || *result.EEGFocus != 70 {
		t.Errorf("EEGFocus = %v, want 70", result.EEGFocus)
	}
}

func TestRunCombinedAnalysisZeroWeights(t *testing.T) {
	brainwave := model.BrainwaveMetrics{Engagement: floatPtr(80)}
	result := RunCombinedAnalysis(surveyFixture(), &brainwave, 0, 0)

	// degenerate weights fall back to a total of 1.0 instead of dividing by zero
	if math.IsNaN(result.CombinedIndex) || math.IsInf(result.CombinedIndex, 0) {
		t.Fatalf("CombinedIndex = %v, want finite", result.CombinedIndex)
	}
	if result.CombinedIndex != 0 {
		t.Errorf("CombinedIndex = %v, want 0 with zero weights", result.CombinedIndex)
	}
}
