package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"sbindex/internal/catalog"
	"sbindex/internal/eeg"
	"sbindex/internal/model"
	"sbindex/internal/pipeline"
	"sbindex/internal/scoring"
)

func testDiagnosisService(t *testing.T) *DiagnosisService {
	t.Helper()

	var b strings.Builder
	b.WriteString("역량구분,하위역량,하위요소,하위요소순번,비고1,순번,문항,표본응답,비고\n")
	domains := []string{
		"창업공감 및 동기부여",
		"창업위기감수 및 극복",
		"창업두뇌활용 및 계발",
		"주체적책임 및 창업의식",
	}
	seq := 0
	for _, d := range domains {
		for i := 0; i < 2; i++ {
			seq++
			fmt.Fprintf(&b, "%s,하위역량,요소,%d,,%d,문항 %d,3,\n", d, i+1, seq, seq)
		}
	}

	path := filepath.Join(t.TempDir(), "items.csv")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	cat, err := catalog.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	engine := scoring.NewEngine(cat)
	provider := &eeg.FixedProvider{
		Values: model.EEGDomainMetrics{Motivation: 70, Resilience: 70, Innovation: 70, Responsibility: 70},
	}
	runner := pipeline.NewRunner(engine, provider, nil)

	return NewDiagnosisService(cat, engine, provider, runner, nil, nil, nil, 1)
}

func TestValidateRequest(t *testing.T) {
	svc := testDiagnosisService(t)

	tests := []struct {
		name      string
		responses map[int]int
		excluded  []int
		wantErr   string
	}{
		{"valid", map[int]int{1: 3, 2: 5}, nil, ""},
		{"valid with exclusion", map[int]int{1: 3}, []int{2}, ""},
		{"score too low", map[int]int{1: 0}, nil, "outside the 1-5 range"},
		{"score too high", map[int]int{1: 6}, nil, "outside the 1-5 range"},
		{"unknown sequence", map[int]int{99: 3}, nil, "unknown item sequence 99"},
		{"unknown excluded sequence", map[int]int{1: 3}, []int{99}, "unknown item sequence 99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.ValidateRequest(tt.responses, tt.excluded)
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestScoreRejectsInvalidInput(t *testing.T) {
	svc := testDiagnosisService(t)

	if _, err := svc.Score(map[int]int{1: 6}, nil); err == nil {
		t.Error("out-of-range score must be rejected at the boundary")
	}

	result, err := svc.Score(map[int]int{1: 4, 2: 4}, nil)
	if err != nil {
		t.Fatalf("valid input rejected: %v", err)
	}
	if result.ItemsUsed != 2 {
		t.Errorf("ItemsUsed = %d, want 2", result.ItemsUsed)
	}
}

func TestAnalyzeSBIProducesFullDiagnosis(t *testing.T) {
	svc := testDiagnosisService(t)

	responses := map[int]int{1: 4, 2: 4, 3: 4, 4: 4, 5: 4, 6: 4, 7: 4, 8: 4}
	diag, err := svc.AnalyzeSBI(context.Background(), responses, nil, nil)
	if err != nil {
		t.Fatalf("AnalyzeSBI: %v", err)
	}

	if len(diag.Combined.DomainScores) != 4 {
		t.Errorf("got %d combined domains, want 4", len(diag.Combined.DomainScores))
	}
	if len(diag.Report.Sections) != 4 {
		t.Errorf("got %d report sections, want 4", len(diag.Report.Sections))
	}
	if len(diag.SubCompetencyScores) == 0 {
		t.Error("sub-competency breakdown missing")
	}
	// survey 4.0 -> 75, EEG 70: overall well above the coupon threshold
	if diag.CouponRecommendation.Eligible {
		t.Error("high scorer should not receive a coupon")
	}
}

func TestAnalyzeSBICouponForLowScores(t *testing.T) {
	svc := testDiagnosisService(t)

	responses := map[int]int{1: 1, 2: 1, 3: 1, 4: 1, 5: 1, 6: 1, 7: 1, 8: 1}
	diag, err := svc.AnalyzeSBI(context.Background(), responses, nil, nil)
	if err != nil {
		t.Fatalf("AnalyzeSBI: %v", err)
	}

	if !diag.CouponRecommendation.Eligible {
		t.Errorf("overall %v: low scorer should receive a coupon", diag.Combined.OverallIndex)
	}
	if diag.CouponRecommendation.CouponCode == "" {
		t.Error("eligible recommendation must carry a coupon code")
	}
}

func TestRunPipelineValidatesFirst(t *testing.T) {
	svc := testDiagnosisService(t)

	if _, err := svc.RunPipeline(context.Background(), "user@test.com", map[int]int{99: 3}, nil, nil); err == nil {
		t.Error("unknown sequence must be rejected before the pipeline runs")
	}

	result, err := svc.RunPipeline(context.Background(), "user@test.com", map[int]int{1: 4, 2: 4}, nil, nil)
	if err != nil {
		t.Fatalf("RunPipeline: %v", err)
	}
	if !result.Success {
		t.Fatalf("pipeline failed: %s", result.Error)
	}
	if _, ok := result.TimingsMS["total"]; !ok {
		t.Error("total timing missing")
	}
}
