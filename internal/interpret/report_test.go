package interpret

import (
	"strings"
	"testing"

	"sbindex/internal/model"
)

func domainScore(name string, score float64) model.DomainCombinedScore {
	return model.DomainCombinedScore{DomainName: name, CombinedScore: score}
}

func TestGenerateReportBands(t *testing.T) {
	tests := []struct {
		name       string
		score      float64
		wantStrong bool
		wantWeak   bool
	}{
		{"strength band", 65.0, true, false},
		{"just below strength", 64.99, false, false},
		{"mid band", 50.0, false, false},
		{"just above weak", 45.0, false, false},
		{"weak band", 44.99, false, true},
		{"deep weak", 10.0, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := GenerateReport([]model.DomainCombinedScore{
				domainScore("창업공감 및 동기부여", tt.score),
			}, false, nil)

			if len(report.Sections) != 1 {
				t.Fatalf("got %d sections, want 1", len(report.Sections))
			}
			s := report.Sections[0]

			if strong := strings.Contains(s.Interpretation, "리더십"); strong != tt.wantStrong && tt.wantStrong {
				t.Errorf("score %v: interpretation %q should carry a strength leadership type", tt.score, s.Interpretation)
			}
			if weak := len(s.RecommendedStages) > 0; weak != tt.wantWeak {
				t.Errorf("score %v: recommended stages present = %v, want %v", tt.score, weak, tt.wantWeak)
			}
			if tt.wantWeak && len(s.RecommendedLaws) == 0 {
				t.Errorf("score %v: weak band should recommend BOS laws", tt.score)
			}
		})
	}
}

func TestGenerateReportGlossaryAlwaysPresent(t *testing.T) {
	for _, score := range []float64{10.0, 50.0, 90.0} {
		report := GenerateReport([]model.DomainCombinedScore{
			domainScore("창업두뇌활용 및 계발", score),
		}, false, nil)

		s := report.Sections[0]
		if !strings.Contains(s.Interpretation, "【하위요소 키워드】") {
			t.Errorf("score %v: glossary prefix missing from %q", score, s.Interpretation)
		}
		if !strings.Contains(s.Interpretation, "【해석】") {
			t.Errorf("score %v: interpretation marker missing", score)
		}
		if len(s.SubElements) != 3 {
			t.Errorf("score %v: got %d sub-elements, want 3", score, len(s.SubElements))
		}
	}
}

func TestGenerateReportRecommendationSets(t *testing.T) {
	tests := []struct {
		domainName string
		wantStages []string
		wantLaws   []string
	}{
		{
			"창업공감 및 동기부여",
			[]string{BrainStages[1], BrainStages[2]},
			[]string{BOSLaws[0], BOSLaws[1]},
		},
		{
			"창업위기감수 및 극복",
			[]string{BrainStages[2], BrainStages[3]},
			[]string{BOSLaws[1], BOSLaws[2]},
		},
		{
			"창업두뇌활용 및 계발",
			[]string{BrainStages[1], BrainStages[2], BrainStages[4]},
			[]string{BOSLaws[2], BOSLaws[4]},
		},
		{
			// index 5 is out of bounds and silently dropped
			"주체적책임 및 창업의식",
			[]string{BrainStages[4]},
			[]string{BOSLaws[0], BOSLaws[3], BOSLaws[4]},
		},
	}

	for _, tt := range tests {
		t.Run(tt.domainName, func(t *testing.T) {
			report := GenerateReport([]model.DomainCombinedScore{
				domainScore(tt.domainName, 30.0),
			}, false, nil)

			s := report.Sections[0]
			assertStrings(t, "stages", s.RecommendedStages, tt.wantStages)
			assertStrings(t, "laws", s.RecommendedLaws, tt.wantLaws)
		})
	}
}

func assertStrings(t *testing.T, label string, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: got %d entries, want %d", label, len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %q, want %q", label, i, got[i], want[i])
		}
	}
}

func TestGenerateReportCanonicalOrder(t *testing.T) {
	report := GenerateReport([]model.DomainCombinedScore{
		domainScore("주체적책임 및 창업의식", 50),
		domainScore("창업공감 및 동기부여", 50),
		domainScore("창업두뇌활용 및 계발", 50),
		domainScore("창업위기감수 및 극복", 50),
	}, false, nil)

	want := []string{
		"창업공감 및 동기부여",
		"창업위기감수 및 극복",
		"창업두뇌활용 및 계발",
		"주체적책임 및 창업의식",
	}
	for i, s := range report.Sections {
		if s.DomainName != want[i] {
			t.Fatalf("section order = %v", sectionNames(report.Sections))
		}
	}
}

func sectionNames(sections []model.DomainReportSection) []string {
	names := make([]string, len(sections))
	for i, s := range sections {
		names[i] = s.DomainName
	}
	return names
}

func TestGenerateReportInconsistency(t *testing.T) {
	scores := []model.DomainCombinedScore{domainScore("창업공감 및 동기부여", 50)}

	with := GenerateReport(scores, true, nil)
	if with.InconsistencyInterpretation == "" {
		t.Error("inconsistency interpretation should be present when flagged")
	}
	if !strings.Contains(with.Summary, "불일치") {
		t.Error("summary should mention the inconsistency")
	}

	without := GenerateReport(scores, false, nil)
	if without.InconsistencyInterpretation != "" {
		t.Error("inconsistency interpretation should be empty when not flagged")
	}
}

func TestGenerateReportSalutation(t *testing.T) {
	scores := []model.DomainCombinedScore{domainScore("창업공감 및 동기부여", 50)}

	named := GenerateReport(scores, false, &model.UserProfile{Name: "김철수"})
	if !strings.HasPrefix(named.Summary, "김철수님") {
		t.Errorf("summary = %q, want salutation with name", named.Summary)
	}

	anonymous := GenerateReport(scores, false, nil)
	if !strings.HasPrefix(anonymous.Summary, "고객") {
		t.Errorf("summary = %q, want default salutation", anonymous.Summary)
	}

	blank := GenerateReport(scores, false, &model.UserProfile{Name: "   "})
	if !strings.HasPrefix(blank.Summary, "고객") {
		t.Errorf("summary = %q, blank name should use default salutation", blank.Summary)
	}
}

func TestGenerateReportProfileContext(t *testing.T) {
	age := 34
	profile := &model.UserProfile{
		Name:       "이영희",
		Age:        &age,
		Occupation: "직장인",
		SleepHours: "6",
	}

	report := GenerateReport([]model.DomainCombinedScore{
		domainScore("창업공감 및 동기부여", 50),
	}, false, profile)

	for _, want := range []string{"연령 34세", "직업 직장인", "수면 6시간"} {
		if !strings.Contains(report.Summary, want) {
			t.Errorf("summary missing %q: %q", want, report.Summary)
		}
	}
}

func TestGenerateReportFrameworksAttached(t *testing.T) {
	report := GenerateReport(nil, false, nil)

	if len(report.BrainStages) != 5 {
		t.Errorf("got %d brain stages, want 5", len(report.BrainStages))
	}
	if len(report.BOSLaws) != 5 {
		t.Errorf("got %d BOS laws, want 5", len(report.BOSLaws))
	}
	if len(report.Sections) != 0 {
		t.Errorf("got %d sections, want 0", len(report.Sections))
	}
}
