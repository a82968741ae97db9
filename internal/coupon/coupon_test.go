package coupon

import (
	"math/rand"
	"regexp"
	"strings"
	"testing"

	"sbindex/internal/model"
)

func TestLowScoreDomainKeys(t *testing.T) {
	scores := []model.DomainCombinedScore{
		{DomainName: "창업공감 및 동기부여", CombinedScore: 30},
		{DomainName: "창업위기감수 및 극복", CombinedScore: 45}, // at threshold, not weak
		{DomainName: "창업두뇌활용 및 계발", CombinedScore: 44.9},
		{DomainName: "알 수 없는 영역", CombinedScore: 10},
		{DomainName: "창업공감 및 동기부여 역량", CombinedScore: 20}, // dup of first
	}

	keys := LowScoreDomainKeys(scores, LowScoreThreshold)
	want := []string{"창업공감", "두뇌활용"}
	if len(keys) != len(want) {
		t.Fatalf("keys = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys = %v, want %v", keys, want)
		}
	}
}

func TestSearchKeywordsFor(t *testing.T) {
	t.Run("weak domains expand to vocabulary", func(t *testing.T) {
		keywords := SearchKeywordsFor([]model.DomainCombinedScore{
			{DomainName: "창업위기감수 및 극복", CombinedScore: 30},
		})
		if len(keywords) == 0 || keywords[0] != "위기극복" {
			t.Errorf("keywords = %v, want resilience vocabulary", keywords)
		}
	})

	t.Run("no weak domain falls back to generic set", func(t *testing.T) {
		keywords := SearchKeywordsFor([]model.DomainCombinedScore{
			{DomainName: "창업공감 및 동기부여", CombinedScore: 90},
		})
		want := []string{"뇌교육", "창업", "동기부여", "위기극복"}
		if len(keywords) != len(want) {
			t.Fatalf("keywords = %v, want fallback %v", keywords, want)
		}
	})
}

func TestRecommendEligibility(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		name    string
		overall float64
		want    bool
	}{
		{"below threshold", 54.9, true},
		{"at threshold", 55.0, true},
		{"above threshold", 55.01, false},
		{"high score", 90.0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := Recommend(model.CombinedSBIResult{OverallIndex: tt.overall}, nil, nil, rng)
			if rec.Eligible != tt.want {
				t.Errorf("overall %v: eligible = %v, want %v", tt.overall, rec.Eligible, tt.want)
			}
			if !tt.want && rec.CouponCode != "" {
				t.Error("ineligible recommendation must carry no coupon code")
			}
		})
	}
}

func TestRecommendAlwaysPicksAChannel(t *testing.T) {
	// with no knowledge rows the default channel links are used
	for seed := int64(0); seed < 20; seed++ {
		rng := rand.New(rand.NewSource(seed))
		rec := Recommend(model.CombinedSBIResult{OverallIndex: 40}, nil, nil, rng)

		if rec.Blog == nil && rec.Youtube == nil {
			t.Fatalf("seed %d: no channel picked", seed)
		}
		if rec.Blog != nil && rec.Blog.URL != BlogURL {
			t.Errorf("seed %d: blog URL = %q, want default", seed, rec.Blog.URL)
		}
		if rec.Youtube != nil && rec.Youtube.URL != YoutubeChannelURL {
			t.Errorf("seed %d: youtube URL = %q, want default", seed, rec.Youtube.URL)
		}
	}
}

func TestRecommendUsesKnowledgeRows(t *testing.T) {
	blog := []model.KnowledgeRow{{Title: "동기부여 블로그 글", URL: "https://blog.example/1"}}

	// with only blog rows, the blog pick is deterministic
	rng := rand.New(rand.NewSource(3))
	rec := Recommend(model.CombinedSBIResult{OverallIndex: 40}, blog, nil, rng)

	if rec.Blog == nil {
		t.Fatal("blog row available but not picked")
	}
	if rec.Blog.Title != "동기부여 블로그 글" || rec.Blog.URL != "https://blog.example/1" {
		t.Errorf("blog pick = %+v", rec.Blog)
	}
}

func TestRecommendFallsBackOnBlankRowFields(t *testing.T) {
	blog := []model.KnowledgeRow{{Title: "   ", URL: ""}}
	rng := rand.New(rand.NewSource(3))
	rec := Recommend(model.CombinedSBIResult{OverallIndex: 40}, blog, nil, rng)

	if rec.Blog == nil {
		t.Fatal("blog row available but not picked")
	}
	if rec.Blog.Title != "블로그 글" {
		t.Errorf("title = %q, want placeholder", rec.Blog.Title)
	}
	if rec.Blog.URL != BlogURL {
		t.Errorf("URL = %q, want default blog URL", rec.Blog.URL)
	}
}

func TestGenerateCode(t *testing.T) {
	pattern := regexp.MustCompile(`^SBI-[0-9A-F]{4}-[0-9A-F]{4}$`)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		code := GenerateCode("SBI")
		if !pattern.MatchString(code) {
			t.Fatalf("code %q does not match SBI-XXXX-XXXX", code)
		}
		seen[code] = true
	}
	if len(seen) < 2 {
		t.Error("codes should not repeat")
	}
}

func TestEmailBody(t *testing.T) {
	rec := Recommendation{
		Eligible:   true,
		Blog:       &model.KnowledgeRef{Title: "추천 글", URL: "https://blog.example/1"},
		CouponCode: "SBI-AAAA-BBBB",
	}

	body := EmailBody("김철수", rec, 42.5)
	for _, want := range []string{"김철수님", "42.50점", "추천 글", "SBI-AAAA-BBBB"} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q:\n%s", want, body)
		}
	}
	if strings.Contains(body, "유튜브:") {
		t.Error("body should not mention a channel that was not picked")
	}

	anonymous := EmailBody("  ", rec, 42.5)
	if !strings.Contains(anonymous, "고객님") {
		t.Error("blank name should fall back to the default salutation")
	}
}
