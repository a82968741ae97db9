// Package coupon decides consultation-coupon eligibility from a diagnosis and
// builds the recommendation payload for the follow-up email. Sending the mail
// is external; this package only produces the content.
package coupon

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"sbindex/internal/domain"
	"sbindex/internal/model"
)

// EmailThreshold is the overall index at or below which a customer receives
// the recommendation + consultation discount mail.
const EmailThreshold = 55.0

// LowScoreThreshold marks a domain as weak for keyword selection
const LowScoreThreshold = 45.0

// Default destinations when the knowledge base has nothing to recommend
const (
	BlogURL           = "https://jangsanbrainlab.tistory.com/"
	YoutubeChannelURL = "https://www.youtube.com/@jangsanbrain"
)

// searchKeywords picks the recommendation-search vocabulary per weak domain
var searchKeywords = map[domain.Canonical][]string{
	domain.Motivation:     {"창업 동기부여", "공감", "자아성찰", "창업생태계"},
	domain.Resilience:     {"위기극복", "회복탄력성", "스트레스", "재도전"},
	domain.Innovation:     {"뇌 유연화", "창의성", "뇌교육", "혁신"},
	domain.Responsibility: {"주체적 협업", "사회적 책임", "창업의식"},
}

var fallbackKeywords = []string{"뇌교육", "창업", "동기부여", "위기극복"}

// Recommendation is the coupon decision plus picked content
type Recommendation struct {
	Eligible    bool                `json:"eligible"`
	Blog        *model.KnowledgeRef `json:"blog,omitempty"`
	Youtube     *model.KnowledgeRef `json:"youtube,omitempty"`
	WeakDomains []string            `json:"weakDomains,omitempty"` // concept keys
	CouponCode  string              `json:"couponCode,omitempty"`
}

// LowScoreDomainKeys returns the concept keys of domains scoring below the
// threshold, first occurrence order, deduplicated.
func LowScoreDomainKeys(domainScores []model.DomainCombinedScore, threshold float64) []string {
	var keys []string
	seen := make(map[string]bool)
	for _, d := range domainScores {
		if d.CombinedScore >= threshold {
			continue
		}
		c := domain.Resolve(d.DomainName)
		if c == domain.None {
			continue
		}
		if !seen[c.Key()] {
			seen[c.Key()] = true
			keys = append(keys, c.Key())
		}
	}
	return keys
}

// SearchKeywordsFor expands weak-domain concept keys into search keywords.
// An empty selection falls back to the generic keyword set.
func SearchKeywordsFor(domainScores []model.DomainCombinedScore) []string {
	var keywords []string
	for _, d := range domainScores {
		if d.CombinedScore >= LowScoreThreshold {
			continue
		}
		c := domain.Resolve(d.DomainName)
		if c == domain.None {
			continue
		}
		keywords = append(keywords, searchKeywords[c]...)
	}
	if len(keywords) == 0 {
		keywords = append(keywords, fallbackKeywords...)
	}
	return keywords
}

// Recommend builds the coupon decision for a finished diagnosis. Knowledge
// rows (already searched by the caller) feed the blog/youtube picks; with no
// rows the default channel links are used. Not eligible means an empty result.
func Recommend(result model.CombinedSBIResult, blogRows, youtubeRows []model.KnowledgeRow, rng *rand.Rand) Recommendation {
	if result.OverallIndex > EmailThreshold {
		return Recommendation{Eligible: false}
	}

	rec := Recommendation{
		Eligible:    true,
		WeakDomains: LowScoreDomainKeys(result.DomainScores, LowScoreThreshold),
		CouponCode:  GenerateCode("SBI"),
	}

	if len(blogRows) > 0 && (len(youtubeRows) == 0 || rng.Float64() > 0.5) {
		r := blogRows[rng.Intn(len(blogRows))]
		rec.Blog = &model.KnowledgeRef{Title: truncateTitle(r.Title, "블로그 글"), URL: urlOr(r.URL, BlogURL)}
	}
	if len(youtubeRows) > 0 && (len(blogRows) == 0 || rng.Float64() > 0.5) {
		r := youtubeRows[rng.Intn(len(youtubeRows))]
		rec.Youtube = &model.KnowledgeRef{Title: truncateTitle(r.Title, "유튜브 영상"), URL: urlOr(r.URL, YoutubeChannelURL)}
	}
	if rec.Blog == nil && rec.Youtube == nil {
		if rng.Float64() > 0.5 {
			rec.Blog = &model.KnowledgeRef{Title: "장산뇌혁신데이터랩 블로그", URL: BlogURL}
		} else {
			rec.Youtube = &model.KnowledgeRef{Title: "장산뇌혁신데이터랩 유튜브 (@jangsanbrain)", URL: YoutubeChannelURL}
		}
	}
	return rec
}

// GenerateCode creates a consultation discount code, e.g. SBI-1A2B-3C4D
func GenerateCode(prefix string) string {
	u := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s-%s", prefix, u[:4], u[4:8])
}

// EmailBody renders the plain-text mail for an eligible customer
func EmailBody(customerName string, rec Recommendation, overallIndex float64) string {
	name := strings.TrimSpace(customerName)
	if name == "" {
		name = "고객"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s님, SBI 진단 결과(통합지수 %.2f점)를 바탕으로 맞춤 콘텐츠와 1:1 상담 할인권을 보내드립니다.\n\n", name, overallIndex)
	if rec.Blog != nil {
		fmt.Fprintf(&b, "추천 블로그: %s (%s)\n", rec.Blog.Title, rec.Blog.URL)
	}
	if rec.Youtube != nil {
		fmt.Fprintf(&b, "추천 유튜브: %s (%s)\n", rec.Youtube.Title, rec.Youtube.URL)
	}
	fmt.Fprintf(&b, "\n상담 할인권 코드: %s\n", rec.CouponCode)
	return b.String()
}

func truncateTitle(title, fallback string) string {
	t := strings.TrimSpace(title)
	if t == "" {
		return fallback
	}
	runes := []rune(t)
	if len(runes) > 80 {
		return string(runes[:80])
	}
	return t
}

func urlOr(u, fallback string) string {
	if strings.TrimSpace(u) == "" {
		return fallback
	}
	return u
}
