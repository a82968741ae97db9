package interpret

import (
	"strings"

	"sbindex/internal/domain"
	"sbindex/internal/model"
)

const snippetMaxLen = 180

// searchKeywords selects the evidence-search vocabulary per domain
var searchKeywords = map[domain.Canonical][]string{
	domain.Motivation:     {"창업", "동기부여", "공감", "자아성찰", "창업생태계"},
	domain.Resilience:     {"위기극복", "회복탄력성", "스트레스", "재도전", "위험감수"},
	domain.Innovation:     {"뇌", "유연화", "창의성", "뇌교육", "혁신"},
	domain.Responsibility: {"주체적", "협업", "사회적 책임", "창업의식"},
}

// AugmentWithKnowledge attaches one evidentiary snippet per domain section,
// drawn from the first knowledge row whose content mentions one of the
// domain's search keywords. Sections without a match are left untouched.
func AugmentWithKnowledge(report *model.SBIReport, rows []model.KnowledgeRow) {
	var sources []model.KnowledgeRow
	for _, r := range rows {
		if r.Title != "" && strings.TrimSpace(r.Content) != "" {
			sources = append(sources, r)
		}
	}
	if len(sources) == 0 {
		return
	}

	for i := range report.Sections {
		c := domain.Resolve(report.Sections[i].DomainName)
		keywords := searchKeywords[c]
		if len(keywords) == 0 {
			continue
		}
	rowLoop:
		for _, src := range sources {
			for _, kw := range keywords {
				if strings.Contains(src.Content, kw) {
					snippet := snippetFromContent(src.Content)
					if snippet != "" {
						report.Sections[i].Evidence = "검색 자료에 따르면: " + snippet + " (출처: " + src.Title + ")"
					}
					break
				}
			}
			if report.Sections[i].Evidence != "" {
				break rowLoop
			}
		}
	}
}

// snippetFromContent trims the leading part of the content to a display
// snippet, cutting at a word boundary where possible.
func snippetFromContent(content string) string {
	s := strings.TrimSpace(strings.ReplaceAll(content, "\n", " "))
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= snippetMaxLen {
		return s
	}
	head := string(runes[:snippetMaxLen])
	if idx := strings.LastIndex(head, " "); idx > 0 {
		return head[:idx] + "…"
	}
	return head + "…"
}
