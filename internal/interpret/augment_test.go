package interpret

import (
	"strings"
	"testing"

	"sbindex/internal/model"
)

func TestAugmentWithKnowledge(t *testing.T) {
	report := GenerateReport([]model.DomainCombinedScore{
		domainScore("창업공감 및 동기부여", 50),
		domainScore("창업위기감수 및 극복", 50),
	}, false, nil)

	rows := []model.KnowledgeRow{
		{Title: "회복탄력성 기르기", Content: "위기극복 능력은 훈련으로 기를 수 있습니다."},
		{Title: "창업가의 하루", Content: "창업 초기의 동기부여 관리법을 다룹니다."},
	}

	AugmentWithKnowledge(&report, rows)

	mot := report.Sections[0]
	if !strings.Contains(mot.Evidence, "창업가의 하루") {
		t.Errorf("motivation evidence = %q, want source 창업가의 하루", mot.Evidence)
	}
	if !strings.HasPrefix(mot.Evidence, "검색 자료에 따르면: ") {
		t.Errorf("evidence prefix missing: %q", mot.Evidence)
	}

	res := report.Sections[1]
	if !strings.Contains(res.Evidence, "회복탄력성 기르기") {
		t.Errorf("resilience evidence = %q, want source 회복탄력성 기르기", res.Evidence)
	}
}

func TestAugmentWithKnowledgeNoMatch(t *testing.T) {
	report := GenerateReport([]model.DomainCombinedScore{
		domainScore("창업공감 및 동기부여", 50),
	}, false, nil)

	rows := []model.KnowledgeRow{
		{Title: "요리 레시피", Content: "된장찌개 끓이는 법을 소개합니다."},
	}

	AugmentWithKnowledge(&report, rows)

	if report.Sections[0].Evidence != "" {
		t.Errorf("evidence = %q, want empty when no keyword matches", report.Sections[0].Evidence)
	}
}

func TestAugmentWithKnowledgeSkipsEmptyRows(t *testing.T) {
	report := GenerateReport([]model.DomainCombinedScore{
		domainScore("창업공감 및 동기부여", 50),
	}, false, nil)

	rows := []model.KnowledgeRow{
		{Title: "", Content: "창업 동기부여 내용이지만 제목이 없습니다."},
		{Title: "내용 없는 글", Content: "   "},
	}

	AugmentWithKnowledge(&report, rows)

	if report.Sections[0].Evidence != "" {
		t.Errorf("evidence = %q, rows without title or content must be ignored", report.Sections[0].Evidence)
	}
}

func TestSnippetFromContent(t *testing.T) {
	t.Run("short content kept whole", func(t *testing.T) {
		if got := snippetFromContent("짧은 본문"); got != "짧은 본문" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("newlines flattened", func(t *testing.T) {
		if got := snippetFromContent("첫 줄\n둘째 줄"); got != "첫 줄 둘째 줄" {
			t.Errorf("got %q", got)
		}
	})

	t.Run("long content truncated with ellipsis", func(t *testing.T) {
		long := strings.Repeat("가나다 ", 100)
		got := snippetFromContent(long)
		if !strings.HasSuffix(got, "…") {
			t.Errorf("truncated snippet should end with ellipsis: %q", got)
		}
		if len([]rune(got)) > snippetMaxLen+1 {
			t.Errorf("snippet too long: %d runes", len([]rune(got)))
		}
	})

	t.Run("empty content", func(t *testing.T) {
		if got := snippetFromContent("  \n "); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}
