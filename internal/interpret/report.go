// Package interpret turns combined domain scores into the narrative SBI
// report: a keyword glossary per domain, a band interpretation (strength /
// mid / weak), remediation references for weak domains, and a single
// inconsistency interpretation when the survey and EEG disagree.
package interpret

import (
	"fmt"
	"strings"

	"sbindex/internal/domain"
	"sbindex/internal/model"
)

// Score bands on the 0-100 combined scale
const (
	ThresholdHigh = 65.0 // at or above: strength interpretation
	ThresholdLow  = 45.0 // below: remediation prescription
)

// BrainStages is the 5-stage brain-education improvement framework
var BrainStages = []string{
	"1단계 뇌 감각 깨우기(Brain Sensitizing): 뇌와 몸의 연결 회복, 뇌의 가치 자각.",
	"2단계 뇌 유연화하기(Brain Versatilizing): 고정관념 타파, 새로운 자극 수용.",
	"3단계 뇌 정화하기(Brain Refreshing): 부정적 정보 및 감정 정화, 본래 자아 회복.",
	"4단계 뇌 통합하기(Brain Integrating): 뇌의 각 영역(좌우뇌 등)을 조화롭게 연결 및 활성화.",
	"5단계 뇌 주인되기(Brain Mastering): 뇌를 완벽하게 운영하여 삶의 가치를 실현.",
}

// BOSLaws is the 5-item brain-operating-system practice framework
var BOSLaws = []string{
	"정신차려라(깨어있어라): 현재의 상태를 자각하고 주체적으로 의식을 조절함.",
	"굿뉴스가 굿브레인을 만든다: 긍정적인 정보 선택을 통해 뇌의 환경을 최적화함.",
	"선택하면 이루어진다: 목표를 명확히 정하고 실행할 때 뇌의 잠재력이 발현됨.",
	"시간과 공간의 주인이 되라: 물리적 환경과 시간을 주도적으로 통제함.",
	"모든 환경을 디자인하라: 자신을 둘러싼 모든 조건을 창조적으로 재구성함.",
}

type concept struct {
	definition         string
	subElements        []string
	strengthLeadership string
	lowStageIdx        []int // indexes into BrainStages
	lowLawIdx          []int // indexes into BOSLaws
}

var concepts = map[domain.Canonical]concept{
	domain.Motivation: {
		definition: "창업생태계와 구성원에 대한 이해를 바탕으로 긍정적 동기와 공감능력을 향상하는 역량.",
		subElements: []string{
			"창업생태계이해: 창업의 의미 이해, 자아성찰, 사회적 유대관계 도모. (지표: 창업정보, 사회적유대)",
			"창업구성원공감: 구성원 정서 알아차림, 상호 신뢰와 인정. (지표: 알아차림, 인정)",
			"창업동기부여: 비전 공유, 책임감 기반의 동기 유발. (지표: 정보공유, 책임감)",
		},
		strengthLeadership: "공감·동기부여형 리더십: 생태계 이해와 구성원 공감을 바탕으로 비전을 공유하고 팀 동기를 이끄는 유형.",
		lowStageIdx:        []int{1, 2},
		lowLawIdx:          []int{0, 1},
	},
	domain.Resilience: {
		definition: "불확실성 속에서 기회를 포착하고, 리스크를 감수하며 스트레스를 극복하는 역량.",
		subElements: []string{
			"창업기회도전: 신지식 탐색, 진취적인 계획과 행동. (지표: 탐험심, 시도성)",
			"실패위험감수: 시련을 수용하는 용기, 위기 돌파 능력. (지표: 위험감수, 위기극복)",
			"창업실패극복: 부정적 감정 관리, 회복탄력성 기반의 재기 의지. (지표: 긍정성, 재도전의지)",
		},
		strengthLeadership: "위기돌파·회복탄력형 리더십: 불확실성을 기회로 전환하고, 실패 후 재기하는 회복력을 바탕으로 팀을 이끄는 유형.",
		lowStageIdx:        []int{2, 3},
		lowLawIdx:          []int{1, 2},
	},
	domain.Innovation: {
		definition: "신경가소성을 활성화하여 새로운 학습과 경험을 축적하고 혁신적 사업 모델을 창조하는 역량.",
		subElements: []string{
			"긍정두뇌활용: 긍정적 사고 기반의 기술 습득 및 학습. (지표: 긍정성, 습관화)",
			"창의두뇌계발: 확산적 사고, 몰입을 통한 문제 해결. (지표: 창의성, 몰입성)",
			"창업두뇌혁신: 이종 분야 융합, 개방적 자세로 아이디어 도출. (지표: 개방성, 융합성)",
		},
		strengthLeadership: "혁신·학습형 리더십: 뇌의 유연성과 창의성을 활용해 새 학습과 혁신 모델을 주도하는 유형.",
		lowStageIdx:        []int{1, 2, 4},
		lowLawIdx:          []int{2, 4},
	},
	domain.Responsibility: {
		definition: "지역사회 및 글로벌 공동체를 위한 사회적 협업과 공생적 책무성을 실현하는 역량.",
		subElements: []string{
			"주체적협업: 공동체 가치 인식, 지역사회 발전을 위한 주인의식. (지표: 관계성, 유대감)",
			"사회적책임: 기업의 공생적 책무(CSR/ESG) 이행과 윤리 경영. (지표: 책임성, 참여성)",
			"지구적창업의식: 글로벌 난제 해결 기여, 공생공존의 창업 철학. (지표: 자각성, 공동체의식)",
		},
		strengthLeadership: "공생·책임형 리더십: 지역·글로벌 공동체에 대한 주인의식과 CSR/ESG를 실천하는 유형.",
		lowStageIdx:        []int{4, 5},
		lowLawIdx:          []int{0, 3, 4},
	},
}

const inconsistencyInterpretation = "설문(의식적 자기평가)과 뇌파(무의식적 상태) 간 차이가 20% 이상인 역량이 있습니다. " +
	"이는 '정보 정화(뇌 정화하기)' 관점에서 부정적 자기관념을 정리하거나, " +
	"'뇌 통합하기' 관점에서 의식·무의식을 조화롭게 연결하는 훈련을 권장합니다. " +
	"뇌교육 3단계(뇌 정화하기), 4단계(뇌 통합하기)와 BOS 법칙을 함께 적용하면 도움이 됩니다."

// GenerateReport builds domain sections from combined scores plus the global
// inconsistency interpretation. Sections come out in canonical presentation
// order regardless of input order. Deterministic given its fixed tables.
func GenerateReport(domainScores []model.DomainCombinedScore, inconsistencyFlag bool, profile *model.UserProfile) model.SBIReport {
	sections := make([]model.DomainReportSection, 0, len(domainScores))
	for _, d := range domainScores {
		sections = append(sections, buildSection(d))
	}

	// canonical order: 창업공감 -> 위기감수 -> 두뇌활용 -> 주체적
	sortSections(sections)

	report := model.SBIReport{
		Sections:    sections,
		BrainStages: BrainStages,
		BOSLaws:     BOSLaws,
	}
	if inconsistencyFlag {
		report.InconsistencyInterpretation = inconsistencyInterpretation
	}
	report.Summary = buildSummary(profile, inconsistencyFlag)
	return report
}

func buildSection(d model.DomainCombinedScore) model.DomainReportSection {
	c := domain.Resolve(d.DomainName)
	con, known := concepts[c]

	var body string
	var stages, laws []string
	switch {
	case d.CombinedScore >= ThresholdHigh:
		body = con.strengthLeadership
		if !known {
			body = "해당 역량을 바탕으로 한 강점이 있습니다. 리더십으로 발휘할 수 있습니다."
		}
	case d.CombinedScore < ThresholdLow:
		name := d.DomainName
		if known {
			name = c.DisplayName()
		}
		body = fmt.Sprintf("해당 역량(%s) 강화를 위해 뇌교육 단계와 BOS 법칙을 활용한 실천을 권장합니다.", name)
		stages = pick(BrainStages, con.lowStageIdx)
		laws = pick(BOSLaws, con.lowLawIdx)
	default:
		body = "해당 역량이 중간 수준입니다. 강점으로 더 발휘하거나, 뇌교육·BOS 실천으로 보강할 수 있습니다."
	}

	// The keyword glossary is emitted for every band.
	interpretation := body
	if len(con.subElements) > 0 {
		interpretation = "【하위요소 키워드】 본 역량은 다음 하위요소로 구성됩니다. " +
			strings.Join(con.subElements, ". ") + ". 【해석】 " + body
	} else {
		interpretation = "【해석】 " + body
	}

	return model.DomainReportSection{
		DomainName:        d.DomainName,
		CombinedScore:     d.CombinedScore,
		Interpretation:    interpretation,
		RecommendedStages: stages,
		RecommendedLaws:   laws,
		Inconsistency:     d.Inconsistency,
		SubElements:       con.subElements,
	}
}

func sortSections(sections []model.DomainReportSection) {
	for i := 1; i < len(sections); i++ {
		for j := i; j > 0 && domain.OrderIndex(sections[j].DomainName) < domain.OrderIndex(sections[j-1].DomainName); j-- {
			sections[j], sections[j-1] = sections[j-1], sections[j]
		}
	}
}

func buildSummary(profile *model.UserProfile, inconsistencyFlag bool) string {
	salutation := "고객"
	if profile != nil && strings.TrimSpace(profile.Name) != "" {
		salutation = strings.TrimSpace(profile.Name) + "님"
	}
	summary := salutation + "의 4대 역량별 통합 지수를 뇌교육·BOS 관점에서 해석했습니다. " +
		"높은 역량은 강점 리더십으로, 낮은 역량은 뇌교육 단계와 BOS 실천 과제로 보강할 수 있습니다."
	summary += profileContextLine(profile)
	if inconsistencyFlag {
		summary += " 설문-뇌파 불일치 역량은 정보 정화·뇌 통합 관점의 추가 해석을 반영했습니다."
	}
	return summary
}

func profileContextLine(profile *model.UserProfile) string {
	if profile == nil {
		return ""
	}
	var parts []string
	if profile.Age != nil {
		parts = append(parts, fmt.Sprintf("연령 %d세", *profile.Age))
	}
	if s := strings.TrimSpace(profile.Occupation); s != "" {
		parts = append(parts, "직업 "+s)
	}
	if s := strings.TrimSpace(profile.SleepHours); s != "" {
		parts = append(parts, "수면 "+s+"시간")
	}
	for _, h := range []struct{ value, label string }{
		{profile.MealHabit, "식사"},
		{profile.BowelHabit, "배변"},
		{profile.ExerciseHabit, "운동"},
	} {
		if s := strings.TrimSpace(h.value); s != "" {
			parts = append(parts, h.label+" "+s)
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return " (" + strings.Join(parts, ", ") + "를 고려한 맞춤 해석을 반영했습니다.)"
}

func pick(list []string, idx []int) []string {
	var out []string
	for _, i := range idx {
		if i >= 0 && i < len(list) {
			out = append(out, list[i])
		}
	}
	return out
}
