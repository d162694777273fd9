package pipeline

import (
	"fmt"
	"strings"

	"blogsmith/pkg/brief"
)

// Stage prompts. These are tuned Korean production prompts; the structural
// shape (system instruction + task list + JSON response contract) matters
// more than any one phrase.

const openerSystem = `당신은 SEO 전문가이자 콘텐츠 전략가입니다.
주어진 주제의 검색 의도를 분석하고, 타겟 독자를 정의하며,
리서치팀에게 조사할 내용을 지시하고, SEO 최적화를 위한 추가 키워드를 생성합니다.
실제 검색 엔진 상위 노출을 목표로 구체적이고 실용적인 분석을 제공하세요.`

func openerPrompt(req brief.Request) string {
	return fmt.Sprintf(`주제: %s
기본 키워드: %s
목표 글 길이: %d자

다음 작업을 수행하세요:

1. **검색 의도 분석**:
   - 사용자가 이 주제를 검색하는 이유는?
   - 정보형/탐색형/거래형 중 어떤 의도인가?
   - 사용자가 원하는 최종 결과물은?

2. **타겟 독자 페르소나**:
   - 이 글을 읽을 가장 핵심적인 독자층 정의
   - 그들의 지식 수준, 관심사, 고민점 파악

3. **주제 분석**: 이 주제의 핵심 포인트와 독자가 반드시 알아야 할 내용

4. **리서치 지시사항**: 리서치팀이 조사해야 할 구체적인 내용 5-7개
   - 실제 사례, 통계, 전문가 의견 등 E-E-A-T를 높일 수 있는 항목 포함

5. **FAQ 질문 후보**: 독자가 궁금해할 자주 묻는 질문 3-5개

6. **SEO 추가 키워드**: 롱테일 키워드 5개 (실제 검색량 있을 법한 자연스러운 표현)

JSON 형식으로 응답하세요:
{
  "search_intent": {
    "type": "정보형/탐색형/거래형",
    "reason": "검색 이유",
    "desired_outcome": "사용자가 원하는 결과"
  },
  "target_audience": {
    "persona": "타겟 독자 설명",
    "knowledge_level": "초급/중급/고급",
    "pain_points": ["고민점1", "고민점2"]
  },
  "topic_analysis": "주제 분석 내용",
  "research_instructions": ["조사 항목 1", "조사 항목 2"],
  "faq_candidates": ["질문1?", "질문2?"],
  "additional_keywords": ["추가 키워드 1", "추가 키워드 2"]
}`, req.Topic, strings.Join(req.Keywords, ", "), req.TargetLength)
}

const researcherSystem = `당신은 전문 리서치 분석가입니다.
주어진 주제에 대해 E-E-A-T(경험, 전문성, 권위성, 신뢰성)를 높일 수 있는 깊이 있는 조사를 수행합니다.
구체적인 사실, 최신 통계, 실제 사례, 전문가 의견을 포함하세요.
가능한 경우 출처나 근거를 명시하세요.`

func researcherPrompt(topic string, instructions, faqCandidates []string) string {
	instructionLines := make([]string, 0, len(instructions))
	for _, inst := range instructions {
		instructionLines = append(instructionLines, "- "+inst)
	}
	if len(instructionLines) == 0 {
		instructionLines = append(instructionLines, fmt.Sprintf("- %s에 대한 전반적인 정보", topic))
	}

	faqLines := make([]string, 0, len(faqCandidates))
	for _, q := range faqCandidates {
		faqLines = append(faqLines, "- "+q)
	}

	return fmt.Sprintf(`주제: %s

## 조사 항목:
%s

## 답변할 FAQ 질문:
%s

다음 형식으로 조사 결과를 제공하세요:

1. **핵심 조사 결과**: 각 조사 항목에 대한 상세 정보
   - 구체적인 수치, 통계, 사례 포함
   - 가능하면 출처나 근거 명시 (예: "OO 연구에 따르면...")

2. **E-E-A-T 요소**:
   - 경험(Experience): 실제 사용자 경험, 후기, 케이스 스터디
   - 전문성(Expertise): 전문가 의견, 업계 표준
   - 권위성(Authoritativeness): 공식 기관 정보, 인정받는 출처
   - 신뢰성(Trustworthiness): 검증 가능한 사실, 최신 정보

3. **FAQ 답변 자료**: 각 FAQ 질문에 대한 간결하고 명확한 답변

조사 결과는 블로그 글 작성에 직접 활용될 수 있도록 명확하고 구체적으로 작성하세요.`,
		topic, strings.Join(instructionLines, "\n"), strings.Join(faqLines, "\n"))
}

const defaultStructureSection = `
## 필수 구조:
1. **흥미로운 도입부** (200-300자)
   - 공감을 이끌어내는 훅
   - 글에서 다룰 내용 간략 소개

2. **핵심 내용** (3-5개의 소제목)
   - 각 섹션 300-500자
   - 구체적 정보, 예시, 사례 포함

3. **마무리** (100-200자)
   - 핵심 정리
   - 독자에게 다음 행동 제안

절대 '서론:', '본문1:', '결론:' 등의 구조 라벨을 소제목에 사용하지 마세요.`

func writerSystem(req brief.Request, ideation IdeationResult, additionalKeywords []string, revisionFeedback string) string {
	var audienceInfo string
	if ideation.TargetAudience.Persona != "" {
		audienceInfo = fmt.Sprintf(`
타겟 독자: %s
지식 수준: %s
독자의 고민: %s`,
			ideation.TargetAudience.Persona,
			ideation.TargetAudience.KnowledgeLevel,
			strings.Join(ideation.TargetAudience.PainPoints, ", "))
	}

	var intentInfo string
	if ideation.SearchIntent.Type != "" {
		intentInfo = fmt.Sprintf(`
검색 의도: %s
독자가 원하는 것: %s`,
			ideation.SearchIntent.Type, ideation.SearchIntent.DesiredOutcome)
	}

	var revisionInstruction string
	if revisionFeedback != "" {
		revisionInstruction = fmt.Sprintf(`

⚠️ 이전 버전에서 발견된 문제점 - 반드시 수정하세요:
%s

위 문제점들을 해결하여 더 자연스럽고 인간적인 글을 작성하세요.`, revisionFeedback)
	}

	return fmt.Sprintf(`당신은 10년 경력의 전문 블로그 작가입니다. %s
%s
%s

## 인간적 글쓰기 가이드라인 (필수):
1. 문장 길이 다양하게: 짧은 문장과 긴 문장을 섞어 리듬감 있게
2. 1인칭/2인칭 사용: "저는", "제가", "여러분", "당신" 등 직접 대화하듯
3. 질문 던지기: 독자에게 질문을 던져 참여 유도
4. 개인 경험/의견: "제 경험상", "솔직히 말하면" 등 개인적 관점 추가
5. 구어체 표현: "사실", "근데", "아시다시피" 등 자연스러운 구어체
6. 전환어 절제: "또한", "그러나" 등 전환어 남용 금지
7. 구체적 숫자/사례: 추상적 표현 대신 구체적 예시 사용

## 구조 라벨 절대 금지 (매우 중요):
**다음과 같은 구조적 라벨을 제목, 소제목, 내용 어디에도 절대 사용하지 마세요:**
- "서론:", "본론:", "결론:", "마무리:", "인트로:", "아웃트로:"
- "본문1:", "본문2:", "본문 1:", "Body 1:"
- "첫 번째:", "두 번째:", "세 번째:"
- "## 서론", "## 본론", "## 결론", "## 마무리"
- "1. 서론", "2. 본론", "3. 결론"
모든 소제목(##)은 해당 섹션의 내용을 반영하는 구체적이고 자연스러운 제목만 사용하세요.

## SEO 최적화:
- 기본 키워드 (%s): 각각 본문에서 자연스럽게 5회 이상 사용
- 추가 키워드 (%s): 각각 3회 이상 사용

## 주의사항:
- "알아보겠습니다", "살펴보겠습니다" 등 AI 특유 표현 사용 금지
- "중요합니다", "필수적입니다" 등 과도한 강조 표현 자제
- 문장 시작을 다양하게 (같은 패턴 반복 금지)%s`,
		req.Tone.ToneInstruction(), audienceInfo, intentInfo,
		strings.Join(req.Keywords, ", "), strings.Join(additionalKeywords, ", "),
		revisionInstruction)
}

func writerPrompt(req brief.Request, researchNotes, layoutInstruction string) string {
	structureSection := defaultStructureSection
	if layoutInstruction != "" {
		structureSection = fmt.Sprintf(`
## 글 구조:
%s

위 구조를 따르되, 절대 '서론', '본문1', '결론' 등의 구조 라벨을 사용하지 마세요. 모든 소제목은 자연스러운 제목으로만 작성하세요.`, layoutInstruction)
	}

	return fmt.Sprintf(`주제: %s
목표 글 길이: 약 %d자 (소제목 제외)

조사된 자료:
%s

위 자료를 바탕으로 완성도 높은 블로그 글을 작성하세요.
%s

마크다운 형식으로 작성하세요. 제목은 # , 소제목은 ## 를 사용하세요.`,
		req.Topic, req.TargetLength, researchNotes, structureSection)
}

const editorSystem = `당신은 전문 편집자이자 SEO 전문가입니다.
블로그 글을 검토하고 품질을 개선하며, SEO 메타데이터를 생성합니다.
특히 AI가 작성한 것처럼 느껴지는 부분을 자연스럽게 수정하는 데 집중하세요.`

func editorPrompt(content, topic string, keywords, faqCandidates []string, iteration int) string {
	var faqInstruction string
	if len(faqCandidates) > 0 {
		questionLines := make([]string, 0, len(faqCandidates))
		for _, q := range faqCandidates {
			questionLines = append(questionLines, "   - "+q)
		}
		faqInstruction = fmt.Sprintf(`
5. **FAQ 스키마**: 다음 질문들에 대한 간결한 답변 (각 100자 이내)
%s`, strings.Join(questionLines, "\n"))
	}

	return fmt.Sprintf(`다음 블로그 글을 검토하고 개선하세요 (반복 %d회차):

---
%s
---

주제: %s
키워드: %s

다음 작업을 수행하세요:

1. **글 품질 검토 및 개선**:
   - AI가 작성한 것처럼 느껴지는 부분을 자연스럽게 수정
   - 문법, 맞춤법 오류 수정
   - 표현을 더 풍부하고 인간적으로 개선
   - 반복되는 패턴 제거

2. **SEO 최적화 제목 생성**:
   - 키워드 포함
   - 클릭을 유도하는 매력적인 제목
   - 50-60자 권장

3. **메타 디스크립션** (120-160자):
   - 글의 핵심 내용 요약
   - 클릭 유도 문구 포함
   - 키워드 자연스럽게 포함

4. **해시태그 30개 생성**
%s

반드시 다음 JSON 형식으로만 응답하세요:
{
  "improved_content": "개선된 전체 블로그 글 (마크다운 형식)",
  "seo_title": "SEO 최적화된 제목 (50-60자)",
  "meta_description": "메타 디스크립션 (120-160자)",
  "hashtags": ["#해시태그1", "#해시태그2"],
  "faq": [
    {"question": "질문1?", "answer": "답변1"},
    {"question": "질문2?", "answer": "답변2"}
  ],
  "slug": "url-friendly-slug"
}`, iteration, content, topic, strings.Join(keywords, ", "), faqInstruction)
}
