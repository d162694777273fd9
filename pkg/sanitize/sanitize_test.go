package sanitize

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogsmith/pkg/gen"
)

const labeledDraft = `# 제주도 여행 가이드

## 서론

제주도는 사계절 내내 아름다운 섬입니다.

## 본문 1

한라산 등반은 준비가 필요합니다.

2. 본론

해안 도로 드라이브 코스를 소개합니다.

## 여행 전 체크리스트

짐은 가볍게 싸는 편이 좋습니다.
`

func TestScan_FlagsLabeledHeadings(t *testing.T) {
	detections := Scan(labeledDraft)
	require.Len(t, detections, 3)
	assert.Equal(t, 3, detections[0].Line)
	assert.Equal(t, "## 서론", detections[0].Text)
	assert.Equal(t, "## 본문 1", detections[1].Text)
	assert.Equal(t, "2. 본론", detections[2].Text)
}

func TestScan_EnglishLabels(t *testing.T) {
	content := "# Guide\n\n## Introduction\n\nSome opening text.\n\n## Body 2\n\nMore text.\n\nFirst: a point.\n"
	detections := Scan(content)
	require.Len(t, detections, 3)
	assert.Equal(t, "## Introduction", detections[0].Text)
	assert.Equal(t, "## Body 2", detections[1].Text)
	assert.Equal(t, "First: a point.", detections[2].Text)
}

func TestScan_CleanDraftIsEmpty(t *testing.T) {
	content := "# 제주도 여행 가이드\n\n## 한라산이 특별한 이유\n\n등반 준비물을 챙기세요.\n\n## 숨은 해변 세 곳\n\n지도에 없는 곳도 있습니다.\n"
	assert.Empty(t, Scan(content))
}

func TestClean_NoDetectionsSkipsGenerationCall(t *testing.T) {
	called := false
	port := gen.PortFunc(func(_ context.Context, _, _, _ string) (string, error) {
		called = true
		return "", nil
	})

	content := "## 한라산이 특별한 이유\n\n등반 준비물을 챙기세요."
	result := New(port).Clean(context.Background(), gen.ProviderOpenAI, content)

	assert.False(t, called)
	assert.Equal(t, content, result.Content)
	assert.Empty(t, result.Detections)
	assert.Empty(t, result.Note)
	assert.False(t, result.Corrected)
}

func TestClean_AcceptsRewrite(t *testing.T) {
	rewrite := strings.Replace(labeledDraft, "## 서론", "## 사계절 매력의 섬", 1)
	rewrite = strings.Replace(rewrite, "## 본문 1", "## 한라산 등반 준비", 1)
	rewrite = strings.Replace(rewrite, "2. 본론", "## 해안 도로 드라이브", 1)

	port := gen.PortFunc(func(_ context.Context, provider, user, system string) (string, error) {
		assert.Equal(t, gen.ProviderGemini, provider)
		assert.Contains(t, user, labeledDraft)
		assert.Contains(t, system, "편집 전문가")
		return rewrite, nil
	})

	result := New(port).Clean(context.Background(), gen.ProviderGemini, labeledDraft)
	assert.True(t, result.Corrected)
	assert.Equal(t, rewrite, result.Content)
	assert.Equal(t, "구조 라벨 3개 감지 및 제거됨", result.Note)
}

func TestClean_RejectsTruncatedRewrite(t *testing.T) {
	port := gen.PortFunc(func(_ context.Context, _, _, _ string) (string, error) {
		return "## 짧은 결과", nil
	})

	result := New(port).Clean(context.Background(), gen.ProviderOpenAI, labeledDraft)
	assert.False(t, result.Corrected)
	assert.Equal(t, labeledDraft, result.Content)
	assert.Contains(t, result.Note, "자동 제거 실패")
	require.Len(t, result.Detections, 3)
}

func TestClean_GenerationFailureKeepsOriginal(t *testing.T) {
	port := gen.PortFunc(func(_ context.Context, _, _, _ string) (string, error) {
		return "", errors.New("connection reset")
	})

	result := New(port).Clean(context.Background(), gen.ProviderOpenAI, labeledDraft)
	assert.False(t, result.Corrected)
	assert.Equal(t, labeledDraft, result.Content)
	assert.Contains(t, result.Note, "자동 제거 실패")
	assert.Contains(t, result.Note, "connection reset")
}
