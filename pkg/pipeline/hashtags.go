package pipeline

// TargetHashtagCount is the hashtag count every result is padded to.
const TargetHashtagCount = 30

// genericHashtags pads out short model-supplied hashtag lists. Order is
// fixed so padding is deterministic.
//
//nolint:gochecknoglobals // fixed padding pool
var genericHashtags = []string{
	"#블로그", "#정보", "#팁", "#가이드", "#트렌드", "#인사이트",
	"#콘텐츠", "#지식공유", "#유용한정보", "#꿀팁", "#추천", "#리뷰",
	"#소개", "#분석", "#전문가", "#실전", "#노하우", "#핵심정리",
}

// padHashtags tops tags up toward TargetHashtagCount from the generic pool,
// skipping exact duplicates, and truncates to the target. The pool is
// smaller than the target, so a very short model list can still come up
// short; the result is simply every distinct tag available.
func padHashtags(tags []string) []string {
	padded := make([]string, len(tags))
	copy(padded, tags)

	seen := make(map[string]bool, len(padded))
	for _, tag := range padded {
		seen[tag] = true
	}

	for _, tag := range genericHashtags {
		if len(padded) >= TargetHashtagCount {
			break
		}
		if !seen[tag] {
			padded = append(padded, tag)
			seen[tag] = true
		}
	}

	if len(padded) > TargetHashtagCount {
		padded = padded[:TargetHashtagCount]
	}
	return padded
}
