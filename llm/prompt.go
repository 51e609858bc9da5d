// Copyright 2025 Blog SEO Writer
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package llm

import (
	"fmt"
	"strings"
)

// SystemPrompt fixes the writer persona for every generation.
const SystemPrompt = "당신은 한국어 SEO 전문 작가입니다."

const promptTemplate = `
다음 조건을 모두 만족하는 한국어 SEO 블로그 글을 작성하세요.

입력:
- 키워드: %s
- 톤: %s
- 목표 길이: 약 %d자

출력 형식(반드시 마크다운):
1) 클릭 유도 제목 5개
2) 최종 제목 1개
3) 도입부
4) H2 소제목 3~5개 + 각 섹션 내용
5) 결론(요약 + CTA)
6) 메타 설명(150자 내외)

주의사항:
- 출처 없는 숫자/통계는 단정하지 말 것
- 의료/법률/재무 등 고위험 조언은 일반 정보임을 명시하고 전문가 상담 권장 문구 포함
`

// BuildPrompt renders the article prompt for the given generation
// parameters. The section template (candidate headlines, final headline,
// introduction, H2 sections, conclusion, meta description) is part of the
// output contract and must stay stable.
func BuildPrompt(keyword, tone string, length int) string {
	return strings.TrimSpace(fmt.Sprintf(promptTemplate, keyword, tone, length))
}
