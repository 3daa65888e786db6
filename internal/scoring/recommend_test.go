package scoring

import (
	"strings"
	"testing"
)

// closingStatements 三种评分段位的结尾总结
var closingStatements = []string{
	"健康评分较低，建议定期体检，咨询医生",
	"健康评分一般，建议改善生活习惯",
	"健康状态良好，请继续保持健康生活方式",
}

func countClosing(recs []string) int {
	count := 0
	for _, r := range recs {
		for _, c := range closingStatements {
			if r == c {
				count++
			}
		}
	}
	return count
}

// TestRecommendationsAllNormal 测试全部正常时只有一条结尾总结
func TestRecommendationsAllNormal(t *testing.T) {
	result := ComputeScore(realtimeStatus(75, 98, 36.5, 120, 80), nil)

	if len(result.Recommendations) != 1 {
		t.Fatalf("期望 1 条建议,实际 %v", result.Recommendations)
	}
	if result.Recommendations[0] != "健康状态良好，请继续保持健康生活方式" {
		t.Errorf("结尾总结不符: %q", result.Recommendations[0])
	}
}

// TestRecommendationsSingleClosing 测试无论命中多少规则,结尾总结至多一条
func TestRecommendationsSingleClosing(t *testing.T) {
	result := ComputeScore(realtimeStatus(120, 92, 36.5, 120, 80), nil)

	if countClosing(result.Recommendations) != 1 {
		t.Errorf("期望恰好 1 条结尾总结,实际 %v", result.Recommendations)
	}
}

// TestRecommendationsCap 测试建议列表截断到5条
func TestRecommendationsCap(t *testing.T) {
	snap := snapshot(map[string]interface{}{
		"BMI":       28.0,
		"is_smoker": "是",
	}, nil)
	// 命中心率、血氧、体温、吸烟、超重共5条规则,加结尾总结后截断
	result := ComputeScore(realtimeStatus(120, 92, 38.0, 120, 80), snap)

	if len(result.Recommendations) != 5 {
		t.Fatalf("期望 5 条建议,实际 %d 条: %v", len(result.Recommendations), result.Recommendations)
	}
}

// TestRecommendationsPriorityOrder 测试建议按固定优先级排序
func TestRecommendationsPriorityOrder(t *testing.T) {
	result := ComputeScore(realtimeStatus(120, 92, 38.0, 120, 80), nil)

	if len(result.Recommendations) != 4 {
		t.Fatalf("期望 4 条建议,实际 %v", result.Recommendations)
	}
	wantPrefixes := []string{"心率偏高", "血氧偏低", "体温偏高"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(result.Recommendations[i], prefix) {
			t.Errorf("建议[%d]期望以 %q 开头,实际 %q", i, prefix, result.Recommendations[i])
		}
	}
	if countClosing(result.Recommendations[3:]) != 1 {
		t.Errorf("最后一条应为结尾总结,实际 %q", result.Recommendations[3])
	}
}

// TestRecommendationsLowHeartRate 测试心率偏低与体温偏低规则
func TestRecommendationsLowHeartRate(t *testing.T) {
	result := ComputeScore(realtimeStatus(55, 98, 35.8, 120, 80), nil)

	found := map[string]bool{}
	for _, r := range result.Recommendations {
		if strings.HasPrefix(r, "心率偏低") {
			found["hr"] = true
		}
		if strings.HasPrefix(r, "体温偏低") {
			found["temp"] = true
		}
	}
	if !found["hr"] || !found["temp"] {
		t.Errorf("期望包含心率偏低和体温偏低建议,实际 %v", result.Recommendations)
	}
}

// TestClosingStatementLevels 测试结尾总结按评分段位选择
func TestClosingStatementLevels(t *testing.T) {
	cases := []struct {
		score float64
		want  string
	}{
		{50, "健康评分较低，建议定期体检，咨询医生"},
		{70, "健康评分一般，建议改善生活习惯"},
		{90, "健康状态良好，请继续保持健康生活方式"},
	}
	for _, c := range cases {
		if got := closingStatement(c.score); got != c.want {
			t.Errorf("评分 %.0f 的总结期望 %q,实际 %q", c.score, c.want, got)
		}
	}
}
