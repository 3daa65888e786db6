package service

import (
	"strings"
	"testing"
	"time"

	"health-backend/internal/config"
	"health-backend/internal/models"
)

func dates(t time.Time, offsets ...int) map[string]bool {
	set := map[string]bool{}
	for _, off := range offsets {
		set[t.AddDate(0, 0, off).Format(dateLayout)] = true
	}
	return set
}

// TestComputeStreakToday 测试今天已签到时的连续天数
func TestComputeStreakToday(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	checkedIn, streak := computeStreak(dates(today, 0, -1, -2), today)
	if !checkedIn {
		t.Error("今天已签到但状态为未签到")
	}
	if streak != 3 {
		t.Errorf("连续天数期望 3,实际 %d", streak)
	}
}

// TestComputeStreakYesterdayAnchor 测试今天未签到时从昨天起算
func TestComputeStreakYesterdayAnchor(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	checkedIn, streak := computeStreak(dates(today, -1, -2), today)
	if checkedIn {
		t.Error("今天未签到但状态为已签到")
	}
	if streak != 2 {
		t.Errorf("连续天数期望 2,实际 %d", streak)
	}
}

// TestComputeStreakBroken 测试签到中断后连续天数重新计算
func TestComputeStreakBroken(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	// 前天空缺,只有今天算连续
	checkedIn, streak := computeStreak(dates(today, 0, -2, -3), today)
	if !checkedIn || streak != 1 {
		t.Errorf("期望已签到且连续1天,实际 %v %d", checkedIn, streak)
	}

	// 今天和昨天都空缺
	checkedIn, streak = computeStreak(dates(today, -2, -3), today)
	if checkedIn || streak != 0 {
		t.Errorf("期望未签到且连续0天,实际 %v %d", checkedIn, streak)
	}
}

// TestComputeStreakEmpty 测试无签到记录
func TestComputeStreakEmpty(t *testing.T) {
	today := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	checkedIn, streak := computeStreak(map[string]bool{}, today)
	if checkedIn || streak != 0 {
		t.Errorf("空记录期望未签到且连续0天,实际 %v %d", checkedIn, streak)
	}
}

// TestAllowAlertCooldown 测试冷却时间内同类预警只触发一次
func TestAllowAlertCooldown(t *testing.T) {
	s := NewGuardianService(nil, &config.Config{})
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	if !s.allowAlert("u1:心率过高", now) {
		t.Error("首次预警应允许触发")
	}
	if s.allowAlert("u1:心率过高", now.Add(time.Minute)) {
		t.Error("冷却时间内的同类预警应被抑制")
	}
	if s.allowAlert("u1:心率过高", now.Add(alertCooldown-time.Second)) {
		t.Error("冷却时间边界内的同类预警应被抑制")
	}
}

// TestAllowAlertAfterCooldown 测试冷却时间过后允许再次触发
func TestAllowAlertAfterCooldown(t *testing.T) {
	s := NewGuardianService(nil, &config.Config{})
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	if !s.allowAlert("u1:心率过高", now) {
		t.Error("首次预警应允许触发")
	}
	if !s.allowAlert("u1:心率过高", now.Add(alertCooldown)) {
		t.Error("冷却时间过后的预警应允许触发")
	}
	// 再次触发后重新进入冷却
	if s.allowAlert("u1:心率过高", now.Add(alertCooldown+time.Minute)) {
		t.Error("重新触发后冷却时间内的预警应被抑制")
	}
}

// TestAllowAlertIndependentKeys 测试不同用户和不同类型的预警互不影响
func TestAllowAlertIndependentKeys(t *testing.T) {
	s := NewGuardianService(nil, &config.Config{})
	now := time.Date(2026, 8, 31, 12, 0, 0, 0, time.Local)

	if !s.allowAlert("u1:心率过高", now) {
		t.Error("首次预警应允许触发")
	}
	if !s.allowAlert("u1:血压过高", now) {
		t.Error("同一用户的不同预警类型应独立计算冷却")
	}
	if !s.allowAlert("u2:心率过高", now) {
		t.Error("不同用户的同类预警应独立计算冷却")
	}
}

func newAdviceConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Advice.Model = "test-model"
	cfg.Advice.TimeoutSeconds = 5
	return cfg
}

// TestBuildHealthPromptStable 测试相同输入生成相同提示词
func TestBuildHealthPromptStable(t *testing.T) {
	s := NewAdviceService(newAdviceConfig())

	inputs := map[string]interface{}{
		"年龄":  55,
		"BMI": 27.5,
		"吸烟":  "是",
	}
	a := s.BuildHealthPrompt("心脏病风险预测", inputs, 1, []float64{0.3, 0.7})
	b := s.BuildHealthPrompt("心脏病风险预测", inputs, 1, []float64{0.3, 0.7})

	if a != b {
		t.Error("相同输入生成的提示词不一致")
	}
	if !strings.Contains(a, "心脏病风险预测") {
		t.Error("提示词缺少任务名称")
	}
	if !strings.Contains(a, "70.00%") {
		t.Errorf("提示词缺少患病概率,实际:\n%s", a)
	}
	if !strings.Contains(a, "BMI: 27.5") {
		t.Error("提示词缺少用户输入字段")
	}
}

// TestBuildHealthPromptEmptyProbability 测试概率缺失时不崩溃
func TestBuildHealthPromptEmptyProbability(t *testing.T) {
	s := NewAdviceService(newAdviceConfig())

	prompt := s.BuildHealthPrompt("糖尿病风险预测", nil, 0, nil)
	if !strings.Contains(prompt, "0.00%") {
		t.Error("概率缺失时应按0处理")
	}
}

// TestBuildChatContext 测试健康画像的组装
func TestBuildChatContext(t *testing.T) {
	snap := &models.AssessmentSnapshot{
		Timestamp: time.Date(2026, 8, 30, 9, 30, 0, 0, time.Local),
		Predictions: map[string]models.PredictionResult{
			"心脏病风险预测": {Prediction: 1},
			"糖尿病风险预测": {Prediction: 0},
		},
	}
	samples := []models.VitalSample{
		{HeartRate: 80, SystolicBP: 120},
		{HeartRate: 90, SystolicBP: 130},
	}

	got := buildChatContext("张三", snap, samples)

	if !strings.Contains(got, "- 用户名: 张三") {
		t.Errorf("画像缺少用户名:\n%s", got)
	}
	if !strings.Contains(got, "心脏病风险预测=高风险") || !strings.Contains(got, "糖尿病风险预测=低风险") {
		t.Errorf("画像缺少评估结果:\n%s", got)
	}
	if !strings.Contains(got, "2026-08-30 09:30") {
		t.Errorf("画像缺少评估时间:\n%s", got)
	}
	if !strings.Contains(got, "心率 85 bpm, 收缩压 125 mmHg") {
		t.Errorf("体征均值计算不符:\n%s", got)
	}
}

// TestBuildChatContextEmpty 测试数据缺失时画像逐项跳过
func TestBuildChatContextEmpty(t *testing.T) {
	got := buildChatContext("", nil, nil)

	if got != "用户健康画像：\n" {
		t.Errorf("空数据画像应只有标题,实际:\n%s", got)
	}
}

// TestBuildChatContextRecentWindow 测试体征均值只取最近的采样
func TestBuildChatContextRecentWindow(t *testing.T) {
	samples := make([]models.VitalSample, 0, 15)
	// 前5条心率200,后10条心率70,均值应只看后10条
	for i := 0; i < 5; i++ {
		samples = append(samples, models.VitalSample{HeartRate: 200, SystolicBP: 120})
	}
	for i := 0; i < 10; i++ {
		samples = append(samples, models.VitalSample{HeartRate: 70, SystolicBP: 120})
	}

	got := buildChatContext("", nil, samples)
	if !strings.Contains(got, "心率 70 bpm") {
		t.Errorf("均值应只统计最近10条采样:\n%s", got)
	}
}

// TestBuildChatPrompt 测试对话提示词的拼接
func TestBuildChatPrompt(t *testing.T) {
	messages := []ChatTurn{
		{Role: "user", Content: "我最近心率有点高"},
		{Role: "assistant", Content: "建议先休息观察"},
		{Role: "user", Content: "需要去医院吗"},
	}

	got := buildChatPrompt("用户健康画像：\n", messages)

	if !strings.Contains(got, "HealthGuard") {
		t.Error("提示词缺少助手设定")
	}
	if !strings.Contains(got, "User: 我最近心率有点高") {
		t.Error("用户消息未拼接")
	}
	if !strings.Contains(got, "Assistant: 建议先休息观察") {
		t.Error("助手消息未拼接")
	}
	if !strings.HasSuffix(got, "Assistant: ") {
		t.Errorf("提示词应以 Assistant: 结尾,实际结尾: %q", got[len(got)-20:])
	}
}

// TestSnapshotFromRecord 测试持久化记录还原为评估快照
func TestSnapshotFromRecord(t *testing.T) {
	record := &models.AssessmentRecord{
		UserID:      "u1",
		Timestamp:   time.Now(),
		FormData:    `{"BMI": 26.0, "is_smoker": "是"}`,
		Predictions: `{"heart": {"prediction": 1, "probability": [0.2, 0.8]}}`,
	}

	snapshot := SnapshotFromRecord(record)
	if snapshot == nil {
		t.Fatal("合法记录还原失败")
	}
	if snapshot.BMI() != 26.0 {
		t.Errorf("BMI期望 26.0,实际 %.1f", snapshot.BMI())
	}
	if !snapshot.FlagSet("is_smoker") {
		t.Error("吸烟标记未还原")
	}
	pred, ok := snapshot.Predictions["heart"]
	if !ok || pred.Prediction != 1 {
		t.Errorf("预测结果未还原: %v", snapshot.Predictions)
	}
}

// TestImprovementFor 测试趋势描述的比较逻辑
func TestImprovementFor(t *testing.T) {
	point := func(score float64) models.TrendPoint {
		return models.TrendPoint{Date: "2026-08-31", Score: score}
	}

	cases := []struct {
		name   string
		trends []models.TrendPoint
		want   string
	}{
		{"无记录", []models.TrendPoint{}, "数据不足"},
		{"单条记录", []models.TrendPoint{point(90)}, "保持稳定"},
		{"评分上升", []models.TrendPoint{point(90), point(80)}, "有所改善"},
		{"评分下降", []models.TrendPoint{point(70), point(85)}, "有所下降"},
		{"小幅波动", []models.TrendPoint{point(90), point(89)}, "保持稳定"},
	}

	for _, c := range cases {
		if got := improvementFor(c.trends); got != c.want {
			t.Errorf("%s: 期望 %q,实际 %q", c.name, c.want, got)
		}
	}
}

// TestSnapshotFromRecordBadJSON 测试损坏的记录返回nil而不是错误
func TestSnapshotFromRecordBadJSON(t *testing.T) {
	record := &models.AssessmentRecord{
		UserID:      "u1",
		FormData:    `{broken`,
		Predictions: `{}`,
	}

	if SnapshotFromRecord(record) != nil {
		t.Error("损坏的表单数据应返回nil")
	}
}
