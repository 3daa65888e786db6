package scoring

import (
	"sort"

	"health-backend/internal/models"
)

// maxRecommendations 单次最多输出的建议条数
const maxRecommendations = 5

// recommendContext 建议规则的判定输入
type recommendContext struct {
	hasRealtime bool
	heartRate   float64
	bloodOxygen float64
	temperature float64
	assessment  *models.AssessmentSnapshot
}

// rule 一条建议规则：优先级 + 判定条件 + 建议文案
type rule struct {
	priority int
	when     func(ctx *recommendContext) bool
	message  string
}

// 规则表按优先级排序后逐条判定，取代按控制流顺序append的隐式排序
var rules = []rule{
	{10, func(ctx *recommendContext) bool { return ctx.hasRealtime && ctx.heartRate > 100 },
		"心率偏高，建议适当休息，避免剧烈运动"},
	{20, func(ctx *recommendContext) bool { return ctx.hasRealtime && ctx.heartRate < 60 },
		"心率偏低，建议适量运动增强心肺功能"},
	{30, func(ctx *recommendContext) bool { return ctx.hasRealtime && ctx.bloodOxygen < 95 },
		"血氧偏低，建议保持通风，必要时就医检查"},
	{40, func(ctx *recommendContext) bool { return ctx.hasRealtime && ctx.temperature > 37.2 },
		"体温偏高，建议多饮水，注意休息"},
	{50, func(ctx *recommendContext) bool { return ctx.hasRealtime && ctx.temperature < 36.0 },
		"体温偏低，建议注意保暖"},
	{60, func(ctx *recommendContext) bool { return ctx.assessment != nil && ctx.assessment.FlagSet("is_smoker") },
		"建议戒烟，吸烟对心血管健康影响重大"},
	{70, func(ctx *recommendContext) bool { return ctx.assessment != nil && ctx.assessment.BMI() < 18.5 },
		"体重偏轻，建议增加营养摄入"},
	{80, func(ctx *recommendContext) bool { return ctx.assessment != nil && ctx.assessment.BMI() > 24.9 },
		"体重偏重，建议控制饮食，增加运动"},
}

// recommendations 生成健康建议列表
// 规则按优先级评估，结尾只追加一条评分段位总结，整体截断到5条。
func recommendations(realtime *models.VitalStatus, assessment *models.AssessmentSnapshot, score float64) []string {
	ctx := &recommendContext{
		assessment: assessment,
	}
	if realtime != nil {
		ctx.hasRealtime = true
		ctx.heartRate = asFloat(realtime.HeartRate.Value, 75)
		ctx.bloodOxygen = asFloat(realtime.BloodOxygen.Value, 98)
		ctx.temperature = asFloat(realtime.Temperature.Value, 36.5)
	}

	sorted := make([]rule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].priority < sorted[j].priority
	})

	result := []string{}
	for _, r := range sorted {
		if r.when(ctx) {
			result = append(result, r.message)
		}
	}

	// 结尾总结只追加一条，无论前面命中多少规则
	result = append(result, closingStatement(score))

	if len(result) > maxRecommendations {
		result = result[:maxRecommendations]
	}
	return result
}

// closingStatement 评分段位的结尾总结
func closingStatement(score float64) string {
	switch {
	case score < 60:
		return "健康评分较低，建议定期体检，咨询医生"
	case score < 75:
		return "健康评分一般，建议改善生活习惯"
	default:
		return "健康状态良好，请继续保持健康生活方式"
	}
}
