package scoring

import (
	"fmt"
	"math"

	"health-backend/internal/models"
)

// Weights 综合评分的权重配置
// 实时数据与评估数据可能对同一风险重复扣分（例如血压），二者只通过
// 这组权重合成，属于可调策略，不做推导。
type Weights struct {
	Realtime   float64 // 实时数据权重
	Assessment float64 // 评估数据权重
	Historical float64 // 历史趋势权重
}

// DefaultWeights 默认权重配置
var DefaultWeights = Weights{
	Realtime:   0.6,
	Assessment: 0.3,
	Historical: 0.1,
}

// historicalPlaceholder 历史趋势占位分，尚未实现真实的趋势回归
const historicalPlaceholder = 95.0

// ComputeScore 计算综合健康评分
// 两个输入都允许为nil，缺失的输入只是跳过对应的加权项，不是错误。
func ComputeScore(realtime *models.VitalStatus, assessment *models.AssessmentSnapshot) models.HealthScore {
	return ComputeScoreWithWeights(realtime, assessment, DefaultWeights)
}

// ComputeScoreWithWeights 按指定权重计算综合健康评分
func ComputeScoreWithWeights(realtime *models.VitalStatus, assessment *models.AssessmentSnapshot, weights Weights) models.HealthScore {
	score := 100.0
	factors := []string{}

	if realtime != nil {
		realtimeScore := realtimeScore(realtime)
		score -= (100 - realtimeScore) * weights.Realtime
		factors = append(factors, fmt.Sprintf("实时数据: %.1f分", realtimeScore))
	}

	if assessment != nil {
		assessmentScore := assessmentScore(assessment)
		score -= (100 - assessmentScore) * weights.Assessment
		factors = append(factors, fmt.Sprintf("评估数据: %.1f分", assessmentScore))
	}

	score -= (100 - historicalPlaceholder) * weights.Historical

	final := math.Round(clamp(score, 0, 100)*10) / 10
	level, color := levelFor(final)

	return models.HealthScore{
		Score:           final,
		Level:           level,
		Color:           color,
		Factors:         factors,
		Recommendations: recommendations(realtime, assessment, final),
	}
}

// realtimeScore 实时数据得分：按超出范围的程度扣固定分值
// 严重区间优先判定，血压的两个级别独立判定、不叠加扣分。
func realtimeScore(realtime *models.VitalStatus) float64 {
	score := 100.0

	hr := asFloat(realtime.HeartRate.Value, 75)
	if hr < 50 || hr > 110 {
		score -= 25
	} else if hr < 60 || hr > 100 {
		score -= 15
	}

	spo2 := asFloat(realtime.BloodOxygen.Value, 98)
	if spo2 < 90 {
		score -= 35
	} else if spo2 < 95 {
		score -= 20
	}

	temp := asFloat(realtime.Temperature.Value, 36.5)
	if temp < 35.5 || temp > 38.0 {
		score -= 20
	} else if temp < 36.0 || temp > 37.2 {
		score -= 10
	}

	if systolic, diastolic, ok := parseBP(realtime.BloodPressure.Value); ok {
		if systolic > 140 || diastolic > 90 {
			score -= 25
		} else if systolic > 130 || diastolic > 85 {
			score -= 15
		}
	}

	return clamp(score, 0, 100)
}

// assessmentScore 评估数据得分
func assessmentScore(assessment *models.AssessmentSnapshot) float64 {
	score := 100.0

	bmi := assessment.BMI()
	if bmi < 16 || bmi > 30 {
		score -= 20
	} else if bmi < 18.5 || bmi > 24.9 {
		score -= 10
	}

	// 每个阳性预测结果扣25分，多个疾病累加
	for _, result := range assessment.Predictions {
		if result.Prediction == 1 {
			score -= 25
		}
	}

	if assessment.FlagSet("is_smoker") {
		score -= 15
	}
	if assessment.FlagSet("has_high_bp") {
		score -= 10
	}
	if assessment.FlagSet("is_diabetic") {
		score -= 20
	}

	return clamp(score, 0, 100)
}

// levelFor 按固定阈值映射评分等级和颜色
func levelFor(score float64) (models.ScoreLevel, string) {
	switch {
	case score >= 90:
		return models.LevelExcellent, "green"
	case score >= 75:
		return models.LevelGood, "blue"
	case score >= 60:
		return models.LevelFair, "yellow"
	default:
		return models.LevelAttention, "red"
	}
}

// asFloat 从摘要指标中取数值，非数值时返回默认值
func asFloat(v interface{}, def float64) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case float64:
		return n
	}
	return def
}

// parseBP 解析 "120/80" 形式的血压值
func parseBP(v interface{}) (int, int, bool) {
	s, ok := v.(string)
	if !ok {
		return 0, 0, false
	}
	var systolic, diastolic int
	if _, err := fmt.Sscanf(s, "%d/%d", &systolic, &diastolic); err != nil {
		return 0, 0, false
	}
	return systolic, diastolic, true
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
