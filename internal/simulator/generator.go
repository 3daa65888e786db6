package simulator

import (
	"math"
	"math/rand"
	"time"

	"health-backend/internal/models"
)

// Generator 生成模拟的生命体征采样，输出只依赖内部随机数状态
type Generator struct {
	rng *rand.Rand
}

// NewGenerator 创建采样生成器
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed 创建指定随机种子的生成器，便于复现
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// DefaultSample 模拟器未启动时返回的默认采样
func DefaultSample() models.VitalSample {
	return models.VitalSample{
		HeartRate:   75,
		BloodOxygen: 98,
		Temperature: 36.5,
		SystolicBP:  120,
		DiastolicBP: 80,
		Timestamp:   time.Now(),
	}
}

// Next 生成一条正常模式的采样
func (g *Generator) Next() models.VitalSample {
	// 心率：基准75，正常范围60-100，运动时可到150
	heartRate := clampInt(60, 150, 75+g.randInt(-15, 25))

	// 血氧：正常范围95-100
	bloodOxygen := clampInt(90, 100, 98+g.randInt(-3, 2))

	// 体温：保留1位小数
	temperature := round1(36.5 + g.randFloat(-0.4, 0.7))

	// 血压：收缩压90-140，舒张压60-90
	systolic := clampInt(90, 140, 120+g.randInt(-15, 20))
	diastolic := clampInt(60, 90, 80+g.randInt(-10, 10))

	return models.VitalSample{
		HeartRate:   heartRate,
		BloodOxygen: bloodOxygen,
		Temperature: temperature,
		SystolicBP:  systolic,
		DiastolicBP: diastolic,
		Timestamp:   time.Now(),
	}
}

// NextAlert 生成一条异常模式的采样，三种异常类型等概率
func (g *Generator) NextAlert() models.VitalSample {
	sample := models.VitalSample{Timestamp: time.Now()}

	alertTypes := []models.AlertType{
		models.AlertHighHeartRate,
		models.AlertLowOxygen,
		models.AlertFever,
	}

	switch alertTypes[g.rng.Intn(len(alertTypes))] {
	case models.AlertHighHeartRate:
		sample.HeartRate = g.randInt(120, 150)
		sample.BloodOxygen = 98
		sample.Temperature = 37.0
		sample.SystolicBP = 130
		sample.DiastolicBP = 85
	case models.AlertLowOxygen:
		sample.HeartRate = 95
		sample.BloodOxygen = g.randInt(85, 92)
		sample.Temperature = 36.8
		sample.SystolicBP = 115
		sample.DiastolicBP = 75
	case models.AlertFever:
		sample.HeartRate = 105
		sample.BloodOxygen = 97
		sample.Temperature = round1(38.0 + g.rng.Float64()*1.5)
		sample.SystolicBP = 125
		sample.DiastolicBP = 80
	}

	return sample
}

// Sample 按异常概率生成一条采样
func (g *Generator) Sample(alertProbability float64) models.VitalSample {
	if g.rng.Float64() < alertProbability {
		return g.NextAlert()
	}
	return g.Next()
}

// randInt 返回 [min, max] 闭区间内的随机整数
func (g *Generator) randInt(min, max int) int {
	return min + g.rng.Intn(max-min+1)
}

// randFloat 返回 [min, max) 区间内的随机浮点数
func (g *Generator) randFloat(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func clampInt(min, max, v int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
