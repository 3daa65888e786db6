package simulator

import (
	"testing"
)

// TestDefaultSample 测试默认采样的基准值
func TestDefaultSample(t *testing.T) {
	sample := DefaultSample()

	if sample.HeartRate != 75 {
		t.Errorf("默认心率期望 75,实际 %d", sample.HeartRate)
	}
	if sample.BloodOxygen != 98 {
		t.Errorf("默认血氧期望 98,实际 %d", sample.BloodOxygen)
	}
	if sample.Temperature != 36.5 {
		t.Errorf("默认体温期望 36.5,实际 %.1f", sample.Temperature)
	}
	if sample.SystolicBP != 120 || sample.DiastolicBP != 80 {
		t.Errorf("默认血压期望 120/80,实际 %d/%d", sample.SystolicBP, sample.DiastolicBP)
	}
}

// TestNextRanges 测试正常模式采样始终落在约定范围内
func TestNextRanges(t *testing.T) {
	gen := NewGeneratorWithSeed(42)

	for i := 0; i < 1000; i++ {
		sample := gen.Next()

		if sample.HeartRate < 60 || sample.HeartRate > 150 {
			t.Errorf("第 %d 次采样心率越界: %d", i, sample.HeartRate)
		}
		if sample.BloodOxygen < 90 || sample.BloodOxygen > 100 {
			t.Errorf("第 %d 次采样血氧越界: %d", i, sample.BloodOxygen)
		}
		if sample.Temperature < 36.1 || sample.Temperature > 37.2 {
			t.Errorf("第 %d 次采样体温越界: %.1f", i, sample.Temperature)
		}
		if sample.SystolicBP < 90 || sample.SystolicBP > 140 {
			t.Errorf("第 %d 次采样收缩压越界: %d", i, sample.SystolicBP)
		}
		if sample.DiastolicBP < 60 || sample.DiastolicBP > 90 {
			t.Errorf("第 %d 次采样舒张压越界: %d", i, sample.DiastolicBP)
		}
		if sample.Timestamp.IsZero() {
			t.Errorf("第 %d 次采样缺少时间戳", i)
		}
	}
}

// TestNextAlertArchetypes 测试异常采样必须命中三种异常类型之一
func TestNextAlertArchetypes(t *testing.T) {
	gen := NewGeneratorWithSeed(7)

	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		sample := gen.NextAlert()

		switch {
		case sample.HeartRate >= 120 && sample.HeartRate <= 150 && sample.BloodOxygen == 98:
			seen["high_heart_rate"] = true
		case sample.BloodOxygen >= 85 && sample.BloodOxygen <= 92 && sample.HeartRate == 95:
			seen["low_oxygen"] = true
		case sample.Temperature >= 38.0 && sample.Temperature <= 39.5 && sample.HeartRate == 105:
			seen["fever"] = true
		default:
			t.Errorf("第 %d 次异常采样不属于任何异常类型: %+v", i, sample)
		}
	}

	// 1000次采样后三种类型都应出现过
	for _, name := range []string{"high_heart_rate", "low_oxygen", "fever"} {
		if !seen[name] {
			t.Errorf("异常类型 %s 从未出现", name)
		}
	}
}

// TestSampleProbability 测试异常概率的边界取值
func TestSampleProbability(t *testing.T) {
	gen := NewGeneratorWithSeed(11)

	// 概率为0时全部是正常模式,体温不会达到发热区间
	for i := 0; i < 500; i++ {
		sample := gen.Sample(0)
		if sample.Temperature >= 38.0 {
			t.Errorf("概率为0时出现发热采样: %.1f", sample.Temperature)
		}
		if sample.BloodOxygen < 90 {
			t.Errorf("概率为0时出现低血氧采样: %d", sample.BloodOxygen)
		}
	}
}

// TestGeneratorDeterministic 测试相同种子生成相同序列
func TestGeneratorDeterministic(t *testing.T) {
	a := NewGeneratorWithSeed(99)
	b := NewGeneratorWithSeed(99)

	for i := 0; i < 100; i++ {
		x, y := a.Sample(0.1), b.Sample(0.1)
		if x.HeartRate != y.HeartRate || x.BloodOxygen != y.BloodOxygen ||
			x.Temperature != y.Temperature || x.SystolicBP != y.SystolicBP ||
			x.DiastolicBP != y.DiastolicBP {
			t.Fatalf("第 %d 次采样不一致: %+v vs %+v", i, x, y)
		}
	}
}
