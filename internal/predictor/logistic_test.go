package predictor

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func writeModelFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "model.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("写入模型文件失败: %v", err)
	}
	return path
}

// TestLoadModel 测试加载模型文件
func TestLoadModel(t *testing.T) {
	path := writeModelFile(t, `{
		"task_name": "测试任务",
		"features": ["a", "b"],
		"means": [1.0, 2.0],
		"scales": [0.5, 1.5],
		"coefficients": [0.3, -0.7],
		"intercept": 0.1
	}`)

	model, err := LoadModel(path)
	if err != nil {
		t.Fatalf("加载模型失败: %v", err)
	}
	if model.TaskName != "测试任务" {
		t.Errorf("任务名称期望 测试任务,实际 %s", model.TaskName)
	}
	if len(model.Features) != 2 || model.Features[0] != "a" {
		t.Errorf("特征顺序不符: %v", model.Features)
	}
}

// TestLoadModelDimensionMismatch 测试参数维度不一致时报错
func TestLoadModelDimensionMismatch(t *testing.T) {
	path := writeModelFile(t, `{
		"task_name": "坏模型",
		"features": ["a", "b"],
		"means": [1.0],
		"scales": [0.5, 1.5],
		"coefficients": [0.3, -0.7],
		"intercept": 0.1
	}`)

	if _, err := LoadModel(path); err == nil {
		t.Error("维度不一致的模型应加载失败")
	}
}

// TestLoadModelMissingFile 测试文件不存在时报错
func TestLoadModelMissingFile(t *testing.T) {
	if _, err := LoadModel(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("不存在的模型文件应加载失败")
	}
}

// TestPredict 测试逻辑回归打分
func TestPredict(t *testing.T) {
	model := &LogisticModel{
		TaskName:  "测试",
		Features:  []string{"a", "b"},
		Means:     []float64{0, 0},
		Scales:    []float64{1, 1},
		Coef:      []float64{1, -1},
		Intercept: 0,
	}

	// z = 2 - 1 = 1, sigmoid(1) ≈ 0.7311
	result, err := model.Predict([]float64{2, 1})
	if err != nil {
		t.Fatalf("预测失败: %v", err)
	}
	if result.Prediction != 1 {
		t.Errorf("预测类别期望 1,实际 %d", result.Prediction)
	}
	want := 1.0 / (1.0 + math.Exp(-1))
	if math.Abs(result.Probability[1]-want) > 1e-9 {
		t.Errorf("阳性概率期望 %.4f,实际 %.4f", want, result.Probability[1])
	}
	if math.Abs(result.Probability[0]+result.Probability[1]-1.0) > 1e-9 {
		t.Errorf("两类概率之和应为1,实际 %v", result.Probability)
	}

	// z = -1, 阴性
	result, err = model.Predict([]float64{0, 1})
	if err != nil {
		t.Fatalf("预测失败: %v", err)
	}
	if result.Prediction != 0 {
		t.Errorf("预测类别期望 0,实际 %d", result.Prediction)
	}
}

// TestPredictStandardization 测试标准化参数参与计算
func TestPredictStandardization(t *testing.T) {
	model := &LogisticModel{
		TaskName:  "测试",
		Features:  []string{"a"},
		Means:     []float64{10},
		Scales:    []float64{2},
		Coef:      []float64{1},
		Intercept: 0,
	}

	// (10-10)/2 = 0, sigmoid(0) = 0.5, 边界取阳性
	result, err := model.Predict([]float64{10})
	if err != nil {
		t.Fatalf("预测失败: %v", err)
	}
	if result.Probability[1] != 0.5 || result.Prediction != 1 {
		t.Errorf("均值输入期望概率0.5且类别1,实际 %v %d", result.Probability, result.Prediction)
	}
}

// TestPredictWrongDimension 测试输入维度错误时报错
func TestPredictWrongDimension(t *testing.T) {
	model := &LogisticModel{
		Features: []string{"a", "b"},
		Means:    []float64{0, 0},
		Scales:   []float64{1, 1},
		Coef:     []float64{1, 1},
	}

	if _, err := model.Predict([]float64{1}); err == nil {
		t.Error("输入维度错误应返回错误")
	}
}

// TestPredictZeroScale 测试标准差为0时退化为1,不产生除零
func TestPredictZeroScale(t *testing.T) {
	model := &LogisticModel{
		Features:  []string{"a"},
		Means:     []float64{0},
		Scales:    []float64{0},
		Coef:      []float64{1},
		Intercept: 0,
	}

	result, err := model.Predict([]float64{3})
	if err != nil {
		t.Fatalf("预测失败: %v", err)
	}
	if math.IsNaN(result.Probability[1]) || math.IsInf(result.Probability[1], 0) {
		t.Errorf("标准差为0时概率非法: %v", result.Probability)
	}
}
