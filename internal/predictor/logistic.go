package predictor

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"health-backend/internal/models"
)

// LogisticModel 逻辑回归疾病风险打分器
// 参数（特征顺序、标准化参数、系数）由训练侧导出为JSON文件。
type LogisticModel struct {
	TaskName  string    `json:"task_name"`    // 任务名称，如"心脏病风险预测"
	Features  []string  `json:"features"`     // 特征顺序，输入向量必须按此排列
	Means     []float64 `json:"means"`        // 标准化均值
	Scales    []float64 `json:"scales"`       // 标准化标准差
	Coef      []float64 `json:"coefficients"` // 回归系数
	Intercept float64   `json:"intercept"`    // 截距
}

// LoadModel 从JSON文件加载模型参数
func LoadModel(path string) (*LogisticModel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取模型文件失败: %w", err)
	}

	model := &LogisticModel{}
	if err := json.Unmarshal(data, model); err != nil {
		return nil, fmt.Errorf("解析模型文件失败: %w", err)
	}

	n := len(model.Features)
	if n == 0 || len(model.Means) != n || len(model.Scales) != n || len(model.Coef) != n {
		return nil, errors.New("模型参数维度不一致")
	}
	return model, nil
}

// Predict 对一组按特征顺序排列的输入打分
// 返回类别（0/1）和 [阴性概率, 阳性概率]。
func (m *LogisticModel) Predict(input []float64) (*models.PredictionResult, error) {
	if len(input) != len(m.Features) {
		return nil, fmt.Errorf("输入特征数量错误: 期望 %d 个，实际 %d 个", len(m.Features), len(input))
	}

	z := m.Intercept
	for i, x := range input {
		scale := m.Scales[i]
		if scale == 0 {
			scale = 1
		}
		z += m.Coef[i] * (x - m.Means[i]) / scale
	}

	positive := 1.0 / (1.0 + math.Exp(-z))
	prediction := 0
	if positive >= 0.5 {
		prediction = 1
	}

	return &models.PredictionResult{
		Prediction:  prediction,
		Probability: []float64{1 - positive, positive},
	}, nil
}
