package models

import "time"

// PredictionResult 疾病风险预测结果
type PredictionResult struct {
	Prediction  int       `json:"prediction"`  // 0=低风险 1=高风险
	Probability []float64 `json:"probability"` // [阴性概率, 阳性概率]
}

// AssessmentRecord 用户健康评估持久化记录
// FormData 和 Predictions 以JSON文本存储，序列化只发生在边界
type AssessmentRecord struct {
	ID          uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      string    `json:"user_id" gorm:"size:64;not null;index"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null"`
	FormData    string    `json:"form_data" gorm:"type:text;not null"`
	Predictions string    `json:"predictions" gorm:"type:text;not null"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// AssessmentSnapshot 评分引擎读取的评估数据快照（只读）
type AssessmentSnapshot struct {
	UserID      string                      `json:"user_id"`
	Timestamp   time.Time                   `json:"timestamp"`
	FormData    map[string]interface{}      `json:"form_data"`
	Predictions map[string]PredictionResult `json:"predictions"`
}

// BMI 读取表单中的BMI值，缺省时返回22
func (s *AssessmentSnapshot) BMI() float64 {
	if v, ok := s.FormData["BMI"]; ok {
		switch n := v.(type) {
		case float64:
			return n
		case int:
			return float64(n)
		}
	}
	return 22
}

// FlagSet 判断表单中的某个是/否选项是否为"是"
func (s *AssessmentSnapshot) FlagSet(key string) bool {
	v, ok := s.FormData[key]
	if !ok {
		return false
	}
	return v == "是"
}
