package models

import "time"

// ScoreLevel 综合评分等级枚举
type ScoreLevel string

const (
	LevelExcellent ScoreLevel = "优秀"   // score >= 90
	LevelGood      ScoreLevel = "良好"   // score >= 75
	LevelFair      ScoreLevel = "一般"   // score >= 60
	LevelAttention ScoreLevel = "需要关注" // score < 60
)

// HealthScore 综合健康评分，每次计算重新生成
type HealthScore struct {
	Score           float64    `json:"score"`           // 0-100，保留1位小数
	Level           ScoreLevel `json:"level"`           // 评分等级
	Color           string     `json:"color"`           // 前端展示颜色
	Factors         []string   `json:"factors"`         // 评分构成说明
	Recommendations []string   `json:"recommendations"` // 健康建议，最多5条
}

// DataSources 报告的数据来源标记
type DataSources struct {
	RealtimeActive   bool   `json:"realtime_active"`   // 模拟器是否在运行
	HasUserData      bool   `json:"has_user_data"`     // 是否存在用户评估数据
	DataCompleteness string `json:"data_completeness"` // complete / realtime_only
}

// HealthReport 综合健康报告，保存后不再修改
type HealthReport struct {
	Timestamp      time.Time           `json:"timestamp"`
	UserID         string              `json:"user_id"`
	RealtimeData   VitalStatus         `json:"realtime_data"`
	UserAssessment *AssessmentSnapshot `json:"user_assessment,omitempty"`
	HealthScore    HealthScore         `json:"health_score"`
	DataSources    DataSources         `json:"data_sources"`
}

// HealthReportRecord 健康报告持久化记录
type HealthReportRecord struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID    string    `json:"user_id" gorm:"size:64;not null;index"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
	Report    string    `json:"report" gorm:"type:text;not null"` // 完整报告JSON
	Score     float64   `json:"score" gorm:"not null"`
	Level     string    `json:"level" gorm:"size:16;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TrendPoint 健康趋势图上的一个点
type TrendPoint struct {
	Date  string  `json:"date"` // YYYY-MM-DD
	Score float64 `json:"score"`
	Level string  `json:"level"`
}

// TrendResult 健康趋势查询结果
type TrendResult struct {
	Trends      []TrendPoint `json:"trends"`
	Summary     string       `json:"summary"`
	Improvement string       `json:"improvement"` // 有所改善 / 保持稳定 / 有所下降 / 数据不足
}
