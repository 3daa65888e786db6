package models

import "time"

// VitalSample 一次生命体征采样，生成后不再修改
type VitalSample struct {
	HeartRate   int       `json:"heart_rate"`   // 心率 (bpm)
	BloodOxygen int       `json:"blood_oxygen"` // 血氧饱和度 (%)
	Temperature float64   `json:"temperature"`  // 体温 (°C)
	SystolicBP  int       `json:"systolic_bp"`  // 收缩压 (mmHg)
	DiastolicBP int       `json:"diastolic_bp"` // 舒张压 (mmHg)
	Timestamp   time.Time `json:"timestamp"`    // 采样时间
}

// AlertType 异常数据类型枚举
type AlertType string

const (
	AlertHighHeartRate AlertType = "high_heart_rate" // 心率过高
	AlertLowOxygen     AlertType = "low_oxygen"      // 血氧过低
	AlertFever         AlertType = "fever"           // 发热
)

// MetricStatus 单项指标状态
type MetricStatus string

const (
	MetricNormal  MetricStatus = "normal"  // 正常
	MetricWarning MetricStatus = "warning" // 警告
)

// 整体状态取值
const (
	OverallNormal       = "正常"
	OverallWarning      = "警告"
	OverallDisconnected = "设备未连接"
)

// VitalMetric 单项指标的展示数据
type VitalMetric struct {
	Value  interface{}  `json:"value"`  // 数值（血压为 "120/80" 形式的字符串）
	Unit   string       `json:"unit"`   // 单位
	Status MetricStatus `json:"status"` // normal / warning
	Range  string       `json:"range"`  // 参考范围
}

// VitalStatus 生命体征摘要，每次读取时重新计算，不做持久化
type VitalStatus struct {
	HeartRate     VitalMetric `json:"heart_rate"`
	BloodOxygen   VitalMetric `json:"blood_oxygen"`
	Temperature   VitalMetric `json:"temperature"`
	BloodPressure VitalMetric `json:"blood_pressure"`
	OverallStatus string      `json:"overall_status"` // 正常 / 警告 / 设备未连接
	Alerts        []string    `json:"alerts"`         // 告警描述
	LastUpdate    time.Time   `json:"last_update"`    // 最后采样时间
}

// DisplayData 实时监测页面展示数据
type DisplayData struct {
	Current VitalSample   `json:"current"` // 当前采样
	Summary VitalStatus   `json:"summary"` // 状态摘要
	History []VitalSample `json:"history"` // 历史记录副本
}
