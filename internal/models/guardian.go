package models

import "time"

// GuardianSetting 监护人预警配置，每个用户一条
type GuardianSetting struct {
	ID              uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID          string    `json:"user_id" gorm:"size:64;not null;uniqueIndex"`
	IsEnabled       bool      `json:"is_enabled" gorm:"default:false"`         // 是否开启预警
	ContactName     string    `json:"contact_name" gorm:"size:64"`             // 监护人姓名
	ContactEmail    string    `json:"contact_email" gorm:"size:128"`           // 监护人邮箱
	ContactPhone    string    `json:"contact_phone" gorm:"size:32"`            // 监护人电话
	ThresholdHRHigh int       `json:"threshold_hr_high" gorm:"default:120"`    // 心率上限
	ThresholdBPSys  int       `json:"threshold_bp_sys" gorm:"default:160"`     // 收缩压上限
	CreatedAt       time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt       time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

// GuardianAlert 已触发的预警记录
type GuardianAlert struct {
	ID        uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	Reference string    `json:"reference" gorm:"size:64;not null;uniqueIndex"` // 预警编号
	UserID    string    `json:"user_id" gorm:"size:64;not null;index"`
	AlertType string    `json:"alert_type" gorm:"size:64;not null"` // 报警类型
	Value     string    `json:"value" gorm:"size:64"`               // 触发时的数值
	Delivered bool      `json:"delivered"`                          // 邮件是否发送成功
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
